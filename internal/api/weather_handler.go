package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"alcyxob/workout-planner/internal/domain"
	"alcyxob/workout-planner/internal/service"
	"alcyxob/workout-planner/internal/weather"
)

// WeatherHandler serves per-slot forecast annotations for calendar cells.
type WeatherHandler struct {
	weatherService service.WeatherService
}

// NewWeatherHandler creates a new WeatherHandler.
func NewWeatherHandler(weatherService service.WeatherService) *WeatherHandler {
	return &WeatherHandler{weatherService: weatherService}
}

// GetSlot returns the forecast for /weather/:date/:slot. Cells where weather
// is intentionally not shown get resolution "none" and no forecast body.
func (h *WeatherHandler) GetSlot(c *gin.Context) {
	date, err := domain.ParseDateOnly(c.Param("date"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid date: %v", err))
		return
	}
	slotParam := c.Param("slot")
	slot := domain.ParseTimeOfDay(&slotParam)

	result, err := h.weatherService.SlotWeather(c.Request.Context(), date, slot)
	if err != nil {
		if errors.Is(err, weather.ErrBeyondForecastRange) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusBadGateway, "Forecast provider unavailable")
		}
		return
	}
	c.JSON(http.StatusOK, result)
}
