package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"alcyxob/workout-planner/internal/calendar"
	"alcyxob/workout-planner/internal/domain"
	"alcyxob/workout-planner/internal/service"
)

// TriClubHandler serves the recurring club schedule and its projection onto
// concrete dates.
type TriClubHandler struct {
	triClubService service.TriClubService
}

// NewTriClubHandler creates a new TriClubHandler.
func NewTriClubHandler(triClubService service.TriClubService) *TriClubHandler {
	return &TriClubHandler{triClubService: triClubService}
}

// GetSchedule returns the raw weekly schedule keyed by weekday name.
func (h *TriClubHandler) GetSchedule(c *gin.Context) {
	schedule, err := h.triClubService.Schedule(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load club schedule")
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// PutSchedule replaces the weekly schedule wholesale.
func (h *TriClubHandler) PutSchedule(c *gin.Context) {
	var schedule domain.TriClubSchedule
	if err := c.ShouldBindJSON(&schedule); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	if err := h.triClubService.ReplaceSchedule(c.Request.Context(), schedule); err != nil {
		if errors.Is(err, service.ErrInvalidSchedule) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to store club schedule")
		}
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// GetDay projects the weekly schedule onto one date, bucketed by time of day.
func (h *TriClubHandler) GetDay(c *gin.Context) {
	date, err := domain.ParseDateOnly(c.Param("date"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid date: %v", err))
		return
	}

	schedule, err := h.triClubService.Schedule(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load club schedule")
		return
	}
	c.JSON(http.StatusOK, calendar.ProjectTriClub(schedule, date))
}
