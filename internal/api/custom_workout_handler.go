package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"alcyxob/workout-planner/internal/domain"
	"alcyxob/workout-planner/internal/service"
)

// CustomWorkoutHandler manages user-created workouts.
type CustomWorkoutHandler struct {
	customService service.CustomWorkoutService
}

// NewCustomWorkoutHandler creates a new CustomWorkoutHandler.
func NewCustomWorkoutHandler(customService service.CustomWorkoutService) *CustomWorkoutHandler {
	return &CustomWorkoutHandler{customService: customService}
}

type CustomWorkoutRequest struct {
	Title           string   `json:"title" binding:"required"`
	WorkoutType     string   `json:"workoutType" binding:"required"`
	Description     string   `json:"description"`
	PlannedDate     string   `json:"plannedDate" binding:"required"`
	PlannedDuration *float64 `json:"plannedDuration"`
	TimeOfDay       *string  `json:"timeOfDay"`
}

func (r CustomWorkoutRequest) toInput() (service.CustomWorkoutInput, error) {
	date, err := domain.ParseDateOnly(r.PlannedDate)
	if err != nil {
		return service.CustomWorkoutInput{}, fmt.Errorf("invalid plannedDate: %w", err)
	}
	return service.CustomWorkoutInput{
		Title:           r.Title,
		WorkoutType:     r.WorkoutType,
		Description:     r.Description,
		PlannedDate:     date,
		PlannedDuration: r.PlannedDuration,
		TimeOfDay:       r.TimeOfDay,
	}, nil
}

func (h *CustomWorkoutHandler) Create(c *gin.Context) {
	var req CustomWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	input, err := req.toInput()
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	workout, err := h.customService.Create(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create workout")
		}
		return
	}
	c.JSON(http.StatusCreated, workout)
}

func (h *CustomWorkoutHandler) List(c *gin.Context) {
	workouts, err := h.customService.List(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load workouts")
		return
	}
	c.JSON(http.StatusOK, workouts)
}

func (h *CustomWorkoutHandler) Get(c *gin.Context) {
	workout, err := h.customService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrCustomWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load workout")
		}
		return
	}
	c.JSON(http.StatusOK, workout)
}

func (h *CustomWorkoutHandler) Update(c *gin.Context) {
	var req CustomWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	input, err := req.toInput()
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	workout, err := h.customService.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCustomWorkoutNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update workout")
		}
		return
	}
	c.JSON(http.StatusOK, workout)
}

func (h *CustomWorkoutHandler) Delete(c *gin.Context) {
	if err := h.customService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrCustomWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete workout")
		}
		return
	}
	c.Status(http.StatusNoContent)
}
