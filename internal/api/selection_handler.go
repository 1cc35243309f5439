package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"alcyxob/workout-planner/internal/domain"
	"alcyxob/workout-planner/internal/service"
)

// SelectionHandler mutates per-workout user selections.
type SelectionHandler struct {
	plannerService service.PlannerService
}

// NewSelectionHandler creates a new SelectionHandler.
func NewSelectionHandler(plannerService service.PlannerService) *SelectionHandler {
	return &SelectionHandler{plannerService: plannerService}
}

// UpdateSelectionRequest is a partial update: absent fields stay untouched.
// Sending "unscheduled" (or any unknown value) for timeOfDay clears it.
type UpdateSelectionRequest struct {
	IsSelected      *bool   `json:"isSelected"`
	CurrentPlanDay  *string `json:"currentPlanDay"`
	TimeOfDay       *string `json:"timeOfDay"`
	WorkoutLocation *string `json:"workoutLocation"`
	UserNotes       *string `json:"userNotes"`
}

func (h *SelectionHandler) UpdateSelection(c *gin.Context) {
	var req UpdateSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	update := service.SelectionUpdate{
		IsSelected:      req.IsSelected,
		TimeOfDay:       req.TimeOfDay,
		WorkoutLocation: req.WorkoutLocation,
		UserNotes:       req.UserNotes,
	}
	if req.CurrentPlanDay != nil {
		day, err := domain.ParseDateOnly(*req.CurrentPlanDay)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid currentPlanDay: %v", err))
			return
		}
		update.CurrentPlanDay = &day
	}

	selection, err := h.plannerService.UpdateSelection(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidWorkoutID):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrWorkoutNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update selection")
		}
		return
	}
	c.JSON(http.StatusOK, selection)
}

// DeleteSelection resets a workout to its imported defaults.
func (h *SelectionHandler) DeleteSelection(c *gin.Context) {
	err := h.plannerService.DeleteSelection(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidWorkoutID):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrWorkoutNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to delete selection")
		}
		return
	}
	c.Status(http.StatusNoContent)
}
