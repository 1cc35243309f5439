package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"alcyxob/workout-planner/internal/service"
)

// WorkoutHandler serves the imported workout list and the CSV import.
type WorkoutHandler struct {
	plannerService service.PlannerService
	importService  service.ImportService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(plannerService service.PlannerService, importService service.ImportService) *WorkoutHandler {
	return &WorkoutHandler{
		plannerService: plannerService,
		importService:  importService,
	}
}

// ListWorkouts returns every imported workout with its selection merged in,
// ordered by originally planned day.
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	workouts, err := h.plannerService.ListWorkouts(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load workouts")
		return
	}
	c.JSON(http.StatusOK, workouts)
}

func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	workout, err := h.plannerService.GetWorkout(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidWorkoutID):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrWorkoutNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to load workout")
		}
		return
	}
	c.JSON(http.StatusOK, workout)
}

// ImportCSV accepts a TrainingPeaks export either as a multipart "file" field
// or as a raw request body.
func (h *WorkoutHandler) ImportCSV(c *gin.Context) {
	var (
		reader   io.Reader
		filename string
	)

	if file, err := c.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Cannot read uploaded file: %v", err))
			return
		}
		defer f.Close()
		reader = f
		filename = file.Filename
	} else {
		reader = c.Request.Body
		filename = c.Query("filename")
	}

	result, err := h.importService.ImportCSV(c.Request.Context(), reader, filename)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCSV), errors.Is(err, service.ErrMissingHeader):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Import failed")
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

// Stats returns the dashboard counters.
func (h *WorkoutHandler) Stats(c *gin.Context) {
	stats, err := h.plannerService.Stats(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}
