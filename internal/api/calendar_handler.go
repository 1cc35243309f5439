package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"alcyxob/workout-planner/internal/calendar"
	"alcyxob/workout-planner/internal/domain"
	"alcyxob/workout-planner/internal/service"
)

// CalendarHandler renders the planning grid: date cells, each day's workouts
// bucketed by time of day, plus the projected club events.
type CalendarHandler struct {
	plannerService service.PlannerService
	triClubService service.TriClubService
	targetService  service.TargetService
}

// NewCalendarHandler creates a new CalendarHandler.
func NewCalendarHandler(
	plannerService service.PlannerService,
	triClubService service.TriClubService,
	targetService service.TargetService,
) *CalendarHandler {
	return &CalendarHandler{
		plannerService: plannerService,
		triClubService: triClubService,
		targetService:  targetService,
	}
}

// CalendarDay is one fully populated grid cell.
type CalendarDay struct {
	calendar.DayCell
	Workouts calendar.SlotBuckets  `json:"workouts"`
	Club     calendar.ProjectedDay `json:"club"`
}

// CalendarResponse is the whole grid for one view.
type CalendarResponse struct {
	Reference domain.DateOnly       `json:"reference"`
	Mode      calendar.ViewMode     `json:"mode"`
	Days      []CalendarDay         `json:"days"`
	Targets   []domain.WeeklyTarget `json:"targets"`
}

// GetView builds the grid for /calendar/:view/:date where view is "week" or
// "month".
func (h *CalendarHandler) GetView(c *gin.Context) {
	mode := calendar.ViewMode(c.Param("view"))
	if mode != calendar.ViewWeek && mode != calendar.ViewMonth {
		abortWithError(c, http.StatusBadRequest, "View must be week or month")
		return
	}
	ref, err := domain.ParseDateOnly(c.Param("date"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid date: %v", err))
		return
	}

	workouts, err := h.plannerService.ListWorkouts(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load workouts")
		return
	}
	schedule, err := h.triClubService.Schedule(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load club schedule")
		return
	}
	targets, err := h.targetService.WeeklyTargets(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load weekly targets")
		return
	}

	state := calendar.ViewState{Reference: ref, Mode: mode}
	cells := state.Cells()
	days := make([]CalendarDay, len(cells))
	for i, cell := range cells {
		days[i] = CalendarDay{
			DayCell:  cell,
			Workouts: calendar.ByTimeOfDay(calendar.ForDate(workouts, cell.Date)),
			Club:     calendar.ProjectTriClub(schedule, cell.Date),
		}
	}

	c.JSON(http.StatusOK, CalendarResponse{
		Reference: ref,
		Mode:      mode,
		Days:      days,
		Targets:   targets,
	})
}
