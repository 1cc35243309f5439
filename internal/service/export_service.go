package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"alcyxob/workout-planner/internal/domain"
	"alcyxob/workout-planner/internal/export"
	"alcyxob/workout-planner/internal/observability"
)

// ExportResult summarizes one calendar push.
type ExportResult struct {
	EventsCreated int             `json:"eventsCreated"`
	Start         domain.DateOnly `json:"start"`
	End           domain.DateOnly `json:"end"`
}

// ExportService pushes the selected plan to an external calendar as one
// all-day event per training day.
type ExportService interface {
	ExportRange(ctx context.Context, start, end domain.DateOnly) (*ExportResult, error)
}

// EventPutter is the slice of the CalDAV client the exporter needs.
type EventPutter interface {
	PutEvent(ctx context.Context, ev export.Event) error
}

type exportService struct {
	planner PlannerService
	caldav  EventPutter
	log     *slog.Logger
}

// NewExportService creates a new instance of exportService.
func NewExportService(planner PlannerService, caldav EventPutter, log *slog.Logger) ExportService {
	return &exportService{
		planner: planner,
		caldav:  caldav,
		log:     log,
	}
}

// ExportRange collects the selected workouts scheduled in [start, end] and
// uploads one event per day. UIDs are derived from the date so re-exporting
// overwrites rather than duplicates.
func (s *exportService) ExportRange(ctx context.Context, start, end domain.DateOnly) (*ExportResult, error) {
	if end.Before(start) {
		start, end = end, start
	}

	workouts, err := s.planner.ListWorkouts(ctx)
	if err != nil {
		return nil, err
	}

	byDay := make(map[domain.DateOnly][]*domain.Workout)
	for i := range workouts {
		w := &workouts[i]
		if !w.IsSelected() {
			continue
		}
		day := w.CurrentPlanDay()
		if !day.InRange(start, end) {
			continue
		}
		byDay[day] = append(byDay[day], w)
	}

	days := make([]domain.DateOnly, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	result := &ExportResult{Start: start, End: end}
	for _, day := range days {
		ev := buildDayEvent(day, byDay[day])
		if err := s.caldav.PutEvent(ctx, ev); err != nil {
			return result, fmt.Errorf("exporting %s: %w", day, err)
		}
		result.EventsCreated++
	}
	observability.EventsExported.Add(float64(result.EventsCreated))

	s.log.Info("calendar export finished", "start", start.String(), "end", end.String(), "events", result.EventsCreated)
	return result, nil
}

// buildDayEvent summarizes a day's sessions, e.g. "Swim 1.0h + Run 0.5h".
// Workouts without a planned duration contribute their type alone.
func buildDayEvent(day domain.DateOnly, workouts []*domain.Workout) export.Event {
	parts := make([]string, 0, len(workouts))
	var description strings.Builder
	for _, w := range workouts {
		if w.PlannedDuration != nil {
			parts = append(parts, fmt.Sprintf("%s %.1fh", w.WorkoutType, *w.PlannedDuration))
		} else {
			parts = append(parts, string(w.WorkoutType))
		}
		fmt.Fprintf(&description, "%s: %s\n", w.WorkoutType, w.Title)
	}

	return export.Event{
		UID:         fmt.Sprintf("workout-plan-%s", day),
		Date:        day,
		Summary:     strings.Join(parts, " + "),
		Description: strings.TrimRight(description.String(), "\n"),
	}
}
