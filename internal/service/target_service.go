package service

import (
	"context"
	"sort"

	"alcyxob/workout-planner/internal/domain"
)

// TargetService derives the weekly load summary from the selected plan.
type TargetService interface {
	// WeeklyTargets aggregates selected workouts into per-week totals,
	// ordered by week start.
	WeeklyTargets(ctx context.Context) ([]domain.WeeklyTarget, error)
}

type targetService struct {
	planner PlannerService
}

// NewTargetService creates a new instance of targetService.
func NewTargetService(planner PlannerService) TargetService {
	return &targetService{planner: planner}
}

func (s *targetService) WeeklyTargets(ctx context.Context) ([]domain.WeeklyTarget, error) {
	workouts, err := s.planner.ListWorkouts(ctx)
	if err != nil {
		return nil, err
	}

	byWeek := make(map[domain.DateOnly]*domain.WeeklyTarget)
	for i := range workouts {
		w := &workouts[i]
		if !w.IsSelected() {
			continue
		}
		week := w.CurrentPlanDay().WeekStart()
		target, ok := byWeek[week]
		if !ok {
			target = &domain.WeeklyTarget{WeekStart: week}
			byWeek[week] = target
		}
		if w.TSS != nil {
			target.TargetTSS += *w.TSS
		}
		if w.PlannedDuration != nil {
			target.TargetDurationHours += *w.PlannedDuration
		}
		target.WorkoutCount++
	}

	targets := make([]domain.WeeklyTarget, 0, len(byWeek))
	for _, t := range byWeek {
		targets = append(targets, *t)
	}
	sort.Slice(targets, func(i, j int) bool {
		return targets[i].WeekStart.Before(targets[j].WeekStart)
	})
	return targets, nil
}
