package service

import (
	"context"
	"errors"

	"alcyxob/workout-planner/internal/domain"
	"alcyxob/workout-planner/internal/repository"
)

var ErrInvalidSchedule = errors.New("invalid club schedule")

// TriClubService manages the recurring weekly club schedule.
type TriClubService interface {
	Schedule(ctx context.Context) (domain.TriClubSchedule, error)
	ReplaceSchedule(ctx context.Context, schedule domain.TriClubSchedule) error
}

type triClubService struct {
	repo repository.TriClubRepository
}

// NewTriClubService creates a new instance of triClubService.
func NewTriClubService(repo repository.TriClubRepository) TriClubService {
	return &triClubService{repo: repo}
}

func (s *triClubService) Schedule(ctx context.Context) (domain.TriClubSchedule, error) {
	return s.repo.Get(ctx)
}

// ReplaceSchedule swaps in a whole new weekly schedule. Weekday keys must be
// the lowercase English names.
func (s *triClubService) ReplaceSchedule(ctx context.Context, schedule domain.TriClubSchedule) error {
	valid := map[string]bool{
		"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
		"friday": true, "saturday": true, "sunday": true,
	}
	for day := range schedule {
		if !valid[day] {
			return ErrInvalidSchedule
		}
	}
	return s.repo.Put(ctx, schedule)
}
