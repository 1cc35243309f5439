package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"alcyxob/workout-planner/internal/domain"
	"alcyxob/workout-planner/internal/repository"
)

var ErrCustomWorkoutNotFound = errors.New("custom workout not found")

// CustomWorkoutInput carries client-supplied fields for create and update.
// TimeOfDay is the raw client value; translation to the stored form happens
// here.
type CustomWorkoutInput struct {
	Title           string
	WorkoutType     string
	Description     string
	PlannedDate     domain.DateOnly
	PlannedDuration *float64
	TimeOfDay       *string
}

// CustomWorkoutService manages user-created workouts.
type CustomWorkoutService interface {
	Create(ctx context.Context, input CustomWorkoutInput) (*domain.CustomWorkout, error)
	Get(ctx context.Context, id string) (*domain.CustomWorkout, error)
	List(ctx context.Context) ([]domain.CustomWorkout, error)
	Update(ctx context.Context, id string, input CustomWorkoutInput) (*domain.CustomWorkout, error)
	Delete(ctx context.Context, id string) error
}

type customWorkoutService struct {
	repo repository.CustomWorkoutRepository
}

// NewCustomWorkoutService creates a new instance of customWorkoutService.
func NewCustomWorkoutService(repo repository.CustomWorkoutRepository) CustomWorkoutService {
	return &customWorkoutService{repo: repo}
}

func (s *customWorkoutService) Create(ctx context.Context, input CustomWorkoutInput) (*domain.CustomWorkout, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrValidationFailed
	}

	now := time.Now().UTC()
	workout := &domain.CustomWorkout{
		ID:              uuid.NewString(),
		Title:           title,
		WorkoutType:     domain.ParseWorkoutType(input.WorkoutType),
		Description:     input.Description,
		PlannedDate:     input.PlannedDate,
		PlannedDuration: input.PlannedDuration,
		TimeOfDay:       domain.TimeOfDayForStorage(domain.ParseTimeOfDay(input.TimeOfDay)),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.repo.Create(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

func (s *customWorkoutService) Get(ctx context.Context, id string) (*domain.CustomWorkout, error) {
	workout, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCustomWorkoutNotFound
	}
	return workout, err
}

func (s *customWorkoutService) List(ctx context.Context) ([]domain.CustomWorkout, error) {
	return s.repo.GetAll(ctx)
}

func (s *customWorkoutService) Update(ctx context.Context, id string, input CustomWorkoutInput) (*domain.CustomWorkout, error) {
	workout, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCustomWorkoutNotFound
	} else if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrValidationFailed
	}

	workout.Title = title
	workout.WorkoutType = domain.ParseWorkoutType(input.WorkoutType)
	workout.Description = input.Description
	workout.PlannedDate = input.PlannedDate
	workout.PlannedDuration = input.PlannedDuration
	workout.TimeOfDay = domain.TimeOfDayForStorage(domain.ParseTimeOfDay(input.TimeOfDay))
	workout.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, workout); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCustomWorkoutNotFound
		}
		return nil, err
	}
	return workout, nil
}

func (s *customWorkoutService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrCustomWorkoutNotFound
	}
	return err
}
