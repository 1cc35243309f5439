package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"alcyxob/workout-planner/internal/domain"
	"alcyxob/workout-planner/internal/repository"
)

// --- Error Definitions ---
var (
	ErrWorkoutNotFound  = errors.New("workout not found")
	ErrInvalidWorkoutID = errors.New("invalid workout id")
	ErrValidationFailed = errors.New("validation failed")
)

// SelectionUpdate is a partial update of a workout's selection record. Nil
// fields are left untouched. TimeOfDay carries the raw client value so the
// "unscheduled" translation happens in exactly one place.
type SelectionUpdate struct {
	IsSelected      *bool
	CurrentPlanDay  *domain.DateOnly
	TimeOfDay       *string
	WorkoutLocation *string
	UserNotes       *string
}

// PlannerStats are the counters shown on the dashboard.
type PlannerStats struct {
	TotalWorkouts    int64 `json:"totalWorkouts"`
	SelectedWorkouts int64 `json:"selectedWorkouts"`
	CustomWorkouts   int64 `json:"customWorkouts"`
}

// PlannerService owns the merged view of imported workouts and their user
// selections, and all selection mutations.
type PlannerService interface {
	ListWorkouts(ctx context.Context) ([]domain.Workout, error)
	GetWorkout(ctx context.Context, id string) (*domain.Workout, error)
	UpdateSelection(ctx context.Context, workoutID string, update SelectionUpdate) (*domain.WorkoutSelection, error)
	DeleteSelection(ctx context.Context, workoutID string) error
	Stats(ctx context.Context) (*PlannerStats, error)
}

type plannerService struct {
	workoutRepo   repository.WorkoutRepository
	selectionRepo repository.SelectionRepository
	customRepo    repository.CustomWorkoutRepository
}

// NewPlannerService creates a new instance of plannerService.
func NewPlannerService(
	workoutRepo repository.WorkoutRepository,
	selectionRepo repository.SelectionRepository,
	customRepo repository.CustomWorkoutRepository,
) PlannerService {
	return &plannerService{
		workoutRepo:   workoutRepo,
		selectionRepo: selectionRepo,
		customRepo:    customRepo,
	}
}

// ListWorkouts returns every imported workout with its selection attached,
// ordered by originally planned day.
func (s *plannerService) ListWorkouts(ctx context.Context) ([]domain.Workout, error) {
	workouts, err := s.workoutRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	selections, err := s.selectionRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	byWorkout := make(map[primitive.ObjectID]*domain.WorkoutSelection, len(selections))
	for i := range selections {
		byWorkout[selections[i].WorkoutID] = &selections[i]
	}
	for i := range workouts {
		workouts[i].Selection = byWorkout[workouts[i].ID]
	}
	return workouts, nil
}

func (s *plannerService) GetWorkout(ctx context.Context, id string) (*domain.Workout, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidWorkoutID
	}
	workout, err := s.workoutRepo.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	selection, err := s.selectionRepo.GetByWorkoutID(ctx, oid)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	workout.Selection = selection
	return workout, nil
}

// UpdateSelection applies a partial update, creating the selection record on
// first touch. A workout starts selected; deselecting it is an explicit act.
func (s *plannerService) UpdateSelection(ctx context.Context, workoutID string, update SelectionUpdate) (*domain.WorkoutSelection, error) {
	oid, err := primitive.ObjectIDFromHex(workoutID)
	if err != nil {
		return nil, ErrInvalidWorkoutID
	}
	if _, err := s.workoutRepo.GetByID(ctx, oid); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	selection, err := s.selectionRepo.GetByWorkoutID(ctx, oid)
	if errors.Is(err, repository.ErrNotFound) {
		selection = &domain.WorkoutSelection{WorkoutID: oid, IsSelected: true}
	} else if err != nil {
		return nil, err
	}

	if update.IsSelected != nil {
		selection.IsSelected = *update.IsSelected
	}
	if update.CurrentPlanDay != nil {
		selection.CurrentPlanDay = update.CurrentPlanDay
	}
	if update.TimeOfDay != nil {
		// "unscheduled" (or anything unrecognized) is stored as absence of
		// a time of day, never as a literal value.
		selection.TimeOfDay = domain.TimeOfDayForStorage(domain.ParseTimeOfDay(update.TimeOfDay))
	}
	if update.WorkoutLocation != nil {
		switch domain.WorkoutLocation(*update.WorkoutLocation) {
		case domain.LocationIndoor, domain.LocationOutdoor:
			loc := domain.WorkoutLocation(*update.WorkoutLocation)
			selection.WorkoutLocation = &loc
		default:
			// Clearing the location (meaningful only for Bike workouts).
			selection.WorkoutLocation = nil
		}
	}
	if update.UserNotes != nil {
		selection.UserNotes = *update.UserNotes
	}

	if err := s.selectionRepo.Upsert(ctx, selection); err != nil {
		return nil, err
	}
	return selection, nil
}

// DeleteSelection resets a workout to its imported defaults.
func (s *plannerService) DeleteSelection(ctx context.Context, workoutID string) error {
	oid, err := primitive.ObjectIDFromHex(workoutID)
	if err != nil {
		return ErrInvalidWorkoutID
	}
	if _, err := s.workoutRepo.GetByID(ctx, oid); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutNotFound
		}
		return err
	}

	err = s.selectionRepo.DeleteByWorkoutID(ctx, oid)
	if errors.Is(err, repository.ErrNotFound) {
		// No selection existed; deleting it is still a success.
		return nil
	}
	return err
}

func (s *plannerService) Stats(ctx context.Context) (*PlannerStats, error) {
	total, err := s.workoutRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	selected, err := s.selectionRepo.CountSelected(ctx)
	if err != nil {
		return nil, err
	}
	custom, err := s.customRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &PlannerStats{
		TotalWorkouts:    total,
		SelectedWorkouts: selected,
		CustomWorkouts:   custom,
	}, nil
}
