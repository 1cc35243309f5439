package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"alcyxob/workout-planner/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicate    = RepositoryError("already exists")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors from driver errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// WorkoutRepository stores the immutable imported workouts.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error)
	// GetAll returns every workout ordered by originally planned day.
	GetAll(ctx context.Context) ([]domain.Workout, error)
	// ExistsByTitleAndDay supports import-time deduplication.
	ExistsByTitleAndDay(ctx context.Context, title string, day domain.DateOnly) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// SelectionRepository stores per-workout user modifications.
type SelectionRepository interface {
	GetByWorkoutID(ctx context.Context, workoutID primitive.ObjectID) (*domain.WorkoutSelection, error)
	GetAll(ctx context.Context) ([]domain.WorkoutSelection, error)
	// Upsert creates or replaces the selection for its workout.
	Upsert(ctx context.Context, selection *domain.WorkoutSelection) error
	DeleteByWorkoutID(ctx context.Context, workoutID primitive.ObjectID) error
	CountSelected(ctx context.Context) (int64, error)
}

// CustomWorkoutRepository stores user-created workouts (string UUID ids).
type CustomWorkoutRepository interface {
	Create(ctx context.Context, workout *domain.CustomWorkout) error
	GetByID(ctx context.Context, id string) (*domain.CustomWorkout, error)
	// GetAll returns custom workouts ordered by planned date.
	GetAll(ctx context.Context) ([]domain.CustomWorkout, error)
	Update(ctx context.Context, workout *domain.CustomWorkout) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// TriClubRepository stores the single recurring weekly club schedule.
type TriClubRepository interface {
	Get(ctx context.Context) (domain.TriClubSchedule, error)
	Put(ctx context.Context, schedule domain.TriClubSchedule) error
}

// UserRepository stores athlete accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}
