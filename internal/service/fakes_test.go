package service

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"alcyxob/workout-planner/internal/domain"
	"alcyxob/workout-planner/internal/export"
	"alcyxob/workout-planner/internal/repository"
)

// In-memory repository fakes for service tests.

type fakeWorkoutRepo struct {
	workouts map[primitive.ObjectID]domain.Workout
}

func newFakeWorkoutRepo() *fakeWorkoutRepo {
	return &fakeWorkoutRepo{workouts: make(map[primitive.ObjectID]domain.Workout)}
}

func (r *fakeWorkoutRepo) Create(_ context.Context, w *domain.Workout) (primitive.ObjectID, error) {
	w.ID = primitive.NewObjectID()
	r.workouts[w.ID] = *w
	return w.ID, nil
}

func (r *fakeWorkoutRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Workout, error) {
	w, ok := r.workouts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &w, nil
}

func (r *fakeWorkoutRepo) GetAll(_ context.Context) ([]domain.Workout, error) {
	out := make([]domain.Workout, 0, len(r.workouts))
	for _, w := range r.workouts {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].OriginallyPlannedDay.Before(out[j].OriginallyPlannedDay)
	})
	return out, nil
}

func (r *fakeWorkoutRepo) ExistsByTitleAndDay(_ context.Context, title string, day domain.DateOnly) (bool, error) {
	for _, w := range r.workouts {
		if w.Title == title && w.OriginallyPlannedDay == day {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeWorkoutRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.workouts)), nil
}

type fakeSelectionRepo struct {
	selections map[primitive.ObjectID]domain.WorkoutSelection // keyed by workout id
}

func newFakeSelectionRepo() *fakeSelectionRepo {
	return &fakeSelectionRepo{selections: make(map[primitive.ObjectID]domain.WorkoutSelection)}
}

func (r *fakeSelectionRepo) GetByWorkoutID(_ context.Context, workoutID primitive.ObjectID) (*domain.WorkoutSelection, error) {
	s, ok := r.selections[workoutID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &s, nil
}

func (r *fakeSelectionRepo) GetAll(_ context.Context) ([]domain.WorkoutSelection, error) {
	out := make([]domain.WorkoutSelection, 0, len(r.selections))
	for _, s := range r.selections {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeSelectionRepo) Upsert(_ context.Context, s *domain.WorkoutSelection) error {
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	r.selections[s.WorkoutID] = *s
	return nil
}

func (r *fakeSelectionRepo) DeleteByWorkoutID(_ context.Context, workoutID primitive.ObjectID) error {
	if _, ok := r.selections[workoutID]; !ok {
		return repository.ErrNotFound
	}
	delete(r.selections, workoutID)
	return nil
}

func (r *fakeSelectionRepo) CountSelected(_ context.Context) (int64, error) {
	var n int64
	for _, s := range r.selections {
		if s.IsSelected {
			n++
		}
	}
	return n, nil
}

type fakeCustomRepo struct {
	workouts map[string]domain.CustomWorkout
}

func newFakeCustomRepo() *fakeCustomRepo {
	return &fakeCustomRepo{workouts: make(map[string]domain.CustomWorkout)}
}

func (r *fakeCustomRepo) Create(_ context.Context, w *domain.CustomWorkout) error {
	if _, ok := r.workouts[w.ID]; ok {
		return repository.ErrDuplicate
	}
	r.workouts[w.ID] = *w
	return nil
}

func (r *fakeCustomRepo) GetByID(_ context.Context, id string) (*domain.CustomWorkout, error) {
	w, ok := r.workouts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &w, nil
}

func (r *fakeCustomRepo) GetAll(_ context.Context) ([]domain.CustomWorkout, error) {
	out := make([]domain.CustomWorkout, 0, len(r.workouts))
	for _, w := range r.workouts {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PlannedDate.Before(out[j].PlannedDate)
	})
	return out, nil
}

func (r *fakeCustomRepo) Update(_ context.Context, w *domain.CustomWorkout) error {
	if _, ok := r.workouts[w.ID]; !ok {
		return repository.ErrNotFound
	}
	r.workouts[w.ID] = *w
	return nil
}

func (r *fakeCustomRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.workouts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.workouts, id)
	return nil
}

func (r *fakeCustomRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.workouts)), nil
}

type fakeEventPutter struct {
	events []export.Event
	err    error
}

func (p *fakeEventPutter) PutEvent(_ context.Context, ev export.Event) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, ev)
	return nil
}
