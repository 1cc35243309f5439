package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alcyxob/workout-planner/internal/domain"
)

func TestExportRangeGroupsByDay(t *testing.T) {
	workoutRepo := newFakeWorkoutRepo()
	selectionRepo := newFakeSelectionRepo()
	planner := NewPlannerService(workoutRepo, selectionRepo, newFakeCustomRepo())
	putter := &fakeEventPutter{}
	svc := NewExportService(planner, putter, discardLogger())

	swim := seedWorkout(t, workoutRepo, "Endurance Swim", "2026-01-12", 55, 1.0)
	swim.WorkoutType = domain.WorkoutSwim
	workoutRepo.workouts[swim.ID] = *swim
	run := seedWorkout(t, workoutRepo, "Easy Run", "2026-01-12", 30, 0.5)
	ride := seedWorkout(t, workoutRepo, "Tempo Ride", "2026-01-14", 95, 1.5)
	ride.WorkoutType = domain.WorkoutBike
	workoutRepo.workouts[ride.ID] = *ride
	seedWorkout(t, workoutRepo, "Outside Range", "2026-02-01", 40, 1.0)

	for _, id := range []string{swim.ID.Hex(), run.ID.Hex(), ride.ID.Hex()} {
		_, err := planner.UpdateSelection(context.Background(), id, SelectionUpdate{})
		require.NoError(t, err)
	}

	start, _ := domain.ParseDateOnly("2026-01-12")
	end, _ := domain.ParseDateOnly("2026-01-18")
	result, err := svc.ExportRange(context.Background(), start, end)
	require.NoError(t, err)

	assert.Equal(t, 2, result.EventsCreated)
	require.Len(t, putter.events, 2)

	monday := putter.events[0]
	assert.Equal(t, "workout-plan-2026-01-12", monday.UID)
	assert.Equal(t, "Swim 1.0h + Run 0.5h", monday.Summary)
	assert.Contains(t, monday.Description, "Endurance Swim")
	assert.Contains(t, monday.Description, "Easy Run")

	wednesday := putter.events[1]
	assert.Equal(t, "workout-plan-2026-01-14", wednesday.UID)
	assert.Equal(t, "Bike 1.5h", wednesday.Summary)
}

func TestExportRangeSkipsUnselected(t *testing.T) {
	workoutRepo := newFakeWorkoutRepo()
	planner := NewPlannerService(workoutRepo, newFakeSelectionRepo(), newFakeCustomRepo())
	putter := &fakeEventPutter{}
	svc := NewExportService(planner, putter, discardLogger())

	seedWorkout(t, workoutRepo, "No Selection", "2026-01-12", 40, 1.0)

	start, _ := domain.ParseDateOnly("2026-01-12")
	end, _ := domain.ParseDateOnly("2026-01-18")
	result, err := svc.ExportRange(context.Background(), start, end)
	require.NoError(t, err)
	assert.Equal(t, 0, result.EventsCreated)
	assert.Empty(t, putter.events)
}

func TestExportRangeSwapsReversedBounds(t *testing.T) {
	workoutRepo := newFakeWorkoutRepo()
	planner := NewPlannerService(workoutRepo, newFakeSelectionRepo(), newFakeCustomRepo())
	svc := NewExportService(planner, &fakeEventPutter{}, discardLogger())

	w := seedWorkout(t, workoutRepo, "Run", "2026-01-14", 40, 1.0)
	_, err := planner.UpdateSelection(context.Background(), w.ID.Hex(), SelectionUpdate{})
	require.NoError(t, err)

	start, _ := domain.ParseDateOnly("2026-01-18")
	end, _ := domain.ParseDateOnly("2026-01-12")
	result, err := svc.ExportRange(context.Background(), start, end)
	require.NoError(t, err)
	assert.Equal(t, 1, result.EventsCreated)
}

func TestExportEventWithoutDuration(t *testing.T) {
	day, _ := domain.ParseDateOnly("2026-01-12")
	ev := buildDayEvent(day, []*domain.Workout{
		{Title: "Rest", WorkoutType: domain.WorkoutDayOff},
	})
	assert.Equal(t, "Day Off", ev.Summary)
}
