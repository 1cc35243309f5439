package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alcyxob/workout-planner/internal/domain"
)

func TestCustomWorkoutCreate(t *testing.T) {
	svc := NewCustomWorkoutService(newFakeCustomRepo())

	date, _ := domain.ParseDateOnly("2026-01-17")
	hours := 2.0
	created, err := svc.Create(context.Background(), CustomWorkoutInput{
		Title:           "Saturday Group Ride",
		WorkoutType:     "Bike",
		PlannedDate:     date,
		PlannedDuration: &hours,
		TimeOfDay:       strPtr("morning"),
	})
	require.NoError(t, err)

	_, err = uuid.Parse(created.ID)
	assert.NoError(t, err, "custom workouts get UUID ids")
	assert.Equal(t, domain.WorkoutBike, created.WorkoutType)
	require.NotNil(t, created.TimeOfDay)
	assert.Equal(t, domain.TimeMorning, *created.TimeOfDay)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Saturday Group Ride", got.Title)
}

func TestCustomWorkoutCreateRejectsBlankTitle(t *testing.T) {
	svc := NewCustomWorkoutService(newFakeCustomRepo())

	date, _ := domain.ParseDateOnly("2026-01-17")
	_, err := svc.Create(context.Background(), CustomWorkoutInput{Title: "   ", PlannedDate: date})
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestCustomWorkoutUpdateAndDelete(t *testing.T) {
	svc := NewCustomWorkoutService(newFakeCustomRepo())

	date, _ := domain.ParseDateOnly("2026-01-17")
	created, err := svc.Create(context.Background(), CustomWorkoutInput{
		Title:       "Club Swim",
		WorkoutType: "Swim",
		PlannedDate: date,
		TimeOfDay:   strPtr("evening"),
	})
	require.NoError(t, err)

	moved := date.AddDays(1)
	updated, err := svc.Update(context.Background(), created.ID, CustomWorkoutInput{
		Title:       "Club Swim",
		WorkoutType: "Swim",
		PlannedDate: moved,
		TimeOfDay:   strPtr("unscheduled"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-01-18", updated.PlannedDate.String())
	assert.Nil(t, updated.TimeOfDay, "unscheduled clears the slot")

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	_, err = svc.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrCustomWorkoutNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), ErrCustomWorkoutNotFound)
}
