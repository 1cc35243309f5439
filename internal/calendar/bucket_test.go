package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"alcyxob/workout-planner/internal/domain"
)

func makeWorkout(title string, day domain.DateOnly, selected bool, slot *domain.TimeOfDay) domain.Workout {
	w := domain.Workout{
		ID:                   primitive.NewObjectID(),
		Title:                title,
		WorkoutType:          domain.WorkoutRun,
		OriginallyPlannedDay: day,
		CreatedAt:            time.Now(),
	}
	w.Selection = &domain.WorkoutSelection{
		WorkoutID:  w.ID,
		IsSelected: selected,
		TimeOfDay:  slot,
	}
	return w
}

func slot(t domain.TimeOfDay) *domain.TimeOfDay { return &t }

func TestForDate_SelectedFirstStable(t *testing.T) {
	day := date(2026, 1, 15)
	other := date(2026, 1, 16)

	a := makeWorkout("a", day, false, nil)
	b := makeWorkout("b", day, true, nil)
	c := makeWorkout("c", day, false, nil)
	d := makeWorkout("d", day, true, nil)
	e := makeWorkout("e", other, true, nil)

	got := ForDate([]domain.Workout{a, b, c, d, e}, day)

	require.Len(t, got, 4)
	// Selected entries first, each group in input order.
	assert.Equal(t, "b", got[0].Title)
	assert.Equal(t, "d", got[1].Title)
	assert.Equal(t, "a", got[2].Title)
	assert.Equal(t, "c", got[3].Title)
}

func TestForDate_UsesCurrentPlanDayOverride(t *testing.T) {
	moved := makeWorkout("moved", date(2026, 1, 10), true, nil)
	target := date(2026, 1, 15)
	moved.Selection.CurrentPlanDay = &target

	got := ForDate([]domain.Workout{moved}, target)
	require.Len(t, got, 1)

	got = ForDate([]domain.Workout{moved}, date(2026, 1, 10))
	assert.Empty(t, got, "moved workout no longer appears on its original day")
}

func TestForDate_PartitionAcrossDates(t *testing.T) {
	days := []domain.DateOnly{date(2026, 1, 1), date(2026, 1, 2), date(2026, 1, 3)}
	var all []domain.Workout
	for i, d := range days {
		for j := 0; j <= i; j++ {
			all = append(all, makeWorkout(d.String(), d, j%2 == 0, nil))
		}
	}

	total := 0
	for _, d := range days {
		total += len(ForDate(all, d))
	}
	assert.Equal(t, len(all), total, "per-date buckets must partition the input")
}

func TestByTimeOfDay_PartitionsIntoFourBuckets(t *testing.T) {
	day := date(2026, 1, 15)
	ws := []domain.Workout{
		makeWorkout("m", day, true, slot(domain.TimeMorning)),
		makeWorkout("a", day, true, slot(domain.TimeAfternoon)),
		makeWorkout("e", day, true, slot(domain.TimeEvening)),
		makeWorkout("none", day, true, nil),
	}

	b := ByTimeOfDay(ws)

	assert.Len(t, b.Morning, 1)
	assert.Len(t, b.Afternoon, 1)
	assert.Len(t, b.Evening, 1)
	assert.Len(t, b.Unscheduled, 1)
	assert.Equal(t, len(ws), b.Total(), "no workout duplicated or dropped")
}

func TestByTimeOfDay_MissingSelectionIsUnscheduled(t *testing.T) {
	w := makeWorkout("bare", date(2026, 1, 15), true, nil)
	w.Selection = nil

	b := ByTimeOfDay([]domain.Workout{w})
	require.Len(t, b.Unscheduled, 1)
	assert.Equal(t, 1, b.Total())
}
