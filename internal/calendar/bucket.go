package calendar

import (
	"alcyxob/workout-planner/internal/domain"
)

// ForDate returns the workouts displayed on the given day, selected entries
// first. This is a stable partition, not a sort: entries with equal selection
// status keep their relative input order.
func ForDate(workouts []domain.Workout, date domain.DateOnly) []domain.Workout {
	var selected, rest []domain.Workout
	for _, w := range workouts {
		if !w.CurrentPlanDay().Equal(date) {
			continue
		}
		if w.IsSelected() {
			selected = append(selected, w)
		} else {
			rest = append(rest, w)
		}
	}
	return append(selected, rest...)
}

// SlotBuckets holds one day's workouts partitioned by time of day.
type SlotBuckets struct {
	Morning     []domain.Workout `json:"morning"`
	Afternoon   []domain.Workout `json:"afternoon"`
	Evening     []domain.Workout `json:"evening"`
	Unscheduled []domain.Workout `json:"unscheduled"`
}

// Total returns the number of workouts across all four buckets.
func (b SlotBuckets) Total() int {
	return len(b.Morning) + len(b.Afternoon) + len(b.Evening) + len(b.Unscheduled)
}

// ByTimeOfDay partitions one day's workouts into the four slot buckets.
// A workout with no time of day, or an unrecognized one, lands in
// Unscheduled. Every workout appears in exactly one bucket.
func ByTimeOfDay(workouts []domain.Workout) SlotBuckets {
	var b SlotBuckets
	for _, w := range workouts {
		switch w.TimeOfDay() {
		case domain.TimeMorning:
			b.Morning = append(b.Morning, w)
		case domain.TimeAfternoon:
			b.Afternoon = append(b.Afternoon, w)
		case domain.TimeEvening:
			b.Evening = append(b.Evening, w)
		default:
			b.Unscheduled = append(b.Unscheduled, w)
		}
	}
	return b
}
