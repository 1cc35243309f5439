package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutType classifies a training session.
type WorkoutType string

const (
	WorkoutSwim     WorkoutType = "Swim"
	WorkoutBike     WorkoutType = "Bike"
	WorkoutRun      WorkoutType = "Run"
	WorkoutStrength WorkoutType = "Strength"
	WorkoutOther    WorkoutType = "Other"
	WorkoutDayOff   WorkoutType = "Day Off"
)

// ParseWorkoutType maps free-form CSV values onto the known set; anything
// unrecognized becomes Other.
func ParseWorkoutType(s string) WorkoutType {
	switch WorkoutType(s) {
	case WorkoutSwim, WorkoutBike, WorkoutRun, WorkoutStrength, WorkoutDayOff:
		return WorkoutType(s)
	default:
		return WorkoutOther
	}
}

// TimeOfDay is the canonical internal slot value. Persistence and the API
// never store the literal "unscheduled"; it crosses those boundaries as an
// absent value. ParseTimeOfDay and TimeOfDayForStorage do the translation.
type TimeOfDay string

const (
	TimeMorning     TimeOfDay = "morning"
	TimeAfternoon   TimeOfDay = "afternoon"
	TimeEvening     TimeOfDay = "evening"
	TimeUnscheduled TimeOfDay = "unscheduled"
)

// ParseTimeOfDay maps a possibly absent or unrecognized value onto the
// canonical internal representation.
func ParseTimeOfDay(s *string) TimeOfDay {
	if s == nil {
		return TimeUnscheduled
	}
	switch TimeOfDay(*s) {
	case TimeMorning, TimeAfternoon, TimeEvening:
		return TimeOfDay(*s)
	default:
		return TimeUnscheduled
	}
}

// TimeOfDayForStorage translates the canonical value back to the boundary
// representation: nil for unscheduled, the literal slot otherwise.
func TimeOfDayForStorage(t TimeOfDay) *TimeOfDay {
	if t == TimeUnscheduled || t == "" {
		return nil
	}
	return &t
}

// WorkoutLocation is only meaningful for Bike workouts.
type WorkoutLocation string

const (
	LocationIndoor  WorkoutLocation = "indoor"
	LocationOutdoor WorkoutLocation = "outdoor"
)

// Workout is a coach-planned session imported from a TrainingPeaks CSV.
// The imported fields are immutable; all user modifications live on the
// attached WorkoutSelection.
type Workout struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title                 string             `bson:"title" json:"title"`
	WorkoutType           WorkoutType        `bson:"workoutType" json:"workoutType"`
	Description           string             `bson:"description,omitempty" json:"workoutDescription"`
	PlannedDuration       *float64           `bson:"plannedDuration,omitempty" json:"plannedDuration"` // hours
	PlannedDistanceMeters *float64           `bson:"plannedDistanceMeters,omitempty" json:"plannedDistanceInMeters"`
	OriginallyPlannedDay  DateOnly           `bson:"originallyPlannedDay" json:"originallyPlannedDay"`
	CoachComments         string             `bson:"coachComments,omitempty" json:"coachComments"`
	TSS                   *float64           `bson:"tss,omitempty" json:"tss"`
	IntensityFactor       *float64           `bson:"intensityFactor,omitempty" json:"intensityFactor"`
	CreatedAt             time.Time          `bson:"createdAt" json:"createdAt"`

	// Selection is joined in at the service layer; it lives in its own
	// collection so re-imports never clobber user choices.
	Selection *WorkoutSelection `bson:"-" json:"selection,omitempty"`
}

// CurrentPlanDay is the day the workout is displayed on: the selection's
// override when the user moved it, otherwise the coach's original day.
func (w *Workout) CurrentPlanDay() DateOnly {
	if w.Selection != nil && w.Selection.CurrentPlanDay != nil {
		return *w.Selection.CurrentPlanDay
	}
	return w.OriginallyPlannedDay
}

// TimeOfDay returns the canonical slot, Unscheduled when none is set.
func (w *Workout) TimeOfDay() TimeOfDay {
	if w.Selection != nil && w.Selection.TimeOfDay != nil {
		return *w.Selection.TimeOfDay
	}
	return TimeUnscheduled
}

// IsSelected reports whether the workout is part of the active plan.
func (w *Workout) IsSelected() bool {
	return w.Selection != nil && w.Selection.IsSelected
}

// WorkoutSelection records the user's modifications to one workout: whether
// it is part of the plan, where it was moved, and when in the day it runs.
type WorkoutSelection struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	WorkoutID       primitive.ObjectID `bson:"workoutId" json:"workoutId"`
	IsSelected      bool               `bson:"isSelected" json:"isSelected"`
	CurrentPlanDay  *DateOnly          `bson:"currentPlanDay,omitempty" json:"currentPlanDay,omitempty"`
	TimeOfDay       *TimeOfDay         `bson:"timeOfDay,omitempty" json:"timeOfDay,omitempty"`
	WorkoutLocation *WorkoutLocation   `bson:"workoutLocation,omitempty" json:"workoutLocation,omitempty"`
	UserNotes       string             `bson:"userNotes,omitempty" json:"userNotes,omitempty"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CustomWorkout is a user-created session (e.g. a weekly group ride). Custom
// workouts carry string UUIDs so clients can tell them apart from imported
// workouts by the shape of the id alone.
type CustomWorkout struct {
	ID              string     `bson:"_id" json:"id"`
	Title           string     `bson:"title" json:"title"`
	WorkoutType     WorkoutType `bson:"workoutType" json:"workoutType"`
	Description     string     `bson:"description,omitempty" json:"description"`
	PlannedDate     DateOnly   `bson:"plannedDate" json:"plannedDate"`
	PlannedDuration *float64   `bson:"plannedDuration,omitempty" json:"plannedDuration"`
	TimeOfDay       *TimeOfDay `bson:"timeOfDay,omitempty" json:"timeOfDay,omitempty"`
	CreatedAt       time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time  `bson:"updatedAt" json:"updatedAt"`
}
