package domain

// WeeklyTarget summarizes the planned load for one training week, keyed by
// the Monday that starts it. Clients match targets to calendar rows by the
// week-start date string.
type WeeklyTarget struct {
	WeekStart           DateOnly `bson:"weekStart" json:"weekStart"`
	TargetTSS           float64  `bson:"targetTss" json:"targetTss"`
	TargetDurationHours float64  `bson:"targetDurationHours" json:"targetDurationHours"`
	WorkoutCount        int      `bson:"workoutCount" json:"workoutCount"`
}
