package domain

// TriClubEvent is one entry of the club's recurring weekly schedule: a
// clock time ("HH:MM", 24-hour) and an activity name.
type TriClubEvent struct {
	Time     string `bson:"time" json:"time"`
	Activity string `bson:"activity" json:"activity"`
}

// TriClubSchedule maps lowercase English weekday names ("monday" ..
// "sunday") to that day's recurring events. It is independent of concrete
// dates; projection onto a date happens by weekday lookup.
type TriClubSchedule map[string][]TriClubEvent

// EventsOn returns the events for the given weekday name, or nil when the
// schedule has no entry for that day.
func (s TriClubSchedule) EventsOn(weekday string) []TriClubEvent {
	if s == nil {
		return nil
	}
	return s[weekday]
}
