package calendar

import (
	"fmt"
	"strconv"
	"strings"

	"alcyxob/workout-planner/internal/domain"
)

// ProjectedEvent is a tri club event resolved onto a concrete date, with a
// short 12-hour label for display ("07:00" -> "7am").
type ProjectedEvent struct {
	Activity      string `json:"activity"`
	Time          string `json:"time"`
	FormattedTime string `json:"formattedTime"`
}

// ProjectedDay holds one date's club events bucketed by time of day.
type ProjectedDay struct {
	Morning     []ProjectedEvent `json:"morning"`
	Afternoon   []ProjectedEvent `json:"afternoon"`
	Evening     []ProjectedEvent `json:"evening"`
	Unscheduled []ProjectedEvent `json:"unscheduled"`
}

// ProjectTriClub resolves the weekly schedule onto a concrete date. An
// absent schedule or missing day entry yields four empty buckets; it never
// fails.
func ProjectTriClub(schedule domain.TriClubSchedule, date domain.DateOnly) ProjectedDay {
	var day ProjectedDay
	for _, ev := range schedule.EventsOn(date.WeekdayName()) {
		projected := ProjectedEvent{
			Activity:      ev.Activity,
			Time:          ev.Time,
			FormattedTime: FormatTime12Hour(ev.Time),
		}
		switch SlotForClock(ev.Time) {
		case domain.TimeMorning:
			day.Morning = append(day.Morning, projected)
		case domain.TimeAfternoon:
			day.Afternoon = append(day.Afternoon, projected)
		case domain.TimeEvening:
			day.Evening = append(day.Evening, projected)
		default:
			day.Unscheduled = append(day.Unscheduled, projected)
		}
	}
	return day
}

// SlotForClock buckets an "HH:MM" clock time into a time-of-day slot:
// 05:00-11:59 morning, 12:00-16:59 afternoon, 17:00-21:59 evening,
// everything else (late night and unparseable values) unscheduled.
func SlotForClock(hhmm string) domain.TimeOfDay {
	hour, ok := parseHour(hhmm)
	if !ok {
		return domain.TimeUnscheduled
	}
	switch {
	case hour >= 5 && hour < 12:
		return domain.TimeMorning
	case hour >= 12 && hour < 17:
		return domain.TimeAfternoon
	case hour >= 17 && hour < 22:
		return domain.TimeEvening
	default:
		return domain.TimeUnscheduled
	}
}

// FormatTime12Hour renders an "HH:MM" time as a compact 12-hour label:
// "00:00" -> "12am", "12:00" -> "12pm", "14:30" -> "2pm". Unparseable input
// is returned unchanged.
func FormatTime12Hour(hhmm string) string {
	hour, ok := parseHour(hhmm)
	if !ok {
		return hhmm
	}
	suffix := "am"
	display := hour
	switch {
	case hour == 0:
		display = 12
	case hour == 12:
		suffix = "pm"
	case hour > 12:
		display = hour - 12
		suffix = "pm"
	}
	return fmt.Sprintf("%d%s", display, suffix)
}

func parseHour(hhmm string) (int, bool) {
	h, _, found := strings.Cut(hhmm, ":")
	if !found {
		return 0, false
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	return hour, true
}
