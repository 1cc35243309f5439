package domain

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// DateOnlyLayout is the only wire format for calendar dates: zero-padded,
// no time component, no timezone suffix.
const DateOnlyLayout = "2006-01-02"

// DateOnly is a plain calendar date (year, month, day). Unlike time.Time it
// carries no clock or zone, so moving a workout between days can never shift
// it across a DST or timezone boundary.
type DateOnly struct {
	Year  int
	Month int // 1-12
	Day   int // 1-31
}

// NewDateOnly builds a DateOnly from calendar fields. Out-of-range fields are
// normalized the same way time.Date normalizes them (Feb 30 -> Mar 1/2).
func NewDateOnly(year, month, day int) DateOnly {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return DateOnly{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// ParseDateOnly parses a "YYYY-MM-DD" string.
func ParseDateOnly(s string) (DateOnly, error) {
	t, err := time.Parse(DateOnlyLayout, s)
	if err != nil {
		return DateOnly{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOnly{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}, nil
}

// DateOnlyFromTime drops the clock portion of t in its own location.
func DateOnlyFromTime(t time.Time) DateOnly {
	return DateOnly{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// Today returns the current calendar date in local time.
func Today() DateOnly {
	return DateOnlyFromTime(time.Now())
}

// Time returns the date at midnight UTC, for arithmetic via the time package.
func (d DateOnly) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

func (d DateOnly) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d DateOnly) IsZero() bool {
	return d == DateOnly{}
}

func (d DateOnly) Equal(other DateOnly) bool {
	return d == other
}

// Compare orders dates lexicographically over (year, month, day).
// Returns -1, 0 or +1.
func (d DateOnly) Compare(other DateOnly) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(d.Month - other.Month)
	default:
		return sign(d.Day - other.Day)
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

func (d DateOnly) Before(other DateOnly) bool { return d.Compare(other) < 0 }
func (d DateOnly) After(other DateOnly) bool  { return d.Compare(other) > 0 }

// InRange reports whether d lies in [start, end], inclusive on both ends.
func (d DateOnly) InRange(start, end DateOnly) bool {
	return !d.Before(start) && !d.After(end)
}

// AddDays returns the date n days later (or earlier for negative n).
func (d DateOnly) AddDays(n int) DateOnly {
	return DateOnlyFromTime(d.Time().AddDate(0, 0, n))
}

// AddMonths shifts the date by n calendar months, clamping the day of month
// at the end of the target month. Jan 31 plus one month is Feb 28 (or 29),
// never March.
func (d DateOnly) AddMonths(n int) DateOnly {
	first := time.Date(d.Year, time.Month(d.Month), 1, 0, 0, 0, 0, time.UTC)
	target := first.AddDate(0, n, 0)
	day := d.Day
	if last := daysInMonth(target.Year(), int(target.Month())); day > last {
		day = last
	}
	return DateOnly{Year: target.Year(), Month: int(target.Month()), Day: day}
}

func daysInMonth(year, month int) int {
	// Day 0 of the next month is the last day of this month.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Weekday returns the day of week with Monday = 0 .. Sunday = 6.
func (d DateOnly) Weekday() int {
	return (int(d.Time().Weekday()) + 6) % 7
}

// WeekdayName returns the lowercase English day-of-week name, the key format
// used by the tri club weekly schedule.
func (d DateOnly) WeekdayName() string {
	names := [...]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
	return names[d.Weekday()]
}

// WeekStart returns the Monday of the week containing d.
func (d DateOnly) WeekStart() DateOnly {
	return d.AddDays(-d.Weekday())
}

// DaysUntil returns the number of whole days from d to other (negative when
// other is earlier).
func (d DateOnly) DaysUntil(other DateOnly) int {
	return int(other.Time().Sub(d.Time()).Hours() / 24)
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("invalid date JSON: %s", data)
	}
	parsed, err := ParseDateOnly(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalBSONValue stores the date as its string form so documents stay
// readable and range queries sort correctly.
func (d DateOnly) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(d.String())
}

func (d *DateOnly) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	var s string
	if err := bson.UnmarshalValue(t, data, &s); err != nil {
		return err
	}
	parsed, err := ParseDateOnly(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
