package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateOnly_RoundTrip(t *testing.T) {
	for _, s := range []string{"2026-01-15", "2024-02-29", "1999-12-31", "2026-07-04"} {
		d, err := ParseDateOnly(s)
		require.NoError(t, err)
		assert.Equal(t, s, d.String())

		again, err := ParseDateOnly(d.String())
		require.NoError(t, err)
		assert.True(t, d.Equal(again))
	}
}

func TestParseDateOnly_Rejects(t *testing.T) {
	for _, s := range []string{"", "2026-1-15", "2026-13-01", "2023-02-29", "2026-01-15T00:00:00Z", "not a date"} {
		_, err := ParseDateOnly(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestDateOnly_Ordering(t *testing.T) {
	a := DateOnly{2025, 12, 31}
	b := DateOnly{2026, 1, 1}

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 0, a.Compare(a))
	assert.True(t, b.InRange(a, DateOnly{2026, 1, 2}))
	assert.False(t, a.InRange(b, DateOnly{2026, 1, 2}))
}

func TestDateOnly_AddDaysAcrossYear(t *testing.T) {
	d := DateOnly{2025, 12, 30}
	assert.Equal(t, DateOnly{2026, 1, 2}, d.AddDays(3))
	assert.Equal(t, DateOnly{2025, 12, 27}, d.AddDays(-3))
}

func TestDateOnly_AddMonthsClamps(t *testing.T) {
	assert.Equal(t, DateOnly{2026, 2, 28}, DateOnly{2026, 1, 31}.AddMonths(1))
	assert.Equal(t, DateOnly{2024, 2, 29}, DateOnly{2024, 1, 31}.AddMonths(1))
	assert.Equal(t, DateOnly{2025, 12, 15}, DateOnly{2026, 1, 15}.AddMonths(-1))
	assert.Equal(t, DateOnly{2026, 4, 30}, DateOnly{2026, 3, 31}.AddMonths(1))
}

func TestDateOnly_WeekdayMondayZero(t *testing.T) {
	// 2026-01-12 is a Monday, 2026-01-18 a Sunday.
	assert.Equal(t, 0, DateOnly{2026, 1, 12}.Weekday())
	assert.Equal(t, 6, DateOnly{2026, 1, 18}.Weekday())
	assert.Equal(t, "monday", DateOnly{2026, 1, 12}.WeekdayName())
	assert.Equal(t, "sunday", DateOnly{2026, 1, 18}.WeekdayName())
}

func TestDateOnly_WeekStart(t *testing.T) {
	monday := DateOnly{2026, 1, 12}
	for i := 0; i < 7; i++ {
		assert.Equal(t, monday, monday.AddDays(i).WeekStart())
	}
}

func TestDateOnly_JSON(t *testing.T) {
	type payload struct {
		Day DateOnly `json:"day"`
	}

	out, err := json.Marshal(payload{Day: DateOnly{2026, 1, 5}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"day":"2026-01-05"}`, string(out))

	var in payload
	require.NoError(t, json.Unmarshal([]byte(`{"day":"2026-01-05"}`), &in))
	assert.Equal(t, DateOnly{2026, 1, 5}, in.Day)

	assert.Error(t, json.Unmarshal([]byte(`{"day":"05/01/2026"}`), &in))
}

func TestDateOnly_DaysUntil(t *testing.T) {
	a := DateOnly{2026, 1, 15}
	assert.Equal(t, 16, a.DaysUntil(DateOnly{2026, 1, 31}))
	assert.Equal(t, -15, a.DaysUntil(DateOnly{2025, 12, 31}))
}

func TestTimeOfDayTranslation(t *testing.T) {
	s := "morning"
	assert.Equal(t, TimeMorning, ParseTimeOfDay(&s))
	assert.Equal(t, TimeUnscheduled, ParseTimeOfDay(nil))

	weird := "second breakfast"
	assert.Equal(t, TimeUnscheduled, ParseTimeOfDay(&weird))

	// The literal "unscheduled" must persist as an absent value.
	assert.Nil(t, TimeOfDayForStorage(TimeUnscheduled))
	require.NotNil(t, TimeOfDayForStorage(TimeEvening))
	assert.Equal(t, TimeEvening, *TimeOfDayForStorage(TimeEvening))
}
