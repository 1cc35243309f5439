package calendar

import (
	"alcyxob/workout-planner/internal/domain"
)

// ViewMode selects between the week and month calendar layouts.
type ViewMode string

const (
	ViewWeek  ViewMode = "week"
	ViewMonth ViewMode = "month"
)

// DayCell describes one cell of the rendered grid.
type DayCell struct {
	Day            int             `json:"day"`
	Month          int             `json:"month"`
	Year           int             `json:"year"`
	Date           domain.DateOnly `json:"date"`
	IsCurrentMonth bool            `json:"isCurrentMonth"`
}

func cellFor(d domain.DateOnly, currentMonth bool) DayCell {
	return DayCell{
		Day:            d.Day,
		Month:          d.Month,
		Year:           d.Year,
		Date:           d,
		IsCurrentMonth: currentMonth,
	}
}

// WeekCells returns exactly 7 cells, Monday through Sunday, for the week
// containing ref. Every cell is flagged as current-month in week mode.
func WeekCells(ref domain.DateOnly) []DayCell {
	start := ref.WeekStart()
	cells := make([]DayCell, 7)
	for i := 0; i < 7; i++ {
		cells[i] = cellFor(start.AddDays(i), true)
	}
	return cells
}

// MonthCells returns a rectangular grid of complete Monday-to-Sunday weeks
// covering ref's month. Leading and trailing cells from adjacent months are
// flagged IsCurrentMonth=false. The length is always a multiple of 7.
func MonthCells(ref domain.DateOnly) []DayCell {
	firstOfMonth := domain.DateOnly{Year: ref.Year, Month: ref.Month, Day: 1}
	lastOfMonth := firstOfMonth.AddMonths(1).AddDays(-1)

	start := firstOfMonth.WeekStart()
	end := lastOfMonth.AddDays(6 - lastOfMonth.Weekday()) // Sunday of the last week

	total := start.DaysUntil(end) + 1
	cells := make([]DayCell, 0, total)
	for d := start; !d.After(end); d = d.AddDays(1) {
		cells = append(cells, cellFor(d, d.Month == ref.Month && d.Year == ref.Year))
	}
	return cells
}

// ViewState drives which grid is generated: a reference date plus a mode.
type ViewState struct {
	Reference domain.DateOnly `json:"reference"`
	Mode      ViewMode        `json:"mode"`
}

// Cells generates the grid for the current state.
func (v ViewState) Cells() []DayCell {
	if v.Mode == ViewMonth {
		return MonthCells(v.Reference)
	}
	return WeekCells(v.Reference)
}

// Next advances one week or one clamped month depending on the mode.
func (v ViewState) Next() ViewState {
	return v.shift(1)
}

// Prev steps back one week or one clamped month.
func (v ViewState) Prev() ViewState {
	return v.shift(-1)
}

func (v ViewState) shift(n int) ViewState {
	if v.Mode == ViewMonth {
		v.Reference = v.Reference.AddMonths(n)
	} else {
		v.Reference = v.Reference.AddDays(7 * n)
	}
	return v
}

// Today resets the reference date, keeping the mode.
func (v ViewState) Today(today domain.DateOnly) ViewState {
	v.Reference = today
	return v
}
