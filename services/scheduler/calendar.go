package scheduler

import (
	"time"

	"bookcall/models"
)

// Direction pages the calendar cursor.
type Direction string

const (
	Previous Direction = "previous"
	Next     Direction = "next"
)

// daysInMonth exploits time.Date normalization: day 0 of the next month is
// the last day of this one. Handles leap years.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// firstWeekday returns the weekday index of the 1st, Sunday = 0.
func firstWeekday(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// NavigateCursor moves the cursor one month in either direction, rolling the
// year over at the December/January boundaries.
func NavigateCursor(c models.MonthCursor, dir Direction) models.MonthCursor {
	delta := 1
	if dir == Previous {
		delta = -1
	}
	t := time.Date(c.Year, c.Month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	return models.CursorFor(t)
}

// monthsAhead counts whole months between the month containing "from" and
// the cursor; negative when the cursor is in the past.
func monthsAhead(from time.Time, c models.MonthCursor) int {
	return (c.Year-from.Year())*12 + int(c.Month) - int(from.Month())
}

// BuildMonthGrid renders the cursor's month: leading blank cells up to the
// weekday of the 1st, then one cell per day flagged past/today/selected.
// Pure with respect to its inputs.
func BuildMonthGrid(c models.MonthCursor, selectedDate string, today time.Time) models.MonthGrid {
	grid := models.MonthGrid{
		Year:         c.Year,
		Month:        c.Month,
		MonthName:    c.Month.String(),
		LeadingBlank: firstWeekday(c.Year, c.Month),
	}

	todayMid := midnight(today)
	days := daysInMonth(c.Year, c.Month)
	grid.Cells = make([]models.DayCell, 0, grid.LeadingBlank+days)

	for i := 0; i < grid.LeadingBlank; i++ {
		grid.Cells = append(grid.Cells, models.DayCell{})
	}

	for day := 1; day <= days; day++ {
		date := time.Date(c.Year, c.Month, day, 0, 0, 0, 0, today.Location())
		cell := models.DayCell{
			Day:      day,
			Past:     date.Before(todayMid),
			Today:    date.Equal(todayMid),
			Selected: selectedDate != "" && date.Format(models.DateLayout) == selectedDate,
		}
		grid.Cells = append(grid.Cells, cell)
	}

	return grid
}

// checkSelectable rejects dates strictly before today at midnight. Today is
// selectable.
func checkSelectable(date string, today time.Time) error {
	d, err := time.ParseInLocation(models.DateLayout, date, today.Location())
	if err != nil {
		return NewValidationError("date")
	}
	if d.Before(midnight(today)) {
		return NewPastDateError(date)
	}
	return nil
}
