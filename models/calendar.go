package models

import "time"

// DateLayout is the wire format for calendar dates throughout the API.
const DateLayout = "2006-01-02"

// MonthCursor is the month currently displayed in the calendar, independent
// of the visitor's selected booking date.
type MonthCursor struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"` // 1-12
}

// CursorFor returns the cursor for the month containing t.
func CursorFor(t time.Time) MonthCursor {
	return MonthCursor{Year: t.Year(), Month: t.Month()}
}

// DayCell is one cell of the rendered month grid. Day == 0 marks a leading
// blank cell before the 1st of the month.
type DayCell struct {
	Day      int  `json:"day"`
	Past     bool `json:"past,omitempty"`
	Today    bool `json:"today,omitempty"`
	Selected bool `json:"selected,omitempty"`
}

// MonthGrid is the rendered calendar for one month.
type MonthGrid struct {
	Year         int        `json:"year"`
	Month        time.Month `json:"month"`
	MonthName    string     `json:"monthName"`
	LeadingBlank int        `json:"leadingBlank"` // weekday index of the 1st, Sunday = 0
	Cells        []DayCell  `json:"cells"`
}
