package workflow

import (
	"time"

	"mindease/models"
)

// BuildCalendarGrid lays out one month as a flat cell sequence: leading blank
// cells up to the first weekday (Sunday = 0), then one cell per day with
// past/today/selection flags. The function is pure — identical inputs always
// yield an identical grid — and compares dates calendar-day only, so the
// caller's clock resolution never leaks in. `today` must be the real current
// date regardless of which month is being viewed; past-day disabling only
// bites when the viewed month contains it.
func BuildCalendarGrid(year int, month time.Month, today time.Time, sel models.CalendarSelection) []models.CalendarCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := int(first.Weekday())
	// Day 0 of the next month is the last day of this one.
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	todayStr := dateOnly(today)

	cells := make([]models.CalendarCell, 0, offset+daysInMonth)
	for i := 0; i < offset; i++ {
		cells = append(cells, models.CalendarCell{})
	}
	for day := 1; day <= daysInMonth; day++ {
		dateStr := first.AddDate(0, 0, day-1).Format(dateLayout)
		cells = append(cells, models.CalendarCell{
			Day:                day,
			IsPast:             dateStr < todayStr,
			IsToday:            dateStr == todayStr,
			IsSelected:         (sel.Preferred != "" && dateStr == sel.Preferred) || (sel.Alternative != "" && dateStr == sel.Alternative),
			IsPrimarySelection: sel.Preferred != "" && dateStr == sel.Preferred,
		})
	}
	return cells
}
