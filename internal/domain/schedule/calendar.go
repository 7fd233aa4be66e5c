package schedule

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Day is one cell of a month grid.
type Day struct {
	DateStr        string
	Date           time.Time
	IsCurrentMonth bool
	IsToday        bool
}

func digits(s string) string {
	return strings.NewReplacer("-", "", ":", "").Replace(s)
}

func sortKey(e Event) string {
	t := e.Time
	if t == "" {
		t = "00:00"
	}
	return digits(e.Date) + digits(t)
}

// SortByDate returns the events ordered date-major, time-minor. Events
// without a time sort as 00:00. The input slice is not modified.
func SortByDate(events []Event) []Event {
	out := make([]Event, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		return sortKey(out[i]) < sortKey(out[j])
	})

	return out
}

// EventsOnDate returns the events whose span includes dateStr: single-day
// events dated exactly dateStr plus multi-day events covering it.
func EventsOnDate(events []Event, dateStr string) []Event {
	d := digits(dateStr)
	out := make([]Event, 0, len(events))
	for _, e := range events {
		start := digits(e.Date)
		end := digits(e.End())
		if d >= start && d <= end {
			out = append(out, e)
		}
	}

	return out
}

// CalendarDays builds the Sunday-start month grid for the given month,
// padded with adjacent-month days so the cell count is a multiple of 7.
func CalendarDays(year int, month time.Month) []Day {
	return calendarDays(year, month, time.Now())
}

func calendarDays(year int, month time.Month, now time.Time) []Day {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	startPad := int(first.Weekday())
	daysInMonth := first.AddDate(0, 1, -1).Day()
	totalCells := ((startPad + daysInMonth + 6) / 7) * 7
	todayStr := now.Format("2006-01-02")

	out := make([]Day, 0, totalCells)
	for i := 0; i < totalCells; i++ {
		offset := i - startPad
		d := first.AddDate(0, 0, offset)
		dateStr := d.Format("2006-01-02")
		out = append(out, Day{
			DateStr:        dateStr,
			Date:           d,
			IsCurrentMonth: offset >= 0 && offset < daysInMonth,
			IsToday:        dateStr == todayStr,
		})
	}

	return out
}

// FormatDate renders a calendar date like "Sat, Feb 14, 2026".
func FormatDate(dateStr string) string {
	if dateStr == "" {
		return ""
	}
	d, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return dateStr
	}

	return d.Format("Mon, Jan 2, 2006")
}

// FormatTime renders an HH:MM clock time on a 12-hour clock.
func FormatTime(t string) string {
	if t == "" {
		return ""
	}
	var h, m int
	if _, err := fmt.Sscanf(t, "%d:%d", &h, &m); err != nil {
		return t
	}
	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}

	return fmt.Sprintf("%d:%02d %s", h12, m, period)
}

// EventTimeLabel is the display label for an event's time slot.
func EventTimeLabel(e Event) string {
	if e.AllDay || e.Time == "" {
		return "All day"
	}
	return FormatTime(e.Time)
}
