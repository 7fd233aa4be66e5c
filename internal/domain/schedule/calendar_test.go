package schedule

import (
	"testing"
	"time"
)

func TestSortByDate(t *testing.T) {
	events := []Event{
		{ID: "e2", Type: EventGame, Title: "Late game", Date: "2026-02-14", Time: "17:30"},
		{ID: "e1", Type: EventPractice, Title: "Practice", Date: "2026-02-11", Time: "16:00"},
		{ID: "e4", Type: EventPractice, Title: "No time", Date: "2026-02-14"},
		{ID: "e3", Type: EventPractice, Title: "Morning", Date: "2026-02-14", Time: "08:00"},
	}

	sorted := SortByDate(events)
	want := []string{"e1", "e4", "e3", "e2"}
	for i, id := range want {
		if sorted[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, sorted[i].ID)
		}
	}

	if events[0].ID != "e2" {
		t.Fatalf("input slice must not be reordered")
	}
}

func TestEventsOnDate(t *testing.T) {
	events := []Event{
		{ID: "single", Type: EventPractice, Title: "Prep", Date: "2026-02-20"},
		{ID: "span", Type: EventTournament, Title: "Invitational", Date: "2026-02-21", EndDate: "2026-02-22"},
	}

	tests := []struct {
		date string
		want []string
	}{
		{date: "2026-02-20", want: []string{"single"}},
		{date: "2026-02-21", want: []string{"span"}},
		{date: "2026-02-22", want: []string{"span"}},
		{date: "2026-02-23", want: nil},
	}

	for _, tc := range tests {
		got := EventsOnDate(events, tc.date)
		if len(got) != len(tc.want) {
			t.Fatalf("%s: expected %d events, got %d", tc.date, len(tc.want), len(got))
		}
		for i, id := range tc.want {
			if got[i].ID != id {
				t.Fatalf("%s: expected %s at %d, got %s", tc.date, id, i, got[i].ID)
			}
		}
	}
}

func TestCalendarDaysFebruary2026(t *testing.T) {
	now := time.Date(2026, 2, 11, 15, 0, 0, 0, time.UTC)
	days := calendarDays(2026, time.February, now)

	if len(days)%7 != 0 {
		t.Fatalf("cell count %d is not a multiple of 7", len(days))
	}

	// Feb 1 2026 is a Sunday, so the grid starts on the month itself.
	if days[0].DateStr != "2026-02-01" || !days[0].IsCurrentMonth {
		t.Fatalf("unexpected first cell: %+v", days[0])
	}

	var today *Day
	for i := range days {
		if days[i].IsToday {
			today = &days[i]
		}
	}
	if today == nil || today.DateStr != "2026-02-11" {
		t.Fatalf("expected 2026-02-11 flagged as today, got %+v", today)
	}

	// 28 days starting on Sunday fill the grid exactly.
	if len(days) != 28 {
		t.Fatalf("expected 28 cells for February 2026, got %d", len(days))
	}
	last := days[len(days)-1]
	if last.DateStr != "2026-02-28" || !last.IsCurrentMonth {
		t.Fatalf("unexpected last cell: %+v", last)
	}
}

func TestCalendarDaysLeadingPadding(t *testing.T) {
	days := calendarDays(2026, time.March, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	// Mar 1 2026 is a Sunday as well; April starts mid-week.
	aprDays := calendarDays(2026, time.April, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))
	if aprDays[0].IsCurrentMonth {
		t.Fatalf("expected leading padding before April 1, got %+v", aprDays[0])
	}
	if aprDays[0].Date.Weekday() != time.Sunday {
		t.Fatalf("grid must start on Sunday, got %s", aprDays[0].Date.Weekday())
	}

	if days[0].DateStr != "2026-03-01" {
		t.Fatalf("unexpected first March cell: %+v", days[0])
	}
}

func TestEventTimeLabel(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  string
	}{
		{name: "all day flag", event: Event{Type: EventTournament, AllDay: true, Time: "08:00"}, want: "All day"},
		{name: "no time", event: Event{Type: EventGame}, want: "All day"},
		{name: "afternoon", event: Event{Type: EventGame, Time: "17:30"}, want: "5:30 PM"},
		{name: "morning", event: Event{Type: EventPractice, Time: "08:05"}, want: "8:05 AM"},
		{name: "noon", event: Event{Type: EventGame, Time: "12:00"}, want: "12:00 PM"},
		{name: "midnight", event: Event{Type: EventGame, Time: "00:30"}, want: "12:30 AM"},
	}

	for _, tc := range tests {
		if got := EventTimeLabel(tc.event); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate("2026-02-14"); got != "Sat, Feb 14, 2026" {
		t.Fatalf("unexpected formatted date: %q", got)
	}
	if got := FormatDate(""); got != "" {
		t.Fatalf("empty date should stay empty, got %q", got)
	}
}
