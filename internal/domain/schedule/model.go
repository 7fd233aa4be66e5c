package schedule

import "fmt"

// EventType classifies a schedule entry.
type EventType string

const (
	EventGame       EventType = "game"
	EventPractice   EventType = "practice"
	EventTournament EventType = "tournament"
)

var AllEventTypes = map[EventType]struct{}{
	EventGame:       {},
	EventPractice:   {},
	EventTournament: {},
}

// Event is one schedule entry of a team. Date and EndDate are calendar
// dates in YYYY-MM-DD form with no time zone. EndDate is only meaningful
// for tournaments and defines the inclusive span [Date, EndDate]; it
// defaults to Date when absent. AllDay is only meaningful for games and
// tournaments.
type Event struct {
	ID       string    `json:"id"`
	Type     EventType `json:"type"`
	Title    string    `json:"title"`
	Date     string    `json:"date"`
	Time     string    `json:"time,omitempty"`
	AllDay   bool      `json:"allDay,omitempty"`
	EndDate  string    `json:"endDate,omitempty"`
	Location string    `json:"location,omitempty"`
	Opponent string    `json:"opponent,omitempty"`
	Notes    string    `json:"notes,omitempty"`
}

func (e Event) Validate() error {
	if _, ok := AllEventTypes[e.Type]; !ok {
		return fmt.Errorf("unknown event type %q", e.Type)
	}
	if e.Title == "" {
		return fmt.Errorf("event title is required")
	}
	if e.Date == "" {
		return fmt.Errorf("event date is required")
	}

	return nil
}

// End returns the inclusive last date of the event.
func (e Event) End() string {
	if e.EndDate != "" {
		return e.EndDate
	}
	return e.Date
}
