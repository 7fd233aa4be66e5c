package store

import (
	"github.com/setly/teamdesk/internal/domain/message"
	"github.com/setly/teamdesk/internal/domain/roster"
	"github.com/setly/teamdesk/internal/domain/schedule"
	"github.com/setly/teamdesk/internal/domain/team"
)

const (
	// DefaultTeamID is the id given to the team synthesized from a
	// legacy single-team snapshot, and to the initial seeded team.
	DefaultTeamID   = "t1"
	DefaultTeamName = "Varsity"

	// DefaultSenderID backs MESSAGE_SEND when the payload names no sender.
	DefaultSenderID   = "c1"
	DefaultSenderName = "Coach Sarah"
)

// DemoRoster returns the onboarding roster new teams start from.
// Functions rather than vars so every caller gets an independent copy.
func DemoRoster() roster.Roster {
	return roster.Roster{
		Coaches: []roster.Coach{
			{ID: "c1", Name: "Sarah Chen", Role: "Head Coach", Email: "sarah.chen@team.com", Phone: "(555) 101-2020"},
			{ID: "c2", Name: "Mike Torres", Role: "Assistant Coach", Email: "mike.t@team.com", Phone: "(555) 102-2021"},
		},
		Players: []roster.Player{
			{
				ID: "p1", Name: "Emma Johnson", Number: 7, Position: "Setter", Grade: "11",
				Email: "emma.johnson@email.com", ParentContact: "johnson@email.com",
				Guardians: []roster.Guardian{{Name: "Jane Johnson", Relationship: "Mother", Email: "johnson@email.com"}},
			},
			{ID: "p2", Name: "Jordan Lee", Number: 12, Position: "Outside Hitter", Grade: "10", Email: "jordan.lee@email.com", ParentContact: "lee.family@email.com", Guardians: []roster.Guardian{}},
			{ID: "p3", Name: "Alex Rivera", Number: 3, Position: "Libero", Grade: "11", Email: "alex.rivera@email.com", ParentContact: "rivera.a@email.com", Guardians: []roster.Guardian{}},
			{ID: "p4", Name: "Taylor Kim", Number: 9, Position: "Middle Blocker", Grade: "12", Email: "taylor.kim@email.com", ParentContact: "tkim@email.com", Guardians: []roster.Guardian{}},
			{ID: "p5", Name: "Morgan Davis", Number: 5, Position: "Opposite", Grade: "10", Email: "morgan.davis@email.com", ParentContact: "mdavis@email.com", Guardians: []roster.Guardian{}},
			{ID: "p6", Name: "Casey Williams", Number: 14, Position: "Outside Hitter", Grade: "11", Email: "casey.williams@email.com", ParentContact: "cwilliams@email.com", Guardians: []roster.Guardian{}},
		},
	}
}

func DemoSchedule() []schedule.Event {
	return []schedule.Event{
		{ID: "e1", Type: schedule.EventPractice, Title: "Evening Practice", Date: "2026-02-11", Time: "16:00", Location: "Main Gym", Notes: "Focus on serving and receive."},
		{ID: "e2", Type: schedule.EventGame, Title: "vs. Westside Eagles", Date: "2026-02-14", Time: "17:30", Location: "Home - Main Gym", Opponent: "Westside Eagles", Notes: "Wear home jerseys."},
		{ID: "e3", Type: schedule.EventPractice, Title: "Morning Practice", Date: "2026-02-15", Time: "08:00", Location: "Main Gym", Notes: "Film review + drills."},
		{ID: "e4", Type: schedule.EventTournament, Title: "Spring Invitational", Date: "2026-02-21", Time: "08:00", EndDate: "2026-02-22", Location: "Regional Sports Complex", Notes: "All-day Saturday; bracket Sunday."},
		{ID: "e5", Type: schedule.EventGame, Title: "vs. Northview Hawks", Date: "2026-02-18", Time: "18:00", Location: "Away - Northview HS", Opponent: "Northview Hawks", Notes: "Bus departs 16:30."},
		{ID: "e6", Type: schedule.EventPractice, Title: "Scrimmage Prep", Date: "2026-02-20", Time: "16:00", Location: "Main Gym", Notes: "6v6 scrimmage."},
	}
}

func DemoMessages() []message.Message {
	return []message.Message{
		{
			ID: "m1", From: "c1", FromName: "Coach Sarah", To: message.ToAll, ToName: "All Parents & Players",
			Subject: "Week of Feb 10 - Schedule reminder",
			Body:    "Please check the updated schedule. We have a game Tuesday and tournament next weekend. Confirm availability in Messages.",
			SentAt:  "2026-02-09T14:00:00", ReadBy: []string{},
		},
		{
			ID: "m2", From: "c1", FromName: "Coach Sarah", To: "p1", ToName: "Emma Johnson",
			Subject: "Setter clinic this Saturday",
			Body:    "Emma - there's an optional setter clinic Saturday 9-11am at the rec center. Let me know if you can make it!",
			SentAt:  "2026-02-08T09:30:00", ReadBy: []string{},
		},
	}
}

// NewDemoTeam builds a team preloaded with the onboarding content.
func NewDemoTeam(id, name string) team.Team {
	if name == "" {
		name = "New Team"
	}
	return team.Team{
		ID:       id,
		Name:     name,
		Roster:   DemoRoster(),
		Schedule: DemoSchedule(),
		Messages: DemoMessages(),
	}
}

// NewEmptyTeam builds a team with no roster, schedule or messages.
func NewEmptyTeam(id, name string) team.Team {
	if name == "" {
		name = "New Team"
	}
	return team.Team{
		ID:       id,
		Name:     name,
		Roster:   roster.Roster{Coaches: []roster.Coach{}, Players: []roster.Player{}},
		Schedule: []schedule.Event{},
		Messages: []message.Message{},
	}
}

// DefaultState is the state used when storage is empty or unreadable.
func DefaultState(seedDemo bool) AppState {
	newTeam := NewEmptyTeam
	if seedDemo {
		newTeam = NewDemoTeam
	}
	return AppState{
		Teams:         []team.Team{newTeam(DefaultTeamID, DefaultTeamName)},
		CurrentTeamID: DefaultTeamID,
	}
}
