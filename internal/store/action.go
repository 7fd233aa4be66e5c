package store

import (
	"github.com/setly/teamdesk/internal/domain/roster"
	"github.com/setly/teamdesk/internal/domain/schedule"
)

// Action is the closed set of state transitions. Every UI intent is one
// of the variants below; Apply treats anything else as a no-op so the
// transition function stays total.
type Action interface {
	isAction()
}

// Load replaces the state from a persisted payload. Payloads in the
// legacy single-team shape are migrated; unrecognized payloads leave the
// state unchanged.
type Load struct {
	Payload []byte
}

// TeamAdd creates a new team and makes it current.
type TeamAdd struct {
	Name string
}

// TeamSwitch makes an existing team current. Unknown ids are ignored.
type TeamSwitch struct {
	ID string
}

// TeamUpdate renames a team. An empty name keeps the current one.
type TeamUpdate struct {
	ID   string
	Name string
}

// TeamRemove deletes a team. Refused when it is the last team.
type TeamRemove struct {
	ID string
}

type RosterAddCoach struct {
	Coach roster.Coach
}

type RosterUpdateCoach struct {
	ID    string
	Patch CoachPatch
}

type RosterRemoveCoach struct {
	ID string
}

type RosterAddPlayer struct {
	Player roster.Player
}

type RosterUpdatePlayer struct {
	ID    string
	Patch PlayerPatch
}

type RosterRemovePlayer struct {
	ID string
}

type RosterSetTeamPhoto struct {
	URL string
}

// RosterUpdateTeam merges club-level header fields into the roster.
type RosterUpdateTeam struct {
	Patch RosterPatch
}

type ScheduleAdd struct {
	Event schedule.Event
}

type ScheduleUpdate struct {
	ID    string
	Patch EventPatch
}

type ScheduleRemove struct {
	ID string
}

// MessageSend appends a message to the current team. From and FromName
// default to the seeded head coach when empty; SentAt and ReadBy are
// assigned by the reducer.
type MessageSend struct {
	From     string
	FromName string
	To       string
	ToName   string
	Subject  string
	Body     string
}

type MessageMarkRead struct {
	MessageID string
	UserID    string
}

type MessageMarkAllRead struct {
	UserID string
}

type MessageMarkUnread struct {
	MessageID string
	UserID    string
}

type MessageRemove struct {
	ID string
}

func (Load) isAction()               {}
func (TeamAdd) isAction()            {}
func (TeamSwitch) isAction()         {}
func (TeamUpdate) isAction()         {}
func (TeamRemove) isAction()         {}
func (RosterAddCoach) isAction()     {}
func (RosterUpdateCoach) isAction()  {}
func (RosterRemoveCoach) isAction()  {}
func (RosterAddPlayer) isAction()    {}
func (RosterUpdatePlayer) isAction() {}
func (RosterRemovePlayer) isAction() {}
func (RosterSetTeamPhoto) isAction() {}
func (RosterUpdateTeam) isAction()   {}
func (ScheduleAdd) isAction()        {}
func (ScheduleUpdate) isAction()     {}
func (ScheduleRemove) isAction()     {}
func (MessageSend) isAction()        {}
func (MessageMarkRead) isAction()    {}
func (MessageMarkAllRead) isAction() {}
func (MessageMarkUnread) isAction()  {}
func (MessageRemove) isAction()      {}

// CoachPatch is a partial coach update; nil fields keep their value.
type CoachPatch struct {
	Name        *string
	Role        *string
	Email       *string
	Phone       *string
	PhotoURL    *string
	Description *string
}

func (p CoachPatch) apply(c roster.Coach) roster.Coach {
	setString(&c.Name, p.Name)
	setString(&c.Role, p.Role)
	setString(&c.Email, p.Email)
	setString(&c.Phone, p.Phone)
	setString(&c.PhotoURL, p.PhotoURL)
	setString(&c.Description, p.Description)

	return c
}

// PlayerPatch is a partial player update; nil fields keep their value.
type PlayerPatch struct {
	Name          *string
	Number        *int
	Position      *string
	Grade         *string
	Email         *string
	ParentContact *string
	PhotoURL      *string
	Guardians     *[]roster.Guardian
}

func (p PlayerPatch) apply(pl roster.Player) roster.Player {
	setString(&pl.Name, p.Name)
	if p.Number != nil {
		pl.Number = *p.Number
	}
	setString(&pl.Position, p.Position)
	setString(&pl.Grade, p.Grade)
	setString(&pl.Email, p.Email)
	setString(&pl.ParentContact, p.ParentContact)
	setString(&pl.PhotoURL, p.PhotoURL)
	if p.Guardians != nil {
		pl.Guardians = append([]roster.Guardian(nil), (*p.Guardians)...)
	}

	return pl
}

// RosterPatch updates the club header fields of a roster.
type RosterPatch struct {
	TeamPhotoURL *string
	ClubName     *string
	AboutClub    *string
}

func (p RosterPatch) apply(r roster.Roster) roster.Roster {
	setString(&r.TeamPhotoURL, p.TeamPhotoURL)
	setString(&r.ClubName, p.ClubName)
	setString(&r.AboutClub, p.AboutClub)

	return r
}

// EventPatch is a partial schedule event update.
type EventPatch struct {
	Type     *schedule.EventType
	Title    *string
	Date     *string
	Time     *string
	AllDay   *bool
	EndDate  *string
	Location *string
	Opponent *string
	Notes    *string
}

func (p EventPatch) apply(e schedule.Event) schedule.Event {
	if p.Type != nil {
		e.Type = *p.Type
	}
	setString(&e.Title, p.Title)
	setString(&e.Date, p.Date)
	setString(&e.Time, p.Time)
	if p.AllDay != nil {
		e.AllDay = *p.AllDay
	}
	setString(&e.EndDate, p.EndDate)
	setString(&e.Location, p.Location)
	setString(&e.Opponent, p.Opponent)
	setString(&e.Notes, p.Notes)

	return e
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
