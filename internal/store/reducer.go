package store

import (
	"time"

	"github.com/setly/teamdesk/internal/domain/message"
	"github.com/setly/teamdesk/internal/domain/roster"
	"github.com/setly/teamdesk/internal/domain/schedule"
	"github.com/setly/teamdesk/internal/domain/team"
	"github.com/setly/teamdesk/internal/platform/id"
)

// Reducer is the pure transition function over AppState. It carries the
// id generator and clock so Apply itself stays deterministic under test.
type Reducer struct {
	ids id.Generator
	now func() time.Time
	// seedDemo controls whether new teams start with onboarding content.
	seedDemo bool
}

func NewReducer(ids id.Generator, now func() time.Time, seedDemo bool) Reducer {
	if now == nil {
		now = time.Now
	}
	return Reducer{ids: ids, now: now, seedDemo: seedDemo}
}

// Apply returns the state after action. It is total: no action errors,
// and actions referencing missing ids leave the state unchanged.
func (r Reducer) Apply(state AppState, action Action) AppState {
	switch a := action.(type) {
	case Load:
		if next, ok := MigrateSnapshot(a.Payload); ok {
			return next
		}
		return state

	case TeamAdd:
		id := r.ids.NewID("t")
		newTeam := r.newTeam(id, a.Name)
		teams := append(append([]team.Team(nil), state.Teams...), newTeam)
		return AppState{Teams: teams, CurrentTeamID: id}

	case TeamSwitch:
		// Unknown ids are refused so currentTeamId always resolves.
		if !state.hasTeam(a.ID) {
			return state
		}
		return AppState{Teams: state.Teams, CurrentTeamID: a.ID}

	case TeamUpdate:
		idx := -1
		for i, t := range state.Teams {
			if t.ID == a.ID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return state
		}
		teams := append([]team.Team(nil), state.Teams...)
		if a.Name != "" {
			teams[idx].Name = a.Name
		}
		return AppState{Teams: teams, CurrentTeamID: state.CurrentTeamID}

	case TeamRemove:
		if len(state.Teams) <= 1 {
			return state
		}
		teams := make([]team.Team, 0, len(state.Teams)-1)
		for _, t := range state.Teams {
			if t.ID != a.ID {
				teams = append(teams, t)
			}
		}
		if len(teams) == len(state.Teams) {
			return state
		}
		current := state.CurrentTeamID
		if current == a.ID {
			current = teams[0].ID
		}
		return AppState{Teams: teams, CurrentTeamID: current}

	case RosterAddCoach:
		return state.withCurrentTeam(func(t team.Team) team.Team {
			coach := a.Coach
			coach.ID = r.ids.NewID("c")
			t.Roster.Coaches = append(append([]roster.Coach(nil), t.Roster.Coaches...), coach)
			return t
		})

	case RosterUpdateCoach:
		return state.withCurrentTeam(func(t team.Team) team.Team {
			coaches := append([]roster.Coach(nil), t.Roster.Coaches...)
			for i := range coaches {
				if coaches[i].ID == a.ID {
					coaches[i] = a.Patch.apply(coaches[i])
				}
			}
			t.Roster.Coaches = coaches
			return t
		})

	case RosterRemoveCoach:
		return state.withCurrentTeam(func(t team.Team) team.Team {
			coaches := make([]roster.Coach, 0, len(t.Roster.Coaches))
			for _, c := range t.Roster.Coaches {
				if c.ID != a.ID {
					coaches = append(coaches, c)
				}
			}
			t.Roster.Coaches = coaches
			return t
		})

	case RosterAddPlayer:
		return state.withCurrentTeam(func(t team.Team) team.Team {
			player := a.Player
			player.ID = r.ids.NewID("p")
			t.Roster.Players = append(append([]roster.Player(nil), t.Roster.Players...), player)
			return t
		})

	case RosterUpdatePlayer:
		return state.withCurrentTeam(func(t team.Team) team.Team {
			players := append([]roster.Player(nil), t.Roster.Players...)
			for i := range players {
				if players[i].ID == a.ID {
					players[i] = a.Patch.apply(players[i])
				}
			}
			t.Roster.Players = players
			return t
		})

	case RosterRemovePlayer:
		return state.withCurrentTeam(func(t team.Team) team.Team {
			players := make([]roster.Player, 0, len(t.Roster.Players))
			for _, p := range t.Roster.Players {
				if p.ID != a.ID {
					players = append(players, p)
				}
			}
			t.Roster.Players = players
			return t
		})

	case RosterSetTeamPhoto:
		return state.withCurrentTeam(func(t team.Team) team.Team {
			t.Roster.TeamPhotoURL = a.URL
			return t
		})

	case RosterUpdateTeam:
		return state.withCurrentTeam(func(t team.Team) team.Team {
			t.Roster = a.Patch.apply(t.Roster)
			return t
		})

	case ScheduleAdd:
		return state.withCurrentTeam(func(t team.Team) team.Team {
			event := a.Event
			event.ID = r.ids.NewID("e")
			t.Schedule = append(append([]schedule.Event(nil), t.Schedule...), event)
			return t
		})

	case ScheduleUpdate:
		return state.withCurrentTeam(func(t team.Team) team.Team {
			events := append([]schedule.Event(nil), t.Schedule...)
			for i := range events {
				if events[i].ID == a.ID {
					events[i] = a.Patch.apply(events[i])
				}
			}
			t.Schedule = events
			return t
		})

	case ScheduleRemove:
		return state.withCurrentTeam(func(t team.Team) team.Team {
			events := make([]schedule.Event, 0, len(t.Schedule))
			for _, e := range t.Schedule {
				if e.ID != a.ID {
					events = append(events, e)
				}
			}
			t.Schedule = events
			return t
		})

	case MessageSend:
		return state.withCurrentTeam(func(t team.Team) team.Team {
			from, fromName := a.From, a.FromName
			if from == "" {
				from = DefaultSenderID
			}
			if fromName == "" {
				fromName = DefaultSenderName
			}
			msg := message.Message{
				ID:       r.ids.NewID("m"),
				From:     from,
				FromName: fromName,
				To:       a.To,
				ToName:   a.ToName,
				Subject:  a.Subject,
				Body:     a.Body,
				SentAt:   r.now().Format(time.RFC3339),
				ReadBy:   []string{},
			}
			t.Messages = append(append([]message.Message(nil), t.Messages...), msg)
			return t
		})

	case MessageMarkRead:
		return state.withCurrentTeam(func(t team.Team) team.Team {
			t.Messages = mapMessages(t.Messages, func(m message.Message) message.Message {
				if m.ID == a.MessageID {
					m = markRead(m, a.UserID)
				}
				return m
			})
			return t
		})

	case MessageMarkAllRead:
		return state.withCurrentTeam(func(t team.Team) team.Team {
			t.Messages = mapMessages(t.Messages, func(m message.Message) message.Message {
				return markRead(m, a.UserID)
			})
			return t
		})

	case MessageMarkUnread:
		return state.withCurrentTeam(func(t team.Team) team.Team {
			t.Messages = mapMessages(t.Messages, func(m message.Message) message.Message {
				if m.ID != a.MessageID {
					return m
				}
				readBy := make([]string, 0, len(m.ReadBy))
				for _, id := range m.ReadBy {
					if id != a.UserID {
						readBy = append(readBy, id)
					}
				}
				m.ReadBy = readBy
				return m
			})
			return t
		})

	case MessageRemove:
		return state.withCurrentTeam(func(t team.Team) team.Team {
			messages := make([]message.Message, 0, len(t.Messages))
			for _, m := range t.Messages {
				if m.ID != a.ID {
					messages = append(messages, m)
				}
			}
			t.Messages = messages
			return t
		})

	default:
		return state
	}
}

func (r Reducer) newTeam(id, name string) team.Team {
	if r.seedDemo {
		return NewDemoTeam(id, name)
	}
	return NewEmptyTeam(id, name)
}

// markRead adds userID to the message's readBy with set semantics.
func markRead(m message.Message, userID string) message.Message {
	if m.ReadByUser(userID) {
		return m
	}
	m.ReadBy = append(append([]string(nil), m.ReadBy...), userID)
	return m
}

func mapMessages(in []message.Message, fn func(message.Message) message.Message) []message.Message {
	out := make([]message.Message, len(in))
	for i, m := range in {
		out[i] = fn(m)
	}
	return out
}
