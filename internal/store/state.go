// Package store holds the action-driven, team-scoped application state:
// every UI mutation is an Action applied through a pure reducer, and the
// resulting state is snapshot to a key-value port after each dispatch.
package store

import (
	"github.com/setly/teamdesk/internal/domain/team"
)

// AppState is the full persisted application state. The store guarantees
// at least one team at all times; CurrentTeamID resolves to an existing
// team, falling back to the first team when it does not.
type AppState struct {
	Teams         []team.Team `json:"teams"`
	CurrentTeamID string      `json:"currentTeamId"`
}

// CurrentTeam returns the team CurrentTeamID points at, or the first
// team when the pointer does not resolve. ok is false only when the
// state holds no teams at all.
func (s AppState) CurrentTeam() (team.Team, bool) {
	if idx := s.currentIndex(); idx >= 0 {
		return s.Teams[idx], true
	}
	if len(s.Teams) > 0 {
		return s.Teams[0], true
	}

	return team.Team{}, false
}

func (s AppState) currentIndex() int {
	for i, t := range s.Teams {
		if t.ID == s.CurrentTeamID {
			return i
		}
	}

	return -1
}

func (s AppState) hasTeam(id string) bool {
	for _, t := range s.Teams {
		if t.ID == id {
			return true
		}
	}

	return false
}

// withCurrentTeam rebuilds the state with the current team replaced by
// mutate's result. When CurrentTeamID resolves to nothing the state is
// returned unchanged; mutation actions never invent a team.
func (s AppState) withCurrentTeam(mutate func(team.Team) team.Team) AppState {
	idx := s.currentIndex()
	if idx < 0 {
		return s
	}

	next := make([]team.Team, len(s.Teams))
	copy(next, s.Teams)
	next[idx] = mutate(next[idx])

	return AppState{Teams: next, CurrentTeamID: s.CurrentTeamID}
}
