package store

import (
	sonic "github.com/bytedance/sonic"

	"github.com/setly/teamdesk/internal/domain/message"
	"github.com/setly/teamdesk/internal/domain/roster"
	"github.com/setly/teamdesk/internal/domain/schedule"
	"github.com/setly/teamdesk/internal/domain/team"
)

// snapshot is the permissive persisted shape: either the current
// multi-team layout or the legacy single-team layout with roster,
// schedule and messages at the top level.
type snapshot struct {
	Teams         []team.Team       `json:"teams"`
	CurrentTeamID string            `json:"currentTeamId"`
	Roster        *roster.Roster    `json:"roster"`
	Schedule      []schedule.Event  `json:"schedule"`
	Messages      []message.Message `json:"messages"`
}

// EncodeState serializes a state to the persisted JSON form.
func EncodeState(s AppState) ([]byte, error) {
	return sonic.Marshal(s)
}

// MigrateSnapshot decodes a persisted payload into AppState. Legacy
// single-team payloads are wrapped into one team under the default id.
// ok is false for payloads in neither shape; malformed JSON included.
func MigrateSnapshot(payload []byte) (AppState, bool) {
	var snap snapshot
	if err := sonic.Unmarshal(payload, &snap); err != nil {
		return AppState{}, false
	}

	if len(snap.Teams) > 0 {
		state := AppState{Teams: snap.Teams, CurrentTeamID: snap.CurrentTeamID}
		if !state.hasTeam(state.CurrentTeamID) {
			state.CurrentTeamID = state.Teams[0].ID
		}
		return state, true
	}

	if snap.Roster == nil && snap.Schedule == nil && snap.Messages == nil {
		return AppState{}, false
	}

	legacy := team.Team{
		ID:       DefaultTeamID,
		Name:     DefaultTeamName,
		Schedule: snap.Schedule,
		Messages: snap.Messages,
	}
	if snap.Roster != nil {
		legacy.Roster = *snap.Roster
	} else {
		legacy.Roster = DemoRoster()
	}
	if legacy.Schedule == nil {
		legacy.Schedule = DemoSchedule()
	}
	if legacy.Messages == nil {
		legacy.Messages = DemoMessages()
	}

	return AppState{
		Teams:         []team.Team{legacy},
		CurrentTeamID: DefaultTeamID,
	}, true
}
