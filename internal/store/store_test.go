package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/setly/teamdesk/internal/domain/roster"
	"github.com/setly/teamdesk/internal/domain/team"
	"github.com/setly/teamdesk/internal/infrastructure/kvstore"
	"github.com/setly/teamdesk/internal/infrastructure/kvstore/memory"
	"github.com/setly/teamdesk/internal/platform/id"
	"github.com/setly/teamdesk/internal/platform/logging"
)

func newTestStore(t *testing.T, kv kvstore.Store) *Store {
	t.Helper()
	now := func() time.Time { return time.Date(2026, 2, 11, 15, 0, 0, 0, time.UTC) }
	return New(NewReducer(id.NewSequence(), now, true), kv, logging.NewNop())
}

func TestHydrateSeedsWhenEmpty(t *testing.T) {
	kv := memory.NewStore()
	s := newTestStore(t, kv)

	s.Hydrate(t.Context())

	current, ok := s.CurrentTeam()
	require.True(t, ok)
	assert.Equal(t, DefaultTeamID, current.ID)
	assert.Len(t, current.Roster.Players, 6)

	// The seeded default must be written back under the primary key.
	raw, found, err := kv.Get(t.Context(), kvstore.KeyAppState)
	require.NoError(t, err)
	require.True(t, found)
	restored, ok := MigrateSnapshot(raw)
	require.True(t, ok)
	assert.Equal(t, s.State(), restored)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	kv := memory.NewStore()
	s := newTestStore(t, kv)
	s.Hydrate(t.Context())

	s.Dispatch(t.Context(), TeamAdd{Name: "JV"})
	s.Dispatch(t.Context(), MessageSend{To: "p1", ToName: "Emma Johnson", Subject: "hi", Body: "see you at practice"})
	want := s.State()

	// A second store over the same backend sees the identical state.
	s2 := newTestStore(t, kv)
	s2.Hydrate(t.Context())
	assert.Equal(t, want, s2.State())
}

func TestHydrateMigratesLegacyKey(t *testing.T) {
	kv := memory.NewStore()
	legacy := []byte(`{"roster": {"clubName": "Old Club", "coaches": [], "players": []}, "schedule": [], "messages": []}`)
	require.NoError(t, kv.Set(t.Context(), kvstore.KeyLegacyState, legacy))

	s := newTestStore(t, kv)
	s.Hydrate(t.Context())

	state := s.State()
	require.Len(t, state.Teams, 1)
	assert.Equal(t, DefaultTeamID, state.Teams[0].ID)
	assert.Equal(t, "Old Club", state.Teams[0].Roster.ClubName)

	// Migrated state lands under the primary key; the legacy key stays.
	_, found, err := kv.Get(t.Context(), kvstore.KeyAppState)
	require.NoError(t, err)
	assert.True(t, found)
	raw, found, err := kv.Get(t.Context(), kvstore.KeyLegacyState)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, legacy, raw)
}

func TestHydratePrefersPrimaryKey(t *testing.T) {
	kv := memory.NewStore()
	primary, err := EncodeState(AppState{
		Teams:         []team.Team{NewEmptyTeam("t9", "Primary")},
		CurrentTeamID: "t9",
	})
	require.NoError(t, err)
	require.NoError(t, kv.Set(t.Context(), kvstore.KeyAppState, primary))
	require.NoError(t, kv.Set(t.Context(), kvstore.KeyLegacyState, []byte(`{"roster": {"coaches": [], "players": []}}`)))

	s := newTestStore(t, kv)
	s.Hydrate(t.Context())

	assert.Equal(t, "t9", s.State().CurrentTeamID)
}

func TestHydrateCorruptStateFallsBackToDefaults(t *testing.T) {
	kv := memory.NewStore()
	require.NoError(t, kv.Set(t.Context(), kvstore.KeyAppState, []byte(`{{{`)))

	s := newTestStore(t, kv)
	s.Hydrate(t.Context())

	current, ok := s.CurrentTeam()
	require.True(t, ok)
	assert.Equal(t, DefaultTeamID, current.ID)
}

func TestDispatchSurvivesFailingBackend(t *testing.T) {
	s := newTestStore(t, failingKV{})
	s.Hydrate(t.Context())

	state := s.Dispatch(t.Context(), TeamAdd{Name: "JV"})
	assert.Len(t, state.Teams, 2)
}

func TestRosterObserverFires(t *testing.T) {
	kv := memory.NewStore()
	s := newTestStore(t, kv)

	var calls int
	var lastRoster roster.Roster
	s.OnRosterChange(func(_ context.Context, r roster.Roster) {
		calls++
		lastRoster = r
	})

	s.Hydrate(t.Context())
	require.Equal(t, 1, calls)

	s.Dispatch(t.Context(), RosterAddCoach{Coach: roster.Coach{Name: "Pat Doyle"}})
	require.Equal(t, 2, calls)
	assert.Len(t, lastRoster.Coaches, 3)

	// Schedule edits do not touch the roster.
	s.Dispatch(t.Context(), ScheduleRemove{ID: "e1"})
	assert.Equal(t, 2, calls)

	// Switching teams changes which roster is current.
	s.Dispatch(t.Context(), TeamAdd{Name: "JV"})
	assert.Equal(t, 3, calls)
}

type failingKV struct{}

func (failingKV) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, assert.AnError
}

func (failingKV) Set(context.Context, string, []byte) error {
	return assert.AnError
}

func (failingKV) Delete(context.Context, string) error {
	return assert.AnError
}

func (failingKV) Close() error {
	return nil
}
