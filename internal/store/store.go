package store

import (
	"context"
	"sync"

	sonic "github.com/bytedance/sonic"

	"github.com/setly/teamdesk/internal/domain/roster"
	"github.com/setly/teamdesk/internal/domain/team"
	"github.com/setly/teamdesk/internal/infrastructure/kvstore"
	"github.com/setly/teamdesk/internal/platform/logging"
)

// RosterObserver is notified after any dispatch that may have changed
// which roster is current or what it contains. The credential directory
// registers here to keep its derived identities in sync.
type RosterObserver func(ctx context.Context, r roster.Roster)

// Store owns the application state. Dispatch applies an action through
// the reducer, snapshots the result to the key-value port and notifies
// roster observers. Persistence is best-effort: a failed write is logged
// and never surfaces to the caller.
type Store struct {
	mu        sync.Mutex
	reducer   Reducer
	state     AppState
	kv        kvstore.Store
	logger    *logging.Logger
	observers []RosterObserver
}

func New(reducer Reducer, kv kvstore.Store, logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.Default()
	}
	return &Store{
		reducer: reducer,
		state:   DefaultState(reducer.seedDemo),
		kv:      kv,
		logger:  logger,
	}
}

// Hydrate loads the persisted state. When the primary key is empty the
// legacy single-team key is consulted once and its migrated form written
// under the primary key; the legacy key itself is left intact. Malformed
// or missing payloads keep the seeded default state.
func (s *Store) Hydrate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, found, err := s.kv.Get(ctx, kvstore.KeyAppState)
	if err != nil {
		s.logger.WarnContext(ctx, "state load failed, keeping defaults", "error", err)
	}
	fromLegacy := false
	if !found {
		raw, found, err = s.kv.Get(ctx, kvstore.KeyLegacyState)
		if err != nil {
			s.logger.WarnContext(ctx, "legacy state load failed", "error", err)
		}
		fromLegacy = found
	}

	if found {
		next := s.reducer.Apply(s.state, Load{Payload: raw})
		s.state = next
	}
	if !found || fromLegacy {
		s.persist(ctx)
	}

	s.notify(ctx)
}

// Dispatch applies one action and returns the resulting state.
func (s *Store) Dispatch(ctx context.Context, action Action) AppState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = s.reducer.Apply(s.state, action)
	s.persist(ctx)
	if touchesRoster(action) {
		s.notify(ctx)
	}

	return s.state
}

// State returns the current state.
func (s *Store) State() AppState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// CurrentTeam returns the team the store is scoped to.
func (s *Store) CurrentTeam() (team.Team, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.CurrentTeam()
}

// OnRosterChange registers an observer invoked with the current team's
// roster after hydration and after roster-affecting dispatches.
func (s *Store) OnRosterChange(fn RosterObserver) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.observers = append(s.observers, fn)
}

func (s *Store) persist(ctx context.Context) {
	raw, err := sonic.Marshal(s.state)
	if err != nil {
		s.logger.WarnContext(ctx, "state encode failed, snapshot skipped", "error", err)
		return
	}
	if err := s.kv.Set(ctx, kvstore.KeyAppState, raw); err != nil {
		s.logger.WarnContext(ctx, "state write failed, snapshot skipped", "error", err)
	}
}

func (s *Store) notify(ctx context.Context) {
	current, ok := s.state.CurrentTeam()
	if !ok {
		return
	}
	for _, fn := range s.observers {
		fn(ctx, current.Roster)
	}
}

// touchesRoster reports whether an action can change which roster is
// current or what it contains.
func touchesRoster(action Action) bool {
	switch action.(type) {
	case Load, TeamAdd, TeamSwitch, TeamRemove,
		RosterAddCoach, RosterUpdateCoach, RosterRemoveCoach,
		RosterAddPlayer, RosterUpdatePlayer, RosterRemovePlayer,
		RosterUpdateTeam:
		return true
	default:
		return false
	}
}
