// Package badgerkv adapts BadgerDB to the kvstore port. Badger is the
// embedded store backing a single local installation; there is no server
// component.
package badgerkv

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	badger "github.com/dgraph-io/badger/v4"

	"github.com/setly/teamdesk/internal/platform/logging"
)

// Config holds the Badger open options the adapter exposes.
type Config struct {
	// Path is the database directory. Ignored when InMemory is set.
	Path string
	// InMemory disables disk persistence. Used by tests.
	InMemory bool
	// SyncWrites trades write latency for durability.
	SyncWrites bool
	Logger     *logging.Logger
}

// DefaultConfig returns the production configuration for a data directory.
func DefaultConfig(path string) Config {
	return Config{
		Path:       path,
		SyncWrites: true,
	}
}

// InMemoryConfig returns a diskless configuration for tests.
func InMemoryConfig() Config {
	return Config{InMemory: true}
}

type Store struct {
	db *badger.DB
}

// Open creates a Badger-backed store.
func Open(cfg Config) (*Store, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if cfg.Path == "" {
			return nil, errors.New("badgerkv: path is required for a persistent store")
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites)
	opts = opts.WithLogger(badgerLogger{logger: cfg.Logger})

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "badgerkv: open database")
	}

	return &Store{db: db}, nil
}

func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "badgerkv: get %q", key)
	}

	return value, true, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return errors.Wrapf(err, "badgerkv: set %q", key)
	}

	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return errors.Wrapf(err, "badgerkv: delete %q", key)
	}

	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// badgerLogger routes Badger's internal logging into the app logger.
type badgerLogger struct {
	logger *logging.Logger
}

func (l badgerLogger) Errorf(format string, args ...any) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l badgerLogger) Warningf(format string, args ...any) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l badgerLogger) Infof(format string, args ...any) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l badgerLogger) Debugf(format string, args ...any) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}
