// Package credentials maintains the derived login directory: a persisted
// map from normalized email to identity, rebuilt from roster data on
// every roster change. The roster is canonical; only password hashes are
// state the directory truly owns.
package credentials

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"

	sonic "github.com/bytedance/sonic"

	"github.com/setly/teamdesk/internal/domain/identity"
	"github.com/setly/teamdesk/internal/domain/roster"
	"github.com/setly/teamdesk/internal/infrastructure/kvstore"
	"github.com/setly/teamdesk/internal/platform/logging"
)

// Onboarding defaults. These are deliberately public, documented strings
// for a local-only install, not secrets; any networked deployment must
// replace this scheme before exposure.
const (
	DefaultPassword         = "volleyball"
	DefaultDirectorPassword = "director"

	DirectorEmail = "director@setly.app"
	DirectorID    = "director"
	DirectorName  = "Director"
)

// Directory derives and verifies login identities. All persistence flows
// through the injected key-value port; write failures are logged and
// swallowed, matching the store's best-effort snapshot contract.
type Directory struct {
	mu     sync.Mutex
	kv     kvstore.Store
	logger *logging.Logger

	defaultHashOnce sync.Once
	defaultHash     string
}

func New(kv kvstore.Store, logger *logging.Logger) *Directory {
	if logger == nil {
		logger = logging.Default()
	}
	return &Directory{kv: kv, logger: logger}
}

// HashPassword is the one-way digest used for every stored credential:
// SHA-256, hex encoded, compatible with hashes persisted by earlier
// deployments.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Resync merges the roster's identities into the directory: known emails
// keep their password hash and get their identity fields overwritten,
// new emails are provisioned with the default hash. Entries are never
// removed. Safe to call on every roster observation.
func (d *Directory) Resync(ctx context.Context, r roster.Roster) map[string]identity.CredentialEntry {
	d.mu.Lock()
	defer d.mu.Unlock()

	next := d.load(ctx)
	defaultHash := d.lazyDefaultHash()

	upsert := func(email string, entry identity.CredentialEntry) {
		email = NormalizeEmail(email)
		if email == "" {
			return
		}
		if existing, ok := next[email]; ok {
			entry.PasswordHash = existing.PasswordHash
		} else {
			entry.PasswordHash = defaultHash
		}
		next[email] = entry
	}

	for _, c := range r.Coaches {
		upsert(c.Email, identity.CredentialEntry{
			Role: identity.RoleCoach,
			ID:   c.ID,
			Name: c.Name,
		})
	}
	for _, p := range r.Players {
		upsert(p.Email, identity.CredentialEntry{
			Role: identity.RolePlayer,
			ID:   p.ID,
			Name: p.Name,
		})
	}
	for _, p := range r.Players {
		for _, g := range p.Guardians {
			// The parent account is keyed off the guarded player, so
			// every guardian of one player resolves to the same login id.
			upsert(g.Email, identity.CredentialEntry{
				Role:     identity.RoleParent,
				ID:       "parent-" + p.ID,
				Name:     p.Name,
				PlayerID: p.ID,
			})
		}
	}

	d.save(ctx, next)

	return next
}

// Verify checks an email and password against the directory. Unknown
// emails and wrong passwords are indistinguishable: both return ok=false.
// The director account lives under its own key and is provisioned with
// the default director password on first verification attempt.
func (d *Directory) Verify(ctx context.Context, email, password string) (identity.Identity, bool) {
	normalized := NormalizeEmail(email)

	if normalized == NormalizeEmail(DirectorEmail) {
		return d.verifyDirector(ctx, password)
	}

	d.mu.Lock()
	entry, ok := d.load(ctx)[normalized]
	d.mu.Unlock()
	if !ok {
		return identity.Identity{}, false
	}
	if HashPassword(password) != entry.PasswordHash {
		return identity.Identity{}, false
	}

	return entry.Identity(), true
}

// SetPassword replaces the stored hash for an already-provisioned email.
// It reports false for emails the directory does not know.
func (d *Directory) SetPassword(ctx context.Context, email, newPassword string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	normalized := NormalizeEmail(email)
	entries := d.load(ctx)
	entry, ok := entries[normalized]
	if !ok {
		return false
	}

	entry.PasswordHash = HashPassword(newPassword)
	entries[normalized] = entry
	d.save(ctx, entries)

	return true
}

// directorRecord is the separately persisted director credential.
type directorRecord struct {
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}

func (d *Directory) verifyDirector(ctx context.Context, password string) (identity.Identity, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var record directorRecord
	raw, found, err := d.kv.Get(ctx, kvstore.KeyDirector)
	if err != nil {
		d.logger.WarnContext(ctx, "director record load failed", "error", err)
		return identity.Identity{}, false
	}
	if found {
		if err := sonic.Unmarshal(raw, &record); err != nil {
			d.logger.WarnContext(ctx, "director record decode failed", "error", err)
			return identity.Identity{}, false
		}
	} else {
		record = directorRecord{
			Email:        DirectorEmail,
			PasswordHash: HashPassword(DefaultDirectorPassword),
		}
		if raw, err := sonic.Marshal(record); err == nil {
			if err := d.kv.Set(ctx, kvstore.KeyDirector, raw); err != nil {
				d.logger.WarnContext(ctx, "director record write failed", "error", err)
			}
		}
	}

	if HashPassword(password) != record.PasswordHash {
		return identity.Identity{}, false
	}

	return identity.Identity{ID: DirectorID, Name: DirectorName, Role: identity.RoleDirector}, true
}

func (d *Directory) lazyDefaultHash() string {
	d.defaultHashOnce.Do(func() {
		d.defaultHash = HashPassword(DefaultPassword)
	})
	return d.defaultHash
}

// load reads the persisted directory, treating any failure as empty.
func (d *Directory) load(ctx context.Context) map[string]identity.CredentialEntry {
	entries := make(map[string]identity.CredentialEntry)
	raw, found, err := d.kv.Get(ctx, kvstore.KeyCredentials)
	if err != nil {
		d.logger.WarnContext(ctx, "credential directory load failed", "error", err)
		return entries
	}
	if !found {
		return entries
	}
	if err := sonic.Unmarshal(raw, &entries); err != nil {
		d.logger.WarnContext(ctx, "credential directory decode failed", "error", err)
		return make(map[string]identity.CredentialEntry)
	}

	return entries
}

func (d *Directory) save(ctx context.Context, entries map[string]identity.CredentialEntry) {
	raw, err := sonic.Marshal(entries)
	if err != nil {
		d.logger.WarnContext(ctx, "credential directory encode failed", "error", err)
		return
	}
	if err := d.kv.Set(ctx, kvstore.KeyCredentials, raw); err != nil {
		d.logger.WarnContext(ctx, "credential directory write failed", "error", err)
	}
}
