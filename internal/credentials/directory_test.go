package credentials

import (
	"testing"

	"github.com/setly/teamdesk/internal/domain/identity"
	"github.com/setly/teamdesk/internal/domain/roster"
	"github.com/setly/teamdesk/internal/infrastructure/kvstore"
	"github.com/setly/teamdesk/internal/infrastructure/kvstore/memory"
	"github.com/setly/teamdesk/internal/platform/logging"
)

func testRoster() roster.Roster {
	return roster.Roster{
		Coaches: []roster.Coach{
			{ID: "c1", Name: "Sarah Chen", Role: "Head Coach", Email: "Sarah.Chen@team.com"},
		},
		Players: []roster.Player{
			{
				ID: "p1", Name: "Emma Johnson", Email: "emma.johnson@email.com",
				Guardians: []roster.Guardian{{Name: "Jane Johnson", Email: "johnson@email.com"}},
			},
			{ID: "p2", Name: "Jordan Lee", Email: "jordan.lee@email.com"},
			{ID: "p3", Name: "No Email"},
		},
	}
}

func newDirectory() (*Directory, *memory.Store) {
	kv := memory.NewStore()
	return New(kv, logging.NewNop()), kv
}

func TestResyncProvisionsRosterEmails(t *testing.T) {
	d, _ := newDirectory()

	entries := d.Resync(t.Context(), testRoster())

	// One coach, two players with emails, one guardian.
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}

	coach, ok := entries["sarah.chen@team.com"]
	if !ok {
		t.Fatalf("coach email must be normalized to lower case")
	}
	if coach.Role != identity.RoleCoach || coach.ID != "c1" || coach.Name != "Sarah Chen" {
		t.Fatalf("unexpected coach entry: %+v", coach)
	}
	if coach.PasswordHash != HashPassword(DefaultPassword) {
		t.Fatalf("new entries must get the default hash")
	}

	parent, ok := entries["johnson@email.com"]
	if !ok {
		t.Fatalf("guardian email missing")
	}
	if parent.Role != identity.RoleParent || parent.ID != "parent-p1" || parent.PlayerID != "p1" {
		t.Fatalf("unexpected parent entry: %+v", parent)
	}

	if _, ok := entries["jordan.lee@email.com"]; !ok {
		t.Fatalf("player email missing")
	}
}

func TestResyncPreservesChangedPassword(t *testing.T) {
	d, _ := newDirectory()
	d.Resync(t.Context(), testRoster())

	if !d.SetPassword(t.Context(), "emma.johnson@email.com", "new-secret") {
		t.Fatalf("set password should succeed for a known email")
	}

	entries := d.Resync(t.Context(), testRoster())
	entry := entries["emma.johnson@email.com"]
	if entry.PasswordHash != HashPassword("new-secret") {
		t.Fatalf("resync must not regress a changed password")
	}

	if _, ok := d.Verify(t.Context(), "emma.johnson@email.com", DefaultPassword); ok {
		t.Fatalf("old default password must no longer verify")
	}
	if _, ok := d.Verify(t.Context(), "emma.johnson@email.com", "new-secret"); !ok {
		t.Fatalf("new password must verify")
	}
}

func TestResyncKeepsDepartedEmails(t *testing.T) {
	d, _ := newDirectory()
	d.Resync(t.Context(), testRoster())

	smaller := testRoster()
	smaller.Players = smaller.Players[1:]
	entries := d.Resync(t.Context(), smaller)

	if _, ok := entries["emma.johnson@email.com"]; !ok {
		t.Fatalf("entries are never removed during resync")
	}
}

func TestResyncIsIdempotent(t *testing.T) {
	d, _ := newDirectory()

	first := d.Resync(t.Context(), testRoster())
	second := d.Resync(t.Context(), testRoster())

	if len(first) != len(second) {
		t.Fatalf("repeated resync changed the directory size: %d vs %d", len(first), len(second))
	}
	for email, entry := range first {
		if second[email] != entry {
			t.Fatalf("entry for %s changed across idempotent resyncs", email)
		}
	}
}

func TestVerify(t *testing.T) {
	d, _ := newDirectory()
	d.Resync(t.Context(), testRoster())

	user, ok := d.Verify(t.Context(), "  Emma.Johnson@Email.com ", DefaultPassword)
	if !ok {
		t.Fatalf("expected login to succeed")
	}
	if user.Role != identity.RolePlayer || user.ID != "p1" || user.Name != "Emma Johnson" {
		t.Fatalf("unexpected identity: %+v", user)
	}

	// Unknown email and wrong password are indistinguishable.
	if _, ok := d.Verify(t.Context(), "nobody@email.com", DefaultPassword); ok {
		t.Fatalf("unknown email must fail")
	}
	if _, ok := d.Verify(t.Context(), "emma.johnson@email.com", "wrong"); ok {
		t.Fatalf("wrong password must fail")
	}
}

func TestVerifyParentIdentity(t *testing.T) {
	d, _ := newDirectory()
	d.Resync(t.Context(), testRoster())

	user, ok := d.Verify(t.Context(), "johnson@email.com", DefaultPassword)
	if !ok {
		t.Fatalf("expected guardian login to succeed")
	}
	if user.Role != identity.RoleParent || user.PlayerID != "p1" || user.ID != "parent-p1" {
		t.Fatalf("unexpected parent identity: %+v", user)
	}
}

func TestDirectorLazyProvisioning(t *testing.T) {
	d, kv := newDirectory()

	if _, found, _ := kv.Get(t.Context(), kvstore.KeyDirector); found {
		t.Fatalf("director record must not exist before first verification")
	}

	user, ok := d.Verify(t.Context(), "Director@Setly.App", DefaultDirectorPassword)
	if !ok {
		t.Fatalf("expected director login with the default password")
	}
	if user.Role != identity.RoleDirector || user.ID != DirectorID {
		t.Fatalf("unexpected director identity: %+v", user)
	}

	if _, found, _ := kv.Get(t.Context(), kvstore.KeyDirector); !found {
		t.Fatalf("director record must be provisioned on first attempt")
	}

	if _, ok := d.Verify(t.Context(), DirectorEmail, "wrong"); ok {
		t.Fatalf("wrong director password must fail")
	}
}

func TestSetPasswordUnknownEmail(t *testing.T) {
	d, _ := newDirectory()

	if d.SetPassword(t.Context(), "ghost@email.com", "x") {
		t.Fatalf("set password must fail for unknown emails")
	}
}
