package identity

import "fmt"

// Role classifies what a logged-in user may see and do.
type Role string

const (
	RoleCoach    Role = "coach"
	RolePlayer   Role = "player"
	RoleParent   Role = "parent"
	RoleDirector Role = "director"
)

var AllRoles = map[Role]struct{}{
	RoleCoach:    {},
	RolePlayer:   {},
	RoleParent:   {},
	RoleDirector: {},
}

// Identity is the session user returned by a successful login.
// PlayerID is set only for parents and links to the guarded player.
type Identity struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
	PlayerID string `json:"playerId,omitempty"`
}

func (i Identity) Validate() error {
	if i.ID == "" {
		return fmt.Errorf("identity id is required")
	}
	if _, ok := AllRoles[i.Role]; !ok {
		return fmt.Errorf("unknown role %q", i.Role)
	}
	if i.Role == RoleParent && i.PlayerID == "" {
		return fmt.Errorf("parent identity requires a player id")
	}

	return nil
}

// CredentialEntry is one record of the derived login directory, keyed
// by normalized email. Everything except PasswordHash is reconstructible
// from the roster; the hash survives resyncs once set.
type CredentialEntry struct {
	PasswordHash string `json:"passwordHash"`
	Role         Role   `json:"role"`
	ID           string `json:"id"`
	Name         string `json:"name"`
	PlayerID     string `json:"playerId,omitempty"`
}

// Identity projects the entry into a session identity.
func (e CredentialEntry) Identity() Identity {
	return Identity{
		ID:       e.ID,
		Name:     e.Name,
		Role:     e.Role,
		PlayerID: e.PlayerID,
	}
}
