package roster

import "fmt"

// Roster holds the coaches, players and club metadata of one team.
type Roster struct {
	TeamPhotoURL string   `json:"teamPhotoUrl"`
	ClubName     string   `json:"clubName"`
	AboutClub    string   `json:"aboutClub"`
	Coaches      []Coach  `json:"coaches"`
	Players      []Player `json:"players"`
}

type Coach struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	PhotoURL    string `json:"photoUrl,omitempty"`
	Description string `json:"description,omitempty"`
}

func (c Coach) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("coach name is required")
	}

	return nil
}

type Player struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Number   int    `json:"number"`
	Position string `json:"position"`
	Grade    string `json:"grade"`
	Email    string `json:"email,omitempty"`
	// ParentContact is the legacy single-email fallback; Guardians is canonical.
	ParentContact string     `json:"parentContact,omitempty"`
	PhotoURL      string     `json:"photoUrl,omitempty"`
	Guardians     []Guardian `json:"guardians"`
}

func (p Player) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if p.Number < 0 {
		return fmt.Errorf("player number cannot be negative")
	}

	return nil
}

// Guardian is a parent/guardian contact attached to a player. Guardians
// carry no id of their own; the list is ordered and position-addressed.
type Guardian struct {
	Name         string `json:"name,omitempty"`
	Relationship string `json:"relationship,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
}

// FindCoach returns the coach with the given id.
func (r Roster) FindCoach(id string) (Coach, bool) {
	for _, c := range r.Coaches {
		if c.ID == id {
			return c, true
		}
	}

	return Coach{}, false
}

// FindPlayer returns the player with the given id.
func (r Roster) FindPlayer(id string) (Player, bool) {
	for _, p := range r.Players {
		if p.ID == id {
			return p, true
		}
	}

	return Player{}, false
}

// ParentEmails lists the contact emails for a player: the guardian emails
// when any guardian is present, otherwise the legacy parent contact.
func (p Player) ParentEmails() []string {
	if len(p.Guardians) == 0 {
		if p.ParentContact == "" {
			return nil
		}
		return []string{p.ParentContact}
	}

	out := make([]string, 0, len(p.Guardians))
	for _, g := range p.Guardians {
		if g.Email != "" {
			out = append(out, g.Email)
		}
	}

	return out
}
