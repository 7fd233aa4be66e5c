package message

import "fmt"

// Broadcast addresses. Anything else in To is a player id: the message
// is direct to that player and that player's guardians.
const (
	ToAll     = "all"
	ToCoaches = "coaches"
)

// Message is immutable once sent except for ReadBy, which carries set
// semantics even though it is stored as a list.
type Message struct {
	ID       string   `json:"id"`
	From     string   `json:"from"`
	FromName string   `json:"fromName"`
	To       string   `json:"to"`
	ToName   string   `json:"toName"`
	Subject  string   `json:"subject"`
	Body     string   `json:"body"`
	// SentAt is an ISO-8601 timestamp kept as a string; persisted data
	// from earlier deployments carries zone-less values.
	SentAt string   `json:"sentAt"`
	ReadBy []string `json:"readBy"`
}

func (m Message) Validate() error {
	if m.To == "" {
		return fmt.Errorf("message recipient is required")
	}
	if m.Subject == "" && m.Body == "" {
		return fmt.Errorf("message needs a subject or a body")
	}

	return nil
}

// ReadByUser reports whether userID already appears in ReadBy.
func (m Message) ReadByUser(userID string) bool {
	for _, id := range m.ReadBy {
		if id == userID {
			return true
		}
	}

	return false
}
