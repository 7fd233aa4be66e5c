package team

import (
	"fmt"

	"github.com/setly/teamdesk/internal/domain/message"
	"github.com/setly/teamdesk/internal/domain/roster"
	"github.com/setly/teamdesk/internal/domain/schedule"
)

// Team is one tenant scope: a roster, a schedule and a message set.
type Team struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Roster   roster.Roster     `json:"roster"`
	Schedule []schedule.Event  `json:"schedule"`
	Messages []message.Message `json:"messages"`
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
