package message

import "github.com/setly/teamdesk/internal/domain/identity"

// IsReceiver reports whether user is entitled to read the message under
// the addressing rules. The sender is never a receiver of their own
// message. Broadcasts resolve by role; a player-id address covers the
// player and that player's parent account.
func IsReceiver(m Message, user identity.Identity) bool {
	if user.ID == "" {
		return false
	}
	if m.From == user.ID {
		return false
	}

	switch m.To {
	case ToAll:
		return user.Role == identity.RolePlayer || user.Role == identity.RoleParent
	case ToCoaches:
		return user.Role == identity.RoleCoach
	default:
		return user.ID == m.To || user.PlayerID == m.To
	}
}

// IsUnread reports whether user is a receiver who has not read the message.
func IsUnread(m Message, user identity.Identity) bool {
	if !IsReceiver(m, user) {
		return false
	}
	return !m.ReadByUser(user.ID)
}

// IsSentBy reports whether user sent the message.
func IsSentBy(m Message, user identity.Identity) bool {
	return user.ID != "" && m.From == user.ID
}

// Inbox returns the messages where user is a receiver.
func Inbox(messages []Message, user identity.Identity) []Message {
	if user.ID == "" {
		return nil
	}

	out := make([]Message, 0, len(messages))
	for _, m := range messages {
		if IsReceiver(m, user) {
			out = append(out, m)
		}
	}

	return out
}

// Sent returns the messages user sent.
func Sent(messages []Message, user identity.Identity) []Message {
	if user.ID == "" {
		return nil
	}

	out := make([]Message, 0, len(messages))
	for _, m := range messages {
		if IsSentBy(m, user) {
			out = append(out, m)
		}
	}

	return out
}

// UnreadCount counts the unread messages for user.
func UnreadCount(messages []Message, user identity.Identity) int {
	if user.ID == "" {
		return 0
	}

	count := 0
	for _, m := range messages {
		if IsUnread(m, user) {
			count++
		}
	}

	return count
}
