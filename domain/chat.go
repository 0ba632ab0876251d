// Package domain contains core concepts of the portal messaging system.
// This file defines Chat (conversation) entities and membership rules.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"time"
)

type ChatID string

// Chat is a conversation between two or more portal users.
// Membership lives in storage; the realtime layer never duplicates it.
type Chat struct {
	ID           ChatID
	Name         string
	Participants []string
	CreatedAt    time.Time
}

// IsGroup reports whether the chat has more than two participants.
// Two-person chats take the other participant's name in API responses.
func (c Chat) IsGroup() bool {
	return len(c.Participants) > 2
}

// HasParticipant reports whether userID belongs to the chat.
func (c Chat) HasParticipant(userID string) bool {
	for _, p := range c.Participants {
		if p == userID {
			return true
		}
	}
	return false
}
