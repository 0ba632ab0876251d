// Package domain contains core concepts of the portal messaging system.
// This file defines Message records and related rules.
// Messages are immutable once stored; there is no edit or delete.
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind describes what a message carries.
type Kind string

const (
	KindText     Kind = "text"
	KindImage    Kind = "image"
	KindAudio    Kind = "audio"
	KindDocument Kind = "document"
)

// ParseKind validates a wire value; an empty value defaults to text.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindText, KindImage, KindAudio, KindDocument:
		return Kind(s), nil
	case "":
		return KindText, nil
	default:
		return "", fmt.Errorf("unknown message kind %q", s)
	}
}

// Message represents an immutable chat message.
type Message struct {
	ID        uuid.UUID
	ChatID    ChatID
	Sender    string
	Content   string
	Kind      Kind
	CreatedAt time.Time
}
