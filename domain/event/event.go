// Package event defines the realtime events pushed to connected clients.
// Event names are part of the wire contract with the portal frontend and
// must not be renamed ("msg-recieve" included, spelling and all).
package event

import (
	"encoding/json"

	"campus-chat/domain"
)

// Event is anything deliverable to a client connection.
type Event interface {
	Name() string
}

type UserOnline struct {
	UserID      string   `json:"userId"`
	OnlineUsers []string `json:"onlineUsers"`
}

func (UserOnline) Name() string { return "user-online" }

type UserOffline struct {
	UserID      string   `json:"userId"`
	OnlineUsers []string `json:"onlineUsers"`
}

func (UserOffline) Name() string { return "user-offline" }

// MessageReceived forwards the sender's payload verbatim.
// The server never rewrites message bodies on the realtime path;
// persistence happens on the REST path before the client emits this.
type MessageReceived struct {
	ChatID  domain.ChatID
	Payload json.RawMessage
}

func (MessageReceived) Name() string { return "msg-recieve" }

type TypingStarted struct {
	UserID      string        `json:"userId"`
	ChatID      domain.ChatID `json:"conversationId"`
	TypingUsers []string      `json:"typingUsers"`
}

func (TypingStarted) Name() string { return "typing" }

type TypingStopped struct {
	UserID      string        `json:"userId"`
	ChatID      domain.ChatID `json:"conversationId"`
	TypingUsers []string      `json:"typingUsers"`
}

func (TypingStopped) Name() string { return "stop-typing" }

// Error is sent back to the originating connection only. Other connections
// never see another client's failures.
type Error struct {
	Message string `json:"message"`
}

func (Error) Name() string { return "error" }
