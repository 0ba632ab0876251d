package gateway

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"campus-chat/domain/event"
	apperrors "campus-chat/errors"
)

// Client event names. Server event names live on the event types themselves.
const (
	evAnnouncePresence = "announce-presence"
	evJoinConversation = "join-conversation"
	evSendMessage      = "send-message"
	evTypingStart      = "typing-start"
	evTypingStop       = "typing-stop"
)

var validate = validator.New()

// Frame is the JSON envelope exchanged on the websocket, both directions:
// {"event": "...", "data": {...}}.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type announcePayload struct {
	UserID string `json:"userId" validate:"required"`
}

type joinPayload struct {
	ChatID string `json:"conversationId" validate:"required"`
}

type typingPayload struct {
	UserID string `json:"userId" validate:"required"`
	ChatID string `json:"conversationId" validate:"required"`
}

// sendPayload only pins the conversation id; the rest of the message object
// is opaque to the gateway and forwarded verbatim.
type sendPayload struct {
	ChatID string `json:"conversationId" validate:"required"`
}

func decodePayload(data json.RawMessage, out any) error {
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if err := validate.Struct(out); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return nil
}

// EncodeFrame turns a server event into its wire envelope. Message events
// carry the sender's payload untouched; everything else marshals its own
// fields.
func EncodeFrame(e event.Event) (Frame, error) {
	if msg, ok := e.(event.MessageReceived); ok {
		return Frame{Event: msg.Name(), Data: msg.Payload}, nil
	}
	data, err := json.Marshal(e)
	if err != nil {
		return Frame{}, err
	}
	return Frame{Event: e.Name(), Data: data}, nil
}
