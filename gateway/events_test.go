package gateway

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"campus-chat/domain/event"
	apperrors "campus-chat/errors"
)

func TestEncodeFrame_Message_Payload_Is_Verbatim(t *testing.T) {
	req := require.New(t)
	payload := json.RawMessage(`{"conversationId":"c1","sender":"A","content":"hi","extra":42}`)

	frame, err := EncodeFrame(event.MessageReceived{ChatID: "c1", Payload: payload})

	req.NoError(err)
	req.Equal("msg-recieve", frame.Event)
	req.JSONEq(string(payload), string(frame.Data))
}

func TestEncodeFrame_Typing_Marshals_Fields(t *testing.T) {
	req := require.New(t)
	frame, err := EncodeFrame(event.TypingStarted{UserID: "A", ChatID: "c1", TypingUsers: []string{"A"}})

	req.NoError(err)
	req.Equal("typing", frame.Event)
	req.JSONEq(`{"userId":"A","conversationId":"c1","typingUsers":["A"]}`, string(frame.Data))
}

func TestDecodePayload_Missing_Field_Is_Validation_Error(t *testing.T) {
	req := require.New(t)
	var p typingPayload

	err := decodePayload(json.RawMessage(`{"userId":"A"}`), &p)

	req.ErrorIs(err, apperrors.ErrValidation)
}

func TestDecodePayload_Malformed_JSON_Is_Validation_Error(t *testing.T) {
	req := require.New(t)
	var p announcePayload

	err := decodePayload(json.RawMessage(`{"userId":`), &p)

	req.ErrorIs(err, apperrors.ErrValidation)
}
