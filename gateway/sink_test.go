package gateway

import (
	"testing"

	"github.com/stretchr/testify/require"

	"campus-chat/domain/event"
)

func TestConnSink_Consume_Buffers_Until_Full(t *testing.T) {
	req := require.New(t)
	sink := NewConnSink(2)

	req.NoError(sink.Consume(event.Error{Message: "one"}))
	req.NoError(sink.Consume(event.Error{Message: "two"}))

	// Buffer full: the event is dropped, never blocking the gateway loop
	req.ErrorIs(sink.Consume(event.Error{Message: "three"}), errSinkFull)

	// Draining frees capacity again
	<-sink.Events()
	req.NoError(sink.Consume(event.Error{Message: "four"}))
}

func TestConnSink_Consume_After_Close(t *testing.T) {
	req := require.New(t)
	sink := NewConnSink(2)

	sink.Close()
	sink.Close() // closing twice is safe

	req.ErrorIs(sink.Consume(event.Error{Message: "late"}), errSinkClosed)

	select {
	case <-sink.Done():
	default:
		t.Fatal("Done must be closed after Close")
	}
}
