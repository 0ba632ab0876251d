package gateway

import (
	"fmt"
	"sync"

	"campus-chat/domain/event"
)

var (
	errSinkClosed = fmt.Errorf("sink closed")
	errSinkFull   = fmt.Errorf("sink buffer full")
)

// ConnSink is the delivery end of one websocket connection. The gateway loop
// pushes events into the buffer; the connection's write pump drains it.
// Consume never blocks: a full buffer or a closed connection drops the event,
// which is the at-most-once contract of the realtime layer.
type ConnSink struct {
	events chan event.Event
	quit   chan struct{}
	once   sync.Once
}

func NewConnSink(bufferSize int) *ConnSink {
	return &ConnSink{
		events: make(chan event.Event, bufferSize),
		quit:   make(chan struct{}),
	}
}

func (s *ConnSink) Consume(e event.Event) error {
	select {
	case <-s.quit:
		return errSinkClosed
	default:
	}
	select {
	case s.events <- e:
		return nil
	case <-s.quit:
		return errSinkClosed
	default:
		return errSinkFull
	}
}

// Events is drained by the write pump.
func (s *ConnSink) Events() <-chan event.Event { return s.events }

// Done unblocks the write pump when the connection goes away.
func (s *ConnSink) Done() <-chan struct{} { return s.quit }

func (s *ConnSink) Close() {
	s.once.Do(func() { close(s.quit) })
}
