package gateway

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"campus-chat/contract"
	"campus-chat/domain"
	"campus-chat/domain/event"
	"campus-chat/realtime"
)

type captureSink struct {
	id string

	mu       sync.Mutex
	consumed []event.Event
}

func (s *captureSink) Consume(e event.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.consumed = append(s.consumed, e)
	return nil
}

func (s *captureSink) Close() {}

func (s *captureSink) all() []event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]event.Event(nil), s.consumed...)
}

func (s *captureSink) byName(name string) []event.Event {
	var out []event.Event
	for _, e := range s.all() {
		if e.Name() == name {
			out = append(out, e)
		}
	}
	return out
}

func newTestGateway() *Gateway {
	log := slog.Default()
	return NewGateway(log, realtime.NewPresenceRegistry(), realtime.NewTypingTracker(),
		realtime.NewRoster(log), 100)
}

func frameOf(t *testing.T, name string, payload any) Frame {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	return Frame{Event: name, Data: data}
}

func connect(g *Gateway, sink contract.EventSink) {
	g.conns[sink] = struct{}{}
}

func TestGateway_Announce_Broadcasts_Online_List(t *testing.T) {
	req := require.New(t)
	g := newTestGateway()
	alice := &captureSink{id: "alice"}
	bob := &captureSink{id: "bob"}
	connect(g, alice)
	connect(g, bob)

	// When Alice announces presence
	g.handleFrame(alice, frameOf(t, "announce-presence", map[string]string{"userId": "alice"}))

	// Then every connection, announced or not, hears user-online
	for _, sink := range []*captureSink{alice, bob} {
		events := sink.byName("user-online")
		req.Len(events, 1)
		online := events[0].(event.UserOnline)
		req.Equal("alice", online.UserID)
		req.Equal([]string{"alice"}, online.OnlineUsers)
	}
}

func TestGateway_Announce_Then_Disconnect_Removes_Presence(t *testing.T) {
	req := require.New(t)
	g := newTestGateway()
	alice := &captureSink{id: "alice"}
	bob := &captureSink{id: "bob"}
	connect(g, alice)
	connect(g, bob)

	g.handleFrame(alice, frameOf(t, "announce-presence", map[string]string{"userId": "alice"}))
	g.handleFrame(bob, frameOf(t, "announce-presence", map[string]string{"userId": "bob"}))

	// When Alice disconnects
	g.handleDisconnect(alice)

	// Then she is gone from the online list broadcast to Bob
	req.NotContains(g.presence.ListOnlineIDs(), "alice")
	offline := bob.byName("user-offline")
	req.Len(offline, 1)
	req.Equal("alice", offline[0].(event.UserOffline).UserID)
	req.Equal([]string{"bob"}, offline[0].(event.UserOffline).OnlineUsers)
}

func TestGateway_Disconnect_Unannounced_Is_Harmless(t *testing.T) {
	req := require.New(t)
	g := newTestGateway()
	alice := &captureSink{id: "alice"}
	ghost := &captureSink{id: "ghost"}
	connect(g, alice)
	connect(g, ghost)

	g.handleFrame(alice, frameOf(t, "announce-presence", map[string]string{"userId": "alice"}))

	// When a connection that never announced disconnects
	g.handleDisconnect(ghost)

	// Then nobody's presence changes and no offline event goes out
	req.Equal([]string{"alice"}, g.presence.ListOnlineIDs())
	req.Empty(alice.byName("user-offline"))
}

func TestGateway_SendMessage_Reaches_Room_Members_Only(t *testing.T) {
	req := require.New(t)
	g := newTestGateway()
	a := &captureSink{id: "A"}
	b := &captureSink{id: "B"}
	c := &captureSink{id: "C"}
	for _, s := range []*captureSink{a, b, c} {
		connect(g, s)
	}

	// Given A and B joined c1 and C never did
	g.handleFrame(a, frameOf(t, "join-conversation", map[string]string{"conversationId": "c1"}))
	g.handleFrame(b, frameOf(t, "join-conversation", map[string]string{"conversationId": "c1"}))

	// When A sends a message
	payload := map[string]string{"conversationId": "c1", "sender": "A", "content": "hi"}
	g.handleFrame(a, frameOf(t, "send-message", payload))

	// Then B receives msg-recieve with the exact payload
	received := b.byName("msg-recieve")
	req.Len(received, 1)
	var got map[string]string
	req.NoError(json.Unmarshal(received[0].(event.MessageReceived).Payload, &got))
	req.Equal(payload, got)

	// And neither the sender nor the outsider gets it
	req.Empty(a.byName("msg-recieve"))
	req.Empty(c.byName("msg-recieve"))
}

func TestGateway_Typing_Start_Stop_Fanout(t *testing.T) {
	req := require.New(t)
	g := newTestGateway()
	a := &captureSink{id: "A"}
	b := &captureSink{id: "B"}
	connect(g, a)
	connect(g, b)
	g.handleFrame(a, frameOf(t, "join-conversation", map[string]string{"conversationId": "c1"}))
	g.handleFrame(b, frameOf(t, "join-conversation", map[string]string{"conversationId": "c1"}))

	typing := map[string]string{"userId": "A", "conversationId": "c1"}
	g.handleFrame(a, frameOf(t, "typing-start", typing))

	started := b.byName("typing")
	req.Len(started, 1)
	req.Equal([]string{"A"}, started[0].(event.TypingStarted).TypingUsers)

	g.handleFrame(a, frameOf(t, "typing-stop", typing))

	stopped := b.byName("stop-typing")
	req.Len(stopped, 1)
	req.Empty(stopped[0].(event.TypingStopped).TypingUsers)
	req.Empty(g.typing.TypingUsers(domain.ChatID("c1")))
}

func TestGateway_Disconnect_While_Typing_Broadcasts_Stop(t *testing.T) {
	req := require.New(t)
	g := newTestGateway()
	a := &captureSink{id: "A"}
	b := &captureSink{id: "B"}
	connect(g, a)
	connect(g, b)

	g.handleFrame(a, frameOf(t, "announce-presence", map[string]string{"userId": "A"}))
	g.handleFrame(a, frameOf(t, "join-conversation", map[string]string{"conversationId": "c1"}))
	g.handleFrame(b, frameOf(t, "join-conversation", map[string]string{"conversationId": "c1"}))
	g.handleFrame(a, frameOf(t, "typing-start", map[string]string{"userId": "A", "conversationId": "c1"}))

	// When A disconnects without sending typing-stop
	g.handleDisconnect(a)

	// Then the remaining member hears stop-typing with A removed
	stopped := b.byName("stop-typing")
	req.Len(stopped, 1)
	req.Equal("A", stopped[0].(event.TypingStopped).UserID)
	req.NotContains(stopped[0].(event.TypingStopped).TypingUsers, "A")
}

func TestGateway_Malformed_Payload_Errors_Origin_Only(t *testing.T) {
	req := require.New(t)
	g := newTestGateway()
	a := &captureSink{id: "A"}
	b := &captureSink{id: "B"}
	connect(g, a)
	connect(g, b)

	// Missing required userId
	g.handleFrame(a, frameOf(t, "announce-presence", map[string]string{}))

	req.Len(a.byName("error"), 1)
	req.Empty(b.all())
	req.Empty(g.presence.ListOnlineIDs())
}

func TestGateway_Disconnect_Survives_Saturated_Queue(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	g := NewGateway(log, realtime.NewPresenceRegistry(), realtime.NewTypingTracker(),
		realtime.NewRoster(log), 1)
	alice := &captureSink{id: "alice"}
	connect(g, alice)
	g.handleFrame(alice, frameOf(t, "announce-presence", map[string]string{"userId": "alice"}))

	// The loop is not running yet, so one frame saturates the queue.
	g.Dispatch(alice, frameOf(t, "typing-start", map[string]string{"userId": "alice", "conversationId": "c1"}))

	done := make(chan struct{})
	go func() {
		g.Disconnect(alice)
		close(done)
	}()

	// The disconnect must wait for the loop, never be shed like a frame.
	select {
	case <-done:
		req.Fail("disconnect returned while the queue was still full")
	case <-time.After(50 * time.Millisecond):
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = g.Run(ctx) }()

	<-done
	req.Eventually(func() bool {
		return len(g.presence.ListOnlineIDs()) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestGateway_Saturated_Queue_Sheds_Frames_Only(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	g := NewGateway(log, realtime.NewPresenceRegistry(), realtime.NewTypingTracker(),
		realtime.NewRoster(log), 1)
	alice := &captureSink{id: "alice"}

	// With the loop stalled, the second and third frames are dropped without
	// blocking the caller.
	for i := 0; i < 3; i++ {
		g.Dispatch(alice, frameOf(t, "join-conversation", map[string]string{"conversationId": "c1"}))
	}
	req.Len(g.commands, 1)
}

func TestGateway_RunLoop_Delivers_Concurrent_Sends(t *testing.T) {
	req := require.New(t)
	g := newTestGateway()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = g.Run(ctx) }()

	a := &captureSink{id: "A"}
	b := &captureSink{id: "B"}
	c := &captureSink{id: "C"}
	for _, s := range []*captureSink{a, b, c} {
		g.Connect(s)
	}
	for _, s := range []contract.EventSink{a, b, c} {
		g.Dispatch(s, frameOf(t, "join-conversation", map[string]string{"conversationId": "c1"}))
	}

	// Two users send within the same tick; both must reach the third member,
	// in whatever order the loop picked them up.
	g.Dispatch(a, frameOf(t, "send-message", map[string]string{"conversationId": "c1", "sender": "A", "content": "one"}))
	g.Dispatch(b, frameOf(t, "send-message", map[string]string{"conversationId": "c1", "sender": "B", "content": "two"}))

	req.Eventually(func() bool {
		return len(c.byName("msg-recieve")) == 2
	}, time.Second, 10*time.Millisecond)
	req.Len(a.byName("msg-recieve"), 1)
	req.Len(b.byName("msg-recieve"), 1)
}
