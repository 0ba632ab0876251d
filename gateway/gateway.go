// Package gateway is the realtime entry point of the portal: it owns the
// websocket connections and routes client events to the presence registry,
// typing tracker, and conversation roster.
//
// All shared state is mutated from a single event loop goroutine (Run), so
// events from one connection are handled in arrival order and no handler ever
// observes another handler's half-applied mutation. Connection read/write
// pumps only talk to the loop through channels.
package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"campus-chat/contract"
	"campus-chat/domain"
	"campus-chat/domain/event"
)

type commandKind int

const (
	cmdConnect commandKind = iota
	cmdDisconnect
	cmdFrame
)

type command struct {
	kind  commandKind
	sink  contract.EventSink
	frame Frame
}

type Gateway struct {
	log      *slog.Logger
	presence contract.IPresence
	typing   contract.ITyping
	roster   contract.IRoster
	commands chan command

	// conns is the handle table of every live connection, announced or not.
	// Touched only by the Run loop.
	conns map[contract.EventSink]struct{}
}

func NewGateway(log *slog.Logger, presence contract.IPresence, typing contract.ITyping,
	roster contract.IRoster, bufferSize int) *Gateway {
	return &Gateway{
		log:      log,
		presence: presence,
		typing:   typing,
		roster:   roster,
		commands: make(chan command, bufferSize),
		conns:    make(map[contract.EventSink]struct{}),
	}
}

// Connect registers a new connection in the handle table. The connection is
// not yet tied to a user; that happens on announce-presence.
func (g *Gateway) Connect(sink contract.EventSink) {
	g.commands <- command{kind: cmdConnect, sink: sink}
}

// Disconnect runs the full cleanup for a connection: presence entry, typing
// sets, room membership, offline broadcast. Lifecycle commands block until
// the loop accepts them; a skipped cleanup would leak the presence entry and
// keep a closed sink in the broadcast tables forever.
func (g *Gateway) Disconnect(sink contract.EventSink) {
	g.commands <- command{kind: cmdDisconnect, sink: sink}
}

// Dispatch hands a decoded client frame to the event loop. Frames are
// best-effort: when the loop is saturated the frame is shed rather than
// stalling the read pump.
func (g *Gateway) Dispatch(sink contract.EventSink, frame Frame) {
	select {
	case g.commands <- command{kind: cmdFrame, sink: sink, frame: frame}:
	default:
		g.log.Warn("gateway command channel full, dropping frame", "event", frame.Event)
	}
}

// Run is the gateway event loop. It is the only goroutine allowed to mutate
// presence, typing, roster, and the handle table.
func (g *Gateway) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			g.log.Debug("Stopping gateway loop")
			return ctx.Err()
		case cmd := <-g.commands:
			switch cmd.kind {
			case cmdConnect:
				g.conns[cmd.sink] = struct{}{}
				g.log.Debug("connection registered", "total", len(g.conns))
			case cmdDisconnect:
				g.handleDisconnect(cmd.sink)
			case cmdFrame:
				g.handleFrame(cmd.sink, cmd.frame)
			}
		}
	}
}

func (g *Gateway) handleFrame(sink contract.EventSink, frame Frame) {
	var err error
	switch frame.Event {
	case evAnnouncePresence:
		err = g.handleAnnounce(sink, frame)
	case evJoinConversation:
		err = g.handleJoin(sink, frame)
	case evSendMessage:
		err = g.handleSend(sink, frame)
	case evTypingStart:
		err = g.handleTyping(frame, true)
	case evTypingStop:
		err = g.handleTyping(frame, false)
	default:
		err = fmt.Errorf("unknown event %q", frame.Event)
	}
	if err != nil {
		// Failures stay scoped to the connection that caused them.
		g.log.Debug("event rejected", "event", frame.Event, "error", err)
		_ = sink.Consume(event.Error{Message: err.Error()})
	}
}

func (g *Gateway) handleAnnounce(sink contract.EventSink, frame Frame) error {
	var p announcePayload
	if err := decodePayload(frame.Data, &p); err != nil {
		return err
	}
	g.presence.SetOnline(p.UserID, sink)
	g.broadcastAll(event.UserOnline{UserID: p.UserID, OnlineUsers: g.presence.ListOnlineIDs()})
	return nil
}

func (g *Gateway) handleJoin(sink contract.EventSink, frame Frame) error {
	var p joinPayload
	if err := decodePayload(frame.Data, &p); err != nil {
		return err
	}
	// No membership check against storage here; the REST send path is where
	// participation is enforced.
	g.roster.Join(domain.ChatID(p.ChatID), sink)
	return nil
}

func (g *Gateway) handleSend(sink contract.EventSink, frame Frame) error {
	var p sendPayload
	if err := decodePayload(frame.Data, &p); err != nil {
		return err
	}
	// Forward verbatim to everyone else in the room. Persistence already
	// happened on the REST path before the client emitted this.
	g.roster.Broadcast(domain.ChatID(p.ChatID),
		event.MessageReceived{ChatID: domain.ChatID(p.ChatID), Payload: frame.Data}, sink)
	return nil
}

func (g *Gateway) handleTyping(frame Frame, start bool) error {
	var p typingPayload
	if err := decodePayload(frame.Data, &p); err != nil {
		return err
	}
	chatID := domain.ChatID(p.ChatID)
	if start {
		g.typing.StartTyping(chatID, p.UserID)
		g.roster.Broadcast(chatID, event.TypingStarted{
			UserID:      p.UserID,
			ChatID:      chatID,
			TypingUsers: g.typing.TypingUsers(chatID),
		}, nil)
		return nil
	}
	g.typing.StopTyping(chatID, p.UserID)
	g.roster.Broadcast(chatID, event.TypingStopped{
		UserID:      p.UserID,
		ChatID:      chatID,
		TypingUsers: g.typing.TypingUsers(chatID),
	}, nil)
	return nil
}

func (g *Gateway) handleDisconnect(sink contract.EventSink) {
	delete(g.conns, sink)

	userID, announced := g.presence.RemoveBySink(sink)
	if announced {
		// Clear stuck typing flags; this is the only cleanup trigger, there
		// is no idle-timeout sweep.
		for _, chatID := range g.typing.ConversationsFor(userID) {
			g.typing.StopTyping(chatID, userID)
			g.roster.Broadcast(chatID, event.TypingStopped{
				UserID:      userID,
				ChatID:      chatID,
				TypingUsers: g.typing.TypingUsers(chatID),
			}, sink)
		}
	}

	g.roster.Leave(sink)

	if announced {
		g.broadcastAll(event.UserOffline{UserID: userID, OnlineUsers: g.presence.ListOnlineIDs()})
	}
	g.log.Debug("connection removed", "total", len(g.conns))
}

// broadcastAll fans a presence change out to every live connection, announced
// or not, mirroring what the portal frontend expects.
func (g *Gateway) broadcastAll(e event.Event) {
	for sink := range g.conns {
		if err := sink.Consume(e); err != nil {
			g.log.Debug("event dropped", "event", e.Name(), "error", err)
		}
	}
}
