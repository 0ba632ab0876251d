package realtime

import (
	"log/slog"
	"sync"

	"campus-chat/contract"
	"campus-chat/domain"
	"campus-chat/domain/event"
)

// Roster maps each conversation to the connections that joined it and fans
// events out to them. Delivery is best-effort and at-most-once: a sink that
// is gone or refuses the event is skipped silently, nothing is retried.
//
// Joining carries no membership check against storage. Clients are expected
// to join only conversations they belong to; the REST send path is where
// participation is actually enforced.
type Roster struct {
	mu    sync.RWMutex
	rooms map[domain.ChatID]map[contract.EventSink]struct{}
	log   *slog.Logger
}

func NewRoster(log *slog.Logger) *Roster {
	return &Roster{
		rooms: make(map[domain.ChatID]map[contract.EventSink]struct{}),
		log:   log,
	}
}

// Join adds the connection to the conversation's fan-out set, creating the
// room on first join. Joining twice is idempotent.
func (r *Roster) Join(chatID domain.ChatID, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rooms[chatID]; !ok {
		r.rooms[chatID] = make(map[contract.EventSink]struct{})
	}
	r.rooms[chatID][sink] = struct{}{}
}

// Leave removes the connection from every room it joined. Empty rooms are
// deleted so the map stays bounded by live membership.
func (r *Roster) Leave(sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for chatID, members := range r.rooms {
		delete(members, sink)
		if len(members) == 0 {
			delete(r.rooms, chatID)
		}
	}
}

// Broadcast delivers the event to every member of the conversation except
// the optional excluded connection (the sender keeps its own optimistic
// copy). Failed deliveries are logged at debug level and dropped.
func (r *Roster) Broadcast(chatID domain.ChatID, e event.Event, exclude contract.EventSink) {
	r.mu.RLock()
	members := make([]contract.EventSink, 0, len(r.rooms[chatID]))
	for sink := range r.rooms[chatID] {
		if sink != exclude {
			members = append(members, sink)
		}
	}
	r.mu.RUnlock()

	for _, sink := range members {
		if err := sink.Consume(e); err != nil {
			r.log.Debug("event dropped", "event", e.Name(), "chat_id", chatID, "error", err)
		}
	}
}

// Members returns how many connections joined the conversation. Test helper
// and debug endpoint fodder.
func (r *Roster) Members(chatID domain.ChatID) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms[chatID])
}
