// Package realtime holds the in-memory state behind the websocket gateway:
// who is online, who is typing where, and which connections belong to which
// conversation. All three structures are owned by the gateway event loop;
// the mutexes only guard read access from the HTTP/debug side.
package realtime

import (
	"sync"

	"campus-chat/contract"
)

// PresenceRegistry tracks which users currently have a live connection.
// At most one entry per user: a second announcement from another device
// overwrites the first (last announcement wins, no multi-device merge).
type PresenceRegistry struct {
	mu     sync.RWMutex
	online map[string]contract.EventSink
}

func NewPresenceRegistry() *PresenceRegistry {
	return &PresenceRegistry{online: make(map[string]contract.EventSink)}
}

// SetOnline records userID as present on the given connection, replacing
// any previous connection for that user.
func (p *PresenceRegistry) SetOnline(userID string, sink contract.EventSink) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.online[userID] = sink
}

// RemoveBySink deletes the presence entry bound to the given connection and
// returns the userID it belonged to. A connection that never announced a user
// has no entry; that is not an error.
func (p *PresenceRegistry) RemoveBySink(sink contract.EventSink) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for userID, s := range p.online {
		if s == sink {
			delete(p.online, userID)
			return userID, true
		}
	}
	return "", false
}

// ListOnlineIDs returns a snapshot of the online user ids. Order is not
// meaningful.
func (p *PresenceRegistry) ListOnlineIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ids := make([]string, 0, len(p.online))
	for userID := range p.online {
		ids = append(ids, userID)
	}
	return ids
}
