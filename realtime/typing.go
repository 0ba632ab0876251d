package realtime

import (
	"sync"

	"campus-chat/domain"
)

type Set map[string]struct{}

// TypingTracker keeps the set of users currently composing a message per
// conversation. Entries are ephemeral: a conversation whose set becomes
// empty is removed entirely so churn does not grow the map forever.
type TypingTracker struct {
	mu     sync.RWMutex
	typing map[domain.ChatID]Set
}

func NewTypingTracker() *TypingTracker {
	return &TypingTracker{typing: make(map[domain.ChatID]Set)}
}

// StartTyping marks userID as typing in the conversation. Starting twice is
// idempotent (set semantics).
func (t *TypingTracker) StartTyping(chatID domain.ChatID, userID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.typing[chatID]; !ok {
		t.typing[chatID] = make(Set)
	}
	t.typing[chatID][userID] = struct{}{}
}

// StopTyping removes userID from the conversation's typing set. Stopping a
// user who was never marked typing is a no-op. The conversation entry is
// deleted once its set is empty.
func (t *TypingTracker) StopTyping(chatID domain.ChatID, userID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	members, ok := t.typing[chatID]
	if !ok {
		return
	}
	delete(members, userID)
	if len(members) == 0 {
		delete(t.typing, chatID)
	}
}

// TypingUsers returns a snapshot of the users typing in the conversation,
// empty if none.
func (t *TypingTracker) TypingUsers(chatID domain.ChatID) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	members, ok := t.typing[chatID]
	if !ok {
		return nil
	}
	ids := make([]string, 0, len(members))
	for userID := range members {
		ids = append(ids, userID)
	}
	return ids
}

// ConversationsFor lists the conversations userID is currently typing in.
// Used on disconnect to broadcast stop-typing for each of them.
func (t *TypingTracker) ConversationsFor(userID string) []domain.ChatID {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var chats []domain.ChatID
	for chatID, members := range t.typing {
		if _, ok := members[userID]; ok {
			chats = append(chats, chatID)
		}
	}
	return chats
}
