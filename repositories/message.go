//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"campus-chat/domain"
	apperrors "campus-chat/errors"
)

type IMessageRepository interface {
	StoreMessage(message domain.Message) error
	GetMessages(chatID domain.ChatID, page, limit int) ([]domain.Message, error)
	LastMessage(chatID domain.ChatID) (domain.Message, bool, error)
}

type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) MessageRepository {
	return MessageRepository{db: db, log: log}
}

// diskMessage is the stored shape of a message. JSON keeps values inspectable
// with the badger tooling.
type diskMessage struct {
	ID      uuid.UUID     `json:"id"`
	ChatID  domain.ChatID `json:"chatId"`
	Sender  string        `json:"sender"`
	Content string        `json:"content"`
	Kind    domain.Kind   `json:"kind"`
	At      time.Time     `json:"at"`
}

// messageKey formats "msg:{chat_id}:{timestamp_padded}:{uuid}":
//  1. The 19-digit zero padding makes lexicographic order chronological.
//  2. The UUID suffix disambiguates two messages stored in the same nanosecond.
func messageKey(m domain.Message) []byte {
	return []byte(fmt.Sprintf("msg:%s:%019d:%s", m.ChatID, m.CreatedAt.UnixNano(), m.ID))
}

func messagePrefix(chatID domain.ChatID) []byte {
	return []byte(fmt.Sprintf("msg:%s:", chatID))
}

func (m MessageRepository) StoreMessage(message domain.Message) error {
	bytes, err := json.Marshal(fromMessage(message))
	if err != nil {
		return err
	}
	err = m.db.Update(func(txn *badger.Txn) error {
		return txn.Set(messageKey(message), bytes)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	return nil
}

// GetMessages returns one page of a conversation, newest page first but each
// page reordered to chronological (oldest first) before returning.
//
// Pagination is offset-based: a reverse prefix scan skips (page-1)*limit
// entries then collects limit more. Callers must tolerate skew when new
// messages arrive between page fetches; that is a documented limitation of
// the API, not something corrected here.
func (m MessageRepository) GetMessages(chatID domain.ChatID, page, limit int) ([]domain.Message, error) {
	if page < 1 {
		page = 1
	}
	skip := (page - 1) * limit

	var raw [][]byte
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := messagePrefix(chatID)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		// Seek past the newest possible key, then walk backwards in time.
		seekKey := append(append([]byte{}, prefix...), []byte("9999999999999999999")...)
		skipped := 0
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if skipped < skip {
				skipped++
				continue
			}
			if len(raw) == limit {
				break
			}
			err := it.Item().Value(func(value []byte) error {
				raw = append(raw, append([]byte{}, value...))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}

	// The scan produced newest-first; flip to chronological for the caller.
	messages := make([]domain.Message, 0, len(raw))
	for i := len(raw) - 1; i >= 0; i-- {
		var dm diskMessage
		if err := json.Unmarshal(raw[i], &dm); err != nil {
			return nil, err
		}
		messages = append(messages, toMessage(dm))
	}
	return messages, nil
}

// LastMessage returns the newest message of a conversation, used to decorate
// chat listings.
func (m MessageRepository) LastMessage(chatID domain.ChatID) (domain.Message, bool, error) {
	messages, err := m.GetMessages(chatID, 1, 1)
	if err != nil {
		return domain.Message{}, false, err
	}
	if len(messages) == 0 {
		return domain.Message{}, false, nil
	}
	return messages[0], true, nil
}

func fromMessage(message domain.Message) diskMessage {
	return diskMessage{
		ID:      message.ID,
		ChatID:  message.ChatID,
		Sender:  message.Sender,
		Content: message.Content,
		Kind:    message.Kind,
		At:      message.CreatedAt,
	}
}

func toMessage(dm diskMessage) domain.Message {
	return domain.Message{
		ID:        dm.ID,
		ChatID:    dm.ChatID,
		Sender:    dm.Sender,
		Content:   dm.Content,
		Kind:      dm.Kind,
		CreatedAt: dm.At,
	}
}
