//go:generate go run go.uber.org/mock/mockgen -source=chat.go -destination=../mocks/mock_chat.go -package=mocks
package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"

	"campus-chat/domain"
	apperrors "campus-chat/errors"
)

type IChatRepository interface {
	CreateChat(chat domain.Chat) error
	GetChat(id domain.ChatID) (domain.Chat, error)
	ChatsForUser(userID string) ([]domain.Chat, error)
}

type ChatRepository struct {
	db *badger.DB
}

func NewChatRepository(db *badger.DB) ChatRepository {
	return ChatRepository{db: db}
}

type diskChat struct {
	ID           domain.ChatID `json:"id"`
	Name         string        `json:"name,omitempty"`
	Participants []string      `json:"participants"`
	CreatedAt    time.Time     `json:"createdAt"`
}

func chatKey(id domain.ChatID) []byte {
	return []byte("chat:" + id)
}

// directKey indexes a two-person chat by its sorted participant pair so
// duplicate 1:1 chats can be rejected without a full scan.
func directKey(participants []string) []byte {
	pair := append([]string{}, participants...)
	sort.Strings(pair)
	return []byte("direct:" + strings.Join(pair, ":"))
}

// CreateChat persists the conversation. A second 1:1 chat between the same
// two users is rejected; group chats have no such uniqueness rule.
func (c ChatRepository) CreateChat(chat domain.Chat) error {
	bytes, err := json.Marshal(fromChat(chat))
	if err != nil {
		return err
	}
	err = c.db.Update(func(txn *badger.Txn) error {
		if len(chat.Participants) == 2 {
			key := directKey(chat.Participants)
			if _, err := txn.Get(key); err == nil {
				return fmt.Errorf("%w: chat between these participants already exists", apperrors.ErrValidation)
			}
			if err := txn.Set(key, []byte(chat.ID)); err != nil {
				return err
			}
		}
		return txn.Set(chatKey(chat.ID), bytes)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return err
		}
		return fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	return nil
}

func (c ChatRepository) GetChat(id domain.ChatID) (domain.Chat, error) {
	var dc diskChat
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(chatKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &dc)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return domain.Chat{}, fmt.Errorf("%w: chat %s", apperrors.ErrNotFound, id)
	}
	if err != nil {
		return domain.Chat{}, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	return toChat(dc), nil
}

// ChatsForUser scans the chat keyspace and keeps conversations the user
// participates in. The portal's chat counts stay small enough that a prefix
// scan beats maintaining a per-user index.
func (c ChatRepository) ChatsForUser(userID string) ([]domain.Chat, error) {
	var chats []domain.Chat
	err := c.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte("chat:")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var dc diskChat
				if err := json.Unmarshal(val, &dc); err != nil {
					return err
				}
				if lo.Contains(dc.Participants, userID) {
					chats = append(chats, toChat(dc))
				}
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
	return chats, nil
}

func fromChat(chat domain.Chat) diskChat {
	return diskChat{
		ID:           chat.ID,
		Name:         chat.Name,
		Participants: chat.Participants,
		CreatedAt:    chat.CreatedAt,
	}
}

func toChat(dc diskChat) domain.Chat {
	return domain.Chat{
		ID:           dc.ID,
		Name:         dc.Name,
		Participants: dc.Participants,
		CreatedAt:    dc.CreatedAt,
	}
}
