//go:generate go run go.uber.org/mock/mockgen -source=search.go -destination=../mocks/mock_search.go -package=mocks
package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/blugelabs/bluge/search"
	"github.com/google/uuid"

	"campus-chat/domain"
)

type ISearchIndex interface {
	Index(message domain.Message) error
	Search(ctx context.Context, chatID domain.ChatID, query string, limit int) ([]domain.Message, error)
}

// SearchIndex is the full-text side of message storage. Badger keeps the
// canonical records; bluge only exists to answer "which messages in this
// conversation mention X". All message fields are stored in the index so a
// hit never needs a second badger lookup.
type SearchIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewSearchIndex(writer *bluge.Writer, log *slog.Logger) SearchIndex {
	return SearchIndex{writer: writer, log: log}
}

func (s SearchIndex) Index(message domain.Message) error {
	doc := bluge.NewDocument(message.ID.String()).
		AddField(bluge.NewKeywordField("chat_id", string(message.ChatID)).StoreValue()).
		AddField(bluge.NewTextField("content", message.Content).StoreValue()).
		AddField(bluge.NewKeywordField("sender", message.Sender).StoreValue()).
		AddField(bluge.NewKeywordField("kind", string(message.Kind)).StoreValue()).
		AddField(bluge.NewKeywordField("created_at", message.CreatedAt.UTC().Format(time.RFC3339Nano)).StoreValue())

	return s.writer.Update(doc.ID(), doc)
}

// Search runs a match query over the conversation's messages and returns up
// to limit hits, relevance-ranked.
func (s SearchIndex) Search(ctx context.Context, chatID domain.ChatID, query string, limit int) ([]domain.Message, error) {
	reader, err := s.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := reader.Close(); err != nil {
			s.log.Debug("failed to close index reader", "error", err)
		}
	}()

	q := bluge.NewBooleanQuery().
		AddMust(bluge.NewTermQuery(string(chatID)).SetField("chat_id")).
		AddMust(bluge.NewMatchQuery(query).SetField("content"))

	iterator, err := reader.Search(ctx, bluge.NewTopNSearch(limit, q))
	if err != nil {
		return nil, err
	}

	var messages []domain.Message
	for {
		match, err := iterator.Next()
		if err != nil {
			return nil, err
		}
		if match == nil {
			break
		}
		message, err := matchToMessage(match)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, nil
}

func matchToMessage(match *search.DocumentMatch) (domain.Message, error) {
	var message domain.Message
	var visitErr error
	err := match.VisitStoredFields(func(field string, value []byte) bool {
		switch field {
		case "_id":
			id, err := uuid.Parse(string(value))
			if err != nil {
				visitErr = err
				return false
			}
			message.ID = id
		case "chat_id":
			message.ChatID = domain.ChatID(value)
		case "content":
			message.Content = string(value)
		case "sender":
			message.Sender = string(value)
		case "kind":
			message.Kind = domain.Kind(value)
		case "created_at":
			at, err := time.Parse(time.RFC3339Nano, string(value))
			if err != nil {
				visitErr = err
				return false
			}
			message.CreatedAt = at
		}
		return true
	})
	if err != nil {
		return domain.Message{}, err
	}
	if visitErr != nil {
		return domain.Message{}, fmt.Errorf("corrupt index document: %w", visitErr)
	}
	return message, nil
}
