package repositories

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"campus-chat/domain"
)

func openTestIndex(t *testing.T) SearchIndex {
	t.Helper()
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = writer.Close() })
	return NewSearchIndex(writer, slog.Default())
}

func indexedMessage(chatID domain.ChatID, sender, content string) domain.Message {
	return domain.Message{
		ID:        uuid.New(),
		ChatID:    chatID,
		Sender:    sender,
		Content:   content,
		Kind:      domain.KindText,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
}

func TestSearchIndex_Finds_Matching_Content(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	index := openTestIndex(t)
	chatID := domain.ChatID("c1")

	target := indexedMessage(chatID, "alice", "the homework deadline moved to friday")
	req.NoError(index.Index(target))
	req.NoError(index.Index(indexedMessage(chatID, "bob", "see you at lunch")))

	results, err := index.Search(ctx, chatID, "deadline", 10)
	req.NoError(err)
	req.Len(results, 1)
	req.Equal(target, results[0])
}

func TestSearchIndex_Scopes_To_Conversation(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	index := openTestIndex(t)

	req.NoError(index.Index(indexedMessage(domain.ChatID("c1"), "alice", "exam results are out")))
	req.NoError(index.Index(indexedMessage(domain.ChatID("c2"), "bob", "exam preparation tips")))

	results, err := index.Search(ctx, domain.ChatID("c1"), "exam", 10)
	req.NoError(err)
	req.Len(results, 1)
	req.Equal(domain.ChatID("c1"), results[0].ChatID)
}

func TestSearchIndex_No_Match_Is_Empty(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	index := openTestIndex(t)

	req.NoError(index.Index(indexedMessage(domain.ChatID("c1"), "alice", "hello there")))

	results, err := index.Search(ctx, domain.ChatID("c1"), "nonexistent", 10)
	req.NoError(err)
	req.Empty(results)
}
