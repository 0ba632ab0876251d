package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"campus-chat/domain"
	apperrors "campus-chat/errors"
	"campus-chat/mocks"
	"campus-chat/moderation"
	"campus-chat/repositories"
)

func newTestChatService(t *testing.T) (*ChatService, *mocks.MockIMessageRepository,
	*mocks.MockIChatRepository, *mocks.MockIUserRepository, *mocks.MockISearchIndex) {
	t.Helper()
	ctrl := gomock.NewController(t)
	messages := mocks.NewMockIMessageRepository(ctrl)
	chats := mocks.NewMockIChatRepository(ctrl)
	users := mocks.NewMockIUserRepository(ctrl)
	index := mocks.NewMockISearchIndex(ctrl)
	log := logs.GetLoggerFromLevel(slog.LevelError)
	moderator, err := moderation.NewDefaultModerator('*', log)
	require.NoError(t, err)
	service := NewChatService(messages, chats, users, index, moderator, log)
	return service, messages, chats, users, index
}

func TestChatService_PostMessage(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	chatID := domain.ChatID("chat-1")
	chat := domain.Chat{ID: chatID, Participants: []string{"alice", "bob"}}

	t.Run("Should store and index a valid message", func(t *testing.T) {
		service, messages, chats, _, index := newTestChatService(t)

		// Given a chat alice participates in
		chats.EXPECT().GetChat(chatID).Return(chat, nil)
		var stored domain.Message
		messages.EXPECT().StoreMessage(gomock.Any()).DoAndReturn(func(m domain.Message) error {
			stored = m
			return nil
		})
		index.EXPECT().Index(gomock.Any()).Return(nil)

		// When she posts a message
		message, err := service.PostMessage(ctx, domain.PostMessageCommand{
			ChatID:  chatID,
			Sender:  "alice",
			Content: "hello bob",
		})

		// Then the stored record carries her content with defaults applied
		req.NoError(err)
		req.Equal(stored, message)
		req.Equal("hello bob", message.Content)
		req.Equal(domain.KindText, message.Kind)
		req.NotEqual(uuid.Nil, message.ID)
		req.False(message.CreatedAt.IsZero())
	})

	t.Run("Should censor offensive text content", func(t *testing.T) {
		service, messages, chats, _, index := newTestChatService(t)
		chats.EXPECT().GetChat(chatID).Return(chat, nil)
		var stored domain.Message
		messages.EXPECT().StoreMessage(gomock.Any()).DoAndReturn(func(m domain.Message) error {
			stored = m
			return nil
		})
		index.EXPECT().Index(gomock.Any()).Return(nil)

		_, err := service.PostMessage(ctx, domain.PostMessageCommand{
			ChatID:  chatID,
			Sender:  "alice",
			Content: "you are an idiot",
		})

		req.NoError(err)
		req.Equal("you are an *****", stored.Content)
	})

	t.Run("Should leave non-text content untouched", func(t *testing.T) {
		service, messages, chats, _, index := newTestChatService(t)
		chats.EXPECT().GetChat(chatID).Return(chat, nil)
		var stored domain.Message
		messages.EXPECT().StoreMessage(gomock.Any()).DoAndReturn(func(m domain.Message) error {
			stored = m
			return nil
		})
		index.EXPECT().Index(gomock.Any()).Return(nil)

		_, err := service.PostMessage(ctx, domain.PostMessageCommand{
			ChatID:  chatID,
			Sender:  "alice",
			Content: "https://cdn.example.com/idiot.png",
			Kind:    "image",
		})

		req.NoError(err)
		req.Equal("https://cdn.example.com/idiot.png", stored.Content)
		req.Equal(domain.KindImage, stored.Kind)
	})

	t.Run("Should reject empty content", func(t *testing.T) {
		service, _, _, _, _ := newTestChatService(t)

		_, err := service.PostMessage(ctx, domain.PostMessageCommand{ChatID: chatID, Sender: "alice"})

		req.ErrorIs(err, apperrors.ErrValidation)
	})

	t.Run("Should reject an unknown message kind", func(t *testing.T) {
		service, _, _, _, _ := newTestChatService(t)

		_, err := service.PostMessage(ctx, domain.PostMessageCommand{
			ChatID:  chatID,
			Sender:  "alice",
			Content: "hello",
			Kind:    "hologram",
		})

		req.ErrorIs(err, apperrors.ErrValidation)
	})

	t.Run("Should reject a sender outside the chat", func(t *testing.T) {
		service, _, chats, _, _ := newTestChatService(t)
		chats.EXPECT().GetChat(chatID).Return(chat, nil)

		_, err := service.PostMessage(ctx, domain.PostMessageCommand{
			ChatID:  chatID,
			Sender:  "mallory",
			Content: "hello",
		})

		req.ErrorIs(err, apperrors.ErrValidation)
	})

	t.Run("Should surface a missing chat", func(t *testing.T) {
		service, _, chats, _, _ := newTestChatService(t)
		chats.EXPECT().GetChat(chatID).Return(domain.Chat{}, apperrors.ErrNotFound)

		_, err := service.PostMessage(ctx, domain.PostMessageCommand{
			ChatID:  chatID,
			Sender:  "alice",
			Content: "hello",
		})

		req.ErrorIs(err, apperrors.ErrNotFound)
	})

	t.Run("Should keep the message when indexing fails", func(t *testing.T) {
		service, messages, chats, _, index := newTestChatService(t)
		chats.EXPECT().GetChat(chatID).Return(chat, nil)
		messages.EXPECT().StoreMessage(gomock.Any()).Return(nil)
		index.EXPECT().Index(gomock.Any()).Return(apperrors.ErrStoreUnavailable)

		message, err := service.PostMessage(ctx, domain.PostMessageCommand{
			ChatID:  chatID,
			Sender:  "alice",
			Content: "hello",
		})

		req.NoError(err)
		req.Equal("hello", message.Content)
	})
}

func TestChatService_GetMessages(t *testing.T) {
	req := require.New(t)
	chatID := domain.ChatID("chat-1")
	chat := domain.Chat{ID: chatID, Participants: []string{"alice", "bob"}}

	t.Run("Should fetch messages for an existing chat", func(t *testing.T) {
		service, messages, chats, _, _ := newTestChatService(t)
		want := []domain.Message{{ID: uuid.New(), ChatID: chatID, Sender: "alice", Content: "hi"}}
		chats.EXPECT().GetChat(chatID).Return(chat, nil)
		messages.EXPECT().GetMessages(chatID, 2, 10).Return(want, nil)

		got, err := service.GetMessages(chatID, 2, 10)

		req.NoError(err)
		req.Equal(want, got)
	})

	t.Run("Should fail for an unknown chat", func(t *testing.T) {
		service, _, chats, _, _ := newTestChatService(t)
		chats.EXPECT().GetChat(chatID).Return(domain.Chat{}, apperrors.ErrNotFound)

		_, err := service.GetMessages(chatID, 1, 20)

		req.ErrorIs(err, apperrors.ErrNotFound)
	})
}

func TestChatService_SearchMessages(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	chatID := domain.ChatID("chat-1")
	chat := domain.Chat{ID: chatID, Participants: []string{"alice", "bob"}}

	t.Run("Should delegate to the search index", func(t *testing.T) {
		service, _, chats, _, index := newTestChatService(t)
		want := []domain.Message{{ID: uuid.New(), ChatID: chatID, Content: "exam schedule"}}
		chats.EXPECT().GetChat(chatID).Return(chat, nil)
		index.EXPECT().Search(ctx, chatID, "exam", 10).Return(want, nil)

		got, err := service.SearchMessages(ctx, chatID, "exam", 10)

		req.NoError(err)
		req.Equal(want, got)
	})

	t.Run("Should reject an empty query", func(t *testing.T) {
		service, _, _, _, _ := newTestChatService(t)

		_, err := service.SearchMessages(ctx, chatID, "", 10)

		req.ErrorIs(err, apperrors.ErrValidation)
	})
}

func TestChatService_CreateChat(t *testing.T) {
	req := require.New(t)

	t.Run("Should create a chat between two existing users", func(t *testing.T) {
		service, _, chats, users, _ := newTestChatService(t)
		users.EXPECT().UserExists("alice").Return(true, nil)
		users.EXPECT().UserExists("bob").Return(true, nil)
		var stored domain.Chat
		chats.EXPECT().CreateChat(gomock.Any()).DoAndReturn(func(c domain.Chat) error {
			stored = c
			return nil
		})

		chat, err := service.CreateChat(domain.CreateChatCommand{
			Creator:      "alice",
			Participants: []string{"bob"},
		})

		req.NoError(err)
		req.Equal(stored, chat)
		req.ElementsMatch([]string{"alice", "bob"}, chat.Participants)
		req.Empty(chat.Name)
		req.False(chat.IsGroup())
	})

	t.Run("Should name a group chat", func(t *testing.T) {
		service, _, chats, users, _ := newTestChatService(t)
		users.EXPECT().UserExists(gomock.Any()).Return(true, nil).Times(3)
		chats.EXPECT().CreateChat(gomock.Any()).Return(nil)

		chat, err := service.CreateChat(domain.CreateChatCommand{
			Creator:      "alice",
			Participants: []string{"bob", "carol"},
			Name:         "Algorithms study group",
		})

		req.NoError(err)
		req.Equal("Algorithms study group", chat.Name)
		req.True(chat.IsGroup())
	})

	t.Run("Should deduplicate the creator in the participant list", func(t *testing.T) {
		service, _, chats, users, _ := newTestChatService(t)
		users.EXPECT().UserExists("alice").Return(true, nil)
		users.EXPECT().UserExists("bob").Return(true, nil)
		chats.EXPECT().CreateChat(gomock.Any()).Return(nil)

		chat, err := service.CreateChat(domain.CreateChatCommand{
			Creator:      "alice",
			Participants: []string{"alice", "bob"},
		})

		req.NoError(err)
		req.Len(chat.Participants, 2)
	})

	t.Run("Should reject a chat with a single participant", func(t *testing.T) {
		service, _, _, _, _ := newTestChatService(t)

		_, err := service.CreateChat(domain.CreateChatCommand{Creator: "alice"})

		req.ErrorIs(err, apperrors.ErrValidation)
	})

	t.Run("Should reject a chat with an unknown participant", func(t *testing.T) {
		service, _, _, users, _ := newTestChatService(t)
		users.EXPECT().UserExists("alice").Return(true, nil)
		users.EXPECT().UserExists("ghost").Return(false, nil)

		_, err := service.CreateChat(domain.CreateChatCommand{
			Creator:      "alice",
			Participants: []string{"ghost"},
		})

		req.ErrorIs(err, apperrors.ErrNotFound)
	})
}

func TestChatService_ChatsForUser(t *testing.T) {
	req := require.New(t)

	t.Run("Should resolve display names and last messages", func(t *testing.T) {
		service, messages, chats, users, _ := newTestChatService(t)
		direct := domain.Chat{ID: "c1", Participants: []string{"alice", "bob"}}
		group := domain.Chat{ID: "c2", Name: "Lab group", Participants: []string{"alice", "bob", "carol"}}
		last := domain.Message{ID: uuid.New(), ChatID: "c1", Sender: "bob", Content: "see you", CreatedAt: time.Now()}

		chats.EXPECT().ChatsForUser("alice").Return([]domain.Chat{direct, group}, nil)
		users.EXPECT().GetUser("bob").Return(repositories.User{ID: "bob", Name: "Bob Martin"}, nil)
		messages.EXPECT().LastMessage(domain.ChatID("c1")).Return(last, true, nil)
		messages.EXPECT().LastMessage(domain.ChatID("c2")).Return(domain.Message{}, false, nil)

		summaries, err := service.ChatsForUser("alice")

		req.NoError(err)
		req.Len(summaries, 2)
		req.Equal("Bob Martin", summaries[0].DisplayName)
		req.NotNil(summaries[0].LastMessage)
		req.Equal("see you", summaries[0].LastMessage.Content)
		req.Equal("Lab group", summaries[1].DisplayName)
		req.Nil(summaries[1].LastMessage)
	})

	t.Run("Should return an empty list for a user without chats", func(t *testing.T) {
		service, _, chats, _, _ := newTestChatService(t)
		chats.EXPECT().ChatsForUser("alice").Return(nil, nil)

		summaries, err := service.ChatsForUser("alice")

		req.NoError(err)
		req.Empty(summaries)
	})
}
