//go:generate go run go.uber.org/mock/mockgen -source=chat_service.go -destination=../mocks/services/mock_chat_service.go -package=servicemocks
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"campus-chat/domain"
	apperrors "campus-chat/errors"
	"campus-chat/moderation"
	"campus-chat/repositories"
)

type IChatService interface {
	PostMessage(ctx context.Context, cmd domain.PostMessageCommand) (domain.Message, error)
	GetMessages(chatID domain.ChatID, page, limit int) ([]domain.Message, error)
	SearchMessages(ctx context.Context, chatID domain.ChatID, query string, limit int) ([]domain.Message, error)
	CreateChat(cmd domain.CreateChatCommand) (domain.Chat, error)
	ChatsForUser(userID string) ([]ChatSummary, error)
}

// ChatSummary decorates a conversation for listing: the display name a
// two-person chat borrows from the other participant, plus the last message.
type ChatSummary struct {
	Chat        domain.Chat
	DisplayName string
	LastMessage *domain.Message
}

type ChatService struct {
	messages  repositories.IMessageRepository
	chats     repositories.IChatRepository
	users     repositories.IUserRepository
	index     repositories.ISearchIndex
	moderator *moderation.Moderator
	log       *slog.Logger
}

func NewChatService(messages repositories.IMessageRepository, chats repositories.IChatRepository,
	users repositories.IUserRepository, index repositories.ISearchIndex,
	moderator *moderation.Moderator, log *slog.Logger) *ChatService {
	return &ChatService{
		messages:  messages,
		chats:     chats,
		users:     users,
		index:     index,
		moderator: moderator,
		log:       log,
	}
}

// PostMessage validates and persists a message, returning the stored record.
// The realtime echo over the event channel is the sender's own job after this
// call returns; the two paths are independent and there is no rollback of an
// echo that already went out if a later step fails.
func (s *ChatService) PostMessage(_ context.Context, cmd domain.PostMessageCommand) (domain.Message, error) {
	if cmd.Content == "" {
		return domain.Message{}, fmt.Errorf("%w: content is required", apperrors.ErrValidation)
	}
	kind, err := domain.ParseKind(cmd.Kind)
	if err != nil {
		return domain.Message{}, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	chat, err := s.chats.GetChat(cmd.ChatID)
	if err != nil {
		return domain.Message{}, err
	}
	if !chat.HasParticipant(cmd.Sender) {
		return domain.Message{}, fmt.Errorf("%w: sender is not a participant of this chat", apperrors.ErrValidation)
	}

	content := cmd.Content
	if kind == domain.KindText {
		content = s.moderator.Censor(content)
	}

	message := domain.Message{
		ID:        uuid.New(),
		ChatID:    cmd.ChatID,
		Sender:    cmd.Sender,
		Content:   content,
		Kind:      kind,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.messages.StoreMessage(message); err != nil {
		return domain.Message{}, err
	}

	// The index is derived state; a failed write costs search hits, not the
	// message itself.
	if err := s.index.Index(message); err != nil {
		s.log.Warn("failed to index message", "message_id", message.ID, "error", err)
	}
	return message, nil
}

func (s *ChatService) GetMessages(chatID domain.ChatID, page, limit int) ([]domain.Message, error) {
	if _, err := s.chats.GetChat(chatID); err != nil {
		return nil, err
	}
	return s.messages.GetMessages(chatID, page, limit)
}

func (s *ChatService) SearchMessages(ctx context.Context, chatID domain.ChatID, query string, limit int) ([]domain.Message, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", apperrors.ErrValidation)
	}
	if _, err := s.chats.GetChat(chatID); err != nil {
		return nil, err
	}
	return s.index.Search(ctx, chatID, query, limit)
}

// CreateChat validates that every participant exists before persisting. The
// creator is always included.
func (s *ChatService) CreateChat(cmd domain.CreateChatCommand) (domain.Chat, error) {
	participants := []string{cmd.Creator}
	for _, p := range cmd.Participants {
		if p != cmd.Creator {
			participants = append(participants, p)
		}
	}
	if len(participants) < 2 {
		return domain.Chat{}, fmt.Errorf("%w: a chat needs at least two participants", apperrors.ErrValidation)
	}

	for _, p := range participants {
		exists, err := s.users.UserExists(p)
		if err != nil {
			return domain.Chat{}, err
		}
		if !exists {
			return domain.Chat{}, fmt.Errorf("%w: participant %s", apperrors.ErrNotFound, p)
		}
	}

	chat := domain.Chat{
		ID:           domain.ChatID(uuid.NewString()),
		Participants: participants,
		CreatedAt:    time.Now().UTC(),
	}
	if chat.IsGroup() {
		chat.Name = cmd.Name
	}
	if err := s.chats.CreateChat(chat); err != nil {
		return domain.Chat{}, err
	}
	return chat, nil
}

// ChatsForUser lists the user's conversations with their display name and
// last message.
func (s *ChatService) ChatsForUser(userID string) ([]ChatSummary, error) {
	chats, err := s.chats.ChatsForUser(userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]ChatSummary, 0, len(chats))
	for _, chat := range chats {
		summary := ChatSummary{Chat: chat, DisplayName: chat.Name}
		if summary.DisplayName == "" {
			summary.DisplayName = s.displayName(chat, userID)
		}
		last, ok, err := s.messages.LastMessage(chat.ID)
		if err != nil {
			return nil, err
		}
		if ok {
			summary.LastMessage = &last
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// displayName resolves an unnamed two-person chat to the other participant's
// name.
func (s *ChatService) displayName(chat domain.Chat, userID string) string {
	if len(chat.Participants) != 2 {
		return "Unnamed Chat"
	}
	for _, p := range chat.Participants {
		if p == userID {
			continue
		}
		user, err := s.users.GetUser(p)
		if err != nil {
			s.log.Debug("failed to resolve participant name", "user_id", p, "error", err)
			return "Unnamed Chat"
		}
		return user.Name
	}
	return "Unnamed Chat"
}
