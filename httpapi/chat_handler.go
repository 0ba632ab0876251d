package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"

	"campus-chat/domain"
	apperrors "campus-chat/errors"
	"campus-chat/services"
)

type chatAPI struct {
	service services.IChatService
}

func registerChatAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc services.IChatService) {
	api := chatAPI{service: svc}

	cg := g.Group("/chats", jwt)
	cg.POST("", api.createChat)
	cg.GET("/:userId", api.listChats)

	mg := g.Group("/messages", jwt)
	mg.POST("", api.postMessage)
	mg.GET("/:chatId", api.getMessages)
	mg.GET("/:chatId/search", api.searchMessages)
}

type createChatRequest struct {
	Participants []string `json:"participants"`
	Name         string   `json:"name"`
}

type postMessageRequest struct {
	ChatID  string `json:"conversationId"`
	Content string `json:"content"`
	Kind    string `json:"kind"`
}

type messageResponse struct {
	ID        string    `json:"id"`
	ChatID    string    `json:"conversationId"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"createdAt"`
}

type chatResponse struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Participants []string         `json:"participants"`
	IsGroup      bool             `json:"isGroup"`
	CreatedAt    time.Time        `json:"createdAt"`
	LastMessage  *messageResponse `json:"lastMessage,omitempty"`
}

func toMessageResponse(m domain.Message) messageResponse {
	return messageResponse{
		ID:        m.ID.String(),
		ChatID:    string(m.ChatID),
		Sender:    m.Sender,
		Content:   m.Content,
		Kind:      string(m.Kind),
		CreatedAt: m.CreatedAt,
	}
}

func (api *chatAPI) createChat(c echo.Context) error {
	data := new(createChatRequest)
	if err := c.Bind(data); err != nil {
		return err
	}

	chat, err := api.service.CreateChat(domain.CreateChatCommand{
		Creator:      contextUserID(c),
		Participants: data.Participants,
		Name:         data.Name,
	})
	if err != nil {
		return apperrors.MapToHTTPError(err)
	}

	return c.JSON(http.StatusCreated, chatResponse{
		ID:           string(chat.ID),
		Name:         chat.Name,
		Participants: chat.Participants,
		IsGroup:      chat.IsGroup(),
		CreatedAt:    chat.CreatedAt,
	})
}

// listChats only serves the caller's own conversations.
func (api *chatAPI) listChats(c echo.Context) error {
	userID := c.Param("userId")
	if userID != contextUserID(c) {
		return echo.NewHTTPError(http.StatusForbidden, "cannot list another user's chats")
	}

	summaries, err := api.service.ChatsForUser(userID)
	if err != nil {
		return apperrors.MapToHTTPError(err)
	}

	response := lo.Map(summaries, func(s services.ChatSummary, _ int) chatResponse {
		out := chatResponse{
			ID:           string(s.Chat.ID),
			Name:         s.DisplayName,
			Participants: s.Chat.Participants,
			IsGroup:      s.Chat.IsGroup(),
			CreatedAt:    s.Chat.CreatedAt,
		}
		if s.LastMessage != nil {
			last := toMessageResponse(*s.LastMessage)
			out.LastMessage = &last
		}
		return out
	})
	return c.JSON(http.StatusOK, response)
}

func (api *chatAPI) postMessage(c echo.Context) error {
	data := new(postMessageRequest)
	if err := c.Bind(data); err != nil {
		return err
	}

	message, err := api.service.PostMessage(c.Request().Context(), domain.PostMessageCommand{
		ChatID:  domain.ChatID(data.ChatID),
		Sender:  contextUserID(c),
		Content: data.Content,
		Kind:    data.Kind,
	})
	if err != nil {
		return apperrors.MapToHTTPError(err)
	}
	return c.JSON(http.StatusCreated, toMessageResponse(message))
}

func (api *chatAPI) getMessages(c echo.Context) error {
	chatID := domain.ChatID(c.Param("chatId"))
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 20)

	messages, err := api.service.GetMessages(chatID, page, limit)
	if err != nil {
		return apperrors.MapToHTTPError(err)
	}
	return c.JSON(http.StatusOK, lo.Map(messages, func(m domain.Message, _ int) messageResponse {
		return toMessageResponse(m)
	}))
}

func (api *chatAPI) searchMessages(c echo.Context) error {
	chatID := domain.ChatID(c.Param("chatId"))
	query := c.QueryParam("q")
	limit := queryInt(c, "limit", 20)

	messages, err := api.service.SearchMessages(c.Request().Context(), chatID, query, limit)
	if err != nil {
		return apperrors.MapToHTTPError(err)
	}
	return c.JSON(http.StatusOK, lo.Map(messages, func(m domain.Message, _ int) messageResponse {
		return toMessageResponse(m)
	}))
}

func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
