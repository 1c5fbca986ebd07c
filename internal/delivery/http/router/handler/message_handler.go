package handler

import (
	"log/slog"
	"net/http"

	"raktapulse/internal/delivery/http/response"
	"raktapulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MessageHandler holds dependencies for direct messaging handlers.
type MessageHandler struct {
	uc     usecase.MessageUsecase
	logger *slog.Logger
}

// NewMessageHandler is the constructor for MessageHandler, injected by Fx.
func NewMessageHandler(uc usecase.MessageUsecase, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{uc: uc, logger: logger}
}

type sendMessageRequest struct {
	ReceiverID  uuid.UUID `json:"receiverId" validate:"required"`
	Content     string    `json:"content"`
	MessageType string    `json:"messageType"`
	StickerID   string    `json:"stickerId"`
}

// Send delivers a message from the authenticated user to the receiver.
func (h *MessageHandler) Send(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	message, err := h.uc.Send(c.Request().Context(), userID, &usecase.SendMessageInput{
		ReceiverID:  req.ReceiverID,
		Content:     req.Content,
		MessageType: req.MessageType,
		StickerID:   req.StickerID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, message, "Message sent")
}

// Conversation returns the exchange with a peer, oldest first. Loading it
// marks the peer's messages read.
func (h *MessageHandler) Conversation(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	peerID, err := uuid.Parse(c.Param("peerId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid peer id")
	}

	messages, err := h.uc.Conversation(c.Request().Context(), userID, peerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, messages, "")
}

// Inbox returns one entry per chat partner, latest message first.
func (h *MessageHandler) Inbox(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	conversations, err := h.uc.Inbox(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, conversations, "")
}

// UnreadCount returns the number of unread messages across all
// conversations.
func (h *MessageHandler) UnreadCount(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	count, err := h.uc.UnreadCount(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"unread": count}, "")
}
