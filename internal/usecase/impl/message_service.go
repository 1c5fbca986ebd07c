package impl

import (
	"context"
	"log/slog"
	"strings"

	"raktapulse/internal/domain/entity"
	domainerrors "raktapulse/internal/domain/errors"
	"raktapulse/internal/domain/repository"
	"raktapulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// messageService implements the MessageUsecase interface.
type messageService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

// MessageServiceParams holds dependencies for messageService, injected by Fx.
type MessageServiceParams struct {
	fx.In

	MessageRepo repository.MessageRepository
	UserRepo    repository.UserRepository
	Logger      *slog.Logger
}

// NewMessageService is the constructor for messageService.
func NewMessageService(params MessageServiceParams) usecase.MessageUsecase {
	return &messageService{
		messageRepo: params.MessageRepo,
		userRepo:    params.UserRepo,
		logger:      params.Logger,
	}
}

// Send delivers a message from the actor to the receiver. Text messages need
// content, sticker messages need a sticker ID.
func (srv *messageService) Send(ctx context.Context, actorID uuid.UUID, input *usecase.SendMessageInput) (*entity.Message, error) {
	if input.ReceiverID == actorID {
		return nil, domainerrors.ErrValidationFailed.WithDetails("cannot message yourself")
	}

	messageType := input.MessageType
	if messageType == "" {
		messageType = entity.MessageTypeText
	}

	switch messageType {
	case entity.MessageTypeText:
		if strings.TrimSpace(input.Content) == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("message content is required")
		}
	case entity.MessageTypeSticker:
		if input.StickerID == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("sticker id is required")
		}
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown message type: " + messageType)
	}

	if _, err := srv.userRepo.FindByID(ctx, input.ReceiverID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load message receiver")
	}

	message := &entity.Message{
		SenderID:    actorID,
		ReceiverID:  input.ReceiverID,
		Content:     input.Content,
		MessageType: messageType,
		StickerID:   input.StickerID,
	}

	if err := srv.messageRepo.Create(ctx, message); err != nil {
		return nil, errors.Wrap(err, "failed to store message")
	}

	srv.logger.Debug("Message sent", slog.Any("senderID", actorID), slog.Any("receiverID", input.ReceiverID))

	return message, nil
}

// Conversation returns the exchange with a peer in chronological order and
// marks the peer's unread messages to the actor as read.
func (srv *messageService) Conversation(ctx context.Context, actorID, peerID uuid.UUID) ([]*entity.Message, error) {
	messages, err := srv.messageRepo.FindConversation(ctx, actorID, peerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load conversation")
	}

	if _, err := srv.messageRepo.MarkConversationRead(ctx, actorID, peerID); err != nil {
		return nil, errors.Wrap(err, "failed to mark conversation read")
	}

	return messages, nil
}

// Inbox returns one entry per chat partner, latest message first.
func (srv *messageService) Inbox(ctx context.Context, actorID uuid.UUID) ([]*entity.Conversation, error) {
	conversations, err := srv.messageRepo.ListConversations(ctx, actorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load inbox")
	}

	return conversations, nil
}

// UnreadCount returns the number of unread messages across all conversations.
func (srv *messageService) UnreadCount(ctx context.Context, actorID uuid.UUID) (int64, error) {
	count, err := srv.messageRepo.CountUnread(ctx, actorID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread messages")
	}

	return count, nil
}
