package postgres

import (
	"context"

	"raktapulse/internal/domain/entity"
	"raktapulse/internal/domain/repository"
	"raktapulse/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// messageRepository implements the repository.MessageRepository interface.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{
		db: db,
	}
}

// Create persists a new message.
func (repo *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	messageM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(err, "invalid sender or receiver reference")
		}

		return errors.Wrap(err, "failed to create message")
	}

	// Update the entity with generated values
	message.ID = messageM.ID
	message.Timestamp = messageM.CreatedAt

	return nil
}

// FindConversation retrieves every message between the two users in
// chronological order.
func (repo *messageRepository) FindConversation(ctx context.Context, userID, peerID uuid.UUID) ([]*entity.Message, error) {
	var messageModels []*model.MessageModel

	if err := repo.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, peerID, peerID, userID).
		Order("created_at ASC").
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find conversation")
	}

	messages := make([]*entity.Message, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, toMessageDomain(messageM))
	}

	return messages, nil
}

// MarkConversationRead marks all unread messages sent by the peer to the
// user as read.
func (repo *messageRepository) MarkConversationRead(ctx context.Context, userID, peerID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("sender_id = ? AND receiver_id = ? AND is_read = ?", peerID, userID, false).
		Update("is_read", true)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to mark conversation read")
	}

	return result.RowsAffected, nil
}

// ListConversations builds the inbox view: one entry per peer, carrying the
// latest message, ordered by that message's timestamp descending.
func (repo *messageRepository) ListConversations(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error) {
	var messageModels []*model.MessageModel

	// Walk the user's messages newest first and keep the first one seen per
	// peer. The message volume per user is small enough to fold in memory.
	if err := repo.db.WithContext(ctx).
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list conversations")
	}

	seen := make(map[uuid.UUID]bool)
	conversations := make([]*entity.Conversation, 0)
	for _, messageM := range messageModels {
		peerID := messageM.SenderID
		if peerID == userID {
			peerID = messageM.ReceiverID
		}
		if seen[peerID] {
			continue
		}
		seen[peerID] = true

		var peerM model.UserModel
		if err := repo.db.WithContext(ctx).
			Where("id = ?", peerID).
			First(&peerM).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}

			return nil, errors.Wrap(err, "failed to load conversation peer")
		}

		conversations = append(conversations, &entity.Conversation{
			Peer:        toUserDomain(&peerM),
			LastMessage: toMessageDomain(messageM),
		})
	}

	return conversations, nil
}

// CountUnread returns the number of unread messages addressed to the user.
func (repo *messageRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("receiver_id = ? AND is_read = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread messages")
	}

	return count, nil
}

// --- Mapper Functions ---

// toMessageDomain converts a GORM MessageModel to a domain Message entity.
func toMessageDomain(data *model.MessageModel) *entity.Message {
	if data == nil {
		return nil
	}

	return &entity.Message{
		ID:          data.ID,
		SenderID:    data.SenderID,
		ReceiverID:  data.ReceiverID,
		Content:     data.Content,
		MessageType: data.MessageType,
		StickerID:   data.StickerID,
		IsRead:      data.IsRead,
		Timestamp:   data.CreatedAt,
	}
}

// fromMessageDomain converts a domain Message entity to a GORM MessageModel.
func fromMessageDomain(data *entity.Message) *model.MessageModel {
	if data == nil {
		return nil
	}

	return &model.MessageModel{
		ID:          data.ID,
		SenderID:    data.SenderID,
		ReceiverID:  data.ReceiverID,
		Content:     data.Content,
		MessageType: data.MessageType,
		StickerID:   data.StickerID,
		IsRead:      data.IsRead,
		CreatedAt:   data.Timestamp,
	}
}
