package impl

import (
	"context"
	"testing"

	"raktapulse/internal/domain/entity"
	domainerrors "raktapulse/internal/domain/errors"
	"raktapulse/internal/domain/repository"
	mockRepo "raktapulse/internal/mocks/repository"
	"raktapulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type messageServiceMocks struct {
	messageRepo *mockRepo.MockMessageRepository
	userRepo    *mockRepo.MockUserRepository
}

func createTestMessageService(t *testing.T) (usecase.MessageUsecase, *messageServiceMocks) {
	t.Helper()

	mocks := &messageServiceMocks{
		messageRepo: mockRepo.NewMockMessageRepository(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
	}

	service := NewMessageService(MessageServiceParams{
		MessageRepo: mocks.messageRepo,
		UserRepo:    mocks.userRepo,
		Logger:      newDiscardLogger(),
	})

	return service, mocks
}

func TestMessageService_Send(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("text message defaults the type", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestMessageService(t)

		actorID := uuid.New()
		receiverID := uuid.New()

		mocks.userRepo.EXPECT().FindByID(ctx, receiverID).Return(&entity.User{ID: receiverID}, nil)
		mocks.messageRepo.EXPECT().
			Create(ctx, mock.Anything).
			RunAndReturn(func(_ context.Context, message *entity.Message) error {
				message.ID = uuid.New()

				return nil
			})

		message, err := service.Send(ctx, actorID, &usecase.SendMessageInput{
			ReceiverID: receiverID,
			Content:    "Are you available tomorrow?",
		})

		require.NoError(t, err)
		require.NotNil(t, message)
		assert.Equal(t, entity.MessageTypeText, message.MessageType)
		assert.Equal(t, actorID, message.SenderID)
		assert.Equal(t, receiverID, message.ReceiverID)
	})

	t.Run("sticker message needs a sticker id", func(t *testing.T) {
		t.Parallel()

		service, _ := createTestMessageService(t)

		message, err := service.Send(ctx, uuid.New(), &usecase.SendMessageInput{
			ReceiverID:  uuid.New(),
			MessageType: entity.MessageTypeSticker,
		})

		require.Error(t, err)
		assert.Nil(t, message)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("empty text is rejected", func(t *testing.T) {
		t.Parallel()

		service, _ := createTestMessageService(t)

		message, err := service.Send(ctx, uuid.New(), &usecase.SendMessageInput{
			ReceiverID: uuid.New(),
			Content:    "   ",
		})

		require.Error(t, err)
		assert.Nil(t, message)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("unknown message type is rejected", func(t *testing.T) {
		t.Parallel()

		service, _ := createTestMessageService(t)

		message, err := service.Send(ctx, uuid.New(), &usecase.SendMessageInput{
			ReceiverID:  uuid.New(),
			MessageType: "voice",
			Content:     "hi",
		})

		require.Error(t, err)
		assert.Nil(t, message)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("messaging yourself is rejected", func(t *testing.T) {
		t.Parallel()

		service, _ := createTestMessageService(t)

		actorID := uuid.New()
		message, err := service.Send(ctx, actorID, &usecase.SendMessageInput{
			ReceiverID: actorID,
			Content:    "hi me",
		})

		require.Error(t, err)
		assert.Nil(t, message)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("unknown receiver", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestMessageService(t)

		receiverID := uuid.New()
		mocks.userRepo.EXPECT().FindByID(ctx, receiverID).Return(nil, repository.ErrUserNotFound)

		message, err := service.Send(ctx, uuid.New(), &usecase.SendMessageInput{
			ReceiverID: receiverID,
			Content:    "hello",
		})

		require.Error(t, err)
		assert.Nil(t, message)
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}

func TestMessageService_Conversation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("loads the exchange and marks it read", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestMessageService(t)

		actorID := uuid.New()
		peerID := uuid.New()
		exchange := []*entity.Message{
			{ID: uuid.New(), SenderID: peerID, ReceiverID: actorID, Content: "first"},
			{ID: uuid.New(), SenderID: actorID, ReceiverID: peerID, Content: "second"},
		}

		mocks.messageRepo.EXPECT().FindConversation(ctx, actorID, peerID).Return(exchange, nil)
		mocks.messageRepo.EXPECT().MarkConversationRead(ctx, actorID, peerID).Return(int64(1), nil)

		messages, err := service.Conversation(ctx, actorID, peerID)

		require.NoError(t, err)
		assert.Len(t, messages, 2)
	})

	t.Run("repository failure", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestMessageService(t)

		mocks.messageRepo.EXPECT().
			FindConversation(ctx, mock.Anything, mock.Anything).
			Return(nil, errors.New("db error"))

		messages, err := service.Conversation(ctx, uuid.New(), uuid.New())

		require.Error(t, err)
		assert.Nil(t, messages)
		assert.Contains(t, err.Error(), "db error")
	})
}

func TestMessageService_Inbox(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("one entry per partner", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestMessageService(t)

		actorID := uuid.New()
		conversations := []*entity.Conversation{
			{Peer: &entity.User{ID: uuid.New()}, LastMessage: &entity.Message{Content: "latest"}},
		}

		mocks.messageRepo.EXPECT().ListConversations(ctx, actorID).Return(conversations, nil)

		inbox, err := service.Inbox(ctx, actorID)

		require.NoError(t, err)
		require.Len(t, inbox, 1)
		assert.Equal(t, "latest", inbox[0].LastMessage.Content)
	})
}

func TestMessageService_UnreadCount(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("returns the count", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestMessageService(t)

		actorID := uuid.New()
		mocks.messageRepo.EXPECT().CountUnread(ctx, actorID).Return(int64(3), nil)

		count, err := service.UnreadCount(ctx, actorID)

		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})
}
