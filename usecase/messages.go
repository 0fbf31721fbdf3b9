package usecase

import (
	"context"
	"time"

	"main/model"
	"main/utils"
)

type MessageStore interface {
	CreateMessage(ctx context.Context, message *model.Message) error
	GetUserMessages(ctx context.Context, userID string) ([]*model.Message, error)
	GetMessageByID(ctx context.Context, messageID string) (*model.Message, error)
	UpdateMessageText(ctx context.Context, messageID string, text string) error
	DeleteMessage(ctx context.Context, messageID string) error
}

type MessageService struct {
	store MessageStore
}

func NewMessageService(store MessageStore) *MessageService {
	return &MessageService{store: store}
}

func (svc *MessageService) ownedMessage(ctx context.Context, messageID string, userID string) (*model.Message, error) {
	message, err := svc.store.GetMessageByID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if message.UserID != userID {
		utils.TrackError("auth", "message_ownership_mismatch")
		return nil, ErrPermissionDenied
	}
	return message, nil
}

func (svc *MessageService) CreateMessage(ctx context.Context, userID string, text string) (*model.Message, error) {
	if text == "" {
		return nil, ErrEmptyMessageText
	}

	message := &model.Message{
		UserID:    userID,
		Message:   text,
		Timestamp: time.Now(),
	}

	if err := svc.store.CreateMessage(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

func (svc *MessageService) GetUserMessages(ctx context.Context, userID string) ([]*model.Message, error) {
	return svc.store.GetUserMessages(ctx, userID)
}

func (svc *MessageService) UpdateMessageText(ctx context.Context, messageID string, userID string, text string) error {
	if text == "" {
		return ErrEmptyMessageText
	}

	if _, err := svc.ownedMessage(ctx, messageID, userID); err != nil {
		return err
	}

	return svc.store.UpdateMessageText(ctx, messageID, text)
}

func (svc *MessageService) DeleteMessage(ctx context.Context, messageID string, userID string) error {
	if _, err := svc.ownedMessage(ctx, messageID, userID); err != nil {
		return err
	}

	return svc.store.DeleteMessage(ctx, messageID)
}
