package repositories

import (
	"context"
	"fmt"
	"log"

	"github.com/Rakhulsr/figurine-shop/app/models"
	"gorm.io/gorm"
)

type MessageRepositoryImpl interface {
	GetAll(ctx context.Context) []models.Message
	Add(ctx context.Context, message *models.Message) (string, error)
	Update(ctx context.Context, id string, patch models.MessagePatch) error
	UpdateStatus(ctx context.Context, id string, from, to models.OrderStatus) error
	Delete(ctx context.Context, id string) error
	Subscribe(ctx context.Context, cb func([]models.Message)) (func(), error)
}

type gormMessageRepository struct {
	db   *gorm.DB
	feed ChangeFeed
}

func NewMessageRepository(db *gorm.DB, feed ChangeFeed) MessageRepositoryImpl {
	return &gormMessageRepository{db: db, feed: feed}
}

func (r *gormMessageRepository) list(ctx context.Context) ([]models.Message, error) {
	var messages []models.Message
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *gormMessageRepository) GetAll(ctx context.Context) []models.Message {
	messages, err := r.list(ctx)
	if err != nil {
		log.Printf("MessageRepository.GetAll: failed to fetch messages: %v", err)
		return []models.Message{}
	}
	return messages
}

func (r *gormMessageRepository) Add(ctx context.Context, message *models.Message) (string, error) {
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return "", fmt.Errorf("failed to add message: %w", err)
	}
	publishChange(ctx, r.feed, CollectionMessages)
	return message.ID, nil
}

func (r *gormMessageRepository) Update(ctx context.Context, id string, patch models.MessagePatch) error {
	cols := patch.Columns()
	if len(cols) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).Model(&models.Message{}).Where("id = ?", id).Updates(cols)
	if result.Error != nil {
		return fmt.Errorf("failed to update message %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("message %s: %w", id, ErrNotFound)
	}
	publishChange(ctx, r.feed, CollectionMessages)
	return nil
}

// UpdateStatus moves an order from one status to another only if it still has the from
// status, so a transition is applied at most once across instances.
func (r *gormMessageRepository) UpdateStatus(ctx context.Context, id string, from, to models.OrderStatus) error {
	result := r.db.WithContext(ctx).Model(&models.Message{}).
		Where("id = ? AND order_status = ?", id, string(from)).
		Update("order_status", string(to))
	if result.Error != nil {
		return fmt.Errorf("failed to update status of message %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("message %s is no longer %s: %w", id, from, ErrStatusChanged)
	}
	publishChange(ctx, r.feed, CollectionMessages)
	return nil
}

func (r *gormMessageRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&models.Message{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete message %s: %w", id, err)
	}
	publishChange(ctx, r.feed, CollectionMessages)
	return nil
}

func (r *gormMessageRepository) Subscribe(ctx context.Context, cb func([]models.Message)) (func(), error) {
	return subscribe(ctx, r.feed, CollectionMessages, r.list, cb)
}
