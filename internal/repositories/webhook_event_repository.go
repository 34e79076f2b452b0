package repositories

import (
	"context"
	"errors"
	"gorm.io/gorm"

	"hermes/internal/models/db_models"
)

type WebhookEventRepositoryInterface interface {
	Create(ctx context.Context, event *db_models.WebhookEvent) error
	FindByWebhookID(ctx context.Context, webhookID string) (*db_models.WebhookEvent, error)
	MarkProcessed(ctx context.Context, event *db_models.WebhookEvent) error
}

func NewWebhookEventRepository(db *gorm.DB) WebhookEventRepositoryInterface {
	return &WebhookEventRepository{db: db}
}

type WebhookEventRepository struct {
	db *gorm.DB
}

// Create relies on the unique index on webhook_id for deduplication; a
// redelivered notification comes back as gorm.ErrDuplicatedKey rather than
// a racy check-then-insert.
func (r *WebhookEventRepository) Create(ctx context.Context, event *db_models.WebhookEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *WebhookEventRepository) FindByWebhookID(ctx context.Context, webhookID string) (*db_models.WebhookEvent, error) {

	var event db_models.WebhookEvent
	err := r.db.WithContext(ctx).Where("webhook_id = ?", webhookID).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}
	return &event, nil
}

func (r *WebhookEventRepository) MarkProcessed(ctx context.Context, event *db_models.WebhookEvent) error {
	event.Processed = true
	return r.db.WithContext(ctx).Model(event).Update("processed", true).Error
}
