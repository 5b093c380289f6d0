// Package outboxrepo stores notifications waiting for a retry.
package outboxrepo

import (
	"context"
	"encoding/json"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OutboxDTO is a row of notification_outbox. Payload holds the mail data as JSON.
// ClaimedUntil is set while a retry run owns the row.
type OutboxDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      int64     `gorm:"not null;index"`
	Kind         string    `gorm:"size:32;not null"`
	Recipient    string    `gorm:"size:255;not null"`
	Payload      string    `gorm:"type:text;not null"`
	Attempts     int
	LastError    string `gorm:"type:text"`
	State        string `gorm:"size:16;not null;index"`
	ClaimedUntil *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (OutboxDTO) TableName() string {
	return "notification_outbox"
}

// GormOutboxRepository implements ports.OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

func (r *GormOutboxRepository) Add(ctx context.Context, entry *notification.OutboxEntry) error {
	dto, err := fromDomain(entry)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormOutboxRepository) Update(ctx context.Context, entry *notification.OutboxEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(&OutboxDTO{}).
		Where("id = ?", entry.ID().Bytes()).
		Updates(map[string]any{
			"attempts":      entry.Attempts(),
			"last_error":    entry.LastError(),
			"state":         string(entry.State()),
			"claimed_until": nil,
			"updated_at":    entry.UpdatedAt(),
		}).Error
}

func (r *GormOutboxRepository) ClaimPending(
	ctx context.Context,
	limit int,
	now time.Time,
	lease time.Duration,
) ([]*notification.OutboxEntry, error) {
	var dtos []OutboxDTO
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
			Where("state = ?", string(notification.StatePending)).
			Where("claimed_until IS NULL OR claimed_until <= ?", now).
			Order("created_at, id").
			Limit(limit).
			Find(&dtos).Error
		if err != nil || len(dtos) == 0 {
			return err
		}

		ids := make([]uuid.UUID, 0, len(dtos))
		for _, dto := range dtos {
			ids = append(ids, dto.ID)
		}
		return tx.Model(&OutboxDTO{}).
			Where("id IN ?", ids).
			Update("claimed_until", now.Add(lease)).Error
	})
	if err != nil {
		return nil, err
	}

	entries := make([]*notification.OutboxEntry, 0, len(dtos))
	for _, dto := range dtos {
		e, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func fromDomain(e *notification.OutboxEntry) (OutboxDTO, error) {
	if err := e.Validate(); err != nil {
		return OutboxDTO{}, err
	}
	payload, err := json.Marshal(e.Data())
	if err != nil {
		return OutboxDTO{}, err
	}
	return OutboxDTO{
		ID:        e.ID().Bytes(),
		OrderID:   e.OrderID().Int64(),
		Kind:      string(e.Kind()),
		Recipient: e.Recipient(),
		Payload:   string(payload),
		Attempts:  e.Attempts(),
		LastError: e.LastError(),
		State:     string(e.State()),
		CreatedAt: e.CreatedAt(),
		UpdatedAt: e.UpdatedAt(),
	}, nil
}

func toDomain(dto OutboxDTO) (*notification.OutboxEntry, error) {
	id, err := kernel.UUIDFromString(dto.ID.String())
	if err != nil {
		return nil, err
	}
	var data notification.Data
	if err = json.Unmarshal([]byte(dto.Payload), &data); err != nil {
		return nil, err
	}
	return notification.RestoreOutboxEntry(notification.OutboxSnapshot{
		ID:        id,
		OrderID:   kernel.ID(dto.OrderID),
		Kind:      notification.Kind(dto.Kind),
		Recipient: dto.Recipient,
		Data:      data,
		Attempts:  dto.Attempts,
		LastError: dto.LastError,
		State:     notification.State(dto.State),
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
	})
}
