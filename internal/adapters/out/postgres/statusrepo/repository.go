package statusrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/status"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStatusRepository reads the status catalog.
type GormStatusRepository struct {
	db *gorm.DB
}

func NewGormStatusRepository(db *gorm.DB) *GormStatusRepository {
	return &GormStatusRepository{db: db}
}

func (r *GormStatusRepository) Get(ctx context.Context, id kernel.ID) (status.Status, error) {
	if err := id.Validate(); err != nil {
		return status.Status{}, err
	}

	var dto StatusDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return status.Status{}, errs.NewObjectNotFoundError("status", id.Int64())
		}
		return status.Status{}, err
	}

	return statusToDomain(dto)
}

// Save upserts a catalog entry. Used to seed statuses.
func (r *GormStatusRepository) Save(ctx context.Context, s status.Status) error {
	dto := StatusDTO{
		ID:              s.ID().Int64(),
		Name:            s.Name(),
		Color:           s.Color(),
		CommentTemplate: s.CommentTemplate(),
		NotifyCustomer:  s.NotifyByDefault(),
	}
	return r.db.WithContext(ctx).Save(&dto).Error
}

// GormHistoryRepository is the append-only status audit trail.
type GormHistoryRepository struct {
	db *gorm.DB
}

func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

func (r *GormHistoryRepository) Append(ctx context.Context, entry status.HistoryEntry) error {
	dto := historyFromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormHistoryRepository) ExistsInStatuses(
	ctx context.Context,
	subjectType string,
	subjectID kernel.ID,
	statusIDs []kernel.ID,
) (bool, error) {
	if len(statusIDs) == 0 {
		return false, nil
	}

	raw := make([]int64, 0, len(statusIDs))
	for _, id := range statusIDs {
		raw = append(raw, id.Int64())
	}

	var exists bool
	err := r.db.WithContext(ctx).Raw(`
		SELECT EXISTS (
			SELECT 1 FROM status_history
			WHERE subject_type = ? AND subject_id = ? AND status_id IN ?
		)`, subjectType, subjectID.Int64(), raw).Scan(&exists).Error
	return exists, err
}

func (r *GormHistoryRepository) ListForSubject(ctx context.Context, subjectType string, subjectID kernel.ID) ([]status.HistoryEntry, error) {
	var dtos []HistoryDTO
	err := r.db.WithContext(ctx).
		Where("subject_type = ? AND subject_id = ?", subjectType, subjectID.Int64()).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entries := make([]status.HistoryEntry, 0, len(dtos))
	for _, dto := range dtos {
		e, convErr := historyToDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		entries = append(entries, e)
	}
	return entries, nil
}
