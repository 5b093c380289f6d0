// Package statusrepo persists the status catalog and the status history.
package statusrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/status"
)

// StatusDTO is a row of the statuses catalog.
type StatusDTO struct {
	ID              int64  `gorm:"primaryKey"`
	Name            string `gorm:"size:64;not null"`
	Color           string `gorm:"size:32"`
	CommentTemplate string `gorm:"type:text"`
	NotifyCustomer  bool
}

func (StatusDTO) TableName() string {
	return "statuses"
}

// HistoryDTO is one append-only row of status_history. The subject foreign key
// to orders is added by the migration.
type HistoryDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	SubjectType string `gorm:"size:32;not null;index:idx_status_history_subject,priority:1"`
	SubjectID   int64  `gorm:"not null;index:idx_status_history_subject,priority:2"`
	StatusID    int64  `gorm:"not null;index:idx_status_history_subject,priority:3"`
	Comment     string `gorm:"type:text"`
	Notify      bool
	ActorID     *int64
	CreatedAt   time.Time
}

func (HistoryDTO) TableName() string {
	return "status_history"
}

func statusToDomain(dto StatusDTO) (status.Status, error) {
	return status.NewStatus(kernel.ID(dto.ID), dto.Name, dto.Color, dto.CommentTemplate, dto.NotifyCustomer)
}

func historyFromDomain(e status.HistoryEntry) HistoryDTO {
	var actor *int64
	if id := e.ActorID(); id != nil {
		v := id.Int64()
		actor = &v
	}
	return HistoryDTO{
		SubjectType: e.SubjectType(),
		SubjectID:   e.SubjectID().Int64(),
		StatusID:    e.StatusID().Int64(),
		Comment:     e.Comment(),
		Notify:      e.Notify(),
		ActorID:     actor,
		CreatedAt:   e.CreatedAt(),
	}
}

func historyToDomain(dto HistoryDTO) (status.HistoryEntry, error) {
	var actor *kernel.ID
	if dto.ActorID != nil {
		actor = kernel.ID(*dto.ActorID).Ptr()
	}
	return status.NewHistoryEntry(
		dto.SubjectType, kernel.ID(dto.SubjectID), kernel.ID(dto.StatusID), dto.Comment, dto.Notify, actor, dto.CreatedAt,
	)
}
