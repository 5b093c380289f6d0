// Package invoicerepo allocates invoice numbers from the orders table.
package invoicerepo

import (
	"context"

	"gorm.io/gorm"
)

// GormInvoiceSequence derives the next number from the highest stored invoice of the
// prefix. The transaction scoped advisory lock on the prefix serializes allocations
// until the allocating transaction commits, and the unique index on
// (invoice_prefix, invoice_no) rejects anything that slips past it.
// It must run inside a transaction.
type GormInvoiceSequence struct {
	db *gorm.DB
}

func NewGormInvoiceSequence(db *gorm.DB) *GormInvoiceSequence {
	return &GormInvoiceSequence{db: db}
}

func (s *GormInvoiceSequence) Next(ctx context.Context, prefix string) (int64, error) {
	db := s.db.WithContext(ctx)

	if err := db.Exec("SELECT pg_advisory_xact_lock(hashtext(?::text))", prefix).Error; err != nil {
		return 0, err
	}

	var next int64
	err := db.Raw(
		"SELECT COALESCE(MAX(invoice_no), 0) + 1 FROM orders WHERE invoice_prefix = ?",
		prefix,
	).Scan(&next).Error
	return next, err
}
