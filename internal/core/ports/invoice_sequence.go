package ports

import "context"

// InvoiceSequence hands out invoice numbers per resolved prefix.
type InvoiceSequence interface {
	// Next locks the prefix for the rest of the transaction and returns the
	// highest assigned number plus one (1 for a new prefix).
	Next(ctx context.Context, prefix string) (int64, error)
}
