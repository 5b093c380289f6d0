package fulfillment

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// SequenceAllocator assigns invoice numbers. The lock taken by the sequence is held
// until the surrounding transaction ends, so the number must be stored in the same transaction.
type SequenceAllocator struct {
	sequence ports.InvoiceSequence
}

func NewSequenceAllocator(sequence ports.InvoiceSequence) SequenceAllocator {
	return SequenceAllocator{sequence: sequence}
}

// Allocate resolves the prefix template for now and returns the next invoice of that prefix.
func (a SequenceAllocator) Allocate(ctx context.Context, prefixTemplate string, now time.Time) (order.Invoice, error) {
	prefix := services.ResolveInvoicePrefix(prefixTemplate, now)

	number, err := a.sequence.Next(ctx, prefix)
	if err != nil {
		return order.Invoice{}, err
	}

	return order.NewInvoice(prefix, number, now)
}
