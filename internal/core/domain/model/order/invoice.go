package order

import (
	"fmt"
	"strconv"
	"time"

	"fulfillment/internal/pkg/errs"
)

// Invoice is the number assigned to a completed order: prefix + per-prefix sequence.
type Invoice struct {
	prefix   string
	number   int64
	issuedAt time.Time
}

func NewInvoice(prefix string, number int64, issuedAt time.Time) (Invoice, error) {
	if number <= 0 {
		return Invoice{}, errs.NewValueIsInvalidErrorWithCause("invoice number", fmt.Errorf("%d is not greater than 0", number))
	}
	return Invoice{prefix: prefix, number: number, issuedAt: issuedAt}, nil
}

func (i Invoice) Prefix() string      { return i.prefix }
func (i Invoice) Number() int64       { return i.number }
func (i Invoice) IssuedAt() time.Time { return i.issuedAt }

// String renders the printed invoice number, e.g. INV202401011.
func (i Invoice) String() string {
	return i.prefix + strconv.FormatInt(i.number, 10)
}
