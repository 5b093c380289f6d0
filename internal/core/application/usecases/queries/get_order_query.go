// Package queries contains read-only operations. Handlers read the tables directly
// with SQL instead of rebuilding aggregates.
package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New("GetOrderQuery must be created via NewGetOrderQuery constructor")

// GetOrderQuery loads one order with its line items, totals, coupon and status history.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.ID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) OrderID() kernel.ID { return q.orderID }

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// GetOrderQueryResponse is the read model of an order.
type GetOrderQueryResponse struct {
	ID            kernel.ID
	Hash          string
	CustomerID    *kernel.ID
	AddressID     *kernel.ID
	LocationID    kernel.ID
	FirstName     string
	LastName      string
	Email         string
	Telephone     string
	OrderType     string
	OrderDateTime time.Time
	Comment       string
	PaymentCode   string
	TotalItems    int
	OrderTotal    decimal.Decimal
	StatusID      *kernel.ID
	StatusName    string
	// Invoice is empty until the order completes.
	Invoice     string
	InvoiceDate *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	LineItems []LineItemView
	Totals    []TotalView
	Coupon    *CouponView
	History   []HistoryView
}

type LineItemView struct {
	MenuID   kernel.ID
	Name     string
	Quantity int
	Price    decimal.Decimal
	Subtotal decimal.Decimal
	Comment  string
	Options  []LineItemOptionView
}

type LineItemOptionView struct {
	MenuOptionID      kernel.ID
	MenuOptionValueID kernel.ID
	Name              string
	Price             decimal.Decimal
}

type TotalView struct {
	Code     string
	Title    string
	Value    decimal.Decimal
	Priority int
}

type CouponView struct {
	Code        string
	Amount      decimal.Decimal
	RedeemedAt  time.Time
	FinalizedAt *time.Time
}

type HistoryView struct {
	StatusID   kernel.ID
	StatusName string
	Comment    string
	Notify     bool
	ActorID    *kernel.ID
	CreatedAt  time.Time
}
