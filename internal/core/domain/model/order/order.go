package order

import (
	"errors"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIDAlreadyAssigned is returned when the store tries to assign a second identifier.
	ErrOrderIDAlreadyAssigned = errors.New("order id is already assigned")
)

// Contact holds the customer details copied onto the order at checkout.
type Contact struct {
	FirstName string
	LastName  string
	Email     string
	Telephone string
}

// FullName joins first and last name the way mails and listings print it.
func (c Contact) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// ClientMetadata records where the order was placed from.
type ClientMetadata struct {
	IPAddress string
	UserAgent string
}

// Details are the caller supplied values of a new order.
type Details struct {
	CustomerID    *kernel.ID
	AddressID     *kernel.ID
	LocationID    kernel.ID
	Contact       Contact
	Type          Type
	OrderDateTime time.Time
	Comment       string
	PaymentCode   string
	Client        ClientMetadata
}

// Snapshot is the full persisted state used to rebuild an Order.
type Snapshot struct {
	ID         kernel.ID
	Details    Details
	LineItems  []LineItem
	Totals     []Total
	TotalItems int
	OrderTotal decimal.Decimal
	StatusID   *kernel.ID
	Invoice    *Invoice
	Hash       Hash
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Order is the aggregate root of the fulfillment workflow. Line items, totals and
// status history belong to it and disappear with it.
//
// Order follows these invariants:
//   - Must have a valid location and order type
//   - The hash is set once by NewOrder and never changes
//   - The invoice is assigned at most once
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id         kernel.ID
	details    Details
	lineItems  []LineItem
	totals     []Total
	totalItems int
	orderTotal decimal.Decimal
	statusID   *kernel.ID
	invoice    *Invoice
	hash       Hash
	createdAt  time.Time
	updatedAt  time.Time

	isConstructed bool
}

// NewOrder creates an unconfirmed order (nil status) with the given hash.
// Requested order times in the past are moved to now.
func NewOrder(details Details, hash Hash, now time.Time) (*Order, error) {
	if err := errors.Join(
		validateDetails(details),
		hash.Validate(),
	); err != nil {
		return nil, err
	}

	if details.OrderDateTime.IsZero() || details.OrderDateTime.Before(now) {
		details.OrderDateTime = now
	}

	return &Order{
		details:       details,
		hash:          hash,
		orderTotal:    decimal.Zero,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreOrder rebuilds an order loaded from persistence.
func RestoreOrder(s Snapshot) (*Order, error) {
	if err := errors.Join(
		s.ID.Validate(),
		validateDetails(s.Details),
		s.Hash.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:            s.ID,
		details:       s.Details,
		lineItems:     append([]LineItem(nil), s.LineItems...),
		totals:        sortTotals(s.Totals),
		totalItems:    s.TotalItems,
		orderTotal:    s.OrderTotal,
		statusID:      s.StatusID,
		invoice:       s.Invoice,
		hash:          s.Hash,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
		isConstructed: true,
	}, nil
}

func validateDetails(d Details) error {
	var problems []error
	if err := d.LocationID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("location id", err))
	}
	if err := d.Type.Validate(); err != nil {
		problems = append(problems, err)
	}
	if d.Type == Delivery && d.AddressID == nil {
		problems = append(problems, errs.NewValueIsRequiredError("address id for delivery order"))
	}
	return errors.Join(problems...)
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// AssignID records the identifier generated by the store on insert.
func (o *Order) AssignID(id kernel.ID) error {
	if o.id != 0 {
		return ErrOrderIDAlreadyAssigned
	}
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) ID() kernel.ID               { return o.id }
func (o *Order) Details() Details            { return o.details }
func (o *Order) Hash() Hash                  { return o.hash }
func (o *Order) StatusID() *kernel.ID        { return o.statusID }
func (o *Order) Invoice() *Invoice           { return o.invoice }
func (o *Order) TotalItems() int             { return o.totalItems }
func (o *Order) OrderTotal() decimal.Decimal { return o.orderTotal }
func (o *Order) CreatedAt() time.Time        { return o.createdAt }
func (o *Order) UpdatedAt() time.Time        { return o.updatedAt }

// LineItems returns a copy of the cart snapshot in cart order.
func (o *Order) LineItems() []LineItem {
	return append([]LineItem(nil), o.lineItems...)
}

// Totals returns a copy of the totals ordered by priority.
func (o *Order) Totals() []Total {
	return append([]Total(nil), o.totals...)
}

// IsPlaced reports whether the order has been confirmed with a first status.
func (o *Order) IsPlaced() bool {
	return o.statusID != nil
}

// HasInvoice reports whether an invoice number was already assigned.
func (o *Order) HasInvoice() bool {
	return o.invoice != nil
}

// ReplaceLineItems swaps the cart snapshot and refreshes the item count and, when
// no grand total line exists, the order total.
func (o *Order) ReplaceLineItems(items []LineItem, now time.Time) {
	o.lineItems = append([]LineItem(nil), items...)
	o.totalItems = 0
	for _, item := range o.lineItems {
		o.totalItems += item.Quantity()
	}
	o.refreshOrderTotal()
	o.updatedAt = now
}

// ReplaceTotals swaps the summary lines. The grand total line, when present, becomes the order total.
func (o *Order) ReplaceTotals(totals []Total, now time.Time) {
	o.totals = sortTotals(totals)
	o.refreshOrderTotal()
	o.updatedAt = now
}

func (o *Order) refreshOrderTotal() {
	for _, t := range o.totals {
		if t.Code == TotalCode {
			o.orderTotal = t.Value
			return
		}
	}
	sum := decimal.Zero
	for _, item := range o.lineItems {
		sum = sum.Add(item.Subtotal())
	}
	o.orderTotal = sum
}

// ChangeStatus moves the order to the given status.
func (o *Order) ChangeStatus(statusID kernel.ID, now time.Time) error {
	if err := statusID.Validate(); err != nil {
		return err
	}
	o.statusID = statusID.Ptr()
	o.updatedAt = now
	return nil
}

// AssignInvoice stores the invoice number. A second assignment is a duplicate effect.
func (o *Order) AssignInvoice(invoice Invoice, now time.Time) error {
	if o.invoice != nil {
		return errs.NewDuplicateEffectError("invoice", o.id.Int64())
	}
	o.invoice = &invoice
	o.updatedAt = now
	return nil
}
