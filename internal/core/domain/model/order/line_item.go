package order

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// LineItemOption is one selected option value of a line item, priced at the time of ordering.
type LineItemOption struct {
	MenuOptionID      kernel.ID
	MenuOptionValueID kernel.ID
	Name              string
	Price             decimal.Decimal
}

// LineItem is one row of the cart snapshot. Quantity and prices are frozen at order time.
type LineItem struct {
	menuID   kernel.ID
	name     string
	quantity int
	price    decimal.Decimal
	subtotal decimal.Decimal
	comment  string
	options  []LineItemOption
}

// NewLineItem validates a cart row. A zero subtotal is derived as
// quantity * (price + sum of option prices).
func NewLineItem(
	menuID kernel.ID,
	name string,
	quantity int,
	price decimal.Decimal,
	subtotal decimal.Decimal,
	comment string,
	options []LineItemOption,
) (LineItem, error) {
	var problems []error
	if err := menuID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("menu id", err))
	}
	if strings.TrimSpace(name) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("line item name"))
	}
	if quantity <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity)))
	}
	if price.IsNegative() {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price)))
	}
	if subtotal.IsNegative() {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("subtotal", fmt.Errorf("%s is negative", subtotal)))
	}
	for i, opt := range options {
		if strings.TrimSpace(opt.Name) == "" {
			problems = append(problems, errs.NewValueIsRequiredError(fmt.Sprintf("option %d name", i)))
		}
	}
	if err := errors.Join(problems...); err != nil {
		return LineItem{}, err
	}

	item := LineItem{
		menuID:   menuID,
		name:     strings.TrimSpace(name),
		quantity: quantity,
		price:    price,
		subtotal: subtotal,
		comment:  comment,
		options:  append([]LineItemOption(nil), options...),
	}
	if subtotal.IsZero() {
		item.subtotal = item.unitPriceWithOptions().Mul(decimal.NewFromInt(int64(quantity)))
	}
	return item, nil
}

func (li LineItem) unitPriceWithOptions() decimal.Decimal {
	unit := li.price
	for _, opt := range li.options {
		unit = unit.Add(opt.Price)
	}
	return unit
}

func (li LineItem) MenuID() kernel.ID         { return li.menuID }
func (li LineItem) Name() string              { return li.name }
func (li LineItem) Quantity() int             { return li.quantity }
func (li LineItem) Price() decimal.Decimal    { return li.price }
func (li LineItem) Subtotal() decimal.Decimal { return li.subtotal }
func (li LineItem) Comment() string           { return li.comment }
func (li LineItem) Options() []LineItemOption { return append([]LineItemOption(nil), li.options...) }
