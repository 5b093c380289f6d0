package http

import (
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

type lineItemOptionRequest struct {
	MenuOptionID      int64           `json:"menu_option_id"       validate:"gt=0"`
	MenuOptionValueID int64           `json:"menu_option_value_id" validate:"gt=0"`
	Name              string          `json:"name"                 validate:"required"`
	Price             decimal.Decimal `json:"price"`
}

type lineItemRequest struct {
	MenuID   int64                   `json:"menu_id"  validate:"gt=0"`
	Name     string                  `json:"name"     validate:"required"`
	Quantity int                     `json:"quantity" validate:"gt=0"`
	Price    decimal.Decimal         `json:"price"`
	Subtotal decimal.Decimal         `json:"subtotal"`
	Comment  string                  `json:"comment"`
	Options  []lineItemOptionRequest `json:"options"  validate:"dive"`
}

type totalRequest struct {
	Code     string          `json:"code"     validate:"required"`
	Title    string          `json:"title"`
	Value    decimal.Decimal `json:"value"`
	Priority int             `json:"priority"`
}

type couponRequest struct {
	Code   string          `json:"code"   validate:"required"`
	Amount decimal.Decimal `json:"amount"`
}

type createOrderRequest struct {
	CustomerID       *int64            `json:"customer_id"       validate:"omitempty,gt=0"`
	AddressID        *int64            `json:"address_id"        validate:"required_if=OrderType delivery,omitempty,gt=0"`
	LocationID       int64             `json:"location_id"       validate:"gt=0"`
	FirstName        string            `json:"first_name"`
	LastName         string            `json:"last_name"`
	Email            string            `json:"email"             validate:"omitempty,email"`
	Telephone        string            `json:"telephone"`
	OrderType        string            `json:"order_type"        validate:"required"`
	OrderDateTime    *time.Time        `json:"order_date_time"`
	Comment          string            `json:"comment"`
	PaymentCode      string            `json:"payment"`
	LineItems        []lineItemRequest `json:"line_items"        validate:"dive"`
	Totals           []totalRequest    `json:"totals"            validate:"dive"`
	Coupon           *couponRequest    `json:"coupon"`
	SendConfirmation *bool             `json:"send_confirmation"`
}

type lineItemsRequest struct {
	LineItems []lineItemRequest `json:"line_items" validate:"required,dive"`
}

type totalsRequest struct {
	Totals []totalRequest `json:"totals" validate:"required,dive"`
}

type attachCouponRequest struct {
	CustomerID *int64 `json:"customer_id" validate:"omitempty,gt=0"`
	couponRequest
}

type transitionRequest struct {
	StatusID int64   `json:"status_id" validate:"gt=0"`
	Comment  *string `json:"comment"`
	Notify   *bool   `json:"notify"`
	ActorID  *int64  `json:"actor_id"  validate:"omitempty,gt=0"`
}

type deleteOrdersRequest struct {
	IDs []int64 `json:"ids" validate:"required,min=1,dive,gt=0"`
}

type createOrderResponse struct {
	ID               int64  `json:"id"`
	Hash             string `json:"hash"`
	ConfirmationSent bool   `json:"confirmation_sent"`
}

type transitionResponse struct {
	OrderID       int64    `json:"order_id"`
	StatusID      int64    `json:"status_id"`
	Invoice       string   `json:"invoice,omitempty"`
	Notified      bool     `json:"notified"`
	StockFailures []string `json:"stock_failures,omitempty"`
}

type couponResponse struct {
	OrderID  int64           `json:"order_id"`
	CouponID int64           `json:"coupon_id"`
	Code     string          `json:"code"`
	Amount   decimal.Decimal `json:"amount"`
}

type deleteOrdersResponse struct {
	Deleted int64 `json:"deleted"`
}

func idPtr(v *int64) *kernel.ID {
	if v == nil {
		return nil
	}
	return kernel.ID(*v).Ptr()
}

func (r lineItemRequest) toLineItem() (order.LineItem, error) {
	options := make([]order.LineItemOption, 0, len(r.Options))
	for _, o := range r.Options {
		options = append(options, order.LineItemOption{
			MenuOptionID:      kernel.ID(o.MenuOptionID),
			MenuOptionValueID: kernel.ID(o.MenuOptionValueID),
			Name:              o.Name,
			Price:             o.Price,
		})
	}
	return order.NewLineItem(kernel.ID(r.MenuID), r.Name, r.Quantity, r.Price, r.Subtotal, r.Comment, options)
}

func toLineItems(in []lineItemRequest) ([]order.LineItem, error) {
	items := make([]order.LineItem, 0, len(in))
	for _, r := range in {
		item, err := r.toLineItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func toTotals(in []totalRequest) ([]order.Total, error) {
	totals := make([]order.Total, 0, len(in))
	for _, r := range in {
		t, err := order.NewTotal(r.Code, r.Title, r.Value, r.Priority)
		if err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	return totals, nil
}

func (r createOrderRequest) details(client order.ClientMetadata, now time.Time) (order.Details, error) {
	orderType, err := order.ParseType(r.OrderType)
	if err != nil {
		return order.Details{}, err
	}
	orderDateTime := now
	if r.OrderDateTime != nil {
		orderDateTime = *r.OrderDateTime
	}
	return order.Details{
		CustomerID: idPtr(r.CustomerID),
		AddressID:  idPtr(r.AddressID),
		LocationID: kernel.ID(r.LocationID),
		Contact: order.Contact{
			FirstName: r.FirstName,
			LastName:  r.LastName,
			Email:     r.Email,
			Telephone: r.Telephone,
		},
		Type:          orderType,
		OrderDateTime: orderDateTime,
		Comment:       r.Comment,
		PaymentCode:   r.PaymentCode,
		Client:        client,
	}, nil
}

func (r createOrderRequest) command(client order.ClientMetadata, now time.Time) (commands.CreateOrderCommand, error) {
	details, err := r.details(client, now)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}
	items, err := toLineItems(r.LineItems)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}
	totals, err := toTotals(r.Totals)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}
	var coupon *commands.CouponRequest
	if r.Coupon != nil {
		coupon = &commands.CouponRequest{Code: r.Coupon.Code, Amount: r.Coupon.Amount}
	}
	send := true
	if r.SendConfirmation != nil {
		send = *r.SendConfirmation
	}
	return commands.NewCreateOrderCommand(details, items, totals, coupon, send)
}

func newTransitionResponse(res commands.TransitionResult) transitionResponse {
	resp := transitionResponse{Notified: res.Notified}
	if res.Order != nil {
		resp.OrderID = res.Order.ID().Int64()
		if id := res.Order.StatusID(); id != nil {
			resp.StatusID = id.Int64()
		}
	}
	if res.Invoice != nil {
		resp.Invoice = res.Invoice.String()
	}
	for _, f := range res.StockFailures {
		resp.StockFailures = append(resp.StockFailures, f.Error())
	}
	return resp
}
