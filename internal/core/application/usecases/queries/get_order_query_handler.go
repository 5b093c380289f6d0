package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads an order and everything it owns in a handful of SQL statements.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

type orderRow struct {
	ID            int64
	Hash          string
	CustomerID    *int64
	AddressID     *int64
	LocationID    int64
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
	StatusID      *int64
	StatusName    *string
	InvoicePrefix *string
	InvoiceNo     *int64
	InvoiceDate   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type lineItemRow struct {
	ID       int64
	MenuID   int64
	Name     string
	Quantity int
	Price    decimal.Decimal
	Subtotal decimal.Decimal
	Comment  string
}

type optionRow struct {
	LineItemID        int64
	MenuOptionID      int64
	MenuOptionValueID int64
	Name              string
	Price             decimal.Decimal
}

type historyRow struct {
	StatusID   int64
	StatusName *string
	Comment    string
	Notify     bool
	ActorID    *int64
	CreatedAt  time.Time
}

// Handle returns ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)
	id := query.OrderID().Int64()

	var row orderRow
	result := db.Raw(`
		SELECT
			o.id, o.hash, o.customer_id, o.address_id, o.location_id,
			o.first_name, o.last_name, o.email, o.telephone,
			o.order_type, o.order_date_time, o.comment, o.payment_code,
			o.total_items, o.order_total, o.status_id, s.name AS status_name,
			o.invoice_prefix, o.invoice_no, o.invoice_date, o.created_at, o.updated_at
		FROM orders o
		LEFT JOIN statuses s ON s.id = o.status_id
		WHERE o.id = ?
	`, id).Scan(&row)
	if result.Error != nil {
		return GetOrderQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", id)
	}

	resp := GetOrderQueryResponse{
		ID:            kernel.ID(row.ID),
		Hash:          row.Hash,
		CustomerID:    idPtr(row.CustomerID),
		AddressID:     idPtr(row.AddressID),
		LocationID:    kernel.ID(row.LocationID),
		FirstName:     row.FirstName,
		LastName:      row.LastName,
		Email:         row.Email,
		Telephone:     row.Telephone,
		OrderType:     row.OrderType,
		OrderDateTime: row.OrderDateTime,
		Comment:       row.Comment,
		PaymentCode:   row.PaymentCode,
		TotalItems:    row.TotalItems,
		OrderTotal:    row.OrderTotal,
		StatusID:      idPtr(row.StatusID),
		StatusName:    deref(row.StatusName),
		InvoiceDate:   row.InvoiceDate,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}

	if row.InvoiceNo != nil {
		inv, err := order.NewInvoice(deref(row.InvoicePrefix), *row.InvoiceNo, time.Time{})
		if err != nil {
			return GetOrderQueryResponse{}, err
		}
		resp.Invoice = inv.String()
	}

	var err error
	if resp.LineItems, err = h.lineItems(db, id); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.Totals, err = h.totals(db, id); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.Coupon, err = h.coupon(db, id); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.History, err = h.history(db, id); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) lineItems(db *gorm.DB, orderID int64) ([]LineItemView, error) {
	var items []lineItemRow
	err := db.Raw(`
		SELECT id, menu_id, name, quantity, price, subtotal, comment
		FROM order_line_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID).Scan(&items).Error
	if err != nil {
		return nil, err
	}

	var options []optionRow
	err = db.Raw(`
		SELECT line_item_id, menu_option_id, menu_option_value_id, name, price
		FROM order_line_item_options
		WHERE order_id = ?
		ORDER BY id
	`, orderID).Scan(&options).Error
	if err != nil {
		return nil, err
	}

	byItem := make(map[int64][]LineItemOptionView, len(items))
	for _, opt := range options {
		byItem[opt.LineItemID] = append(byItem[opt.LineItemID], LineItemOptionView{
			MenuOptionID:      kernel.ID(opt.MenuOptionID),
			MenuOptionValueID: kernel.ID(opt.MenuOptionValueID),
			Name:              opt.Name,
			Price:             opt.Price,
		})
	}

	views := make([]LineItemView, 0, len(items))
	for _, item := range items {
		views = append(views, LineItemView{
			MenuID:   kernel.ID(item.MenuID),
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
			Subtotal: item.Subtotal,
			Comment:  item.Comment,
			Options:  byItem[item.ID],
		})
	}
	return views, nil
}

func (h GetOrderQueryHandler) totals(db *gorm.DB, orderID int64) ([]TotalView, error) {
	totals := make([]TotalView, 0)
	err := db.Raw(`
		SELECT code, title, value, priority
		FROM order_totals
		WHERE order_id = ?
		ORDER BY priority, id
	`, orderID).Scan(&totals).Error
	return totals, err
}

func (h GetOrderQueryHandler) coupon(db *gorm.DB, orderID int64) (*CouponView, error) {
	var view CouponView
	result := db.Raw(`
		SELECT code, amount, redeemed_at, finalized_at
		FROM coupon_redemptions
		WHERE order_id = ?
	`, orderID).Scan(&view)
	if result.Error != nil || result.RowsAffected == 0 {
		return nil, result.Error
	}
	return &view, nil
}

func (h GetOrderQueryHandler) history(db *gorm.DB, orderID int64) ([]HistoryView, error) {
	var rows []historyRow
	err := db.Raw(`
		SELECT h.status_id, s.name AS status_name, h.comment, h.notify, h.actor_id, h.created_at
		FROM status_history h
		LEFT JOIN statuses s ON s.id = h.status_id
		WHERE h.subject_type = 'order' AND h.subject_id = ?
		ORDER BY h.created_at, h.id
	`, orderID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	views := make([]HistoryView, 0, len(rows))
	for _, r := range rows {
		views = append(views, HistoryView{
			StatusID:   kernel.ID(r.StatusID),
			StatusName: deref(r.StatusName),
			Comment:    r.Comment,
			Notify:     r.Notify,
			ActorID:    idPtr(r.ActorID),
			CreatedAt:  r.CreatedAt,
		})
	}
	return views, nil
}

func idPtr(v *int64) *kernel.ID {
	if v == nil {
		return nil
	}
	return kernel.ID(*v).Ptr()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
