// Package orderrepo maps order aggregates to the orders, order_line_items,
// order_line_item_options and order_totals tables.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO is a row of the orders table. Line items and totals are owned rows
// removed together with the order.
type OrderDTO struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Hash          string `gorm:"size:32;not null;uniqueIndex"`
	CustomerID    *int64 `gorm:"index"`
	AddressID     *int64
	LocationID    int64  `gorm:"not null;index"`
	FirstName     string `gorm:"size:32"`
	LastName      string `gorm:"size:32"`
	Email         string `gorm:"size:96"`
	Telephone     string `gorm:"size:32"`
	OrderType     string `gorm:"size:16;not null"`
	OrderDateTime time.Time
	Comment       string `gorm:"type:text"`
	PaymentCode   string `gorm:"size:64"`
	IPAddress     string `gorm:"size:40"`
	UserAgent     string `gorm:"type:text"`
	TotalItems    int
	OrderTotal    decimal.Decimal `gorm:"type:numeric(15,4);not null;default:0"`
	StatusID      *int64          `gorm:"index"`
	InvoicePrefix *string         `gorm:"size:64;uniqueIndex:idx_orders_invoice"`
	InvoiceNo     *int64          `gorm:"uniqueIndex:idx_orders_invoice"`
	InvoiceDate   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	LineItems []LineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Totals    []TotalDTO    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO is one cart row. Position keeps the cart order.
type LineItemDTO struct {
	ID       int64 `gorm:"primaryKey;autoIncrement"`
	OrderID  int64 `gorm:"not null;index"`
	Position int   `gorm:"not null"`
	MenuID   int64 `gorm:"not null"`
	Name     string
	Quantity int
	Price    decimal.Decimal `gorm:"type:numeric(15,4);not null"`
	Subtotal decimal.Decimal `gorm:"type:numeric(15,4);not null"`
	Comment  string          `gorm:"type:text"`

	Options []LineItemOptionDTO `gorm:"foreignKey:LineItemID;constraint:OnDelete:CASCADE"`
}

func (LineItemDTO) TableName() string {
	return "order_line_items"
}

// LineItemOptionDTO is a selected option value of a cart row.
type LineItemOptionDTO struct {
	ID                int64 `gorm:"primaryKey;autoIncrement"`
	LineItemID        int64 `gorm:"not null;index"`
	OrderID           int64 `gorm:"not null;index"`
	MenuID            int64
	MenuOptionID      int64
	MenuOptionValueID int64
	Name              string
	Price             decimal.Decimal `gorm:"type:numeric(15,4);not null"`
}

func (LineItemOptionDTO) TableName() string {
	return "order_line_item_options"
}

// TotalDTO is one summary line. (order_id, code) is unique.
type TotalDTO struct {
	ID       int64           `gorm:"primaryKey;autoIncrement"`
	OrderID  int64           `gorm:"not null;uniqueIndex:idx_order_totals_code"`
	Code     string          `gorm:"size:30;not null;uniqueIndex:idx_order_totals_code"`
	Title    string          `gorm:"type:text"`
	Value    decimal.Decimal `gorm:"type:numeric(15,4);not null"`
	Priority int
}

func (TotalDTO) TableName() string {
	return "order_totals"
}

func fromDomain(o *order.Order) OrderDTO {
	d := o.Details()
	dto := OrderDTO{
		ID:            o.ID().Int64(),
		Hash:          o.Hash().String(),
		CustomerID:    idPtr(d.CustomerID),
		AddressID:     idPtr(d.AddressID),
		LocationID:    d.LocationID.Int64(),
		FirstName:     d.Contact.FirstName,
		LastName:      d.Contact.LastName,
		Email:         d.Contact.Email,
		Telephone:     d.Contact.Telephone,
		OrderType:     string(d.Type),
		OrderDateTime: d.OrderDateTime,
		Comment:       d.Comment,
		PaymentCode:   d.PaymentCode,
		IPAddress:     d.Client.IPAddress,
		UserAgent:     d.Client.UserAgent,
		TotalItems:    o.TotalItems(),
		OrderTotal:    o.OrderTotal(),
		StatusID:      idPtr(o.StatusID()),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
	}

	if inv := o.Invoice(); inv != nil {
		prefix, number, issued := inv.Prefix(), inv.Number(), inv.IssuedAt()
		dto.InvoicePrefix = &prefix
		dto.InvoiceNo = &number
		dto.InvoiceDate = &issued
	}

	return dto
}

func lineItemsFromDomain(orderID int64, items []order.LineItem) []LineItemDTO {
	dtos := make([]LineItemDTO, 0, len(items))
	for i, item := range items {
		dto := LineItemDTO{
			OrderID:  orderID,
			Position: i,
			MenuID:   item.MenuID().Int64(),
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Price:    item.Price(),
			Subtotal: item.Subtotal(),
			Comment:  item.Comment(),
		}
		for _, opt := range item.Options() {
			dto.Options = append(dto.Options, LineItemOptionDTO{
				OrderID:           orderID,
				MenuID:            item.MenuID().Int64(),
				MenuOptionID:      opt.MenuOptionID.Int64(),
				MenuOptionValueID: opt.MenuOptionValueID.Int64(),
				Name:              opt.Name,
				Price:             opt.Price,
			})
		}
		dtos = append(dtos, dto)
	}
	return dtos
}

func totalsFromDomain(orderID int64, totals []order.Total) []TotalDTO {
	dtos := make([]TotalDTO, 0, len(totals))
	for _, t := range totals {
		dtos = append(dtos, TotalDTO{
			OrderID:  orderID,
			Code:     t.Code,
			Title:    t.Title,
			Value:    t.Value,
			Priority: t.Priority,
		})
	}
	return dtos
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	items := make([]order.LineItem, 0, len(dto.LineItems))
	for _, li := range dto.LineItems {
		options := make([]order.LineItemOption, 0, len(li.Options))
		for _, opt := range li.Options {
			options = append(options, order.LineItemOption{
				MenuOptionID:      kernel.ID(opt.MenuOptionID),
				MenuOptionValueID: kernel.ID(opt.MenuOptionValueID),
				Name:              opt.Name,
				Price:             opt.Price,
			})
		}
		item, err := order.NewLineItem(kernel.ID(li.MenuID), li.Name, li.Quantity, li.Price, li.Subtotal, li.Comment, options)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	totals := make([]order.Total, 0, len(dto.Totals))
	for _, t := range dto.Totals {
		totals = append(totals, order.Total{Code: t.Code, Title: t.Title, Value: t.Value, Priority: t.Priority})
	}

	var invoice *order.Invoice
	if dto.InvoiceNo != nil {
		var prefix string
		if dto.InvoicePrefix != nil {
			prefix = *dto.InvoicePrefix
		}
		var issued time.Time
		if dto.InvoiceDate != nil {
			issued = *dto.InvoiceDate
		}
		inv, err := order.NewInvoice(prefix, *dto.InvoiceNo, issued)
		if err != nil {
			return nil, err
		}
		invoice = &inv
	}

	return order.RestoreOrder(order.Snapshot{
		ID: kernel.ID(dto.ID),
		Details: order.Details{
			CustomerID:    kernelPtr(dto.CustomerID),
			AddressID:     kernelPtr(dto.AddressID),
			LocationID:    kernel.ID(dto.LocationID),
			Contact:       order.Contact{FirstName: dto.FirstName, LastName: dto.LastName, Email: dto.Email, Telephone: dto.Telephone},
			Type:          order.Type(dto.OrderType),
			OrderDateTime: dto.OrderDateTime,
			Comment:       dto.Comment,
			PaymentCode:   dto.PaymentCode,
			Client:        order.ClientMetadata{IPAddress: dto.IPAddress, UserAgent: dto.UserAgent},
		},
		LineItems:  items,
		Totals:     totals,
		TotalItems: dto.TotalItems,
		OrderTotal: dto.OrderTotal,
		StatusID:   kernelPtr(dto.StatusID),
		Invoice:    invoice,
		Hash:       order.Hash(dto.Hash),
		CreatedAt:  dto.CreatedAt,
		UpdatedAt:  dto.UpdatedAt,
	})
}

func idPtr(id *kernel.ID) *int64 {
	if id == nil {
		return nil
	}
	v := id.Int64()
	return &v
}

func kernelPtr(v *int64) *kernel.ID {
	if v == nil {
		return nil
	}
	return kernel.ID(*v).Ptr()
}
