package notifications

import (
	"context"
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	timeLayout = "15:04 02 Jan"
	dateLayout = "02 Jan 06"

	noPaymentLabel    = "No payment method"
	collectionAddress = "Collection order"
	noStatusComment   = "No comment"
)

// StatusUpdate carries the status fields of an order_update mail.
type StatusUpdate struct {
	Name    string
	Comment string
}

// MailDataBuilder flattens an order and its directory records into a template payload.
type MailDataBuilder struct {
	directory      ports.Directory
	gateways       ports.PaymentGateways
	currencySymbol string
}

func NewMailDataBuilder(directory ports.Directory, gateways ports.PaymentGateways, currencySymbol string) MailDataBuilder {
	return MailDataBuilder{directory: directory, gateways: gateways, currencySymbol: currencySymbol}
}

// Build returns the payload for o. Missing directory records leave their fields empty;
// other lookup failures are returned.
func (b MailDataBuilder) Build(ctx context.Context, o *order.Order, update *StatusUpdate) (notification.Data, error) {
	d := o.Details()

	data := notification.Data{
		"order_number":       o.ID().Int64(),
		"order_hash":         o.Hash().String(),
		"order_type":         d.Type.Title(),
		"order_time":         d.OrderDateTime.Format(timeLayout),
		"order_date":         d.OrderDateTime.Format(dateLayout),
		"first_name":         d.Contact.FirstName,
		"last_name":          d.Contact.LastName,
		"email":              d.Contact.Email,
		"telephone":          d.Contact.Telephone,
		"order_comment":      d.Comment,
		"order_payment":      b.paymentLabel(d.PaymentCode),
		"order_menus":        b.menus(o.LineItems()),
		"order_totals":       b.totals(o.Totals()),
		"order_address":      collectionAddress,
		"location_name":      "",
		"location_email":     "",
		"location_telephone": "",
		"status_name":        "",
		"status_comment":     "",
	}

	if d.CustomerID != nil {
		customer, err := b.directory.Customer(ctx, *d.CustomerID)
		if err = ignoreNotFound(err); err != nil {
			return nil, err
		}
		fillBlank(data, "first_name", customer.FirstName)
		fillBlank(data, "last_name", customer.LastName)
		fillBlank(data, "email", customer.Email)
		fillBlank(data, "telephone", customer.Telephone)
	}

	if d.Type == order.Delivery && d.AddressID != nil {
		address, err := b.directory.Address(ctx, *d.AddressID)
		if err = ignoreNotFound(err); err != nil {
			return nil, err
		}
		if formatted := formatAddress(address); formatted != "" {
			data["order_address"] = formatted
		}
	}

	location, err := b.directory.Location(ctx, d.LocationID)
	if err = ignoreNotFound(err); err != nil {
		return nil, err
	}
	data["location_name"] = location.Name
	data["location_email"] = location.Email
	data["location_telephone"] = location.Telephone

	if update != nil {
		data["status_name"] = update.Name
		data["status_comment"] = update.Comment
		if strings.TrimSpace(update.Comment) == "" {
			data["status_comment"] = noStatusComment
		}
	}

	return data, nil
}

func (b MailDataBuilder) paymentLabel(code string) string {
	if code == "" {
		return noPaymentLabel
	}
	if b.gateways != nil {
		for _, g := range b.gateways.ListGateways() {
			if g.Code == code {
				return g.Name
			}
		}
	}
	return code
}

func (b MailDataBuilder) money(v decimal.Decimal) string {
	return b.currencySymbol + v.StringFixed(2)
}

func (b MailDataBuilder) menus(items []order.LineItem) []map[string]any {
	rows := make([]map[string]any, 0, len(items))
	for _, item := range items {
		options := make([]string, 0, len(item.Options()))
		for _, opt := range item.Options() {
			options = append(options, opt.Name+" = "+b.money(opt.Price))
		}
		rows = append(rows, map[string]any{
			"menu_name":     item.Name(),
			"menu_quantity": item.Quantity(),
			"menu_price":    b.money(item.Price()),
			"menu_subtotal": b.money(item.Subtotal()),
			"menu_options":  options,
			"menu_comment":  item.Comment(),
		})
	}
	return rows
}

func (b MailDataBuilder) totals(totals []order.Total) []map[string]any {
	rows := make([]map[string]any, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, map[string]any{
			"order_total_title": t.Title,
			"order_total_value": b.money(t.Value),
			"priority":          t.Priority,
		})
	}
	return rows
}

func formatAddress(a ports.Address) string {
	parts := make([]string, 0, 6)
	for _, p := range []string{a.Address1, a.Address2, a.City, a.State, a.Postcode, a.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func fillBlank(data notification.Data, key, value string) {
	if s, _ := data[key].(string); s == "" {
		data[key] = value
	}
}

func ignoreNotFound(err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	return err
}
