package fulfillment

import (
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/status"
	"fulfillment/internal/pkg/errs"
)

// StockFailurePolicy decides what a failed stock decrement does to the transition.
type StockFailurePolicy string

const (
	// StockFailureAbort rolls the whole transition back.
	StockFailureAbort StockFailurePolicy = "abort"
	// StockFailureLog logs the failure, reports it in the result and continues.
	StockFailureLog StockFailurePolicy = "log"
)

func ParseStockFailurePolicy(raw string) (StockFailurePolicy, error) {
	switch p := StockFailurePolicy(strings.ToLower(strings.TrimSpace(raw))); p {
	case "":
		return StockFailureAbort, nil
	case StockFailureAbort, StockFailureLog:
		return p, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("stock failure policy", fmt.Errorf("%q is not abort or log", raw))
	}
}

// ConfirmationRecipients selects who receives the mails of a new order.
type ConfirmationRecipients struct {
	Customer bool
	Location bool
	Admin    bool
}

// Settings are the resolved configuration values consulted by the workflow.
type Settings struct {
	Groups        status.Groups
	AutoInvoicing bool
	// InvoicePrefix may contain {year}, {month} and {day}.
	InvoicePrefix string
	SiteEmail     string
	SiteName      string
	StockPolicy   StockFailurePolicy
	StockFloor    int
	Confirmation  ConfirmationRecipients
}

// DefaultInvoicePrefix is used when no prefix template is configured.
const DefaultInvoicePrefix = "INV{year}{month}{day}"
