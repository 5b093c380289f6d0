package order

import (
	"sort"
	"strings"

	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// TotalCode is the code of the grand total line.
const TotalCode = "total"

// Total is one summary line of the order (subtotal, delivery, coupon, tax, total, ...).
type Total struct {
	Code     string
	Title    string
	Value    decimal.Decimal
	Priority int
}

// NewTotal validates a summary line.
func NewTotal(code, title string, value decimal.Decimal, priority int) (Total, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Total{}, errs.NewValueIsRequiredError("total code")
	}
	return Total{Code: code, Title: title, Value: value, Priority: priority}, nil
}

// sortTotals orders totals by priority, keeping input order for equal priorities.
func sortTotals(totals []Total) []Total {
	sorted := append([]Total(nil), totals...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Priority < sorted[j].Priority })
	return sorted
}
