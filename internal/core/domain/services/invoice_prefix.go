package services

import (
	"strings"
	"time"
)

// ResolveInvoicePrefix substitutes {year} (4 digits), {month} and {day} (2 digits) in the template.
func ResolveInvoicePrefix(template string, at time.Time) string {
	return strings.NewReplacer(
		"{year}", at.Format("2006"),
		"{month}", at.Format("01"),
		"{day}", at.Format("02"),
	).Replace(template)
}
