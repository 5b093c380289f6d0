package order

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Type tells whether the order is delivered to an address or collected at the location.
type Type string

const (
	Delivery   Type = "delivery"
	Collection Type = "collection"
)

// legacyTypes maps the numeric codes still found in older rows.
var legacyTypes = map[string]Type{
	"1": Delivery,
	"2": Collection,
}

// ParseType accepts the textual names and the legacy numeric codes.
func ParseType(raw string) (Type, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if t, ok := legacyTypes[v]; ok {
		return t, nil
	}
	t := Type(v)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

func (t Type) Validate() error {
	if t != Delivery && t != Collection {
		return errs.NewValueIsInvalidErrorWithCause("order type", fmt.Errorf("%q is not delivery or collection", string(t)))
	}
	return nil
}

// Title returns the display form, e.g. "Delivery".
func (t Type) Title() string {
	if t == "" {
		return ""
	}
	return strings.ToUpper(string(t[:1])) + string(t[1:])
}

func (t Type) String() string {
	return string(t)
}
