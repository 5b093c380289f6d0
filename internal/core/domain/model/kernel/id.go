package kernel

import (
	"fmt"
	"strconv"

	"fulfillment/internal/pkg/errs"
)

// ID identifies a row in the relational store. Valid identifiers are positive.
type ID int64

// NewID validates a raw identifier received from outside the domain.
func NewID(paramName string, raw int64) (ID, error) {
	if raw <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%d is not a positive identifier", raw))
	}
	return ID(raw), nil
}

// ParseID parses the decimal form used in URLs.
func ParseID(paramName, raw string) (ID, error) {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return NewID(paramName, v)
}

// Int64 returns the raw identifier.
func (id ID) Int64() int64 {
	return int64(id)
}

// Validate reports whether the identifier is usable.
func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("id")
	}
	return nil
}

// Ptr returns a pointer copy, convenient for nullable columns.
func (id ID) Ptr() *ID {
	return &id
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
