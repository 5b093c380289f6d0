package ports

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
)

// ErrInsufficientStock is returned when a decrement would take stock below the floor.
var ErrInsufficientStock = errors.New("insufficient stock")

// StockDirection tells UpdateStock whether to remove or return quantity.
type StockDirection int

const (
	StockSubtract StockDirection = iota
	StockAdd
)

// Menu is the stock view of a catalog item.
type Menu struct {
	ID          kernel.ID
	Name        string
	StockQty    int
	TracksStock bool
}

// MenuRepository is the menu catalog seen by the inventory adjuster.
type MenuRepository interface {
	// FindMenu returns ObjectNotFoundError when the menu does not exist.
	FindMenu(ctx context.Context, id kernel.ID) (Menu, error)

	// UpdateStock changes stock with a single relative update. A subtraction that would
	// leave less than floor fails with ErrInsufficientStock and changes nothing.
	UpdateStock(ctx context.Context, id kernel.ID, quantity int, direction StockDirection, floor int) error
}
