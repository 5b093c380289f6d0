package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrDeleteOrdersCommandIsNotConstructed = errors.New(
	"DeleteOrdersCommand must be created via NewDeleteOrdersCommand constructor",
)

// DeleteOrdersCommand removes orders together with their line items, totals,
// status history and coupon redemptions. Repeated ids are collapsed.
type DeleteOrdersCommand struct { //nolint:recvcheck //using for validation
	ids []kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteOrdersCommand(ids []kernel.ID) (DeleteOrdersCommand, error) {
	if len(ids) == 0 {
		return DeleteOrdersCommand{}, errs.NewValueIsRequiredError("order ids")
	}

	seen := make(map[kernel.ID]struct{}, len(ids))
	unique := make([]kernel.ID, 0, len(ids))
	for i, id := range ids {
		if err := id.Validate(); err != nil {
			return DeleteOrdersCommand{}, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("order ids[%d]", i), err)
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	return DeleteOrdersCommand{ids: unique, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteOrdersCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrdersCommandIsNotConstructed)
}

func (c DeleteOrdersCommand) IDs() []kernel.ID { return c.ids }
