package services

import (
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/status"
	"fulfillment/internal/pkg/errs"
)

// TransitionFacts is what the planner needs to know about the order being transitioned.
type TransitionFacts struct {
	OrderID         kernel.ID
	CurrentStatusID *kernel.ID
	Target          status.Status
	// ProcessingReached is true when the history already holds a status of the processing group.
	ProcessingReached bool
	HasInvoice        bool
}

// TransitionPlan lists the once-only side effects the transition must apply.
type TransitionPlan struct {
	DecrementStock bool
	FinalizeCoupon bool
	AssignInvoice  bool
}

// IsProcessing reports whether this is the first arrival in the processing group.
func (p TransitionPlan) IsProcessing() bool {
	return p.DecrementStock
}

// TransitionPlanner decides the side effects of a status change from the configured groups.
//
// Business rules:
//   - Stock and coupon effects run on the first arrival in the processing group only
//   - An invoice is assigned on a completed status when auto invoicing is on and none exists yet
//   - An order in a terminal status only accepts the same status again
//
// Example usage:
//
//	planner := NewTransitionPlanner(groups, true)
//	plan, err := planner.Plan(TransitionFacts{OrderID: 100, Target: completed})
//	if err != nil {
//	    return err
//	}
//	if plan.AssignInvoice {
//	    // allocate the invoice number
//	}
type TransitionPlanner struct {
	groups        status.Groups
	autoInvoicing bool
}

func NewTransitionPlanner(groups status.Groups, autoInvoicing bool) TransitionPlanner {
	return TransitionPlanner{groups: groups, autoInvoicing: autoInvoicing}
}

// ProcessingStatuses returns the processing group used for the history lookup.
func (p TransitionPlanner) ProcessingStatuses() []kernel.ID {
	return p.groups.Processing.IDs()
}

func (p TransitionPlanner) Plan(f TransitionFacts) (TransitionPlan, error) {
	if err := f.Target.Validate(); err != nil {
		return TransitionPlan{}, err
	}

	if cur := f.CurrentStatusID; cur != nil && p.groups.Terminal.Contains(*cur) && *cur != f.Target.ID() {
		return TransitionPlan{}, errs.NewInvalidTransitionError(
			f.OrderID.Int64(),
			fmt.Sprintf("status %d is terminal, cannot move to %d", *cur, f.Target.ID()),
		)
	}

	processing := f.Target.In(p.groups.Processing) && !f.ProcessingReached

	return TransitionPlan{
		DecrementStock: processing,
		FinalizeCoupon: processing,
		AssignInvoice:  f.Target.In(p.groups.Completed) && p.autoInvoicing && !f.HasInvoice,
	}, nil
}
