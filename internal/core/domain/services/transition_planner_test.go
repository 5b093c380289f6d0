package services_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/status"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustStatus(t *testing.T, id kernel.ID) status.Status {
	t.Helper()
	s, err := status.NewStatus(id, "status", "", "", false)
	require.NoError(t, err)
	return s
}

func TestTransitionPlanner_Plan(t *testing.T) {
	groups := status.Groups{
		Processing: status.NewSet(2, 3),
		Completed:  status.NewSet(5),
		Terminal:   status.NewSet(7),
	}
	planner := services.NewTransitionPlanner(groups, true)

	tests := []struct {
		name  string
		facts services.TransitionFacts
		want  services.TransitionPlan
	}{
		{
			name:  "first processing status decrements stock and finalizes coupon",
			facts: services.TransitionFacts{OrderID: 100, Target: mustStatus(t, 2)},
			want:  services.TransitionPlan{DecrementStock: true, FinalizeCoupon: true},
		},
		{
			name:  "processing already reached applies nothing",
			facts: services.TransitionFacts{OrderID: 100, Target: mustStatus(t, 3), ProcessingReached: true},
			want:  services.TransitionPlan{},
		},
		{
			name:  "completed without invoice assigns one",
			facts: services.TransitionFacts{OrderID: 100, Target: mustStatus(t, 5), ProcessingReached: true},
			want:  services.TransitionPlan{AssignInvoice: true},
		},
		{
			name:  "completed with invoice does not reassign",
			facts: services.TransitionFacts{OrderID: 100, Target: mustStatus(t, 5), HasInvoice: true},
			want:  services.TransitionPlan{},
		},
		{
			name:  "status outside every group",
			facts: services.TransitionFacts{OrderID: 100, Target: mustStatus(t, 1)},
			want:  services.TransitionPlan{},
		},
		{
			name:  "terminal status accepts itself again",
			facts: services.TransitionFacts{OrderID: 100, CurrentStatusID: kernel.ID(7).Ptr(), Target: mustStatus(t, 7)},
			want:  services.TransitionPlan{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := planner.Plan(tt.facts)

			require.NoError(t, err)
			assert.Equal(t, tt.want, plan)
			assert.Equal(t, tt.want.DecrementStock, plan.IsProcessing())
		})
	}
}

func TestTransitionPlanner_TerminalStatusRejectsOtherTargets(t *testing.T) {
	planner := services.NewTransitionPlanner(status.Groups{Terminal: status.NewSet(7)}, false)

	_, err := planner.Plan(services.TransitionFacts{
		OrderID:         100,
		CurrentStatusID: kernel.ID(7).Ptr(),
		Target:          mustStatus(t, 2),
	})

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestTransitionPlanner_AutoInvoicingDisabled(t *testing.T) {
	planner := services.NewTransitionPlanner(status.Groups{Completed: status.NewSet(5)}, false)

	plan, err := planner.Plan(services.TransitionFacts{OrderID: 1, Target: mustStatus(t, 5)})

	require.NoError(t, err)
	assert.False(t, plan.AssignInvoice)
}

func TestTransitionPlanner_RejectsUnconstructedStatus(t *testing.T) {
	planner := services.NewTransitionPlanner(status.Groups{}, false)

	_, err := planner.Plan(services.TransitionFacts{OrderID: 1})

	require.ErrorIs(t, err, status.ErrStatusIsNotConstructed)
}

func TestTransitionPlanner_ProcessingStatuses(t *testing.T) {
	planner := services.NewTransitionPlanner(status.Groups{Processing: status.NewSet(3, 2)}, false)

	assert.Equal(t, []kernel.ID{2, 3}, planner.ProcessingStatuses())
}

func TestResolveInvoicePrefix(t *testing.T) {
	at := time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC)

	assert.Equal(t, "INV20240101", services.ResolveInvoicePrefix("INV{year}{month}{day}", at))
	assert.Equal(t, "2024-01-", services.ResolveInvoicePrefix("{year}-{month}-", at))
	assert.Equal(t, "FIXED", services.ResolveInvoicePrefix("FIXED", at))
	assert.Empty(t, services.ResolveInvoicePrefix("", at))
}
