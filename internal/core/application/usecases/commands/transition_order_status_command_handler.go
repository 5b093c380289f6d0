package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/application/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/status"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"go.uber.org/zap"
)

// TransitionResult is the outcome of a committed transition.
type TransitionResult struct {
	Order *order.Order
	// Invoice is set when this transition assigned the invoice number.
	Invoice *order.Invoice
	// Notified reports whether the status mail went out. A false value never fails the transition.
	Notified bool
	// StockFailures holds the stock decrements tolerated under the log policy.
	StockFailures []error
}

// TransitionOrderStatusCommandHandler is the fulfillment workflow engine. Inside one
// transaction holding the order row lock it applies the side effects planned for the
// target status, records the history entry and assigns the invoice. Mails and events
// are sent after the commit and never roll it back.
type TransitionOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	settings   fulfillment.Settings
	planner    services.TransitionPlanner
	notifier   StatusNotifier
	publisher  ports.EventPublisher
	clock      Clock
	logger     *zap.Logger
}

func NewTransitionOrderStatusCommandHandler(
	uowFactory UoWFactory,
	settings fulfillment.Settings,
	notifier StatusNotifier,
	publisher ports.EventPublisher,
	clock Clock,
	logger *zap.Logger,
) TransitionOrderStatusCommandHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if settings.InvoicePrefix == "" {
		settings.InvoicePrefix = fulfillment.DefaultInvoicePrefix
	}
	return TransitionOrderStatusCommandHandler{
		uowFactory: uowFactory,
		settings:   settings,
		planner:    services.NewTransitionPlanner(settings.Groups, settings.AutoInvoicing),
		notifier:   notifier,
		publisher:  publisher,
		clock:      clock,
		logger:     logger,
	}
}

func (h TransitionOrderStatusCommandHandler) Handle(ctx context.Context, cmd TransitionOrderStatusCommand) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	committed, err := h.apply(ctx, cmd)
	if err != nil {
		return TransitionResult{}, err
	}

	result := committed.result
	o := result.Order
	if committed.notify && h.notifier != nil {
		result.Notified = h.notifier.NotifyStatusChange(ctx, o, committed.target, committed.comment)
	}

	if h.publisher != nil {
		event := order.NewStatusChanged(o, committed.previous, h.clock())
		if pubErr := h.publisher.PublishStatusChanged(ctx, event); pubErr != nil {
			h.logger.Warn("status change event not published",
				zap.Int64("order_id", o.ID().Int64()),
				zap.Int64("status_id", committed.target.ID().Int64()),
				zap.Error(pubErr),
			)
		}
	}

	return result, nil
}

// committedTransition carries what the post-commit steps need.
type committedTransition struct {
	result   TransitionResult
	target   status.Status
	previous *kernel.ID
	notify   bool
	comment  string
}

// apply runs the transactional part of the transition.
func (h TransitionOrderStatusCommandHandler) apply(ctx context.Context, cmd TransitionOrderStatusCommand) (committedTransition, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return committedTransition{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()
	o, err := orders.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return committedTransition{}, err
	}

	target, err := uow.StatusRepository().Get(ctx, cmd.StatusID())
	if err != nil {
		return committedTransition{}, err
	}

	recorder := fulfillment.NewHistoryRecorder(uow.HistoryRepository())
	reached, err := recorder.HasReached(ctx, status.SubjectOrder, o.ID(), h.planner.ProcessingStatuses())
	if err != nil {
		return committedTransition{}, err
	}

	previous := o.StatusID()
	plan, err := h.planner.Plan(services.TransitionFacts{
		OrderID:           o.ID(),
		CurrentStatusID:   previous,
		Target:            target,
		ProcessingReached: reached,
		HasInvoice:        o.HasInvoice(),
	})
	if err != nil {
		return committedTransition{}, err
	}

	now := h.clock()
	logger := h.logger.With(zap.Int64("order_id", o.ID().Int64()), zap.Int64("status_id", target.ID().Int64()))
	committed := committedTransition{target: target, previous: previous}

	if plan.DecrementStock {
		adjuster := fulfillment.NewInventoryAdjuster(uow.MenuRepository(), h.settings.StockPolicy, h.settings.StockFloor, logger)
		report, stockErr := adjuster.ApplyDecrement(ctx, o)
		if stockErr != nil {
			return committedTransition{}, stockErr
		}
		committed.result.StockFailures = report.Failures
	}

	if plan.FinalizeCoupon {
		if couponErr := fulfillment.NewCouponLedger(uow.CouponRepository()).Finalize(ctx, o.ID(), now); couponErr != nil {
			return committedTransition{}, errs.NewSideEffectFailureError("coupon", o.ID().Int64(), couponErr)
		}
	}

	if err = o.ChangeStatus(target.ID(), now); err != nil {
		return committedTransition{}, err
	}

	committed.comment = target.ResolveComment(cmd.Comment())
	committed.notify = target.ResolveNotify(cmd.Notify())

	if _, err = recorder.Record(
		ctx, status.SubjectOrder, o.ID(), target.ID(), committed.comment, committed.notify, cmd.ActorID(), now,
	); err != nil {
		return committedTransition{}, errs.NewSideEffectFailureError("history", o.ID().Int64(), err)
	}

	if plan.AssignInvoice {
		invoice, invErr := h.assignInvoice(ctx, uow.InvoiceSequence(), o, now)
		if invErr != nil {
			return committedTransition{}, invErr
		}
		committed.result.Invoice = &invoice
	}

	if err = orders.Update(ctx, o); err != nil {
		return committedTransition{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return committedTransition{}, err
	}

	logger.Info("order status changed",
		zap.Bool("processing", plan.IsProcessing()),
		zap.Bool("invoice_assigned", committed.result.Invoice != nil),
	)

	committed.result.Order = o
	return committed, nil
}

func (h TransitionOrderStatusCommandHandler) assignInvoice(
	ctx context.Context,
	sequence ports.InvoiceSequence,
	o *order.Order,
	now time.Time,
) (order.Invoice, error) {
	invoice, err := fulfillment.NewSequenceAllocator(sequence).Allocate(ctx, h.settings.InvoicePrefix, now)
	if err != nil {
		if errors.Is(err, errs.ErrAllocationConflict) {
			return order.Invoice{}, err
		}
		return order.Invoice{}, errs.NewSideEffectFailureError("invoice", o.ID().Int64(), err)
	}

	if err = o.AssignInvoice(invoice, now); err != nil {
		return order.Invoice{}, err
	}
	return invoice, nil
}
