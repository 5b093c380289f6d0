package commands_test

import (
	"errors"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/coupon"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// hashes returns a generator yielding the given hashes in turn.
func hashes(hs ...order.Hash) func() order.Hash {
	i := 0
	return func() order.Hash {
		h := hs[i%len(hs)]
		i++
		return h
	}
}

func assignID(id kernel.ID) func(mock.Arguments) {
	return func(args mock.Arguments) {
		_ = args.Get(1).(*order.Order).AssignID(id)
	}
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	hash := order.NewHash()
	cmd, err := commands.NewCreateOrderCommand(orderDetails(), []order.LineItem{lineItem(t, 7, 2)}, nil, nil, true)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	notifier := new(MockConfirmationNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("HashExists", mock.Anything, hash).Return(false, nil).Once(),
		repo.On("Add", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
			return o.Hash() == hash && o.StatusID() == nil && o.TotalItems() == 2
		})).Run(assignID(100)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	notifier.On("SendConfirmation", mock.Anything, mock.AnythingOfType("*order.Order")).Return(true).Once()

	h := commands.NewCreateOrderCommandHandler(MockCouponUoWFactory{uow}, notifier, hashes(hash), clock, nil)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, kernel.ID(100), result.OrderID)
	assert.Equal(t, hash, result.Hash)
	assert.True(t, result.ConfirmationSent)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_RegeneratesTakenHash(t *testing.T) {
	ctx := t.Context()
	taken, free := order.NewHash(), order.NewHash()
	cmd, _ := commands.NewCreateOrderCommand(orderDetails(), nil, nil, nil, false)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(repo)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	repo.On("HashExists", mock.Anything, taken).Return(true, nil).Once()
	repo.On("HashExists", mock.Anything, free).Return(false, nil).Once()
	repo.On("Add", mock.Anything, mock.MatchedBy(func(o *order.Order) bool { return o.Hash() == free })).
		Run(assignID(5)).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(MockCouponUoWFactory{uow}, nil, hashes(taken, free), clock, nil)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, free, result.Hash)
	assert.False(t, result.ConfirmationSent)
	repo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_HashExhausted(t *testing.T) {
	ctx := t.Context()
	taken := order.NewHash()
	cmd, _ := commands.NewCreateOrderCommand(orderDetails(), nil, nil, nil, false)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(repo)
	uow.On("Rollback", ctx).Return(nil)
	repo.On("HashExists", mock.Anything, taken).Return(true, nil)

	h := commands.NewCreateOrderCommandHandler(MockCouponUoWFactory{uow}, nil, hashes(taken), clock, nil)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrHashNotUnique)
	repo.AssertNumberOfCalls(t, "HashExists", 5)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_WithCoupon(t *testing.T) {
	ctx := t.Context()
	hash := order.NewHash()
	cmd, _ := commands.NewCreateOrderCommand(orderDetails(), nil, nil,
		&commands.CouponRequest{Code: "SAVE10", Amount: decimal.NewFromInt(10)}, false)
	c, err := coupon.NewCoupon(4, "SAVE10", decimal.NewFromInt(20))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	coupons := new(MockCouponRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(repo)
	uow.On("CouponRepository").Return(coupons)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)
	repo.On("HashExists", mock.Anything, hash).Return(false, nil)
	repo.On("Add", mock.Anything, mock.Anything).Run(assignID(100)).Return(nil)
	coupons.On("FindByCode", mock.Anything, "SAVE10").Return(c, nil).Once()
	coupons.On("DeleteRedemption", mock.Anything, kernel.ID(100)).Return(int64(0), nil).Once()
	coupons.On("AddRedemption", mock.Anything, mock.MatchedBy(func(r coupon.Redemption) bool {
		return r.OrderID() == 100 && r.Code() == "SAVE10" && r.Amount().Equal(decimal.NewFromInt(-10))
	})).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(MockCouponUoWFactory{uow}, nil, hashes(hash), clock, nil)
	_, err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	coupons.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UnknownCoupon(t *testing.T) {
	ctx := t.Context()
	hash := order.NewHash()
	cmd, _ := commands.NewCreateOrderCommand(orderDetails(), nil, nil,
		&commands.CouponRequest{Code: "NOPE", Amount: decimal.NewFromInt(1)}, true)

	repo := new(MockOrderRepository)
	coupons := new(MockCouponRepository)
	notifier := new(MockConfirmationNotifier)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(repo)
	uow.On("CouponRepository").Return(coupons)
	uow.On("Rollback", ctx).Return(nil).Once()
	repo.On("HashExists", mock.Anything, hash).Return(false, nil)
	repo.On("Add", mock.Anything, mock.Anything).Run(assignID(100)).Return(nil)
	coupons.On("FindByCode", mock.Anything, "NOPE").Return(nil, errs.NewObjectNotFoundError("coupon", "NOPE"))

	h := commands.NewCreateOrderCommandHandler(MockCouponUoWFactory{uow}, notifier, hashes(hash), clock, nil)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	notifier.AssertNotCalled(t, "SendConfirmation", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	uow := new(MockUoW)
	h := commands.NewCreateOrderCommandHandler(MockCouponUoWFactory{uow}, nil, order.NewHash, clock, nil)

	_, err := h.Handle(t.Context(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	uow.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(orderDetails(), nil, nil, nil, false)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

	h := commands.NewCreateOrderCommandHandler(MockCouponUoWFactory{uow}, nil, order.NewHash, clock, nil)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	hash := order.NewHash()
	cmd, _ := commands.NewCreateOrderCommand(orderDetails(), nil, nil, nil, true)

	repo := new(MockOrderRepository)
	notifier := new(MockConfirmationNotifier)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("HashExists", mock.Anything, hash).Return(false, nil).Once(),
		repo.On("Add", mock.Anything, mock.Anything).Run(assignID(1)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(MockCouponUoWFactory{uow}, notifier, hashes(hash), clock, nil)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertExpectations(t)
	notifier.AssertNotCalled(t, "SendConfirmation", mock.Anything, mock.Anything)
}
