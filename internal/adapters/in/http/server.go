package http

import (
	"context"
	"net/http"
	"time"

	_ "fulfillment/internal/adapters/in/http/docs"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/coupon"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

type CreateOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.CreateOrderResult, error)
}

type GetOrderHandler interface {
	Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
}

type AttachLineItemsHandler interface {
	Handle(ctx context.Context, cmd commands.AttachLineItemsCommand) error
}

type AttachTotalsHandler interface {
	Handle(ctx context.Context, cmd commands.AttachTotalsCommand) error
}

type AttachCouponHandler interface {
	Handle(ctx context.Context, cmd commands.AttachCouponCommand) (coupon.Redemption, error)
}

type TransitionHandler interface {
	Handle(ctx context.Context, cmd commands.TransitionOrderStatusCommand) (commands.TransitionResult, error)
}

type DeleteOrdersHandler interface {
	Handle(ctx context.Context, cmd commands.DeleteOrdersCommand) (int64, error)
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateOrder     CreateOrderHandler
	GetOrder        GetOrderHandler
	AttachLineItems AttachLineItemsHandler
	AttachTotals    AttachTotalsHandler
	AttachCoupon    AttachCouponHandler
	Transition      TransitionHandler
	DeleteOrders    DeleteOrdersHandler
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	handlers Handlers
	clock    func() time.Time
	logger   *zap.Logger
}

func NewServer(handlers Handlers, clock func() time.Time, logger *zap.Logger) *Server {
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{handlers: handlers, clock: clock, logger: logger}
}

// RegisterRoutes mounts the health check and the order API on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	e.GET("/health", s.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1/orders")
	api.POST("", s.CreateOrder)
	api.DELETE("", s.DeleteOrders)
	api.GET("/:id", s.GetOrder)
	api.PUT("/:id/items", s.AttachLineItems)
	api.PUT("/:id/totals", s.AttachTotals)
	api.PUT("/:id/coupon", s.AttachCoupon)
	api.POST("/:id/status", s.TransitionStatus)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "healthy")
}

func orderID(c echo.Context) (kernel.ID, error) {
	return kernel.ParseID("order id", c.Param("id"))
}

// CreateOrder handles POST /api/v1/orders.
//
//	@Summary	Place an order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		order	body		createOrderRequest	true	"order"
//	@Success	201		{object}	createOrderResponse
//	@Failure	400		{object}	Error
//	@Router		/orders [post]
func (s *Server) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body", nil)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "Invalid request body", err)
	}

	client := order.ClientMetadata{IPAddress: c.RealIP(), UserAgent: c.Request().UserAgent()}
	cmd, err := req.command(client, s.clock())
	if err != nil {
		return s.fail(c, err)
	}

	res, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, createOrderResponse{
		ID:               res.OrderID.Int64(),
		Hash:             res.Hash.String(),
		ConfirmationSent: res.ConfirmationSent,
	})
}

// GetOrder handles GET /api/v1/orders/:id.
//
//	@Summary	Get an order with its items, totals, coupon and history
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		int	true	"order id"
//	@Success	200	{object}	queries.GetOrderQueryResponse
//	@Failure	404	{object}	Error
//	@Router		/orders/{id} [get]
func (s *Server) GetOrder(c echo.Context) error {
	id, err := orderID(c)
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.fail(c, err)
	}

	res, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

// AttachLineItems handles PUT /api/v1/orders/:id/items.
//
//	@Summary	Replace the line items of an order
//	@Tags		orders
//	@Accept		json
//	@Param		id		path	int					true	"order id"
//	@Param		items	body	lineItemsRequest	true	"line items"
//	@Success	204
//	@Failure	404	{object}	Error
//	@Router		/orders/{id}/items [put]
func (s *Server) AttachLineItems(c echo.Context) error {
	id, err := orderID(c)
	if err != nil {
		return s.fail(c, err)
	}
	var req lineItemsRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body", nil)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "Invalid request body", err)
	}

	items, err := toLineItems(req.LineItems)
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewAttachLineItemsCommand(id, items)
	if err != nil {
		return s.fail(c, err)
	}
	if err := s.handlers.AttachLineItems.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// AttachTotals handles PUT /api/v1/orders/:id/totals.
//
//	@Summary	Replace the totals of an order
//	@Tags		orders
//	@Accept		json
//	@Param		id		path	int				true	"order id"
//	@Param		totals	body	totalsRequest	true	"totals"
//	@Success	204
//	@Failure	404	{object}	Error
//	@Router		/orders/{id}/totals [put]
func (s *Server) AttachTotals(c echo.Context) error {
	id, err := orderID(c)
	if err != nil {
		return s.fail(c, err)
	}
	var req totalsRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body", nil)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "Invalid request body", err)
	}

	totals, err := toTotals(req.Totals)
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewAttachTotalsCommand(id, totals)
	if err != nil {
		return s.fail(c, err)
	}
	if err := s.handlers.AttachTotals.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// AttachCoupon handles PUT /api/v1/orders/:id/coupon.
//
//	@Summary	Attach a coupon to an order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"order id"
//	@Param		coupon	body		attachCouponRequest	true	"coupon"
//	@Success	200		{object}	couponResponse
//	@Failure	409		{object}	Error
//	@Router		/orders/{id}/coupon [put]
func (s *Server) AttachCoupon(c echo.Context) error {
	id, err := orderID(c)
	if err != nil {
		return s.fail(c, err)
	}
	var req attachCouponRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body", nil)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "Invalid request body", err)
	}

	cmd, err := commands.NewAttachCouponCommand(id, idPtr(req.CustomerID), commands.CouponRequest{
		Code:   req.Code,
		Amount: req.Amount,
	})
	if err != nil {
		return s.fail(c, err)
	}
	redemption, err := s.handlers.AttachCoupon.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, couponResponse{
		OrderID:  redemption.OrderID().Int64(),
		CouponID: redemption.CouponID().Int64(),
		Code:     redemption.Code(),
		Amount:   redemption.Amount(),
	})
}

// TransitionStatus handles POST /api/v1/orders/:id/status.
//
//	@Summary	Move an order to a new status
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		id			path		int					true	"order id"
//	@Param		transition	body		transitionRequest	true	"target status"
//	@Success	200			{object}	transitionResponse
//	@Failure	409			{object}	Error
//	@Failure	422			{object}	Error
//	@Router		/orders/{id}/status [post]
func (s *Server) TransitionStatus(c echo.Context) error {
	id, err := orderID(c)
	if err != nil {
		return s.fail(c, err)
	}
	var req transitionRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body", nil)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "Invalid request body", err)
	}

	cmd, err := commands.NewTransitionOrderStatusCommand(id, kernel.ID(req.StatusID), req.Comment, req.Notify, idPtr(req.ActorID))
	if err != nil {
		return s.fail(c, err)
	}
	res, err := s.handlers.Transition.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, newTransitionResponse(res))
}

// DeleteOrders handles DELETE /api/v1/orders.
//
//	@Summary	Delete orders with their owned rows
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		ids	body		deleteOrdersRequest	true	"order ids"
//	@Success	200	{object}	deleteOrdersResponse
//	@Router		/orders [delete]
func (s *Server) DeleteOrders(c echo.Context) error {
	var req deleteOrdersRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body", nil)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "Invalid request body", err)
	}

	ids := make([]kernel.ID, 0, len(req.IDs))
	for _, id := range req.IDs {
		ids = append(ids, kernel.ID(id))
	}
	cmd, err := commands.NewDeleteOrdersCommand(ids)
	if err != nil {
		return s.fail(c, err)
	}
	deleted, err := s.handlers.DeleteOrders.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, deleteOrdersResponse{Deleted: deleted})
}
