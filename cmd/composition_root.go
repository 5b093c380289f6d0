package cmd

import (
	"time"

	httpadapter "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/gateways"
	"fulfillment/internal/adapters/out/mail"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/directoryrepo"
	"fulfillment/internal/adapters/out/postgres/outboxrepo"
	"fulfillment/internal/adapters/out/rabbitmq"
	"fulfillment/internal/core/application/fulfillment"
	"fulfillment/internal/core/application/notifications"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"
	"fulfillment/internal/pkg/logging"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config        Config
	settings      fulfillment.Settings
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	publisher     ports.EventPublisher
	dispatcher    *notifications.Dispatcher
	notifications *notifications.Service
	logger        *zap.Logger
	clock         commands.Clock
}

// NewCompositionRoot wires the adapters around the core. The publisher is owned by the
// caller, who closes it on shutdown.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) (CompositionRoot, error) {
	settings, err := config.Settings()
	if err != nil {
		return CompositionRoot{}, err
	}
	registry, err := gateways.Parse(config.PaymentGateways)
	if err != nil {
		return CompositionRoot{}, err
	}

	var mailer ports.Mailer
	if config.SMTPHost != "" {
		mailer = mail.NewSMTPMailer(config.SMTPHost, config.SMTPPort, config.SMTPUsername, config.SMTPPassword)
	} else {
		mailer = mail.NewLogMailer(logging.Component(logger, "mailer"))
	}
	dispatcher, err := notifications.NewDispatcher(mailer, settings.SiteName, settings.SiteEmail,
		logging.Component(logger, "dispatcher"))
	if err != nil {
		return CompositionRoot{}, err
	}
	if publisher == nil {
		publisher = rabbitmq.NoopPublisher{}
	}

	root := CompositionRoot{
		config:     config,
		settings:   settings,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		dispatcher: dispatcher,
		logger:     logger,
		clock:      time.Now,
	}
	root.notifications = notifications.NewService(
		dispatcher,
		notifications.NewMailDataBuilder(directoryrepo.NewGormDirectory(gormDB), registry, config.CurrencySymbol),
		outboxrepo.NewGormOutboxRepository(gormDB),
		settings,
		root.clock,
		logging.Component(logger, "notifications"),
	)
	return root, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) couponUoWFactory() commands.CouponUoWFactory {
	return FuncCouponUoWFactory(func() commands.CouponUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.couponUoWFactory(), c.notifications, order.NewHash, c.clock,
		logging.Component(c.logger, "create_order"))
}

func (c *CompositionRoot) CreateTransitionOrderStatusCommandHandler() commands.TransitionOrderStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderStatusCommandHandler(f, c.settings, c.notifications, c.publisher, c.clock,
		logging.Component(c.logger, "transition"))
}

func (c *CompositionRoot) CreateAttachLineItemsCommandHandler() commands.AttachLineItemsCommandHandler {
	return commands.NewAttachLineItemsCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateAttachTotalsCommandHandler() commands.AttachTotalsCommandHandler {
	return commands.NewAttachTotalsCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateAttachCouponCommandHandler() commands.AttachCouponCommandHandler {
	return commands.NewAttachCouponCommandHandler(c.couponUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateDeleteOrdersCommandHandler() commands.DeleteOrdersCommandHandler {
	return commands.NewDeleteOrdersCommandHandler(c.orderUoWFactory(), logging.Component(c.logger, "delete_orders"))
}

func (c *CompositionRoot) CreateRetryNotificationsCommandHandler() commands.RetryNotificationsCommandHandler {
	return commands.NewRetryNotificationsCommandHandler(
		outboxrepo.NewGormOutboxRepository(c.gormDB),
		c.dispatcher,
		c.config.NotificationMaxAttempts,
		c.clock,
		logging.Component(c.logger, "notification_retry"),
	)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

// CreateHTTPServer binds every use case to its route handler.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:     c.CreateCreateOrderCommandHandler(),
		GetOrder:        c.CreateGetOrderQueryHandler(),
		AttachLineItems: c.CreateAttachLineItemsCommandHandler(),
		AttachTotals:    c.CreateAttachTotalsCommandHandler(),
		AttachCoupon:    c.CreateAttachCouponCommandHandler(),
		Transition:      c.CreateTransitionOrderStatusCommandHandler(),
		DeleteOrders:    c.CreateDeleteOrdersCommandHandler(),
	}, c.clock, logging.Component(c.logger, "http"))
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	retryJob := jobs.NewNotificationRetryJob(
		c.CreateRetryNotificationsCommandHandler(),
		c.config.NotificationRetrySchedule,
		c.config.NotificationBatchSize,
		c.logger,
	)
	return jobs.NewJobManager(retryJob)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCouponUoWFactory func() commands.CouponUoW

func (f FuncCouponUoWFactory) Create() commands.CouponUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
