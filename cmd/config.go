package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"fulfillment/internal/core/application/fulfillment"
	"fulfillment/internal/core/domain/model/status"
	"fulfillment/internal/pkg/errs"

	"github.com/joho/godotenv"
)

const (
	defaultRetrySchedule  = "@every 1m"
	defaultMaxAttempts    = 5
	defaultRetryBatchSize = 50
	defaultAMQPExchange   = "fulfillment"
	defaultSMTPPort       = 587
	defaultCurrencySymbol = "$"
	defaultHTTPPort       = "8080"
	envOrderEmail         = "ORDER_EMAIL"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	LogLevel   string

	AMQPURL      string
	AMQPExchange string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string

	NotificationRetrySchedule string
	NotificationMaxAttempts   int
	NotificationBatchSize     int

	PaymentGateways string
	CurrencySymbol  string

	ProcessingStatuses  string
	CompletedStatuses   string
	TerminalStatuses    string
	AutoInvoicing       bool
	InvoicePrefix       string
	SiteEmail           string
	SiteName            string
	StockFailurePolicy  string
	StockFloor          int
	CustomerOrderEmail  bool
	LocationOrderEmail  bool
	OrderEmailRecipient string
}

// LoadConfig reads the configuration from the environment. A .env file in the
// working directory is loaded first when present; variables already set win.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return configFromEnv(os.Getenv)
}

func configFromEnv(getenv func(string) string) (Config, error) {
	r := envReader{getenv: getenv}
	cfg := Config{
		HTTPPort:   r.str("HTTP_PORT", defaultHTTPPort),
		DBHost:     r.str("DB_HOST", "localhost"),
		DBPort:     r.str("DB_PORT", "5432"),
		DBUser:     r.str("DB_USER", ""),
		DBPassword: r.str("DB_PASSWORD", ""),
		DBName:     r.str("DB_NAME", ""),
		DBSslMode:  r.str("DB_SSLMODE", "disable"),
		LogLevel:   r.str("LOG_LEVEL", "info"),

		AMQPURL:      r.str("AMQP_URL", ""),
		AMQPExchange: r.str("AMQP_EXCHANGE", defaultAMQPExchange),

		SMTPHost:     r.str("SMTP_HOST", ""),
		SMTPPort:     r.integer("SMTP_PORT", defaultSMTPPort),
		SMTPUsername: r.str("SMTP_USERNAME", ""),
		SMTPPassword: r.str("SMTP_PASSWORD", ""),

		NotificationRetrySchedule: r.str("NOTIFICATION_RETRY_SCHEDULE", defaultRetrySchedule),
		NotificationMaxAttempts:   r.integer("NOTIFICATION_MAX_ATTEMPTS", defaultMaxAttempts),
		NotificationBatchSize:     r.integer("NOTIFICATION_BATCH_SIZE", defaultRetryBatchSize),

		PaymentGateways: r.str("PAYMENT_GATEWAYS", ""),
		CurrencySymbol:  r.str("CURRENCY_SYMBOL", defaultCurrencySymbol),

		ProcessingStatuses:  r.str("PROCESSING_ORDER_STATUS", ""),
		CompletedStatuses:   r.str("COMPLETED_ORDER_STATUS", ""),
		TerminalStatuses:    r.str("TERMINAL_ORDER_STATUS", ""),
		AutoInvoicing:       r.boolean("AUTO_INVOICING", false),
		InvoicePrefix:       r.str("INVOICE_PREFIX", fulfillment.DefaultInvoicePrefix),
		SiteEmail:           r.str("SITE_EMAIL", ""),
		SiteName:            r.str("SITE_NAME", ""),
		StockFailurePolicy:  r.str("STOCK_FAILURE_POLICY", string(fulfillment.StockFailureAbort)),
		StockFloor:          r.integer("STOCK_FLOOR", 0),
		CustomerOrderEmail:  r.boolean("CUSTOMER_ORDER_EMAIL", false),
		LocationOrderEmail:  r.boolean("LOCATION_ORDER_EMAIL", false),
		OrderEmailRecipient: r.str(envOrderEmail, ""),
	}
	if err := errors.Join(r.problems...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DSN is the libpq connection string of the configured database.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// Settings resolves the workflow settings handed to the engine.
func (c Config) Settings() (fulfillment.Settings, error) {
	processing, errP := status.ParseSet(c.ProcessingStatuses)
	completed, errC := status.ParseSet(c.CompletedStatuses)
	terminal, errT := status.ParseSet(c.TerminalStatuses)
	policy, errS := fulfillment.ParseStockFailurePolicy(c.StockFailurePolicy)
	recipients, errR := c.confirmationRecipients()
	if err := errors.Join(errP, errC, errT, errS, errR); err != nil {
		return fulfillment.Settings{}, err
	}
	if c.StockFloor < 0 {
		return fulfillment.Settings{}, errs.NewValueIsOutOfRangeError("STOCK_FLOOR", c.StockFloor, 0, "unbounded")
	}

	return fulfillment.Settings{
		Groups: status.Groups{
			Processing: processing,
			Completed:  completed,
			Terminal:   terminal,
		},
		AutoInvoicing: c.AutoInvoicing,
		InvoicePrefix: c.InvoicePrefix,
		SiteEmail:     c.SiteEmail,
		SiteName:      c.SiteName,
		StockPolicy:   policy,
		StockFloor:    c.StockFloor,
		Confirmation:  recipients,
	}, nil
}

func (c Config) confirmationRecipients() (fulfillment.ConfirmationRecipients, error) {
	r := fulfillment.ConfirmationRecipients{
		Customer: c.CustomerOrderEmail,
		Location: c.LocationOrderEmail,
	}
	for _, part := range strings.Split(c.OrderEmailRecipient, ",") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "":
		case "customer":
			r.Customer = true
		case "location":
			r.Location = true
		case "admin":
			r.Admin = true
		default:
			return fulfillment.ConfirmationRecipients{}, errs.NewValueIsInvalidErrorWithCause(
				envOrderEmail, fmt.Errorf("%q is not customer, location or admin", part))
		}
	}
	return r, nil
}

type envReader struct {
	getenv   func(string) string
	problems []error
}

func (r *envReader) str(key, fallback string) string {
	if v := strings.TrimSpace(r.getenv(key)); v != "" {
		return v
	}
	return fallback
}

func (r *envReader) integer(key string, fallback int) int {
	raw := strings.TrimSpace(r.getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		r.problems = append(r.problems, errs.NewValueIsInvalidErrorWithCause(key, err))
		return fallback
	}
	return v
}

func (r *envReader) boolean(key string, fallback bool) bool {
	raw := strings.TrimSpace(r.getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		r.problems = append(r.problems, errs.NewValueIsInvalidErrorWithCause(key, err))
		return fallback
	}
	return v
}
