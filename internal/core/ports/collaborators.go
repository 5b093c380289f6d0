package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// Customer, Address and Location are the display fields read from the directory.
type (
	Customer struct {
		ID        kernel.ID
		FirstName string
		LastName  string
		Email     string
		Telephone string
	}

	Address struct {
		ID       kernel.ID
		Address1 string
		Address2 string
		City     string
		State    string
		Postcode string
		Country  string
	}

	Location struct {
		ID        kernel.ID
		Name      string
		Email     string
		Telephone string
	}
)

// Directory is the read-only customer, address and location store.
// Each lookup returns ObjectNotFoundError for unknown ids.
type Directory interface {
	Customer(ctx context.Context, id kernel.ID) (Customer, error)
	Address(ctx context.Context, id kernel.ID) (Address, error)
	Location(ctx context.Context, id kernel.ID) (Location, error)
}

// Gateway is a configured payment method.
type Gateway struct {
	Code string
	Name string
}

// PaymentGateways lists the configured payment methods in display order.
type PaymentGateways interface {
	ListGateways() []Gateway
}

// MailMessage is a rendered mail.
type MailMessage struct {
	To       string
	FromName string
	From     string
	Subject  string
	HTMLBody string
}

// Mailer delivers rendered mails.
type Mailer interface {
	Send(ctx context.Context, msg MailMessage) error
}

// EventPublisher announces committed status changes to other services.
type EventPublisher interface {
	PublishStatusChanged(ctx context.Context, event order.StatusChanged) error
}
