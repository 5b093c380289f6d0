package notifications

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

// Sender delivers one mail and reports why it could not.
type Sender interface {
	Send(ctx context.Context, kind notification.Kind, recipient string, data notification.Data) error
}

// Dispatcher renders a template by kind and hands the result to the mailer.
type Dispatcher struct {
	mailer    ports.Mailer
	templates map[notification.Kind]*template.Template
	siteName  string
	siteEmail string
	logger    *zap.Logger
}

func NewDispatcher(mailer ports.Mailer, siteName, siteEmail string, logger *zap.Logger) (*Dispatcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	templates := make(map[notification.Kind]*template.Template, 3)
	for _, kind := range []notification.Kind{notification.KindOrder, notification.KindOrderUpdate, notification.KindOrderAlert} {
		tmpl, err := template.ParseFS(templateFS, fmt.Sprintf("templates/%s.html", kind))
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", kind, err)
		}
		templates[kind] = tmpl.Option("missingkey=zero")
	}

	return &Dispatcher{
		mailer:    mailer,
		templates: templates,
		siteName:  siteName,
		siteEmail: siteEmail,
		logger:    logger,
	}, nil
}

// Send renders and delivers the mail. Any failure is a NotificationFailureError.
func (d *Dispatcher) Send(ctx context.Context, kind notification.Kind, recipient string, data notification.Data) error {
	if recipient == "" {
		return errs.NewNotificationFailureError(string(kind), recipient, errs.NewValueIsRequiredError("recipient"))
	}

	tmpl, ok := d.templates[kind]
	if !ok {
		return errs.NewNotificationFailureError(string(kind), recipient, errs.NewValueIsInvalidError("notification kind"))
	}

	payload := make(notification.Data, len(data)+1)
	for k, v := range data {
		payload[k] = v
	}
	payload["site_name"] = d.siteName

	var subject, body bytes.Buffer
	if err := tmpl.ExecuteTemplate(&subject, "subject", payload); err != nil {
		return errs.NewNotificationFailureError(string(kind), recipient, err)
	}
	if err := tmpl.ExecuteTemplate(&body, "body", payload); err != nil {
		return errs.NewNotificationFailureError(string(kind), recipient, err)
	}

	err := d.mailer.Send(ctx, ports.MailMessage{
		To:       recipient,
		FromName: d.siteName,
		From:     d.siteEmail,
		Subject:  strings.TrimSpace(subject.String()),
		HTMLBody: strings.TrimSpace(body.String()),
	})
	if err != nil {
		return errs.NewNotificationFailureError(string(kind), recipient, err)
	}
	d.logger.Debug("mail sent", zap.String("kind", string(kind)), zap.String("recipient", recipient))
	return nil
}
