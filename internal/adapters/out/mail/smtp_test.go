package mail

import (
	"context"
	"strings"
	"testing"
	"time"

	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestBuildMessage(t *testing.T) {
	raw := string(buildMessage(ports.MailMessage{
		To:       "ada@example.com",
		FromName: "Pizza Place",
		From:     "orders@example.com",
		Subject:  "Order #12 is Completed",
		HTMLBody: "<p>Enjoy</p>",
	}, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)))

	headers, body, found := strings.Cut(raw, "\r\n\r\n")
	require.True(t, found)

	assert.Contains(t, headers, `From: "Pizza Place" <orders@example.com>`)
	assert.Contains(t, headers, "To: ada@example.com")
	assert.Contains(t, headers, "Subject: Order #12 is Completed")
	assert.Contains(t, headers, "Date: Mon, 01 Jan 2024 10:00:00 +0000")
	assert.Contains(t, headers, `Content-Type: text/html; charset="utf-8"`)
	assert.Equal(t, "<p>Enjoy</p>", body)
}

func TestBuildMessage_EncodesNonASCIISubject(t *testing.T) {
	raw := string(buildMessage(ports.MailMessage{To: "a@example.com", From: "b@example.com", Subject: "Commande prête"}, time.Now()))

	assert.Contains(t, raw, "Subject: =?utf-8?q?")
}

func TestSMTPMailer_RejectsMalformedAddresses(t *testing.T) {
	m := NewSMTPMailer("localhost", 2525, "", "")

	err := m.Send(context.Background(), ports.MailMessage{To: "ada@example.com", From: "not an address"})
	require.Error(t, err)

	err = m.Send(context.Background(), ports.MailMessage{To: "", From: "orders@example.com"})
	require.Error(t, err)
}

func TestLogMailer(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	m := NewLogMailer(zap.New(core))

	require.NoError(t, m.Send(context.Background(), ports.MailMessage{To: "ada@example.com", Subject: "hi"}))

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "ada@example.com", logs.All()[0].ContextMap()["to"])
}
