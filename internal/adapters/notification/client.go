// Package notification implements the outbound notification gateway against
// a messaging provider's HTTP API (SMS and WhatsApp) and plain SMTP (email).
// Every send is best-effort: failures come back as errors for the caller to
// record, and no send is retried here.
package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/smtp"
	"time"

	"github.com/homevia/rent_ledger_app/internal/apperrors"
	"github.com/homevia/rent_ledger_app/internal/core/ports/gateways"
)

// Config holds provider endpoints and credentials.
type Config struct {
	ProviderBaseURL string // Messaging provider API base, e.g. https://api.example.com
	ProviderToken   string
	SMTPAddr        string // host:port
	SMTPFrom        string
	Timeout         time.Duration
}

type client struct {
	cfg  Config
	http *http.Client
}

// NewGateway creates a NotificationGateway from provider config.
func NewGateway(cfg Config) gateways.NotificationGateway {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

var _ gateways.NotificationGateway = (*client)(nil)

type messageRequest struct {
	Channel string `json:"channel"`
	To      string `json:"to"`
	Body    string `json:"body"`
}

// postMessage sends one message through the provider API. Non-2xx responses
// are provider rejections (bad number, blocked recipient); transport errors
// map to ErrGatewayUnavailable.
func (c *client) postMessage(ctx context.Context, channel, to, body string) error {
	payload, err := json.Marshal(messageRequest{Channel: channel, To: to, Body: body})
	if err != nil {
		return fmt.Errorf("failed to encode %s message: %w", channel, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.ProviderBaseURL+"/v1/messages", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", channel, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.ProviderToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s dispatch failed: %v", apperrors.ErrGatewayUnavailable, channel, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s provider rejected message with status %d", channel, resp.StatusCode)
	}
	return nil
}

func (c *client) SendSMS(ctx context.Context, to, message string) error {
	return c.postMessage(ctx, "sms", to, message)
}

func (c *client) SendWhatsApp(ctx context.Context, to, message string) error {
	return c.postMessage(ctx, "whatsapp", to, message)
}

func (c *client) SendEmail(ctx context.Context, to, subject, message string) error {
	if c.cfg.SMTPAddr == "" {
		return fmt.Errorf("%w: SMTP not configured", apperrors.ErrGatewayUnavailable)
	}
	msg := []byte("From: " + c.cfg.SMTPFrom + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" + message + "\r\n")
	if err := smtp.SendMail(c.cfg.SMTPAddr, nil, c.cfg.SMTPFrom, []string{to}, msg); err != nil {
		return fmt.Errorf("%w: email dispatch failed: %v", apperrors.ErrGatewayUnavailable, err)
	}
	return nil
}
