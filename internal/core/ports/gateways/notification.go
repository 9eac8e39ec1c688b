package gateways

import "context"

// NotificationGateway dispatches outbound messages. Sends are best-effort,
// non-transactional side effects: a failed send is reported through the
// error return and is data to the caller, never a fault to escalate.
type NotificationGateway interface {
	SendSMS(ctx context.Context, to, message string) error
	SendWhatsApp(ctx context.Context, to, message string) error
	SendEmail(ctx context.Context, to, subject, message string) error
}
