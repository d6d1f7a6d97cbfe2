// Package service defines domain-level service contracts implemented by
// the infrastructure layer.
package service

import "context"

// Notifier delivers messages to users outside the request path.
// Implementations must never block the caller and must swallow delivery
// failures; a lost notification never fails the business operation that
// triggered it.
type Notifier interface {
	Notify(ctx context.Context, recipient, subject, message string)
}

// NopNotifier discards all notifications. Useful in tests and local setups
// without a mail relay.
type NopNotifier struct{}

// Notify implements Notifier
func (NopNotifier) Notify(context.Context, string, string, string) {}
