// Package notification publishes booking lifecycle events. The dispatcher
// is injected into the booking engine rather than reached through a global,
// so tests can substitute a recording implementation. Dispatch happens
// after the ledger write commits; a failed push never rolls a booking back.
package notification

import "context"

// Event names a committed state change worth announcing.
type Event string

const (
	EventBookingCreated     Event = "booking.created"
	EventBookingUpdated     Event = "booking.updated"
	EventBookingCancelled   Event = "booking.cancelled"
	EventPaymentCompleted   Event = "booking.payment_completed"
	EventProviderRegistered Event = "provider.registered"
	EventProviderApproved   Event = "provider.approved"
	EventProviderRejected   Event = "provider.rejected"
)

// Dispatcher is the fire-and-forget event publishing interface. Payload
// carries flat string fields (ids, dates, amounts) for push templating.
type Dispatcher interface {
	Notify(ctx context.Context, event Event, payload map[string]string)
}

// NoopDispatcher drops every event.
type NoopDispatcher struct{}

func (NoopDispatcher) Notify(ctx context.Context, event Event, payload map[string]string) {}
