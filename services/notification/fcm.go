package notification

import (
	"context"
	"time"

	providerRepo "mandapbook/database/repository/provider"
	userRepo "mandapbook/database/repository/user"
	"mandapbook/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// FCMDispatcher sends booking lifecycle events as Firebase pushes to the
// affected user and provider. Lookup or delivery failures are logged and
// swallowed; the ledger has already committed by the time we run.
type FCMDispatcher struct {
	Users     userRepo.UserRepository
	Providers providerRepo.ProviderRepository
}

var eventTitles = map[Event]string{
	EventBookingCreated:     "Booking confirmed",
	EventBookingUpdated:     "Booking updated",
	EventBookingCancelled:   "Booking cancelled",
	EventPaymentCompleted:   "Payment received",
	EventProviderRegistered: "Registration received",
	EventProviderApproved:   "Account approved",
	EventProviderRejected:   "Account rejected",
}

func (d *FCMDispatcher) Notify(ctx context.Context, event Event, payload map[string]string) {
	logger := utils.GetLogger()

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	title := eventTitles[event]
	if title == "" {
		title = string(event)
	}
	body := payload["message"]

	data := map[string]string{"event": string(event)}
	for k, v := range payload {
		data[k] = v
	}

	if userID := payload["userId"]; userID != "" {
		if err := d.push(ctx, d.userToken(userID), title, body, data); err != nil {
			logger.Warn("notification: user push failed",
				zap.String("event", string(event)), zap.String("userId", userID), zap.Error(err))
		}
	}
	if providerID := payload["providerId"]; providerID != "" {
		if err := d.push(ctx, d.providerToken(providerID), title, body, data); err != nil {
			logger.Warn("notification: provider push failed",
				zap.String("event", string(event)), zap.String("providerId", providerID), zap.Error(err))
		}
	}
}

func (d *FCMDispatcher) userToken(userID string) string {
	u, err := d.Users.GetByID(userID)
	if err != nil {
		return ""
	}
	return u.FCMToken
}

func (d *FCMDispatcher) providerToken(providerID string) string {
	p, err := d.Providers.GetByID(providerID)
	if err != nil {
		return ""
	}
	return p.FCMToken
}

func (d *FCMDispatcher) push(ctx context.Context, token, title, body string, data map[string]string) error {
	if token == "" {
		return nil
	}
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	_, err := utils.FCMClient.Send(ctx, msg)
	return err
}
