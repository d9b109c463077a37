package notify

import (
	"context"
	"fmt"

	"islatours/pkg/client"
)

// Webhook POSTs the booking as JSON to an external script URL.
type Webhook struct {
	client *client.HttpClient
	url    string
}

func NewWebhook(httpClient *client.HttpClient, url string) *Webhook {
	return &Webhook{client: httpClient, url: url}
}

func (w *Webhook) Name() string { return "webhook" }

func (w *Webhook) Notify(ctx context.Context, event BookingEvent) error {
	resp, err := w.client.PostJSON(ctx, w.url, map[string]any{
		"event":            EventBookingCreated,
		"booking":          event.Booking,
		"options":          event.Options,
		"confirmation_url": event.ConfirmationURL,
	})
	if err != nil {
		return err
	}
	if !resp.OK() {
		return fmt.Errorf("webhook responded with status %d", resp.StatusCode)
	}
	return nil
}
