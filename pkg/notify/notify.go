// Package notify fans a new private-tour booking out to the operator's
// channels. Every sink is best effort; callers log failures and move on.
package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"islatours/pkg/model"
)

const EventBookingCreated = "private_tour_booking.created"

type BookingEvent struct {
	Booking         *model.PrivateTourBooking `json:"booking"`
	Options         []model.TourOption        `json:"options,omitempty"`
	ConfirmationURL string                    `json:"confirmation_url"`
}

type Notifier interface {
	Name() string
	Notify(ctx context.Context, event BookingEvent) error
}

// Multi notifies every sink concurrently and joins their errors.
type Multi []Notifier

func (m Multi) Name() string {
	names := make([]string, len(m))
	for i, n := range m {
		names[i] = n.Name()
	}
	return strings.Join(names, ",")
}

func (m Multi) Notify(ctx context.Context, event BookingEvent) error {
	errs := make([]error, len(m))
	var wg sync.WaitGroup
	for i, n := range m {
		wg.Add(1)
		go func(i int, n Notifier) {
			defer wg.Done()
			if err := n.Notify(ctx, event); err != nil {
				errs[i] = fmt.Errorf("%s: %w", n.Name(), err)
			}
		}(i, n)
	}
	wg.Wait()
	return errors.Join(errs...)
}

// Summary is the plain-text rendering shared by the chat sinks.
func Summary(event BookingEvent) string {
	b := event.Booking
	var sb strings.Builder
	fmt.Fprintf(&sb, "New private tour booking\n")
	fmt.Fprintf(&sb, "Tour: %s\n", b.PrivateTourName)
	fmt.Fprintf(&sb, "Date: %s\n", b.TourDate)
	fmt.Fprintf(&sb, "Guest: %s %s\n", b.FirstName, b.LastName)
	fmt.Fprintf(&sb, "Email: %s\n", b.Email)
	fmt.Fprintf(&sb, "Phone: %s\n", b.Phone)
	fmt.Fprintf(&sb, "Adults: %d, Children: %d\n", b.Adults, b.Children)
	for _, o := range event.Options {
		fmt.Fprintf(&sb, "Option: %s ($%s)\n", o.Name, Money(o.Price))
	}
	if b.Hotel != "" {
		fmt.Fprintf(&sb, "Hotel: %s\n", b.Hotel)
	}
	if b.Comments != "" {
		fmt.Fprintf(&sb, "Comments: %s\n", b.Comments)
	}
	fmt.Fprintf(&sb, "Total: $%s", Money(b.TotalPrice))
	if event.ConfirmationURL != "" {
		fmt.Fprintf(&sb, "\n%s", event.ConfirmationURL)
	}
	return sb.String()
}

// Money formats an amount without trailing zeros: 135 -> "135", 12.5 -> "12.50".
func Money(amount float64) string {
	if amount == float64(int64(amount)) {
		return fmt.Sprintf("%d", int64(amount))
	}
	return fmt.Sprintf("%.2f", amount)
}
