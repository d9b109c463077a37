package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"islatours/pkg/client"
	"islatours/pkg/kafka"
	"islatours/pkg/model"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func testEvent() BookingEvent {
	return BookingEvent{
		Booking: &model.PrivateTourBooking{
			ID:              "65f1c0ffee0123456789abcd",
			PrivateTourName: "West End Snorkel",
			FirstName:       "Ana",
			LastName:        "Lopez",
			Email:           "ana@example.com",
			Phone:           "+50499998888",
			Adults:          2,
			Children:        1,
			TourDate:        "2026-12-01",
			TotalPrice:      275,
			Status:          model.BookingStatusPending,
			CreatedAt:       time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
		},
		Options:         []model.TourOption{{Name: "Lunch", Price: 25}},
		ConfirmationURL: "https://islatours.test/private-tours/confirmation/abc",
	}
}

type funcNotifier struct {
	name string
	fn   func(ctx context.Context, event BookingEvent) error
}

func (f funcNotifier) Name() string { return f.name }

func (f funcNotifier) Notify(ctx context.Context, event BookingEvent) error {
	return f.fn(ctx, event)
}

func TestMulti_CallsEverySinkAndJoinsErrors(t *testing.T) {
	var calls int32
	ok := funcNotifier{"ok", func(ctx context.Context, e BookingEvent) error {
		atomic.AddInt32(&calls, 1)
		return nil
	}}
	bad := funcNotifier{"bad", func(ctx context.Context, e BookingEvent) error {
		atomic.AddInt32(&calls, 1)
		return errors.New("down")
	}}

	err := Multi{ok, bad, ok}.Notify(context.Background(), testEvent())
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
	if err == nil || !strings.Contains(err.Error(), "bad: down") {
		t.Errorf("expected joined error naming the sink, got %v", err)
	}
	if (Multi{ok}).Notify(context.Background(), testEvent()) != nil {
		t.Error("expected nil error when every sink succeeds")
	}
}

func TestSummary(t *testing.T) {
	s := Summary(testEvent())
	for _, want := range []string{"West End Snorkel", "2026-12-01", "Ana Lopez", "Adults: 2, Children: 1", "Option: Lunch ($25)", "Total: $275"} {
		if !strings.Contains(s, want) {
			t.Errorf("summary missing %q:\n%s", want, s)
		}
	}
}

func TestMoney(t *testing.T) {
	tests := map[float64]string{135: "135", 12.5: "12.50", 0: "0"}
	for in, want := range tests {
		if got := Money(in); got != want {
			t.Errorf("Money(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestWebhook(t *testing.T) {
	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	hook := NewWebhook(client.NewHttpClient(time.Second), server.URL)
	if err := hook.Notify(context.Background(), testEvent()); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if body["event"] != EventBookingCreated {
		t.Errorf("unexpected event %v", body["event"])
	}
}

func TestWebhook_FailureStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	hook := NewWebhook(client.NewHttpClient(time.Second), server.URL)
	if err := hook.Notify(context.Background(), testEvent()); err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestWebhook_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	hook := NewWebhook(client.NewHttpClient(5*time.Second), server.URL)
	if err := hook.Notify(ctx, testEvent()); err == nil {
		t.Fatal("expected timeout error")
	}
	if time.Since(start) > 500*time.Millisecond {
		t.Errorf("webhook did not honour the context deadline")
	}
}

type mockPublisher struct {
	msgs []kafka.Message
}

func (m *mockPublisher) Publish(ctx context.Context, msg kafka.Message) error {
	m.msgs = append(m.msgs, msg)
	return nil
}

func TestKafka(t *testing.T) {
	pub := &mockPublisher{}
	if err := NewKafka(pub, "site").Notify(context.Background(), testEvent()); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if len(pub.msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(pub.msgs))
	}
	msg := pub.msgs[0]
	if msg.Key != "65f1c0ffee0123456789abcd" || msg.GetEventType() != EventBookingCreated {
		t.Errorf("unexpected message key=%q type=%q", msg.Key, msg.GetEventType())
	}
	var decoded BookingEvent
	if err := json.Unmarshal(msg.Value, &decoded); err != nil || decoded.Booking.Adults != 2 {
		t.Errorf("payload not decodable: %v", err)
	}
}

type mockSender struct {
	sent []tgbotapi.Chattable
	err  error
}

func (m *mockSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	m.sent = append(m.sent, c)
	return tgbotapi.Message{}, m.err
}

func TestTelegram(t *testing.T) {
	sender := &mockSender{}
	tg := NewTelegramWithSender(sender, []int64{1, 2})

	if err := tg.Notify(context.Background(), testEvent()); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if len(sender.sent) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(sender.sent))
	}
	msg := sender.sent[0].(tgbotapi.MessageConfig)
	if msg.ChatID != 1 || !strings.Contains(msg.Text, "Total: $275") {
		t.Errorf("unexpected message %+v", msg)
	}

	sender.err = errors.New("blocked")
	if err := tg.Notify(context.Background(), testEvent()); err == nil {
		t.Error("expected send error")
	}
}

func TestSheets(t *testing.T) {
	var got []any
	sheets := NewSheetsWithAppender(func(ctx context.Context, row []any) error {
		got = row
		return nil
	})

	if err := sheets.Notify(context.Background(), testEvent()); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if len(got) != 15 {
		t.Fatalf("expected 15 columns, got %d", len(got))
	}
	if got[0] != "2026-10-01T12:00:00Z" || got[4] != "Ana Lopez" || got[10] != "Lunch" {
		t.Errorf("unexpected row %v", got)
	}
}
