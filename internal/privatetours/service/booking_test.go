package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	privatetourserrors "islatours/internal/privatetours/errors"
	"islatours/pkg/config"
	apperrors "islatours/pkg/errors"
	"islatours/pkg/logger"
	"islatours/pkg/model"
	"islatours/pkg/notify"
	"islatours/pkg/sealer"
	"islatours/pkg/validator"
)

const (
	testSealerKey = "MDEyMzQ1Njc4OWFiY2RlZjAxMjM0NTY3ODlhYmNkZWY="
	tourID        = "65f1c0ffee0000000000bbbb"
	lunchID       = "65f1c0ffee0000000000cc01"
	photosID      = "65f1c0ffee0000000000cc02"
	bookingID     = "65f1c0ffee0000000000dddd"
)

type mockPrivateTourRepository struct {
	findByIDFunc func(ctx context.Context, id string) (*model.PrivateTourRecord, error)
}

func (m *mockPrivateTourRepository) FindAll(ctx context.Context, activeOnly bool) ([]*model.PrivateTourRecord, error) {
	return []*model.PrivateTourRecord{}, nil
}

func (m *mockPrivateTourRepository) FindByID(ctx context.Context, id string) (*model.PrivateTourRecord, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, privatetourserrors.ErrNotFound
}

func (m *mockPrivateTourRepository) Create(ctx context.Context, tour *model.PrivateTourRecord) error {
	return nil
}

func (m *mockPrivateTourRepository) Replace(ctx context.Context, tour *model.PrivateTourRecord) error {
	return nil
}

func (m *mockPrivateTourRepository) Delete(ctx context.Context, id string) error { return nil }

func (m *mockPrivateTourRepository) Count(ctx context.Context) (int64, error) { return 0, nil }

type mockOptionRepository struct {
	options []*model.TourOption
}

func (m *mockOptionRepository) FindAll(ctx context.Context, activeOnly bool) ([]*model.TourOption, error) {
	return m.options, nil
}

func (m *mockOptionRepository) FindByIDs(ctx context.Context, ids []string) ([]*model.TourOption, error) {
	found := []*model.TourOption{}
	for _, o := range m.options {
		for _, id := range ids {
			if o.ID == id {
				found = append(found, o)
			}
		}
	}
	return found, nil
}

func (m *mockOptionRepository) FindByID(ctx context.Context, id string) (*model.TourOption, error) {
	return nil, privatetourserrors.ErrOptionNotFound
}

func (m *mockOptionRepository) Create(ctx context.Context, option *model.TourOption) error {
	return nil
}

func (m *mockOptionRepository) Replace(ctx context.Context, option *model.TourOption) error {
	return nil
}

func (m *mockOptionRepository) Delete(ctx context.Context, id string) error { return nil }

type mockBookingRepository struct {
	created      []*model.PrivateTourBooking
	createErr    error
	updateFunc   func(ctx context.Context, id, status string) error
	countPending int64
}

func (m *mockBookingRepository) Create(ctx context.Context, booking *model.PrivateTourBooking) error {
	if m.createErr != nil {
		return m.createErr
	}
	booking.ID = bookingID
	m.created = append(m.created, booking)
	return nil
}

func (m *mockBookingRepository) FindByID(ctx context.Context, id string) (*model.PrivateTourBooking, error) {
	for _, b := range m.created {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, privatetourserrors.ErrBookingNotFound
}

func (m *mockBookingRepository) FindAll(ctx context.Context, status string, limit int64) ([]*model.PrivateTourBooking, error) {
	return m.created, nil
}

func (m *mockBookingRepository) UpdateStatus(ctx context.Context, id, status string) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, status)
	}
	return nil
}

func (m *mockBookingRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	return m.countPending, nil
}

type mockNotifier struct {
	err    error
	events []notify.BookingEvent
}

func (m *mockNotifier) Name() string { return "mock" }

func (m *mockNotifier) Notify(ctx context.Context, event notify.BookingEvent) error {
	m.events = append(m.events, event)
	return m.err
}

type bookingFixture struct {
	svc      *bookingService
	bookings *mockBookingRepository
	notifier *mockNotifier
	tour     *model.PrivateTourRecord
}

// 2026-03-10 06:00 on the island, a Tuesday; the first bookable day is Wednesday 2026-03-11.
var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	s, err := sealer.New(testSealerKey)
	if err != nil {
		t.Fatal(err)
	}

	tour := &model.PrivateTourRecord{
		ID:             tourID,
		Name:           "West End Snorkel",
		Price1Person:   price(100),
		Price2Persons:  price(60),
		PriceChild:     price(20),
		BookingOptions: true,
		Active:         true,
	}
	tours := &mockPrivateTourRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.PrivateTourRecord, error) {
			if id == tourID {
				return tour, nil
			}
			return nil, privatetourserrors.ErrNotFound
		},
	}
	options := &mockOptionRepository{options: []*model.TourOption{
		{ID: lunchID, Name: "Lunch", Price: 15, Active: true},
		{ID: photosID, Name: "Photos", Price: 25, Active: false},
	}}
	bookings := &mockBookingRepository{}
	notifier := &mockNotifier{}
	cfg := &config.Config{
		Log:            logger.Discard(),
		PublicBaseURL:  "https://islatours.test",
		WebhookTimeout: time.Second,
	}

	svc := NewBookingService(tours, options, bookings, notifier, s, validator.New(), cfg).(*bookingService)
	svc.now = func() time.Time { return fixedNow }
	return &bookingFixture{svc: svc, bookings: bookings, notifier: notifier, tour: tour}
}

func validRequest() *model.BookingRequest {
	return &model.BookingRequest{
		PrivateTourID:   tourID,
		FirstName:       " Ana ",
		LastName:        "Lopez",
		Email:           "ANA@example.com",
		Phone:           "9999-8888",
		Adults:          2,
		Children:        1,
		SelectedOptions: []string{lunchID},
		TourDate:        "2026-03-11",
	}
}

func TestBook_NotifierFailureStillConfirms(t *testing.T) {
	f := newBookingFixture(t)
	f.notifier.err = errors.New("webhook returned 502")

	confirmation, err := f.svc.Book(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("expected booking to succeed, got %v", err)
	}
	if len(f.notifier.events) != 1 {
		t.Fatalf("expected one notification attempt, got %d", len(f.notifier.events))
	}

	b := confirmation.Booking
	if b.Status != model.BookingStatusPending {
		t.Errorf("expected pending status, got %q", b.Status)
	}
	if b.PrivateTourName != "West End Snorkel" {
		t.Errorf("expected tour name copied, got %q", b.PrivateTourName)
	}
	if b.TotalPrice != 60*2+20+15 {
		t.Errorf("expected total 155, got %v", b.TotalPrice)
	}
	if b.FirstName != "Ana" || b.Email != "ana@example.com" || b.Phone != "+50499998888" {
		t.Errorf("expected sanitized contact fields, got %+v", b)
	}
	if b.Country != "Honduras" {
		t.Errorf("expected country inferred from phone, got %q", b.Country)
	}
	if confirmation.Path != ConfirmationPrefix+confirmation.Token {
		t.Errorf("unexpected path %q", confirmation.Path)
	}
	if got := f.notifier.events[0].ConfirmationURL; got != "https://islatours.test"+confirmation.Path {
		t.Errorf("unexpected confirmation url %q", got)
	}
}

func TestBook_ServerComputesTotal(t *testing.T) {
	f := newBookingFixture(t)
	req := validRequest()
	req.SelectedOptions = nil
	req.Children = 0

	confirmation, err := f.svc.Book(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if confirmation.Booking.TotalPrice != 120 {
		t.Errorf("expected 120, got %v", confirmation.Booking.TotalPrice)
	}
}

func TestBook_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *bookingFixture, req *model.BookingRequest)
		code   string
	}{
		{
			name:   "date today",
			mutate: func(f *bookingFixture, req *model.BookingRequest) { req.TourDate = "2026-03-10" },
			code:   apperrors.CodeValidation,
		},
		{
			name:   "malformed date",
			mutate: func(f *bookingFixture, req *model.BookingRequest) { req.TourDate = "11/03/2026" },
			code:   apperrors.CodeValidation,
		},
		{
			name: "weekday not offered",
			mutate: func(f *bookingFixture, req *model.BookingRequest) {
				f.tour.AvailableDays = []string{"saturday", "sunday"}
			},
			code: apperrors.CodeValidation,
		},
		{
			name:   "no adults",
			mutate: func(f *bookingFixture, req *model.BookingRequest) { req.Adults = 0 },
			code:   apperrors.CodeValidation,
		},
		{
			name:   "bad email",
			mutate: func(f *bookingFixture, req *model.BookingRequest) { req.Email = "ana" },
			code:   apperrors.CodeValidation,
		},
		{
			name:   "inactive option",
			mutate: func(f *bookingFixture, req *model.BookingRequest) { req.SelectedOptions = []string{photosID} },
			code:   apperrors.CodeValidation,
		},
		{
			name:   "options disabled on tour",
			mutate: func(f *bookingFixture, req *model.BookingRequest) { f.tour.BookingOptions = false },
			code:   apperrors.CodeValidation,
		},
		{
			name:   "inactive tour",
			mutate: func(f *bookingFixture, req *model.BookingRequest) { f.tour.Active = false },
			code:   apperrors.CodeNotFound,
		},
		{
			name:   "unknown tour",
			mutate: func(f *bookingFixture, req *model.BookingRequest) { req.PrivateTourID = "65f1c0ffee0000000000ffff" },
			code:   apperrors.CodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBookingFixture(t)
			req := validRequest()
			tt.mutate(f, req)

			_, err := f.svc.Book(context.Background(), req)
			if !apperrors.HasCode(err, tt.code) {
				t.Errorf("expected %s, got %v", tt.code, err)
			}
			if len(f.bookings.created) != 0 {
				t.Error("rejected booking must not be stored")
			}
			if len(f.notifier.events) != 0 {
				t.Error("rejected booking must not notify")
			}
		})
	}
}

func TestBook_StoreFailureIsInternal(t *testing.T) {
	f := newBookingFixture(t)
	f.bookings.createErr = errors.New("write concern")

	_, err := f.svc.Book(context.Background(), validRequest())
	if !apperrors.HasCode(err, apperrors.CodeInternal) {
		t.Errorf("expected INTERNAL, got %v", err)
	}
	if len(f.notifier.events) != 0 {
		t.Error("unsaved booking must not notify")
	}
}

func TestConfirmation_RoundTrip(t *testing.T) {
	f := newBookingFixture(t)
	confirmation, err := f.svc.Book(context.Background(), validRequest())
	if err != nil {
		t.Fatal(err)
	}

	receipt, err := f.svc.Confirmation(context.Background(), confirmation.Token)
	if err != nil {
		t.Fatal(err)
	}
	if receipt.Booking.ID != bookingID {
		t.Errorf("expected booking %s, got %s", bookingID, receipt.Booking.ID)
	}
	if len(receipt.Options) != 1 || receipt.Options[0].Name != "Lunch" {
		t.Errorf("expected booked lunch option, got %+v", receipt.Options)
	}
}

func TestConfirmation_RejectsForgedTokens(t *testing.T) {
	f := newBookingFixture(t)
	forged, err := f.svc.sealer.Seal("session", bookingID)
	if err != nil {
		t.Fatal(err)
	}

	for _, token := range []string{"", "not-a-token", forged} {
		_, err := f.svc.Confirmation(context.Background(), token)
		if !apperrors.HasCode(err, apperrors.CodeNotFound) {
			t.Errorf("token %q: expected NOT_FOUND, got %v", token, err)
		}
	}
}

func TestReceipt_RendersPDF(t *testing.T) {
	f := newBookingFixture(t)
	req := validRequest()
	req.Hotel = "Infinity Bay"
	req.Comments = "Celebrating an anniversary"
	confirmation, err := f.svc.Book(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}

	pdf, err := f.svc.Receipt(context.Background(), confirmation.Token)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Errorf("expected PDF output, got %q", pdf[:min(len(pdf), 8)])
	}
}

func TestQuote_ValidatesHeadcount(t *testing.T) {
	f := newBookingFixture(t)
	req := validRequest()
	req.Adults = 0

	if _, err := f.svc.Quote(context.Background(), req); !apperrors.HasCode(err, apperrors.CodeValidation) {
		t.Errorf("expected VALIDATION_ERROR, got %v", err)
	}

	req.Adults = 2
	quote, err := f.svc.Quote(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if quote.Total != 155 {
		t.Errorf("expected 155, got %v", quote.Total)
	}
}

func TestQuote_RepeatedOptionChargedOnce(t *testing.T) {
	f := newBookingFixture(t)
	req := validRequest()
	req.SelectedOptions = []string{lunchID, lunchID, " " + lunchID + " "}

	quote, err := f.svc.Quote(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if quote.Total != 155 {
		t.Errorf("expected lunch charged once (155), got %v", quote.Total)
	}
	if len(quote.Lines) != 3 {
		t.Errorf("expected adults, children and one lunch line, got %+v", quote.Lines)
	}
}

func TestUpdateStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    string
		repoErr   error
		wantCode  string
		wantCalls int
	}{
		{"confirm", model.BookingStatusConfirmed, nil, "", 1},
		{"unknown status", "shipped", nil, apperrors.CodeValidation, 0},
		{"missing booking", model.BookingStatusCancelled, privatetourserrors.ErrBookingNotFound, apperrors.CodeNotFound, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBookingFixture(t)
			calls := 0
			f.bookings.updateFunc = func(ctx context.Context, id, status string) error {
				calls++
				return tt.repoErr
			}

			err := f.svc.UpdateStatus(context.Background(), bookingID, tt.status)
			if tt.wantCode == "" && err != nil {
				t.Errorf("unexpected error %v", err)
			}
			if tt.wantCode != "" && !apperrors.HasCode(err, tt.wantCode) {
				t.Errorf("expected %s, got %v", tt.wantCode, err)
			}
			if calls != tt.wantCalls {
				t.Errorf("expected %d repository calls, got %d", tt.wantCalls, calls)
			}
		})
	}
}

func TestList_RejectsUnknownStatus(t *testing.T) {
	f := newBookingFixture(t)
	if _, err := f.svc.List(context.Background(), "archived"); !apperrors.HasCode(err, apperrors.CodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}
