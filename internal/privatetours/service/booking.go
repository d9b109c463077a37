package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"islatours/internal/privatetours/repository"
	"islatours/pkg/config"
	apperrors "islatours/pkg/errors"
	"islatours/pkg/locale"
	"islatours/pkg/model"
	"islatours/pkg/notify"
	"islatours/pkg/sanitizer"
	"islatours/pkg/sealer"
	"islatours/pkg/validator"
)

const (
	ConfirmationPrefix = "/private-tours/confirmation/"
	tokenKind          = "booking"
)

type BookingService interface {
	// Quote prices a request without storing it.
	Quote(ctx context.Context, req *model.BookingRequest) (*model.Quote, error)
	// Book stores the booking as pending and notifies the operator. A failed
	// notification is logged and never fails the booking.
	Book(ctx context.Context, req *model.BookingRequest) (*model.BookingConfirmation, error)
	Confirmation(ctx context.Context, token string) (*model.BookingReceipt, error)
	Receipt(ctx context.Context, token string) ([]byte, error)

	List(ctx context.Context, status string) ([]*model.PrivateTourBooking, error)
	UpdateStatus(ctx context.Context, id, status string) error
	CountPending(ctx context.Context) (int64, error)
}

type bookingService struct {
	tours     repository.PrivateTourRepository
	options   repository.OptionRepository
	bookings  repository.BookingRepository
	notifier  notify.Notifier
	sealer    *sealer.Sealer
	validator *validator.Validator
	cfg       *config.Config
	now       func() time.Time
}

func NewBookingService(
	tours repository.PrivateTourRepository,
	options repository.OptionRepository,
	bookings repository.BookingRepository,
	notifier notify.Notifier,
	sealer *sealer.Sealer,
	v *validator.Validator,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		tours:     tours,
		options:   options,
		bookings:  bookings,
		notifier:  notifier,
		sealer:    sealer,
		validator: v,
		cfg:       cfg,
		now:       time.Now,
	}
}

func (s *bookingService) Quote(ctx context.Context, req *model.BookingRequest) (*model.Quote, error) {
	if req.Adults < 1 {
		return nil, apperrors.FieldValidation("Quote validation failed", map[string]string{"adults": "at least one adult is required"})
	}
	if req.Children < 0 {
		return nil, apperrors.FieldValidation("Quote validation failed", map[string]string{"children": "must not be negative"})
	}
	selected := sanitizer.NormalizeStringSlice(req.SelectedOptions, strings.TrimSpace)
	tour, options, err := s.resolve(ctx, req.PrivateTourID, selected)
	if err != nil {
		return nil, err
	}
	quote := Quote(tour, req.Adults, req.Children, options)
	return &quote, nil
}

func (s *bookingService) Book(ctx context.Context, req *model.BookingRequest) (*model.BookingConfirmation, error) {
	booking := &model.PrivateTourBooking{
		PrivateTourID:   req.PrivateTourID,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		Country:         req.Country,
		Adults:          req.Adults,
		Children:        req.Children,
		SelectedOptions: req.SelectedOptions,
		TourDate:        req.TourDate,
		Hotel:           req.Hotel,
		Comments:        req.Comments,
		Status:          model.BookingStatusPending,
	}
	sanitizer.SanitizeBooking(booking)
	if booking.Country == "" {
		if c := locale.InferCountryFromPhone(booking.Phone); c != nil {
			booking.Country = c.Name
		}
	}
	if err := s.validator.Validate(booking); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "tour_id", booking.PrivateTourID, "error", err)
		return nil, validator.AppError("Booking validation failed", err)
	}

	tour, options, err := s.resolve(ctx, booking.PrivateTourID, booking.SelectedOptions)
	if err != nil {
		return nil, err
	}
	if err := s.checkDate(tour, booking.TourDate); err != nil {
		return nil, err
	}

	booking.PrivateTourName = tour.Name
	booking.TotalPrice = Quote(tour, booking.Adults, booking.Children, options).Total
	booking.CreatedAt = s.now().UTC()

	if err := s.bookings.Create(ctx, booking); err != nil {
		s.cfg.Log.Error("Failed to create booking", "tour_id", booking.PrivateTourID, "error", err)
		return nil, apperrors.Internal("Failed to create booking", err)
	}

	token, err := s.sealer.Seal(tokenKind, booking.ID)
	if err != nil {
		s.cfg.Log.Error("Failed to seal confirmation token", "id", booking.ID, "error", err)
		return nil, apperrors.Internal("Failed to create booking confirmation", err)
	}
	path := ConfirmationPrefix + token

	s.notify(ctx, notify.BookingEvent{
		Booking:         booking,
		Options:         options,
		ConfirmationURL: s.cfg.PublicBaseURL + path,
	})

	s.cfg.Log.Info("Private tour booked",
		"id", booking.ID,
		"tour", booking.PrivateTourName,
		"date", booking.TourDate,
		"total", booking.TotalPrice,
	)
	return &model.BookingConfirmation{Booking: booking, Token: token, Path: path}, nil
}

// notify detaches from the request so a client disconnect does not cut the
// fan-out short, and bounds it with the webhook timeout.
func (s *bookingService) notify(ctx context.Context, event notify.BookingEvent) {
	if s.notifier == nil {
		return
	}
	nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.WebhookTimeout)
	defer cancel()

	if err := s.notifier.Notify(nctx, event); err != nil {
		s.cfg.Log.Warn("Booking notification failed",
			"id", event.Booking.ID,
			"notifier", s.notifier.Name(),
			"error", err,
		)
	}
}

// resolve loads an active tour and the selected active options.
func (s *bookingService) resolve(ctx context.Context, tourID string, selected []string) (*model.PrivateTourRecord, []model.TourOption, error) {
	if tourID == "" {
		return nil, nil, apperrors.FieldValidation("Booking validation failed", map[string]string{"private_tour_id": "is required"})
	}
	tour, err := s.tours.FindByID(ctx, tourID)
	if err != nil {
		return nil, nil, mapError(err, tourID, "Failed to retrieve private tour")
	}
	if !tour.Active {
		return nil, nil, apperrors.NotFoundWithID("Private tour", tourID)
	}

	if len(selected) == 0 {
		return tour, []model.TourOption{}, nil
	}
	if !tour.BookingOptions {
		return nil, nil, apperrors.FieldValidation("Booking validation failed", map[string]string{
			"selected_options": "this tour does not offer additional options",
		})
	}

	found, err := s.options.FindByIDs(ctx, selected)
	if err != nil {
		s.cfg.Log.Error("Failed to load tour options", "error", err)
		return nil, nil, apperrors.Internal("Failed to retrieve tour options", err)
	}
	byID := make(map[string]*model.TourOption, len(found))
	for _, o := range found {
		if o.Active {
			byID[o.ID] = o
		}
	}

	options := make([]model.TourOption, 0, len(selected))
	for _, id := range selected {
		o, ok := byID[id]
		if !ok {
			return nil, nil, apperrors.FieldValidation("Booking validation failed", map[string]string{
				"selected_options": fmt.Sprintf("option %s is not available", id),
			})
		}
		options = append(options, *o)
	}
	return tour, options, nil
}

func (s *bookingService) checkDate(tour *model.PrivateTourRecord, date string) error {
	day, err := time.ParseInLocation("2006-01-02", date, locale.Island())
	if err != nil {
		return apperrors.FieldValidation("Booking validation failed", map[string]string{"tour_date": "must be a date in YYYY-MM-DD format"})
	}
	if date < locale.Tomorrow(s.now()) {
		return apperrors.FieldValidation("Booking validation failed", map[string]string{"tour_date": "must be tomorrow or later"})
	}
	weekday := strings.ToLower(day.Weekday().String())
	if len(tour.AvailableDays) > 0 && !slices.Contains(tour.AvailableDays, weekday) {
		return apperrors.FieldValidation("Booking validation failed", map[string]string{
			"tour_date": fmt.Sprintf("tour is not available on %s", weekday),
		})
	}
	return nil
}

func (s *bookingService) Confirmation(ctx context.Context, token string) (*model.BookingReceipt, error) {
	parts, err := s.sealer.Open(token)
	if err != nil || len(parts) != 2 || parts[0] != tokenKind {
		return nil, apperrors.NotFound("Booking")
	}

	booking, err := s.bookings.FindByID(ctx, parts[1])
	if err != nil {
		return nil, mapError(err, parts[1], "Failed to retrieve booking")
	}

	options := []model.TourOption{}
	if len(booking.SelectedOptions) > 0 {
		found, err := s.options.FindByIDs(ctx, booking.SelectedOptions)
		if err != nil {
			s.cfg.Log.Warn("Failed to load booked options", "id", booking.ID, "error", err)
		}
		for _, o := range found {
			options = append(options, *o)
		}
	}
	return &model.BookingReceipt{Booking: booking, Options: options}, nil
}

func (s *bookingService) Receipt(ctx context.Context, token string) ([]byte, error) {
	receipt, err := s.Confirmation(ctx, token)
	if err != nil {
		return nil, err
	}
	pdf, err := RenderReceipt(receipt, s.cfg.PublicBaseURL+ConfirmationPrefix+token)
	if err != nil {
		s.cfg.Log.Error("Failed to render receipt", "id", receipt.Booking.ID, "error", err)
		return nil, apperrors.Internal("Failed to render receipt", err)
	}
	return pdf, nil
}

func (s *bookingService) List(ctx context.Context, status string) ([]*model.PrivateTourBooking, error) {
	if status != "" && !validStatus(status) {
		return nil, apperrors.InvalidInput("Unknown booking status: " + status)
	}
	bookings, err := s.bookings.FindAll(ctx, status, 0)
	if err != nil {
		s.cfg.Log.Error("Failed to load bookings", "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}
	return bookings, nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, id, status string) error {
	if id == "" {
		return apperrors.InvalidInput("Booking ID cannot be empty")
	}
	if !validStatus(status) {
		return apperrors.FieldValidation("Booking status update failed", map[string]string{
			"status": "must be one of pending, confirmed, cancelled",
		})
	}
	if err := s.bookings.UpdateStatus(ctx, id, status); err != nil {
		s.cfg.Log.Error("Failed to update booking status", "id", id, "status", status, "error", err)
		return mapError(err, id, "Failed to update booking status")
	}
	s.cfg.Log.Info("Booking status updated", "id", id, "status", status)
	return nil
}

func (s *bookingService) CountPending(ctx context.Context) (int64, error) {
	return s.bookings.CountByStatus(ctx, model.BookingStatusPending)
}

func validStatus(status string) bool {
	switch status {
	case model.BookingStatusPending, model.BookingStatusConfirmed, model.BookingStatusCancelled:
		return true
	}
	return false
}
