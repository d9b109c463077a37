package service

import (
	"context"
	"time"

	"islatours/pkg/config"
	apperrors "islatours/pkg/errors"
	"islatours/pkg/locale"
	"islatours/pkg/model"
	"islatours/pkg/sanitizer"
	"islatours/pkg/validator"
	"islatours/pkg/whatsapp"
)

const (
	ActionNext = "next"
	ActionBack = "back"
	ActionSend = "send"
)

// TourLookup resolves the tour a form refers to.
type TourLookup interface {
	Get(ctx context.Context, id string) (*model.Tour, error)
}

// ContactLookup provides the operator's WhatsApp number.
type ContactLookup interface {
	Get(ctx context.Context) *model.SiteSettings
}

type FlowRequest struct {
	Step   int               `json:"step"`
	Action string            `json:"action"`
	Form   model.BookingForm `json:"form"`
}

type FlowResponse struct {
	Step        int               `json:"step"`
	Form        model.BookingForm `json:"form"`
	Errors      map[string]string `json:"errors,omitempty"`
	Tour        *model.Tour       `json:"tour,omitempty"`
	Total       float64           `json:"total"`
	MinDate     string            `json:"min_date"`
	Message     string            `json:"message,omitempty"`
	WhatsAppURL string            `json:"whatsapp_url,omitempty"`
}

type FlowService interface {
	// Advance applies one wizard action. Nothing is stored; on send the
	// response carries the message and a click-to-chat link.
	Advance(ctx context.Context, req *FlowRequest, lang string) (*FlowResponse, error)
}

type flowService struct {
	tours     TourLookup
	contact   ContactLookup
	validator *validator.Validator
	cfg       *config.Config
	now       func() time.Time
}

func NewFlowService(tours TourLookup, contact ContactLookup, v *validator.Validator, cfg *config.Config) FlowService {
	return &flowService{
		tours:     tours,
		contact:   contact,
		validator: v,
		cfg:       cfg,
		now:       time.Now,
	}
}

func (s *flowService) Advance(ctx context.Context, req *FlowRequest, lang string) (*FlowResponse, error) {
	if req.Step < StepTour || req.Step > StepReview {
		return nil, apperrors.InvalidInput("Step must be 1, 2 or 3")
	}

	sanitizer.SanitizeBookingForm(&req.Form)
	tour := s.lookup(ctx, req.Form.TourID)
	wizard := NewWizard(req.Step, req.Form, tour, locale.Tomorrow(s.now()), s.validator)

	resp := &FlowResponse{MinDate: wizard.tomorrow, Tour: tour}
	switch req.Action {
	case ActionNext:
		resp.Errors = wizard.Next()
	case ActionBack:
		wizard.Back()
	case ActionSend:
		if wizard.Step != StepReview {
			return nil, apperrors.InvalidInput("Booking can only be sent from the review step")
		}
		resp.Errors = wizard.Validate(StepReview)
		if len(resp.Errors) == 0 {
			resp.Message = BuildMessage(lang, *tour, wizard.Form)
			resp.WhatsAppURL = whatsapp.Link(s.whatsAppNumber(ctx), resp.Message)
			s.cfg.Log.Info("Booking message prepared", "tour_id", tour.ID, "date", wizard.Form.Date, "people", wizard.Form.People)
		}
	default:
		return nil, apperrors.InvalidInput("Action must be next, back or send")
	}

	if len(resp.Errors) == 0 {
		resp.Errors = nil
	}
	resp.Step = wizard.Step
	resp.Form = wizard.Form
	if tour != nil {
		resp.Total = Total(tour.Price, wizard.Form.People)
	}
	return resp, nil
}

// lookup treats any failure as "no tour"; the wizard reports it as a field error.
func (s *flowService) lookup(ctx context.Context, id string) *model.Tour {
	if id == "" {
		return nil
	}
	tour, err := s.tours.Get(ctx, id)
	if err != nil {
		if !apperrors.HasCode(err, apperrors.CodeNotFound) && !apperrors.HasCode(err, apperrors.CodeInvalidInput) {
			s.cfg.Log.Warn("Failed to load tour for booking", "tour_id", id, "error", err)
		}
		return nil
	}
	return tour
}

func (s *flowService) whatsAppNumber(ctx context.Context) string {
	if settings := s.contact.Get(ctx); settings != nil && settings.WhatsApp != "" {
		return settings.WhatsApp
	}
	return s.cfg.WhatsAppNumber
}
