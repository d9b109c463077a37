package service

import (
	"fmt"
	"time"

	"islatours/pkg/model"
	"islatours/pkg/validator"
)

const (
	StepTour    = 1
	StepContact = 2
	StepReview  = 3

	// DefaultMaxPeople caps a group when the tour does not set its own limit.
	DefaultMaxPeople = 20
)

// Wizard is the three step booking form. Steps advance strictly one at a
// time and only when every step up to the current one is valid.
type Wizard struct {
	Step int
	Form model.BookingForm

	tour     *model.Tour
	tomorrow string
	check    *validator.Validator
}

// NewWizard binds the form to the tour it books, which may be nil when the
// id did not resolve. tomorrow is the earliest bookable date (YYYY-MM-DD).
func NewWizard(step int, form model.BookingForm, tour *model.Tour, tomorrow string, v *validator.Validator) *Wizard {
	return &Wizard{Step: step, Form: form, tour: tour, tomorrow: tomorrow, check: v}
}

// Next validates and advances. It returns the field errors that kept the
// wizard in place, or nil when it moved on.
func (w *Wizard) Next() map[string]string {
	if fields := w.Validate(w.Step); len(fields) > 0 {
		return fields
	}
	if w.Step < StepReview {
		w.Step++
	}
	return nil
}

// Back never validates.
func (w *Wizard) Back() {
	if w.Step > StepTour {
		w.Step--
	}
}

// Validate checks every step up to and including upTo.
func (w *Wizard) Validate(upTo int) map[string]string {
	fields := map[string]string{}
	if upTo >= StepTour {
		w.validateTour(fields)
	}
	if upTo >= StepContact {
		w.validateContact(fields)
	}
	return fields
}

func (w *Wizard) validateTour(fields map[string]string) {
	f := w.Form
	if f.TourID == "" || w.tour == nil {
		fields["tour_id"] = "Please choose a tour"
	}

	if f.Date == "" {
		fields["date"] = "Please choose a date"
	} else if _, err := time.Parse("2006-01-02", f.Date); err != nil {
		fields["date"] = "Date must be in YYYY-MM-DD format"
	} else if f.Date < w.tomorrow {
		fields["date"] = "Date must be tomorrow or later"
	}

	maxPeople := DefaultMaxPeople
	if w.tour != nil && w.tour.MaxPeople > 0 {
		maxPeople = w.tour.MaxPeople
	}
	if f.People < 1 || f.People > maxPeople {
		fields["people"] = fmt.Sprintf("People must be between 1 and %d", maxPeople)
	}
}

func (w *Wizard) validateContact(fields map[string]string) {
	f := w.Form
	if f.Name == "" {
		fields["name"] = "Name is required"
	}
	if f.Phone == "" {
		fields["phone"] = "Phone is required"
	}
	if f.Email != "" && w.check.Var(f.Email, "email") != nil {
		fields["email"] = "Email address is not valid"
	}
}

// Total is the unit price times the group size.
func Total(unitPrice float64, people int) float64 {
	if people < 0 {
		return 0
	}
	return unitPrice * float64(people)
}
