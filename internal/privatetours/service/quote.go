package service

import (
	"fmt"

	"islatours/pkg/model"
)

// TierPrice picks the per-person rate for the adult headcount (1, 2, 3, 4+).
// An unset tier falls back to the nearest lower tier that is set, then the
// nearest higher one, and finally to zero.
func TierPrice(tour *model.PrivateTourRecord, adults int) float64 {
	tiers := []*float64{tour.Price1Person, tour.Price2Persons, tour.Price3Persons, tour.Price4Persons}
	idx := min(max(adults, 1), len(tiers)) - 1

	for i := idx; i >= 0; i-- {
		if tiers[i] != nil {
			return *tiers[i]
		}
	}
	for i := idx + 1; i < len(tiers); i++ {
		if tiers[i] != nil {
			return *tiers[i]
		}
	}
	return 0
}

// Quote prices a booking: tier rate x adults, child rate x children, plus
// each option's flat price.
func Quote(tour *model.PrivateTourRecord, adults, children int, options []model.TourOption) model.Quote {
	perPerson := TierPrice(tour, adults)
	quote := model.Quote{PerPerson: perPerson, Lines: []model.QuoteLine{}}

	add := func(line model.QuoteLine) {
		quote.Lines = append(quote.Lines, line)
		quote.Total += line.Amount
	}

	if adults > 0 {
		add(model.QuoteLine{
			Label:    fmt.Sprintf("Adults (%d)", adults),
			Quantity: adults,
			Unit:     perPerson,
			Amount:   perPerson * float64(adults),
		})
	}
	if children > 0 {
		child := 0.0
		if tour.PriceChild != nil {
			child = *tour.PriceChild
		}
		add(model.QuoteLine{
			Label:    fmt.Sprintf("Children (%d)", children),
			Quantity: children,
			Unit:     child,
			Amount:   child * float64(children),
		})
	}
	for _, o := range options {
		add(model.QuoteLine{Label: o.Name, Quantity: 1, Unit: o.Price, Amount: o.Price})
	}
	return quote
}
