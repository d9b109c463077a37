package mapper

import (
	"encoding/json"
	"strings"

	"islatours/pkg/markdown"
	"islatours/pkg/model"
)

func FirstImage(slots ...*string) string {
	for _, s := range slots {
		if s != nil && strings.TrimSpace(*s) != "" {
			return strings.TrimSpace(*s)
		}
	}
	return ""
}

// FilterImages drops nil and blank slots, keeping column order.
func FilterImages(slots ...*string) []string {
	images := []string{}
	for _, s := range slots {
		if s != nil && strings.TrimSpace(*s) != "" {
			images = append(images, strings.TrimSpace(*s))
		}
	}
	return images
}

// ParseIncluded returns nil for a missing, malformed or non-array value.
func ParseIncluded(raw *string) []string {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil
	}
	var items []any
	if err := json.Unmarshal([]byte(*raw), &items); err != nil {
		return nil
	}
	included := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			included = append(included, s)
		}
	}
	return included
}

func ResolvePrice(perPerson, generic *float64) float64 {
	if perPerson != nil {
		return *perPerson
	}
	if generic != nil {
		return *generic
	}
	return 0
}

func Tour(r *model.TourRecord) model.Tour {
	slots := model.SlotValues(r.FileSlots())
	return model.Tour{
		ID:              r.ID,
		Name:            r.Nombre,
		Description:     r.Descripcion,
		DescriptionHTML: markdown.ToHTML(r.Descripcion),
		Price:           ResolvePrice(r.PrecioPorPersona, r.Price),
		Image:           FirstImage(slots...),
		Images:          FilterImages(slots...),
		Duration:        r.Duracion,
		Included:        ParseIncluded(r.Incluye),
		Category:        Category(KindTour, r.Categoria),
		MaxPeople:       r.MaxPersonas,
	}
}

func Tours(records []*model.TourRecord) []model.Tour {
	tours := make([]model.Tour, 0, len(records))
	for _, r := range records {
		if r == nil {
			continue
		}
		tours = append(tours, Tour(r))
	}
	return tours
}

func ExperienceCard(t model.Tour) model.ExperienceCard {
	return model.ExperienceCard{
		ID:       t.ID,
		Title:    t.Name,
		Image:    t.Image,
		Price:    t.Price,
		Duration: t.Duration,
		Category: t.Category,
	}
}

func ExperienceCards(tours []model.Tour) []model.ExperienceCard {
	cards := make([]model.ExperienceCard, len(tours))
	for i, t := range tours {
		cards[i] = ExperienceCard(t)
	}
	return cards
}

func GalleryItem(r *model.GalleryRecord) model.GalleryItem {
	slots := model.SlotValues(r.FileSlots())
	return model.GalleryItem{
		ID:          r.ID,
		Title:       r.Titulo,
		Description: r.Descripcion,
		Cover:       FirstImage(slots...),
		Images:      FilterImages(slots...),
		Category:    Category(KindGallery, r.Categoria),
	}
}

func GalleryItems(records []*model.GalleryRecord) []model.GalleryItem {
	items := make([]model.GalleryItem, 0, len(records))
	for _, r := range records {
		if r == nil {
			continue
		}
		items = append(items, GalleryItem(r))
	}
	return items
}

func PrivateTour(r *model.PrivateTourRecord) model.PrivateTour {
	slots := model.SlotValues(r.FileSlots())
	activities := []string{}
	for _, a := range []string{r.Activity1, r.Activity2, r.Activity3, r.Activity4} {
		if a = strings.TrimSpace(a); a != "" {
			activities = append(activities, a)
		}
	}
	days := r.AvailableDays
	if days == nil {
		days = []string{}
	}
	return model.PrivateTour{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Prices: model.PriceTiers{
			OnePerson:    ResolvePrice(r.Price1Person, nil),
			TwoPersons:   ResolvePrice(r.Price2Persons, nil),
			ThreePersons: ResolvePrice(r.Price3Persons, nil),
			FourPersons:  ResolvePrice(r.Price4Persons, nil),
			Child:        ResolvePrice(r.PriceChild, nil),
		},
		Image:          FirstImage(slots...),
		Images:         FilterImages(slots...),
		WhatsIncluded:  splitLines(r.WhatsIncluded),
		Notes:          r.Notes,
		AvailableDays:  days,
		Activities:     activities,
		BookingOptions: r.BookingOptions,
		Active:         r.Active,
	}
}

func PrivateTours(records []*model.PrivateTourRecord) []model.PrivateTour {
	tours := make([]model.PrivateTour, 0, len(records))
	for _, r := range records {
		if r == nil {
			continue
		}
		tours = append(tours, PrivateTour(r))
	}
	return tours
}

// splitLines turns a free-text list into items, stripping common bullet markers.
func splitLines(text string) []string {
	lines := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-*•"))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
