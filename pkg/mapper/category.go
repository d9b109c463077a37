package mapper

import (
	"strings"

	"islatours/pkg/model"
)

const (
	KindTour    = "tour"
	KindGallery = "gallery"
)

type categoryStyle struct {
	label string
	color string
}

var defaultCategory = categoryStyle{label: "Adventure", color: "#0ea5e9"}

var categories = map[string]map[string]categoryStyle{
	KindTour: {
		"snorkel":        {"Snorkeling", "#06b6d4"},
		"fishing":        {"Fishing", "#2563eb"},
		"island-hopping": {"Island Hopping", "#10b981"},
		"sunset":         {"Sunset Cruise", "#f97316"},
		"adventure":      {"Adventure", "#0ea5e9"},
		"culture":        {"Culture", "#a855f7"},
	},
	KindGallery: {
		"tours":    {"Tours", "#0ea5e9"},
		"snorkel":  {"Snorkeling", "#06b6d4"},
		"wildlife": {"Wildlife", "#16a34a"},
		"beaches":  {"Beaches", "#eab308"},
		"sunsets":  {"Sunsets", "#f97316"},
		"guests":   {"Our Guests", "#ec4899"},
	},
}

// Category never fails: unknown kinds or values get the default label and color.
func Category(kind, value string) model.Category {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if style, ok := categories[kind][normalized]; ok {
		return model.Category{Value: normalized, Label: style.label, Color: style.color}
	}
	return model.Category{Value: normalized, Label: defaultCategory.label, Color: defaultCategory.color}
}

func KnownCategories(kind string) []string {
	values := make([]string, 0, len(categories[kind]))
	for v := range categories[kind] {
		values = append(values, v)
	}
	return values
}
