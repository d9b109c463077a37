package sanitizer

import (
	"net/url"
	"strings"

	"islatours/pkg/model"
)

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

// SanitizeURL forces an http(s) scheme and lowercases the host. The path and
// query are kept as written since map and social links are case sensitive.
func SanitizeURL(input string) string {
	s := strings.TrimSpace(input)
	if s == "" {
		return ""
	}
	lower := strings.ToLower(s)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		s = "https://" + s
	}

	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return ""
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)

	q := u.Query()
	for k := range q {
		if strings.HasPrefix(strings.ToLower(k), "utm_") {
			q.Del(k)
		}
	}
	u.RawQuery = q.Encode()
	return u.String()
}

var textPipeline = Pipeline{TrimAndNormalize}

func SanitizeTour(r *model.TourRecord) {
	r.Nombre = textPipeline.Apply(r.Nombre)
	r.Descripcion = TrimMultiline(r.Descripcion)
	r.Duracion = textPipeline.Apply(r.Duracion)
	r.Categoria = NormalizeCategory(r.Categoria)
}

func SanitizeGallery(r *model.GalleryRecord) {
	r.Titulo = textPipeline.Apply(r.Titulo)
	r.Descripcion = TrimMultiline(r.Descripcion)
	r.Categoria = NormalizeCategory(r.Categoria)
}

func SanitizeVideo(v *model.Video) {
	v.Title = textPipeline.Apply(v.Title)
	v.Description = TrimMultiline(v.Description)
}

func SanitizeMeetingPoint(m *model.MeetingPoint) {
	m.Title = textPipeline.Apply(m.Title)
	m.Zone = textPipeline.Apply(m.Zone)
	m.Instructions = TrimMultiline(m.Instructions)
	m.MapURL = SanitizeURL(m.MapURL)
}

func SanitizeSettings(s *model.SiteSettings) {
	s.BusinessName = textPipeline.Apply(s.BusinessName)
	if phone := NormalizePhone(s.Phone); phone != "" {
		s.Phone = phone
	}
	if wa := NormalizePhone(s.WhatsApp); wa != "" {
		s.WhatsApp = wa
	}
	s.Email = NormalizeEmail(s.Email)
	s.Address = TrimMultiline(s.Address)
	s.Facebook = SanitizeURL(s.Facebook)
	s.Instagram = SanitizeURL(s.Instagram)
	s.TripAdvisor = SanitizeURL(s.TripAdvisor)
	s.TikTok = SanitizeURL(s.TikTok)
}

func SanitizePrivateTour(r *model.PrivateTourRecord) {
	r.Name = textPipeline.Apply(r.Name)
	r.Description = TrimMultiline(r.Description)
	r.WhatsIncluded = TrimMultiline(r.WhatsIncluded)
	r.Notes = TrimMultiline(r.Notes)
	r.AvailableDays = NormalizeWeekdays(r.AvailableDays)
	r.Activity1 = textPipeline.Apply(r.Activity1)
	r.Activity2 = textPipeline.Apply(r.Activity2)
	r.Activity3 = textPipeline.Apply(r.Activity3)
	r.Activity4 = textPipeline.Apply(r.Activity4)
}

func SanitizeOption(o *model.TourOption) {
	o.Name = textPipeline.Apply(o.Name)
	o.Description = TrimMultiline(o.Description)
}

// SanitizeBooking leaves an unparseable phone untouched so validation can reject it.
func SanitizeBooking(b *model.PrivateTourBooking) {
	b.FirstName = textPipeline.Apply(b.FirstName)
	b.LastName = textPipeline.Apply(b.LastName)
	b.Email = NormalizeEmail(b.Email)
	if phone := NormalizePhone(b.Phone); phone != "" {
		b.Phone = phone
	}
	b.Country = textPipeline.Apply(b.Country)
	b.TourDate = strings.TrimSpace(b.TourDate)
	b.Hotel = textPipeline.Apply(b.Hotel)
	b.Comments = TrimMultiline(b.Comments)
	b.SelectedOptions = NormalizeStringSlice(b.SelectedOptions, strings.TrimSpace)
}

func SanitizeBookingForm(f *model.BookingForm) {
	f.TourID = strings.TrimSpace(f.TourID)
	f.Date = strings.TrimSpace(f.Date)
	f.Name = textPipeline.Apply(f.Name)
	f.Email = NormalizeEmail(f.Email)
	if phone := NormalizePhone(f.Phone); phone != "" {
		f.Phone = phone
	}
	f.SpecialRequests = TrimMultiline(f.SpecialRequests)
}
