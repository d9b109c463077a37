package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"islatours/pkg/carousel"
	"islatours/pkg/config"
	apperrors "islatours/pkg/errors"
	"islatours/pkg/i18n"
	"islatours/pkg/mapper"
	"islatours/pkg/markdown"
	"islatours/pkg/model"
	"islatours/pkg/whatsapp"

	"github.com/skip2/go-qrcode"
)

const QRCodePath = "/api/v1/contact/qr.png"

type TourLister interface {
	List(ctx context.Context) []model.Tour
}

type VideoLister interface {
	List(ctx context.Context) []*model.Video
}

type SettingsGetter interface {
	Get(ctx context.Context) *model.SiteSettings
}

// Counter reports the size of one admin collection.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// CounterFunc adapts a plain function to Counter.
type CounterFunc func(ctx context.Context) (int64, error)

func (f CounterFunc) Count(ctx context.Context) (int64, error) { return f(ctx) }

type SiteService interface {
	// Home, Contact and Policy back public pages and never fail.
	Home(ctx context.Context) *model.HomePage
	Contact(ctx context.Context) *model.ContactInfo
	ContactQR(ctx context.Context) ([]byte, error)
	Policy(lang string) *model.Policy
	// Translations falls back to the default language for unknown codes.
	Translations(lang string) (string, map[string]string)
	Categories(kind string) ([]model.Category, error)

	// ControlHero answers a viewer's pause or navigation without touching
	// the shared rotation.
	ControlHero(ctl model.HeroControl) (model.HeroState, error)

	Dashboard(ctx context.Context) *model.Dashboard
}

type siteService struct {
	tours    TourLister
	videos   VideoLister
	settings SettingsGetter
	hero     *Hero
	counters map[string]Counter
	cfg      *config.Config
	now      func() time.Time
}

func NewSiteService(tours TourLister, videos VideoLister, settings SettingsGetter, hero *Hero, counters map[string]Counter, cfg *config.Config) SiteService {
	return &siteService{
		tours:    tours,
		videos:   videos,
		settings: settings,
		hero:     hero,
		counters: counters,
		cfg:      cfg,
		now:      time.Now,
	}
}

func (s *siteService) Home(ctx context.Context) *model.HomePage {
	return &model.HomePage{
		Settings: s.settings.Get(ctx),
		Hero:     s.hero.State(),
		Marquee:  carousel.Loop(mapper.ExperienceCards(s.tours.List(ctx))),
		Videos:   s.videos.List(ctx),
	}
}

func (s *siteService) Contact(ctx context.Context) *model.ContactInfo {
	settings := s.settings.Get(ctx)
	return &model.ContactInfo{
		Settings:    settings,
		WhatsAppURL: whatsapp.Link(s.whatsAppNumber(settings), ""),
		QRCodeURL:   QRCodePath,
	}
}

// ContactQR encodes the WhatsApp chat link as a PNG.
func (s *siteService) ContactQR(ctx context.Context) ([]byte, error) {
	link := whatsapp.Link(s.whatsAppNumber(s.settings.Get(ctx)), "")
	png, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		s.cfg.Log.Error("Failed to encode contact QR code", "error", err)
		return nil, apperrors.Internal("Failed to generate QR code", err)
	}
	return png, nil
}

func (s *siteService) whatsAppNumber(settings *model.SiteSettings) string {
	if settings != nil && settings.WhatsApp != "" {
		return settings.WhatsApp
	}
	return s.cfg.WhatsAppNumber
}

func (s *siteService) Policy(lang string) *model.Policy {
	tr := i18n.New(lang, s.cfg.DefaultLanguage)
	body := tr.T("policy.body")
	return &model.Policy{
		Lang:     tr.Lang(),
		Title:    tr.T("policy.title"),
		Markdown: body,
		HTML:     markdown.ToHTML(body),
	}
}

func (s *siteService) Translations(lang string) (string, map[string]string) {
	tr := i18n.New(lang, s.cfg.DefaultLanguage)
	return tr.Lang(), tr.Table()
}

func (s *siteService) Categories(kind string) ([]model.Category, error) {
	if kind != mapper.KindTour && kind != mapper.KindGallery {
		return nil, apperrors.InvalidInput(fmt.Sprintf("Unknown category kind: %s", kind))
	}
	values := mapper.KnownCategories(kind)
	sort.Strings(values)

	categories := make([]model.Category, 0, len(values))
	for _, v := range values {
		categories = append(categories, mapper.Category(kind, v))
	}
	return categories, nil
}

func (s *siteService) ControlHero(ctl model.HeroControl) (model.HeroState, error) {
	return s.hero.Control(ctl)
}

// Dashboard reports what it can; a failing counter is listed as unavailable.
func (s *siteService) Dashboard(ctx context.Context) *model.Dashboard {
	dashboard := &model.Dashboard{
		Counts:      make(map[string]int64, len(s.counters)),
		GeneratedAt: s.now().UTC(),
	}
	for name, counter := range s.counters {
		n, err := counter.Count(ctx)
		if err != nil {
			s.cfg.Log.Warn("Dashboard count failed", "collection", name, "error", err)
			dashboard.Unavailable = append(dashboard.Unavailable, name)
			continue
		}
		dashboard.Counts[name] = n
	}
	sort.Strings(dashboard.Unavailable)
	return dashboard
}
