package service

import (
	"context"
	"sync"
	"time"

	"islatours/pkg/carousel"
	apperrors "islatours/pkg/errors"
	"islatours/pkg/logger"
	"islatours/pkg/model"
)

const (
	HeroPause  = "pause"
	HeroResume = "resume"
)

// SlideSource loads the hero slides.
type SlideSource func(ctx context.Context) []model.HeroSlide

// Hero owns the home page rotation. It runs as an application worker:
// Start loads the slides and schedules the ticker, Stop cancels it.
// Slides are reloaded each time the rotation wraps around, and on every
// interval while none are loaded.
type Hero struct {
	mu      sync.RWMutex
	slides  []model.HeroSlide
	ticker  *carousel.Ticker
	source  SlideSource
	timeout time.Duration
	log     *logger.Logger
}

func NewHero(source SlideSource, interval, timeout time.Duration, log *logger.Logger) *Hero {
	h := &Hero{
		ticker:  carousel.NewTicker(0, interval),
		source:  source,
		timeout: timeout,
		log:     log,
	}
	h.ticker.OnTick(func(s carousel.State) {
		if s.Index == 0 {
			h.Refresh(context.Background())
		}
	})
	h.ticker.OnEmpty(func() { h.Refresh(context.Background()) })
	return h
}

func (h *Hero) Start() {
	h.Refresh(context.Background())
	h.ticker.Start()
	h.log.Info("Hero rotation started", "slides", h.ticker.State().Size)
}

func (h *Hero) Stop() {
	h.ticker.Stop()
	h.log.Info("Hero rotation stopped")
}

// Refresh reloads the slides, keeping the current index when it is still in range.
func (h *Hero) Refresh(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	slides := h.source(ctx)
	h.mu.Lock()
	h.slides = slides
	h.mu.Unlock()
	h.ticker.Resize(len(slides))
}

// Control computes the next state for a single viewer. Pause and manual
// navigation live on the client; the shared rotation is left alone.
func (h *Hero) Control(ctl model.HeroControl) (model.HeroState, error) {
	h.mu.RLock()
	slides := h.slides
	h.mu.RUnlock()

	paused := ctl.Paused
	cursor := carousel.New(len(slides), ctl.Index)
	switch ctl.Action {
	case HeroPause:
		paused = true
	case HeroResume:
		paused = false
	default:
		if _, ok := cursor.Apply(ctl.Action); !ok {
			return model.HeroState{}, apperrors.InvalidInput("Unknown hero action: " + ctl.Action)
		}
	}
	return heroState(slides, cursor.Index(), h.ticker.State().Direction, paused), nil
}

func (h *Hero) State() model.HeroState {
	state := h.ticker.State()

	h.mu.RLock()
	defer h.mu.RUnlock()
	return heroState(h.slides, state.Index, state.Direction, false)
}

func heroState(slides []model.HeroSlide, index, direction int, paused bool) model.HeroState {
	out := model.HeroState{
		Index:     index,
		Total:     len(slides),
		Direction: direction,
		Paused:    paused,
	}
	if index < len(slides) {
		slide := slides[index]
		out.Slide = &slide
	}
	return out
}

// TourSlides turns every tour with an image into a hero slide.
func TourSlides(tours []model.Tour) []model.HeroSlide {
	slides := make([]model.HeroSlide, 0, len(tours))
	for _, t := range tours {
		if t.Image == "" {
			continue
		}
		slides = append(slides, model.HeroSlide{TourID: t.ID, Title: t.Name, Image: t.Image})
	}
	return slides
}
