package service

import (
	"context"
	"errors"
	"time"

	settingserrors "islatours/internal/settings/errors"
	"islatours/internal/settings/repository"
	"islatours/pkg/config"
	apperrors "islatours/pkg/errors"
	"islatours/pkg/model"
	"islatours/pkg/sanitizer"
	"islatours/pkg/storage"
	"islatours/pkg/validator"
)

const DefaultBusinessName = "Isla Tours Roatán"

type SettingsService interface {
	// Get never fails: a missing row or a load error yields the defaults.
	Get(ctx context.Context) *model.SiteSettings
	Save(ctx context.Context, settings *model.SiteSettings, files *storage.SaveRequest) error
}

type settingsService struct {
	repo      repository.SettingsRepository
	files     *storage.Files
	validator *validator.Validator
	cfg       *config.Config
	now       func() time.Time
}

func NewSettingsService(repo repository.SettingsRepository, files *storage.Files, v *validator.Validator, cfg *config.Config) SettingsService {
	return &settingsService{
		repo:      repo,
		files:     files,
		validator: v,
		cfg:       cfg,
		now:       time.Now,
	}
}

func (s *settingsService) defaults() *model.SiteSettings {
	return &model.SiteSettings{
		BusinessName: DefaultBusinessName,
		WhatsApp:     s.cfg.WhatsAppNumber,
		Phone:        s.cfg.WhatsAppNumber,
	}
}

func (s *settingsService) Get(ctx context.Context) *model.SiteSettings {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		if !errors.Is(err, settingserrors.ErrNotFound) {
			s.cfg.Log.Error("Failed to load site settings", "error", err)
		}
		return s.defaults()
	}
	if settings.WhatsApp == "" {
		settings.WhatsApp = s.cfg.WhatsAppNumber
	}
	return settings
}

// Save upserts the singleton row. The id in the request is ignored.
func (s *settingsService) Save(ctx context.Context, settings *model.SiteSettings, files *storage.SaveRequest) error {
	if files == nil {
		files = &storage.SaveRequest{}
	}
	sanitizer.SanitizeSettings(settings)
	if err := s.validator.Validate(settings); err != nil {
		s.cfg.Log.Warn("Site settings validation failed", "error", err)
		return validator.AppError("Site settings validation failed", err)
	}

	existing, err := s.repo.Get(ctx)
	if err != nil && !errors.Is(err, settingserrors.ErrNotFound) {
		s.cfg.Log.Error("Failed to load site settings", "error", err)
		return apperrors.Internal("Failed to load site settings", err)
	}

	settings.UpdatedAt = s.now().UTC()
	var stored []model.FileSlot
	write := func() error { return s.repo.Create(ctx, settings) }
	if existing != nil {
		settings.ID = existing.ID
		stored = existing.FileSlots()
		write = func() error { return s.repo.Replace(ctx, settings) }
	} else {
		settings.ID = ""
	}

	if err := s.files.Save(ctx, stored, settings.FileSlots(), files.Uploads, files.Clear, write); err != nil {
		if apperrors.IsAppError(err) {
			return err
		}
		s.cfg.Log.Error("Failed to save site settings", "error", err)
		return apperrors.Internal("Failed to save site settings", err)
	}

	s.cfg.Log.Info("Site settings saved", "id", settings.ID)
	return nil
}
