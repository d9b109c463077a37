package service

import (
	"context"
	"errors"

	privatetourserrors "islatours/internal/privatetours/errors"
	"islatours/internal/privatetours/repository"
	"islatours/pkg/config"
	apperrors "islatours/pkg/errors"
	"islatours/pkg/mapper"
	"islatours/pkg/model"
	"islatours/pkg/sanitizer"
	"islatours/pkg/storage"
	"islatours/pkg/validator"
)

type PrivateTourService interface {
	// List returns active tours only and never fails.
	List(ctx context.Context) []model.PrivateTour
	// Get hides inactive tours from the public.
	Get(ctx context.Context, id string) (*model.PrivateTour, error)

	AdminList(ctx context.Context) ([]*model.PrivateTourRecord, error)
	AdminGet(ctx context.Context, id string) (*model.PrivateTourRecord, error)
	Save(ctx context.Context, tour *model.PrivateTourRecord, files *storage.SaveRequest) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type privateTourService struct {
	repo      repository.PrivateTourRepository
	files     *storage.Files
	validator *validator.Validator
	cfg       *config.Config
}

func NewPrivateTourService(repo repository.PrivateTourRepository, files *storage.Files, v *validator.Validator, cfg *config.Config) PrivateTourService {
	return &privateTourService{
		repo:      repo,
		files:     files,
		validator: v,
		cfg:       cfg,
	}
}

func (s *privateTourService) List(ctx context.Context) []model.PrivateTour {
	records, err := s.repo.FindAll(ctx, true)
	if err != nil {
		s.cfg.Log.Error("Failed to load private tours", "error", err)
		return []model.PrivateTour{}
	}
	return mapper.PrivateTours(records)
}

func (s *privateTourService) Get(ctx context.Context, id string) (*model.PrivateTour, error) {
	record, err := s.AdminGet(ctx, id)
	if err != nil {
		return nil, err
	}
	if !record.Active {
		return nil, apperrors.NotFoundWithID("Private tour", id)
	}
	tour := mapper.PrivateTour(record)
	return &tour, nil
}

func (s *privateTourService) AdminList(ctx context.Context) ([]*model.PrivateTourRecord, error) {
	records, err := s.repo.FindAll(ctx, false)
	if err != nil {
		s.cfg.Log.Error("Failed to load private tours", "error", err)
		return nil, apperrors.Internal("Failed to retrieve private tours", err)
	}
	return records, nil
}

func (s *privateTourService) AdminGet(ctx context.Context, id string) (*model.PrivateTourRecord, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Private tour ID cannot be empty")
	}
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapError(err, id, "Failed to retrieve private tour")
	}
	return record, nil
}

func (s *privateTourService) Save(ctx context.Context, tour *model.PrivateTourRecord, files *storage.SaveRequest) error {
	if files == nil {
		files = &storage.SaveRequest{}
	}
	sanitizer.SanitizePrivateTour(tour)
	if err := s.validator.Validate(tour); err != nil {
		s.cfg.Log.Warn("Private tour validation failed", "name", tour.Name, "error", err)
		return validator.AppError("Private tour validation failed", err)
	}

	var stored []model.FileSlot
	write := func() error { return s.repo.Create(ctx, tour) }
	if tour.ID != "" {
		existing, err := s.repo.FindByID(ctx, tour.ID)
		if err != nil {
			return mapError(err, tour.ID, "Failed to check private tour existence")
		}
		tour.CreatedAt = existing.CreatedAt
		stored = existing.FileSlots()
		write = func() error { return s.repo.Replace(ctx, tour) }
	}

	if err := s.files.Save(ctx, stored, tour.FileSlots(), files.Uploads, files.Clear, write); err != nil {
		if apperrors.IsAppError(err) {
			return err
		}
		s.cfg.Log.Error("Failed to save private tour", "id", tour.ID, "name", tour.Name, "error", err)
		return mapError(err, tour.ID, "Failed to save private tour")
	}

	s.cfg.Log.Info("Private tour saved", "id", tour.ID, "name", tour.Name)
	return nil
}

func (s *privateTourService) Delete(ctx context.Context, id string) error {
	tour, err := s.AdminGet(ctx, id)
	if err != nil {
		return err
	}

	if errs := s.files.RemoveAll(ctx, tour.FileSlots()); len(errs) > 0 {
		s.cfg.Log.Warn("Some private tour images could not be removed", "id", id, "failed", len(errs))
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.cfg.Log.Error("Failed to delete private tour", "id", id, "error", err)
		return mapError(err, id, "Failed to delete private tour")
	}

	s.cfg.Log.Info("Private tour deleted", "id", id, "name", tour.Name)
	return nil
}

func (s *privateTourService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func mapError(err error, id, msg string) error {
	switch {
	case errors.Is(err, privatetourserrors.ErrNotFound):
		return apperrors.NotFoundWithID("Private tour", id)
	case errors.Is(err, privatetourserrors.ErrOptionNotFound):
		return apperrors.NotFoundWithID("Tour option", id)
	case errors.Is(err, privatetourserrors.ErrBookingNotFound):
		return apperrors.NotFoundWithID("Booking", id)
	case errors.Is(err, privatetourserrors.ErrInvalidID):
		return apperrors.InvalidInput("Invalid ID format")
	default:
		return apperrors.Internal(msg, err)
	}
}
