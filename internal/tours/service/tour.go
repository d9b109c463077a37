package service

import (
	"context"
	"errors"

	tourserrors "islatours/internal/tours/errors"
	"islatours/internal/tours/repository"
	"islatours/pkg/config"
	apperrors "islatours/pkg/errors"
	"islatours/pkg/mapper"
	"islatours/pkg/model"
	"islatours/pkg/sanitizer"
	"islatours/pkg/storage"
	"islatours/pkg/validator"
)

type TourService interface {
	// List backs the public pages and never fails: load errors yield an empty list.
	List(ctx context.Context) []model.Tour
	Get(ctx context.Context, id string) (*model.Tour, error)

	AdminList(ctx context.Context) ([]*model.TourRecord, error)
	AdminGet(ctx context.Context, id string) (*model.TourRecord, error)
	Save(ctx context.Context, tour *model.TourRecord, files *storage.SaveRequest) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type tourService struct {
	repo      repository.TourRepository
	files     *storage.Files
	validator *validator.Validator
	cfg       *config.Config
}

func NewTourService(repo repository.TourRepository, files *storage.Files, v *validator.Validator, cfg *config.Config) TourService {
	return &tourService{
		repo:      repo,
		files:     files,
		validator: v,
		cfg:       cfg,
	}
}

func (s *tourService) List(ctx context.Context) []model.Tour {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to load tours", "error", err)
		return []model.Tour{}
	}
	return mapper.Tours(records)
}

func (s *tourService) Get(ctx context.Context, id string) (*model.Tour, error) {
	record, err := s.AdminGet(ctx, id)
	if err != nil {
		return nil, err
	}
	tour := mapper.Tour(record)
	return &tour, nil
}

func (s *tourService) AdminList(ctx context.Context) ([]*model.TourRecord, error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to load tours", "error", err)
		return nil, apperrors.Internal("Failed to retrieve tours", err)
	}
	return records, nil
}

func (s *tourService) AdminGet(ctx context.Context, id string) (*model.TourRecord, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Tour ID cannot be empty")
	}
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapError(err, id, "Failed to retrieve tour")
	}
	return record, nil
}

// Save updates the tour when it carries an id and inserts it otherwise.
func (s *tourService) Save(ctx context.Context, tour *model.TourRecord, files *storage.SaveRequest) error {
	if files == nil {
		files = &storage.SaveRequest{}
	}
	sanitizer.SanitizeTour(tour)
	if err := s.validator.Validate(tour); err != nil {
		s.cfg.Log.Warn("Tour validation failed", "name", tour.Nombre, "error", err)
		return validator.AppError("Tour validation failed", err)
	}

	var stored []model.FileSlot
	write := func() error { return s.repo.Create(ctx, tour) }
	if tour.ID != "" {
		existing, err := s.repo.FindByID(ctx, tour.ID)
		if err != nil {
			return s.mapError(err, tour.ID, "Failed to check tour existence")
		}
		tour.CreatedAt = existing.CreatedAt
		stored = existing.FileSlots()
		write = func() error { return s.repo.Replace(ctx, tour) }
	}

	if err := s.files.Save(ctx, stored, tour.FileSlots(), files.Uploads, files.Clear, write); err != nil {
		if apperrors.IsAppError(err) {
			return err
		}
		s.cfg.Log.Error("Failed to save tour", "id", tour.ID, "name", tour.Nombre, "error", err)
		return s.mapError(err, tour.ID, "Failed to save tour")
	}

	s.cfg.Log.Info("Tour saved", "id", tour.ID, "name", tour.Nombre)
	return nil
}

// Delete removes the tour's images first. Failed removals are logged and
// never block the row delete.
func (s *tourService) Delete(ctx context.Context, id string) error {
	tour, err := s.AdminGet(ctx, id)
	if err != nil {
		return err
	}

	if errs := s.files.RemoveAll(ctx, tour.FileSlots()); len(errs) > 0 {
		s.cfg.Log.Warn("Some tour images could not be removed", "id", id, "failed", len(errs))
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.cfg.Log.Error("Failed to delete tour", "id", id, "error", err)
		return s.mapError(err, id, "Failed to delete tour")
	}

	s.cfg.Log.Info("Tour deleted", "id", id, "name", tour.Nombre)
	return nil
}

func (s *tourService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *tourService) mapError(err error, id, msg string) error {
	switch {
	case errors.Is(err, tourserrors.ErrNotFound):
		return apperrors.NotFoundWithID("Tour", id)
	case errors.Is(err, tourserrors.ErrInvalidID):
		return apperrors.InvalidInput("Invalid tour ID format")
	default:
		return apperrors.Internal(msg, err)
	}
}
