package service

import (
	"context"
	"errors"

	galleryerrors "islatours/internal/gallery/errors"
	"islatours/internal/gallery/repository"
	"islatours/pkg/carousel"
	"islatours/pkg/config"
	apperrors "islatours/pkg/errors"
	"islatours/pkg/mapper"
	"islatours/pkg/model"
	"islatours/pkg/sanitizer"
	"islatours/pkg/storage"
	"islatours/pkg/validator"
)

type GalleryService interface {
	List(ctx context.Context, category string) []model.GalleryItem
	Get(ctx context.Context, id string) (*model.GalleryItem, error)
	// View applies a lightbox action to the item's image list starting at index.
	View(ctx context.Context, id string, index int, action string) (*model.LightboxView, error)

	AdminList(ctx context.Context) ([]*model.GalleryRecord, error)
	AdminGet(ctx context.Context, id string) (*model.GalleryRecord, error)
	Save(ctx context.Context, item *model.GalleryRecord, files *storage.SaveRequest) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type galleryService struct {
	repo      repository.GalleryRepository
	files     *storage.Files
	validator *validator.Validator
	cfg       *config.Config
}

func NewGalleryService(repo repository.GalleryRepository, files *storage.Files, v *validator.Validator, cfg *config.Config) GalleryService {
	return &galleryService{
		repo:      repo,
		files:     files,
		validator: v,
		cfg:       cfg,
	}
}

func (s *galleryService) List(ctx context.Context, category string) []model.GalleryItem {
	records, err := s.repo.FindAll(ctx, sanitizer.NormalizeCategory(category))
	if err != nil {
		s.cfg.Log.Error("Failed to load gallery", "category", category, "error", err)
		return []model.GalleryItem{}
	}
	return mapper.GalleryItems(records)
}

func (s *galleryService) Get(ctx context.Context, id string) (*model.GalleryItem, error) {
	record, err := s.AdminGet(ctx, id)
	if err != nil {
		return nil, err
	}
	item := mapper.GalleryItem(record)
	return &item, nil
}

func (s *galleryService) View(ctx context.Context, id string, index int, action string) (*model.LightboxView, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	c := carousel.New(len(item.Images), index)
	if _, ok := c.Apply(action); !ok {
		return nil, apperrors.InvalidInput("Unknown viewer action: " + action)
	}

	view := &model.LightboxView{ItemID: item.ID, Index: c.Index(), Total: c.Size()}
	if c.Size() > 0 {
		view.Image = item.Images[c.Index()]
	}
	return view, nil
}

func (s *galleryService) AdminList(ctx context.Context) ([]*model.GalleryRecord, error) {
	records, err := s.repo.FindAll(ctx, "")
	if err != nil {
		s.cfg.Log.Error("Failed to load gallery", "error", err)
		return nil, apperrors.Internal("Failed to retrieve gallery", err)
	}
	return records, nil
}

func (s *galleryService) AdminGet(ctx context.Context, id string) (*model.GalleryRecord, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Gallery item ID cannot be empty")
	}
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapError(err, id, "Failed to retrieve gallery item")
	}
	return record, nil
}

func (s *galleryService) Save(ctx context.Context, item *model.GalleryRecord, files *storage.SaveRequest) error {
	if files == nil {
		files = &storage.SaveRequest{}
	}
	sanitizer.SanitizeGallery(item)
	if err := s.validator.Validate(item); err != nil {
		s.cfg.Log.Warn("Gallery item validation failed", "title", item.Titulo, "error", err)
		return validator.AppError("Gallery item validation failed", err)
	}

	var stored []model.FileSlot
	write := func() error { return s.repo.Create(ctx, item) }
	if item.ID != "" {
		existing, err := s.repo.FindByID(ctx, item.ID)
		if err != nil {
			return s.mapError(err, item.ID, "Failed to check gallery item existence")
		}
		item.CreatedAt = existing.CreatedAt
		stored = existing.FileSlots()
		write = func() error { return s.repo.Replace(ctx, item) }
	}

	if err := s.files.Save(ctx, stored, item.FileSlots(), files.Uploads, files.Clear, write); err != nil {
		if apperrors.IsAppError(err) {
			return err
		}
		s.cfg.Log.Error("Failed to save gallery item", "id", item.ID, "error", err)
		return s.mapError(err, item.ID, "Failed to save gallery item")
	}

	s.cfg.Log.Info("Gallery item saved", "id", item.ID, "title", item.Titulo)
	return nil
}

// Delete issues one blob removal per populated slot, then deletes the row
// even if some removals failed.
func (s *galleryService) Delete(ctx context.Context, id string) error {
	item, err := s.AdminGet(ctx, id)
	if err != nil {
		return err
	}

	if errs := s.files.RemoveAll(ctx, item.FileSlots()); len(errs) > 0 {
		s.cfg.Log.Warn("Some gallery images could not be removed", "id", id, "failed", len(errs))
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.cfg.Log.Error("Failed to delete gallery item", "id", id, "error", err)
		return s.mapError(err, id, "Failed to delete gallery item")
	}

	s.cfg.Log.Info("Gallery item deleted", "id", id)
	return nil
}

func (s *galleryService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *galleryService) mapError(err error, id, msg string) error {
	switch {
	case errors.Is(err, galleryerrors.ErrNotFound):
		return apperrors.NotFoundWithID("Gallery item", id)
	case errors.Is(err, galleryerrors.ErrInvalidID):
		return apperrors.InvalidInput("Invalid gallery item ID format")
	default:
		return apperrors.Internal(msg, err)
	}
}
