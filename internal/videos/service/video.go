package service

import (
	"context"
	"errors"

	videoserrors "islatours/internal/videos/errors"
	"islatours/internal/videos/repository"
	"islatours/pkg/config"
	apperrors "islatours/pkg/errors"
	"islatours/pkg/model"
	"islatours/pkg/sanitizer"
	"islatours/pkg/storage"
	"islatours/pkg/validator"
)

type VideoService interface {
	// List returns active videos for the public pages; load errors yield an empty list.
	List(ctx context.Context) []*model.Video

	AdminList(ctx context.Context) ([]*model.Video, error)
	AdminGet(ctx context.Context, id string) (*model.Video, error)
	Save(ctx context.Context, video *model.Video, files *storage.SaveRequest) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type videoService struct {
	repo      repository.VideoRepository
	files     *storage.Files
	validator *validator.Validator
	cfg       *config.Config
}

func NewVideoService(repo repository.VideoRepository, files *storage.Files, v *validator.Validator, cfg *config.Config) VideoService {
	return &videoService{
		repo:      repo,
		files:     files,
		validator: v,
		cfg:       cfg,
	}
}

func (s *videoService) List(ctx context.Context) []*model.Video {
	videos, err := s.repo.FindAll(ctx, true)
	if err != nil {
		s.cfg.Log.Error("Failed to load videos", "error", err)
		return []*model.Video{}
	}
	playable := videos[:0]
	for _, v := range videos {
		if v.VideoURL != nil && *v.VideoURL != "" {
			playable = append(playable, v)
		}
	}
	return playable
}

func (s *videoService) AdminList(ctx context.Context) ([]*model.Video, error) {
	videos, err := s.repo.FindAll(ctx, false)
	if err != nil {
		s.cfg.Log.Error("Failed to load videos", "error", err)
		return nil, apperrors.Internal("Failed to retrieve videos", err)
	}
	return videos, nil
}

func (s *videoService) AdminGet(ctx context.Context, id string) (*model.Video, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Video ID cannot be empty")
	}
	video, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapError(err, id, "Failed to retrieve video")
	}
	return video, nil
}

func (s *videoService) Save(ctx context.Context, video *model.Video, files *storage.SaveRequest) error {
	if files == nil {
		files = &storage.SaveRequest{}
	}
	sanitizer.SanitizeVideo(video)
	if err := s.validator.Validate(video); err != nil {
		s.cfg.Log.Warn("Video validation failed", "title", video.Title, "error", err)
		return validator.AppError("Video validation failed", err)
	}

	var stored []model.FileSlot
	write := func() error { return s.repo.Create(ctx, video) }
	if video.ID != "" {
		existing, err := s.repo.FindByID(ctx, video.ID)
		if err != nil {
			return s.mapError(err, video.ID, "Failed to check video existence")
		}
		video.CreatedAt = existing.CreatedAt
		stored = existing.FileSlots()
		write = func() error { return s.repo.Replace(ctx, video) }
	}

	if err := s.files.Save(ctx, stored, video.FileSlots(), files.Uploads, files.Clear, write); err != nil {
		if apperrors.IsAppError(err) {
			return err
		}
		s.cfg.Log.Error("Failed to save video", "id", video.ID, "error", err)
		return s.mapError(err, video.ID, "Failed to save video")
	}

	s.cfg.Log.Info("Video saved", "id", video.ID, "title", video.Title)
	return nil
}

func (s *videoService) Delete(ctx context.Context, id string) error {
	video, err := s.AdminGet(ctx, id)
	if err != nil {
		return err
	}

	if errs := s.files.RemoveAll(ctx, video.FileSlots()); len(errs) > 0 {
		s.cfg.Log.Warn("Some video files could not be removed", "id", id, "failed", len(errs))
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.cfg.Log.Error("Failed to delete video", "id", id, "error", err)
		return s.mapError(err, id, "Failed to delete video")
	}

	s.cfg.Log.Info("Video deleted", "id", id)
	return nil
}

func (s *videoService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *videoService) mapError(err error, id, msg string) error {
	switch {
	case errors.Is(err, videoserrors.ErrNotFound):
		return apperrors.NotFoundWithID("Video", id)
	case errors.Is(err, videoserrors.ErrInvalidID):
		return apperrors.InvalidInput("Invalid video ID format")
	default:
		return apperrors.Internal(msg, err)
	}
}
