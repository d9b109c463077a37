package service

import (
	"context"
	"errors"

	meetingpointserrors "islatours/internal/meetingpoints/errors"
	"islatours/internal/meetingpoints/repository"
	"islatours/pkg/config"
	apperrors "islatours/pkg/errors"
	"islatours/pkg/model"
	"islatours/pkg/sanitizer"
	"islatours/pkg/validator"
)

type MeetingPointService interface {
	List(ctx context.Context) []*model.MeetingPoint

	AdminList(ctx context.Context) ([]*model.MeetingPoint, error)
	AdminGet(ctx context.Context, id string) (*model.MeetingPoint, error)
	Save(ctx context.Context, point *model.MeetingPoint) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type meetingPointService struct {
	repo      repository.MeetingPointRepository
	validator *validator.Validator
	cfg       *config.Config
}

func NewMeetingPointService(repo repository.MeetingPointRepository, v *validator.Validator, cfg *config.Config) MeetingPointService {
	return &meetingPointService{
		repo:      repo,
		validator: v,
		cfg:       cfg,
	}
}

func (s *meetingPointService) List(ctx context.Context) []*model.MeetingPoint {
	points, err := s.repo.FindAll(ctx, true)
	if err != nil {
		s.cfg.Log.Error("Failed to load meeting points", "error", err)
		return []*model.MeetingPoint{}
	}
	return points
}

func (s *meetingPointService) AdminList(ctx context.Context) ([]*model.MeetingPoint, error) {
	points, err := s.repo.FindAll(ctx, false)
	if err != nil {
		s.cfg.Log.Error("Failed to load meeting points", "error", err)
		return nil, apperrors.Internal("Failed to retrieve meeting points", err)
	}
	return points, nil
}

func (s *meetingPointService) AdminGet(ctx context.Context, id string) (*model.MeetingPoint, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Meeting point ID cannot be empty")
	}
	point, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapError(err, id, "Failed to retrieve meeting point")
	}
	return point, nil
}

func (s *meetingPointService) Save(ctx context.Context, point *model.MeetingPoint) error {
	sanitizer.SanitizeMeetingPoint(point)
	if err := s.validator.Validate(point); err != nil {
		s.cfg.Log.Warn("Meeting point validation failed", "title", point.Title, "error", err)
		return validator.AppError("Meeting point validation failed", err)
	}

	var err error
	if point.ID == "" {
		err = s.repo.Create(ctx, point)
	} else {
		err = s.repo.Replace(ctx, point)
	}
	if err != nil {
		s.cfg.Log.Error("Failed to save meeting point", "id", point.ID, "error", err)
		return s.mapError(err, point.ID, "Failed to save meeting point")
	}

	s.cfg.Log.Info("Meeting point saved", "id", point.ID, "title", point.Title)
	return nil
}

func (s *meetingPointService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Meeting point ID cannot be empty")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.cfg.Log.Error("Failed to delete meeting point", "id", id, "error", err)
		return s.mapError(err, id, "Failed to delete meeting point")
	}
	s.cfg.Log.Info("Meeting point deleted", "id", id)
	return nil
}

func (s *meetingPointService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *meetingPointService) mapError(err error, id, msg string) error {
	switch {
	case errors.Is(err, meetingpointserrors.ErrNotFound):
		return apperrors.NotFoundWithID("Meeting point", id)
	case errors.Is(err, meetingpointserrors.ErrInvalidID):
		return apperrors.InvalidInput("Invalid meeting point ID format")
	default:
		return apperrors.Internal(msg, err)
	}
}
