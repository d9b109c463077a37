package service

import (
	"context"

	"islatours/internal/privatetours/repository"
	"islatours/pkg/config"
	apperrors "islatours/pkg/errors"
	"islatours/pkg/model"
	"islatours/pkg/sanitizer"
	"islatours/pkg/validator"
)

type OptionService interface {
	// List returns active options and never fails.
	List(ctx context.Context) []*model.TourOption
	AdminList(ctx context.Context) ([]*model.TourOption, error)
	Save(ctx context.Context, option *model.TourOption) error
	Delete(ctx context.Context, id string) error
}

type optionService struct {
	repo      repository.OptionRepository
	validator *validator.Validator
	cfg       *config.Config
}

func NewOptionService(repo repository.OptionRepository, v *validator.Validator, cfg *config.Config) OptionService {
	return &optionService{repo: repo, validator: v, cfg: cfg}
}

func (s *optionService) List(ctx context.Context) []*model.TourOption {
	options, err := s.repo.FindAll(ctx, true)
	if err != nil {
		s.cfg.Log.Error("Failed to load tour options", "error", err)
		return []*model.TourOption{}
	}
	return options
}

func (s *optionService) AdminList(ctx context.Context) ([]*model.TourOption, error) {
	options, err := s.repo.FindAll(ctx, false)
	if err != nil {
		s.cfg.Log.Error("Failed to load tour options", "error", err)
		return nil, apperrors.Internal("Failed to retrieve tour options", err)
	}
	return options, nil
}

func (s *optionService) Save(ctx context.Context, option *model.TourOption) error {
	sanitizer.SanitizeOption(option)
	if err := s.validator.Validate(option); err != nil {
		s.cfg.Log.Warn("Tour option validation failed", "name", option.Name, "error", err)
		return validator.AppError("Tour option validation failed", err)
	}

	if option.ID == "" {
		if err := s.repo.Create(ctx, option); err != nil {
			s.cfg.Log.Error("Failed to create tour option", "name", option.Name, "error", err)
			return mapError(err, "", "Failed to create tour option")
		}
	} else {
		if _, err := s.repo.FindByID(ctx, option.ID); err != nil {
			return mapError(err, option.ID, "Failed to check tour option existence")
		}
		if err := s.repo.Replace(ctx, option); err != nil {
			s.cfg.Log.Error("Failed to update tour option", "id", option.ID, "error", err)
			return mapError(err, option.ID, "Failed to update tour option")
		}
	}

	s.cfg.Log.Info("Tour option saved", "id", option.ID, "name", option.Name)
	return nil
}

func (s *optionService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Tour option ID cannot be empty")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.cfg.Log.Error("Failed to delete tour option", "id", id, "error", err)
		return mapError(err, id, "Failed to delete tour option")
	}
	s.cfg.Log.Info("Tour option deleted", "id", id)
	return nil
}
