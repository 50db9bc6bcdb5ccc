package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/learning-service/internal/models"
	"github.com/SAP-F-2025/learning-service/internal/repositories"
	"github.com/SAP-F-2025/learning-service/internal/validator"
)

type materialService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewMaterialService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) MaterialService {
	return &materialService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

func (s *materialService) CreateMaterialSection(ctx context.Context, req *models.CreateMaterialSectionRequest) (*models.MaterialSection, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, newValidationError(err)
	}

	section := &models.MaterialSection{
		Title:   req.Title,
		Content: req.Content,
		Topic:   req.Topic,
		Order:   req.Order,
	}
	if err := s.repo.Material().Create(ctx, nil, section); err != nil {
		return nil, err
	}

	s.logger.Info("Material section created", "section_id", section.ID, "order", section.Order)
	return section, nil
}

func (s *materialService) ListMaterialSections(ctx context.Context) ([]*models.MaterialSection, error) {
	sections, err := s.repo.Material().List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list material sections: %w", err)
	}
	return sections, nil
}
