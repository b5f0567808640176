package services

import (
	"context"
	"errors"
	"log"

	"lablend/internal/adapters/persistence/models"
	"lablend/internal/adapters/persistence/repositories"
	"lablend/internal/core/domain"
	"lablend/internal/core/validation"

	"gorm.io/gorm"
)

// MaterialService handles material business logic
type MaterialService struct {
	materialRepo repositories.MaterialRepository
}

// NewMaterialService creates a new material service
func NewMaterialService(materialRepo repositories.MaterialRepository) *MaterialService {
	return &MaterialService{materialRepo: materialRepo}
}

// MaterialInput represents material create/update input
type MaterialInput struct {
	MaterialType string `json:"material_type" validate:"required"`
	Brand        string `json:"brand" validate:"required"`
	Model        string `json:"model" validate:"required"`
	Status       string `json:"status" validate:"required,enum=material_status"`
}

// List lists materials, optionally filtered by status
func (s *MaterialService) List(ctx context.Context, status string) ([]*models.Material, error) {
	return s.materialRepo.List(ctx, status)
}

// GetByID gets a material by ID
func (s *MaterialService) GetByID(ctx context.Context, id string) (*models.Material, error) {
	material, err := s.materialRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMaterialNotFound
		}
		return nil, err
	}
	return material, nil
}

// Create creates a new material. Status defaults to Available.
func (s *MaterialService) Create(ctx context.Context, input *MaterialInput) (*models.Material, error) {
	if input.Status == "" {
		input.Status = domain.MaterialAvailable
	}
	if fields := validation.Struct(input); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	material := &models.Material{
		MaterialType: input.MaterialType,
		Brand:        input.Brand,
		Model:        input.Model,
		Status:       input.Status,
	}

	if err := s.materialRepo.Create(ctx, material); err != nil {
		return nil, err
	}

	log.Printf("✅ Material created: %s (%s %s)", material.MaterialType, material.Brand, material.Model)
	return material, nil
}

// Update updates a material. Registration and update dates are
// server-assigned and never taken from the input.
func (s *MaterialService) Update(ctx context.Context, id string, input *MaterialInput) (*models.Material, error) {
	if fields := validation.Struct(input); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	material, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	material.MaterialType = input.MaterialType
	material.Brand = input.Brand
	material.Model = input.Model
	material.Status = input.Status

	if err := s.materialRepo.Update(ctx, material); err != nil {
		return nil, err
	}

	return material, nil
}

// Delete deletes a material. The delete must succeed remotely before
// any caller-visible state changes.
func (s *MaterialService) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.materialRepo.Delete(ctx, id)
}
