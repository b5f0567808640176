package repositories

import (
	"context"

	"lablend/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// materialRepository implements MaterialRepository interface
type materialRepository struct {
	db *gorm.DB
}

// NewMaterialRepository creates a new material repository
func NewMaterialRepository(db *gorm.DB) MaterialRepository {
	return &materialRepository{db: db}
}

// Create creates a new material
func (r *materialRepository) Create(ctx context.Context, material *models.Material) error {
	return r.db.WithContext(ctx).Create(material).Error
}

// GetByID gets a material by ID
func (r *materialRepository) GetByID(ctx context.Context, id string) (*models.Material, error) {
	var material models.Material
	err := r.db.WithContext(ctx).Where("material_id = ?", id).First(&material).Error
	if err != nil {
		return nil, err
	}
	return &material, nil
}

// Update updates a material
func (r *materialRepository) Update(ctx context.Context, material *models.Material) error {
	return r.db.WithContext(ctx).Save(material).Error
}

// UpdateStatus updates only the status column of a material
func (r *materialRepository) UpdateStatus(ctx context.Context, id, status string) error {
	return r.db.WithContext(ctx).
		Model(&models.Material{}).
		Where("material_id = ?", id).
		Update("status", status).Error
}

// Delete soft deletes a material
func (r *materialRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("material_id = ?", id).Delete(&models.Material{}).Error
}

// List lists materials, optionally filtered by status.
// The whole collection is returned; pagination happens client-side.
func (r *materialRepository) List(ctx context.Context, status string) ([]*models.Material, error) {
	var materials []*models.Material
	query := r.db.WithContext(ctx).Order("registration_date DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&materials).Error; err != nil {
		return nil, err
	}
	return materials, nil
}
