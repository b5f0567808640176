package repositories

import (
	"context"
	"time"

	"lablend/internal/adapters/persistence/models"
	"lablend/internal/core/domain"

	"gorm.io/gorm"
)

// loanRepository implements LoanRepository interface
type loanRepository struct {
	db *gorm.DB
}

// NewLoanRepository creates a new loan repository
func NewLoanRepository(db *gorm.DB) LoanRepository {
	return &loanRepository{db: db}
}

// Create creates a new loan
func (r *loanRepository) Create(ctx context.Context, loan *models.Loan) error {
	return r.db.WithContext(ctx).Create(loan).Error
}

// GetByID gets a loan by ID with its user and material
func (r *loanRepository) GetByID(ctx context.Context, id string) (*models.Loan, error) {
	var loan models.Loan
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Material").
		Where("loan_id = ?", id).
		First(&loan).Error
	if err != nil {
		return nil, err
	}
	return &loan, nil
}

// Update updates a loan
func (r *loanRepository) Update(ctx context.Context, loan *models.Loan) error {
	return r.db.WithContext(ctx).Save(loan).Error
}

// Delete soft deletes a loan
func (r *loanRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("loan_id = ?", id).Delete(&models.Loan{}).Error
}

// List lists all loans with their users and materials.
// The whole collection is returned; pagination happens client-side.
func (r *loanRepository) List(ctx context.Context) ([]*models.Loan, error) {
	var loans []*models.Loan
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Material").
		Order("loan_date DESC").
		Find(&loans).Error
	if err != nil {
		return nil, err
	}
	return loans, nil
}

// MarkOverdue transitions Active loans whose return date has passed to Overdue.
// Returns the number of loans affected.
func (r *loanRepository) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Loan{}).
		Where("loan_status = ? AND return_date < ?", domain.LoanActive, now).
		Update("loan_status", domain.LoanOverdue)
	return result.RowsAffected, result.Error
}
