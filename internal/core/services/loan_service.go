package services

import (
	"context"
	"errors"
	"log"
	"time"

	"lablend/internal/adapters/persistence/models"
	"lablend/internal/adapters/persistence/repositories"
	"lablend/internal/core/domain"
	"lablend/internal/core/validation"

	"gorm.io/gorm"
)

// LoanService handles loan lifecycle business logic
type LoanService struct {
	loanRepo     repositories.LoanRepository
	userRepo     repositories.UserRepository
	materialRepo repositories.MaterialRepository
}

// NewLoanService creates a new loan service
func NewLoanService(
	loanRepo repositories.LoanRepository,
	userRepo repositories.UserRepository,
	materialRepo repositories.MaterialRepository,
) *LoanService {
	return &LoanService{
		loanRepo:     loanRepo,
		userRepo:     userRepo,
		materialRepo: materialRepo,
	}
}

// LoanInput represents loan create/update input. The loan date sent by
// the client is ignored: it is stamped server-side at creation.
type LoanInput struct {
	UserID     string    `json:"user_id" validate:"required"`
	MaterialID string    `json:"material_id" validate:"required"`
	LoanDate   time.Time `json:"loan_date"`
	ReturnDate time.Time `json:"return_date" validate:"required,aftertomorrow"`
	LoanStatus string    `json:"loan_status" validate:"required,enum=loan_status"`
}

// List lists all loans with their users and materials
func (s *LoanService) List(ctx context.Context) ([]*models.Loan, error) {
	return s.loanRepo.List(ctx)
}

// GetByID gets a loan by ID
func (s *LoanService) GetByID(ctx context.Context, id string) (*models.Loan, error) {
	loan, err := s.loanRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLoanNotFound
		}
		return nil, err
	}
	return loan, nil
}

// Create registers a new loan. loan_date is stamped with the current
// time, the referenced user and material must exist, and the material
// is marked Borrowed once the loan is persisted.
func (s *LoanService) Create(ctx context.Context, input *LoanInput) (*models.Loan, error) {
	if input.LoanStatus == "" {
		input.LoanStatus = domain.LoanActive
	}
	if fields := validation.Struct(input); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	if _, err := s.userRepo.GetByID(ctx, input.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	if _, err := s.materialRepo.GetByID(ctx, input.MaterialID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMaterialNotFound
		}
		return nil, err
	}

	loan := &models.Loan{
		UserID:     input.UserID,
		MaterialID: input.MaterialID,
		LoanDate:   time.Now(),
		ReturnDate: input.ReturnDate,
		LoanStatus: input.LoanStatus,
	}

	if err := s.loanRepo.Create(ctx, loan); err != nil {
		return nil, err
	}

	if err := s.materialRepo.UpdateStatus(ctx, loan.MaterialID, domain.MaterialBorrowed); err != nil {
		log.Printf("⚠️ Failed to mark material %s as borrowed: %v", loan.MaterialID, err)
	}

	log.Printf("✅ Loan created: %s (user %s, material %s)", loan.LoanID, loan.UserID, loan.MaterialID)
	return s.GetByID(ctx, loan.LoanID)
}

// Update updates a loan. The referenced user and material must exist.
// Swapping the material mid-loan frees the old one and borrows the new
// one; transitioning the status to Returned frees the material back to
// Available.
func (s *LoanService) Update(ctx context.Context, id string, input *LoanInput) (*models.Loan, error) {
	if fields := validation.Struct(input); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	loan, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByID(ctx, input.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	if _, err := s.materialRepo.GetByID(ctx, input.MaterialID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMaterialNotFound
		}
		return nil, err
	}

	previousMaterial := loan.MaterialID
	returned := loan.LoanStatus != domain.LoanReturned && input.LoanStatus == domain.LoanReturned

	loan.UserID = input.UserID
	loan.MaterialID = input.MaterialID
	loan.ReturnDate = input.ReturnDate
	loan.LoanStatus = input.LoanStatus
	loan.User = nil
	loan.Material = nil

	if err := s.loanRepo.Update(ctx, loan); err != nil {
		return nil, err
	}

	if previousMaterial != loan.MaterialID {
		if err := s.materialRepo.UpdateStatus(ctx, previousMaterial, domain.MaterialAvailable); err != nil {
			log.Printf("⚠️ Failed to free material %s: %v", previousMaterial, err)
		}
		if input.LoanStatus != domain.LoanReturned {
			if err := s.materialRepo.UpdateStatus(ctx, loan.MaterialID, domain.MaterialBorrowed); err != nil {
				log.Printf("⚠️ Failed to mark material %s as borrowed: %v", loan.MaterialID, err)
			}
		}
	}
	if returned {
		if err := s.materialRepo.UpdateStatus(ctx, loan.MaterialID, domain.MaterialAvailable); err != nil {
			log.Printf("⚠️ Failed to free material %s: %v", loan.MaterialID, err)
		}
	}

	return s.GetByID(ctx, id)
}

// Delete deletes a loan
func (s *LoanService) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.loanRepo.Delete(ctx, id)
}

// MarkOverdue transitions Active loans past their return date to Overdue
func (s *LoanService) MarkOverdue(ctx context.Context) (int64, error) {
	return s.loanRepo.MarkOverdue(ctx, time.Now())
}
