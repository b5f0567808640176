package services

import (
	"context"
	"errors"
	"log"

	"lablend/internal/adapters/persistence/models"
	"lablend/internal/adapters/persistence/repositories"
	"lablend/internal/core/domain"
	"lablend/internal/core/validation"
	"lablend/internal/pkg/password"

	"gorm.io/gorm"
)

// User errors
var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")
)

// UserService handles user business logic
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// UserInput represents user create/update input
type UserInput struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	MiddleName  string `json:"middle_name"`
	UserType    string `json:"user_type" validate:"required,enum=user_type"`
	Username    string `json:"username" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	PhoneNumber string `json:"phone_number" validate:"digits,min=10"`
	Status      string `json:"status" validate:"required,enum=user_status"`
}

// List lists users, optionally filtered by status. The loan form
// populates its borrower dropdown from List(ctx, "Active").
func (s *UserService) List(ctx context.Context, status string) ([]*models.User, error) {
	return s.userRepo.List(ctx, status)
}

// GetByID gets a user by ID
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// Create creates a new user
func (s *UserService) Create(ctx context.Context, input *UserInput) (*models.User, error) {
	if input.Status == "" {
		input.Status = domain.UserActive
	}
	if fields := validation.Struct(input); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	exists, err = s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		MiddleName:  input.MiddleName,
		UserType:    input.UserType,
		Username:    input.Username,
		Email:       input.Email,
		Password:    hashedPassword,
		PhoneNumber: input.PhoneNumber,
		Status:      input.Status,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("✅ User created: %s (%s)", user.Username, user.UserType)
	return user, nil
}

// Update updates a user. The password is always re-submitted by the
// edit form and re-hashed here.
func (s *UserService) Update(ctx context.Context, id string, input *UserInput) (*models.User, error) {
	if fields := validation.Struct(input); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Username != user.Username {
		exists, err := s.userRepo.ExistsByUsername(ctx, input.Username)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrUsernameTaken
		}
	}
	if input.Email != user.Email {
		exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrEmailTaken
		}
	}

	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.MiddleName = input.MiddleName
	user.UserType = input.UserType
	user.Username = input.Username
	user.Email = input.Email
	user.Password = hashedPassword
	user.PhoneNumber = input.PhoneNumber
	user.Status = input.Status

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Delete deletes a user
func (s *UserService) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}
