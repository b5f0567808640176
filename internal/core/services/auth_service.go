package services

import (
	"context"
	"errors"
	"log"

	"lablend/internal/adapters/persistence/models"
	"lablend/internal/adapters/persistence/repositories"
	"lablend/internal/config"
	"lablend/internal/core/domain"
	"lablend/internal/core/validation"
	"lablend/internal/pkg/jwt"
	"lablend/internal/pkg/password"

	"gorm.io/gorm"
)

// AuthService handles admin authentication business logic
type AuthService struct {
	adminRepo repositories.AdminRepository
	cfg       *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(adminRepo repositories.AdminRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		adminRepo: adminRepo,
		cfg:       cfg,
	}
}

// LoginInput represents login input
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileInput represents admin profile update input
type UpdateProfileInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	Admin       *models.Admin `json:"admin"`
	AccessToken string        `json:"access_token"`
}

// Login authenticates an admin and issues an access token.
// A failed login never mutates any session state.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	if fields := validation.Struct(input); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	admin, err := s.adminRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(input.Password, admin.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	accessToken, err := jwt.GenerateAccessToken(
		admin.ID,
		admin.Email,
		admin.Name,
		s.cfg.JWT.Secret,
		s.cfg.JWT.AccessTokenMins,
	)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Admin logged in: %s", admin.Email)

	return &AuthResponse{
		Admin:       admin,
		AccessToken: accessToken,
	}, nil
}

// UpdateProfile updates the authenticated admin's name and email
func (s *AuthService) UpdateProfile(ctx context.Context, adminID uint, input *UpdateProfileInput) (*models.Admin, error) {
	if fields := validation.Struct(input); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAdminNotFound
		}
		return nil, err
	}

	admin.Name = input.Name
	admin.Email = input.Email

	if err := s.adminRepo.Update(ctx, admin); err != nil {
		return nil, err
	}

	log.Printf("✅ Admin profile updated: %s", admin.Email)
	return admin, nil
}

// ValidateAccessToken validates an access token
func (s *AuthService) ValidateAccessToken(accessToken string) (*jwt.Claims, error) {
	return jwt.ValidateAccessToken(accessToken, s.cfg.JWT.Secret)
}
