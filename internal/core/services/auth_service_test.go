package services

import (
	"context"
	"errors"
	"testing"

	"lablend/internal/adapters/persistence/models"
	"lablend/internal/config"
	"lablend/internal/core/domain"
	"lablend/internal/pkg/password"

	"gorm.io/gorm"
)

type stubAdminRepo struct {
	admins map[uint]*models.Admin
	nextID uint
}

func newStubAdminRepo() *stubAdminRepo {
	return &stubAdminRepo{admins: make(map[uint]*models.Admin), nextID: 1}
}

func (r *stubAdminRepo) Create(_ context.Context, admin *models.Admin) error {
	admin.ID = r.nextID
	r.nextID++
	clone := *admin
	r.admins[admin.ID] = &clone
	return nil
}

func (r *stubAdminRepo) GetByID(_ context.Context, id uint) (*models.Admin, error) {
	admin, ok := r.admins[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *admin
	return &clone, nil
}

func (r *stubAdminRepo) GetByEmail(_ context.Context, email string) (*models.Admin, error) {
	for _, admin := range r.admins {
		if admin.Email == email {
			clone := *admin
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubAdminRepo) Update(_ context.Context, admin *models.Admin) error {
	if _, ok := r.admins[admin.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	clone := *admin
	r.admins[admin.ID] = &clone
	return nil
}

func (r *stubAdminRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.admins)), nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", AccessTokenMins: 60},
	}
}

func seedAdmin(t *testing.T, repo *stubAdminRepo) *models.Admin {
	t.Helper()
	hash, err := password.Hash("admin123")
	if err != nil {
		t.Fatalf("hashing failed: %v", err)
	}
	admin := &models.Admin{Name: "Administrador", Email: "admin@example.com", Password: hash}
	if err := repo.Create(context.Background(), admin); err != nil {
		t.Fatalf("seeding failed: %v", err)
	}
	return admin
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAdminRepo()
	admin := seedAdmin(t, repo)
	svc := NewAuthService(repo, testConfig())

	resp, err := svc.Login(context.Background(), &LoginInput{
		Email:    "admin@example.com",
		Password: "admin123",
	})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if resp.AccessToken == "" {
		t.Errorf("expected access token, got empty string")
	}
	if resp.Admin == nil || resp.Admin.ID != admin.ID {
		t.Errorf("unexpected admin in response: %+v", resp.Admin)
	}

	claims, err := svc.ValidateAccessToken(resp.AccessToken)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.Email != "admin@example.com" {
		t.Errorf("unexpected email claim: %s", claims.Email)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubAdminRepo()
	seedAdmin(t, repo)
	svc := NewAuthService(repo, testConfig())

	_, err := svc.Login(context.Background(), &LoginInput{
		Email:    "admin@example.com",
		Password: "wrong",
	})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	// An unknown account and a wrong password are indistinguishable.
	repo := newStubAdminRepo()
	svc := NewAuthService(repo, testConfig())

	_, err := svc.Login(context.Background(), &LoginInput{
		Email:    "ghost@example.com",
		Password: "admin123",
	})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_Validation(t *testing.T) {
	repo := newStubAdminRepo()
	svc := NewAuthService(repo, testConfig())

	_, err := svc.Login(context.Background(), &LoginInput{Email: "not-an-email"})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Fields["email"] != "Correo inválido" {
		t.Errorf("got %q, want %q", ve.Fields["email"], "Correo inválido")
	}
	if ve.Fields["password"] != "La contraseña es obligatoria" {
		t.Errorf("got %q, want %q", ve.Fields["password"], "La contraseña es obligatoria")
	}
}

func TestAuthService_UpdateProfile(t *testing.T) {
	repo := newStubAdminRepo()
	admin := seedAdmin(t, repo)
	svc := NewAuthService(repo, testConfig())

	updated, err := svc.UpdateProfile(context.Background(), admin.ID, &UpdateProfileInput{
		Name:  "Nuevo Nombre",
		Email: "nuevo@example.com",
	})
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
	if updated.Name != "Nuevo Nombre" || updated.Email != "nuevo@example.com" {
		t.Errorf("profile not updated: %+v", updated)
	}

	stored, err := repo.GetByID(context.Background(), admin.ID)
	if err != nil {
		t.Fatalf("stored admin not found: %v", err)
	}
	if stored.Email != "nuevo@example.com" {
		t.Errorf("update not persisted: %s", stored.Email)
	}
}

func TestAuthService_UpdateProfile_NotFound(t *testing.T) {
	repo := newStubAdminRepo()
	svc := NewAuthService(repo, testConfig())

	_, err := svc.UpdateProfile(context.Background(), 99, &UpdateProfileInput{
		Name:  "Nombre",
		Email: "admin@example.com",
	})
	if !errors.Is(err, domain.ErrAdminNotFound) {
		t.Fatalf("expected ErrAdminNotFound, got %v", err)
	}
}
