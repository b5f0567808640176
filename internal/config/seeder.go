package config

import (
	"context"
	"log"

	"lablend/internal/adapters/persistence/models"
	"lablend/internal/adapters/persistence/repositories"
	"lablend/internal/pkg/password"

	"gorm.io/gorm"
)

// SeedAdmin creates the default admin account if no admin exists yet.
// Credentials come from ADMIN_NAME / ADMIN_EMAIL / ADMIN_PASSWORD.
func SeedAdmin(db *gorm.DB, cfg *Config) error {
	return seedAdmin(context.Background(), repositories.NewAdminRepository(db), cfg)
}

func seedAdmin(ctx context.Context, adminRepo repositories.AdminRepository, cfg *Config) error {
	count, err := adminRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashedPassword, err := password.Hash(cfg.Admin.Password)
	if err != nil {
		return err
	}

	admin := &models.Admin{
		Name:     cfg.Admin.Name,
		Email:    cfg.Admin.Email,
		Password: hashedPassword,
	}

	if err := adminRepo.Create(ctx, admin); err != nil {
		return err
	}

	log.Printf("✅ Default admin created: %s", admin.Email)
	if cfg.IsProd() {
		log.Println("⚠️ Change the default admin password immediately")
	}
	return nil
}
