package database

import (
	"fmt"
	"time"

	"messenger-backend/internal/domain/user"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedConfig holds configuration for seeding the database
type SeedConfig struct {
	AdminUsername string
	AdminPassword string
}

// DefaultSeedConfig returns default seed configuration
func DefaultSeedConfig() *SeedConfig {
	return &SeedConfig{
		AdminUsername: "admin",
		AdminPassword: "Admin@123!",
	}
}

// SeedAdmin creates the admin account that registration requires. It is
// idempotent: an existing admin with the same username is left alone.
func SeedAdmin(db *gorm.DB, cfg *SeedConfig) (*user.User, error) {
	if cfg == nil {
		cfg = DefaultSeedConfig()
	}

	var existing user.User
	err := db.Where("username = ?", cfg.AdminUsername).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to look up admin user: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &user.User{
		Username:     cfg.AdminUsername,
		PasswordHash: string(hashed),
		IsAdmin:      true,
		IsVerified:   true,
		CreatedAt:    time.Now(),
	}
	if err := db.Create(admin).Error; err != nil {
		return nil, fmt.Errorf("failed to seed admin user: %w", err)
	}

	return admin, nil
}
