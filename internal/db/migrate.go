package db

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/diewo77/painel/internal/models"
)

// Migrate runs AutoMigrate for all records.
func Migrate(d *gorm.DB) error {
	return d.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.Client{},
		&models.Annotation{},
	)
}

// HashPassword returns the bcrypt hash stored for a user password.
func HashPassword(senha string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

// CheckPassword reports whether senha matches hash.
func CheckPassword(hash, senha string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha)) == nil
}

// SeedAdmin makes sure an Admin account with email exists. An existing account
// is left untouched, so running it twice is harmless.
func SeedAdmin(d *gorm.DB, email, senha string) error {
	var existing models.User
	err := d.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("look up admin: %w", err)
	}
	hash, err := HashPassword(senha)
	if err != nil {
		return err
	}
	admin := models.User{NomeUsuario: "Administrador", Email: email, PasswordHash: hash, Role: models.RoleAdmin}
	if err := d.Create(&admin).Error; err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	return nil
}
