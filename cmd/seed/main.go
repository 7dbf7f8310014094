package main

import (
	"errors"

	"github.com/g-vinokurov/interstellarium/internal/config"
	"github.com/g-vinokurov/interstellarium/internal/models"
	"github.com/g-vinokurov/interstellarium/services"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Seeds the initial superuser account. Safe to run repeatedly: an
// existing account with the configured email is left untouched.
func main() {
	cfg := config.Load()

	logger := logrus.New()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := services.AutoMigrate(db); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}

	if cfg.SuperuserEmail == "" || cfg.SuperuserPassword == "" {
		logger.Fatal("SUPERUSER_EMAIL and SUPERUSER_PASSWORD environment variables are required")
	}

	var existing models.User
	err = db.Where("email = ?", cfg.SuperuserEmail).First(&existing).Error
	if err == nil {
		logger.Infof("Superuser %s already exists, nothing to do", cfg.SuperuserEmail)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Fatalf("Failed to look up superuser: %v", err)
	}

	passwordSvc := services.NewPasswordService().Build()
	hash, err := passwordSvc.HashPassword(cfg.SuperuserPassword)
	if err != nil {
		logger.Fatalf("Failed to hash superuser password: %v", err)
	}

	name := cfg.SuperuserName
	user := models.User{
		Email:        cfg.SuperuserEmail,
		PasswordHash: hash,
		Name:         &name,
		IsAdmin:      true,
		IsSuperuser:  true,
	}
	if err := db.Create(&user).Error; err != nil {
		logger.Fatalf("Failed to create superuser: %v", err)
	}

	logger.Infof("Superuser %s created", cfg.SuperuserEmail)
}
