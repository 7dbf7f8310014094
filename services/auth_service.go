package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/g-vinokurov/interstellarium/internal/models"
	"gorm.io/gorm"
)

type AuthService interface {
	// Login checks credentials and issues a bearer token. An unknown email
	// is reported separately from a wrong password: the original API
	// answers 404 and 400 respectively and clients depend on it.
	Login(ctx context.Context, email, password string) (string, error)

	// CurrentUser resolves a bearer token back to the user it was issued
	// for.
	CurrentUser(ctx context.Context, token string) (*models.User, error)
}

type authService struct {
	db          *gorm.DB
	passwordSvc PasswordService
	jwtSvc      JWTService
}

type authServiceBuilder struct {
	db          *gorm.DB
	passwordSvc PasswordService
	jwtSvc      JWTService
}

func NewAuthService(db *gorm.DB) *authServiceBuilder {
	return &authServiceBuilder{db: db}
}

func (b *authServiceBuilder) WithPasswordService(svc PasswordService) *authServiceBuilder {
	b.passwordSvc = svc
	return b
}

func (b *authServiceBuilder) WithJWTService(svc JWTService) *authServiceBuilder {
	b.jwtSvc = svc
	return b
}

func (b *authServiceBuilder) Build() AuthService {
	return &authService{
		db:          b.db,
		passwordSvc: b.passwordSvc,
		jwtSvc:      b.jwtSvc,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if err := s.passwordSvc.VerifyPassword(user.PasswordHash, password); err != nil {
		return "", err
	}

	token, err := s.jwtSvc.GenerateToken(ctx, user.Email)
	if err != nil {
		return "", err
	}

	return token, nil
}

func (s *authService) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.jwtSvc.ValidateToken(ctx, token)
	if err != nil {
		return nil, err
	}

	email := claims.Subject
	if email == "" {
		return nil, ErrTokenInvalid
	}

	var user models.User
	err = s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenInvalid
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return &user, nil
}
