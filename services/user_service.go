package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/g-vinokurov/interstellarium/internal/models"
	"gorm.io/gorm"
)

type UserFilters struct {
	Name          *string
	BirthdateFrom *time.Time
	BirthdateTo   *time.Time
	DepartmentID  *uint
}

type CreateUserInput struct {
	Email     string
	Password  string
	IsAdmin   bool
	Name      string
	Birthdate *time.Time
}

type UserService interface {
	ListUsers(ctx context.Context, filters UserFilters) ([]*models.User, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*models.User, error)
}

type userService struct {
	db          *gorm.DB
	passwordSvc PasswordService
}

type userServiceBuilder struct {
	db          *gorm.DB
	passwordSvc PasswordService
}

func NewUserService(db *gorm.DB) *userServiceBuilder {
	return &userServiceBuilder{db: db}
}

func (b *userServiceBuilder) WithPasswordService(svc PasswordService) *userServiceBuilder {
	b.passwordSvc = svc
	return b
}

func (b *userServiceBuilder) Build() UserService {
	return &userService{db: b.db, passwordSvc: b.passwordSvc}
}

func (s *userService) ListUsers(ctx context.Context, filters UserFilters) ([]*models.User, error) {
	query := s.db.WithContext(ctx).Preload("Department")

	if filters.Name != nil && *filters.Name != "" {
		query = query.Where("name ILIKE ?", "%"+*filters.Name+"%")
	}
	if filters.BirthdateFrom != nil {
		query = query.Where("birthdate >= ?", *filters.BirthdateFrom)
	}
	if filters.BirthdateTo != nil {
		query = query.Where("birthdate <= ?", *filters.BirthdateTo)
	}
	if filters.DepartmentID != nil {
		query = query.Where("department_id = ?", *filters.DepartmentID)
	}

	var users []*models.User
	if err := query.Order("id ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

func (s *userService) CreateUser(ctx context.Context, input CreateUserInput) (*models.User, error) {
	var existing models.User
	err := s.db.WithContext(ctx).Where("email = ?", input.Email).First(&existing).Error
	if err == nil {
		return nil, ErrUserExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find user: %w", err)
	}

	hash, err := s.passwordSvc.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	name := input.Name
	user := &models.User{
		Email:        input.Email,
		PasswordHash: hash,
		Name:         &name,
		Birthdate:    input.Birthdate,
		IsAdmin:      input.IsAdmin,
	}

	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}
