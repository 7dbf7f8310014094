package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/g-vinokurov/interstellarium/internal/models"
	"gorm.io/gorm"
)

type DepartmentFilters struct {
	Name *string
}

type DepartmentService interface {
	ListDepartments(ctx context.Context, filters DepartmentFilters) ([]*models.Department, error)
	CreateDepartment(ctx context.Context, name string) (*models.Department, error)
}

type departmentService struct {
	db *gorm.DB
}

type departmentServiceBuilder struct {
	db *gorm.DB
}

func NewDepartmentService(db *gorm.DB) *departmentServiceBuilder {
	return &departmentServiceBuilder{db: db}
}

func (b *departmentServiceBuilder) Build() DepartmentService {
	return &departmentService{db: b.db}
}

func (s *departmentService) ListDepartments(ctx context.Context, filters DepartmentFilters) ([]*models.Department, error) {
	query := s.db.WithContext(ctx).Preload("Chief")

	if filters.Name != nil && *filters.Name != "" {
		query = query.Where("name ILIKE ?", "%"+*filters.Name+"%")
	}

	var departments []*models.Department
	if err := query.Order("id ASC").Find(&departments).Error; err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}

	return departments, nil
}

func (s *departmentService) CreateDepartment(ctx context.Context, name string) (*models.Department, error) {
	var existing models.Department
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&existing).Error
	if err == nil {
		return nil, ErrDepartmentExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find department: %w", err)
	}

	department := &models.Department{Name: &name}
	if err := s.db.WithContext(ctx).Create(department).Error; err != nil {
		return nil, fmt.Errorf("create department: %w", err)
	}

	return department, nil
}
