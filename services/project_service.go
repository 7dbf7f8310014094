package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/g-vinokurov/interstellarium/internal/models"
	"gorm.io/gorm"
)

type ProjectFilters struct {
	Name       *string
	StartDate  *time.Time
	FinishDate *time.Time
}

type CreateProjectInput struct {
	Name       string
	StartDate  *time.Time
	FinishDate *time.Time
}

type ProjectService interface {
	ListProjects(ctx context.Context, filters ProjectFilters) ([]*models.Project, error)
	CreateProject(ctx context.Context, input CreateProjectInput) (*models.Project, error)
}

type projectService struct {
	db *gorm.DB
}

type projectServiceBuilder struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *projectServiceBuilder {
	return &projectServiceBuilder{db: db}
}

func (b *projectServiceBuilder) Build() ProjectService {
	return &projectService{db: b.db}
}

func (s *projectService) ListProjects(ctx context.Context, filters ProjectFilters) ([]*models.Project, error) {
	query := s.db.WithContext(ctx).Preload("Chief").Preload("Group")

	if filters.Name != nil && *filters.Name != "" {
		query = query.Where("name ILIKE ?", "%"+*filters.Name+"%")
	}
	if filters.StartDate != nil {
		query = query.Where("start_date >= ?", *filters.StartDate)
	}
	if filters.FinishDate != nil {
		query = query.Where("finish_date <= ?", *filters.FinishDate)
	}

	var projects []*models.Project
	if err := query.Order("id ASC").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	return projects, nil
}

func (s *projectService) CreateProject(ctx context.Context, input CreateProjectInput) (*models.Project, error) {
	var existing models.Project
	err := s.db.WithContext(ctx).Where("name = ?", input.Name).First(&existing).Error
	if err == nil {
		return nil, ErrProjectExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find project: %w", err)
	}

	name := input.Name
	project := &models.Project{
		Name:       &name,
		StartDate:  input.StartDate,
		FinishDate: input.FinishDate,
	}

	if err := s.db.WithContext(ctx).Create(project).Error; err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	return project, nil
}
