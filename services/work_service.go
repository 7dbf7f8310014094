package services

import (
	"context"
	"fmt"

	"github.com/g-vinokurov/interstellarium/internal/models"
	"gorm.io/gorm"
)

type WorkFilters struct {
	Name    *string
	MinCost *float64
	MaxCost *float64
}

type CreateWorkInput struct {
	Name string
	Cost float64
}

type WorkService interface {
	ListWorks(ctx context.Context, filters WorkFilters) ([]*models.Work, error)
	CreateWork(ctx context.Context, input CreateWorkInput) (*models.Work, error)
}

type workService struct {
	db *gorm.DB
}

type workServiceBuilder struct {
	db *gorm.DB
}

func NewWorkService(db *gorm.DB) *workServiceBuilder {
	return &workServiceBuilder{db: db}
}

func (b *workServiceBuilder) Build() WorkService {
	return &workService{db: b.db}
}

func (s *workService) ListWorks(ctx context.Context, filters WorkFilters) ([]*models.Work, error) {
	query := s.db.WithContext(ctx).Preload("Contract").Preload("Project")

	if filters.Name != nil && *filters.Name != "" {
		query = query.Where("name ILIKE ?", "%"+*filters.Name+"%")
	}
	if filters.MinCost != nil {
		query = query.Where("cost >= ?", *filters.MinCost)
	}
	if filters.MaxCost != nil {
		query = query.Where("cost <= ?", *filters.MaxCost)
	}

	var works []*models.Work
	if err := query.Order("id ASC").Find(&works).Error; err != nil {
		return nil, fmt.Errorf("list works: %w", err)
	}

	return works, nil
}

func (s *workService) CreateWork(ctx context.Context, input CreateWorkInput) (*models.Work, error) {
	name := input.Name
	work := &models.Work{
		Name: &name,
		Cost: input.Cost,
	}

	if err := s.db.WithContext(ctx).Create(work).Error; err != nil {
		return nil, fmt.Errorf("create work: %w", err)
	}

	return work, nil
}
