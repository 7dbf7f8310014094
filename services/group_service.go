package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/g-vinokurov/interstellarium/internal/models"
	"gorm.io/gorm"
)

type GroupFilters struct {
	Name *string
}

type GroupService interface {
	ListGroups(ctx context.Context, filters GroupFilters) ([]*models.Group, error)
	CreateGroup(ctx context.Context, name string) (*models.Group, error)
}

type groupService struct {
	db *gorm.DB
}

type groupServiceBuilder struct {
	db *gorm.DB
}

func NewGroupService(db *gorm.DB) *groupServiceBuilder {
	return &groupServiceBuilder{db: db}
}

func (b *groupServiceBuilder) Build() GroupService {
	return &groupService{db: b.db}
}

func (s *groupService) ListGroups(ctx context.Context, filters GroupFilters) ([]*models.Group, error) {
	query := s.db.WithContext(ctx)

	if filters.Name != nil && *filters.Name != "" {
		query = query.Where("name ILIKE ?", "%"+*filters.Name+"%")
	}

	var groups []*models.Group
	if err := query.Order("id ASC").Find(&groups).Error; err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}

	return groups, nil
}

func (s *groupService) CreateGroup(ctx context.Context, name string) (*models.Group, error) {
	var existing models.Group
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&existing).Error
	if err == nil {
		return nil, ErrGroupExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find group: %w", err)
	}

	group := &models.Group{Name: &name}
	if err := s.db.WithContext(ctx).Create(group).Error; err != nil {
		return nil, fmt.Errorf("create group: %w", err)
	}

	return group, nil
}
