package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/g-vinokurov/interstellarium/internal/models"
	"gorm.io/gorm"
)

type EquipmentFilters struct {
	Name *string
}

type EquipmentService interface {
	ListEquipment(ctx context.Context, filters EquipmentFilters) ([]*models.Equipment, error)
	CreateEquipment(ctx context.Context, name string) (*models.Equipment, error)
}

type equipmentService struct {
	db *gorm.DB
}

type equipmentServiceBuilder struct {
	db *gorm.DB
}

func NewEquipmentService(db *gorm.DB) *equipmentServiceBuilder {
	return &equipmentServiceBuilder{db: db}
}

func (b *equipmentServiceBuilder) Build() EquipmentService {
	return &equipmentService{db: b.db}
}

func (s *equipmentService) ListEquipment(ctx context.Context, filters EquipmentFilters) ([]*models.Equipment, error) {
	query := s.db.WithContext(ctx).Preload("Department").Preload("Group")

	if filters.Name != nil && *filters.Name != "" {
		query = query.Where("name ILIKE ?", "%"+*filters.Name+"%")
	}

	var equipment []*models.Equipment
	if err := query.Order("id ASC").Find(&equipment).Error; err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}

	return equipment, nil
}

func (s *equipmentService) CreateEquipment(ctx context.Context, name string) (*models.Equipment, error) {
	var existing models.Equipment
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&existing).Error
	if err == nil {
		return nil, ErrEquipmentExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find equipment: %w", err)
	}

	equipment := &models.Equipment{Name: &name}
	if err := s.db.WithContext(ctx).Create(equipment).Error; err != nil {
		return nil, fmt.Errorf("create equipment: %w", err)
	}

	return equipment, nil
}
