package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/g-vinokurov/interstellarium/internal/models"
	"gorm.io/gorm"
)

type ContractFilters struct {
	Name       *string
	StartDate  *time.Time
	FinishDate *time.Time
}

type CreateContractInput struct {
	Name       string
	StartDate  *time.Time
	FinishDate *time.Time
}

type ContractService interface {
	ListContracts(ctx context.Context, filters ContractFilters) ([]*models.Contract, error)
	CreateContract(ctx context.Context, input CreateContractInput) (*models.Contract, error)
}

type contractService struct {
	db *gorm.DB
}

type contractServiceBuilder struct {
	db *gorm.DB
}

func NewContractService(db *gorm.DB) *contractServiceBuilder {
	return &contractServiceBuilder{db: db}
}

func (b *contractServiceBuilder) Build() ContractService {
	return &contractService{db: b.db}
}

func (s *contractService) ListContracts(ctx context.Context, filters ContractFilters) ([]*models.Contract, error) {
	query := s.db.WithContext(ctx).Preload("Chief")

	if filters.Name != nil && *filters.Name != "" {
		query = query.Where("name ILIKE ?", "%"+*filters.Name+"%")
	}
	if filters.StartDate != nil {
		query = query.Where("start_date >= ?", *filters.StartDate)
	}
	if filters.FinishDate != nil {
		query = query.Where("finish_date <= ?", *filters.FinishDate)
	}

	var contracts []*models.Contract
	if err := query.Order("id ASC").Find(&contracts).Error; err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}

	return contracts, nil
}

func (s *contractService) CreateContract(ctx context.Context, input CreateContractInput) (*models.Contract, error) {
	var existing models.Contract
	err := s.db.WithContext(ctx).Where("name = ?", input.Name).First(&existing).Error
	if err == nil {
		return nil, ErrContractExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find contract: %w", err)
	}

	name := input.Name
	contract := &models.Contract{
		Name:       &name,
		StartDate:  input.StartDate,
		FinishDate: input.FinishDate,
	}

	if err := s.db.WithContext(ctx).Create(contract).Error; err != nil {
		return nil, fmt.Errorf("create contract: %w", err)
	}

	return contract, nil
}
