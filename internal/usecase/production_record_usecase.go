package usecase

import (
	"bitumen_production/internal/domain/entities"
	"bitumen_production/internal/usecase/interfaces"
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidRecordID          = errors.New("invalid production record id")
	ErrProductionRecordNotFound = errors.New("production record not found")
)

type IProductionRecordUseCase interface {
	GetByID(ctx context.Context, id string) (entities.ProductionRecord, error)
}

type ProductionRecordUseCase struct {
	repo interfaces.IProductionRecordRepository
}

var _ IProductionRecordUseCase = (*ProductionRecordUseCase)(nil)

func NewProductionRecordUseCase(repo interfaces.IProductionRecordRepository) *ProductionRecordUseCase {
	return &ProductionRecordUseCase{repo: repo}
}

func (u *ProductionRecordUseCase) GetByID(ctx context.Context, id string) (entities.ProductionRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ProductionRecord{}, ErrInvalidRecordID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ProductionRecord{}, err
	}
	if r.ID == "" {
		return entities.ProductionRecord{}, ErrProductionRecordNotFound
	}
	return r, nil
}
