package usecase

import (
	"context"
	"errors"
	"strings"

	"estimate_wizard/internal/domain/entities"
	"estimate_wizard/internal/usecase/interfaces"
)

var (
	ErrEstimateNotFound  = errors.New("estimate not found")
	ErrInvalidEstimateID = errors.New("invalid estimate id")
)

// IEstimateUseCase reads back submitted estimate requests, e.g. for the
// confirmation page or the shop's follow-up.
type IEstimateUseCase interface {
	GetByID(ctx context.Context, id string) (entities.EstimateRecord, error)
}

type EstimateUseCase struct {
	repo interfaces.IEstimateRepository
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository) *EstimateUseCase {
	return &EstimateUseCase{repo: repo}
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.EstimateRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.EstimateRecord{}, ErrInvalidEstimateID
	}

	rec, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.EstimateRecord{}, err
	}
	if rec.ID == "" {
		return entities.EstimateRecord{}, ErrEstimateNotFound
	}
	return rec, nil
}
