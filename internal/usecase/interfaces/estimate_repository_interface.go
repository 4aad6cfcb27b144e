package interfaces

import (
	"context"
	"errors"

	"estimate_wizard/internal/domain/entities"
)

// ErrEstimateConflict is returned by Create when a record with the same id
// already exists.
var ErrEstimateConflict = errors.New("estimate record already exists")

// IEstimateRepository abstracts the store that finally owns submitted
// estimate requests (DynamoDB or PostgreSQL).
//
// GetByID returns a zero record and a nil error when nothing matches.
type IEstimateRepository interface {
	Create(ctx context.Context, record entities.EstimateRecord) (entities.EstimateRecord, error)
	GetByID(ctx context.Context, id string) (entities.EstimateRecord, error)
}
