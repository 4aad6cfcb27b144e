package interfaces

import (
	"context"

	"estimate_wizard/internal/domain/entities"
)

// IEstimateSubmitter is the submission boundary. It either acknowledges the
// record (nil) or reports a failure. The wizard treats every failure as
// retryable.
type IEstimateSubmitter interface {
	Submit(ctx context.Context, record entities.EstimateRecord) error
}
