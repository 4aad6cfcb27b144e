package submission

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"estimate_wizard/internal/domain/entities"
	"estimate_wizard/internal/usecase/interfaces"
)

const defaultTimeout = 10 * time.Second

// FailureKind classifies a submission failure. The wizard does not act on it;
// it is kept for logs and for callers that want to report it.
type FailureKind string

const (
	FailureNetwork  FailureKind = "network"
	FailureRejected FailureKind = "rejected"
)

var ErrInvalidRecord = errors.New("estimate record is not submittable")

// SubmissionError is returned by Submit for every failure.
type SubmissionError struct {
	Kind FailureKind
	Err  error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("submission %s: %v", e.Kind, e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// RepositorySubmitter is the submission boundary: it checks and serializes
// the record and forwards it to the estimate store under a timeout.
type RepositorySubmitter struct {
	repo    interfaces.IEstimateRepository
	timeout time.Duration
}

var _ interfaces.IEstimateSubmitter = (*RepositorySubmitter)(nil)

func NewRepositorySubmitter(repo interfaces.IEstimateRepository, timeout time.Duration) *RepositorySubmitter {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &RepositorySubmitter{repo: repo, timeout: timeout}
}

func (s *RepositorySubmitter) Submit(ctx context.Context, record entities.EstimateRecord) error {
	if strings.TrimSpace(record.ID) == "" || record.Status != entities.EstimateStatusPending {
		return &SubmissionError{Kind: FailureRejected, Err: ErrInvalidRecord}
	}
	if s.repo == nil {
		return &SubmissionError{Kind: FailureNetwork, Err: errors.New("estimate repository not configured")}
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return &SubmissionError{Kind: FailureRejected, Err: err}
	}
	log.Printf("[wizard][submission] forwarding estimate_id=%s payload_len=%d", record.ID, len(payload))

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.repo.Create(ctx, record); err != nil {
		kind := classify(err)
		log.Printf("[wizard][submission] store failed estimate_id=%s kind=%s err=%v", record.ID, kind, err)
		return &SubmissionError{Kind: kind, Err: err}
	}
	log.Printf("[wizard][submission] stored estimate_id=%s", record.ID)
	return nil
}

func classify(err error) FailureKind {
	if errors.Is(err, interfaces.ErrEstimateConflict) {
		return FailureRejected
	}
	return FailureNetwork
}
