package routes

import (
	"context"
	"fmt"
	"log"

	"estimate_wizard/internal/adapter/persistence/repository"
	"estimate_wizard/internal/adapter/submission"
	"estimate_wizard/internal/config"
	"estimate_wizard/internal/infrastructure/database"
	"estimate_wizard/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type dependencies struct {
	drafts    interfaces.IDraftMedium
	estimates interfaces.IEstimateRepository
	submitter interfaces.IEstimateSubmitter
}

// newDependencies builds the draft medium and the submission store picked by
// DRAFT_BACKEND and SUBMISSION_BACKEND. The DynamoDB client is shared when
// both use it.
func newDependencies(ctx context.Context, cfg *config.Config) (*dependencies, error) {
	var ddb *dynamodb.Client
	dynamo := func() (*dynamodb.Client, error) {
		if ddb != nil {
			return ddb, nil
		}
		client, err := database.NewDynamoDBClient(ctx, cfg.AWS)
		if err != nil {
			return nil, err
		}
		ddb = client
		return ddb, nil
	}

	drafts, err := newDraftMedium(ctx, cfg, dynamo)
	if err != nil {
		return nil, fmt.Errorf("draft medium: %w", err)
	}
	estimates, err := newEstimateRepository(ctx, cfg, dynamo)
	if err != nil {
		return nil, fmt.Errorf("estimate repository: %w", err)
	}

	log.Printf("[routes][deps] ready drafts=%s submission=%s timeout=%s", cfg.Drafts.Backend, cfg.Submission.Backend, cfg.Submission.Timeout)
	return &dependencies{
		drafts:    drafts,
		estimates: estimates,
		submitter: submission.NewRepositorySubmitter(estimates, cfg.Submission.Timeout),
	}, nil
}

func newDraftMedium(ctx context.Context, cfg *config.Config, dynamo func() (*dynamodb.Client, error)) (interfaces.IDraftMedium, error) {
	switch cfg.Drafts.Backend {
	case config.DraftBackendRedis:
		client, err := database.NewRedisClient(ctx, cfg.Drafts.RedisURL)
		if err != nil {
			return nil, err
		}
		return repository.NewDraftRedisRepository(client, cfg.Drafts.TTL), nil
	case config.DraftBackendDynamoDB:
		client, err := dynamo()
		if err != nil {
			return nil, err
		}
		return repository.NewDraftDynamoRepository(client, cfg.AWS.DraftsTable, cfg.Drafts.TTL), nil
	default:
		return repository.NewDraftMemoryRepository(), nil
	}
}

func newEstimateRepository(ctx context.Context, cfg *config.Config, dynamo func() (*dynamodb.Client, error)) (interfaces.IEstimateRepository, error) {
	switch cfg.Submission.Backend {
	case config.SubmissionBackendPostgres:
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		repo := repository.NewEstimatePostgresRepository(db)
		if err := repo.Migrate(ctx); err != nil {
			return nil, err
		}
		return repo, nil
	default:
		client, err := dynamo()
		if err != nil {
			return nil, err
		}
		return repository.NewEstimateDynamoRepository(client, cfg.AWS.EstimatesTable), nil
	}
}
