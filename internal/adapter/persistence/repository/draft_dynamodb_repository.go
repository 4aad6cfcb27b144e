package repository

import (
	"context"
	"time"

	"estimate_wizard/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type draftItem struct {
	Key       string `dynamodbav:"key"`
	Value     string `dynamodbav:"value"`
	UpdatedAt string `dynamodbav:"updated_at"`
	ExpiresAt int64  `dynamodbav:"expires_at"`
}

// DraftDynamoRepository stores drafts in DynamoDB.
//
// Table requirements:
//   - PK: key (string)
//   - TTL attribute: expires_at (epoch seconds)
type DraftDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	ttl       time.Duration
	now       func() time.Time
}

var _ interfaces.IDraftMedium = (*DraftDynamoRepository)(nil)

func NewDraftDynamoRepository(ddb DynamoDBAPI, tableName string, ttl time.Duration) *DraftDynamoRepository {
	if ttl <= 0 {
		ttl = defaultDraftTTL
	}
	return &DraftDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		ttl:       ttl,
		now:       time.Now,
	}
}

func (r *DraftDynamoRepository) Get(ctx context.Context, key string) (string, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", false, err
	}
	if len(out.Item) == 0 {
		return "", false, nil
	}

	var it draftItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return "", false, err
	}
	// DynamoDB deletes expired items lazily.
	if it.ExpiresAt > 0 && r.now().Unix() > it.ExpiresAt {
		return "", false, nil
	}
	return it.Value, true, nil
}

func (r *DraftDynamoRepository) Set(ctx context.Context, key, value string) error {
	now := r.now().UTC()
	av, err := attributevalue.MarshalMap(draftItem{
		Key:       key,
		Value:     value,
		UpdatedAt: now.Format(time.RFC3339Nano),
		ExpiresAt: now.Add(r.ttl).Unix(),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *DraftDynamoRepository) Delete(ctx context.Context, key string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
	})
	return err
}
