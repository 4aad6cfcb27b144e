package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"estimate_wizard/internal/domain/entities"
	"estimate_wizard/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type vehicleAttr struct {
	Year      int    `dynamodbav:"year"`
	Make      string `dynamodbav:"make"`
	Model     string `dynamodbav:"model"`
	Color     string `dynamodbav:"color"`
	Condition string `dynamodbav:"condition"`
}

type contactAttr struct {
	Name                   string `dynamodbav:"name"`
	Email                  string `dynamodbav:"email"`
	Phone                  string `dynamodbav:"phone"`
	PreferredContactMethod string `dynamodbav:"preferred_contact_method"`
	Timeframe              string `dynamodbav:"timeframe"`
	Notes                  string `dynamodbav:"notes,omitempty"`
}

type estimateItem struct {
	ID             string      `dynamodbav:"id"`
	SessionID      string      `dynamodbav:"session_id"`
	Vehicle        vehicleAttr `dynamodbav:"vehicle"`
	Services       []string    `dynamodbav:"services"`
	Package        string      `dynamodbav:"package,omitempty"`
	Contact        contactAttr `dynamodbav:"contact"`
	EstimatedPrice string      `dynamodbav:"estimated_price"`
	Status         string      `dynamodbav:"status"`
	CreatedAt      string      `dynamodbav:"created_at"`
}

// EstimateDynamoRepository persists submitted estimate requests in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type EstimateDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb DynamoDBAPI, tableName string) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.EstimateRecord) (entities.EstimateRecord, error) {
	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.EstimateRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.EstimateRecord{}, interfaces.ErrEstimateConflict
		}
		return entities.EstimateRecord{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.EstimateRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.EstimateRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.EstimateRecord{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.EstimateRecord{}, err
	}
	return fromEstimateItem(it), nil
}

func toEstimateItem(e entities.EstimateRecord) estimateItem {
	services := e.Services
	if services == nil {
		services = []string{}
	}
	return estimateItem{
		ID:        e.ID,
		SessionID: e.SessionID,
		Vehicle: vehicleAttr{
			Year:      e.Vehicle.Year,
			Make:      e.Vehicle.Make,
			Model:     e.Vehicle.Model,
			Color:     e.Vehicle.Color,
			Condition: string(e.Vehicle.Condition),
		},
		Services: services,
		Package:  e.Package,
		Contact: contactAttr{
			Name:                   e.Contact.Name,
			Email:                  e.Contact.Email,
			Phone:                  e.Contact.Phone,
			PreferredContactMethod: string(e.Contact.PreferredContactMethod),
			Timeframe:              string(e.Contact.Timeframe),
			Notes:                  e.Contact.Notes,
		},
		EstimatedPrice: floatToString(e.EstimatedPrice),
		Status:         string(e.Status),
		CreatedAt:      e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromEstimateItem(it estimateItem) entities.EstimateRecord {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	price, _ := strconv.ParseFloat(it.EstimatedPrice, 64)
	return entities.EstimateRecord{
		ID:        it.ID,
		SessionID: it.SessionID,
		Vehicle: entities.VehicleInfo{
			Year:      it.Vehicle.Year,
			Make:      it.Vehicle.Make,
			Model:     it.Vehicle.Model,
			Color:     it.Vehicle.Color,
			Condition: entities.VehicleCondition(it.Vehicle.Condition),
		},
		Services: it.Services,
		Package:  it.Package,
		Contact: entities.ContactInfo{
			Name:                   it.Contact.Name,
			Email:                  it.Contact.Email,
			Phone:                  it.Contact.Phone,
			PreferredContactMethod: entities.ContactMethod(it.Contact.PreferredContactMethod),
			Timeframe:              entities.Timeframe(it.Contact.Timeframe),
			Notes:                  it.Contact.Notes,
		},
		EstimatedPrice: price,
		Status:         entities.EstimateStatus(it.Status),
		CreatedAt:      createdAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
