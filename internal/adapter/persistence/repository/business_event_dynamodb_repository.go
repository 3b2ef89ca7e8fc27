package repository

import (
	"context"
	"time"

	"motolease/internal/domain/entities"
	"motolease/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
)

const defaultBusinessEventsTableName = "business_events"

type businessEventItem struct {
	ID         string                 `dynamodbav:"id"`
	Operation  string                 `dynamodbav:"operation"`
	EntityType string                 `dynamodbav:"entity_type"`
	EntityID   string                 `dynamodbav:"entity_id"`
	Payload    map[string]interface{} `dynamodbav:"payload,omitempty"`
	Actor      string                 `dynamodbav:"actor"`
	CreatedAt  string                 `dynamodbav:"created_at"`
}

// BusinessEventDynamoRepository appends BusinessEvent records to DynamoDB and
// implements the event-emitter port. Fan-out to subscribers happens off this
// table, outside this service.
//
// Table requirements:
//   - PK: id (uuid)

type BusinessEventDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEventEmitter = (*BusinessEventDynamoRepository)(nil)

func NewBusinessEventDynamoRepository(ddb *dynamodb.Client) *BusinessEventDynamoRepository {
	return &BusinessEventDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BUSINESS_EVENTS_TABLE", defaultBusinessEventsTableName),
	}
}

func (r *BusinessEventDynamoRepository) Emit(ctx context.Context, operation, entityType, entityID string, payload map[string]interface{}, actor string) (string, error) {
	event := entities.BusinessEvent{
		ID:         uuid.NewString(),
		Operation:  operation,
		EntityType: entityType,
		EntityID:   entityID,
		Payload:    payload,
		Actor:      actor,
		CreatedAt:  time.Now().UTC(),
	}

	it := businessEventItem{
		ID:         event.ID,
		Operation:  event.Operation,
		EntityType: event.EntityType,
		EntityID:   event.EntityID,
		Payload:    event.Payload,
		Actor:      event.Actor,
		CreatedAt:  event.CreatedAt.Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return "", err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return "", err
	}
	return event.ID, nil
}
