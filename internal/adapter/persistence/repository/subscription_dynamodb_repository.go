package repository

import (
	"context"
	"time"

	"motolease/internal/domain/entities"
	"motolease/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSubscriptionsTableName    = "subscriptions"
	subscriptionsProviderIDIndexName = "provider_subscription_id-index"
)

type subscriptionItem struct {
	ID                     string `dynamodbav:"id"`
	ContractID             string `dynamodbav:"contract_id"`
	ProviderSubscriptionID string `dynamodbav:"provider_subscription_id"`
	SyncedStatus           string `dynamodbav:"synced_status"`
	UpdatedAt              string `dynamodbav:"updated_at"`
}

// SubscriptionDynamoRepository persists RecurringSubscription entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: provider_subscription_id-index (PK: provider_subscription_id)

type SubscriptionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISubscriptionRepository = (*SubscriptionDynamoRepository)(nil)

func NewSubscriptionDynamoRepository(ddb *dynamodb.Client) *SubscriptionDynamoRepository {
	return &SubscriptionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SUBSCRIPTIONS_TABLE", defaultSubscriptionsTableName),
	}
}

func (r *SubscriptionDynamoRepository) GetByProviderSubscriptionID(ctx context.Context, providerSubscriptionID string) (entities.RecurringSubscription, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(subscriptionsProviderIDIndexName),
		KeyConditionExpression: aws.String("provider_subscription_id = :psid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":psid": &types.AttributeValueMemberS{Value: providerSubscriptionID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.RecurringSubscription{}, err
	}
	if len(out.Items) == 0 {
		return entities.RecurringSubscription{}, nil
	}

	var it subscriptionItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.RecurringSubscription{}, err
	}
	return entities.RecurringSubscription{
		ID:                     it.ID,
		ContractID:             it.ContractID,
		ProviderSubscriptionID: it.ProviderSubscriptionID,
		SyncedStatus:           it.SyncedStatus,
		UpdatedAt:              parseTime(it.UpdatedAt),
	}, nil
}

func (r *SubscriptionDynamoRepository) UpdateSyncedStatus(ctx context.Context, id string, syncedStatus string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #synced_status = :synced_status, #updated_at = :updated_at"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id":            "id",
			"#synced_status": "synced_status",
			"#updated_at":    "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":synced_status": &types.AttributeValueMemberS{Value: syncedStatus},
			":updated_at":    &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
	})
	return err
}
