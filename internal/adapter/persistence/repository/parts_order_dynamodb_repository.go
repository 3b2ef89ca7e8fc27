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

const defaultPartsOrdersTableName = "parts_orders"

type partsOrderItemLine struct {
	PartID    string  `dynamodbav:"part_id"`
	Quantity  int     `dynamodbav:"quantity"`
	UnitPrice float64 `dynamodbav:"unit_price"`
}

type partsOrderItem struct {
	ID                string               `dynamodbav:"id"`
	CustomerID        string               `dynamodbav:"customer_id"`
	Status            string               `dynamodbav:"status"`
	TotalAmount       float64              `dynamodbav:"total_amount"`
	Items             []partsOrderItemLine `dynamodbav:"items"`
	ProviderPaymentID string               `dynamodbav:"provider_payment_id,omitempty"`
	CreatedAt         string               `dynamodbav:"created_at"`
	UpdatedAt         string               `dynamodbav:"updated_at"`
}

// PartsOrderDynamoRepository persists PartsOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type PartsOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPartsOrderRepository = (*PartsOrderDynamoRepository)(nil)

func NewPartsOrderDynamoRepository(ddb *dynamodb.Client) *PartsOrderDynamoRepository {
	return &PartsOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PARTS_ORDERS_TABLE", defaultPartsOrdersTableName),
	}
}

func (r *PartsOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.PartsOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PartsOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.PartsOrder{}, nil
	}

	var it partsOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PartsOrder{}, err
	}
	return fromPartsOrderItem(it), nil
}

func (r *PartsOrderDynamoRepository) MarkPaid(ctx context.Context, id string, providerPaymentID string) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #status = :paid, #provider_payment_id = :provider_payment_id, #updated_at = :updated_at"),
		ConditionExpression: aws.String("#status = :payment_pending"),
		ExpressionAttributeNames: map[string]string{
			"#status":              "status",
			"#provider_payment_id": "provider_payment_id",
			"#updated_at":          "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":paid":                &types.AttributeValueMemberS{Value: string(entities.PartsOrderStatusPaid)},
			":payment_pending":     &types.AttributeValueMemberS{Value: string(entities.PartsOrderStatusPaymentPending)},
			":provider_payment_id": &types.AttributeValueMemberS{Value: providerPaymentID},
			":updated_at":          &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func fromPartsOrderItem(it partsOrderItem) entities.PartsOrder {
	items := make([]entities.PartsOrderItem, 0, len(it.Items))
	for _, line := range it.Items {
		items = append(items, entities.PartsOrderItem{
			PartID:    line.PartID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}
	return entities.PartsOrder{
		ID:                it.ID,
		CustomerID:        it.CustomerID,
		Status:            entities.PartsOrderStatus(it.Status),
		TotalAmount:       it.TotalAmount,
		Items:             items,
		ProviderPaymentID: it.ProviderPaymentID,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
