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

const defaultPaymentRecordsTableName = "payment_records"

type paymentRecordItem struct {
	ProviderPaymentID string  `dynamodbav:"provider_payment_id"`
	Amount            float64 `dynamodbav:"amount"`
	NetAmount         float64 `dynamodbav:"net_amount"`
	FeeAmount         float64 `dynamodbav:"fee_amount"`
	Status            string  `dynamodbav:"status"`
	PaymentMethodID   string  `dynamodbav:"payment_method_id"`
	PaymentTypeID     string  `dynamodbav:"payment_type_id"`
	Reference         string  `dynamodbav:"reference"`
	DateCreated       string  `dynamodbav:"date_created"`
	DateApproved      string  `dynamodbav:"date_approved"`
	ReceivedAt        string  `dynamodbav:"received_at"`
	UpdatedAt         string  `dynamodbav:"updated_at"`
}

// PaymentRecordDynamoRepository persists PaymentRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: provider_payment_id (string)
//
// Upsert is a single UpdateItem so insert and in-place update are the same
// write path; received_at uses if_not_exists so the first-seen timestamp
// survives re-deliveries. The returned record is the stored item (ALL_NEW),
// so on a re-delivery callers see the surviving first-seen received_at.

type PaymentRecordDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRecordRepository = (*PaymentRecordDynamoRepository)(nil)

func NewPaymentRecordDynamoRepository(ddb *dynamodb.Client) *PaymentRecordDynamoRepository {
	return &PaymentRecordDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_RECORDS_TABLE", defaultPaymentRecordsTableName),
	}
}

func (r *PaymentRecordDynamoRepository) Upsert(ctx context.Context, rec entities.PaymentRecord) (entities.PaymentRecord, error) {
	now := rec.UpdatedAt.UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"provider_payment_id": &types.AttributeValueMemberS{Value: rec.ProviderPaymentID},
		},
		UpdateExpression: aws.String("SET #amount = :amount, #net_amount = :net_amount, #fee_amount = :fee_amount, #status = :status, " +
			"#payment_method_id = :payment_method_id, #payment_type_id = :payment_type_id, #reference = :reference, " +
			"#date_created = :date_created, #date_approved = :date_approved, " +
			"#received_at = if_not_exists(#received_at, :received_at), #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#amount":            "amount",
			"#net_amount":        "net_amount",
			"#fee_amount":        "fee_amount",
			"#status":            "status",
			"#payment_method_id": "payment_method_id",
			"#payment_type_id":   "payment_type_id",
			"#reference":         "reference",
			"#date_created":      "date_created",
			"#date_approved":     "date_approved",
			"#received_at":       "received_at",
			"#updated_at":        "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":amount":            &types.AttributeValueMemberN{Value: floatToString(rec.Amount)},
			":net_amount":        &types.AttributeValueMemberN{Value: floatToString(rec.NetAmount)},
			":fee_amount":        &types.AttributeValueMemberN{Value: floatToString(rec.FeeAmount)},
			":status":            &types.AttributeValueMemberS{Value: string(rec.Status)},
			":payment_method_id": &types.AttributeValueMemberS{Value: rec.PaymentMethodID},
			":payment_type_id":   &types.AttributeValueMemberS{Value: rec.PaymentTypeID},
			":reference":         &types.AttributeValueMemberS{Value: rec.Reference},
			":date_created":      &types.AttributeValueMemberS{Value: rec.DateCreated.UTC().Format(time.RFC3339Nano)},
			":date_approved":     &types.AttributeValueMemberS{Value: rec.DateApproved.UTC().Format(time.RFC3339Nano)},
			":received_at":       &types.AttributeValueMemberS{Value: rec.ReceivedAt.UTC().Format(time.RFC3339Nano)},
			":updated_at":        &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}

	var it paymentRecordItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PaymentRecord{}, err
	}
	return fromPaymentRecordItem(it), nil
}

func (r *PaymentRecordDynamoRepository) GetByProviderPaymentID(ctx context.Context, providerPaymentID string) (entities.PaymentRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"provider_payment_id": &types.AttributeValueMemberS{Value: providerPaymentID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentRecord{}, nil
	}

	var it paymentRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentRecord{}, err
	}
	return fromPaymentRecordItem(it), nil
}

func fromPaymentRecordItem(it paymentRecordItem) entities.PaymentRecord {
	return entities.PaymentRecord{
		ProviderPaymentID: it.ProviderPaymentID,
		Amount:            it.Amount,
		NetAmount:         it.NetAmount,
		FeeAmount:         it.FeeAmount,
		Status:            entities.PaymentStatus(it.Status),
		PaymentMethodID:   it.PaymentMethodID,
		PaymentTypeID:     it.PaymentTypeID,
		Reference:         it.Reference,
		DateCreated:       parseTime(it.DateCreated),
		DateApproved:      parseTime(it.DateApproved),
		ReceivedAt:        parseTime(it.ReceivedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
