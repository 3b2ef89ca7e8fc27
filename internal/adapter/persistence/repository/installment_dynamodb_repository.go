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
	defaultInstallmentsTableName = "installments"
	installmentsContractIDIndex  = "contract_id-index"
)

type installmentItem struct {
	ID                string  `dynamodbav:"id"`
	ContractID        string  `dynamodbav:"contract_id"`
	Number            int     `dynamodbav:"number"`
	Amount            float64 `dynamodbav:"amount"`
	DueDate           string  `dynamodbav:"due_date"`
	Status            string  `dynamodbav:"status"`
	PaidAmount        float64 `dynamodbav:"paid_amount,omitempty"`
	PaidAt            string  `dynamodbav:"paid_at,omitempty"`
	ProviderPaymentID string  `dynamodbav:"provider_payment_id,omitempty"`
}

// InstallmentDynamoRepository persists Installment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: contract_id-index (PK: contract_id)
//
// MarkPaid is conditional on the installment still being payable
// (PENDING or OVERDUE), so concurrent duplicate deliveries settle it once.

type InstallmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInstallmentRepository = (*InstallmentDynamoRepository)(nil)

func NewInstallmentDynamoRepository(ddb *dynamodb.Client) *InstallmentDynamoRepository {
	return &InstallmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INSTALLMENTS_TABLE", defaultInstallmentsTableName),
	}
}

func (r *InstallmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Installment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Installment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Installment{}, nil
	}

	var it installmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Installment{}, err
	}
	return fromInstallmentItem(it), nil
}

func (r *InstallmentDynamoRepository) ListByContractID(ctx context.Context, contractID string) ([]entities.Installment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(installmentsContractIDIndex),
		KeyConditionExpression: aws.String("contract_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: contractID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Installment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it installmentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromInstallmentItem(it))
	}
	return items, nil
}

func (r *InstallmentDynamoRepository) MarkPaid(ctx context.Context, id string, paidAmount float64, paidAt time.Time, providerPaymentID string) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #status = :paid, #paid_amount = :paid_amount, #paid_at = :paid_at, #provider_payment_id = :provider_payment_id"),
		ConditionExpression: aws.String("#status IN (:pending, :overdue)"),
		ExpressionAttributeNames: map[string]string{
			"#status":              "status",
			"#paid_amount":         "paid_amount",
			"#paid_at":             "paid_at",
			"#provider_payment_id": "provider_payment_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":paid":                &types.AttributeValueMemberS{Value: string(entities.InstallmentStatusPaid)},
			":pending":             &types.AttributeValueMemberS{Value: string(entities.InstallmentStatusPending)},
			":overdue":             &types.AttributeValueMemberS{Value: string(entities.InstallmentStatusOverdue)},
			":paid_amount":         &types.AttributeValueMemberN{Value: floatToString(paidAmount)},
			":paid_at":             &types.AttributeValueMemberS{Value: paidAt.UTC().Format(time.RFC3339Nano)},
			":provider_payment_id": &types.AttributeValueMemberS{Value: providerPaymentID},
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

func fromInstallmentItem(it installmentItem) entities.Installment {
	inst := entities.Installment{
		ID:                it.ID,
		ContractID:        it.ContractID,
		Number:            it.Number,
		Amount:            it.Amount,
		DueDate:           parseTime(it.DueDate),
		Status:            entities.InstallmentStatus(it.Status),
		PaidAmount:        it.PaidAmount,
		ProviderPaymentID: it.ProviderPaymentID,
	}
	if it.PaidAt != "" {
		t := parseTime(it.PaidAt)
		inst.PaidAt = &t
	}
	return inst
}
