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

const defaultLoanApplicationsTableName = "loan_applications"

type loanApplicationItem struct {
	ID                string  `dynamodbav:"id"`
	CustomerID        string  `dynamodbav:"customer_id"`
	VehicleID         string  `dynamodbav:"vehicle_id"`
	Status            string  `dynamodbav:"status"`
	FirstMonthAmount  float64 `dynamodbav:"first_month_amount"`
	ProviderPaymentID string  `dynamodbav:"provider_payment_id,omitempty"`
	CreatedAt         string  `dynamodbav:"created_at"`
	UpdatedAt         string  `dynamodbav:"updated_at"`
}

// LoanApplicationDynamoRepository persists LoanApplication entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Both Mark* methods are conditional updates on the status attribute; a
// ConditionalCheckFailedException means the application already left the
// source state and is reported as applied=false.

type LoanApplicationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILoanApplicationRepository = (*LoanApplicationDynamoRepository)(nil)

func NewLoanApplicationDynamoRepository(ddb *dynamodb.Client) *LoanApplicationDynamoRepository {
	return &LoanApplicationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LOAN_APPLICATIONS_TABLE", defaultLoanApplicationsTableName),
	}
}

func (r *LoanApplicationDynamoRepository) GetByID(ctx context.Context, id string) (entities.LoanApplication, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.LoanApplication{}, err
	}
	if len(out.Item) == 0 {
		return entities.LoanApplication{}, nil
	}

	var it loanApplicationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.LoanApplication{}, err
	}
	return fromLoanApplicationItem(it), nil
}

func (r *LoanApplicationDynamoRepository) MarkPaid(ctx context.Context, id string, providerPaymentID string) (bool, error) {
	return r.conditionalTransition(ctx, id,
		entities.LoanApplicationStatusPaymentPending,
		entities.LoanApplicationStatusPaid,
		map[string]string{"#provider_payment_id": "provider_payment_id"},
		map[string]types.AttributeValue{":provider_payment_id": &types.AttributeValueMemberS{Value: providerPaymentID}},
		", #provider_payment_id = :provider_payment_id",
	)
}

func (r *LoanApplicationDynamoRepository) MarkDelivered(ctx context.Context, id string) (bool, error) {
	return r.conditionalTransition(ctx, id,
		entities.LoanApplicationStatusApproved,
		entities.LoanApplicationStatusDelivered,
		nil, nil, "",
	)
}

func (r *LoanApplicationDynamoRepository) conditionalTransition(
	ctx context.Context,
	id string,
	from, to entities.LoanApplicationStatus,
	extraNames map[string]string,
	extraValues map[string]types.AttributeValue,
	extraSet string,
) (bool, error) {
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":from":       &types.AttributeValueMemberS{Value: string(from)},
		":to":         &types.AttributeValueMemberS{Value: string(to)},
		":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
	}
	for k, v := range extraNames {
		names[k] = v
	}
	for k, v := range extraValues {
		values[k] = v
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:          aws.String("SET #status = :to, #updated_at = :updated_at" + extraSet),
		ConditionExpression:       aws.String("#status = :from"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func fromLoanApplicationItem(it loanApplicationItem) entities.LoanApplication {
	return entities.LoanApplication{
		ID:                it.ID,
		CustomerID:        it.CustomerID,
		VehicleID:         it.VehicleID,
		Status:            entities.LoanApplicationStatus(it.Status),
		FirstMonthAmount:  it.FirstMonthAmount,
		ProviderPaymentID: it.ProviderPaymentID,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
