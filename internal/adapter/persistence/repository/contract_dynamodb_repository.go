package repository

import (
	"context"

	"motolease/internal/domain/entities"
	"motolease/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultContractsTableName = "contracts"

type contractItem struct {
	ID                string `dynamodbav:"id"`
	CustomerID        string `dynamodbav:"customer_id"`
	VehicleID         string `dynamodbav:"vehicle_id"`
	LoanApplicationID string `dynamodbav:"loan_application_id"`
	IsLeaseToOwn      bool   `dynamodbav:"is_lease_to_own"`
	CreatedAt         string `dynamodbav:"created_at"`
}

// ContractDynamoRepository reads Contract entities from DynamoDB. The
// reconciler never writes contracts.
//
// Table requirements:
//   - PK: id (string)

type ContractDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContractRepository = (*ContractDynamoRepository)(nil)

func NewContractDynamoRepository(ddb *dynamodb.Client) *ContractDynamoRepository {
	return &ContractDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONTRACTS_TABLE", defaultContractsTableName),
	}
}

func (r *ContractDynamoRepository) GetByID(ctx context.Context, id string) (entities.Contract, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Contract{}, err
	}
	if len(out.Item) == 0 {
		return entities.Contract{}, nil
	}

	var it contractItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Contract{}, err
	}
	return entities.Contract{
		ID:                it.ID,
		CustomerID:        it.CustomerID,
		VehicleID:         it.VehicleID,
		LoanApplicationID: it.LoanApplicationID,
		IsLeaseToOwn:      it.IsLeaseToOwn,
		CreatedAt:         parseTime(it.CreatedAt),
	}, nil
}
