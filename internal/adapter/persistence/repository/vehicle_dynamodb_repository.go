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
	defaultVehiclesTableName             = "vehicles"
	defaultVehicleStatusHistoryTableName = "vehicle_status_history"
)

type vehicleItem struct {
	ID        string `dynamodbav:"id"`
	Plate     string `dynamodbav:"plate"`
	Model     string `dynamodbav:"model"`
	Status    string `dynamodbav:"status"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type vehicleStatusChangeItem struct {
	ID         string `dynamodbav:"id"`
	VehicleID  string `dynamodbav:"vehicle_id"`
	FromStatus string `dynamodbav:"from_status"`
	ToStatus   string `dynamodbav:"to_status"`
	Actor      string `dynamodbav:"actor"`
	ChangedAt  string `dynamodbav:"changed_at"`
}

// VehicleDynamoRepository persists Vehicle entities and their status history
// in DynamoDB.
//
// Table requirements:
//   - vehicles PK: id (string)
//   - vehicle_status_history PK: id (uuid), GSI vehicle_id-index
//
// TransitionStatus is a compare-and-swap on the status attribute: the RESERVED
// -> RENTED handover can only fire once per contract.

type VehicleDynamoRepository struct {
	ddb          *dynamodb.Client
	tableName    string
	historyTable string
}

var _ interfaces.IVehicleRepository = (*VehicleDynamoRepository)(nil)

func NewVehicleDynamoRepository(ddb *dynamodb.Client) *VehicleDynamoRepository {
	return &VehicleDynamoRepository{
		ddb:          ddb,
		tableName:    getenvDefault("VEHICLES_TABLE", defaultVehiclesTableName),
		historyTable: getenvDefault("VEHICLE_STATUS_HISTORY_TABLE", defaultVehicleStatusHistoryTableName),
	}
}

func (r *VehicleDynamoRepository) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Vehicle{}, err
	}
	if len(out.Item) == 0 {
		return entities.Vehicle{}, nil
	}

	var it vehicleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Vehicle{}, err
	}
	return entities.Vehicle{
		ID:        it.ID,
		Plate:     it.Plate,
		Model:     it.Model,
		Status:    entities.VehicleStatus(it.Status),
		UpdatedAt: parseTime(it.UpdatedAt),
	}, nil
}

func (r *VehicleDynamoRepository) TransitionStatus(ctx context.Context, id string, from, to entities.VehicleStatus) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
		ConditionExpression: aws.String("#status = :from"),
		ExpressionAttributeNames: map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
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

func (r *VehicleDynamoRepository) AppendStatusHistory(ctx context.Context, change entities.VehicleStatusChange) error {
	it := vehicleStatusChangeItem{
		ID:         change.ID,
		VehicleID:  change.VehicleID,
		FromStatus: string(change.FromStatus),
		ToStatus:   string(change.ToStatus),
		Actor:      change.Actor,
		ChangedAt:  change.ChangedAt.UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.historyTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}
