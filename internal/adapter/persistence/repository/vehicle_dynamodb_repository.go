package repository

import (
	"context"
	"errors"

	"garagemate/internal/domain/entities"
	"garagemate/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultVehiclesTableName = "vehicles"
	vehiclesCustomerIDIndex  = "customer_id-index"
	vehiclesRegNoIndex       = "registration_number-index"
)

type vehicleItem struct {
	ID                 string `dynamodbav:"id"`
	Model              string `dynamodbav:"model,omitempty"`
	RegistrationNumber string `dynamodbav:"registration_number"`
	CustomerID         string `dynamodbav:"customer_id"`
	ServiceCount       int    `dynamodbav:"service_count"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

// VehicleDynamoRepository persists Vehicle entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-index (PK: customer_id)
//   - GSI: registration_number-index (PK: registration_number)
//
// service_count is additionally written by the work order transaction (ADD
// expression); Update here always carries the current value read by the
// usecase, which never edits it.

type VehicleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IVehicleRepository = (*VehicleDynamoRepository)(nil)

func NewVehicleDynamoRepository(ddb *dynamodb.Client) *VehicleDynamoRepository {
	return &VehicleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("VEHICLES_TABLE", defaultVehiclesTableName),
	}
}

func (r *VehicleDynamoRepository) Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	av, err := attributevalue.MarshalMap(toVehicleItem(v))
	if err != nil {
		return entities.Vehicle{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Vehicle{}, err
	}
	return v, nil
}

func (r *VehicleDynamoRepository) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
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
	return fromVehicleItem(it), nil
}

func (r *VehicleDynamoRepository) GetByRegistrationNumber(ctx context.Context, regNo string) (entities.Vehicle, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(vehiclesRegNoIndex),
		KeyConditionExpression: aws.String("registration_number = :regno"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":regno": &types.AttributeValueMemberS{Value: regNo},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Vehicle{}, err
	}
	if len(out.Items) == 0 {
		return entities.Vehicle{}, nil
	}
	var it vehicleItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Vehicle{}, err
	}
	return fromVehicleItem(it), nil
}

func (r *VehicleDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Vehicle, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(vehiclesCustomerIDIndex),
		KeyConditionExpression: aws.String("customer_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: customerID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalVehicles(out.Items)
}

func (r *VehicleDynamoRepository) List(ctx context.Context) ([]entities.Vehicle, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	return unmarshalVehicles(out.Items)
}

func (r *VehicleDynamoRepository) Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	av, err := attributevalue.MarshalMap(toVehicleItem(v))
	if err != nil {
		return entities.Vehicle{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Vehicle{}, nil
		}
		return entities.Vehicle{}, err
	}
	return v, nil
}

func (r *VehicleDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                aws.String(r.tableName),
		Key:                      map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func unmarshalVehicles(raw []map[string]types.AttributeValue) ([]entities.Vehicle, error) {
	items := make([]entities.Vehicle, 0, len(raw))
	for _, m := range raw {
		var it vehicleItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromVehicleItem(it))
	}
	return items, nil
}

func toVehicleItem(v entities.Vehicle) vehicleItem {
	return vehicleItem{
		ID:                 v.ID,
		Model:              v.Model,
		RegistrationNumber: v.RegistrationNumber,
		CustomerID:         v.CustomerID,
		ServiceCount:       v.ServiceCount,
		CreatedAt:          timeToString(v.CreatedAt),
		UpdatedAt:          timeToString(v.UpdatedAt),
	}
}

func fromVehicleItem(it vehicleItem) entities.Vehicle {
	return entities.Vehicle{
		ID:                 it.ID,
		Model:              it.Model,
		RegistrationNumber: it.RegistrationNumber,
		CustomerID:         it.CustomerID,
		ServiceCount:       it.ServiceCount,
		CreatedAt:          timeFromString(it.CreatedAt),
		UpdatedAt:          timeFromString(it.UpdatedAt),
	}
}
