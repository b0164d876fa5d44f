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
	defaultExpensesTableName   = "expenses"
	defaultWarrantiesTableName = "warranties"
)

type expenseItem struct {
	ID        string  `dynamodbav:"id"`
	Title     string  `dynamodbav:"title"`
	Amount    float64 `dynamodbav:"amount"`
	Date      string  `dynamodbav:"date"`
	DateKey   string  `dynamodbav:"date_key"`
	CreatedAt string  `dynamodbav:"created_at"`
	UpdatedAt string  `dynamodbav:"updated_at"`
}

type warrantyItem struct {
	ID          string `dynamodbav:"id"`
	CustomerID  string `dynamodbav:"customer_id"`
	VehicleID   string `dynamodbav:"vehicle_id,omitempty"`
	Description string `dynamodbav:"description"`
	IssuedAt    string `dynamodbav:"issued_at"`
	DateKey     string `dynamodbav:"date_key"`
	ValidUntil  string `dynamodbav:"valid_until"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// ExpenseDynamoRepository persists Expense records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ExpenseDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IExpenseRepository = (*ExpenseDynamoRepository)(nil)

func NewExpenseDynamoRepository(ddb *dynamodb.Client) *ExpenseDynamoRepository {
	return &ExpenseDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EXPENSES_TABLE", defaultExpensesTableName),
	}
}

func (r *ExpenseDynamoRepository) Create(ctx context.Context, e entities.Expense) (entities.Expense, error) {
	av, err := attributevalue.MarshalMap(toExpenseItem(e))
	if err != nil {
		return entities.Expense{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Expense{}, err
	}
	return e, nil
}

func (r *ExpenseDynamoRepository) GetByID(ctx context.Context, id string) (entities.Expense, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Expense{}, err
	}
	if len(out.Item) == 0 {
		return entities.Expense{}, nil
	}
	var it expenseItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Expense{}, err
	}
	return fromExpenseItem(it), nil
}

func (r *ExpenseDynamoRepository) List(ctx context.Context, filter entities.DateFilter) ([]entities.Expense, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if expr, names, values, ok := dateRangeFilter("date_key", filter); ok {
		in.FilterExpression = aws.String(expr)
		in.ExpressionAttributeNames = names
		in.ExpressionAttributeValues = values
	}
	out, err := r.ddb.Scan(ctx, in)
	if err != nil {
		return nil, err
	}
	items := make([]entities.Expense, 0, len(out.Items))
	for _, raw := range out.Items {
		var it expenseItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromExpenseItem(it))
	}
	return items, nil
}

func (r *ExpenseDynamoRepository) Update(ctx context.Context, e entities.Expense) (entities.Expense, error) {
	av, err := attributevalue.MarshalMap(toExpenseItem(e))
	if err != nil {
		return entities.Expense{}, err
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
			return entities.Expense{}, nil
		}
		return entities.Expense{}, err
	}
	return e, nil
}

func (r *ExpenseDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
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

func toExpenseItem(e entities.Expense) expenseItem {
	return expenseItem{
		ID:        e.ID,
		Title:     e.Title,
		Amount:    e.Amount,
		Date:      timeToString(e.Date),
		DateKey:   e.Date.UTC().Format(dateAttrLayout),
		CreatedAt: timeToString(e.CreatedAt),
		UpdatedAt: timeToString(e.UpdatedAt),
	}
}

func fromExpenseItem(it expenseItem) entities.Expense {
	return entities.Expense{
		ID:        it.ID,
		Title:     it.Title,
		Amount:    it.Amount,
		Date:      timeFromString(it.Date),
		CreatedAt: timeFromString(it.CreatedAt),
		UpdatedAt: timeFromString(it.UpdatedAt),
	}
}

// WarrantyDynamoRepository persists Warranty records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type WarrantyDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWarrantyRepository = (*WarrantyDynamoRepository)(nil)

func NewWarrantyDynamoRepository(ddb *dynamodb.Client) *WarrantyDynamoRepository {
	return &WarrantyDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WARRANTIES_TABLE", defaultWarrantiesTableName),
	}
}

func (r *WarrantyDynamoRepository) Create(ctx context.Context, w entities.Warranty) (entities.Warranty, error) {
	av, err := attributevalue.MarshalMap(toWarrantyItem(w))
	if err != nil {
		return entities.Warranty{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Warranty{}, err
	}
	return w, nil
}

func (r *WarrantyDynamoRepository) GetByID(ctx context.Context, id string) (entities.Warranty, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Warranty{}, err
	}
	if len(out.Item) == 0 {
		return entities.Warranty{}, nil
	}
	var it warrantyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Warranty{}, err
	}
	return fromWarrantyItem(it), nil
}

func (r *WarrantyDynamoRepository) List(ctx context.Context, filter entities.DateFilter) ([]entities.Warranty, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if expr, names, values, ok := dateRangeFilter("date_key", filter); ok {
		in.FilterExpression = aws.String(expr)
		in.ExpressionAttributeNames = names
		in.ExpressionAttributeValues = values
	}
	out, err := r.ddb.Scan(ctx, in)
	if err != nil {
		return nil, err
	}
	items := make([]entities.Warranty, 0, len(out.Items))
	for _, raw := range out.Items {
		var it warrantyItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromWarrantyItem(it))
	}
	return items, nil
}

func (r *WarrantyDynamoRepository) Update(ctx context.Context, w entities.Warranty) (entities.Warranty, error) {
	av, err := attributevalue.MarshalMap(toWarrantyItem(w))
	if err != nil {
		return entities.Warranty{}, err
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
			return entities.Warranty{}, nil
		}
		return entities.Warranty{}, err
	}
	return w, nil
}

func (r *WarrantyDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
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

func toWarrantyItem(w entities.Warranty) warrantyItem {
	return warrantyItem{
		ID:          w.ID,
		CustomerID:  w.CustomerID,
		VehicleID:   w.VehicleID,
		Description: w.Description,
		IssuedAt:    timeToString(w.IssuedAt),
		DateKey:     w.IssuedAt.UTC().Format(dateAttrLayout),
		ValidUntil:  timeToString(w.ValidUntil),
		CreatedAt:   timeToString(w.CreatedAt),
		UpdatedAt:   timeToString(w.UpdatedAt),
	}
}

func fromWarrantyItem(it warrantyItem) entities.Warranty {
	return entities.Warranty{
		ID:          it.ID,
		CustomerID:  it.CustomerID,
		VehicleID:   it.VehicleID,
		Description: it.Description,
		IssuedAt:    timeFromString(it.IssuedAt),
		ValidUntil:  timeFromString(it.ValidUntil),
		CreatedAt:   timeFromString(it.CreatedAt),
		UpdatedAt:   timeFromString(it.UpdatedAt),
	}
}
