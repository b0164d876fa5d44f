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
	defaultEmployeesTableName = "employees"
	defaultSalariesTableName  = "salaries"
)

type employeeItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Phone     string `dynamodbav:"phone,omitempty"`
	Role      string `dynamodbav:"role,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type salaryItem struct {
	ID         string  `dynamodbav:"id"`
	EmployeeID string  `dynamodbav:"employee_id"`
	BaseSalary float64 `dynamodbav:"base_salary"`
	Bonus      float64 `dynamodbav:"bonus,omitempty"`
	Date       string  `dynamodbav:"date"`
	// date_key is the payout day as "2006-01-02" for calendar filters.
	DateKey   string `dynamodbav:"date_key"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// EmployeeDynamoRepository persists Employee entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type EmployeeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEmployeeRepository = (*EmployeeDynamoRepository)(nil)

func NewEmployeeDynamoRepository(ddb *dynamodb.Client) *EmployeeDynamoRepository {
	return &EmployeeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EMPLOYEES_TABLE", defaultEmployeesTableName),
	}
}

func (r *EmployeeDynamoRepository) Create(ctx context.Context, e entities.Employee) (entities.Employee, error) {
	av, err := attributevalue.MarshalMap(toEmployeeItem(e))
	if err != nil {
		return entities.Employee{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Employee{}, err
	}
	return e, nil
}

func (r *EmployeeDynamoRepository) GetByID(ctx context.Context, id string) (entities.Employee, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Employee{}, err
	}
	if len(out.Item) == 0 {
		return entities.Employee{}, nil
	}
	var it employeeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Employee{}, err
	}
	return fromEmployeeItem(it), nil
}

func (r *EmployeeDynamoRepository) List(ctx context.Context) ([]entities.Employee, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	items := make([]entities.Employee, 0, len(out.Items))
	for _, raw := range out.Items {
		var it employeeItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromEmployeeItem(it))
	}
	return items, nil
}

func (r *EmployeeDynamoRepository) Update(ctx context.Context, e entities.Employee) (entities.Employee, error) {
	av, err := attributevalue.MarshalMap(toEmployeeItem(e))
	if err != nil {
		return entities.Employee{}, err
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
			return entities.Employee{}, nil
		}
		return entities.Employee{}, err
	}
	return e, nil
}

func (r *EmployeeDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
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

func toEmployeeItem(e entities.Employee) employeeItem {
	return employeeItem{
		ID:        e.ID,
		Name:      e.Name,
		Phone:     e.Phone,
		Role:      e.Role,
		CreatedAt: timeToString(e.CreatedAt),
		UpdatedAt: timeToString(e.UpdatedAt),
	}
}

func fromEmployeeItem(it employeeItem) entities.Employee {
	return entities.Employee{
		ID:        it.ID,
		Name:      it.Name,
		Phone:     it.Phone,
		Role:      it.Role,
		CreatedAt: timeFromString(it.CreatedAt),
		UpdatedAt: timeFromString(it.UpdatedAt),
	}
}

// SalaryDynamoRepository persists Salary payouts in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type SalaryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISalaryRepository = (*SalaryDynamoRepository)(nil)

func NewSalaryDynamoRepository(ddb *dynamodb.Client) *SalaryDynamoRepository {
	return &SalaryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SALARIES_TABLE", defaultSalariesTableName),
	}
}

func (r *SalaryDynamoRepository) Create(ctx context.Context, s entities.Salary) (entities.Salary, error) {
	av, err := attributevalue.MarshalMap(toSalaryItem(s))
	if err != nil {
		return entities.Salary{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Salary{}, err
	}
	return s, nil
}

func (r *SalaryDynamoRepository) GetByID(ctx context.Context, id string) (entities.Salary, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Salary{}, err
	}
	if len(out.Item) == 0 {
		return entities.Salary{}, nil
	}
	var it salaryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Salary{}, err
	}
	return fromSalaryItem(it), nil
}

func (r *SalaryDynamoRepository) List(ctx context.Context, filter entities.DateFilter) ([]entities.Salary, error) {
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
	items := make([]entities.Salary, 0, len(out.Items))
	for _, raw := range out.Items {
		var it salaryItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromSalaryItem(it))
	}
	return items, nil
}

func (r *SalaryDynamoRepository) Update(ctx context.Context, s entities.Salary) (entities.Salary, error) {
	av, err := attributevalue.MarshalMap(toSalaryItem(s))
	if err != nil {
		return entities.Salary{}, err
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
			return entities.Salary{}, nil
		}
		return entities.Salary{}, err
	}
	return s, nil
}

func (r *SalaryDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
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

func toSalaryItem(s entities.Salary) salaryItem {
	return salaryItem{
		ID:         s.ID,
		EmployeeID: s.EmployeeID,
		BaseSalary: s.BaseSalary,
		Bonus:      s.Bonus,
		Date:       timeToString(s.Date),
		DateKey:    s.Date.UTC().Format(dateAttrLayout),
		CreatedAt:  timeToString(s.CreatedAt),
		UpdatedAt:  timeToString(s.UpdatedAt),
	}
}

func fromSalaryItem(it salaryItem) entities.Salary {
	return entities.Salary{
		ID:         it.ID,
		EmployeeID: it.EmployeeID,
		BaseSalary: it.BaseSalary,
		Bonus:      it.Bonus,
		Date:       timeFromString(it.Date),
		CreatedAt:  timeFromString(it.CreatedAt),
		UpdatedAt:  timeFromString(it.UpdatedAt),
	}
}
