package repository

import (
	"context"
	"fmt"
	"strconv"

	"garagemate/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCountersTableName = "counters"

// CounterDynamoRepository implements the sequence generator on a DynamoDB
// atomic counter.
//
// Table requirements:
//   - PK: id (string, the counter name)
//
// Next is a single UpdateItem with an ADD expression: DynamoDB applies the
// increment atomically and creates the item on first use, so concurrent
// callers can never observe the same value.

type CounterDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICounterRepository = (*CounterDynamoRepository)(nil)

func NewCounterDynamoRepository(ddb *dynamodb.Client) *CounterDynamoRepository {
	return &CounterDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
	}
}

func (r *CounterDynamoRepository) Next(ctx context.Context, counterName string) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(r.tableName),
		Key:              map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: counterName}},
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "sequence_value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	attr, ok := out.Attributes["sequence_value"]
	if !ok {
		return 0, fmt.Errorf("counter %s: sequence_value missing from update result", counterName)
	}
	n, ok := attr.(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("counter %s: sequence_value is not a number", counterName)
	}
	return strconv.ParseInt(n.Value, 10, 64)
}
