package repository

import (
	"context"
	"errors"
	"log"
	"strconv"

	"garagemate/internal/domain/entities"
	"garagemate/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultWorkOrdersTableName = "work_orders"
	workOrdersVehicleIDIndex   = "vehicle_id-index"

	cancelReasonConditionFailed = "ConditionalCheckFailed"
)

// errConditionFailed marks a failed condition on the order item itself (id
// already exists on create, id missing on save/delete).
var errConditionFailed = errors.New("work order condition failed")

type workOrderServiceLine struct {
	ServiceID   string  `dynamodbav:"service_id,omitempty"`
	Name        string  `dynamodbav:"name"`
	Description string  `dynamodbav:"description,omitempty"`
	Price       float64 `dynamodbav:"price"`
	IsOffer     bool    `dynamodbav:"is_offer"`
}

type workOrderProductLine struct {
	ProductID string  `dynamodbav:"product_id"`
	Name      string  `dynamodbav:"name"`
	Price     float64 `dynamodbav:"price"`
	Quantity  int     `dynamodbav:"quantity"`
}

type workOrderCharge struct {
	Description  string  `dynamodbav:"description"`
	Price        float64 `dynamodbav:"price"`
	ForServiceID string  `dynamodbav:"for_service_id,omitempty"`
}

type workOrderItem struct {
	ID             string                 `dynamodbav:"id"`
	Serial         string                 `dynamodbav:"serial"`
	CustomerID     string                 `dynamodbav:"customer_id"`
	VehicleID      string                 `dynamodbav:"vehicle_id,omitempty"`
	Services       []workOrderServiceLine `dynamodbav:"services"`
	Products       []workOrderProductLine `dynamodbav:"products"`
	ServiceCharges []workOrderCharge      `dynamodbav:"service_charges"`

	DiscountType  string  `dynamodbav:"discount_type,omitempty"`
	DiscountValue float64 `dynamodbav:"discount_value,omitempty"`

	TotalServiceCharge float64 `dynamodbav:"total_service_charge"`
	TotalProductCost   float64 `dynamodbav:"total_product_cost"`
	TotalAmount        float64 `dynamodbav:"total_amount"`

	Status        string  `dynamodbav:"status"`
	PaymentMethod string  `dynamodbav:"payment_method"`
	CashAmount    float64 `dynamodbav:"cash_amount"`
	UPIAmount     float64 `dynamodbav:"upi_amount"`

	CreatedAt string `dynamodbav:"created_at"`
	// created_date duplicates the bill date as "2006-01-02" so calendar
	// filters can compare fixed-width strings.
	CreatedDate string `dynamodbav:"created_date"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// WorkOrderDynamoRepository persists WorkOrder aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: vehicle_id-index (PK: vehicle_id)
//
// The *Atomic operations wrap the order write and its stock/loyalty side
// effects in one TransactWriteItems call. A conditional stock decrement
// (`#stock >= :q`) guards every product touched, so concurrent orders cannot
// both take the last unit and nothing is persisted when any line falls
// short.

type WorkOrderDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	productsTable string
	vehiclesTable string
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderDynamoRepository)(nil)

func NewWorkOrderDynamoRepository(ddb *dynamodb.Client) *WorkOrderDynamoRepository {
	return &WorkOrderDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("WORK_ORDERS_TABLE", defaultWorkOrdersTableName),
		productsTable: getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
		vehiclesTable: getenvDefault("VEHICLES_TABLE", defaultVehiclesTableName),
	}
}

func (r *WorkOrderDynamoRepository) CreateAtomic(ctx context.Context, o entities.WorkOrder, fx entities.OrderSideEffects) (entities.WorkOrder, error) {
	put, err := r.orderPut(o, "attribute_not_exists(#id)")
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if err := r.transact(ctx, put, fx); err != nil {
		return entities.WorkOrder{}, err
	}
	return o, nil
}

func (r *WorkOrderDynamoRepository) SaveAtomic(ctx context.Context, o entities.WorkOrder, fx entities.OrderSideEffects) (entities.WorkOrder, error) {
	put, err := r.orderPut(o, "attribute_exists(#id)")
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if err := r.transact(ctx, put, fx); err != nil {
		if errors.Is(err, errConditionFailed) {
			return entities.WorkOrder{}, nil
		}
		return entities.WorkOrder{}, err
	}
	return o, nil
}

func (r *WorkOrderDynamoRepository) DeleteAtomic(ctx context.Context, id string, fx entities.OrderSideEffects) (bool, error) {
	del := types.TransactWriteItem{
		Delete: &types.Delete{
			TableName:                aws.String(r.tableName),
			Key:                      map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
			ConditionExpression:      aws.String("attribute_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		},
	}
	if err := r.transact(ctx, del, fx); err != nil {
		if errors.Is(err, errConditionFailed) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *WorkOrderDynamoRepository) orderPut(o entities.WorkOrder, condition string) (types.TransactWriteItem, error) {
	av, err := attributevalue.MarshalMap(toWorkOrderItem(o))
	if err != nil {
		return types.TransactWriteItem{}, err
	}
	return types.TransactWriteItem{
		Put: &types.Put{
			TableName:                aws.String(r.tableName),
			Item:                     av,
			ConditionExpression:      aws.String(condition),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		},
	}, nil
}

// transact runs the order write plus side effects as one transaction. Item
// order is fixed: order write first, stock adjustments next, loyalty last,
// so cancellation reasons can be mapped back to what failed.
func (r *WorkOrderDynamoRepository) transact(ctx context.Context, orderWrite types.TransactWriteItem, fx entities.OrderSideEffects) error {
	items := []types.TransactWriteItem{orderWrite}
	stockAt := map[int]string{}
	for _, adj := range fx.Stock {
		if adj.Quantity == 0 {
			continue
		}
		stockAt[len(items)] = adj.ProductID
		items = append(items, r.stockUpdate(adj))
	}
	loyaltyAt := -1
	if fx.LoyaltyDelta != 0 && fx.VehicleID != "" {
		loyaltyAt = len(items)
		items = append(items, r.loyaltyUpdate(fx.VehicleID, fx.LoyaltyDelta))
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err == nil {
		return nil
	}

	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return err
	}
	for i, reason := range tce.CancellationReasons {
		if aws.ToString(reason.Code) != cancelReasonConditionFailed {
			continue
		}
		if i == 0 {
			return errConditionFailed
		}
		if pid, ok := stockAt[i]; ok {
			return &interfaces.InsufficientStockError{ProductID: pid}
		}
		if i == loyaltyAt && fx.LoyaltyDelta < 0 {
			// Compensation would drive the loyalty counter negative; the
			// counter is already floored, retry without touching it.
			log.Printf("[workorder][repo] loyalty compensation floored vehicle_id=%s delta=%d", fx.VehicleID, fx.LoyaltyDelta)
			fx.LoyaltyDelta = 0
			return r.transact(ctx, orderWrite, fx)
		}
	}
	return err
}

func (r *WorkOrderDynamoRepository) stockUpdate(adj entities.StockAdjustment) types.TransactWriteItem {
	qty := adj.Quantity
	expr := "SET #stock = #stock - :q"
	cond := "attribute_exists(#id) AND #stock >= :q"
	if qty < 0 {
		// Restock during compensation.
		qty = -qty
		expr = "SET #stock = #stock + :q"
		cond = "attribute_exists(#id)"
	}
	return types.TransactWriteItem{
		Update: &types.Update{
			TableName:                aws.String(r.productsTable),
			Key:                      map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: adj.ProductID}},
			UpdateExpression:         aws.String(expr),
			ConditionExpression:      aws.String(cond),
			ExpressionAttributeNames: map[string]string{"#id": "id", "#stock": "stock"},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":q": &types.AttributeValueMemberN{Value: strconv.Itoa(qty)},
			},
		},
	}
}

func (r *WorkOrderDynamoRepository) loyaltyUpdate(vehicleID string, delta int) types.TransactWriteItem {
	cond := "attribute_exists(#id)"
	values := map[string]types.AttributeValue{
		":delta": &types.AttributeValueMemberN{Value: strconv.Itoa(delta)},
	}
	if delta < 0 {
		cond = "attribute_exists(#id) AND #sc >= :abs"
		values[":abs"] = &types.AttributeValueMemberN{Value: strconv.Itoa(-delta)}
	}
	return types.TransactWriteItem{
		Update: &types.Update{
			TableName:                 aws.String(r.vehiclesTable),
			Key:                       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: vehicleID}},
			UpdateExpression:          aws.String("ADD #sc :delta"),
			ConditionExpression:       aws.String(cond),
			ExpressionAttributeNames:  map[string]string{"#id": "id", "#sc": "service_count"},
			ExpressionAttributeValues: values,
		},
	}
}

func (r *WorkOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.WorkOrder{}, nil
	}
	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

func (r *WorkOrderDynamoRepository) List(ctx context.Context, filter entities.DateFilter) ([]entities.WorkOrder, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if expr, names, values, ok := dateRangeFilter("created_date", filter); ok {
		in.FilterExpression = aws.String(expr)
		in.ExpressionAttributeNames = names
		in.ExpressionAttributeValues = values
	}
	out, err := r.ddb.Scan(ctx, in)
	if err != nil {
		return nil, err
	}
	return unmarshalWorkOrders(out.Items)
}

func (r *WorkOrderDynamoRepository) ListByVehicleID(ctx context.Context, vehicleID string) ([]entities.WorkOrder, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(workOrdersVehicleIDIndex),
		KeyConditionExpression: aws.String("vehicle_id = :vid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":vid": &types.AttributeValueMemberS{Value: vehicleID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalWorkOrders(out.Items)
}

func unmarshalWorkOrders(raw []map[string]types.AttributeValue) ([]entities.WorkOrder, error) {
	items := make([]entities.WorkOrder, 0, len(raw))
	for _, m := range raw {
		var it workOrderItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromWorkOrderItem(it))
	}
	return items, nil
}

func toWorkOrderItem(o entities.WorkOrder) workOrderItem {
	it := workOrderItem{
		ID:                 o.ID,
		Serial:             o.Serial,
		CustomerID:         o.CustomerID,
		VehicleID:          o.VehicleID,
		DiscountType:       string(o.Discount.Type),
		DiscountValue:      o.Discount.Value,
		TotalServiceCharge: o.TotalServiceCharge,
		TotalProductCost:   o.TotalProductCost,
		TotalAmount:        o.TotalAmount,
		Status:             string(o.Status),
		PaymentMethod:      string(o.Payment.Method),
		CashAmount:         o.Payment.CashAmount,
		UPIAmount:          o.Payment.UPIAmount,
		CreatedAt:          timeToString(o.CreatedAt),
		CreatedDate:        o.CreatedAt.UTC().Format(dateAttrLayout),
		UpdatedAt:          timeToString(o.UpdatedAt),
	}
	for _, s := range o.Services {
		it.Services = append(it.Services, workOrderServiceLine(s))
	}
	for _, p := range o.Products {
		it.Products = append(it.Products, workOrderProductLine(p))
	}
	for _, c := range o.ServiceCharges {
		it.ServiceCharges = append(it.ServiceCharges, workOrderCharge(c))
	}
	return it
}

func fromWorkOrderItem(it workOrderItem) entities.WorkOrder {
	o := entities.WorkOrder{
		ID:         it.ID,
		Serial:     it.Serial,
		CustomerID: it.CustomerID,
		VehicleID:  it.VehicleID,
		Discount: entities.Discount{
			Type:  entities.DiscountType(it.DiscountType),
			Value: it.DiscountValue,
		},
		TotalServiceCharge: it.TotalServiceCharge,
		TotalProductCost:   it.TotalProductCost,
		TotalAmount:        it.TotalAmount,
		Status:             entities.WorkOrderStatus(it.Status),
		Payment: entities.PaymentDetails{
			Method:     entities.PaymentMethod(it.PaymentMethod),
			CashAmount: it.CashAmount,
			UPIAmount:  it.UPIAmount,
		},
		CreatedAt: timeFromString(it.CreatedAt),
		UpdatedAt: timeFromString(it.UpdatedAt),
	}
	for _, s := range it.Services {
		o.Services = append(o.Services, entities.ServiceLine(s))
	}
	for _, p := range it.Products {
		o.Products = append(o.Products, entities.ProductLine(p))
	}
	for _, c := range it.ServiceCharges {
		o.ServiceCharges = append(o.ServiceCharges, entities.ServiceCharge(c))
	}
	return o
}
