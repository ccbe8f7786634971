package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/kwamkid/joolz-factory-sub006/internal/domain/entities"
	"github.com/kwamkid/joolz-factory-sub006/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "orders"

type orderItem struct {
	ID            string `dynamodbav:"id"`
	OrderNumber   string `dynamodbav:"order_number"`
	TotalAmount   string `dynamodbav:"total_amount"`
	PaymentStatus string `dynamodbav:"payment_status"`
	OrderStatus   string `dynamodbav:"order_status"`
	CustomerID    string `dynamodbav:"customer_id,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// OrderDynamoRepository reads Order entities from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The order table is owned by the operations backend; this service only
// reads it and performs the conditional pending->paid flip on confirmation.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

// MarkPaid flips payment_status pending->paid. The condition makes
// concurrent confirmations and already-paid orders a no-op instead of an
// overwrite.
func (r *OrderDynamoRepository) MarkPaid(ctx context.Context, id string) (entities.Order, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #payment_status = :pending"),
		UpdateExpression:    aws.String("SET #payment_status = :paid, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":             "id",
			"#payment_status": "payment_status",
			"#updated_at":     "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":    &types.AttributeValueMemberS{Value: string(entities.OrderPaymentPending)},
			":paid":       &types.AttributeValueMemberS{Value: string(entities.OrderPaymentPaid)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func fromOrderItem(it orderItem) entities.Order {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	total, _ := strconv.ParseFloat(it.TotalAmount, 64)
	return entities.Order{
		ID:            it.ID,
		OrderNumber:   it.OrderNumber,
		TotalAmount:   total,
		PaymentStatus: entities.OrderPaymentStatus(it.PaymentStatus),
		OrderStatus:   entities.OrderStatus(it.OrderStatus),
		CustomerID:    it.CustomerID,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}
