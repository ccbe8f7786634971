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

const (
	defaultPaymentRecordsTableName = "payment_records"
	paymentRecordsOrderIDIndex     = "order_id-index"
	paymentRecordsLinkIDIndex      = "payment_link_id-index"
)

type paymentRecordItem struct {
	ID            string `dynamodbav:"id"`
	OrderID       string `dynamodbav:"order_id"`
	PaymentMethod string `dynamodbav:"payment_method"`
	Amount        string `dynamodbav:"amount"`
	Status        string `dynamodbav:"status"`

	PaymentLinkID  string `dynamodbav:"payment_link_id,omitempty"`
	PaymentLinkURL string `dynamodbav:"payment_link_url,omitempty"`
	GatewayStatus  string `dynamodbav:"gateway_status,omitempty"`

	GatewayPayload    map[string]interface{} `dynamodbav:"gateway_payload,omitempty"`
	GatewayPayloadRaw string                 `dynamodbav:"gateway_payload_raw,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// PaymentRecordDynamoRepository persists PaymentRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)
//   - GSI: payment_link_id-index (PK: payment_link_id)

type PaymentRecordDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRecordRepository = (*PaymentRecordDynamoRepository)(nil)

func NewPaymentRecordDynamoRepository(ddb *dynamodb.Client) *PaymentRecordDynamoRepository {
	return &PaymentRecordDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_RECORDS_TABLE", defaultPaymentRecordsTableName),
	}
}

func (r *PaymentRecordDynamoRepository) Create(ctx context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) {
	it := toPaymentRecordItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PaymentRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	return p, nil
}

func (r *PaymentRecordDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.PaymentRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentRecordsOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	records := make([]entities.PaymentRecord, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentRecordItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		records = append(records, fromPaymentRecordItem(it))
	}
	return records, nil
}

func (r *PaymentRecordDynamoRepository) GetByPaymentLinkID(ctx context.Context, paymentLinkID string) (entities.PaymentRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentRecordsLinkIDIndex),
		KeyConditionExpression: aws.String("payment_link_id = :lid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":lid": &types.AttributeValueMemberS{Value: paymentLinkID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if len(out.Items) == 0 {
		return entities.PaymentRecord{}, nil
	}

	var it paymentRecordItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.PaymentRecord{}, err
	}
	return fromPaymentRecordItem(it), nil
}

// CancelPendingByOrderID moves every pending record for order+method to
// cancelled. Each row is updated with a conditional write, so a record that
// transitioned concurrently (paid by a callback, cancelled by another
// request) is skipped rather than overwritten. Returns how many rows moved.
func (r *PaymentRecordDynamoRepository) CancelPendingByOrderID(ctx context.Context, orderID, paymentMethod string) (int, error) {
	records, err := r.ListByOrderID(ctx, orderID)
	if err != nil {
		return 0, err
	}

	cancelled := 0
	for _, rec := range records {
		if rec.Status != entities.PaymentRecordPending || rec.PaymentMethod != paymentMethod {
			continue
		}
		updated, err := r.TransitionStatus(ctx, rec.ID, entities.PaymentRecordPending, entities.PaymentRecordCancelled, rec.GatewayStatus)
		if err != nil {
			return cancelled, err
		}
		if updated.ID != "" {
			cancelled++
		}
	}
	return cancelled, nil
}

// TransitionStatus performs the conditional from->to status write. Returns
// the zero PaymentRecord when the condition fails (record absent or already
// out of the "from" status).
func (r *PaymentRecordDynamoRepository) TransitionStatus(ctx context.Context, id string, from, to entities.PaymentRecordStatus, gatewayStatus string) (entities.PaymentRecord, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to, #gateway_status = :gateway_status, #updated_at = :updated_at"),
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":         "status",
			"#gateway_status": "gateway_status",
			"#updated_at":     "updated_at",
		}, map[string]string{"#id": "id"}),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":           &types.AttributeValueMemberS{Value: string(from)},
			":to":             &types.AttributeValueMemberS{Value: string(to)},
			":gateway_status": &types.AttributeValueMemberS{Value: gatewayStatus},
			":updated_at":     &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PaymentRecord{}, nil
		}
		return entities.PaymentRecord{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.PaymentRecord{}, nil
	}

	var it paymentRecordItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PaymentRecord{}, err
	}
	return fromPaymentRecordItem(it), nil
}

func toPaymentRecordItem(p entities.PaymentRecord) paymentRecordItem {
	return paymentRecordItem{
		ID:                p.ID,
		OrderID:           p.OrderID,
		PaymentMethod:     p.PaymentMethod,
		Amount:            floatToString(p.Amount),
		Status:            string(p.Status),
		PaymentLinkID:     p.PaymentLinkID,
		PaymentLinkURL:    p.PaymentLinkURL,
		GatewayStatus:     p.GatewayStatus,
		GatewayPayload:    p.GatewayPayload,
		GatewayPayloadRaw: string(p.GatewayPayloadRaw),
		CreatedAt:         p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPaymentRecordItem(it paymentRecordItem) entities.PaymentRecord {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	return entities.PaymentRecord{
		ID:                it.ID,
		OrderID:           it.OrderID,
		PaymentMethod:     it.PaymentMethod,
		Amount:            amount,
		Status:            entities.PaymentRecordStatus(it.Status),
		PaymentLinkID:     it.PaymentLinkID,
		PaymentLinkURL:    it.PaymentLinkURL,
		GatewayStatus:     it.GatewayStatus,
		GatewayPayload:    it.GatewayPayload,
		GatewayPayloadRaw: []byte(it.GatewayPayloadRaw),
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
}
