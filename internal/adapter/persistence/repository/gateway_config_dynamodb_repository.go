package repository

import (
	"context"
	"strconv"

	"github.com/kwamkid/joolz-factory-sub006/internal/domain/entities"
	"github.com/kwamkid/joolz-factory-sub006/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSettingsTableName = "settings"

	// Fixed settings key for the hosted payment-link gateway.
	gatewayConfigID           = "bill_online/payment_gateway"
	gatewayConfigChannelGroup = "bill_online"
	gatewayConfigType         = "payment_gateway"
)

type channelRuleItem struct {
	Enabled       bool     `dynamodbav:"enabled"`
	MinAmount     string   `dynamodbav:"min_amount,omitempty"`
	CustomerTypes []string `dynamodbav:"customer_types,omitempty"`
}

type gatewayConfigItem struct {
	ID           string                     `dynamodbav:"id"`
	ChannelGroup string                     `dynamodbav:"channel_group"`
	Type         string                     `dynamodbav:"type"`
	Active       bool                       `dynamodbav:"active"`
	MerchantID   string                     `dynamodbav:"merchant_id,omitempty"`
	APIKey       string                     `dynamodbav:"api_key,omitempty"`
	Environment  string                     `dynamodbav:"environment,omitempty"`
	Channels     map[string]channelRuleItem `dynamodbav:"channels,omitempty"`
}

// GatewayConfigDynamoRepository resolves the active gateway configuration
// from the settings table.
//
// Table requirements:
//   - PK: id (string); the gateway row uses the fixed id above.
//
// The raw settings item is decoded into the validated GatewayConfig struct
// here, once, so nothing downstream touches untyped configuration blobs.

type GatewayConfigDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IGatewayConfigRepository = (*GatewayConfigDynamoRepository)(nil)

func NewGatewayConfigDynamoRepository(ddb *dynamodb.Client) *GatewayConfigDynamoRepository {
	return &GatewayConfigDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SETTINGS_TABLE", defaultSettingsTableName),
	}
}

func (r *GatewayConfigDynamoRepository) GetActive(ctx context.Context) (entities.GatewayConfig, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: gatewayConfigID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.GatewayConfig{}, err
	}
	if len(out.Item) == 0 {
		return entities.GatewayConfig{}, nil
	}

	var it gatewayConfigItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.GatewayConfig{}, err
	}
	if !it.Active || it.ChannelGroup != gatewayConfigChannelGroup || it.Type != gatewayConfigType {
		return entities.GatewayConfig{}, nil
	}
	return fromGatewayConfigItem(it), nil
}

func fromGatewayConfigItem(it gatewayConfigItem) entities.GatewayConfig {
	channels := make(map[string]entities.ChannelRule, len(it.Channels))
	for code, rule := range it.Channels {
		minAmount, _ := strconv.ParseFloat(rule.MinAmount, 64)
		channels[code] = entities.ChannelRule{
			Enabled:       rule.Enabled,
			MinAmount:     minAmount,
			CustomerTypes: rule.CustomerTypes,
		}
	}
	return entities.GatewayConfig{
		Active:      it.Active,
		MerchantID:  it.MerchantID,
		APIKey:      it.APIKey,
		Environment: entities.GatewayEnvironment(it.Environment),
		Channels:    channels,
	}
}
