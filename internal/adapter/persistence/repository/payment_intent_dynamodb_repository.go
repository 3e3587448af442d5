package repository

import (
	"context"

	"paybridge/internal/domain/entities"
	"paybridge/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentIntentsTableName = "payment_intents"
	paymentIntentsOrderIndex       = "order_id-index"
)

// PaymentIntentDynamoRepository stores one row per create attempt.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id, SK: created_at)
type PaymentIntentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentIntentStore = (*PaymentIntentDynamoRepository)(nil)

func NewPaymentIntentDynamoRepository(ddb *dynamodb.Client) *PaymentIntentDynamoRepository {
	return &PaymentIntentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_INTENTS_TABLE", defaultPaymentIntentsTableName),
	}
}

type paymentIntentItem struct {
	ID            string `dynamodbav:"id"`
	Provider      string `dynamodbav:"provider"`
	OrderID       string `dynamodbav:"order_id"`
	Amount        int64  `dynamodbav:"amount"`
	Currency      string `dynamodbav:"currency,omitempty"`
	Success       bool   `dynamodbav:"success"`
	TransactionID string `dynamodbav:"transaction_id,omitempty"`
	ErrorCode     string `dynamodbav:"error_code,omitempty"`
	CreatedAt     int64  `dynamodbav:"created_at"`
}

func (r *PaymentIntentDynamoRepository) Put(ctx context.Context, intent entities.PaymentIntent) error {
	av, err := attributevalue.MarshalMap(paymentIntentItem(intent))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *PaymentIntentDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.PaymentIntent, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentIntentsOrderIndex),
		KeyConditionExpression: aws.String("order_id = :order_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":order_id": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	intents := make([]entities.PaymentIntent, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentIntentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		intents = append(intents, entities.PaymentIntent(it))
	}
	return intents, nil
}
