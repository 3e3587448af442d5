package repository

import (
	"context"
	"errors"
	"strconv"

	"paybridge/internal/domain/entities"
	"paybridge/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTransactionsTableName = "transactions"
	transactionsCreateTimeIndex  = "create_time-index"

	// All transactions share one GSI partition so statement queries can
	// range over create_time with a single Query call.
	transactionsIndexPartition = "TXN"
)

type transactionItem struct {
	ID          string            `dynamodbav:"id"`
	IndexPK     string            `dynamodbav:"gsi1pk"`
	OrderID     string            `dynamodbav:"order_id"`
	Amount      int64             `dynamodbav:"amount"`
	State       int               `dynamodbav:"state"`
	CreateTime  int64             `dynamodbav:"create_time"`
	PerformTime int64             `dynamodbav:"perform_time,omitempty"`
	CancelTime  int64             `dynamodbav:"cancel_time,omitempty"`
	Reason      *int              `dynamodbav:"reason,omitempty"`
	Account     map[string]string `dynamodbav:"account,omitempty"`
}

// TransactionDynamoRepository persists gateway transactions in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: create_time-index (PK: gsi1pk, SK: create_time)
//
// The conditional put on Create plus last-writer-wins Save satisfy the
// at-most-one-writer-per-transaction-id contract the webhook dispatcher
// expects, because the gateway serializes calls per transaction.

type TransactionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITransactionStore = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb *dynamodb.Client) *TransactionDynamoRepository {
	return &TransactionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRANSACTIONS_TABLE", defaultTransactionsTableName),
	}
}

func (r *TransactionDynamoRepository) Get(ctx context.Context, id string) (entities.Transaction, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	if len(out.Item) == 0 {
		return entities.Transaction{}, interfaces.ErrTransactionNotFound
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it), nil
}

func (r *TransactionDynamoRepository) Create(ctx context.Context, txn entities.Transaction) error {
	av, err := attributevalue.MarshalMap(toTransactionItem(txn))
	if err != nil {
		return err
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
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return errors.New("transaction already exists")
		}
		return err
	}
	return nil
}

func (r *TransactionDynamoRepository) Save(ctx context.Context, txn entities.Transaction) error {
	av, err := attributevalue.MarshalMap(toTransactionItem(txn))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return interfaces.ErrTransactionNotFound
		}
		return err
	}
	return nil
}

func (r *TransactionDynamoRepository) ListByCreatedRange(ctx context.Context, from, to int64) ([]entities.Transaction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(transactionsCreateTimeIndex),
		KeyConditionExpression: aws.String("gsi1pk = :pk AND create_time BETWEEN :from AND :to"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk":   &types.AttributeValueMemberS{Value: transactionsIndexPartition},
			":from": &types.AttributeValueMemberN{Value: strconv.FormatInt(from, 10)},
			":to":   &types.AttributeValueMemberN{Value: strconv.FormatInt(to, 10)},
		},
	})
	if err != nil {
		return nil, err
	}

	txns := make([]entities.Transaction, 0, len(out.Items))
	for _, raw := range out.Items {
		var it transactionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		txns = append(txns, fromTransactionItem(it))
	}
	return txns, nil
}

func toTransactionItem(txn entities.Transaction) transactionItem {
	return transactionItem{
		ID:          txn.ID,
		IndexPK:     transactionsIndexPartition,
		OrderID:     txn.OrderID,
		Amount:      txn.Amount,
		State:       int(txn.State),
		CreateTime:  txn.CreateTime,
		PerformTime: txn.PerformTime,
		CancelTime:  txn.CancelTime,
		Reason:      txn.Reason,
		Account:     txn.Account,
	}
}

func fromTransactionItem(it transactionItem) entities.Transaction {
	return entities.Transaction{
		ID:          it.ID,
		OrderID:     it.OrderID,
		Amount:      it.Amount,
		State:       entities.TransactionState(it.State),
		CreateTime:  it.CreateTime,
		PerformTime: it.PerformTime,
		CancelTime:  it.CancelTime,
		Reason:      it.Reason,
		Account:     it.Account,
	}
}
