package repository

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultKVTableName = "storefront-kv"

// dynamoKVAPI is the subset of *dynamodb.Client the store needs.
type dynamoKVAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

type kvItem struct {
	Key       string `dynamodbav:"key"`
	Value     string `dynamodbav:"value"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// DynamoKVStore persists storefront documents in DynamoDB.
//
// Table requirements:
//   - PK: key (string)
//
// One item per storage key; writes replace the whole item (last writer wins).
type DynamoKVStore struct {
	ddb       dynamoKVAPI
	tableName string
	namespace string
	now       func() time.Time
}

var _ interfaces.IKeyValueStore = (*DynamoKVStore)(nil)

func NewDynamoKVStore(ddb dynamoKVAPI, tableName, namespace string) *DynamoKVStore {
	if tableName == "" {
		tableName = DefaultKVTableName
	}
	return &DynamoKVStore{
		ddb:       ddb,
		tableName: tableName,
		namespace: namespace,
		now:       time.Now,
	}
}

func (s *DynamoKVStore) Get(ctx context.Context, key string) (string, bool, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.tableName),
		Key:            s.keyAttr(key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", false, fmt.Errorf("dynamodb get %q: %w", key, err)
	}
	if len(out.Item) == 0 {
		return "", false, nil
	}

	var it kvItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return "", false, fmt.Errorf("dynamodb decode %q: %w", key, err)
	}
	return it.Value, true, nil
}

func (s *DynamoKVStore) Set(ctx context.Context, key, value string) error {
	av, err := attributevalue.MarshalMap(kvItem{
		Key:       namespacedKey(s.namespace, key),
		Value:     value,
		UpdatedAt: s.now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("dynamodb put %q: %w", key, err)
	}
	return nil
}

func (s *DynamoKVStore) Delete(ctx context.Context, key string) error {
	_, err := s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key:       s.keyAttr(key),
	})
	if err != nil {
		return fmt.Errorf("dynamodb delete %q: %w", key, err)
	}
	return nil
}

func (s *DynamoKVStore) keyAttr(key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"key": &types.AttributeValueMemberS{Value: namespacedKey(s.namespace, key)},
	}
}
