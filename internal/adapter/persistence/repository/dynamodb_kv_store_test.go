package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo keeps items keyed by the "key" attribute.
type fakeDynamo struct {
	items  map[string]map[string]types.AttributeValue
	tables []string
	err    error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func keyOf(m map[string]types.AttributeValue) string {
	if s, ok := m["key"].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tables = append(f.tables, aws.ToString(in.TableName))
	return &dynamodb.GetItemOutput{Item: f.items[keyOf(in.Key)]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tables = append(f.tables, aws.ToString(in.TableName))
	f.items[keyOf(in.Item)] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tables = append(f.tables, aws.ToString(in.TableName))
	delete(f.items, keyOf(in.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

func TestDynamoKVStore(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip with namespace and default table", func(t *testing.T) {
		ddb := newFakeDynamo()
		store := NewDynamoKVStore(ddb, "", "shop")
		store.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

		if err := store.Set(ctx, KeyFavoriteProducts, "payload"); err != nil {
			t.Fatalf("set: %v", err)
		}
		item, ok := ddb.items["shop:favorite-products"]
		if !ok {
			t.Fatalf("expected namespaced item, got %v", ddb.items)
		}
		if v := item["updated_at"].(*types.AttributeValueMemberS).Value; v != "2026-01-02T03:04:05Z" {
			t.Fatalf("unexpected updated_at %q", v)
		}

		v, found, err := store.Get(ctx, KeyFavoriteProducts)
		if err != nil || !found || v != "payload" {
			t.Fatalf("unexpected get: v=%q found=%v err=%v", v, found, err)
		}

		if err := store.Delete(ctx, KeyFavoriteProducts); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if _, found, _ := store.Get(ctx, KeyFavoriteProducts); found {
			t.Fatalf("expected deleted")
		}
		for _, tbl := range ddb.tables {
			if tbl != DefaultKVTableName {
				t.Fatalf("unexpected table %q", tbl)
			}
		}
	})

	t.Run("backend error is wrapped", func(t *testing.T) {
		boom := errors.New("throttled")
		ddb := newFakeDynamo()
		ddb.err = boom
		store := NewDynamoKVStore(ddb, "kv", "")

		if _, _, err := store.Get(ctx, KeyAuthUser); !errors.Is(err, boom) {
			t.Fatalf("expected wrapped backend error, got %v", err)
		}
		if err := store.Set(ctx, KeyAuthUser, "x"); !errors.Is(err, boom) {
			t.Fatalf("expected wrapped backend error, got %v", err)
		}
	})
}
