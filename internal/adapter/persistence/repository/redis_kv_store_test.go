package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisKVStore_SetGetDelete(t *testing.T) {
	mr, client := newTestRedis(t)
	store := NewRedisKVStore(client, "shop")
	ctx := context.Background()

	_, found, err := store.Get(ctx, KeyCartProducts)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, KeyCartProducts, `{"version":1,"data":[]}`))
	assert.True(t, mr.Exists("shop:cart-products"))
	assert.Equal(t, 0, int(mr.TTL("shop:cart-products")))

	v, found, err := store.Get(ctx, KeyCartProducts)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"version":1,"data":[]}`, v)

	require.NoError(t, store.Delete(ctx, KeyCartProducts))
	assert.False(t, mr.Exists("shop:cart-products"))
}

func TestRedisKVStore_BackendErrorPropagates(t *testing.T) {
	mr, client := newTestRedis(t)
	store := NewRedisKVStore(client, "")
	mr.Close()

	_, _, err := store.Get(context.Background(), KeyAuthUser)
	assert.Error(t, err)
}

func TestRedisKVStore_WithTypedRepository(t *testing.T) {
	_, client := newTestRedis(t)
	repo := NewFavoritesRepository(NewRedisKVStore(client, ""))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, []string{"p-1", "p-2"}))
	ids, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"p-1", "p-2"}, ids)
}
