package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_SetGet(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "campomarket_users", []byte(`[{"id":1}]`)))

	data, err := store.Get(ctx, "campomarket_users")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1}]`, string(data))
}

func TestFileStore_MissingKey(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "campomarket_orders")
	assert.ErrorIs(t, err, ErrNoKey)
}

func TestFileStore_Overwrite(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "campomarket_cart", []byte(`[]`)))
	require.NoError(t, store.Set(ctx, "campomarket_cart", []byte(`[{"productId":2,"quantity":1}]`)))

	data, err := store.Get(ctx, "campomarket_cart")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"productId":2,"quantity":1}]`, string(data))
}

func TestFileStore_Delete(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "campomarket_current_user", []byte(`{"id":1}`)))
	require.NoError(t, store.Delete(ctx, "campomarket_current_user"))

	_, err = store.Get(ctx, "campomarket_current_user")
	assert.ErrorIs(t, err, ErrNoKey)

	// Повторное удаление отсутствующего ключа — не ошибка
	require.NoError(t, store.Delete(ctx, "campomarket_current_user"))
}

func TestKey(t *testing.T) {
	assert.Equal(t, "campomarket_products", Key("campomarket", KeyProducts))
}
