package repository

import (
	"context"
	"testing"

	"campomarket/internal/app/kvstore"
	"campomarket/internal/app/role"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*Repository, kvstore.Store) {
	t.Helper()

	kv, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)

	repo, err := New(kv, "campomarket")
	require.NoError(t, err)
	return repo, kv
}

func TestNew_FreshBackendBootstraps(t *testing.T) {
	// Полностью пустое хранилище: ни одного ключа. Отсутствие каждого
	// ключа равнозначно пустой коллекции, сидится только каталог
	kv, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)

	repo, err := New(kv, "campomarket")
	require.NoError(t, err)

	assert.Len(t, repo.ListProducts(), 6)
	assert.Nil(t, repo.FindUserByEmail("ana@campo.mx"))
	assert.Empty(t, repo.GetCartView())
	assert.Empty(t, repo.OrdersForUser(1))
	assert.Nil(t, repo.CurrentUser())
}

func TestNew_OnlySomeKeysPresent(t *testing.T) {
	kv, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)

	// Есть только пользователи; корзина, заказы и сеанс отсутствуют
	users := `[{"id":1,"name":"Ana","email":"ana@campo.mx","password":"x","role":"consumer"}]`
	require.NoError(t, kv.Set(context.Background(), "campomarket_users", []byte(users)))

	repo, err := New(kv, "campomarket")
	require.NoError(t, err)

	require.NotNil(t, repo.FindUserByEmail("ana@campo.mx"))
	assert.Empty(t, repo.GetCartView())
	assert.Empty(t, repo.OrdersForUser(1))
}

func TestNew_SeedsDefaultProducts(t *testing.T) {
	repo, _ := newTestRepo(t)

	products := repo.ListProducts()
	require.Len(t, products, 6)
	assert.Equal(t, "Tomates Orgánicos", products[0].Name)
	assert.Equal(t, "2.5", products[0].Price.String())
	assert.Equal(t, 50, products[0].Stock)
	assert.Equal(t, "Fresas Silvestres", products[5].Name)

	for _, p := range products {
		assert.EqualValues(t, 0, p.ProducerID)
	}
}

func TestNew_EmptyProductsKeyIsNotReseeded(t *testing.T) {
	kv, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)

	// Пустая коллекция — это не отсутствие ключа, сид не выполняется
	require.NoError(t, kv.Set(context.Background(), "campomarket_products", []byte(`[]`)))

	repo, err := New(kv, "campomarket")
	require.NoError(t, err)
	assert.Empty(t, repo.ListProducts())
}

func TestRoundTrip_ReloadObservesPersistedState(t *testing.T) {
	repo, kv := newTestRepo(t)

	user, err := repo.RegisterUser("Ana", "ana@campo.mx", "secret", role.Consumer)
	require.NoError(t, err)
	require.NoError(t, repo.AddToCart(1, 2))
	require.NoError(t, repo.AddToCart(3, 1))
	_, err = repo.Checkout(user.ID)
	require.NoError(t, err)
	require.NoError(t, repo.AddToCart(2, 5))
	require.NoError(t, repo.SetCurrentUser(*user))

	// Новый репозиторий над тем же хранилищем — как рестарт процесса
	reloaded, err := New(kv, "campomarket")
	require.NoError(t, err)

	assert.Equal(t, repo.ListProducts(), reloaded.ListProducts())
	assert.Equal(t, repo.GetCartView(), reloaded.GetCartView())
	assert.Equal(t, repo.OrdersForUser(user.ID), reloaded.OrdersForUser(user.ID))

	u := reloaded.FindUserByEmail("ana@campo.mx")
	require.NotNil(t, u)
	assert.Equal(t, *user, *u)

	cur := reloaded.CurrentUser()
	require.NotNil(t, cur)
	assert.Equal(t, user.ID, cur.ID)
}

func TestClearCurrentUser_RemovesSessionKey(t *testing.T) {
	repo, kv := newTestRepo(t)

	user, err := repo.RegisterUser("Ana", "ana@campo.mx", "secret", role.Consumer)
	require.NoError(t, err)
	require.NoError(t, repo.SetCurrentUser(*user))
	require.NoError(t, repo.ClearCurrentUser())

	_, err = kv.Get(context.Background(), "campomarket_current_user")
	assert.ErrorIs(t, err, kvstore.ErrNoKey)

	reloaded, err := New(kv, "campomarket")
	require.NoError(t, err)
	assert.Nil(t, reloaded.CurrentUser())
}
