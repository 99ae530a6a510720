package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToCart_MergesLines(t *testing.T) {
	repo, _ := newTestRepo(t)

	require.NoError(t, repo.AddToCart(1, 2))
	require.NoError(t, repo.AddToCart(1, 3))

	view := repo.GetCartView()
	require.Len(t, view, 1)
	assert.EqualValues(t, 1, view[0].ProductID)
	assert.Equal(t, 5, view[0].Quantity)
}

func TestAddToCart_DefaultQuantity(t *testing.T) {
	repo, _ := newTestRepo(t)

	require.NoError(t, repo.AddToCart(2, 0))

	view := repo.GetCartView()
	require.Len(t, view, 1)
	assert.Equal(t, 1, view[0].Quantity)
}

func TestCartTotal_SeedScenario(t *testing.T) {
	repo, _ := newTestRepo(t)

	// 2 × 2.50 + 1 × 3.00 = 8.00
	require.NoError(t, repo.AddToCart(1, 2))
	require.NoError(t, repo.AddToCart(2, 1))

	assert.True(t, repo.CartTotal().Equal(mustDecimal(t, "8.00")),
		"total = %s", repo.CartTotal())
}

func TestUpdateCartLine_SetsExactQuantity(t *testing.T) {
	repo, _ := newTestRepo(t)

	require.NoError(t, repo.AddToCart(1, 2))
	require.NoError(t, repo.UpdateCartLine(1, 7))

	view := repo.GetCartView()
	require.Len(t, view, 1)
	assert.Equal(t, 7, view[0].Quantity)
}

func TestUpdateCartLine_AbsentLineIsNoop(t *testing.T) {
	repo, _ := newTestRepo(t)

	require.NoError(t, repo.UpdateCartLine(99, 3))
	assert.Empty(t, repo.GetCartView())
}

func TestRemoveFromCart(t *testing.T) {
	repo, _ := newTestRepo(t)

	require.NoError(t, repo.AddToCart(1, 1))
	require.NoError(t, repo.AddToCart(2, 1))
	require.NoError(t, repo.RemoveFromCart(1))

	view := repo.GetCartView()
	require.Len(t, view, 1)
	assert.EqualValues(t, 2, view[0].ProductID)
}

func TestGetCartView_DropsStaleLines(t *testing.T) {
	repo, _ := newTestRepo(t)

	require.NoError(t, repo.AddToCart(1, 2))
	require.NoError(t, repo.AddToCart(2, 1))
	require.NoError(t, repo.DeleteProduct(1))

	// Строка с удаленным товаром молча исключается
	view := repo.GetCartView()
	require.Len(t, view, 1)
	assert.EqualValues(t, 2, view[0].ProductID)

	assert.True(t, repo.CartTotal().Equal(mustDecimal(t, "3.00")))
}
