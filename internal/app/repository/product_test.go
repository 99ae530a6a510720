package repository

import (
	"testing"

	"campomarket/internal/app/ds"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddProduct_StampsOwner(t *testing.T) {
	repo, _ := newTestRepo(t)

	p, err := repo.AddProduct("Queso Fresco", "Queso artesanal", mustDecimal(t, "6.50"), ds.CategoryDairy, 12, "🧀", 4)
	require.NoError(t, err)

	assert.EqualValues(t, 7, p.ID) // после шести сидовых товаров
	assert.EqualValues(t, 4, p.ProducerID)

	byProducer := repo.ListProductsByProducer(4)
	require.Len(t, byProducer, 1)
	assert.Equal(t, "Queso Fresco", byProducer[0].Name)
}

func TestGetProduct_NotFound(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.GetProduct(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearchProductsByName(t *testing.T) {
	repo, _ := newTestRepo(t)

	found := repo.SearchProductsByName("fres")
	require.Len(t, found, 2) // "Leche Fresca" и "Fresas Silvestres"

	assert.Empty(t, repo.SearchProductsByName("xyz"))
}

func TestUpdateProduct_PartialFields(t *testing.T) {
	repo, _ := newTestRepo(t)

	stock := 5
	p, err := repo.UpdateProduct(6, nil, nil, nil, nil, &stock)
	require.NoError(t, err)

	assert.Equal(t, 5, p.Stock)
	assert.Equal(t, "Fresas Silvestres", p.Name)
	assert.True(t, p.Price.Equal(mustDecimal(t, "4.20")))
}

func TestDeleteProduct(t *testing.T) {
	repo, _ := newTestRepo(t)

	require.NoError(t, repo.DeleteProduct(3))

	_, err := repo.GetProduct(3)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Len(t, repo.ListProducts(), 5)

	assert.ErrorIs(t, repo.DeleteProduct(3), ErrNotFound)
}

func TestNextProductID_NotGapFilling(t *testing.T) {
	repo, _ := newTestRepo(t)

	// max+1 не заполняет дыры после удалений
	require.NoError(t, repo.DeleteProduct(2))
	p, err := repo.AddProduct("Miel", "Miel de abeja pura", mustDecimal(t, "8.00"), ds.CategoryOther, 10, "🍯", 1)
	require.NoError(t, err)
	assert.EqualValues(t, 7, p.ID)
}
