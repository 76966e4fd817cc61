package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshmart/grocery-api/internal/dto"
	"github.com/freshmart/grocery-api/internal/repository"
)

func newCatalogService() *CatalogService {
	return NewCatalogService(repository.NewCategoryRepository(), repository.NewProductRepository())
}

func TestCatalogService_CreateAndListCategories(t *testing.T) {
	svc := newCatalogService()
	ctx := context.Background()

	fruits, err := svc.CreateCategory(ctx, dto.CreateCategoryRequest{Name: "Fruits", Description: "Fresh seasonal fruits"})
	require.NoError(t, err)
	assert.True(t, fruits.Active)
	assert.NotEqual(t, uuid.Nil, fruits.ID)

	_, err = svc.CreateCategory(ctx, dto.CreateCategoryRequest{Name: "Dairy"})
	require.NoError(t, err)

	categories, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Fruits", categories[0].Name)
	assert.Equal(t, "Dairy", categories[1].Name)
}

func TestCatalogService_CreateProduct_DefaultsActive(t *testing.T) {
	svc := newCatalogService()

	product, err := svc.CreateProduct(context.Background(), dto.CreateProductRequest{
		Name:  "Milk",
		Price: decimal.NewFromInt(60),
		Stock: 20,
		Unit:  "liter",
		// Category is not validated; an id for a category that does not
		// exist yet is accepted.
		CategoryID: uuid.New(),
	})
	require.NoError(t, err)
	assert.True(t, product.Active)
	assert.Equal(t, 20, product.Stock)
}

func TestCatalogService_CreateProduct_NegativePrice(t *testing.T) {
	svc := newCatalogService()
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, dto.CreateProductRequest{
		Name:  "Broken",
		Price: decimal.NewFromInt(-50),
	})
	assert.ErrorIs(t, err, ErrNegativePrice)

	// Nothing was stored.
	products, err := svc.ListProducts(ctx, uuid.Nil, "")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestCatalogService_CreateProduct_ZeroPriceAllowed(t *testing.T) {
	svc := newCatalogService()

	product, err := svc.CreateProduct(context.Background(), dto.CreateProductRequest{
		Name:  "Free Sample",
		Price: decimal.Zero,
	})
	require.NoError(t, err)
	assert.True(t, product.Price.IsZero())
}

func TestCatalogService_ListProducts_Search(t *testing.T) {
	svc := newCatalogService()
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, dto.CreateProductRequest{Name: "Fresh Apples", Description: "Crisp red apples", Price: decimal.NewFromInt(120)})
	require.NoError(t, err)
	_, err = svc.CreateProduct(ctx, dto.CreateProductRequest{Name: "Milk", Description: "Fresh cow milk", Price: decimal.NewFromInt(60)})
	require.NoError(t, err)

	products, err := svc.ListProducts(ctx, uuid.Nil, "APPLE")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Fresh Apples", products[0].Name)

	products, err = svc.ListProducts(ctx, uuid.Nil, "fresh")
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestCatalogService_DeleteProduct(t *testing.T) {
	svc := newCatalogService()
	ctx := context.Background()

	product, err := svc.CreateProduct(ctx, dto.CreateProductRequest{Name: "Milk", Price: decimal.NewFromInt(60)})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(ctx, product.ID))
	assert.ErrorIs(t, svc.DeleteProduct(ctx, product.ID), ErrProductNotFound)
}
