package memory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	domproduct "example.com/storefront/internal/domain/product"
)

func TestDefaultCatalog_IsValid(t *testing.T) {
	repo, err := NewProductRepository(DefaultCatalog())
	require.NoError(t, err)

	products, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 8)
	require.Equal(t, int64(1), products[0].ID)
	require.Equal(t, int64(8), products[7].ID)
}

func TestNewProductRepository_RejectsInvalidSeed(t *testing.T) {
	tests := []struct {
		name string
		seed []domproduct.Product
	}{
		{
			name: "zero id",
			seed: []domproduct.Product{{ID: 0, Name: "X", Category: domproduct.CategoryPhones}},
		},
		{
			name: "missing name",
			seed: []domproduct.Product{{ID: 1, Category: domproduct.CategoryPhones}},
		},
		{
			name: "negative price",
			seed: []domproduct.Product{{ID: 1, Name: "X", Price: decimal.NewFromInt(-1), Category: domproduct.CategoryPhones}},
		},
		{
			name: "duplicate id",
			seed: []domproduct.Product{
				{ID: 1, Name: "X", Category: domproduct.CategoryPhones},
				{ID: 1, Name: "Y", Category: domproduct.CategoryLaptops},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProductRepository(tt.seed)
			require.ErrorIs(t, err, domproduct.ErrInvalidCatalog)
		})
	}
}

func TestGetByID_ReturnsCopy(t *testing.T) {
	repo, err := NewProductRepository(DefaultCatalog())
	require.NoError(t, err)

	p, err := repo.GetByID(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, "SmartPhone - Iphone 16", p.Name)

	p.Name = "changed"
	again, err := repo.GetByID(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, "SmartPhone - Iphone 16", again.Name)

	_, err = repo.GetByID(context.Background(), 99)
	require.ErrorIs(t, err, domproduct.ErrProductNotFound)
}
