package memory

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	domproduct "example.com/storefront/internal/domain/product"
)

type ProductRepository struct {
	products []domproduct.Product
}

// NewProductRepository validates the seed and keeps a private copy of it.
func NewProductRepository(seed []domproduct.Product) (*ProductRepository, error) {
	validate := validator.New()
	seen := make(map[int64]bool, len(seed))
	for _, p := range seed {
		if err := validate.Struct(p); err != nil {
			return nil, errors.Wrapf(domproduct.ErrInvalidCatalog, "product %d: %v", p.ID, err)
		}
		if p.Price.IsNegative() {
			return nil, errors.Wrapf(domproduct.ErrInvalidCatalog, "product %d: negative price", p.ID)
		}
		if seen[p.ID] {
			return nil, errors.Wrapf(domproduct.ErrInvalidCatalog, "duplicate product id %d", p.ID)
		}
		seen[p.ID] = true
	}

	products := make([]domproduct.Product, len(seed))
	copy(products, seed)
	return &ProductRepository{products: products}, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*domproduct.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, domproduct.ErrProductNotFound
}

func (r *ProductRepository) List(ctx context.Context) ([]*domproduct.Product, error) {
	products := make([]*domproduct.Product, 0, len(r.products))
	for i := range r.products {
		p := r.products[i]
		products = append(products, &p)
	}
	return products, nil
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// DefaultCatalog is the storefront's fixed product list.
func DefaultCatalog() []domproduct.Product {
	return []domproduct.Product{
		{
			ID:          1,
			Name:        "UltraBook Pro",
			Description: "Thin and light laptop with powerful performance",
			Price:       price("245999.00"),
			Category:    domproduct.CategoryLaptops,
			Image:       "images/laptop1.jpg",
		},
		{
			ID:          2,
			Name:        "Gaming Beast",
			Description: "High-performance gaming laptop with RGB keyboard",
			Price:       price("1499.99"),
			Category:    domproduct.CategoryLaptops,
			Image:       "images/laptop2.jpg",
		},
		{
			ID:          3,
			Name:        "SmartPhone - Iphone 16",
			Description: "Flagship smartphone with amazing camera",
			Price:       price("387799.00"),
			Category:    domproduct.CategoryPhones,
			Image:       "images/phone1.jpg",
		},
		{
			ID:          4,
			Name:        "Budget Phone",
			Description: "Affordable smartphone with great features",
			Price:       price("52999.99"),
			Category:    domproduct.CategoryPhones,
			Image:       "images/phone2.jpg",
		},
		{
			ID:          5,
			Name:        "Wireless Earbuds",
			Description: "Noise cancelling wireless earbuds",
			Price:       price("2149.00"),
			Category:    domproduct.CategoryAccessories,
			Image:       "images/earbuds.jpg",
		},
		{
			ID:          6,
			Name:        "Smart Watch",
			Description: "Fitness tracker and smart notifications",
			Price:       price("4199.99"),
			Category:    domproduct.CategoryAccessories,
			Image:       "images/watch.jpg",
		},
		{
			ID:          7,
			Name:        "4K Monitor",
			Description: "27-inch 4K display with HDR",
			Price:       price("38399.99"),
			Category:    domproduct.CategoryAccessories,
			Image:       "images/monitor.jpg",
		},
		{
			ID:          8,
			Name:        "Ergonomic Keyboard",
			Description: "Comfortable typing experience",
			Price:       price("1299.99"),
			Category:    domproduct.CategoryAccessories,
			Image:       "images/keyboard.jpg",
		},
	}
}
