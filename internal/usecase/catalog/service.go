package catalog

import (
	"context"
	"math/rand/v2"
	"slices"

	dom "example.com/storefront/internal/domain/product"
)

type ShuffleFunc func(n int, swap func(i, j int))

type Service struct {
	repo    dom.Repository
	shuffle ShuffleFunc
}

func NewService(repo dom.Repository) *Service {
	return &Service{repo: repo, shuffle: rand.Shuffle}
}

// WithShuffle replaces the shuffle used by SampleFeatured.
func (s *Service) WithShuffle(fn ShuffleFunc) *Service {
	s.shuffle = fn
	return s
}

func (s *Service) FindByID(ctx context.Context, id int64) (*dom.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) All(ctx context.Context) ([]*dom.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) FilterByCategory(ctx context.Context, category dom.Category) ([]*dom.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if category == "" || category == dom.CategoryAll {
		return products, nil
	}

	filtered := make([]*dom.Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// SortByPrice returns a stably sorted copy. SortDefault keeps the input order.
func SortByPrice(products []*dom.Product, order dom.SortOrder) []*dom.Product {
	sorted := slices.Clone(products)
	switch order {
	case dom.SortPriceAsc:
		slices.SortStableFunc(sorted, func(a, b *dom.Product) int {
			return a.Price.Cmp(b.Price)
		})
	case dom.SortPriceDesc:
		slices.SortStableFunc(sorted, func(a, b *dom.Product) int {
			return b.Price.Cmp(a.Price)
		})
	}
	return sorted
}

func (s *Service) List(ctx context.Context, filter dom.ListFilter) ([]*dom.Product, error) {
	products, err := s.FilterByCategory(ctx, filter.Category)
	if err != nil {
		return nil, err
	}
	return SortByPrice(products, filter.Sort), nil
}

// SampleFeatured shuffles the catalog and takes the first n products.
func (s *Service) SampleFeatured(ctx context.Context, n int) ([]*dom.Product, error) {
	if n <= 0 {
		return []*dom.Product{}, nil
	}
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	sample := slices.Clone(products)
	s.shuffle(len(sample), func(i, j int) {
		sample[i], sample[j] = sample[j], sample[i]
	})
	if len(sample) > n {
		sample = sample[:n]
	}
	return sample, nil
}
