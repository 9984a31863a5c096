package product

import "github.com/shopspring/decimal"

type Category string

const (
	CategoryAll         Category = "all"
	CategoryLaptops     Category = "laptops"
	CategoryPhones      Category = "phones"
	CategoryAccessories Category = "accessories"
)

type SortOrder string

const (
	SortDefault   SortOrder = "default"
	SortPriceAsc  SortOrder = "price-asc"
	SortPriceDesc SortOrder = "price-desc"
)

func ParseSortOrder(s string) SortOrder {
	switch SortOrder(s) {
	case SortPriceAsc, SortPriceDesc:
		return SortOrder(s)
	default:
		return SortDefault
	}
}

type Product struct {
	ID          int64           `validate:"gt=0"`
	Name        string          `validate:"required"`
	Description string
	Price       decimal.Decimal `validate:"-"`
	Category    Category        `validate:"required"`
	Image       string
}

type ListFilter struct {
	Category Category
	Sort     SortOrder
}
