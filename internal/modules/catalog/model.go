package catalog

import (
	"encoding/json"
	"time"
)

// Product is an item in the storefront catalog. Price is the list price;
// SalePrice, when set, is the price actually charged.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       float64         `json:"price"`
	SalePrice   *float64        `json:"salePrice,omitempty"`
	ImageURL    string          `json:"imageUrl,omitempty"`
	Images      json.RawMessage `json:"images,omitempty"`
	Stock       int             `json:"stock"`
	Featured    bool            `json:"featured"`
	CategoryID  int64           `json:"categoryId"`
	Sizes       json.RawMessage `json:"size,omitempty"`
	Colors      json.RawMessage `json:"color,omitempty"`
	Category    *Category       `json:"category,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Category groups products by age range or accessory type.
type Category struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	ImageURL    *string `json:"imageUrl"`
}

// EffectivePrice is the price a product currently sells at.
func (p *Product) EffectivePrice() float64 {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}

// ProductFilter narrows a product listing. Zero values mean "no filter".
type ProductFilter struct {
	CategoryID int64
	Featured   bool
	Search     string
}
