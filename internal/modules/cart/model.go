package cart

// Item is one line in a shopping cart. Name, prices and image are a
// snapshot of the product at the time it was added; they are not
// refreshed if the catalog changes afterwards.
type Item struct {
	ProductID int64    `json:"id"`
	Name      string   `json:"name"`
	Price     float64  `json:"price"`
	SalePrice *float64 `json:"salePrice,omitempty"`
	ImageURL  string   `json:"imageUrl,omitempty"`
	Quantity  int      `json:"quantity"`
	Size      string   `json:"size,omitempty"`
	Color     string   `json:"color,omitempty"`
}

// key identifies a cart line: the same product in a different size or
// color is a separate line.
type key struct {
	productID int64
	size      string
	color     string
}

func (i Item) key() key { return key{productID: i.ProductID, size: i.Size, color: i.Color} }

// EffectivePrice is the unit price the line is charged at.
func (i Item) EffectivePrice() float64 {
	if i.SalePrice != nil {
		return *i.SalePrice
	}
	return i.Price
}
