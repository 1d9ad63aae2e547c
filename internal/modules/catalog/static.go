package catalog

// Bundled substitute dataset served when the database is unreachable, so
// browsing pages always have something to render.

var staticCategories = []*Category{
	{ID: 1, Name: "Newborn (0-3 months)", Description: "Delicate clothing for your precious newborn, sized for babies 0-3 months."},
	{ID: 2, Name: "Infant (3-12 months)", Description: "Comfortable and cute outfits for your growing baby, sized for 3-12 months."},
	{ID: 3, Name: "Toddler (1-3 years)", Description: "Durable and adorable dresses for your active toddler, sized for children 1-3 years."},
	{ID: 4, Name: "Accessories", Description: "Complete any outfit with our selection of bows, headbands, socks, and more."},
}

var staticProducts = []*Product{
	{ID: 1, Name: "Floral Summer Dress", Description: "A beautiful floral pattern dress perfect for summer days.",
		Price: 29.99, CategoryID: 1, Category: staticCategories[0]},
	{ID: 2, Name: "Lace Christening Gown", Description: "An elegant white christening gown with delicate lace details.",
		Price: 49.99, CategoryID: 1, Category: staticCategories[0]},
	{ID: 3, Name: "Polka Dot Party Dress", Description: "A fun polka dot dress perfect for parties and special occasions.",
		Price: 34.99, SalePrice: floatPtr(29.99), CategoryID: 2, Category: staticCategories[1]},
	{ID: 4, Name: "Denim Overall Dress", Description: "A cute and practical denim overall dress for everyday wear.",
		Price: 27.99, CategoryID: 2, Category: staticCategories[1]},
	{ID: 5, Name: "Tutu Princess Dress", Description: "Make your toddler feel like a princess with this tutu dress.",
		Price: 39.99, CategoryID: 3, Category: staticCategories[2]},
	{ID: 6, Name: "Butterfly Bow Set", Description: "Set of 5 butterfly-themed bows in different colors.",
		Price: 14.99, CategoryID: 4, Category: staticCategories[3]},
	{ID: 7, Name: "Winter Knit Dress", Description: "A warm knit dress perfect for winter months.",
		Price: 44.99, SalePrice: floatPtr(35.99), CategoryID: 3, Category: staticCategories[2]},
	{ID: 8, Name: "Floral Headband Set", Description: "Set of 3 floral headbands for your little one.",
		Price: 19.99, CategoryID: 4, Category: staticCategories[3]},
}

func floatPtr(f float64) *float64 { return &f }

// staticProductList applies the category/featured filter to the bundled
// dataset. Free-text search is only served by the live database; the
// substitute set ignores it, matching the browsing pages' expectations.
func staticProductList(filter ProductFilter) []*Product {
	if filter.Featured {
		return staticProducts[:4]
	}
	if filter.CategoryID != 0 {
		var out []*Product
		for _, p := range staticProducts {
			if p.CategoryID == filter.CategoryID {
				out = append(out, p)
			}
		}
		return out
	}
	out := make([]*Product, len(staticProducts))
	copy(out, staticProducts)
	return out
}

func staticProductByID(id int64) *Product {
	for _, p := range staticProducts {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func staticCategoryByID(id int64) *Category {
	for _, c := range staticCategories {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func staticCategoryList() []*Category {
	out := make([]*Category, len(staticCategories))
	copy(out, staticCategories)
	return out
}
