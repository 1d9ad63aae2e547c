package catalog

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrNotFound is returned when neither the database nor the bundled
// dataset knows the requested id.
var ErrNotFound = errors.New("catalog: not found")

// SortOption orders a product listing.
type SortOption string

const (
	SortDefault   SortOption = ""
	SortFeatured  SortOption = "featured"
	SortPriceLow  SortOption = "price-low"
	SortPriceHigh SortOption = "price-high"
	SortNewest    SortOption = "newest"
)

// Service defines catalog business logic. Read operations never fail on a
// storage outage: they substitute the bundled dataset and report
// degraded=true so callers can flag the response.
type Service interface {
	ListCategories(ctx context.Context) (categories []*Category, degraded bool, err error)
	GetCategory(ctx context.Context, id int64) (category *Category, degraded bool, err error)
	ListProducts(ctx context.Context, filter ProductFilter, sortBy SortOption) (products []*Product, degraded bool, err error)
	GetProduct(ctx context.Context, id int64) (product *Product, degraded bool, err error)

	CreateProduct(ctx context.Context, p *Product) error
	UpdateProduct(ctx context.Context, p *Product) error
	DeleteProduct(ctx context.Context, id int64) error
	CreateCategory(ctx context.Context, c *Category) error
	UpdateCategory(ctx context.Context, c *Category) error
	DeleteCategory(ctx context.Context, id int64) error
}

type service struct {
	repo          Repository
	log           *logrus.Logger
	lookupTimeout time.Duration
}

// NewService creates a catalog service. Single-item lookups race the
// database against lookupTimeout; a timeout counts as an outage.
func NewService(repo Repository, log *logrus.Logger, lookupTimeout time.Duration) Service {
	return &service{repo: repo, log: log, lookupTimeout: lookupTimeout}
}

func (s *service) ListCategories(ctx context.Context) ([]*Category, bool, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		s.log.WithError(err).Warn("category listing unavailable, serving bundled data")
		return staticCategoryList(), true, nil
	}
	return categories, false, nil
}

func (s *service) GetCategory(ctx context.Context, id int64) (*Category, bool, error) {
	c, err := s.repo.GetCategory(ctx, id)
	if err != nil {
		if c := staticCategoryByID(id); c != nil {
			s.log.WithError(err).WithField("category_id", id).
				Warn("category lookup unavailable, serving bundled data")
			return c, true, nil
		}
		return nil, true, ErrNotFound
	}
	return c, false, nil
}

func (s *service) ListProducts(ctx context.Context, filter ProductFilter, sortBy SortOption) ([]*Product, bool, error) {
	products, err := s.repo.ListProducts(ctx, filter)
	if err != nil {
		s.log.WithError(err).Warn("product listing unavailable, serving bundled data")
		return sortProducts(staticProductList(filter), sortBy), true, nil
	}
	return sortProducts(products, sortBy), false, nil
}

func (s *service) GetProduct(ctx context.Context, id int64) (*Product, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.lookupTimeout)
	defer cancel()

	p, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		if p := staticProductByID(id); p != nil {
			s.log.WithError(err).WithField("product_id", id).
				Warn("product lookup unavailable, serving bundled data")
			return p, true, nil
		}
		return nil, true, ErrNotFound
	}
	return p, false, nil
}

// sortProducts orders in place and returns its argument. Stable, so ties
// (including the bundled dataset's zero timestamps under "newest") keep
// their original order.
func sortProducts(products []*Product, sortBy SortOption) []*Product {
	switch sortBy {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice() < products[j].EffectivePrice()
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice() > products[j].EffectivePrice()
		})
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	}
	return products
}

func (s *service) CreateProduct(ctx context.Context, p *Product) error {
	return s.repo.CreateProduct(ctx, p)
}

func (s *service) UpdateProduct(ctx context.Context, p *Product) error {
	return s.repo.UpdateProduct(ctx, p)
}

func (s *service) DeleteProduct(ctx context.Context, id int64) error {
	return s.repo.DeleteProduct(ctx, id)
}

func (s *service) CreateCategory(ctx context.Context, c *Category) error {
	return s.repo.CreateCategory(ctx, c)
}

func (s *service) UpdateCategory(ctx context.Context, c *Category) error {
	return s.repo.UpdateCategory(ctx, c)
}

func (s *service) DeleteCategory(ctx context.Context, id int64) error {
	return s.repo.DeleteCategory(ctx, id)
}
