package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockRepo serves canned data, or fails every call when Err is set.
type mockRepo struct {
	Repository

	categories []*Category
	products   []*Product
	err        error
}

func (m *mockRepo) ListCategories(_ context.Context) ([]*Category, error) {
	return m.categories, m.err
}

func (m *mockRepo) GetCategory(_ context.Context, id int64) (*Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, c := range m.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, errors.New("no rows")
}

func (m *mockRepo) ListProducts(_ context.Context, filter ProductFilter) ([]*Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*Product
	for _, p := range m.products {
		if filter.CategoryID != 0 && p.CategoryID != filter.CategoryID {
			continue
		}
		if filter.Featured && !p.Featured {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *mockRepo) GetProduct(_ context.Context, id int64) (*Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, p := range m.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, errors.New("no rows")
}

func newTestService(repo Repository) Service {
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)
	return NewService(repo, log, time.Second)
}

func TestListCategoriesHealthy(t *testing.T) {
	repo := &mockRepo{categories: []*Category{{ID: 10, Name: "Sleepwear"}}}
	svc := newTestService(repo)

	categories, degraded, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.False(t, degraded)
	require.Len(t, categories, 1)
	assert.Equal(t, "Sleepwear", categories[0].Name)
}

func TestListCategoriesFallsBack(t *testing.T) {
	svc := newTestService(&mockRepo{err: errors.New("connection refused")})

	categories, degraded, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.True(t, degraded)
	require.Len(t, categories, 4)
	assert.Equal(t, "Newborn (0-3 months)", categories[0].Name)
}

func TestListProductsFallsBackPerQueryShape(t *testing.T) {
	svc := newTestService(&mockRepo{err: errors.New("connection refused")})
	ctx := context.Background()

	all, degraded, err := svc.ListProducts(ctx, ProductFilter{}, SortDefault)
	require.NoError(t, err)
	assert.True(t, degraded)
	assert.Len(t, all, 8)

	featured, degraded, err := svc.ListProducts(ctx, ProductFilter{Featured: true}, SortDefault)
	require.NoError(t, err)
	assert.True(t, degraded)
	require.Len(t, featured, 4)
	assert.Equal(t, int64(1), featured[0].ID)

	byCategory, _, err := svc.ListProducts(ctx, ProductFilter{CategoryID: 4}, SortDefault)
	require.NoError(t, err)
	require.Len(t, byCategory, 2)
	for _, p := range byCategory {
		assert.Equal(t, int64(4), p.CategoryID)
	}
}

func TestGetProductFallsBack(t *testing.T) {
	svc := newTestService(&mockRepo{err: errors.New("timeout")})

	p, degraded, err := svc.GetProduct(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, degraded)
	assert.Equal(t, "Polka Dot Party Dress", p.Name)
	require.NotNil(t, p.SalePrice)
	assert.Equal(t, 29.99, *p.SalePrice)
}

func TestGetProductUnknownEverywhere(t *testing.T) {
	svc := newTestService(&mockRepo{err: errors.New("down")})

	_, _, err := svc.GetProduct(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetProductHealthyIsNotDegraded(t *testing.T) {
	repo := &mockRepo{products: []*Product{{ID: 42, Name: "Romper", Price: 19.99, CategoryID: 1}}}
	svc := newTestService(repo)

	p, degraded, err := svc.GetProduct(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, degraded)
	assert.Equal(t, "Romper", p.Name)
}

func TestSortByPrice(t *testing.T) {
	repo := &mockRepo{products: []*Product{
		{ID: 1, Name: "A", Price: 30, CategoryID: 1},
		{ID: 2, Name: "B", Price: 40, SalePrice: floatPtr(10), CategoryID: 1},
		{ID: 3, Name: "C", Price: 20, CategoryID: 1},
	}}
	svc := newTestService(repo)
	ctx := context.Background()

	low, _, err := svc.ListProducts(ctx, ProductFilter{}, SortPriceLow)
	require.NoError(t, err)
	// Sale price wins: B sells at 10.
	assert.Equal(t, []int64{2, 3, 1}, productIDs(low))

	high, _, err := svc.ListProducts(ctx, ProductFilter{}, SortPriceHigh)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3, 2}, productIDs(high))
}

func TestSortNewest(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	repo := &mockRepo{products: []*Product{
		{ID: 1, Name: "Old", Price: 10, CreatedAt: base},
		{ID: 2, Name: "New", Price: 10, CreatedAt: base.Add(48 * time.Hour)},
		{ID: 3, Name: "Mid", Price: 10, CreatedAt: base.Add(24 * time.Hour)},
	}}
	svc := newTestService(repo)

	got, _, err := svc.ListProducts(context.Background(), ProductFilter{}, SortNewest)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3, 1}, productIDs(got))
}

func TestSortNewestOverFallbackKeepsInsertionOrder(t *testing.T) {
	svc := newTestService(&mockRepo{err: errors.New("down")})

	got, degraded, err := svc.ListProducts(context.Background(), ProductFilter{}, SortNewest)
	require.NoError(t, err)
	assert.True(t, degraded)
	// Bundled records carry no timestamps; the stable sort leaves them in
	// insertion order.
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6, 7, 8}, productIDs(got))
}

func productIDs(products []*Product) []int64 {
	ids := make([]int64, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}
