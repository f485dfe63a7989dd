package report

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/retailops/backend/internal/domain/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock implementations

type mockSalesReportRepository struct {
	mock.Mock
}

func (m *mockSalesReportRepository) Count(ctx context.Context, src report.Source) (int64, error) {
	args := m.Called(ctx, src)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSalesReportRepository) Page(ctx context.Context, src report.Source, sort report.SortSpec, page report.PageRequest) ([]report.Row, error) {
	args := m.Called(ctx, src, sort, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.Row), args.Error(1)
}

func (m *mockSalesReportRepository) All(ctx context.Context, src report.Source, sort report.SortSpec, limit int) ([]report.Row, error) {
	args := m.Called(ctx, src, sort, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.Row), args.Error(1)
}

func (m *mockSalesReportRepository) Facets(ctx context.Context) (*report.Facets, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.Facets), args.Error(1)
}

type mockFacetCache struct {
	mock.Mock
}

func (m *mockFacetCache) Get(ctx context.Context) (*report.Facets, bool) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*report.Facets), args.Bool(1)
}

func (m *mockFacetCache) Set(ctx context.Context, facets *report.Facets) {
	m.Called(ctx, facets)
}

func (m *mockFacetCache) Invalidate(ctx context.Context) {
	m.Called(ctx)
}

func strPtr(s string) *string { return &s }

func sampleRows() []report.Row {
	return []report.Row{
		{
			ProductID: 1,
			SKU:       "SKU-1",
			Name:      `Ring, "gold"`,
			Category:  strPtr("Rings"),
			ListPrice: decimal.NewNullDecimal(decimal.RequireFromString("99.50")),
			Available: 3,
			Score:     decimal.NewNullDecimal(decimal.RequireFromString("0.9")),
		},
		{ProductID: 2, SKU: "SKU-2", Name: "Chain"},
	}
}

func TestSalesReportParams_ToQuery(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		q, err := SalesReportParams{}.ToQuery()
		require.NoError(t, err)
		assert.False(t, q.Budget.Valid)
		assert.True(t, q.Filters.IsEmpty())
		assert.True(t, q.InStockOnly)
		assert.Equal(t, report.DefaultSort, q.Sort)
		assert.Equal(t, report.PageRequest{Page: 1, PageSize: 20}, q.Page)
	})

	t.Run("explicit values", func(t *testing.T) {
		q, err := SalesReportParams{
			Budget:             "150.5",
			Filters:            `{"brand":"Acme","isGold":true}`,
			InStockOnly:        "false",
			InStockOnlyPresent: true,
			Sort:               "price",
			Page:               "3",
			PageSize:           "500",
		}.ToQuery()
		require.NoError(t, err)
		assert.Equal(t, "150.5", q.Budget.Decimal.String())
		assert.Equal(t, report.FilterSet{Brand: "Acme", IsGold: "true"}, q.Filters)
		assert.False(t, q.InStockOnly)
		assert.Equal(t, report.SortSpec{Field: report.SortPrice, Direction: report.SortAsc}, q.Sort)
		assert.Equal(t, report.PageRequest{Page: 3, PageSize: 200}, q.Page)
	})

	t.Run("malformed filters", func(t *testing.T) {
		_, err := SalesReportParams{Filters: "{brand"}.ToQuery()
		assert.ErrorIs(t, err, report.ErrInvalidFiltersJSON)
	})
}

func TestSalesReportService_Query(t *testing.T) {
	t.Run("count and page share one source", func(t *testing.T) {
		repo := new(mockSalesReportRepository)
		svc := NewSalesReportService(repo)

		q, err := SalesReportParams{Filters: `{"brand":"Acme"}`, Page: "2"}.ToQuery()
		require.NoError(t, err)

		var counted, paged report.Source
		repo.On("Count", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { counted = args.Get(1).(report.Source) }).
			Return(int64(25), nil)
		repo.On("Page", mock.Anything, mock.Anything, q.Sort, q.Page).
			Run(func(args mock.Arguments) { paged = args.Get(1).(report.Source) }).
			Return(sampleRows(), nil)

		resp, err := svc.Query(context.Background(), q)
		require.NoError(t, err)
		assert.Equal(t, int64(25), resp.Total)
		assert.Len(t, resp.Rows, 2)
		assert.Equal(t, 2, resp.AppliedFilters.Page)
		assert.Equal(t, "Acme", resp.AppliedFilters.Filters.Brand)

		require.NotNil(t, counted)
		assert.Same(t, counted, paged)
		assert.Equal(t, report.StrategyAggregated, counted.Strategy())
		repo.AssertExpectations(t)
	})

	t.Run("empty page serializes as an empty list", func(t *testing.T) {
		repo := new(mockSalesReportRepository)
		svc := NewSalesReportService(repo)
		q, _ := SalesReportParams{}.ToQuery()

		repo.On("Count", mock.Anything, mock.Anything).Return(int64(0), nil)
		repo.On("Page", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

		resp, err := svc.Query(context.Background(), q)
		require.NoError(t, err)
		assert.NotNil(t, resp.Rows)
		assert.Empty(t, resp.Rows)
	})

	t.Run("count failure fails the request", func(t *testing.T) {
		repo := new(mockSalesReportRepository)
		svc := NewSalesReportService(repo)
		q, _ := SalesReportParams{}.ToQuery()

		storeErr := errors.New("connection reset")
		repo.On("Count", mock.Anything, mock.Anything).Return(int64(0), storeErr)
		repo.On("Page", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(sampleRows(), nil)

		resp, err := svc.Query(context.Background(), q)
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestSalesReportService_Export(t *testing.T) {
	t.Run("encodes every row in query order", func(t *testing.T) {
		repo := new(mockSalesReportRepository)
		svc := NewSalesReportService(repo, WithExportMaxRows(5000))
		q, _ := SalesReportParams{Sort: "name:asc", Page: "4"}.ToQuery()

		repo.On("All", mock.Anything, mock.Anything, q.Sort, 5000).Return(sampleRows(), nil)

		csv, err := svc.Export(context.Background(), q)
		require.NoError(t, err)

		lines := strings.Split(csv, "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "product_id,sku,name,category,list_price,currency,image_url,available,score", lines[0])
		assert.Equal(t, `1,SKU-1,"Ring, ""gold""",Rings,99.5,,,3,0.9`, lines[1])
		assert.Equal(t, "2,SKU-2,Chain,,,,,0,", lines[2])
		repo.AssertExpectations(t)
	})

	t.Run("store error", func(t *testing.T) {
		repo := new(mockSalesReportRepository)
		svc := NewSalesReportService(repo)
		q, _ := SalesReportParams{}.ToQuery()

		repo.On("All", mock.Anything, mock.Anything, q.Sort, 0).Return(nil, assert.AnError)

		csv, err := svc.Export(context.Background(), q)
		assert.Empty(t, csv)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestSalesReportService_Facets(t *testing.T) {
	facets := &report.Facets{Categories: []string{"Rings"}, Brands: []string{}, Genders: []string{}, Materials: []string{}, IsGold: []string{}}

	t.Run("cache hit skips the store", func(t *testing.T) {
		repo := new(mockSalesReportRepository)
		cache := new(mockFacetCache)
		svc := NewSalesReportService(repo, WithFacetCache(cache))

		cache.On("Get", mock.Anything).Return(facets, true)

		got, err := svc.Facets(context.Background())
		require.NoError(t, err)
		assert.Same(t, facets, got)
		repo.AssertNotCalled(t, "Facets", mock.Anything)
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		repo := new(mockSalesReportRepository)
		cache := new(mockFacetCache)
		svc := NewSalesReportService(repo, WithFacetCache(cache))

		cache.On("Get", mock.Anything).Return(nil, false)
		repo.On("Facets", mock.Anything).Return(facets, nil)
		cache.On("Set", mock.Anything, facets).Return()

		got, err := svc.Facets(context.Background())
		require.NoError(t, err)
		assert.Equal(t, facets, got)
		cache.AssertExpectations(t)
	})

	t.Run("no cache configured", func(t *testing.T) {
		repo := new(mockSalesReportRepository)
		svc := NewSalesReportService(repo)

		repo.On("Facets", mock.Anything).Return(nil, assert.AnError)

		got, err := svc.Facets(context.Background())
		assert.Nil(t, got)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
