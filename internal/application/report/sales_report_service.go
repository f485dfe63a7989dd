package report

import (
	"context"
	"fmt"

	"github.com/retailops/backend/internal/domain/report"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SalesReportService answers sales report, export and facet requests
type SalesReportService struct {
	repo          report.SalesReportRepository
	facetCache    report.FacetCache
	exportMaxRows int
	logger        *zap.Logger
}

// SalesReportServiceOption is a functional option for configuring the service
type SalesReportServiceOption func(*SalesReportService)

// WithFacetCache enables facet caching. A nil cache disables it.
func WithFacetCache(cache report.FacetCache) SalesReportServiceOption {
	return func(s *SalesReportService) {
		s.facetCache = cache
	}
}

// WithExportMaxRows caps the number of exported rows; 0 means unbounded
func WithExportMaxRows(n int) SalesReportServiceOption {
	return func(s *SalesReportService) {
		s.exportMaxRows = n
	}
}

// WithLogger sets the service logger
func WithLogger(logger *zap.Logger) SalesReportServiceOption {
	return func(s *SalesReportService) {
		s.logger = logger
	}
}

// NewSalesReportService creates a new SalesReportService
func NewSalesReportService(repo report.SalesReportRepository, opts ...SalesReportServiceOption) *SalesReportService {
	s := &SalesReportService{
		repo:   repo,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Query returns one page of the report and the total row count. Both queries
// run concurrently against the same source; the first failure cancels the other.
func (s *SalesReportService) Query(ctx context.Context, q report.Query) (*SalesReportResponse, error) {
	src := q.Source()

	var (
		rows  []report.Row
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.repo.Count(gctx, src)
		if err != nil {
			return fmt.Errorf("count sales report: %w", err)
		}
		total = n
		return nil
	})
	g.Go(func() error {
		page, err := s.repo.Page(gctx, src, q.Sort, q.Page)
		if err != nil {
			return fmt.Errorf("page sales report: %w", err)
		}
		rows = page
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if rows == nil {
		rows = []report.Row{}
	}

	s.logger.Debug("sales report queried",
		zap.String("strategy", string(src.Strategy())),
		zap.Int64("total", total),
		zap.Int("rows", len(rows)))

	return &SalesReportResponse{
		Rows:           rows,
		Total:          total,
		AppliedFilters: ToAppliedFilters(q),
	}, nil
}

// Export renders every row of the query as CSV, in the same order as Query.
// Pagination is ignored.
func (s *SalesReportService) Export(ctx context.Context, q report.Query) (string, error) {
	rows, err := s.repo.All(ctx, q.Source(), q.Sort, s.exportMaxRows)
	if err != nil {
		return "", fmt.Errorf("export sales report: %w", err)
	}
	return report.EncodeCSV(rows), nil
}

// Facets returns the distinct filter values, served from the cache when fresh
func (s *SalesReportService) Facets(ctx context.Context) (*report.Facets, error) {
	if s.facetCache != nil {
		if facets, ok := s.facetCache.Get(ctx); ok {
			return facets, nil
		}
	}

	facets, err := s.repo.Facets(ctx)
	if err != nil {
		return nil, fmt.Errorf("load report facets: %w", err)
	}

	if s.facetCache != nil {
		s.facetCache.Set(ctx, facets)
	}
	return facets, nil
}
