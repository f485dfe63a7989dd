package handler

import (
	"context"

	"github.com/retailops/backend/internal/domain/logistics"
	"github.com/retailops/backend/internal/domain/report"
	"github.com/stretchr/testify/mock"
)

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

type mockPresetRepository struct {
	mock.Mock
}

func (m *mockPresetRepository) List(ctx context.Context) ([]report.Preset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.Preset), args.Error(1)
}

func (m *mockPresetRepository) Create(ctx context.Context, preset *report.Preset) error {
	args := m.Called(ctx, preset)
	return args.Error(0)
}

func (m *mockPresetRepository) Delete(ctx context.Context, id int64) (*report.Preset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.Preset), args.Error(1)
}

type mockConfigRepository struct {
	mock.Mock
}

func (m *mockConfigRepository) Ensure(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockConfigRepository) Get(ctx context.Context) (*logistics.Config, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*logistics.Config), args.Error(1)
}

func (m *mockConfigRepository) Update(ctx context.Context, patch logistics.ConfigPatch) (*logistics.Config, error) {
	args := m.Called(ctx, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*logistics.Config), args.Error(1)
}

type mockPurchaseOrderRepository struct {
	mock.Mock
}

func (m *mockPurchaseOrderRepository) Create(ctx context.Context, po *logistics.PurchaseOrder) error {
	args := m.Called(ctx, po)
	return args.Error(0)
}

func (m *mockPurchaseOrderRepository) ListRecent(ctx context.Context, limit int) ([]logistics.PurchaseOrder, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]logistics.PurchaseOrder), args.Error(1)
}

func (m *mockPurchaseOrderRepository) GetByID(ctx context.Context, id int64) (*logistics.PurchaseOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*logistics.PurchaseOrder), args.Error(1)
}

type mockInventoryRepository struct {
	mock.Mock
}

func (m *mockInventoryRepository) Upsert(ctx context.Context, productID int64, patch logistics.InventoryPatch) (*logistics.InventoryLevel, error) {
	args := m.Called(ctx, productID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*logistics.InventoryLevel), args.Error(1)
}

type mockOverrideRepository struct {
	mock.Mock
}

func (m *mockOverrideRepository) Replace(ctx context.Context, o *logistics.Override) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *mockOverrideRepository) Disable(ctx context.Context, id int64) (*logistics.Override, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*logistics.Override), args.Error(1)
}

type mockViewRepository struct {
	mock.Mock
}

func (m *mockViewRepository) Daily(ctx context.Context, status string) ([]logistics.ViewRow, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]logistics.ViewRow), args.Error(1)
}

func (m *mockViewRepository) Risk60d(ctx context.Context) ([]logistics.ViewRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]logistics.ViewRow), args.Error(1)
}

func (m *mockViewRepository) Reorder(ctx context.Context) ([]logistics.ViewRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]logistics.ViewRow), args.Error(1)
}

type mockPinger struct {
	mock.Mock
}

func (m *mockPinger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
