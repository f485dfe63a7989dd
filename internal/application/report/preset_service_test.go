package report

import (
	"context"
	"testing"
	"time"

	"github.com/retailops/backend/internal/domain/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

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

func TestPresetService_List(t *testing.T) {
	repo := new(mockPresetRepository)
	svc := NewPresetService(repo)

	repo.On("List", mock.Anything).Return(nil, nil)

	presets, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, presets)
	assert.Empty(t, presets)
}

func TestPresetService_Create(t *testing.T) {
	t.Run("normalizes filters and stores", func(t *testing.T) {
		repo := new(mockPresetRepository)
		svc := NewPresetService(repo)

		repo.On("Create", mock.Anything, mock.MatchedBy(func(p *report.Preset) bool {
			return p.Name == "Gold" && p.Filters == report.FilterSet{IsGold: "true", Brand: "Acme"}
		})).Run(func(args mock.Arguments) {
			p := args.Get(1).(*report.Preset)
			p.ID = 9
			p.CreatedAt = time.Now()
		}).Return(nil)

		preset, err := svc.Create(context.Background(), CreatePresetRequest{
			Name:    " Gold ",
			Budget:  decimal.NewNullDecimal(decimal.NewFromInt(500)),
			Filters: map[string]any{"isGold": true, "brand": "Acme", "color": "red"},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(9), preset.ID)
		assert.True(t, preset.Budget.Valid)
		repo.AssertExpectations(t)
	})

	t.Run("name is required", func(t *testing.T) {
		repo := new(mockPresetRepository)
		svc := NewPresetService(repo)

		preset, err := svc.Create(context.Background(), CreatePresetRequest{Name: "   "})
		assert.Nil(t, preset)
		assert.ErrorIs(t, err, report.ErrPresetNameRequired)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("malformed string filters", func(t *testing.T) {
		repo := new(mockPresetRepository)
		svc := NewPresetService(repo)

		_, err := svc.Create(context.Background(), CreatePresetRequest{Name: "x", Filters: "not json"})
		assert.ErrorIs(t, err, report.ErrInvalidFiltersJSON)
	})
}

func TestPresetService_Delete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		svc := NewPresetService(new(mockPresetRepository))
		_, err := svc.Delete(context.Background(), 0)
		assert.ErrorIs(t, err, report.ErrPresetInvalidID)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(mockPresetRepository)
		svc := NewPresetService(repo)
		repo.On("Delete", mock.Anything, int64(4)).Return(nil, report.ErrPresetNotFound)

		_, err := svc.Delete(context.Background(), 4)
		assert.ErrorIs(t, err, report.ErrPresetNotFound)
	})
}
