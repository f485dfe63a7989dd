package logistics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPurchaseOrder(t *testing.T) {
	t.Run("valid order starts ORDERED", func(t *testing.T) {
		po, err := NewPurchaseOrder(42, 7, "2031-02-01")
		require.NoError(t, err)
		assert.Equal(t, int64(42), po.ProductID)
		assert.Equal(t, int64(7), po.QtyOrdered)
		assert.Equal(t, PurchaseOrderStatusOrdered, po.Status)
		require.NotNil(t, po.ExpectedArrival)
		assert.Equal(t, time.Date(2031, 2, 1, 0, 0, 0, 0, time.UTC), *po.ExpectedArrival)
	})

	t.Run("arrival is optional", func(t *testing.T) {
		po, err := NewPurchaseOrder(1, 1, "")
		require.NoError(t, err)
		assert.Nil(t, po.ExpectedArrival)
	})

	tests := []struct {
		name    string
		product int64
		qty     int64
		arrival string
		wantErr error
	}{
		{"missing product", 0, 5, "", ErrPurchaseOrderRequired},
		{"missing qty", 3, 0, "", ErrPurchaseOrderRequired},
		{"negative qty", 3, -2, "", ErrPurchaseOrderQtyPositive},
		{"negative product", -3, 2, "", ErrInvalidProductID},
		{"bad date", 3, 2, "01/02/2031", ErrPurchaseOrderArrivalDate},
		{"impossible date", 3, 2, "2031-02-30", ErrPurchaseOrderArrivalDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPurchaseOrder(tt.product, tt.qty, tt.arrival)
			assert.Equal(t, tt.wantErr, err)
		})
	}
}
