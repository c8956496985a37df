package shipment_test

import (
	"testing"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWeight(t *testing.T) kernel.Weight {
	t.Helper()
	w, err := kernel.NewWeight(500)
	require.NoError(t, err)
	return w
}

func testDimensions(t *testing.T) kernel.Dimensions {
	t.Helper()
	dims, err := kernel.NewDimensions(10, 10, 10)
	require.NoError(t, err)
	return dims
}

func TestNewShipment(t *testing.T) {
	t.Run("should create shipment with given properties", func(t *testing.T) {
		orderID := kernel.NewUUID()

		s, err := shipment.NewShipment(orderID, shipment.Surface, testWeight(t), testDimensions(t), "Warehouse A")

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.True(t, s.OrderID().IsEqual(orderID))
		assert.Equal(t, shipment.Surface, s.Mode())
		assert.Equal(t, kernel.Grams(500), s.Weight().Grams())
		assert.Equal(t, "Warehouse A", s.PickupLocation())
		assert.Empty(t, s.WaybillNumbers())
		assert.Empty(t, s.TrackingURL())
		assert.False(t, s.CreatedAt().IsZero())
	})

	t.Run("should reject invalid inputs", func(t *testing.T) {
		orderID := kernel.NewUUID()

		testCases := []struct {
			name  string
			setup func() error
		}{
			{"zero order id", func() error {
				var zeroID kernel.UUID
				_, err := shipment.NewShipment(zeroID, shipment.Surface, testWeight(t), testDimensions(t), "Warehouse A")
				return err
			}},
			{"unknown mode", func() error {
				_, err := shipment.NewShipment(orderID, shipment.ModeUnknown, testWeight(t), testDimensions(t), "Warehouse A")
				return err
			}},
			{"unconstructed weight", func() error {
				var w kernel.Weight
				_, err := shipment.NewShipment(orderID, shipment.Express, w, testDimensions(t), "Warehouse A")
				return err
			}},
			{"unconstructed dimensions", func() error {
				var dims kernel.Dimensions
				_, err := shipment.NewShipment(orderID, shipment.Express, testWeight(t), dims, "Warehouse A")
				return err
			}},
			{"empty pickup location", func() error {
				_, err := shipment.NewShipment(orderID, shipment.Express, testWeight(t), testDimensions(t), "")
				return err
			}},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				require.Error(t, tc.setup())
			})
		}
	})
}

func TestShipment_Validate(t *testing.T) {
	t.Run("zero value is not constructed", func(t *testing.T) {
		var s shipment.Shipment

		require.ErrorIs(t, s.Validate(), shipment.ErrShipmentIsNotConstructed)
	})
}

func TestShipment_AppendWaybill(t *testing.T) {
	t.Run("appends new waybills in order", func(t *testing.T) {
		s, err := shipment.NewShipment(kernel.NewUUID(), shipment.Express, testWeight(t), testDimensions(t), "Warehouse A")
		require.NoError(t, err)

		require.NoError(t, s.AppendWaybill("WB1"))
		require.NoError(t, s.AppendWaybill("WB2"))

		assert.Equal(t, []string{"WB1", "WB2"}, s.WaybillNumbers())
	})

	t.Run("appending an existing waybill is a no-op", func(t *testing.T) {
		s, err := shipment.NewShipment(kernel.NewUUID(), shipment.Express, testWeight(t), testDimensions(t), "Warehouse A")
		require.NoError(t, err)

		require.NoError(t, s.AppendWaybill("WB1"))
		require.NoError(t, s.AppendWaybill("WB1"))

		assert.Equal(t, []string{"WB1"}, s.WaybillNumbers())
	})

	t.Run("rejects empty waybill", func(t *testing.T) {
		s, err := shipment.NewShipment(kernel.NewUUID(), shipment.Express, testWeight(t), testDimensions(t), "Warehouse A")
		require.NoError(t, err)

		require.ErrorIs(t, s.AppendWaybill(""), errs.ErrValueIsRequired)
	})
}

func TestShipment_SetTrackingURL(t *testing.T) {
	s, err := shipment.NewShipment(kernel.NewUUID(), shipment.Surface, testWeight(t), testDimensions(t), "Warehouse A")
	require.NoError(t, err)

	s.SetTrackingURL("https://carrier.example/track/WB1")
	assert.Equal(t, "https://carrier.example/track/WB1", s.TrackingURL())

	// An absent tracking URL on a later transition must not erase the link.
	s.SetTrackingURL("")
	assert.Equal(t, "https://carrier.example/track/WB1", s.TrackingURL())
}

func TestShipment_ChangeDetails(t *testing.T) {
	t.Run("edits physical properties", func(t *testing.T) {
		s, err := shipment.NewShipment(kernel.NewUUID(), shipment.Surface, testWeight(t), testDimensions(t), "Warehouse A")
		require.NoError(t, err)

		newWeight, err := kernel.NewWeight(750)
		require.NoError(t, err)
		newDims, err := kernel.NewDimensions(20, 15, 5)
		require.NoError(t, err)

		require.NoError(t, s.ChangeDetails(shipment.Express, newWeight, newDims, "Warehouse B"))

		assert.Equal(t, shipment.Express, s.Mode())
		assert.Equal(t, kernel.Grams(750), s.Weight().Grams())
		assert.Equal(t, "Warehouse B", s.PickupLocation())
	})

	t.Run("rejects invalid edits and reports every failure", func(t *testing.T) {
		s, err := shipment.NewShipment(kernel.NewUUID(), shipment.Surface, testWeight(t), testDimensions(t), "Warehouse A")
		require.NoError(t, err)

		var zeroWeight kernel.Weight
		editErr := s.ChangeDetails(shipment.ModeUnknown, zeroWeight, testDimensions(t), "Warehouse A")

		require.Error(t, editErr)
		assert.Contains(t, editErr.Error(), "shippingMode")
	})
}

func TestModeFromString(t *testing.T) {
	t.Run("parses valid modes", func(t *testing.T) {
		surface, err := shipment.ModeFromString("Surface")
		require.NoError(t, err)
		assert.Equal(t, shipment.Surface, surface)

		express, err := shipment.ModeFromString("Express")
		require.NoError(t, err)
		assert.Equal(t, shipment.Express, express)
	})

	t.Run("rejects unknown modes", func(t *testing.T) {
		for _, name := range []string{"", "surface", "Air", "Unknown"} {
			_, err := shipment.ModeFromString(name)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "Surface", shipment.Surface.String())
	assert.Equal(t, "Express", shipment.Express.String())
	assert.Equal(t, "Unknown", shipment.ModeUnknown.String())
	assert.Equal(t, "Unknown", shipment.Mode(9).String())
}
