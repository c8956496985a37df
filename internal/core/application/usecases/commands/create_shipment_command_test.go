package commands_test

import (
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateShipmentCommand(t *testing.T) {
	t.Run("should create command with valid inputs", func(t *testing.T) {
		orderID := kernel.NewUUID()

		cmd, err := commands.NewCreateShipmentCommand(
			orderID, shipment.Express, testWeight(t), testDimensions(t), "Warehouse A")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.Equal(t, shipment.Express, cmd.Mode())
		assert.Equal(t, "Warehouse A", cmd.PickupLocation())
	})

	t.Run("should reject invalid inputs", func(t *testing.T) {
		orderID := kernel.NewUUID()

		testCases := []struct {
			name  string
			setup func() error
		}{
			{"zero order id", func() error {
				var zeroID kernel.UUID
				_, err := commands.NewCreateShipmentCommand(
					zeroID, shipment.Surface, testWeight(t), testDimensions(t), "Warehouse A")
				return err
			}},
			{"unknown mode", func() error {
				_, err := commands.NewCreateShipmentCommand(
					orderID, shipment.ModeUnknown, testWeight(t), testDimensions(t), "Warehouse A")
				return err
			}},
			{"unconstructed weight", func() error {
				var w kernel.Weight
				_, err := commands.NewCreateShipmentCommand(
					orderID, shipment.Surface, w, testDimensions(t), "Warehouse A")
				return err
			}},
			{"unconstructed dimensions", func() error {
				var dims kernel.Dimensions
				_, err := commands.NewCreateShipmentCommand(
					orderID, shipment.Surface, testWeight(t), dims, "Warehouse A")
				return err
			}},
			{"empty pickup location", func() error {
				_, err := commands.NewCreateShipmentCommand(
					orderID, shipment.Surface, testWeight(t), testDimensions(t), "")
				return err
			}},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				require.Error(t, tc.setup())
			})
		}
	})

	t.Run("empty pickup location reports the field name", func(t *testing.T) {
		_, err := commands.NewCreateShipmentCommand(
			kernel.NewUUID(), shipment.Surface, testWeight(t), testDimensions(t), "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "pickupLocation")
	})
}

func TestCreateShipmentCommand_Validate(t *testing.T) {
	t.Run("zero value is not constructed", func(t *testing.T) {
		var cmd commands.CreateShipmentCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateShipmentCommandIsNotConstructed)
	})
}
