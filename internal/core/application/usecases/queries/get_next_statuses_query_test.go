package queries_test

import (
	"testing"

	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetNextStatusesQuery(t *testing.T) {
	t.Run("should create query with valid order id", func(t *testing.T) {
		orderID := kernel.NewUUID()

		query, err := queries.NewGetNextStatusesQuery(orderID)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, query.OrderID().IsEqual(orderID))
	})

	t.Run("should reject zero order id", func(t *testing.T) {
		var zeroID kernel.UUID

		_, err := queries.NewGetNextStatusesQuery(zeroID)

		require.Error(t, err)
	})
}

func TestGetNextStatusesQuery_Validate(t *testing.T) {
	t.Run("zero value is not constructed", func(t *testing.T) {
		var query queries.GetNextStatusesQuery

		require.ErrorIs(t, query.Validate(), queries.ErrGetNextStatusesQueryIsNotConstructed)
	})
}
