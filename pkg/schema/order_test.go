package schema

import (
	"testing"
	"time"

	"github.com/hamba/avro/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderPlacedV1(t *testing.T) {
	t.Run("Regular", func(t *testing.T) {
		vMarshal := OrderPlacedV1{
			OrderID: 42,
			Customer: OrderCustomerV1{
				LastName:   "Иванов",
				FirstName:  "Иван",
				MiddleName: "Иванович",
				Phone:      "+79990000000",
				City:       "Москва",
				Address:    "ул. Ленина, 1",
			},
			Items: []OrderItemV1{
				{ProductID: 1, Name: "Стол", Price: 1000, Quantity: 2},
				{ProductID: 2, Name: "Стул", Price: 500, Quantity: 1},
			},
			Total:     2500,
			CreatedAt: time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC),
		}

		var orderSchema avro.Schema
		require.NotPanics(t, func() {
			orderSchema = OrderPlacedV1Avro()
		})

		data, err := avro.Marshal(orderSchema, vMarshal)
		require.NoError(t, err)

		var vUnmarshal OrderPlacedV1
		err = avro.Unmarshal(orderSchema, data, &vUnmarshal)
		require.NoError(t, err)

		assert.Equal(t, vMarshal.OrderID, vUnmarshal.OrderID)
		assert.Equal(t, vMarshal.Customer, vUnmarshal.Customer)
		assert.Equal(t, vMarshal.Items, vUnmarshal.Items)
		assert.Equal(t, vMarshal.Total, vUnmarshal.Total)
		assert.True(t, vMarshal.CreatedAt.Equal(vUnmarshal.CreatedAt))
	})

	t.Run("NilItems", func(t *testing.T) {
		vMarshal := OrderPlacedV1{
			OrderID:   1,
			CreatedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		}

		oSchema := OrderPlacedV1Avro()

		data, err := avro.Marshal(oSchema, vMarshal)
		require.NoError(t, err)

		var vUnmarshal OrderPlacedV1
		err = avro.Unmarshal(oSchema, data, &vUnmarshal)
		require.NoError(t, err)

		assert.Empty(t, vUnmarshal.Items)
		assert.Equal(t, vMarshal.Customer, vUnmarshal.Customer)
	})
}
