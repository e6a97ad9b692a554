package schema_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/niksmo/kitchen-store/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSchemaIdentifier struct {
	mock.Mock
}

func (c *MockSchemaIdentifier) DetermineID(
	ctx context.Context, subject string, avroSchemaText string,
) (id int, err error) {
	args := c.Called(ctx, subject, avroSchemaText)
	return args.Int(0), args.Error(1)
}

func TestSerdeOrderPlacedV1(t *testing.T) {
	subject := schema.TopicSubject("orders-placed")

	t.Run("NoOpts", func(t *testing.T) {
		_, err := schema.NewSerdeOrderPlacedV1(t.Context())
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrTooFewOpts)
	})

	t.Run("OneOpt", func(t *testing.T) {
		_, err := schema.NewSerdeOrderPlacedV1(
			t.Context(),
			schema.SchemaIdentifierOpt(new(MockSchemaIdentifier)),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrTooFewOpts)
	})

	t.Run("EmptySubject", func(t *testing.T) {
		_, err := schema.NewSerdeOrderPlacedV1(
			t.Context(),
			schema.SubjectOpt(""),
			schema.SchemaIdentifierOpt(new(MockSchemaIdentifier)),
		)
		require.Error(t, err)
	})

	t.Run("RegistryFailed", func(t *testing.T) {
		schemaIdentifier := new(MockSchemaIdentifier)
		errRegistry := errors.New("registry is down")
		schemaIdentifier.On(
			"DetermineID", t.Context(), subject, schema.OrderPlacedSchemaTextV1,
		).Return(0, errRegistry)

		_, err := schema.NewSerdeOrderPlacedV1(
			t.Context(),
			schema.SubjectOpt(subject),
			schema.SchemaIdentifierOpt(schemaIdentifier),
		)
		assert.ErrorIs(t, err, errRegistry)
	})

	t.Run("EncodeDecode", func(t *testing.T) {
		schemaIdentifier := new(MockSchemaIdentifier)
		schemaID := 1

		schemaIdentifier.On(
			"DetermineID", t.Context(), subject, schema.OrderPlacedSchemaTextV1,
		).Return(schemaID, nil)

		serde, err := schema.NewSerdeOrderPlacedV1(
			t.Context(),
			schema.SubjectOpt(subject),
			schema.SchemaIdentifierOpt(schemaIdentifier),
		)
		require.NoError(t, err)
		schemaIdentifier.AssertExpectations(t)

		orderValue1 := schema.OrderPlacedV1{
			OrderID: 7,
			Customer: schema.OrderCustomerV1{
				LastName:  "Петров",
				FirstName: "Пётр",
				Phone:     "+71112223344",
				City:      "Казань",
				Address:   "ул. Баумана, 5",
			},
			Items: []schema.OrderItemV1{
				{ProductID: 3, Name: "Шкаф", Price: 45000, Quantity: 1},
			},
			Total:     45000,
			CreatedAt: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
		}

		encodedData, err := serde.Encode(orderValue1)
		require.NoError(t, err)
		require.Greater(t, len(encodedData), 5)
		assert.Equal(t, byte(0), encodedData[0])

		var orderValue2 schema.OrderPlacedV1
		err = serde.Decode(encodedData, &orderValue2)
		require.NoError(t, err)

		assert.Equal(t, orderValue1.OrderID, orderValue2.OrderID)
		assert.Equal(t, orderValue1.Customer, orderValue2.Customer)
		assert.Equal(t, orderValue1.Items, orderValue2.Items)
		assert.Equal(t, orderValue1.Total, orderValue2.Total)
		assert.True(t, orderValue1.CreatedAt.Equal(orderValue2.CreatedAt))
	})
}
