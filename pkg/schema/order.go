package schema

import (
	"time"

	"github.com/hamba/avro/v2"
)

const OrderPlacedSchemaTextV1 = `{
	"type": "record",
	"namespace": "orders",
	"name": "order_placed",
	"fields": [
		{"name": "order_id", "type": "long"},
		{"name": "customer", "type": {
			"type": "record",
			"name": "customer",
			"fields": [
				{"name": "last_name", "type": "string"},
				{"name": "first_name", "type": "string"},
				{"name": "middle_name", "type": "string", "default": ""},
				{"name": "phone", "type": "string"},
				{"name": "city", "type": "string"},
				{"name": "address", "type": "string"}
			]
		}},
		{"name": "items", "type": {
			"type": "array",
			"items": {
				"type": "record",
				"name": "item",
				"fields": [
					{"name": "product_id", "type": "long"},
					{"name": "name", "type": "string"},
					{"name": "price", "type": "long"},
					{"name": "quantity", "type": "int"}
				]
			}
		}},
		{"name": "total", "type": "long"},
		{"name": "created_at", "type": {"type": "long", "logicalType": "timestamp-millis"}}
	]
}`

type (
	OrderPlacedV1 struct {
		OrderID   int64           `avro:"order_id"`
		Customer  OrderCustomerV1 `avro:"customer"`
		Items     []OrderItemV1   `avro:"items"`
		Total     int64           `avro:"total"`
		CreatedAt time.Time       `avro:"created_at"`
	}

	OrderCustomerV1 struct {
		LastName   string `avro:"last_name"`
		FirstName  string `avro:"first_name"`
		MiddleName string `avro:"middle_name"`
		Phone      string `avro:"phone"`
		City       string `avro:"city"`
		Address    string `avro:"address"`
	}

	OrderItemV1 struct {
		ProductID int64  `avro:"product_id"`
		Name      string `avro:"name"`
		Price     int64  `avro:"price"`
		Quantity  int    `avro:"quantity"`
	}
)

// OrderPlacedV1Avro panics if the schema text is broken.
func OrderPlacedV1Avro() avro.Schema {
	return avro.MustParse(OrderPlacedSchemaTextV1)
}
