package model

import "facilio/shared/model"

const (
	TableName  = "inventory_items"
	EntityName = "inventory_item"

	FieldID                = "id"
	FieldName              = "name"
	FieldSKU               = "sku"
	FieldQuantity          = "quantity"
	FieldUnitPriceCents    = "unit_price_cents"
	FieldLowStockThreshold = "low_stock_threshold"
	FieldActive            = "active"
)

// Item is a rentable inventory unit. Quantity is the count not currently
// committed to any active reservation or rental and never goes negative.
type Item struct {
	ID                string `db:"id"`
	Name              string `db:"name"`
	SKU               string `db:"sku"`
	Quantity          int    `db:"quantity"`
	UnitPriceCents    int    `db:"unit_price_cents"`
	LowStockThreshold int    `db:"low_stock_threshold"`
	Active            bool   `db:"active"`
	model.Metadata
}
