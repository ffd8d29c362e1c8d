package model

import (
	"time"

	"facilio/shared/model"
)

const (
	TableName  = "rentals"
	EntityName = "rental"

	FieldID           = "id"
	FieldItemID       = "item_id"
	FieldQuantity     = "quantity"
	FieldRenterName   = "renter_name"
	FieldStatus       = "status"
	FieldCheckedOutAt = "checked_out_at"
	FieldReturnedAt   = "returned_at"
)

const (
	StatusOut      = "out"
	StatusReturned = "returned"
)

// Rental tracks a quantity of one inventory item handed out to a renter
// outside of any reservation, for walk-up equipment loans.
type Rental struct {
	ID           string     `db:"id"`
	ItemID       string     `db:"item_id"`
	Quantity     int        `db:"quantity"`
	RenterName   string     `db:"renter_name"`
	Status       string     `db:"status"`
	CheckedOutAt time.Time  `db:"checked_out_at"`
	ReturnedAt   *time.Time `db:"returned_at"`
	model.Metadata
}
