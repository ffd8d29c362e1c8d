package model

import "facilio/shared/model"

const (
	TableName  = "facilities"
	EntityName = "facility"

	FieldID             = "id"
	FieldName           = "name"
	FieldLocation       = "location"
	FieldCapacity       = "capacity"
	FieldDailyRateCents = "daily_rate_cents"
	FieldImage          = "image"
	FieldActive         = "active"
)

type Facility struct {
	ID             string `db:"id"`
	Name           string `db:"name"`
	Location       string `db:"location"`
	Capacity       int    `db:"capacity"`
	DailyRateCents int    `db:"daily_rate_cents"`
	Image          string `db:"image"`
	Active         bool   `db:"active"`
	model.Metadata
}
