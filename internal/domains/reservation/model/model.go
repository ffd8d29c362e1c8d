package model

import (
	"slices"
	"time"

	"facilio/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID         = "id"
	FieldFacilityID = "facility_id"
	FieldGuestName  = "guest_name"
	FieldGuestEmail = "guest_email"
	FieldGuestPhone = "guest_phone"
	FieldStartDate  = "start_date"
	FieldEndDate    = "end_date"
	FieldPurpose    = "purpose"
	FieldStatus     = "status"
	FieldIsDeleted  = "is_deleted"
)

const (
	ClaimsTableName  = "reservation_items"
	ClaimsEntityName = "reservation_item"

	FieldReservationID = "reservation_id"
	FieldItemID        = "item_id"
	FieldQuantity      = "quantity"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ActiveStatuses are the statuses that hold a facility window and keep
// inventory claims committed.
var ActiveStatuses = []string{StatusPending, StatusConfirmed}

type Reservation struct {
	ID         string    `db:"id"`
	FacilityID string    `db:"facility_id"`
	GuestName  string    `db:"guest_name"`
	GuestEmail string    `db:"guest_email"`
	GuestPhone string    `db:"guest_phone"`
	StartDate  time.Time `db:"start_date"`
	EndDate    time.Time `db:"end_date"`
	Purpose    string    `db:"purpose"`
	Status     string    `db:"status"`
	IsDeleted  bool      `db:"is_deleted"`
	model.Metadata
}

func (r *Reservation) Window() Window {
	return Window{Start: r.StartDate, End: r.EndDate}
}

// Active reports whether the reservation still holds its facility window.
func (r *Reservation) Active() bool {
	return !r.IsDeleted && slices.Contains(ActiveStatuses, r.Status)
}

// Claim is a quantity of one inventory item committed for the duration of a
// reservation.
type Claim struct {
	ID            string `db:"id"`
	ReservationID string `db:"reservation_id"`
	ItemID        string `db:"item_id"`
	Quantity      int    `db:"quantity"`
}
