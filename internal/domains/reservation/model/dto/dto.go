package dto

import (
	"github.com/google/uuid"

	"facilio/internal/domains/reservation/model"
	"facilio/shared"
	gDto "facilio/shared/dto"
	"facilio/shared/failure"
	gModel "facilio/shared/model"
	"facilio/shared/timezone"
)

const DateLayout = "2006-01-02"

type ClaimRequest struct {
	ItemID   string `json:"item_id"  validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=0"`
}

type CreateReservationRequest struct {
	FacilityID string         `json:"facility_id" validate:"required"`
	GuestName  string         `json:"guest_name"  validate:"required,max=100"`
	GuestEmail string         `json:"guest_email" validate:"omitempty,email,max=100"`
	GuestPhone string         `json:"guest_phone" validate:"omitempty,max=20"`
	StartDate  string         `json:"start_date"  validate:"required"`
	EndDate    string         `json:"end_date"    validate:"required"`
	Purpose    string         `json:"purpose"     validate:"omitempty"`
	Status     string         `json:"status"      validate:"omitempty,oneof=pending confirmed"`
	Items      []ClaimRequest `json:"items"       validate:"omitempty,dive"`
}

// Window parses and validates the requested interval.
func (c *CreateReservationRequest) Window() (model.Window, error) {
	return parseWindow(c.StartDate, c.EndDate)
}

func (c *CreateReservationRequest) ToModel(window model.Window, user string) model.Reservation {
	status := model.StatusPending
	if c.Status != "" {
		status = c.Status
	}

	return model.Reservation{
		ID:         uuid.NewString(),
		FacilityID: c.FacilityID,
		GuestName:  c.GuestName,
		GuestEmail: c.GuestEmail,
		GuestPhone: c.GuestPhone,
		StartDate:  window.Start,
		EndDate:    window.End,
		Purpose:    c.Purpose,
		Status:     status,
		IsDeleted:  false,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// Claims materializes the requested item claims, skipping zero-quantity
// entries.
func (c *CreateReservationRequest) Claims(reservationID string) []model.Claim {
	return toClaims(c.Items, reservationID)
}

type UpdateReservationRequest struct {
	FacilityID string          `db:"facility_id" json:"facility_id" validate:"omitempty"`
	GuestName  string          `db:"guest_name"  json:"guest_name"  validate:"omitempty,max=100"`
	GuestEmail string          `db:"guest_email" json:"guest_email" validate:"omitempty,email,max=100"`
	GuestPhone string          `db:"guest_phone" json:"guest_phone" validate:"omitempty,max=20"`
	StartDate  string          `json:"start_date" validate:"omitempty"`
	EndDate    string          `json:"end_date"   validate:"omitempty"`
	Purpose    string          `db:"purpose"     json:"purpose"     validate:"omitempty"`
	Status     string          `db:"status"      json:"status"      validate:"omitempty,oneof=pending confirmed completed cancelled"`
	Items      *[]ClaimRequest `json:"items"      validate:"omitempty,dive"`
}

func (u *UpdateReservationRequest) Empty() bool {
	return u.FacilityID == "" && u.GuestName == "" && u.GuestEmail == "" &&
		u.GuestPhone == "" && u.StartDate == "" && u.EndDate == "" &&
		u.Purpose == "" && u.Status == "" && u.Items == nil
}

// EffectiveWindow resolves the requested interval against the current record:
// patched values win, everything else is carried over.
func (u *UpdateReservationRequest) EffectiveWindow(current model.Reservation) (model.Window, error) {
	window := current.Window()

	if u.StartDate != "" {
		start, err := timezone.Parse(DateLayout, u.StartDate)
		if err != nil {
			return model.Window{}, failure.BadRequestFromString("invalid start_date format, expected YYYY-MM-DD") //nolint:wrapcheck
		}

		window.Start = start
	}

	if u.EndDate != "" {
		end, err := timezone.Parse(DateLayout, u.EndDate)
		if err != nil {
			return model.Window{}, failure.BadRequestFromString("invalid end_date format, expected YYYY-MM-DD") //nolint:wrapcheck
		}

		window.End = end
	}

	if !window.Valid() {
		return model.Window{}, failure.BadRequestFromString("start_date must be before end_date") //nolint:wrapcheck
	}

	return window, nil
}

func (u *UpdateReservationRequest) EffectiveFacility(current model.Reservation) string {
	if u.FacilityID != "" {
		return u.FacilityID
	}

	return current.FacilityID
}

func (u *UpdateReservationRequest) Claims(reservationID string) []model.Claim {
	if u.Items == nil {
		return nil
	}

	return toClaims(*u.Items, reservationID)
}

type AvailabilityRequest struct {
	FacilityID string `json:"facility_id" validate:"required"`
	StartDate  string `json:"start_date"  validate:"required"`
	EndDate    string `json:"end_date"    validate:"required"`
}

func (a *AvailabilityRequest) Window() (model.Window, error) {
	return parseWindow(a.StartDate, a.EndDate)
}

type AvailabilityResponse struct {
	FacilityID string `json:"facility_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Available  bool   `json:"available"`
}

type SuggestedWindow struct {
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	DurationDays int    `json:"duration_days"`
}

func (s *SuggestedWindow) FromWindow(window model.Window) {
	s.StartDate = window.Start.Format(DateLayout)
	s.EndDate = window.End.Format(DateLayout)
	s.DurationDays = window.DurationDays()
}

type SuggestedDatesResponse struct {
	FacilityID  string            `json:"facility_id"`
	Suggestions []SuggestedWindow `json:"suggestions"`
}

type ClaimResponse struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

type ReservationResponse struct {
	ID         string          `json:"id"`
	FacilityID string          `json:"facility_id"`
	GuestName  string          `json:"guest_name"`
	GuestEmail string          `json:"guest_email"`
	GuestPhone string          `json:"guest_phone"`
	StartDate  string          `json:"start_date"`
	EndDate    string          `json:"end_date"`
	Purpose    string          `json:"purpose"`
	Status     string          `json:"status"`
	Items      []ClaimResponse `json:"items"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(reservation model.Reservation, claims []model.Claim) {
	r.ID = reservation.ID
	r.FacilityID = reservation.FacilityID
	r.GuestName = reservation.GuestName
	r.GuestEmail = reservation.GuestEmail
	r.GuestPhone = reservation.GuestPhone
	r.StartDate = reservation.StartDate.Format(DateLayout)
	r.EndDate = reservation.EndDate.Format(DateLayout)
	r.Purpose = reservation.Purpose
	r.Status = reservation.Status

	r.Items = make([]ClaimResponse, len(claims))
	for i, claim := range claims {
		r.Items[i] = ClaimResponse{ItemID: claim.ItemID, Quantity: claim.Quantity}
	}

	r.Metadata.FromModel(reservation.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod, nil)
	}
}

func parseWindow(startDate, endDate string) (model.Window, error) {
	start, err := timezone.Parse(DateLayout, startDate)
	if err != nil {
		return model.Window{}, failure.BadRequestFromString("invalid start_date format, expected YYYY-MM-DD") //nolint:wrapcheck
	}

	end, err := timezone.Parse(DateLayout, endDate)
	if err != nil {
		return model.Window{}, failure.BadRequestFromString("invalid end_date format, expected YYYY-MM-DD") //nolint:wrapcheck
	}

	window := model.Window{Start: start, End: end}
	if !window.Valid() {
		return model.Window{}, failure.BadRequestFromString("start_date must be before end_date") //nolint:wrapcheck
	}

	return window, nil
}

func toClaims(items []ClaimRequest, reservationID string) []model.Claim {
	claims := make([]model.Claim, 0, len(items))

	for _, item := range items {
		if item.ItemID == "" || item.Quantity == 0 {
			continue
		}

		claims = append(claims, model.Claim{
			ID:            uuid.NewString(),
			ReservationID: reservationID,
			ItemID:        item.ItemID,
			Quantity:      item.Quantity,
		})
	}

	return claims
}
