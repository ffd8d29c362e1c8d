package dto

import (
	"github.com/google/uuid"

	"facilio/internal/domains/rental/model"
	"facilio/shared"
	gDto "facilio/shared/dto"
	gModel "facilio/shared/model"
	"facilio/shared/timezone"
)

type CheckOutRequest struct {
	ItemID     string `json:"item_id"     validate:"required"`
	Quantity   int    `json:"quantity"    validate:"required,gt=0"`
	RenterName string `json:"renter_name" validate:"required,max=100"`
}

func (c *CheckOutRequest) ToModel(user string) model.Rental {
	return model.Rental{
		ID:           uuid.NewString(),
		ItemID:       c.ItemID,
		Quantity:     c.Quantity,
		RenterName:   c.RenterName,
		Status:       model.StatusOut,
		CheckedOutAt: timezone.Now(),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type RentalResponse struct {
	ID           string `json:"id"`
	ItemID       string `json:"item_id"`
	Quantity     int    `json:"quantity"`
	RenterName   string `json:"renter_name"`
	Status       string `json:"status"`
	CheckedOutAt string `json:"checked_out_at"`
	ReturnedAt   string `json:"returned_at,omitempty"`
	gDto.Metadata
}

func (r *RentalResponse) FromModel(rental model.Rental) {
	r.ID = rental.ID
	r.ItemID = rental.ItemID
	r.Quantity = rental.Quantity
	r.RenterName = rental.RenterName
	r.Status = rental.Status
	r.CheckedOutAt = timezone.Format(rental.CheckedOutAt, "2006-01-02 15:04:05")

	if rental.ReturnedAt != nil {
		r.ReturnedAt = timezone.Format(*rental.ReturnedAt, "2006-01-02 15:04:05")
	}

	r.Metadata.FromModel(rental.Metadata)
}

type GetRentalsResponse struct {
	Rentals   []RentalResponse `json:"rentals"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetRentalsResponse) FromModels(models []model.Rental, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rentals = make([]RentalResponse, len(models))
	for i, mod := range models {
		r.Rentals[i].FromModel(mod)
	}
}
