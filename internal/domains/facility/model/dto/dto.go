package dto

import (
	"mime/multipart"

	"github.com/google/uuid"

	"facilio/internal/domains/facility/model"
	"facilio/shared"
	gDto "facilio/shared/dto"
	gModel "facilio/shared/model"
	"facilio/shared/timezone"
)

type CreateFacilityRequest struct {
	Name           string                `json:"name"             validate:"required,max=100"`
	Location       string                `json:"location"         validate:"omitempty,max=100"`
	Capacity       int                   `json:"capacity"         validate:"omitempty,min=0"`
	DailyRateCents int                   `json:"daily_rate_cents" validate:"omitempty,min=0"`
	Image          *multipart.FileHeader `json:"image"            validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile      multipart.File        `json:"-"`
	Active         *bool                 `json:"active"           validate:"omitempty"`
}

func (c *CreateFacilityRequest) ToModel(user string, imageURL string) model.Facility {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Facility{
		ID:             uuid.NewString(),
		Name:           c.Name,
		Location:       c.Location,
		Capacity:       c.Capacity,
		DailyRateCents: c.DailyRateCents,
		Image:          imageURL,
		Active:         active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateFacilityRequest struct {
	Name           string                `db:"name"             json:"name"                                                                 validate:"omitempty,max=100"`
	Location       string                `db:"location"         json:"location"                                                             validate:"omitempty,max=100"`
	Capacity       *int                  `db:"capacity"         json:"capacity"                                                             validate:"omitempty,min=0"`
	DailyRateCents *int                  `db:"daily_rate_cents" json:"daily_rate_cents"                                                     validate:"omitempty,min=0"`
	Image          *multipart.FileHeader `json:"image"          validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile      multipart.File        `json:"-"`
	Active         *bool                 `db:"active"           json:"active"                                                               validate:"omitempty"`
}

type FacilityResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Location       string `json:"location"`
	Capacity       int    `json:"capacity"`
	DailyRateCents int    `json:"daily_rate_cents"`
	Image          string `json:"image"`
	Active         bool   `json:"active"`
	gDto.Metadata
}

func (r *FacilityResponse) FromModel(model model.Facility) {
	r.ID = model.ID
	r.Name = model.Name
	r.Location = model.Location
	r.Capacity = model.Capacity
	r.DailyRateCents = model.DailyRateCents
	r.Image = model.Image
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetFacilitiesResponse struct {
	Facilities []FacilityResponse `json:"facilities"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (r *GetFacilitiesResponse) FromModels(models []model.Facility, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Facilities = make([]FacilityResponse, len(models))
	for i, mod := range models {
		r.Facilities[i].FromModel(mod)
	}
}
