package dto

import (
	"github.com/google/uuid"

	"facilio/internal/domains/inventory/model"
	"facilio/shared"
	gDto "facilio/shared/dto"
	gModel "facilio/shared/model"
	"facilio/shared/timezone"
)

type CreateItemRequest struct {
	Name              string `json:"name"                validate:"required,max=100"`
	SKU               string `json:"sku"                 validate:"omitempty,max=50"`
	Quantity          int    `json:"quantity"            validate:"gte=0"`
	UnitPriceCents    int    `json:"unit_price_cents"    validate:"gte=0"`
	LowStockThreshold int    `json:"low_stock_threshold" validate:"gte=0"`
}

func (c *CreateItemRequest) ToModel(user string) model.Item {
	return model.Item{
		ID:                uuid.NewString(),
		Name:              c.Name,
		SKU:               c.SKU,
		Quantity:          c.Quantity,
		UnitPriceCents:    c.UnitPriceCents,
		LowStockThreshold: c.LowStockThreshold,
		Active:            true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateItemRequest struct {
	Name              string `db:"name"                json:"name"                validate:"omitempty,max=100"`
	SKU               string `db:"sku"                 json:"sku"                 validate:"omitempty,max=50"`
	UnitPriceCents    *int   `db:"unit_price_cents"    json:"unit_price_cents"    validate:"omitempty,gte=0"`
	LowStockThreshold *int   `db:"low_stock_threshold" json:"low_stock_threshold" validate:"omitempty,gte=0"`
	Active            *bool  `db:"active"              json:"active"              validate:"omitempty"`
}

type AdjustItemRequest struct {
	Delta int `json:"delta" validate:"required"`
}

type ItemResponse struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	SKU               string `json:"sku"`
	Quantity          int    `json:"quantity"`
	UnitPriceCents    int    `json:"unit_price_cents"`
	LowStockThreshold int    `json:"low_stock_threshold"`
	Active            bool   `json:"active"`
	gDto.Metadata
}

func (r *ItemResponse) FromModel(item model.Item) {
	r.ID = item.ID
	r.Name = item.Name
	r.SKU = item.SKU
	r.Quantity = item.Quantity
	r.UnitPriceCents = item.UnitPriceCents
	r.LowStockThreshold = item.LowStockThreshold
	r.Active = item.Active
	r.Metadata.FromModel(item.Metadata)
}

// AvailabilityResponse breaks an item's stock position down into the free
// quantity on hand and the quantity committed to active reservations.
type AvailabilityResponse struct {
	ItemID    string `json:"item_id"`
	OnHand    int    `json:"on_hand"`
	Committed int    `json:"committed"`
	LowStock  bool   `json:"low_stock"`
}

type GetItemsResponse struct {
	Items     []ItemResponse `json:"items"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetItemsResponse) FromModels(models []model.Item, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Items = make([]ItemResponse, len(models))
	for i, mod := range models {
		r.Items[i].FromModel(mod)
	}
}
