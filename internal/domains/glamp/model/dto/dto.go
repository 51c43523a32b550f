package dto

import (
	"glamp/internal/domains/glamp/model"
	"glamp/shared/money"
)

type GlampResponse struct {
	ID                   string       `json:"id"`
	Name                 string       `json:"name"`
	Description          string       `json:"description"`
	Capacity             int          `json:"capacity"`
	PricePerNight        *money.Money `json:"pricePerNight"`
	PricePerNightDisplay string       `json:"pricePerNightDisplay,omitempty"`
	Amenities            []string     `json:"amenities"`
	Images               []string     `json:"images"`
	DiscountEnabled      bool         `json:"discountEnabled"`
	DiscountPercent      float64      `json:"discountPercent"`
}

func (r *GlampResponse) FromModel(m model.Glamp) {
	r.ID = m.ID
	r.Name = m.Name
	r.Description = m.Description
	r.Capacity = m.Capacity
	r.PricePerNight = m.PricePerNight
	r.Amenities = nonNil(m.Amenities)
	r.Images = nonNil(m.Images)
	r.DiscountEnabled = m.DiscountEnabled
	r.DiscountPercent = m.DiscountPercent

	if m.PricePerNight != nil {
		r.PricePerNightDisplay = m.PricePerNight.String()
	}
}

type GetGlampsResponse struct {
	Glamps    []GlampResponse `json:"glamps"`
	TotalData int             `json:"total_data"`
}

func (r *GetGlampsResponse) FromModels(models []model.Glamp) {
	r.TotalData = len(models)
	r.Glamps = make([]GlampResponse, 0, len(models))

	for _, m := range models {
		var res GlampResponse
		res.FromModel(m)
		r.Glamps = append(r.Glamps, res)
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
