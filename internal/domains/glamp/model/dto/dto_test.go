package dto_test

import (
	"glamp/internal/domains/glamp/model"
	"glamp/internal/domains/glamp/model/dto"
	"glamp/shared/money"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlampResponse_FromModel(t *testing.T) {
	price := money.FromMajor(30000)

	var res dto.GlampResponse
	res.FromModel(model.Glamp{ID: "id-1", Name: "Dome", PricePerNight: &price})

	assert.Equal(t, "id-1", res.ID)
	assert.Equal(t, "PKR 30,000", res.PricePerNightDisplay)
	assert.NotNil(t, res.Amenities)
	assert.NotNil(t, res.Images)
}

func TestGetGlampsResponse_FromModels(t *testing.T) {
	var res dto.GetGlampsResponse
	res.FromModels([]model.Glamp{{ID: "a"}, {ID: "b"}})

	assert.Equal(t, 2, res.TotalData)
	assert.Len(t, res.Glamps, 2)
	assert.Empty(t, res.Glamps[0].PricePerNightDisplay)
}
