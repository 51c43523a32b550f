package model_test

import (
	"encoding/json"
	"glamp/internal/domains/glamp/model"
	"glamp/shared/money"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validID = "3f1c2a4e-9b7d-4c1a-8e2f-5d6b7a8c9d0e"

func decode(t *testing.T, body string) model.Raw {
	t.Helper()

	var raw model.Raw
	require.NoError(t, json.Unmarshal([]byte(body), &raw))

	return raw
}

func TestRaw_ToModel(t *testing.T) {
	g, ok := decode(t, `{"id":"`+validID+`","name":"Dome","capacity":4,"pricePerNight":30000,"amenities":["wifi"]}`).ToModel()

	require.True(t, ok)
	assert.Equal(t, validID, g.ID)
	assert.Equal(t, 4, g.Capacity)
	require.NotNil(t, g.PricePerNight)
	assert.Equal(t, money.FromMajor(30000), *g.PricePerNight)
}

func TestRaw_ToModelRejectsIDs(t *testing.T) {
	for _, body := range []string{
		`{"id":12,"name":"Numeric"}`,
		`{"id":"12","name":"Numeric string"}`,
		`{"id":"3f1c2a4e9b7d4c1a8e2f5d6b7a8c9d0e","name":"No hyphens"}`,
		`{"name":"Missing"}`,
	} {
		_, ok := decode(t, body).ToModel()
		assert.False(t, ok, body)
	}
}

func TestRaw_PriceVariants(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		expected *money.Money
	}{
		{name: "numeric string", price: `"27500"`, expected: ptr(money.FromMajor(27500))},
		{name: "null", price: `null`, expected: nil},
		{name: "text", price: `"on request"`, expected: nil},
		{name: "negative", price: `-5`, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, ok := decode(t, `{"id":"`+validID+`","pricePerNight":`+tt.price+`}`).ToModel()
			require.True(t, ok)
			assert.Equal(t, tt.expected, g.PricePerNight)
		})
	}
}

func TestNightlyRate(t *testing.T) {
	fallback := money.FromMajor(25000)
	price := money.FromMajor(40000)

	assert.Equal(t, fallback, model.NightlyRate(nil, fallback))
	assert.Equal(t, fallback, model.NightlyRate(&model.Glamp{ID: validID}, fallback))
	assert.Equal(t, price, model.NightlyRate(&model.Glamp{ID: validID, PricePerNight: &price}, fallback))
}

func ptr(m money.Money) *money.Money {
	return &m
}
