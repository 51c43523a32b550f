package model

import (
	"encoding/json"
	"glamp/shared/money"
	"glamp/shared/validator"
	"strings"
)

const (
	EntityName = "glamp"

	EndpointGlamps = "/glamps"
	ListKey        = "glamps"
	ObjectKey      = "glamp"
)

type Glamp struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	Capacity        int          `json:"capacity"`
	PricePerNight   *money.Money `json:"pricePerNight"`
	Amenities       []string     `json:"amenities"`
	Images          []string     `json:"images"`
	DiscountEnabled bool         `json:"discountEnabled"`
	DiscountPercent float64      `json:"discountPercent"`
}

// Raw is the backend representation. Prices arrive in rupees and may be a
// number, a numeric string or null.
type Raw struct {
	ID              json.RawMessage `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Capacity        json.RawMessage `json:"capacity"`
	PricePerNight   json.RawMessage `json:"pricePerNight"`
	Amenities       []string        `json:"amenities"`
	Images          []string        `json:"images"`
	DiscountEnabled bool            `json:"discountEnabled"`
	DiscountPercent json.RawMessage `json:"discountPercent"`
}

// ToModel converts a backend record. ok is false when the id is not a
// hyphenated UUID; such records must never reach a caller.
func (r Raw) ToModel() (g Glamp, ok bool) {
	var id string
	if err := json.Unmarshal(r.ID, &id); err != nil || !validator.IsHyphenatedUUID(id) {
		return g, false
	}

	g = Glamp{
		ID:              NormalizeID(id),
		Name:            r.Name,
		Description:     r.Description,
		Amenities:       r.Amenities,
		Images:          r.Images,
		DiscountEnabled: r.DiscountEnabled,
	}

	if capacity, err := money.ParseNumber(r.Capacity); err == nil {
		g.Capacity = int(capacity)
	}

	if percent, err := money.ParseNumber(r.DiscountPercent); err == nil {
		g.DiscountPercent = percent
	}

	if price, err := money.Parse(r.PricePerNight, money.UnitMajor); err == nil && price >= 0 {
		g.PricePerNight = &price
	}

	return g, true
}

// NormalizeID is the canonical form glamp ids are compared and cached in.
func NormalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// RawID renders the original id for logging rejected records.
func (r Raw) RawID() string {
	return string(r.ID)
}

// NightlyRate resolves the price used for a glamp: its own price when known,
// the fallback when the record or its price is missing.
func NightlyRate(g *Glamp, fallback money.Money) money.Money {
	if g == nil || g.PricePerNight == nil {
		return fallback
	}

	return *g.PricePerNight
}

// Index maps glamps by id.
func Index(glamps []Glamp) map[string]Glamp {
	index := make(map[string]Glamp, len(glamps))
	for _, g := range glamps {
		index[g.ID] = g
	}

	return index
}
