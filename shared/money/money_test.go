package money_test

import (
	"encoding/json"
	"glamp/shared/money"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromMajorAndMajor(t *testing.T) {
	assert.Equal(t, money.Money(2500000), money.FromMajor(25000))
	assert.Equal(t, money.Money(1050), money.FromMajor(10.5))
	assert.InDelta(t, 25000.0, money.Money(2500000).Major(), 0.0001)
}

func TestRoundMajor(t *testing.T) {
	assert.Equal(t, money.FromMajor(82501), money.FromMajor(82500.5).RoundMajor())
	assert.Equal(t, money.FromMajor(82500), money.FromMajor(82500.49).RoundMajor())
}

func TestString(t *testing.T) {
	tests := []struct {
		amount   money.Money
		expected string
	}{
		{money.FromMajor(165000), "PKR 165,000"},
		{money.FromMajor(999), "PKR 999"},
		{money.FromMajor(1234567.5), "PKR 1,234,567.50"},
		{money.FromMajor(-2500), "PKR -2,500"},
		{0, "PKR 0"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.amount.String())
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		unit     money.Unit
		expected money.Money
		wantErr  bool
	}{
		{name: "minor integer", raw: `150000`, unit: money.UnitMinor, expected: 150000},
		{name: "major integer", raw: `1500`, unit: money.UnitMajor, expected: 150000},
		{name: "major fraction", raw: `1500.25`, unit: money.UnitMajor, expected: 150025},
		{name: "numeric string", raw: `"30000"`, unit: money.UnitMajor, expected: 3000000},
		{name: "string with separators", raw: `"30,000"`, unit: money.UnitMajor, expected: 3000000},
		{name: "null", raw: `null`, unit: money.UnitMajor, wantErr: true},
		{name: "empty", raw: ``, unit: money.UnitMajor, wantErr: true},
		{name: "non numeric string", raw: `"call us"`, unit: money.UnitMajor, wantErr: true},
		{name: "object", raw: `{"amount":1}`, unit: money.UnitMajor, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := money.Parse(json.RawMessage(tt.raw), tt.unit)

			if tt.wantErr {
				assert.ErrorIs(t, err, money.ErrNotNumeric)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseOrZero(t *testing.T) {
	assert.Equal(t, money.Money(0), money.ParseOrZero(json.RawMessage(`"n/a"`), money.UnitMinor))
	assert.Equal(t, money.Money(42), money.ParseOrZero(json.RawMessage(`42`), money.UnitMinor))
}

func TestUnitRoundTrip(t *testing.T) {
	assert.Equal(t, money.UnitMajor, money.ParseUnit(" Major "))
	assert.Equal(t, money.UnitMinor, money.ParseUnit("cents"))
	assert.Equal(t, money.UnitMinor, money.ParseUnit(""))

	amount := money.Money(150025)

	for _, unit := range []money.Unit{money.UnitMinor, money.UnitMajor} {
		back, err := money.Parse(json.RawMessage(amount.In(unit)), unit)
		assert.NoError(t, err)
		assert.Equal(t, amount, back)
	}

	assert.Equal(t, "1500.25", amount.In(money.UnitMajor).String())
}
