// Package money holds the single amount representation used across the
// service: an integer count of minor currency units (paisa for PKR).
//
// Backend payloads are converted exactly once, at decode time, through
// Parse with the unit the endpoint is known to use.
package money

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Money is an amount in minor units.
type Money int64

// Unit tells Parse how a raw backend number is denominated.
type Unit string

const (
	UnitMinor Unit = "minor"
	UnitMajor Unit = "major"
)

const (
	minorPerMajor   = 100
	DefaultCurrency = "PKR"
)

var ErrNotNumeric = errors.New("amount is not numeric")

// FromMajor converts a major-unit amount, rounding half away from zero.
func FromMajor(major float64) Money {
	return Money(math.Round(major * minorPerMajor))
}

// Major returns the amount in major units.
func (m Money) Major() float64 {
	return float64(m) / minorPerMajor
}

// Mul scales the amount by factor and rounds to the nearest minor unit.
func (m Money) Mul(factor float64) Money {
	return Money(math.Round(float64(m) * factor))
}

// RoundMajor rounds the amount to a whole major unit.
func (m Money) RoundMajor() Money {
	return FromMajor(math.Round(m.Major()))
}

// String renders the amount with thousands separators, e.g. "PKR 165,000".
// Fractional units are shown only when present.
func (m Money) String() string {
	return Format(m, DefaultCurrency)
}

// Format renders the amount in currency.
func Format(m Money, currency string) string {
	if currency == "" {
		currency = DefaultCurrency
	}

	sign := ""
	value := int64(m)

	if value < 0 {
		sign = "-"
		value = -value
	}

	whole := groupThousands(strconv.FormatInt(value/minorPerMajor, 10))

	if frac := value % minorPerMajor; frac != 0 {
		return fmt.Sprintf("%s %s%s.%02d", currency, sign, whole, frac)
	}

	return fmt.Sprintf("%s %s%s", currency, sign, whole)
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder

	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}

	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}

		b.WriteString(digits[i : i+3])
	}

	return b.String()
}

// Parse converts a raw JSON value into Money. Numbers and numeric strings are
// accepted; null, booleans, objects and non-numeric strings yield ErrNotNumeric.
func Parse(raw json.RawMessage, unit Unit) (Money, error) {
	value, err := ParseNumber(raw)
	if err != nil {
		return 0, err
	}

	if unit == UnitMajor {
		return FromMajor(value), nil
	}

	return Money(math.Round(value)), nil
}

// ParseOrZero behaves like Parse but maps every failure to zero.
func ParseOrZero(raw json.RawMessage, unit Unit) Money {
	m, err := Parse(raw, unit)
	if err != nil {
		return 0
	}

	return m
}

// ParseNumber reads a JSON number or numeric string.
func ParseNumber(raw json.RawMessage) (float64, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return 0, ErrNotNumeric
	}

	var number float64
	if err := json.Unmarshal([]byte(trimmed), &number); err == nil {
		return number, nil
	}

	var text string
	if err := json.Unmarshal([]byte(trimmed), &text); err != nil {
		return 0, ErrNotNumeric
	}

	number, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(text), ",", ""), 64)
	if err != nil || math.IsNaN(number) || math.IsInf(number, 0) {
		return 0, ErrNotNumeric
	}

	return number, nil
}

// ParseUnit reads a configured unit name. Anything but "major" is minor.
func ParseUnit(name string) Unit {
	if Unit(strings.ToLower(strings.TrimSpace(name))) == UnitMajor {
		return UnitMajor
	}

	return UnitMinor
}

// In renders the amount as a JSON number denominated in unit, the inverse
// of Parse.
func (m Money) In(unit Unit) json.Number {
	if unit != UnitMajor {
		return json.Number(strconv.FormatInt(int64(m), 10))
	}

	return json.Number(strconv.FormatFloat(m.Major(), 'f', -1, 64))
}
