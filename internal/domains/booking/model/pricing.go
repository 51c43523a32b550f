package model

import (
	"errors"
	"glamp/shared/constant"
	"glamp/shared/money"
	"math"
	"time"
)

var (
	ErrMissingDates   = errors.New("Please select check-in and check-out dates")
	ErrInvalidDate    = errors.New("Dates must be in YYYY-MM-DD format")
	ErrCheckOutBefore = errors.New("Check-out date must be after check-in date")
)

// Stay is a parsed check-in/check-out pair.
type Stay struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// ParseStay parses both dates as UTC midnights and requires check-out to be
// after check-in. Pricing works on calendar dates, so a DST change in the
// application timezone never adds a night.
func ParseStay(checkIn, checkOut string) (Stay, error) {
	if checkIn == "" || checkOut == "" {
		return Stay{}, ErrMissingDates
	}

	in, err := time.ParseInLocation(constant.DateOnlyFormat, checkIn, time.UTC)
	if err != nil {
		return Stay{}, ErrInvalidDate
	}

	out, err := time.ParseInLocation(constant.DateOnlyFormat, checkOut, time.UTC)
	if err != nil {
		return Stay{}, ErrInvalidDate
	}

	if !out.After(in) {
		return Stay{}, ErrCheckOutBefore
	}

	return Stay{CheckIn: in, CheckOut: out}, nil
}

// Nights is the number of started 24h periods between the two dates.
func (s Stay) Nights() int {
	return Nights(s.CheckIn, s.CheckOut)
}

func Nights(checkIn, checkOut time.Time) int {
	diff := checkOut.Sub(checkIn)
	if diff <= 0 {
		return 0
	}

	return int(math.Ceil(diff.Hours() / 24))
}

// Total is Σ rate × nights.
func Total(rates []money.Money, nights int) money.Money {
	var sum money.Money
	for _, rate := range rates {
		sum += rate
	}

	return sum * money.Money(nights)
}

// Split divides a total into the advance and the remainder.
type Split struct {
	Advance   money.Money `json:"advance"`
	Remaining money.Money `json:"remaining"`
}

// SplitAdvance rounds the advance to a whole rupee and derives the remainder
// from it, so Advance + Remaining always equals total.
func SplitAdvance(total money.Money, ratio float64) Split {
	advance := total.Mul(ratio).RoundMajor()

	return Split{
		Advance:   advance,
		Remaining: total - advance,
	}
}
