package model

import (
	bookingModel "glamp/internal/domains/booking/model"
	"glamp/shared/constant"
	"glamp/shared/money"
	"glamp/shared/timezone"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BookingNumber is the short reference shown to guests. It is generated
// locally and never sent to the backend.
type BookingNumber string

const bookingNumberPrefix = "SG-"

func NewBookingNumber() BookingNumber {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])

	return BookingNumber(bookingNumberPrefix + suffix)
}

// DisplayStatus is derived from the stay dates and is never the backend's
// booking status.
type DisplayStatus string

const (
	StatusUpcoming  DisplayStatus = "Upcoming"
	StatusOngoing   DisplayStatus = "Ongoing"
	StatusCompleted DisplayStatus = "Completed"
	StatusCancelled DisplayStatus = "Cancelled"
)

// StatusOn compares calendar dates in the application timezone.
func StatusOn(today, checkIn, checkOut time.Time) DisplayStatus {
	day := timezone.StartOfDay(today)
	in := timezone.StartOfDay(checkIn)
	out := timezone.StartOfDay(checkOut)

	switch {
	case day.Before(in):
		return StatusUpcoming
	case day.After(out):
		return StatusCompleted
	default:
		return StatusOngoing
	}
}

// Snapshot is written by the funnel after a successful booking and read
// once by the confirmation view.
type Snapshot struct {
	BookingNumber    BookingNumber      `json:"bookingNumber"`
	BookingID        bookingModel.ID    `json:"bookingId"`
	Draft            bookingModel.Draft `json:"draft"`
	GlampNames       []string           `json:"glampNames"`
	Nights           int                `json:"nights"`
	Total            money.Money        `json:"total"`
	Advance          money.Money        `json:"advance"`
	Remaining        money.Money        `json:"remaining"`
	PaymentMethod    string             `json:"paymentMethod"`
	PaymentReference string             `json:"paymentReference,omitempty"`
	Status           string             `json:"status"`
	PaymentStatus    string             `json:"paymentStatus"`
	CreatedAt        time.Time          `json:"createdAt"`
}

// DisplayStatus returns the guest-facing status for today.
func (s Snapshot) DisplayStatus(today time.Time) DisplayStatus {
	if strings.EqualFold(s.Status, string(StatusCancelled)) {
		return StatusCancelled
	}

	checkIn, err := timezone.Parse(constant.DateOnlyFormat, s.Draft.CheckIn)
	if err != nil {
		return StatusUpcoming
	}

	checkOut, err := timezone.Parse(constant.DateOnlyFormat, s.Draft.CheckOut)
	if err != nil {
		return StatusUpcoming
	}

	return StatusOn(today, checkIn, checkOut)
}
