package model

import (
	"encoding/json"
	"glamp/shared/money"
	"strings"
	"time"
)

const (
	EntityName = "booking"

	EndpointBookings = "/bookings"
	ObjectKey        = "booking"
)

// Step is the funnel position.
type Step int

const (
	StepAvailability Step = iota + 1
	StepGuestDetails
	StepPayment
)

const (
	PaymentManual  = "manual"
	PaymentAdvance = "advance"
)

// Draft holds everything the guest has entered so far.
type Draft struct {
	CheckIn          string   `json:"checkIn"`
	CheckOut         string   `json:"checkOut"`
	NumberOfGlamps   int      `json:"numberOfGlamps"`
	SelectedGlampIDs []string `json:"selectedGlampIds"`
	Guests           int      `json:"guests"`
	FirstName        string   `json:"firstName"`
	LastName         string   `json:"lastName"`
	Phone            string   `json:"phone"`
	Email            string   `json:"email"`
	SpecialRequests  string   `json:"specialRequests"`
	ArrivalTime      string   `json:"arrivalTime"`
}

// CustomerName joins first and last name.
func (d Draft) CustomerName() string {
	return strings.TrimSpace(strings.TrimSpace(d.FirstName) + " " + strings.TrimSpace(d.LastName))
}

// ToPayload builds the body for POST /bookings. Optional fields are omitted
// when blank.
func (d Draft) ToPayload() Payload {
	return Payload{
		GlampIDs:        append([]string{}, d.SelectedGlampIDs...),
		NumberOfGlamps:  d.NumberOfGlamps,
		CheckInDate:     d.CheckIn,
		CheckOutDate:    d.CheckOut,
		Guests:          d.Guests,
		CustomerName:    d.CustomerName(),
		CustomerPhone:   strings.TrimSpace(d.Phone),
		CustomerEmail:   strings.TrimSpace(d.Email),
		SpecialRequests: strings.TrimSpace(d.SpecialRequests),
		ArrivalTime:     strings.TrimSpace(d.ArrivalTime),
	}
}

// Wizard is the per-session funnel state.
type Wizard struct {
	Step             Step      `json:"step"`
	Draft            Draft     `json:"draft"`
	ShowPaymentModal bool      `json:"showPaymentModal"`
	PaymentSuccess   bool      `json:"paymentSuccess"`
	IsSubmitting     bool      `json:"isSubmitting"`
	Error            string    `json:"error,omitempty"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func NewWizard() Wizard {
	return Wizard{
		Step: StepAvailability,
		Draft: Draft{
			NumberOfGlamps:   1,
			Guests:           1,
			SelectedGlampIDs: []string{},
		},
	}
}

// Back moves one step back, never below the first step.
func (w *Wizard) Back() {
	if w.Step > StepAvailability {
		w.Step--
	}

	w.Error = ""
	w.ShowPaymentModal = false
}

// Fail records a user-visible error and re-enables the form.
func (w *Wizard) Fail(message string) {
	w.Error = message
	w.IsSubmitting = false
}

// RollbackPayment returns to the payment step after an advance failure.
func (w *Wizard) RollbackPayment(message string) {
	w.Step = StepPayment
	w.ShowPaymentModal = false
	w.PaymentSuccess = false
	w.Fail(message)
}

type Payload struct {
	GlampIDs        []string `json:"glampIds"`
	NumberOfGlamps  int      `json:"numberOfGlamps"`
	CheckInDate     string   `json:"checkInDate"`
	CheckOutDate    string   `json:"checkOutDate"`
	Guests          int      `json:"guests"`
	CustomerName    string   `json:"customerName"`
	CustomerPhone   string   `json:"customerPhone"`
	CustomerEmail   string   `json:"customerEmail,omitempty"`
	SpecialRequests string   `json:"specialRequests,omitempty"`
	ArrivalTime     string   `json:"arrivalTime,omitempty"`
}

// ID is the authoritative booking identifier assigned by the backend.
type ID string

// Booking is the backend's record of a created booking.
type Booking struct {
	ID            ID           `json:"id"`
	Status        string       `json:"status"`
	PaymentStatus string       `json:"paymentStatus"`
	TotalAmount   *money.Money `json:"totalAmount,omitempty"`
}

// Raw is the backend representation; ids may be numbers or strings and
// amounts are in rupees.
type Raw struct {
	ID            json.RawMessage `json:"id"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"paymentStatus"`
	TotalAmount   json.RawMessage `json:"totalAmount"`
}

func (r Raw) ToModel() Booking {
	b := Booking{
		ID:            ID(idString(r.ID)),
		Status:        r.Status,
		PaymentStatus: r.PaymentStatus,
	}

	if total, err := money.Parse(r.TotalAmount, money.UnitMajor); err == nil {
		b.TotalAmount = &total
	}

	return b
}

func idString(raw json.RawMessage) string {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return strings.TrimSpace(text)
	}

	var number json.Number
	if err := json.Unmarshal(raw, &number); err == nil {
		return number.String()
	}

	return ""
}
