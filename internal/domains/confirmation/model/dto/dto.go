package dto

import (
	bookingModel "glamp/internal/domains/booking/model"
	"glamp/internal/domains/confirmation/model"
	"glamp/shared/money"
	"time"
)

type ConfirmationResponse struct {
	BookingNumber    model.BookingNumber `json:"bookingNumber"`
	BookingID        bookingModel.ID     `json:"bookingId"`
	CheckIn          string              `json:"checkIn"`
	CheckOut         string              `json:"checkOut"`
	Nights           int                 `json:"nights"`
	Guests           int                 `json:"guests"`
	GlampIDs         []string            `json:"glampIds"`
	GlampNames       []string            `json:"glampNames"`
	CustomerName     string              `json:"customerName"`
	CustomerPhone    string              `json:"customerPhone"`
	CustomerEmail    string              `json:"customerEmail,omitempty"`
	SpecialRequests  string              `json:"specialRequests,omitempty"`
	ArrivalTime      string              `json:"arrivalTime,omitempty"`
	Total            money.Money         `json:"total"`
	Advance          money.Money         `json:"advance"`
	Remaining        money.Money         `json:"remaining"`
	TotalDisplay     string              `json:"totalDisplay"`
	AdvanceDisplay   string              `json:"advanceDisplay"`
	RemainingDisplay string              `json:"remainingDisplay"`
	PaymentMethod    string              `json:"paymentMethod"`
	PaymentReference string              `json:"paymentReference,omitempty"`
	BackendStatus    string              `json:"backendStatus"`
	PaymentStatus    string              `json:"paymentStatus"`
	DisplayStatus    model.DisplayStatus `json:"displayStatus"`
}

func (r *ConfirmationResponse) FromModel(s model.Snapshot, today time.Time) {
	r.BookingNumber = s.BookingNumber
	r.BookingID = s.BookingID
	r.CheckIn = s.Draft.CheckIn
	r.CheckOut = s.Draft.CheckOut
	r.Nights = s.Nights
	r.Guests = s.Draft.Guests
	r.GlampIDs = s.Draft.SelectedGlampIDs
	r.GlampNames = s.GlampNames
	r.CustomerName = s.Draft.CustomerName()
	r.CustomerPhone = s.Draft.Phone
	r.CustomerEmail = s.Draft.Email
	r.SpecialRequests = s.Draft.SpecialRequests
	r.ArrivalTime = s.Draft.ArrivalTime
	r.Total = s.Total
	r.Advance = s.Advance
	r.Remaining = s.Remaining
	r.TotalDisplay = s.Total.String()
	r.AdvanceDisplay = s.Advance.String()
	r.RemainingDisplay = s.Remaining.String()
	r.PaymentMethod = s.PaymentMethod
	r.PaymentReference = s.PaymentReference
	r.BackendStatus = s.Status
	r.PaymentStatus = s.PaymentStatus
	r.DisplayStatus = s.DisplayStatus(today)
}

type CancelRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

type CancelResponse struct {
	BookingID     bookingModel.ID     `json:"bookingId"`
	BackendStatus string              `json:"backendStatus"`
	DisplayStatus model.DisplayStatus `json:"displayStatus"`
}
