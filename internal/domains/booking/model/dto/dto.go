package dto

import (
	"glamp/internal/domains/booking/model"
	glampModel "glamp/internal/domains/glamp/model"
	"glamp/shared/money"
)

type AvailabilityRequest struct {
	CheckIn          string   `json:"checkIn"          validate:"required,dateonly"`
	CheckOut         string   `json:"checkOut"         validate:"required,dateonly"`
	NumberOfGlamps   int      `json:"numberOfGlamps"   validate:"gte=1"`
	SelectedGlampIDs []string `json:"selectedGlampIds" validate:"dive,hyphenated_uuid"`
	Guests           int      `json:"guests"           validate:"gte=1"`
}

// Apply copies the request into the draft.
func (r AvailabilityRequest) Apply(d *model.Draft) {
	d.CheckIn = r.CheckIn
	d.CheckOut = r.CheckOut
	d.NumberOfGlamps = r.NumberOfGlamps
	d.SelectedGlampIDs = normalizeIDs(r.SelectedGlampIDs)
	d.Guests = r.Guests
}

func normalizeIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, glampModel.NormalizeID(id))
	}

	return out
}

type GuestDetailsRequest struct {
	FirstName       string `json:"firstName"       validate:"required,max=100"`
	LastName        string `json:"lastName"        validate:"required,max=100"`
	Phone           string `json:"phone"           validate:"required,max=20"`
	Email           string `json:"email"           validate:"omitempty,email,max=100"`
	SpecialRequests string `json:"specialRequests" validate:"omitempty,max=1000"`
	ArrivalTime     string `json:"arrivalTime"     validate:"omitempty,max=20"`
}

func (r GuestDetailsRequest) Apply(d *model.Draft) {
	d.FirstName = r.FirstName
	d.LastName = r.LastName
	d.Phone = r.Phone
	d.Email = r.Email
	d.SpecialRequests = r.SpecialRequests
	d.ArrivalTime = r.ArrivalTime
}

type ConfirmRequest struct {
	Method string `json:"method" validate:"required,oneof=manual advance"`
}

type QuoteRequest struct {
	CheckIn          string   `json:"checkIn"          validate:"required,dateonly"`
	CheckOut         string   `json:"checkOut"         validate:"required,dateonly"`
	SelectedGlampIDs []string `json:"selectedGlampIds" validate:"required,min=1,dive,hyphenated_uuid"`
}

type QuoteLine struct {
	GlampID     string      `json:"glampId"`
	Name        string      `json:"name"`
	NightlyRate money.Money `json:"nightlyRate"`
	Fallback    bool        `json:"fallback"`
}

// QuoteResponse carries amounts in paisa with display strings alongside.
type QuoteResponse struct {
	Nights           int         `json:"nights"`
	Lines            []QuoteLine `json:"lines"`
	Total            money.Money `json:"total"`
	Advance          money.Money `json:"advance"`
	Remaining        money.Money `json:"remaining"`
	TotalDisplay     string      `json:"totalDisplay"`
	AdvanceDisplay   string      `json:"advanceDisplay"`
	RemainingDisplay string      `json:"remainingDisplay"`
}

// BuildQuote prices the selection. Unknown glamps or glamps without a usable
// price are charged at fallback.
func BuildQuote(stay model.Stay, ids []string, glamps map[string]glampModel.Glamp, fallback money.Money, ratio float64) QuoteResponse {
	res := QuoteResponse{
		Nights: stay.Nights(),
		Lines:  make([]QuoteLine, 0, len(ids)),
	}

	rates := make([]money.Money, 0, len(ids))

	for _, id := range normalizeIDs(ids) {
		line := QuoteLine{GlampID: id}

		var glamp *glampModel.Glamp
		if g, ok := glamps[id]; ok {
			glamp = &g
			line.Name = g.Name
		}

		line.NightlyRate = glampModel.NightlyRate(glamp, fallback)
		line.Fallback = glamp == nil || glamp.PricePerNight == nil

		rates = append(rates, line.NightlyRate)
		res.Lines = append(res.Lines, line)
	}

	res.Total = model.Total(rates, res.Nights)

	split := model.SplitAdvance(res.Total, ratio)
	res.Advance = split.Advance
	res.Remaining = split.Remaining

	res.TotalDisplay = res.Total.String()
	res.AdvanceDisplay = res.Advance.String()
	res.RemainingDisplay = res.Remaining.String()

	return res
}

type GlampOption struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Capacity      int          `json:"capacity"`
	PricePerNight *money.Money `json:"pricePerNight"`
	NightlyRate   money.Money  `json:"nightlyRate"`
	Selected      bool         `json:"selected"`
}

type WizardResponse struct {
	Wizard      model.Wizard   `json:"wizard"`
	Glamps      []GlampOption  `json:"glamps"`
	GlampsError string         `json:"glampsError,omitempty"`
	Quote       *QuoteResponse `json:"quote,omitempty"`
}

type ConfirmResponse struct {
	Wizard           model.Wizard `json:"wizard"`
	BookingID        model.ID     `json:"bookingId"`
	BookingNumber    string       `json:"bookingNumber"`
	PaymentReference string       `json:"paymentReference,omitempty"`
	Redirect         string       `json:"redirect"`
	RedirectAfterMs  int          `json:"redirectAfterMs"`
}
