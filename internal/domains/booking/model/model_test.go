package model_test

import (
	"glamp/internal/domains/booking/model"
	"glamp/shared/failure"
	"glamp/shared/money"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	domeID  = "3f1c2a4e-9b7d-4c1a-8e2f-5d6b7a8c9d0e"
	cabinID = "8a7b6c5d-4e3f-4a1b-9c2d-1e0f9a8b7c6d"
	treeID  = "1b2c3d4e-5f6a-4b7c-8d9e-0f1a2b3c4d5e"
)

var limits = model.Limits{MaxGlamps: 4, GuestsPerGlamp: 4}

func known(ids ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}

	return m
}

func TestQuoteExample(t *testing.T) {
	stay, err := model.ParseStay("2024-06-10", "2024-06-13")
	require.NoError(t, err)
	assert.Equal(t, 3, stay.Nights())

	total := model.Total([]money.Money{money.FromMajor(30000), money.FromMajor(25000)}, stay.Nights())
	assert.Equal(t, money.FromMajor(165000), total)

	split := model.SplitAdvance(total, 0.5)
	assert.Equal(t, money.FromMajor(82500), split.Advance)
	assert.Equal(t, money.FromMajor(82500), split.Remaining)
}

func TestSplitAdvanceSumsExactly(t *testing.T) {
	for _, rupees := range []float64{1, 3, 99, 165001, 25000, 7777777} {
		total := money.FromMajor(rupees)
		split := model.SplitAdvance(total, 0.5)

		assert.Equal(t, total, split.Advance+split.Remaining, "total %v", rupees)
		assert.Equal(t, split.Advance, split.Advance.RoundMajor(), "advance is whole rupees")
	}

	odd := model.SplitAdvance(money.FromMajor(165001), 0.5)
	assert.Equal(t, money.FromMajor(82501), odd.Advance)
	assert.Equal(t, money.FromMajor(82500), odd.Remaining)
}

func TestNightsRoundsUp(t *testing.T) {
	in := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, model.Nights(in, in.Add(24*time.Hour)))
	assert.Equal(t, 2, model.Nights(in, in.Add(25*time.Hour)))
	assert.Equal(t, 0, model.Nights(in, in))
	assert.Equal(t, 0, model.Nights(in, in.Add(-time.Hour)))
}

func TestParseStay(t *testing.T) {
	_, err := model.ParseStay("", "2024-06-13")
	assert.ErrorIs(t, err, model.ErrMissingDates)

	_, err = model.ParseStay("2024-06-13", "2024-06-13")
	assert.ErrorIs(t, err, model.ErrCheckOutBefore)

	_, err = model.ParseStay("13/06/2024", "2024-06-14")
	assert.ErrorIs(t, err, model.ErrInvalidDate)
}

func TestParseStayCountsCalendarNightsAcrossDST(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		nights   int
	}{
		{name: "clocks go back", checkIn: "2024-10-27", checkOut: "2024-10-28", nights: 1},
		{name: "clocks go forward", checkIn: "2024-03-31", checkOut: "2024-04-01", nights: 1},
		{name: "week spanning change", checkIn: "2024-10-24", checkOut: "2024-10-31", nights: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stay, err := model.ParseStay(tt.checkIn, tt.checkOut)
			require.NoError(t, err)

			assert.Equal(t, time.UTC, stay.CheckIn.Location())
			assert.Equal(t, time.UTC, stay.CheckOut.Location())
			assert.Equal(t, tt.nights, stay.Nights())
		})
	}

	london, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)

	longNight := model.Nights(time.Date(2024, 10, 27, 0, 0, 0, 0, london), time.Date(2024, 10, 28, 0, 0, 0, 0, london))
	assert.Equal(t, 2, longNight, "wall-clock midnights in a DST zone are 25h apart")
}

func TestValidateAvailability(t *testing.T) {
	base := model.Draft{
		CheckIn:          "2024-06-10",
		CheckOut:         "2024-06-13",
		NumberOfGlamps:   2,
		SelectedGlampIDs: []string{domeID, cabinID},
		Guests:           8,
	}

	tests := []struct {
		name    string
		mutate  func(d *model.Draft)
		message string
	}{
		{name: "valid at guest maximum", mutate: func(_ *model.Draft) {}},
		{
			name:    "count mismatch",
			mutate:  func(d *model.Draft) { d.NumberOfGlamps = 3 },
			message: "Please select exactly 3 glamps",
		},
		{
			name:    "guests over 4n names the maximum",
			mutate:  func(d *model.Draft) { d.Guests = 9 },
			message: "Maximum 8 guests allowed for 2 glamps",
		},
		{
			name:    "no selection",
			mutate:  func(d *model.Draft) { d.SelectedGlampIDs = nil },
			message: "Please select at least one glamp",
		},
		{
			name: "more than four",
			mutate: func(d *model.Draft) {
				d.SelectedGlampIDs = []string{domeID, cabinID, treeID, "a", "b"}
				d.NumberOfGlamps = 5
			},
			message: "You can select up to 4 glamps",
		},
		{
			name:    "duplicate selection",
			mutate:  func(d *model.Draft) { d.SelectedGlampIDs = []string{domeID, domeID} },
			message: "Each glamp can only be selected once",
		},
		{
			name:    "unknown glamp",
			mutate:  func(d *model.Draft) { d.SelectedGlampIDs = []string{domeID, treeID} },
			message: "One of the selected glamps is no longer available",
		},
		{
			name:    "check-out not after check-in",
			mutate:  func(d *model.Draft) { d.CheckOut = d.CheckIn },
			message: "Check-out date must be after check-in date",
		},
		{
			name:    "zero guests",
			mutate:  func(d *model.Draft) { d.Guests = 0 },
			message: "At least 1 guest is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := base
			draft.SelectedGlampIDs = append([]string{}, base.SelectedGlampIDs...)
			tt.mutate(&draft)

			err := model.ValidateAvailability(draft, known(domeID, cabinID), limits)

			if tt.message == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.message, err.Error())
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestWizardBack(t *testing.T) {
	w := model.NewWizard()
	w.Back()
	assert.Equal(t, model.StepAvailability, w.Step)

	w.Step = model.StepPayment
	w.Error = "boom"
	w.Back()
	assert.Equal(t, model.StepGuestDetails, w.Step)
	assert.Empty(t, w.Error)
}

func TestWizardRollbackPayment(t *testing.T) {
	w := model.NewWizard()
	w.Step = model.StepPayment
	w.ShowPaymentModal = true
	w.PaymentSuccess = true
	w.IsSubmitting = true

	w.RollbackPayment("Glamp unavailable")

	assert.Equal(t, model.StepPayment, w.Step)
	assert.False(t, w.ShowPaymentModal)
	assert.False(t, w.PaymentSuccess)
	assert.False(t, w.IsSubmitting)
	assert.Equal(t, "Glamp unavailable", w.Error)
}

func TestDraftToPayload(t *testing.T) {
	d := model.Draft{
		CheckIn:          "2024-06-10",
		CheckOut:         "2024-06-13",
		NumberOfGlamps:   1,
		SelectedGlampIDs: []string{domeID},
		Guests:           2,
		FirstName:        " Ayesha ",
		LastName:         "Khan",
		Phone:            "03001234567",
	}

	payload := d.ToPayload()

	assert.Equal(t, "Ayesha Khan", payload.CustomerName)
	assert.Equal(t, "2024-06-10", payload.CheckInDate)
	assert.Empty(t, payload.CustomerEmail)
	assert.Equal(t, []string{domeID}, payload.GlampIDs)
}
