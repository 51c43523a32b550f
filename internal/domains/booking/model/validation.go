package model

import (
	"fmt"
	"glamp/shared/failure"
)

// Limits bound a single booking.
type Limits struct {
	MaxGlamps      int
	GuestsPerGlamp int
}

// ValidateAvailability checks the first funnel step against the glamps that
// are currently bookable. The returned error carries the message shown to the
// guest.
func ValidateAvailability(d Draft, known map[string]struct{}, limits Limits) error {
	if _, err := ParseStay(d.CheckIn, d.CheckOut); err != nil {
		return failure.BadRequest(err)
	}

	selected := len(d.SelectedGlampIDs)

	switch {
	case selected == 0:
		return failure.BadRequestFromString("Please select at least one glamp")
	case selected > limits.MaxGlamps:
		return failure.BadRequestFromString(fmt.Sprintf("You can select up to %d glamps", limits.MaxGlamps))
	case d.NumberOfGlamps < 1 || d.NumberOfGlamps > limits.MaxGlamps:
		return failure.BadRequestFromString(fmt.Sprintf("Number of glamps must be between 1 and %d", limits.MaxGlamps))
	case selected != d.NumberOfGlamps:
		return failure.BadRequestFromString(fmt.Sprintf("Please select exactly %d %s", d.NumberOfGlamps, plural(d.NumberOfGlamps, "glamp", "glamps")))
	}

	seen := make(map[string]struct{}, selected)

	for _, id := range d.SelectedGlampIDs {
		if _, dup := seen[id]; dup {
			return failure.BadRequestFromString("Each glamp can only be selected once")
		}

		seen[id] = struct{}{}

		if _, ok := known[id]; !ok {
			return failure.BadRequestFromString("One of the selected glamps is no longer available")
		}
	}

	maxGuests := selected * limits.GuestsPerGlamp

	switch {
	case d.Guests < 1:
		return failure.BadRequestFromString("At least 1 guest is required")
	case d.Guests > maxGuests:
		return failure.BadRequestFromString(fmt.Sprintf("Maximum %d guests allowed for %d %s", maxGuests, selected, plural(selected, "glamp", "glamps")))
	}

	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}

	return many
}
