package timezone_test

import (
	"glamp/shared/constant"
	"glamp/shared/timezone"
	"testing"
	"time"
)

func TestTimezoneInit(t *testing.T) {
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	if timezone.GetLocation() == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestToday(t *testing.T) {
	today := timezone.Today()

	if today.Hour() != 0 || today.Minute() != 0 || today.Second() != 0 || today.Nanosecond() != 0 {
		t.Errorf("expected midnight, got %v", today)
	}

	if today.Location() != timezone.GetLocation() {
		t.Errorf("expected location %v, got %v", timezone.GetLocation(), today.Location())
	}
}

func TestStartOfDay(t *testing.T) {
	input := time.Date(2024, 6, 10, 18, 45, 3, 0, timezone.GetLocation())
	got := timezone.StartOfDay(input)

	if got.Year() != 2024 || got.Month() != time.June || got.Day() != 10 || got.Hour() != 0 {
		t.Errorf("expected 2024-06-10 00:00, got %v", got)
	}
}

func TestParseAndFormat(t *testing.T) {
	parsed, err := timezone.Parse(constant.DateOnlyFormat, "2024-01-01")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if parsed.Location() != timezone.GetLocation() {
		t.Errorf("expected parsed time in app location, got %v", parsed.Location())
	}

	if got := timezone.Format(parsed, constant.DateOnlyFormat); got != "2024-01-01" {
		t.Errorf("expected 2024-01-01, got %s", got)
	}
}
