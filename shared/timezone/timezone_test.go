package timezone_test

import (
	"resto/shared/timezone"
	"testing"
	"time"
)

func TestNow(t *testing.T) {
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	if now.Location() != timezone.GetLocation() {
		t.Errorf("expected location %s, got %s", timezone.GetLocation(), now.Location())
	}
}

func TestParseAndFormat(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02", "2024-01-01")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if parsed.Location() != timezone.GetLocation() {
		t.Errorf("expected parsed time in app location, got %s", parsed.Location())
	}

	if got := timezone.Format(parsed, "2006-01-02"); got != "2024-01-01" {
		t.Errorf("expected 2024-01-01, got %s", got)
	}

	if _, err := timezone.Parse("2006-01-02", "01/01/2024"); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestToAppTime(t *testing.T) {
	utcTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	appTime := timezone.ToAppTime(utcTime)

	if !appTime.Equal(utcTime) {
		t.Errorf("expected the same instant, got %s", appTime)
	}
}
