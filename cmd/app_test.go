package cmd

import (
	"testing"
	"time"
)

func TestParseDay(t *testing.T) {
	if _, err := parseDay(0); err == nil {
		t.Error("parseDay(0) should fail, days are numbered from 1")
	}
	if _, err := parseDay(-2); err == nil {
		t.Error("parseDay(-2) should fail")
	}
	if index, err := parseDay(1); err != nil || index != 0 {
		t.Errorf("parseDay(1) = %d, %v; want 0, nil", index, err)
	}
	if index, err := parseDay(5); err != nil || index != 4 {
		t.Errorf("parseDay(5) = %d, %v; want 4, nil", index, err)
	}
}

func TestParseTimeOfDay(t *testing.T) {
	on := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	got, err := parseTimeOfDay("14:30", on)
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2024, 6, 1, 14, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("parseTimeOfDay(14:30) = %s, want %s", got, want)
	}

	for _, bad := range []string{"14h30", "25:00", "", "14:30:00"} {
		if _, err := parseTimeOfDay(bad, on); err == nil {
			t.Errorf("parseTimeOfDay(%q) should fail", bad)
		}
	}
}

func TestParseAmount(t *testing.T) {
	if v, err := parseAmount("45.50"); err != nil || v.String() != "45.5" {
		t.Errorf("parseAmount(45.50) = %s, %v", v, err)
	}
	if _, err := parseAmount("a lot"); err == nil {
		t.Error("parseAmount should reject non-numbers")
	}
}
