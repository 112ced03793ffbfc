package tripwise

import (
	"errors"
	"testing"

	"github.com/bluez/tripwise/date"
)

func TestDeriveSchedule(t *testing.T) {
	tests := []struct {
		start, end string
		existing   int // days already present
		want       int // days expected
	}{
		{"2024-06-01", "2024-06-01", 0, 1},
		{"2024-06-01", "2024-06-03", 0, 3},
		{"2024-06-01", "2024-06-03", 3, 3},
		{"2024-06-01", "2024-06-05", 3, 5}, // grow
		{"2024-06-01", "2024-06-02", 5, 2}, // shrink
		{"2024-12-30", "2025-01-02", 0, 4}, // across new year
	}
	for _, tt := range tests {
		start, end := date.MustParse(tt.start), date.MustParse(tt.end)
		var existing []Day
		if tt.existing > 0 {
			var err error
			existing, err = DeriveSchedule(start, start.Add(tt.existing-1), nil, "EUR")
			if err != nil {
				t.Fatalf("DeriveSchedule fixture [%s +%d]: %v", tt.start, tt.existing, err)
			}
		}

		days, err := DeriveSchedule(start, end, existing, "EUR")
		if err != nil {
			t.Errorf("DeriveSchedule(%s, %s): %v", tt.start, tt.end, err)
			continue
		}
		if len(days) != tt.want {
			t.Errorf("DeriveSchedule(%s, %s) with %d existing: %d days, want %d",
				tt.start, tt.end, tt.existing, len(days), tt.want)
		}
		for i, d := range days {
			if want := start.Add(i); d.Date != want {
				t.Errorf("day %d date = %s, want %s", i, d.Date, want)
			}
		}
	}
}

func TestDeriveScheduleInvalidRange(t *testing.T) {
	_, err := DeriveSchedule(date.MustParse("2024-06-03"), date.MustParse("2024-06-01"), nil, "EUR")
	if !errors.Is(err, ErrInvalidRange) {
		t.Errorf("got %v, want ErrInvalidRange", err)
	}
}

// Moving a trip keeps day content by position: day i of the old schedule is
// day i of the new one, with only the date rewritten.
func TestDeriveScheduleKeepsContentByIndex(t *testing.T) {
	old, err := DeriveSchedule(date.MustParse("2024-06-01"), date.MustParse("2024-06-03"), nil, "EUR")
	if err != nil {
		t.Fatal(err)
	}
	old[0].Title = "Arrival"
	old[1].Title = "Museums"
	old[1].Activities = append(old[1].Activities,
		NewActivity(date.MustParse("2024-06-02").Time(), "Louvre", "Paris", "", ActivitySightseeing))
	old[2].Transportation.Mode = "train"

	days, err := DeriveSchedule(date.MustParse("2024-06-10"), date.MustParse("2024-06-12"), old, "EUR")
	if err != nil {
		t.Fatal(err)
	}
	if days[0].Title != "Arrival" || days[1].Title != "Museums" {
		t.Errorf("titles not preserved: %q, %q", days[0].Title, days[1].Title)
	}
	if len(days[1].Activities) != 1 {
		t.Errorf("activities not preserved: %d", len(days[1].Activities))
	}
	if days[2].Transportation.Mode != "train" {
		t.Errorf("transportation not preserved: %q", days[2].Transportation.Mode)
	}
	if days[0].ID != old[0].ID {
		t.Error("day identity not preserved")
	}
	for i, d := range days {
		if want := date.MustParse("2024-06-10").Add(i); d.Date != want {
			t.Errorf("day %d date = %s, want %s", i, d.Date, want)
		}
	}
}

func TestDeriveScheduleFreshDays(t *testing.T) {
	days, err := DeriveSchedule(date.MustParse("2024-06-01"), date.MustParse("2024-06-02"), nil, "JPY")
	if err != nil {
		t.Fatal(err)
	}
	for i, d := range days {
		if want := DefaultDayTitle(i); d.Title != want {
			t.Errorf("day %d title = %q, want %q", i, d.Title, want)
		}
		if d.Transportation.Mode != "" {
			t.Errorf("day %d transportation mode = %q, want empty", i, d.Transportation.Mode)
		}
		if !d.Transportation.Time.Equal(d.Date.Time()) {
			t.Errorf("day %d transportation time = %s, want %s", i, d.Transportation.Time, d.Date.Time())
		}
		if d.Budget.Currency != "JPY" || !d.Budget.Total.IsZero() {
			t.Errorf("day %d budget = %s %s, want zero JPY", i, d.Budget.Total, d.Budget.Currency)
		}
	}
	if days[0].ID == days[1].ID {
		t.Error("fresh days must have distinct identities")
	}
}

func TestDeriveScheduleDoesNotMutateInput(t *testing.T) {
	old, err := DeriveSchedule(date.MustParse("2024-06-01"), date.MustParse("2024-06-02"), nil, "EUR")
	if err != nil {
		t.Fatal(err)
	}
	before := old[0].Date
	if _, err := DeriveSchedule(date.MustParse("2024-07-01"), date.MustParse("2024-07-02"), old, "EUR"); err != nil {
		t.Fatal(err)
	}
	if old[0].Date != before {
		t.Errorf("input mutated: %s, want %s", old[0].Date, before)
	}
}
