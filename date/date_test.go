package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestNew asserts that New normalizes out-of-range components the way
// time.Date does, so Add can simply push the day-of-month over the edge.
func TestNew(t *testing.T) {
	if got, want := New(2024, time.January, 32), New(2024, time.February, 1); got != want {
		t.Errorf("New(2024, 1, 32) = %v, want %v", got, want)
	}
}

func TestFromTime(t *testing.T) {
	// Late evening in a non-UTC zone must still map to the local calendar day.
	loc := time.FixedZone("UTC+2", 2*60*60)
	instant := time.Date(2024, time.June, 1, 23, 30, 0, 0, loc)
	if got, want := FromTime(instant), New(2024, time.June, 1); got != want {
		t.Errorf("FromTime(%v) = %v, want %v", instant, got, want)
	}
}

func TestDaysBetween(t *testing.T) {
	testCases := []struct {
		name string
		from string
		to   string
		want int
	}{
		{"same day", "2024-06-01", "2024-06-01", 0},
		{"next day", "2024-06-01", "2024-06-02", 1},
		{"across month end", "2024-06-28", "2024-07-02", 4},
		{"across DST change", "2024-03-30", "2024-04-01", 2},
		{"reversed is negative", "2024-06-03", "2024-06-01", -2},
		{"leap february", "2024-02-28", "2024-03-01", 2},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := DaysBetween(MustParse(tc.from), MustParse(tc.to))
			if got != tc.want {
				t.Errorf("DaysBetween(%s, %s) = %d, want %d", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	d, err := Parse("2025-7-1")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d != New(2025, time.July, 1) {
		t.Errorf("Parse(2025-7-1) = %v", d)
	}
	if _, err := Parse("not-a-date"); err == nil {
		t.Error("Parse(not-a-date) should fail")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := MustParse("2024-06-03")
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2024-06-03"` {
		t.Errorf("marshal = %s", b)
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}

func TestRangeDays(t *testing.T) {
	testCases := []struct {
		name string
		from string
		to   string
		want int
	}{
		{"single day", "2024-06-01", "2024-06-01", 1},
		{"three days", "2024-06-01", "2024-06-03", 3},
		{"invalid", "2024-06-03", "2024-06-01", 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRange(MustParse(tc.from), MustParse(tc.to))
			if got := r.Days(); got != tc.want {
				t.Errorf("Days() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestRangeAll(t *testing.T) {
	r := NewRange(MustParse("2024-06-01"), MustParse("2024-06-03"))
	var got []Date
	for _, d := range r.All() {
		got = append(got, d)
	}
	want := []Date{MustParse("2024-06-01"), MustParse("2024-06-02"), MustParse("2024-06-03")}
	if len(got) != len(want) {
		t.Fatalf("All() yielded %d dates, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("All()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
