package tripwise

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/bluez/tripwise/date"
)

func TestEncodeDecodeTrips(t *testing.T) {
	days, err := DeriveSchedule(date.MustParse("2024-06-01"), date.MustParse("2024-06-02"), nil, "EUR")
	if err != nil {
		t.Fatal(err)
	}
	trip := &Trip{
		Name:          "Lisbon",
		Start:         date.MustParse("2024-06-01"),
		End:           date.MustParse("2024-06-02"),
		LocalCurrency: "EUR",
		Days:          days,
	}
	if err := trip.Days[0].Budget.AddExpense(
		NewExpense(decimal.NewFromFloat(8.40), "EUR", ExpenseFood, "pastel de nata")); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := EncodeTrips(&buf, []*Trip{trip}); err != nil {
		t.Fatal(err)
	}
	// One trip, one line.
	if got := strings.Count(buf.String(), "\n"); got != 1 {
		t.Errorf("encoded %d lines, want 1", got)
	}

	got, err := DecodeTrips(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("decoded %d trips, want 1", len(got))
	}
	if got[0].Name != "Lisbon" || len(got[0].Days) != 2 {
		t.Errorf("decoded %q with %d days", got[0].Name, len(got[0].Days))
	}
	if want := M(8.40, "EUR"); !got[0].Days[0].Budget.Spent().Equal(want) {
		t.Errorf("spent = %s, want %s", got[0].Days[0].Budget.Spent(), want)
	}
}

// Key order of encoded trips is stable, so files diff cleanly.
func TestEncodeStableOrder(t *testing.T) {
	trip := &Trip{
		Name:          "A",
		Start:         date.MustParse("2024-06-01"),
		End:           date.MustParse("2024-06-01"),
		LocalCurrency: "EUR",
	}
	var a, b bytes.Buffer
	if err := EncodeTrips(&a, []*Trip{trip}); err != nil {
		t.Fatal(err)
	}
	if err := EncodeTrips(&b, []*Trip{trip}); err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Errorf("unstable encoding:\n%s\n%s", a.String(), b.String())
	}
	if !strings.HasPrefix(a.String(), `{"id":`) {
		t.Errorf("id not first key: %s", a.String())
	}
}

func TestDecodeTripsMalformed(t *testing.T) {
	_, err := DecodeTrips(strings.NewReader("{not json}\n"))
	if err == nil {
		t.Error("malformed line decoded without error")
	}
}
