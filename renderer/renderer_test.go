package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bluez/tripwise"
	"github.com/bluez/tripwise/date"
)

func testTrip(t *testing.T) *tripwise.Trip {
	t.Helper()
	days, err := tripwise.DeriveSchedule(
		date.MustParse("2024-06-01"), date.MustParse("2024-06-03"), nil, "EUR")
	if err != nil {
		t.Fatal(err)
	}
	trip := &tripwise.Trip{
		Name:          "Rome",
		Destination:   "Rome, Italy",
		Start:         date.MustParse("2024-06-01"),
		End:           date.MustParse("2024-06-03"),
		LocalCurrency: "EUR",
		Days:          days,
	}

	trip.Days[0].Title = "Arrival"
	trip.Days[0].Transportation = tripwise.Transportation{
		Mode: "flight",
		Time: time.Date(2024, 6, 1, 9, 15, 0, 0, time.UTC),
	}
	// Inserted out of time order on purpose; rendering sorts by time of day.
	trip.Days[0].Activities = append(trip.Days[0].Activities,
		tripwise.NewActivity(time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC), "Trastevere dinner", "Trastevere", "", tripwise.ActivityDining),
		tripwise.NewActivity(time.Date(2024, 6, 1, 14, 0, 0, 0, time.UTC), "Colosseum", "Rome", "book ahead", tripwise.ActivitySightseeing),
	)
	trip.Days[0].Checklist = []tripwise.ChecklistItem{
		{Text: "passport"},
		{Text: "tickets", Done: true},
	}

	trip.Days[0].Budget.Total = decimal.NewFromInt(150)
	if err := trip.Days[0].Budget.AddExpense(
		tripwise.NewExpense(decimal.NewFromFloat(45.50), "EUR", tripwise.ExpenseFood, "dinner")); err != nil {
		t.Fatal(err)
	}
	return trip
}

func TestItineraryMarkdown(t *testing.T) {
	md := ItineraryMarkdown(NewTripView(testTrip(t)))

	for _, want := range []string{
		"# Rome (Rome, Italy)",
		"2024-06-01 to 2024-06-03, 3 days",
		"## Day 1: Arrival (Sat 2024-06-01)",
		"Transportation: flight at 09:15",
		"| 14:00 | Colosseum (book ahead) | Rome | sightseeing |",
		"- [ ] passport",
		"- [x] tickets",
		"## Day 2: Day 2",
		"## Day 3: Day 3",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("itinerary missing %q:\n%s", want, md)
		}
	}

	// Activities must come out in time-of-day order.
	if strings.Index(md, "Colosseum") > strings.Index(md, "Trastevere dinner") {
		t.Error("activities not sorted by time of day")
	}
}

func TestBudgetMarkdown(t *testing.T) {
	trip := testTrip(t)
	converted := decimal.NewFromFloat(92.00)
	e := tripwise.NewExpense(decimal.NewFromInt(100), "USD", tripwise.ExpenseShopping, "souvenirs")
	e.ConvertedAmount = &converted
	trip.Days[1].Budget.Expenses = append(trip.Days[1].Budget.Expenses, e)

	md := BudgetMarkdown(NewBudgetView(trip))

	for _, want := range []string{
		"# Budget: Rome",
		"All amounts in EUR.",
		"| \u20ac150.00 | \u20ac137.50 | \u20ac12.50 |",
		"| 2024-06-01 | Arrival | \u20ac150.00 | \u20ac45.50 |",
		"- shopping: $100.00 = \u20ac92.00 (souvenirs)",
		"| food | \u20ac45.50 |",
		"| shopping | \u20ac92.00 |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("budget missing %q:\n%s", want, md)
		}
	}
	if strings.Contains(md, "\u26a0") {
		t.Error("overdrawn marker on a healthy budget")
	}

	// Category order follows the fixed display order, food before shopping.
	if strings.Index(md, "| food |") > strings.Index(md, "| shopping |") {
		t.Error("categories not in display order")
	}
}

func TestTripsMarkdown(t *testing.T) {
	if got := TripsMarkdown(nil); !strings.Contains(got, "No trips yet.") {
		t.Errorf("empty list: %q", got)
	}

	past := testTrip(t) // June 2024 is long gone
	md := TripsMarkdown([]*tripwise.Trip{past})
	if !strings.Contains(md, "## Past") {
		t.Errorf("past trip not under Past:\n%s", md)
	}
	if strings.Contains(md, "## Upcoming") {
		t.Errorf("empty Upcoming section rendered:\n%s", md)
	}
	if !strings.Contains(md, "| Rome | Rome, Italy | 2024-06-01 to 2024-06-03 | 3 |") {
		t.Errorf("trip row missing:\n%s", md)
	}
}
