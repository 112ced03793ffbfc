package tripwise

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bluez/tripwise/date"
)

// DefaultCurrency is the local currency a trip gets when none is given.
const DefaultCurrency = "EUR"

// Trip is the top-level planned journey: a name, a date range, a local
// currency, and the derived day-by-day itinerary. Days are the only derived
// entities; everything else on a trip is user-authored.
type Trip struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Destination         string    `json:"destination,omitempty"`
	DestinationImageURL string    `json:"destinationImageUrl,omitempty"`
	Start               date.Date `json:"start"`
	End                 date.Date `json:"end"`
	LocalCurrency       string    `json:"localCurrency"`
	Days                []Day     `json:"days,omitempty"`
}

// TripDraft carries the user-authored fields needed to create a trip.
type TripDraft struct {
	Name          string
	Destination   string
	Start         date.Date
	End           date.Date
	LocalCurrency string
}

// Range returns the trip's inclusive date range.
func (t *Trip) Range() date.Range { return date.NewRange(t.Start, t.End) }

// NumberOfDays returns the inclusive day count of the trip's range.
func (t *Trip) NumberOfDays() int { return t.Range().Days() }

// Day returns a pointer to the day at the given index, or
// ErrDayIndexOutOfRange. Indices are never clamped.
func (t *Trip) Day(index int) (*Day, error) {
	if index < 0 || index >= len(t.Days) {
		return nil, fmt.Errorf("%w: %d not in [0, %d) for trip %q",
			ErrDayIndexOutOfRange, index, len(t.Days), t.Name)
	}
	return &t.Days[index], nil
}

// TotalSpent sums every day's spent amount in the trip's local currency.
// Foreign-currency expenses contribute their converted amounts.
func (t *Trip) TotalSpent() Money {
	total := M(decimal.Zero, t.LocalCurrency)
	for _, d := range t.Days {
		total = total.Add(d.Budget.Spent())
	}
	return total
}

// TotalBudget sums every day's budget total in the trip's local currency.
func (t *Trip) TotalBudget() Money {
	total := M(decimal.Zero, t.LocalCurrency)
	for _, d := range t.Days {
		total = total.Add(M(d.Budget.Total, d.Budget.Currency))
	}
	return total
}

// MarshalJSON keeps the persisted key order stable.
func (t Trip) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("name", t.Name)
	w.Optional("destination", t.Destination)
	w.Optional("destinationImageUrl", t.DestinationImageURL)
	w.Append("start", t.Start)
	w.Append("end", t.End)
	w.Append("localCurrency", t.LocalCurrency)
	if len(t.Days) > 0 {
		w.Append("days", t.Days)
	}
	return w.MarshalJSON()
}
