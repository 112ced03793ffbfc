package tripwise

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/bluez/tripwise/date"
)

// Transportation is the single transportation record of a day. It is
// replaced wholesale on update, never merged.
type Transportation struct {
	Mode string    `json:"mode"`
	Time time.Time `json:"time"`
}

// ChecklistItem is one entry of a day's packing/preparation checklist.
type ChecklistItem struct {
	ID   uuid.UUID `json:"id"`
	Text string    `json:"text"`
	Done bool      `json:"done,omitempty"`
}

// NewChecklistItem creates a checklist item with a fresh identity.
func NewChecklistItem(text string) ChecklistItem {
	return ChecklistItem{ID: uuid.New(), Text: text}
}

// Day is one calendar day of a trip's itinerary. A day is owned exclusively
// by its trip: it is created by schedule derivation and destroyed when the
// trip is deleted or the range shrinks past it.
type Day struct {
	ID             uuid.UUID       `json:"id"`
	Date           date.Date       `json:"date"`
	Title          string          `json:"title"`
	Activities     []Activity      `json:"activities,omitempty"`
	Transportation Transportation  `json:"transportation"`
	Budget         Budget          `json:"budget"`
	Checklist      []ChecklistItem `json:"checklist,omitempty"`
}

// newDay synthesizes a fresh, empty day for the given date and position.
// The default title is the human-readable day label; transportation starts
// empty at the day's own date, and the budget is seeded with a zero total in
// the trip's local currency.
func newDay(on date.Date, index int, localCurrency string) Day {
	return Day{
		ID:             uuid.New(),
		Date:           on,
		Title:          DefaultDayTitle(index),
		Transportation: Transportation{Mode: "", Time: on.Time()},
		Budget:         NewBudget(localCurrency),
	}
}

// DefaultDayTitle returns the label a freshly derived day gets, 0-based index in.
func DefaultDayTitle(index int) string { return fmt.Sprintf("Day %d", index+1) }

// SortedActivities returns the day's activities ordered by their time of
// day. The stored insertion order is untouched.
func (d Day) SortedActivities() []Activity {
	sorted := slices.Clone(d.Activities)
	slices.SortStableFunc(sorted, func(a, b Activity) int {
		return a.Time.Compare(b.Time)
	})
	return sorted
}

// MarshalJSON keeps the persisted key order stable.
func (d Day) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", d.ID)
	w.Append("date", d.Date)
	w.Append("title", d.Title)
	if len(d.Activities) > 0 {
		w.Append("activities", d.Activities)
	}
	w.Append("transportation", d.Transportation)
	w.Append("budget", d.Budget)
	if len(d.Checklist) > 0 {
		w.Append("checklist", d.Checklist)
	}
	return w.MarshalJSON()
}
