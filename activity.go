package tripwise

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ActivityCategory is the closed set of activity tags.
type ActivityCategory string

const (
	ActivitySightseeing    ActivityCategory = "sightseeing"
	ActivityDining         ActivityCategory = "dining"
	ActivityShopping       ActivityCategory = "shopping"
	ActivityEntertainment  ActivityCategory = "entertainment"
	ActivityTransportation ActivityCategory = "transportation"
	ActivityAccommodation  ActivityCategory = "accommodation"
	ActivityOther          ActivityCategory = "other"
)

// ActivityCategories lists all valid categories in display order.
var ActivityCategories = []ActivityCategory{
	ActivitySightseeing,
	ActivityDining,
	ActivityShopping,
	ActivityEntertainment,
	ActivityTransportation,
	ActivityAccommodation,
	ActivityOther,
}

// ParseActivityCategory parses a string into an ActivityCategory.
func ParseActivityCategory(s string) (ActivityCategory, error) {
	for _, c := range ActivityCategories {
		if s == string(c) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown activity category: %q", s)
}

// Activity is a single planned activity on a day. Activities are stored in
// insertion order; the display order is computed by sorting on Time.
type Activity struct {
	ID       uuid.UUID        `json:"id"`
	Time     time.Time        `json:"time"`
	Title    string           `json:"title"`
	Location string           `json:"location,omitempty"`
	Notes    string           `json:"notes,omitempty"`
	Category ActivityCategory `json:"category"`
}

// NewActivity creates an activity with a fresh identity.
func NewActivity(at time.Time, title, location, notes string, category ActivityCategory) Activity {
	return Activity{
		ID:       uuid.New(),
		Time:     at,
		Title:    title,
		Location: location,
		Notes:    notes,
		Category: category,
	}
}

// Validate checks the activity for correctness: the title is required.
func (a Activity) Validate() error {
	if a.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidActivity)
	}
	if _, err := ParseActivityCategory(string(a.Category)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidActivity, err)
	}
	return nil
}

// MarshalJSON keeps the persisted key order stable.
func (a Activity) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", a.ID)
	w.Append("time", a.Time)
	w.Append("title", a.Title)
	w.Optional("location", a.Location)
	w.Optional("notes", a.Notes)
	w.Append("category", a.Category)
	return w.MarshalJSON()
}
