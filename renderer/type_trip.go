package renderer

import (
	"fmt"

	"github.com/bluez/tripwise"
)

// TripView is the itinerary report model.
type TripView struct {
	Name          string    `json:"name"`
	Destination   string    `json:"destination,omitempty"`
	Start         string    `json:"start"`
	End           string    `json:"end"`
	NumberOfDays  int       `json:"numberOfDays"`
	LocalCurrency string    `json:"localCurrency"`
	TotalBudget   string    `json:"totalBudget"`
	TotalSpent    string    `json:"totalSpent"`
	Days          []DayView `json:"days"`
}

// DayView holds one rendered itinerary day.
type DayView struct {
	Ordinal        int             `json:"ordinal"` // 1-based display position
	Date           string          `json:"date"`
	Title          string          `json:"title"`
	Transportation string          `json:"transportation,omitempty"`
	Activities     []ActivityView  `json:"activities,omitempty"`
	Spent          string          `json:"spent"`
	Checklist      []ChecklistView `json:"checklist,omitempty"`
}

// ActivityView holds one activity line, time-of-day first.
type ActivityView struct {
	Time     string `json:"time"`
	Title    string `json:"title"`
	Location string `json:"location,omitempty"`
	Category string `json:"category"`
	Notes    string `json:"notes,omitempty"`
}

// ChecklistView holds one checklist line with its done marker.
type ChecklistView struct {
	Mark string `json:"mark"` // "x" when done, " " otherwise
	Text string `json:"text"`
}

// NewTripView builds the itinerary report model from a trip. Activities are
// listed in time-of-day order regardless of insertion order.
func NewTripView(t *tripwise.Trip) *TripView {
	v := &TripView{
		Name:          t.Name,
		Destination:   t.Destination,
		Start:         t.Start.String(),
		End:           t.End.String(),
		NumberOfDays:  t.NumberOfDays(),
		LocalCurrency: t.LocalCurrency,
		TotalBudget:   t.TotalBudget().Round().String(),
		TotalSpent:    t.TotalSpent().Round().String(),
	}
	for i, d := range t.Days {
		dv := DayView{
			Ordinal: i + 1,
			Date:    d.Date.Time().Format("Mon 2006-01-02"),
			Title:   d.Title,
			Spent:   d.Budget.Spent().Round().String(),
		}
		if d.Transportation.Mode != "" {
			dv.Transportation = fmt.Sprintf("%s at %s", d.Transportation.Mode, d.Transportation.Time.Format("15:04"))
		}
		for _, a := range d.SortedActivities() {
			dv.Activities = append(dv.Activities, ActivityView{
				Time:     a.Time.Format("15:04"),
				Title:    a.Title,
				Location: a.Location,
				Category: string(a.Category),
				Notes:    a.Notes,
			})
		}
		for _, item := range d.Checklist {
			mark := " "
			if item.Done {
				mark = "x"
			}
			dv.Checklist = append(dv.Checklist, ChecklistView{Mark: mark, Text: item.Text})
		}
		v.Days = append(v.Days, dv)
	}
	return v
}
