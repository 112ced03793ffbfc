package tripwise

import (
	"fmt"

	"github.com/bluez/tripwise/date"
)

// DeriveSchedule computes the day sequence for the inclusive range
// [start, end], reconciling against the trip's existing days.
//
// Reconciliation is index-aligned, not date-aligned: day i of the old
// schedule stays day i of the new one, keeping its title, activities,
// transportation, budget and checklist, with only its date rewritten to
// start+i. Indices past the old schedule get fresh empty days; old days past
// the new length are dropped together with everything they own.
//
// This is a pure function: the input slice is never mutated and the same
// inputs always produce the same schedule (fresh days aside, which get new
// identities).
func DeriveSchedule(start, end date.Date, existing []Day, localCurrency string) ([]Day, error) {
	r := date.NewRange(start, end)
	if !r.Valid() {
		return nil, fmt.Errorf("%w: start %s, end %s", ErrInvalidRange, start, end)
	}
	if localCurrency == "" {
		localCurrency = DefaultCurrency
	}

	days := make([]Day, 0, r.Days())
	for i, on := range r.All() {
		if i < len(existing) {
			day := existing[i]
			day.Date = on
			days = append(days, day)
			continue
		}
		days = append(days, newDay(on, i, localCurrency))
	}
	return days, nil
}
