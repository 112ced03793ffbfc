package renderer

import (
	"fmt"
	"strings"

	"github.com/bluez/tripwise"
	"github.com/bluez/tripwise/date"
)

// TripsMarkdown renders the trip list as a markdown table, split into
// upcoming/ongoing and past sections relative to today.
func TripsMarkdown(trips []*tripwise.Trip) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Trips\n\n")
	if len(trips) == 0 {
		fmt.Fprintln(&b, "No trips yet.")
		return b.String()
	}

	today := date.Today()
	ConditionalBlock(&b, func(w *strings.Builder) bool {
		fmt.Fprintln(w, "## Upcoming")
		fmt.Fprintln(w)
		printed := tripTable(w, trips, func(t *tripwise.Trip) bool { return !t.End.Before(today) })
		fmt.Fprintln(w)
		return printed
	})
	ConditionalBlock(&b, func(w *strings.Builder) bool {
		fmt.Fprintln(w, "## Past")
		fmt.Fprintln(w)
		printed := tripTable(w, trips, func(t *tripwise.Trip) bool { return t.End.Before(today) })
		fmt.Fprintln(w)
		return printed
	})
	return b.String()
}

func tripTable(w *strings.Builder, trips []*tripwise.Trip, keep func(*tripwise.Trip) bool) bool {
	printed := false
	fmt.Fprintln(w, "| Trip | Destination | Dates | Days | Spent |")
	fmt.Fprintln(w, "|:---|:---|:---|---:|---:|")
	for _, t := range trips {
		if !keep(t) {
			continue
		}
		printed = true
		fmt.Fprintf(w, "| %s | %s | %s to %s | %d | %s |\n",
			t.Name, t.Destination, t.Start, t.End, t.NumberOfDays(), t.TotalSpent().Round())
	}
	return printed
}
