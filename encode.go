package tripwise

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeTrips persists the trip list to w in JSONL format, one trip per
// line, with stable key order inside each document.
func EncodeTrips(w io.Writer, trips []*Trip) error {
	decimal.MarshalJSONWithoutQuotes = true
	for _, t := range trips {
		data, err := json.Marshal(t)
		if err != nil {
			return fmt.Errorf("failed to marshal trip %q: %w", t.Name, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write trip %q: %w", t.Name, err)
		}
	}
	return nil
}

// DecodeTrips reads a JSONL stream of trips. Empty lines are skipped. A
// malformed line is an error: the caller decides whether that means
// "corrupt state, start empty" (the planner does) or a hard failure.
func DecodeTrips(r io.Reader) ([]*Trip, error) {
	trips := make([]*Trip, 0)
	scanner := bufio.NewScanner(r)
	// A trip with a long itinerary easily exceeds the default token size.
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var t Trip
		if err := json.Unmarshal(line, &t); err != nil {
			return nil, fmt.Errorf("could not decode trip line %q: %w", string(line), err)
		}
		trips = append(trips, &t)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading trips: %w", err)
	}
	return trips, nil
}
