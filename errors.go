package tripwise

import "errors"

// ErrInvalidRange is returned when a trip's end date is before its start
// date. The offending update is rejected before any mutation is applied.
var ErrInvalidRange = errors.New("end date before start date")

// ErrTripNotFound is returned by planner operations when the referenced trip
// does not exist. The caller passed a stale or unknown id; nothing changes.
var ErrTripNotFound = errors.New("trip not found")

// ErrDayIndexOutOfRange is returned when a day index falls outside the
// trip's schedule. Indices are never clamped.
var ErrDayIndexOutOfRange = errors.New("day index out of range")

// ErrInvalidActivity is returned when an activity fails validation
// (missing title).
var ErrInvalidActivity = errors.New("invalid activity")

// ErrInvalidExpense is returned when an expense fails validation
// (non-positive amount or missing currency).
var ErrInvalidExpense = errors.New("invalid expense")
