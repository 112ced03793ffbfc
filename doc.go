// Package tripwise implements a personal trip-itinerary planner engine.
//
// A Trip owns a date range and a derived sequence of Days; each Day carries
// activities, one transportation record, a checklist, and a multi-currency
// budget. The Planner is the aggregate root: every mutation goes through it
// and is written through to a store. Foreign-currency expenses are converted
// through the fxrate package before they count toward budget totals.
package tripwise
