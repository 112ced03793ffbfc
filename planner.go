package tripwise

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bluez/tripwise/date"
	"github.com/bluez/tripwise/fxrate"
	"github.com/bluez/tripwise/logger"
)

// Store is the persistence boundary the planner writes through. The storage
// medium is the implementation's business; see the store package.
type Store interface {
	// Save serializes and persists the full trip list.
	Save(trips []*Trip) error
	// Load returns the previously saved trip list, or an empty list when no
	// prior state exists. A decode failure is an error; the planner treats
	// it as "no state".
	Load() ([]*Trip, error)
}

// Planner owns the authoritative in-memory trip list and exposes every
// mutation entry point. Each mutation is atomic from the caller's point of
// view and ends with a write-through save.
//
// The planner follows a single-writer model: all mutations run on one
// logical task, so the trip list itself needs no locking. The only
// suspending operation is currency conversion, and an expense becomes
// visible in aggregates only after its conversion completed.
type Planner struct {
	trips []*Trip
	store Store
}

// NewPlanner loads the persisted trip list from the store. Missing or
// corrupt state starts the planner empty; that is logged, never fatal.
func NewPlanner(store Store) *Planner {
	trips, err := store.Load()
	if err != nil {
		logger.L.Warn("could not load saved trips, starting empty", "err", err)
		trips = nil
	}
	if trips == nil {
		trips = make([]*Trip, 0)
	}
	return &Planner{trips: trips, store: store}
}

// Trips returns the current trip list. Callers treat it as read-only; all
// mutations go through planner operations.
func (p *Planner) Trips() []*Trip { return p.trips }

// Trip returns the trip with the given id, or ErrTripNotFound.
func (p *Planner) Trip(id uuid.UUID) (*Trip, error) {
	for _, t := range p.trips {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrTripNotFound, id)
}

// FindTrip returns the unique trip whose name matches, or an error when the
// name is unknown or ambiguous. A convenience for CLI callers.
func (p *Planner) FindTrip(name string) (*Trip, error) {
	var found *Trip
	for _, t := range p.trips {
		if t.Name == name {
			if found != nil {
				return nil, fmt.Errorf("multiple trips named %q", name)
			}
			found = t
		}
	}
	if found == nil {
		return nil, fmt.Errorf("%w: name %q", ErrTripNotFound, name)
	}
	return found, nil
}

// AddTrip creates a trip from the draft, derives its initial day schedule,
// appends it to the list and persists. The draft's date range must be valid.
func (p *Planner) AddTrip(draft TripDraft) (*Trip, error) {
	currency := draft.LocalCurrency
	if currency == "" {
		currency = DefaultCurrency
	}
	days, err := DeriveSchedule(draft.Start, draft.End, nil, currency)
	if err != nil {
		return nil, err
	}
	t := &Trip{
		ID:            uuid.New(),
		Name:          draft.Name,
		Destination:   draft.Destination,
		Start:         draft.Start,
		End:           draft.End,
		LocalCurrency: currency,
		Days:          days,
	}
	p.trips = append(p.trips, t)
	return t, p.persist()
}

// UpdateTripDates re-derives the trip's schedule for the new range,
// reconciling against its current days, then replaces range and days
// together. On any error the trip is left unchanged.
//
// Shrinking the range drops the days past the new length together with
// their activities and expenses; that is deterministic, documented data
// loss, and warning the user beforehand is the caller's job.
func (p *Planner) UpdateTripDates(id uuid.UUID, newStart, newEnd date.Date) error {
	t, err := p.Trip(id)
	if err != nil {
		return err
	}
	days, err := DeriveSchedule(newStart, newEnd, t.Days, t.LocalCurrency)
	if err != nil {
		return err
	}
	t.Start, t.End, t.Days = newStart, newEnd, days
	return p.persist()
}

// RenameTrip updates the trip's name and destination fields.
func (p *Planner) RenameTrip(id uuid.UUID, name, destination string) error {
	t, err := p.Trip(id)
	if err != nil {
		return err
	}
	if name != "" {
		t.Name = name
	}
	if destination != "" {
		t.Destination = destination
	}
	return p.persist()
}

// SetDestinationImage records the destination image URL picked by an
// external image search. A plain field update.
func (p *Planner) SetDestinationImage(id uuid.UUID, url string) error {
	t, err := p.Trip(id)
	if err != nil {
		return err
	}
	t.DestinationImageURL = url
	return p.persist()
}

// DeleteTrip removes the trip and everything it owns. Deleting an unknown
// id is a no-op.
func (p *Planner) DeleteTrip(id uuid.UUID) error {
	for i, t := range p.trips {
		if t.ID == id {
			p.trips = append(p.trips[:i], p.trips[i+1:]...)
			return p.persist()
		}
	}
	return nil
}

// AddActivity validates and appends an activity to the given day.
func (p *Planner) AddActivity(id uuid.UUID, dayIndex int, a Activity) error {
	day, err := p.day(id, dayIndex)
	if err != nil {
		return err
	}
	if err := a.Validate(); err != nil {
		return err
	}
	day.Activities = append(day.Activities, a)
	return p.persist()
}

// UpdateTransportation replaces the day's transportation record wholesale.
func (p *Planner) UpdateTransportation(id uuid.UUID, dayIndex int, tr Transportation) error {
	day, err := p.day(id, dayIndex)
	if err != nil {
		return err
	}
	day.Transportation = tr
	return p.persist()
}

// UpdateBudget replaces the day's budget wholesale.
func (p *Planner) UpdateBudget(id uuid.UUID, dayIndex int, b Budget) error {
	day, err := p.day(id, dayIndex)
	if err != nil {
		return err
	}
	day.Budget = b
	return p.persist()
}

// UpdateDayTitle sets the day's display title.
func (p *Planner) UpdateDayTitle(id uuid.UUID, dayIndex int, title string) error {
	day, err := p.day(id, dayIndex)
	if err != nil {
		return err
	}
	day.Title = title
	return p.persist()
}

// ReplaceChecklist replaces the day's checklist wholesale. Toggling an
// item's done flag goes through here too.
func (p *Planner) ReplaceChecklist(id uuid.UUID, dayIndex int, items []ChecklistItem) error {
	day, err := p.day(id, dayIndex)
	if err != nil {
		return err
	}
	day.Checklist = items
	return p.persist()
}

// AddExpense appends an expense to the day's budget, converting through
// conv when the expense currency differs from the budget currency. The call
// suspends on the conversion; on failure nothing is appended and nothing is
// saved.
func (p *Planner) AddExpense(ctx context.Context, id uuid.UUID, dayIndex int, e Expense, conv fxrate.Converter) error {
	day, err := p.day(id, dayIndex)
	if err != nil {
		return err
	}
	if err := day.Budget.AddExpenseWithConversion(ctx, e, conv); err != nil {
		return err
	}
	return p.persist()
}

// RemoveExpense removes an expense from the day's budget by identity.
// Unknown expense ids are a no-op (and still persist nothing new).
func (p *Planner) RemoveExpense(id uuid.UUID, dayIndex int, expenseID uuid.UUID) error {
	day, err := p.day(id, dayIndex)
	if err != nil {
		return err
	}
	if !day.Budget.RemoveExpense(expenseID) {
		return nil
	}
	return p.persist()
}

func (p *Planner) day(id uuid.UUID, dayIndex int) (*Day, error) {
	t, err := p.Trip(id)
	if err != nil {
		return nil, err
	}
	return t.Day(dayIndex)
}

// persist is the explicit write-through step closing every mutation.
func (p *Planner) persist() error {
	if err := p.store.Save(p.trips); err != nil {
		return fmt.Errorf("saving trips: %w", err)
	}
	return nil
}
