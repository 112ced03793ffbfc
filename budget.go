package tripwise

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bluez/tripwise/fxrate"
)

// ExpenseCategory is the closed set of budget expense tags.
type ExpenseCategory string

const (
	ExpenseFood           ExpenseCategory = "food"
	ExpenseTransportation ExpenseCategory = "transportation"
	ExpenseAccommodation  ExpenseCategory = "accommodation"
	ExpenseActivities     ExpenseCategory = "activities"
	ExpenseShopping       ExpenseCategory = "shopping"
	ExpenseOther          ExpenseCategory = "other"
)

// ExpenseCategories lists all valid categories in display order.
var ExpenseCategories = []ExpenseCategory{
	ExpenseFood,
	ExpenseTransportation,
	ExpenseAccommodation,
	ExpenseActivities,
	ExpenseShopping,
	ExpenseOther,
}

// ParseExpenseCategory parses a string into an ExpenseCategory.
func ParseExpenseCategory(s string) (ExpenseCategory, error) {
	for _, c := range ExpenseCategories {
		if s == string(c) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown expense category: %q", s)
}

// Expense is one spending entry of a day's budget, possibly in a foreign
// currency. When the expense currency differs from the budget currency,
// ConvertedAmount holds the amount in the budget currency and is the value
// counted toward totals; when currencies match, ConvertedAmount stays unset
// and the raw amount counts directly.
type Expense struct {
	ID              uuid.UUID        `json:"id"`
	Amount          decimal.Decimal  `json:"amount"`
	Currency        string           `json:"currency"`
	Category        ExpenseCategory  `json:"category"`
	Note            string           `json:"note,omitempty"`
	ConvertedAmount *decimal.Decimal `json:"convertedAmount,omitempty"`
	Time            time.Time        `json:"time,omitempty"`
}

// NewExpense creates an expense with a fresh identity, stamped now.
func NewExpense(amount decimal.Decimal, currency string, category ExpenseCategory, note string) Expense {
	return Expense{
		ID:       uuid.New(),
		Amount:   amount,
		Currency: currency,
		Category: category,
		Note:     note,
		Time:     time.Now(),
	}
}

// Validate checks the expense for correctness: a positive amount and a
// currency code are required.
func (e Expense) Validate() error {
	if !e.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive, got %s", ErrInvalidExpense, e.Amount)
	}
	if len(e.Currency) != 3 {
		return fmt.Errorf("%w: currency must be a 3-letter code, got %q", ErrInvalidExpense, e.Currency)
	}
	if _, err := ParseExpenseCategory(string(e.Category)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidExpense, err)
	}
	return nil
}

// Contribution returns the amount this expense counts toward budget totals:
// the converted amount when present, the raw amount otherwise.
func (e Expense) Contribution() decimal.Decimal {
	if e.ConvertedAmount != nil {
		return *e.ConvertedAmount
	}
	return e.Amount
}

// MarshalJSON keeps the persisted key order stable.
func (e Expense) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", e.ID)
	w.Append("amount", e.Amount)
	w.Append("currency", e.Currency)
	w.Append("category", e.Category)
	w.Optional("note", e.Note)
	if e.ConvertedAmount != nil {
		w.Append("convertedAmount", *e.ConvertedAmount)
	}
	w.Optional("time", e.Time)
	return w.MarshalJSON()
}

// Budget is the per-day collection of expenses plus a total budget amount in
// the budget's own currency (normally the trip's local currency).
type Budget struct {
	Total    decimal.Decimal `json:"total"`
	Currency string          `json:"currency"`
	Expenses []Expense       `json:"expenses,omitempty"`
}

// NewBudget returns an empty budget with a zero total in the given currency.
func NewBudget(currency string) Budget {
	return Budget{Total: decimal.Zero, Currency: currency}
}

// AddExpense appends an expense whose currency matches the budget currency.
// Each call appends once; there is no dedup.
func (b *Budget) AddExpense(e Expense) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if e.Currency != b.Currency {
		return fmt.Errorf("%w: expense in %s needs conversion to %s, use AddExpenseWithConversion",
			ErrInvalidExpense, e.Currency, b.Currency)
	}
	// Same currency: a stale converted amount must not double-count.
	e.ConvertedAmount = nil
	b.Expenses = append(b.Expenses, e)
	return nil
}

// AddExpenseWithConversion appends an expense, converting its amount into
// the budget currency first when the currencies differ. The converted amount
// is rounded to 2 digits; the raw amount keeps full precision. On conversion
// failure the expense is not appended and the budget is unchanged.
func (b *Budget) AddExpenseWithConversion(ctx context.Context, e Expense, conv fxrate.Converter) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if e.Currency == b.Currency {
		e.ConvertedAmount = nil
		b.Expenses = append(b.Expenses, e)
		return nil
	}
	converted, err := conv.Convert(ctx, e.Amount, e.Currency, b.Currency)
	if err != nil {
		return fmt.Errorf("converting %s %s to %s: %w", e.Amount, e.Currency, b.Currency, err)
	}
	rounded := converted.Round(2)
	e.ConvertedAmount = &rounded
	b.Expenses = append(b.Expenses, e)
	return nil
}

// RemoveExpense removes the expense with the given id and reports whether it
// was found. Removing an unknown id is a no-op, not an error.
func (b *Budget) RemoveExpense(id uuid.UUID) bool {
	for i, e := range b.Expenses {
		if e.ID == id {
			b.Expenses = append(b.Expenses[:i], b.Expenses[i+1:]...)
			return true
		}
	}
	return false
}

// Spent returns the sum of all expense contributions in the budget currency.
func (b Budget) Spent() Money {
	total := M(decimal.Zero, b.Currency)
	for _, e := range b.Expenses {
		total = total.Add(M(e.Contribution(), b.Currency))
	}
	return total
}

// Remaining returns total minus spent, in the budget currency. It can go
// negative when the budget is overdrawn.
func (b Budget) Remaining() Money {
	return M(b.Total, b.Currency).Sub(b.Spent())
}

// CategoryTotals sums expense contributions grouped by category. Categories
// with no spending are absent from the result.
func (b Budget) CategoryTotals() map[ExpenseCategory]Money {
	totals := make(map[ExpenseCategory]Money)
	for _, e := range b.Expenses {
		prev, ok := totals[e.Category]
		if !ok {
			prev = M(decimal.Zero, b.Currency)
		}
		totals[e.Category] = prev.Add(M(e.Contribution(), b.Currency))
	}
	return totals
}

// MarshalJSON keeps the persisted key order stable.
func (b Budget) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("total", b.Total)
	w.Append("currency", b.Currency)
	if len(b.Expenses) > 0 {
		w.Append("expenses", b.Expenses)
	}
	return w.MarshalJSON()
}
