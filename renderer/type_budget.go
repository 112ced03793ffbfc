package renderer

import (
	"github.com/bluez/tripwise"
)

// BudgetView is the budget report model.
type BudgetView struct {
	Name       string          `json:"name"`
	Currency   string          `json:"currency"`
	Total      string          `json:"total"`
	Spent      string          `json:"spent"`
	Remaining  string          `json:"remaining"`
	Overdrawn  bool            `json:"overdrawn"`
	Days       []DayBudgetView `json:"days"`
	Categories []CategoryView  `json:"categories,omitempty"`
}

// DayBudgetView holds one day's budget line and its expenses.
type DayBudgetView struct {
	Date     string        `json:"date"`
	Title    string        `json:"title"`
	Total    string        `json:"total"`
	Spent    string        `json:"spent"`
	Expenses []ExpenseView `json:"expenses,omitempty"`
}

// ExpenseView holds one expense line. Converted carries the amount in the
// budget currency when the expense was paid in a foreign one.
type ExpenseView struct {
	Category  string `json:"category"`
	Note      string `json:"note,omitempty"`
	Amount    string `json:"amount"`
	Converted string `json:"converted,omitempty"`
}

// CategoryView is one line of the category breakdown. Categories with no
// spending are not listed.
type CategoryView struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

// NewBudgetView builds the budget report model from a trip. The category
// breakdown follows the fixed category display order.
func NewBudgetView(t *tripwise.Trip) *BudgetView {
	spent, total := t.TotalSpent(), t.TotalBudget()
	remaining := total.Sub(spent)
	v := &BudgetView{
		Name:      t.Name,
		Currency:  t.LocalCurrency,
		Total:     total.Round().String(),
		Spent:     spent.Round().String(),
		Remaining: remaining.Round().String(),
		Overdrawn: remaining.IsNegative(),
	}

	categories := make(map[tripwise.ExpenseCategory]tripwise.Money)
	for _, d := range t.Days {
		dv := DayBudgetView{
			Date:  d.Date.String(),
			Title: d.Title,
			Total: tripwise.M(d.Budget.Total, d.Budget.Currency).Round().String(),
			Spent: d.Budget.Spent().Round().String(),
		}
		for _, e := range d.Budget.Expenses {
			ev := ExpenseView{
				Category: string(e.Category),
				Note:     e.Note,
				Amount:   tripwise.M(e.Amount, e.Currency).Round().String(),
			}
			if e.ConvertedAmount != nil {
				ev.Converted = tripwise.M(*e.ConvertedAmount, t.LocalCurrency).String()
			}
			dv.Expenses = append(dv.Expenses, ev)
		}
		v.Days = append(v.Days, dv)

		for cat, amount := range d.Budget.CategoryTotals() {
			prev, ok := categories[cat]
			if !ok {
				prev = tripwise.M(0, t.LocalCurrency)
			}
			categories[cat] = prev.Add(amount)
		}
	}

	for _, cat := range tripwise.ExpenseCategories {
		if amount, ok := categories[cat]; ok {
			v.Categories = append(v.Categories, CategoryView{
				Category: string(cat),
				Amount:   amount.Round().String(),
			})
		}
	}
	return v
}
