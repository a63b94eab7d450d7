package services

import (
	"github.com/shopspring/decimal"

	"fintrack/internal/core"
)

// RecomputeSpending rebuilds every category spent field on the active
// budgets from the expense collection. Each run starts from zero, so
// repeated calls with unchanged input are idempotent. Inactive budgets are
// left untouched.
func RecomputeSpending(budgets []core.Budget, expenses []core.Expense) []core.Budget {
	out := make([]core.Budget, len(budgets))
	for i, b := range budgets {
		out[i] = b
		out[i].Categories = make([]core.BudgetCategory, len(b.Categories))
		copy(out[i].Categories, b.Categories)

		if !b.IsActive {
			continue
		}
		for j := range out[i].Categories {
			c := &out[i].Categories[j]
			c.Spent = decimal.Zero
			for _, e := range expenses {
				if e.Category != c.ExpenseCategory {
					continue
				}
				// The budget window is inclusive on both ends.
				if e.Date.Before(b.StartDate) || e.Date.After(b.EndDate) {
					continue
				}
				c.Spent = c.Spent.Add(e.Amount)
			}
		}
	}
	return out
}
