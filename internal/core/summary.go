package core

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// SumAmounts totals the expense amounts. An empty collection sums to zero.
// Negative amounts are accepted as-is.
func SumAmounts(expenses []Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// Average is the mean expense amount, zero for an empty collection.
func Average(expenses []Expense) decimal.Decimal {
	if len(expenses) == 0 {
		return decimal.Zero
	}
	return SumAmounts(expenses).Div(decimal.NewFromInt(int64(len(expenses))))
}

// CategoryBreakdown totals expenses per category. Categories with no
// records get no entry.
func CategoryBreakdown(expenses []Expense) map[ExpenseCategory]decimal.Decimal {
	breakdown := make(map[ExpenseCategory]decimal.Decimal)
	for _, e := range expenses {
		breakdown[e.Category] = breakdown[e.Category].Add(e.Amount)
	}
	return breakdown
}

// MonthlyTotals groups expenses by the calendar-month start of their date.
// Months with no records get no entry.
func MonthlyTotals(expenses []Expense) map[time.Time]decimal.Decimal {
	totals := make(map[time.Time]decimal.Decimal)
	for _, e := range expenses {
		month := MonthStart(e.Date)
		totals[month] = totals[month].Add(e.Amount)
	}
	return totals
}

// CategoryAmount pairs a category with its aggregated amount for display.
type CategoryAmount struct {
	Category ExpenseCategory `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// BreakdownByAmount returns the category breakdown sorted largest first.
func BreakdownByAmount(expenses []Expense) []CategoryAmount {
	breakdown := CategoryBreakdown(expenses)
	out := make([]CategoryAmount, 0, len(breakdown))
	for category, amount := range breakdown {
		out = append(out, CategoryAmount{Category: category, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Amount.Equal(out[j].Amount) {
			return out[i].Amount.GreaterThan(out[j].Amount)
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// ExpenseSummary is a snapshot of spending across the standard windows.
type ExpenseSummary struct {
	TotalExpenses     decimal.Decimal                     `json:"total_expenses"`
	MonthlyExpenses   decimal.Decimal                     `json:"monthly_expenses"`
	WeeklyExpenses    decimal.Decimal                     `json:"weekly_expenses"`
	DailyExpenses     decimal.Decimal                     `json:"daily_expenses"`
	CategoryBreakdown map[ExpenseCategory]decimal.Decimal `json:"category_breakdown"`
	LastUpdated       time.Time                           `json:"last_updated"`
}

// NewExpenseSummary folds the expense collection into window totals.
func NewExpenseSummary(expenses []Expense, now time.Time) ExpenseSummary {
	return ExpenseSummary{
		TotalExpenses:     SumAmounts(expenses),
		MonthlyExpenses:   SumAmounts(FilterByPeriod(expenses, PeriodMonth, now)),
		WeeklyExpenses:    SumAmounts(FilterByPeriod(expenses, PeriodWeek, now)),
		DailyExpenses:     SumAmounts(FilterByPeriod(expenses, PeriodDay, now)),
		CategoryBreakdown: CategoryBreakdown(expenses),
		LastUpdated:       now,
	}
}

// BudgetSummary aggregates across the budget collection.
type BudgetSummary struct {
	TotalBudgets         int             `json:"total_budgets"`
	ActiveBudgets        int             `json:"active_budgets"`
	TotalBudgetAmount    decimal.Decimal `json:"total_budget_amount"`
	TotalSpent           decimal.Decimal `json:"total_spent"`
	CategoriesOverBudget int             `json:"categories_over_budget"`
	LastUpdated          time.Time       `json:"last_updated"`
}

// NewBudgetSummary folds active, unexpired budgets into totals.
func NewBudgetSummary(budgets []Budget, now time.Time) BudgetSummary {
	summary := BudgetSummary{TotalBudgets: len(budgets), LastUpdated: now}
	for _, b := range budgets {
		if !b.IsActive || b.IsExpired(now) {
			continue
		}
		summary.ActiveBudgets++
		summary.TotalBudgetAmount = summary.TotalBudgetAmount.Add(b.TotalBudget)
		summary.TotalSpent = summary.TotalSpent.Add(b.TotalSpent())
		for _, c := range b.Categories {
			if c.IsOverBudget() {
				summary.CategoriesOverBudget++
			}
		}
	}
	return summary
}

// OverallProgress is total spent over total budgeted, clamped to 1.
func (s BudgetSummary) OverallProgress() float64 {
	if !s.TotalBudgetAmount.IsPositive() {
		return 0
	}
	progress := s.TotalSpent.Div(s.TotalBudgetAmount).InexactFloat64()
	if progress > 1 {
		return 1
	}
	return progress
}

// SavingsSummary aggregates across the savings goal collection.
type SavingsSummary struct {
	TotalGoals        int             `json:"total_goals"`
	ActiveGoals       int             `json:"active_goals"`
	CompletedGoals    int             `json:"completed_goals"`
	OverdueGoals      int             `json:"overdue_goals"`
	TotalTargetAmount decimal.Decimal `json:"total_target_amount"`
	TotalSavedAmount  decimal.Decimal `json:"total_saved_amount"`
	LastUpdated       time.Time       `json:"last_updated"`
}

// NewSavingsSummary folds unarchived goals into totals.
func NewSavingsSummary(goals []SavingsGoal, now time.Time) SavingsSummary {
	summary := SavingsSummary{LastUpdated: now}
	for _, g := range goals {
		if g.IsArchived {
			continue
		}
		summary.TotalGoals++
		switch {
		case g.IsCompleted:
			summary.CompletedGoals++
		case g.IsOverdue(now):
			summary.OverdueGoals++
		default:
			summary.ActiveGoals++
		}
		summary.TotalTargetAmount = summary.TotalTargetAmount.Add(g.TargetAmount)
		summary.TotalSavedAmount = summary.TotalSavedAmount.Add(g.CurrentAmount)
	}
	return summary
}

// OverallProgress is total saved over total targeted, clamped to 1.
func (s SavingsSummary) OverallProgress() float64 {
	if !s.TotalTargetAmount.IsPositive() {
		return 0
	}
	progress := s.TotalSavedAmount.Div(s.TotalTargetAmount).InexactFloat64()
	if progress > 1 {
		return 1
	}
	return progress
}

// CompletionRate is the share of goals completed.
func (s SavingsSummary) CompletionRate() float64 {
	if s.TotalGoals == 0 {
		return 0
	}
	return float64(s.CompletedGoals) / float64(s.TotalGoals)
}

// SpendingInsight compares the current calendar month against the previous
// one.
type SpendingInsight struct {
	CurrentMonth  decimal.Decimal `json:"current_month"`
	PreviousMonth decimal.Decimal `json:"previous_month"`
	ChangePercent float64         `json:"change_percent"`
}

// NewSpendingInsight computes the month-over-month change. ChangePercent is
// zero when the previous month had no spending.
func NewSpendingInsight(expenses []Expense, now time.Time) SpendingInsight {
	totals := MonthlyTotals(expenses)
	current := totals[MonthStart(now)]
	previous := totals[MonthStart(now).AddDate(0, -1, 0)]

	insight := SpendingInsight{CurrentMonth: current, PreviousMonth: previous}
	if previous.IsPositive() {
		insight.ChangePercent = current.Sub(previous).Div(previous).InexactFloat64() * 100
	}
	return insight
}
