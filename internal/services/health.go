package services

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/core"
)

// HealthScorer derives a financial health score from the record collections.
// Income and debt are external inputs; no income-tracking entity exists.
type HealthScorer struct {
	MonthlyIncome decimal.Decimal
	TotalDebt     decimal.Decimal
}

// Compute folds the collections into a fresh score. It is a full recompute
// every time, never an incremental update.
func (s HealthScorer) Compute(expenses []core.Expense, investments []core.Investment, goals []core.SavingsGoal, now time.Time) core.FinancialHealthScore {
	income := s.MonthlyIncome.InexactFloat64()
	monthlyExpenses := core.SumAmounts(core.FilterByPeriod(expenses, core.PeriodMonth, now)).InexactFloat64()

	var savingsRatio, debtRatio float64
	if income > 0 {
		savingsRatio = math.Max(income-monthlyExpenses, 0) / income
		debtRatio = s.TotalDebt.InexactFloat64() / income
	}

	variability := expenseVariability(expenses, now)

	portfolio := core.Portfolio{Investments: investments}
	diversification := math.Min(float64(portfolio.DistinctTypes())/5, 1)

	emergencyFund := decimal.Zero
	for _, g := range goals {
		if g.Category == core.SavingsEmergency {
			emergencyFund = emergencyFund.Add(g.CurrentAmount)
		}
	}
	var emergencyMonths float64
	if monthlyExpenses > 0 {
		emergencyMonths = emergencyFund.InexactFloat64() / monthlyExpenses
	}

	// Each term is clamped into its own point range before summing so the
	// composite stays inside [0,100] even when stored collections carry
	// negative amounts.
	savingsScore := clamp01(savingsRatio/0.2) * 25
	debtScore := clamp01(1-debtRatio/0.3) * 20
	expenseScore := clamp01(1-variability) * 15
	investmentScore := diversification * 20
	emergencyScore := clamp01(emergencyMonths/6) * 20

	return core.FinancialHealthScore{
		OverallScore:              int(savingsScore + debtScore + expenseScore + investmentScore + emergencyScore),
		SavingsRatio:              savingsRatio,
		DebtToIncomeRatio:         debtRatio,
		ExpenseVariability:        variability,
		InvestmentDiversification: diversification,
		EmergencyFundMonths:       emergencyMonths,
		LastCalculated:            now,
	}
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}

// expenseVariability is the coefficient of variation of the current
// quarter's monthly totals. Zero when the quarter is empty or averages to
// zero.
func expenseVariability(expenses []core.Expense, now time.Time) float64 {
	quarter := core.FilterByPeriod(expenses, core.PeriodQuarter, now)
	totals := core.MonthlyTotals(quarter)
	if len(totals) == 0 {
		return 0
	}

	values := make([]float64, 0, len(totals))
	var sum float64
	for _, total := range totals {
		v := total.InexactFloat64()
		values = append(values, v)
		sum += v
	}
	mean := sum / float64(len(values))
	if mean == 0 {
		return 0
	}

	var sq float64
	for _, v := range values {
		sq += (v - mean) * (v - mean)
	}
	stddev := math.Sqrt(sq / float64(len(values)))
	return stddev / mean
}
