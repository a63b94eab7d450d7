package core

import "time"

// HealthCategory labels a score band.
type HealthCategory string

const (
	HealthExcellent HealthCategory = "Excellent"
	HealthGood      HealthCategory = "Good"
	HealthFair      HealthCategory = "Fair"
	HealthPoor      HealthCategory = "Poor"
	HealthCritical  HealthCategory = "Critical"
)

// FinancialHealthScore is a derived snapshot of overall financial health.
// It is fully recomputed on every relevant mutation, never edited.
type FinancialHealthScore struct {
	OverallScore              int       `json:"overall_score"`
	SavingsRatio              float64   `json:"savings_ratio"`
	DebtToIncomeRatio         float64   `json:"debt_to_income_ratio"`
	ExpenseVariability        float64   `json:"expense_variability"`
	InvestmentDiversification float64   `json:"investment_diversification"`
	EmergencyFundMonths       float64   `json:"emergency_fund_months"`
	LastCalculated            time.Time `json:"last_calculated"`
}

// ScoreCategory maps the overall score onto its band.
func (s FinancialHealthScore) ScoreCategory() HealthCategory {
	switch {
	case s.OverallScore >= 90:
		return HealthExcellent
	case s.OverallScore >= 75:
		return HealthGood
	case s.OverallScore >= 60:
		return HealthFair
	case s.OverallScore >= 40:
		return HealthPoor
	default:
		return HealthCritical
	}
}

// Recommendations returns advice for every metric past its threshold, in a
// fixed order. The checks are independent; a score can trigger several. A
// score triggering none gets a single encouragement.
func (s FinancialHealthScore) Recommendations() []string {
	var recs []string
	if s.SavingsRatio < 0.2 {
		recs = append(recs, "Try to save at least 20% of your income")
	}
	if s.DebtToIncomeRatio > 0.3 {
		recs = append(recs, "Consider reducing debt to improve financial health")
	}
	if s.EmergencyFundMonths < 3 {
		recs = append(recs, "Build an emergency fund covering 3-6 months of expenses")
	}
	if s.InvestmentDiversification < 0.3 {
		recs = append(recs, "Diversify your investment portfolio across different asset types")
	}
	if s.ExpenseVariability > 0.4 {
		recs = append(recs, "Work on creating a more consistent spending pattern")
	}
	if len(recs) == 0 {
		recs = append(recs, "Great job! Keep maintaining your excellent financial habits")
	}
	return recs
}
