package core

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetPeriod is the lifetime of a budget from its start date.
type BudgetPeriod string

const (
	BudgetWeekly    BudgetPeriod = "Weekly"
	BudgetBiweekly  BudgetPeriod = "Bi-weekly"
	BudgetMonthly   BudgetPeriod = "Monthly"
	BudgetQuarterly BudgetPeriod = "Quarterly"
	BudgetYearly    BudgetPeriod = "Yearly"
	BudgetCustom    BudgetPeriod = "Custom"
)

// BudgetPeriods returns every period in display order.
func BudgetPeriods() []BudgetPeriod {
	return []BudgetPeriod{
		BudgetWeekly, BudgetBiweekly, BudgetMonthly, BudgetQuarterly,
		BudgetYearly, BudgetCustom,
	}
}

// EndDate returns the end of a budget starting at the given date.
// Custom periods default to one month.
func (p BudgetPeriod) EndDate(start time.Time) time.Time {
	switch p {
	case BudgetWeekly:
		return start.AddDate(0, 0, 7)
	case BudgetBiweekly:
		return start.AddDate(0, 0, 14)
	case BudgetQuarterly:
		return start.AddDate(0, 3, 0)
	case BudgetYearly:
		return start.AddDate(1, 0, 0)
	default:
		return start.AddDate(0, 1, 0)
	}
}

// BudgetNotifications holds per-budget alerting preferences. The core never
// schedules notifications; these settings are carried for the presentation
// layer.
type BudgetNotifications struct {
	EnableAlerts     bool    `json:"enable_alerts"`
	AlertThreshold   float64 `json:"alert_threshold"`
	DailyReminders   bool    `json:"daily_reminders"`
	WeeklyReports    bool    `json:"weekly_reports"`
	OverBudgetAlerts bool    `json:"over_budget_alerts"`
}

func DefaultBudgetNotifications() BudgetNotifications {
	return BudgetNotifications{
		EnableAlerts:     true,
		AlertThreshold:   0.8,
		WeeklyReports:    true,
		OverBudgetAlerts: true,
	}
}

// BudgetCategory tracks spending against a limit for one expense category.
// Spent is written only by the budget spend updater.
type BudgetCategory struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Limit           decimal.Decimal `json:"limit"`
	Spent           decimal.Decimal `json:"spent"`
	ExpenseCategory ExpenseCategory `json:"expense_category"`
	Color           string          `json:"color"`
	Icon            string          `json:"icon"`
	AlertThreshold  float64         `json:"alert_threshold"`
	IsEnabled       bool            `json:"is_enabled"`
}

// NewBudgetCategory builds a category whose color and icon are taken from
// the linked expense category.
func NewBudgetCategory(name string, limit decimal.Decimal, category ExpenseCategory, alertThreshold float64) BudgetCategory {
	return BudgetCategory{
		ID:              uuid.New(),
		Name:            name,
		Limit:           limit,
		Spent:           decimal.Zero,
		ExpenseCategory: category,
		Color:           category.Color(),
		Icon:            category.Icon(),
		AlertThreshold:  alertThreshold,
		IsEnabled:       true,
	}
}

// RemainingAmount is the unspent part of the limit, never negative.
func (c BudgetCategory) RemainingAmount() decimal.Decimal {
	remaining := c.Limit.Sub(c.Spent)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// SpentPercentage is spent over limit, clamped to 1.
func (c BudgetCategory) SpentPercentage() float64 {
	if !c.Limit.IsPositive() {
		return 0
	}
	pct := c.Spent.Div(c.Limit).InexactFloat64()
	if pct > 1 {
		return 1
	}
	return pct
}

func (c BudgetCategory) IsOverBudget() bool {
	return c.Spent.GreaterThan(c.Limit)
}

func (c BudgetCategory) ShouldAlert() bool {
	return c.SpentPercentage() >= c.AlertThreshold
}

// Budget groups category limits over a fixed date range.
type Budget struct {
	ID            uuid.UUID           `json:"id"`
	Name          string              `json:"name"`
	TotalBudget   decimal.Decimal     `json:"total_budget"`
	Period        BudgetPeriod        `json:"period"`
	Categories    []BudgetCategory    `json:"categories"`
	StartDate     time.Time           `json:"start_date"`
	EndDate       time.Time           `json:"end_date"`
	IsActive      bool                `json:"is_active"`
	Notifications BudgetNotifications `json:"notifications"`
	CreatedDate   time.Time           `json:"created_date"`
}

// NewBudget builds an active budget whose end date follows from the period.
func NewBudget(name string, totalBudget decimal.Decimal, period BudgetPeriod, startDate, now time.Time) Budget {
	return Budget{
		ID:            uuid.New(),
		Name:          name,
		TotalBudget:   totalBudget,
		Period:        period,
		Categories:    []BudgetCategory{},
		StartDate:     startDate,
		EndDate:       period.EndDate(startDate),
		IsActive:      true,
		Notifications: DefaultBudgetNotifications(),
		CreatedDate:   now,
	}
}

func (b Budget) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return ErrEmptyTitle
	}
	if b.TotalBudget.IsNegative() {
		return ErrInvalidAmount
	}
	return nil
}

// TotalAllocated sums the category limits.
func (b Budget) TotalAllocated() decimal.Decimal {
	total := decimal.Zero
	for _, c := range b.Categories {
		total = total.Add(c.Limit)
	}
	return total
}

// TotalSpent sums the category spent fields.
func (b Budget) TotalSpent() decimal.Decimal {
	total := decimal.Zero
	for _, c := range b.Categories {
		total = total.Add(c.Spent)
	}
	return total
}

// RemainingBudget is the unspent part of the total, never negative.
func (b Budget) RemainingBudget() decimal.Decimal {
	remaining := b.TotalBudget.Sub(b.TotalSpent())
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// Progress is spent over total, clamped to 1.
func (b Budget) Progress() float64 {
	if !b.TotalBudget.IsPositive() {
		return 0
	}
	progress := b.TotalSpent().Div(b.TotalBudget).InexactFloat64()
	if progress > 1 {
		return 1
	}
	return progress
}

func (b Budget) IsOverBudget() bool {
	return b.TotalSpent().GreaterThan(b.TotalBudget)
}

// DaysRemaining counts whole days until the end date; negative once passed.
func (b Budget) DaysRemaining(now time.Time) int {
	return DaysBetween(now, b.EndDate)
}

func (b Budget) IsExpired(now time.Time) bool {
	return now.After(b.EndDate)
}
