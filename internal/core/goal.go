package core

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Average days per month and weeks per month, used for contribution pacing.
var (
	daysPerMonth  = decimal.NewFromFloat(30.44)
	weeksPerMonth = decimal.NewFromFloat(4.33)
)

// SavingsCategory classifies a savings goal.
type SavingsCategory string

const (
	SavingsEmergency  SavingsCategory = "Emergency Fund"
	SavingsVacation   SavingsCategory = "Vacation"
	SavingsHouse      SavingsCategory = "House Down Payment"
	SavingsCar        SavingsCategory = "Car Purchase"
	SavingsEducation  SavingsCategory = "Education"
	SavingsRetirement SavingsCategory = "Retirement"
	SavingsWedding    SavingsCategory = "Wedding"
	SavingsGadget     SavingsCategory = "Electronics"
	SavingsHealth     SavingsCategory = "Health & Medical"
	SavingsBusiness   SavingsCategory = "Business Investment"
	SavingsOther      SavingsCategory = "Other"
)

// SavingsCategories returns every category in display order.
func SavingsCategories() []SavingsCategory {
	return []SavingsCategory{
		SavingsEmergency, SavingsVacation, SavingsHouse, SavingsCar,
		SavingsEducation, SavingsRetirement, SavingsWedding, SavingsGadget,
		SavingsHealth, SavingsBusiness, SavingsOther,
	}
}

// SuggestedMilestones returns milestone names commonly used for the category.
func (c SavingsCategory) SuggestedMilestones() []string {
	switch c {
	case SavingsEmergency:
		return []string{"1 Month Expenses", "3 Months Expenses", "6 Months Expenses"}
	case SavingsVacation:
		return []string{"25% Saved", "50% Saved", "75% Saved", "Trip Booked!"}
	case SavingsHouse:
		return []string{"10% Down Payment", "15% Down Payment", "20% Down Payment"}
	case SavingsCar:
		return []string{"25% Saved", "50% Saved", "Full Amount"}
	case SavingsEducation:
		return []string{"First Semester", "One Year", "Full Degree"}
	case SavingsRetirement:
		return []string{"First $1,000", "First $10,000", "First $100,000"}
	case SavingsWedding:
		return []string{"Venue Deposit", "50% Saved", "Wedding Ready!"}
	case SavingsGadget:
		return []string{"50% Saved", "Ready to Buy!"}
	case SavingsHealth:
		return []string{"Deductible Covered", "Full Amount"}
	case SavingsBusiness:
		return []string{"Initial Investment", "Growth Fund", "Expansion Ready"}
	default:
		return []string{"25% Complete", "50% Complete", "75% Complete", "Goal Achieved!"}
	}
}

// GoalPriority orders goals by importance.
type GoalPriority string

const (
	PriorityLow      GoalPriority = "Low"
	PriorityMedium   GoalPriority = "Medium"
	PriorityHigh     GoalPriority = "High"
	PriorityCritical GoalPriority = "Critical"
)

// GoalPriorities returns every priority from lowest to highest.
func GoalPriorities() []GoalPriority {
	return []GoalPriority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}
}

// ContributionMethod records how money reached a goal.
type ContributionMethod string

const (
	ContributionManual    ContributionMethod = "Manual"
	ContributionAutomatic ContributionMethod = "Automatic"
	ContributionRoundUp   ContributionMethod = "Round Up"
	ContributionBonus     ContributionMethod = "Bonus/Gift"
)

// ReminderFrequency is how often a goal nudges the user.
type ReminderFrequency string

const (
	RemindDaily   ReminderFrequency = "Daily"
	RemindWeekly  ReminderFrequency = "Weekly"
	RemindMonthly ReminderFrequency = "Monthly"
	RemindNever   ReminderFrequency = "Never"
)

// GoalReminderSettings holds per-goal reminder preferences, carried for the
// presentation layer.
type GoalReminderSettings struct {
	EnableReminders       bool              `json:"enable_reminders"`
	ReminderFrequency     ReminderFrequency `json:"reminder_frequency"`
	ContributionReminders bool              `json:"contribution_reminders"`
	MilestoneAlerts       bool              `json:"milestone_alerts"`
	ProgressUpdates       bool              `json:"progress_updates"`
}

func DefaultGoalReminderSettings() GoalReminderSettings {
	return GoalReminderSettings{
		EnableReminders:       true,
		ReminderFrequency:     RemindWeekly,
		ContributionReminders: true,
		MilestoneAlerts:       true,
		ProgressUpdates:       true,
	}
}

// SavingsMilestone marks a fixed amount on the way to a goal. Completion is
// monotonic: once completed it is never un-marked.
type SavingsMilestone struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	IsCompleted   bool            `json:"is_completed"`
	CompletedDate *time.Time      `json:"completed_date,omitempty"`
	Reward        string          `json:"reward,omitempty"`
	Icon          string          `json:"icon,omitempty"`
}

// NewSavingsMilestone builds an incomplete milestone with a fresh id.
func NewSavingsMilestone(name string, targetAmount decimal.Decimal, reward string) SavingsMilestone {
	return SavingsMilestone{
		ID:           uuid.New(),
		Name:         name,
		TargetAmount: targetAmount,
		Reward:       reward,
		Icon:         "flag.fill",
	}
}

// SavingsContribution is an append-only deposit toward a goal. There is no
// retraction operation.
type SavingsContribution struct {
	ID     uuid.UUID          `json:"id"`
	Amount decimal.Decimal    `json:"amount"`
	Date   time.Time          `json:"date"`
	Note   string             `json:"note,omitempty"`
	Method ContributionMethod `json:"method"`
}

// SavingsGoal accumulates contributions toward a target amount.
// CurrentAmount is always the running sum of the contribution amounts.
type SavingsGoal struct {
	ID               uuid.UUID             `json:"id"`
	Name             string                `json:"name"`
	Description      string                `json:"description,omitempty"`
	TargetAmount     decimal.Decimal       `json:"target_amount"`
	CurrentAmount    decimal.Decimal       `json:"current_amount"`
	TargetDate       time.Time             `json:"target_date"`
	Category         SavingsCategory       `json:"category"`
	Priority         GoalPriority          `json:"priority"`
	IsCompleted      bool                  `json:"is_completed"`
	IsArchived       bool                  `json:"is_archived"`
	CreatedDate      time.Time             `json:"created_date"`
	CompletedDate    *time.Time            `json:"completed_date,omitempty"`
	Milestones       []SavingsMilestone    `json:"milestones"`
	Contributions    []SavingsContribution `json:"contributions"`
	ReminderSettings GoalReminderSettings  `json:"reminder_settings"`
}

// NewSavingsGoal builds an empty goal with a fresh id.
func NewSavingsGoal(name string, targetAmount decimal.Decimal, targetDate time.Time, category SavingsCategory, priority GoalPriority, now time.Time) SavingsGoal {
	return SavingsGoal{
		ID:               uuid.New(),
		Name:             name,
		TargetAmount:     targetAmount,
		CurrentAmount:    decimal.Zero,
		TargetDate:       targetDate,
		Category:         category,
		Priority:         priority,
		CreatedDate:      now,
		Milestones:       []SavingsMilestone{},
		Contributions:    []SavingsContribution{},
		ReminderSettings: DefaultGoalReminderSettings(),
	}
}

func (g SavingsGoal) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return ErrEmptyTitle
	}
	if g.TargetAmount.IsNegative() {
		return ErrInvalidAmount
	}
	return nil
}

// Progress is saved over target, clamped to 1.
func (g SavingsGoal) Progress() float64 {
	if !g.TargetAmount.IsPositive() {
		return 0
	}
	progress := g.CurrentAmount.Div(g.TargetAmount).InexactFloat64()
	if progress > 1 {
		return 1
	}
	return progress
}

// RemainingAmount is what is left to save, never negative.
func (g SavingsGoal) RemainingAmount() decimal.Decimal {
	remaining := g.TargetAmount.Sub(g.CurrentAmount)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// DaysRemaining counts whole days until the target date; negative once passed.
func (g SavingsGoal) DaysRemaining(now time.Time) int {
	return DaysBetween(now, g.TargetDate)
}

func (g SavingsGoal) IsOverdue(now time.Time) bool {
	return now.After(g.TargetDate) && !g.IsCompleted
}

// MonthlyTargetContribution is the pace needed to hit the target date. A
// goal already past its target date is due in full immediately.
func (g SavingsGoal) MonthlyTargetContribution(now time.Time) decimal.Decimal {
	days := g.DaysRemaining(now)
	if days <= 0 {
		return g.RemainingAmount()
	}
	months := decimal.NewFromInt(int64(days)).Div(daysPerMonth)
	if months.LessThan(decimal.NewFromInt(1)) {
		months = decimal.NewFromInt(1)
	}
	return g.RemainingAmount().Div(months)
}

func (g SavingsGoal) WeeklyTargetContribution(now time.Time) decimal.Decimal {
	return g.MonthlyTargetContribution(now).Div(weeksPerMonth)
}

// NextMilestone is the incomplete milestone with the lowest target amount,
// or nil when every milestone is done.
func (g SavingsGoal) NextMilestone() *SavingsMilestone {
	for i := range g.Milestones {
		if !g.Milestones[i].IsCompleted {
			m := g.Milestones[i]
			return &m
		}
	}
	return nil
}

func (g SavingsGoal) CompletedMilestones() []SavingsMilestone {
	completed := make([]SavingsMilestone, 0, len(g.Milestones))
	for _, m := range g.Milestones {
		if m.IsCompleted {
			completed = append(completed, m)
		}
	}
	return completed
}

// TotalContributions sums the contribution amounts.
func (g SavingsGoal) TotalContributions() decimal.Decimal {
	total := decimal.Zero
	for _, c := range g.Contributions {
		total = total.Add(c.Amount)
	}
	return total
}

func (g SavingsGoal) StatusText(now time.Time) string {
	switch {
	case g.IsCompleted:
		return "Completed"
	case g.IsOverdue(now):
		return "Overdue"
	case g.DaysRemaining(now) <= 30:
		return "Due Soon"
	default:
		return "On Track"
	}
}

// AddContribution appends a contribution dated now and advances the goal.
// Reaching the target completes the goal permanently; contributions are
// append-only so completion never reverts.
func (g *SavingsGoal) AddContribution(amount decimal.Decimal, note string, method ContributionMethod, now time.Time) (SavingsContribution, error) {
	if !amount.IsPositive() {
		return SavingsContribution{}, ErrInvalidAmount
	}
	contribution := SavingsContribution{
		ID:     uuid.New(),
		Amount: amount,
		Date:   now,
		Note:   note,
		Method: method,
	}
	g.Contributions = append(g.Contributions, contribution)
	g.CurrentAmount = g.CurrentAmount.Add(amount)

	if g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount) && !g.IsCompleted {
		g.IsCompleted = true
		completedAt := now
		g.CompletedDate = &completedAt
	}

	g.refreshMilestones(now)
	return contribution, nil
}

// AddMilestone inserts a milestone keeping the list sorted by target amount.
// A milestone already below current progress completes on insert.
func (g *SavingsGoal) AddMilestone(milestone SavingsMilestone, now time.Time) {
	g.Milestones = append(g.Milestones, milestone)
	sort.SliceStable(g.Milestones, func(i, j int) bool {
		return g.Milestones[i].TargetAmount.LessThan(g.Milestones[j].TargetAmount)
	})
	g.refreshMilestones(now)
}

func (g *SavingsGoal) refreshMilestones(now time.Time) {
	for i := range g.Milestones {
		m := &g.Milestones[i]
		if !m.IsCompleted && g.CurrentAmount.GreaterThanOrEqual(m.TargetAmount) {
			m.IsCompleted = true
			completedAt := now
			m.CompletedDate = &completedAt
		}
	}
}
