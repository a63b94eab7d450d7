package core

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavingsGoalProgress(t *testing.T) {
	now := date(2025, time.January, 1)
	g := NewSavingsGoal("Trip", decimal.NewFromInt(1000), date(2025, time.December, 31), SavingsVacation, PriorityMedium, now)

	assert.Equal(t, 0.0, g.Progress())

	g.CurrentAmount = decimal.NewFromInt(250)
	assert.InDelta(t, 0.25, g.Progress(), 1e-9)
	assert.True(t, g.RemainingAmount().Equal(decimal.NewFromInt(750)))

	g.CurrentAmount = decimal.NewFromInt(1100)
	assert.Equal(t, 1.0, g.Progress())
	assert.True(t, g.RemainingAmount().IsZero())
}

func TestSavingsGoalContributions(t *testing.T) {
	now := date(2025, time.June, 1)
	g := NewSavingsGoal("Laptop", decimal.NewFromInt(1000), date(2025, time.December, 1), SavingsGadget, PriorityLow, now)

	_, err := g.AddContribution(decimal.Zero, "", ContributionManual, now)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	c, err := g.AddContribution(decimal.NewFromInt(400), "payday", ContributionManual, now)
	require.NoError(t, err)
	assert.True(t, c.Amount.Equal(decimal.NewFromInt(400)))
	assert.True(t, g.CurrentAmount.Equal(decimal.NewFromInt(400)))
	assert.True(t, g.TotalContributions().Equal(decimal.NewFromInt(400)))
	assert.False(t, g.IsCompleted)

	later := now.AddDate(0, 1, 0)
	_, err = g.AddContribution(decimal.NewFromInt(600), "", ContributionBonus, later)
	require.NoError(t, err)
	assert.True(t, g.IsCompleted)
	require.NotNil(t, g.CompletedDate)
	assert.Equal(t, later, *g.CompletedDate)
	assert.Equal(t, "Completed", g.StatusText(later))
}

func TestSavingsGoalMilestones(t *testing.T) {
	now := date(2025, time.June, 1)
	g := NewSavingsGoal("House", decimal.NewFromInt(10000), date(2027, time.June, 1), SavingsHouse, PriorityHigh, now)

	// Inserted out of order; the list stays sorted by target amount.
	g.AddMilestone(NewSavingsMilestone("Halfway", decimal.NewFromInt(5000), ""), now)
	g.AddMilestone(NewSavingsMilestone("First Quarter", decimal.NewFromInt(2500), "dinner out"), now)

	require.Len(t, g.Milestones, 2)
	assert.Equal(t, "First Quarter", g.Milestones[0].Name)

	next := g.NextMilestone()
	require.NotNil(t, next)
	assert.Equal(t, "First Quarter", next.Name)

	_, err := g.AddContribution(decimal.NewFromInt(3000), "", ContributionManual, now)
	require.NoError(t, err)

	assert.True(t, g.Milestones[0].IsCompleted)
	assert.False(t, g.Milestones[1].IsCompleted)
	assert.Len(t, g.CompletedMilestones(), 1)

	next = g.NextMilestone()
	require.NotNil(t, next)
	assert.Equal(t, "Halfway", next.Name)

	// A milestone already below current progress completes on insert.
	g.AddMilestone(NewSavingsMilestone("Seed", decimal.NewFromInt(1000), ""), now)
	assert.True(t, g.Milestones[0].IsCompleted)
	assert.Equal(t, "Seed", g.Milestones[0].Name)
}

func TestMilestoneCompletionIsMonotonic(t *testing.T) {
	now := date(2025, time.June, 1)
	g := NewSavingsGoal("Fund", decimal.NewFromInt(1000), date(2026, time.June, 1), SavingsEmergency, PriorityCritical, now)
	g.AddMilestone(NewSavingsMilestone("Start", decimal.NewFromInt(100), ""), now)

	_, err := g.AddContribution(decimal.NewFromInt(100), "", ContributionManual, now)
	require.NoError(t, err)
	require.True(t, g.Milestones[0].IsCompleted)
	completedAt := *g.Milestones[0].CompletedDate

	// Further contributions never reset an earlier completion date.
	_, err = g.AddContribution(decimal.NewFromInt(50), "", ContributionManual, now.AddDate(0, 0, 7))
	require.NoError(t, err)
	assert.Equal(t, completedAt, *g.Milestones[0].CompletedDate)
}

func TestMonthlyTargetContribution(t *testing.T) {
	now := date(2025, time.January, 1)

	t.Run("paced over remaining months", func(t *testing.T) {
		g := NewSavingsGoal("Trip", decimal.NewFromInt(3044), now.AddDate(0, 0, 304), SavingsVacation, PriorityMedium, now)
		// 304 days is just under 10 average months.
		monthly := g.MonthlyTargetContribution(now)
		assert.InDelta(t, 304.8, monthly.InexactFloat64(), 0.1)
	})

	t.Run("under a month rounds up to one", func(t *testing.T) {
		g := NewSavingsGoal("Rush", decimal.NewFromInt(500), now.AddDate(0, 0, 10), SavingsOther, PriorityHigh, now)
		assert.True(t, g.MonthlyTargetContribution(now).Equal(decimal.NewFromInt(500)))
	})

	t.Run("past due is payable in full", func(t *testing.T) {
		g := NewSavingsGoal("Late", decimal.NewFromInt(800), now.AddDate(0, 0, -5), SavingsOther, PriorityHigh, now)
		g.CurrentAmount = decimal.NewFromInt(300)
		assert.True(t, g.MonthlyTargetContribution(now).Equal(decimal.NewFromInt(500)))
	})

	t.Run("weekly is monthly over average weeks", func(t *testing.T) {
		g := NewSavingsGoal("Weekly", decimal.NewFromInt(433), now.AddDate(0, 0, -1), SavingsOther, PriorityLow, now)
		assert.InDelta(t, 100.0, g.WeeklyTargetContribution(now).InexactFloat64(), 1e-9)
	})
}

func TestSavingsGoalStatusText(t *testing.T) {
	now := date(2025, time.June, 1)

	g := NewSavingsGoal("Soon", decimal.NewFromInt(100), now.AddDate(0, 0, 20), SavingsOther, PriorityLow, now)
	assert.Equal(t, "Due Soon", g.StatusText(now))

	g.TargetDate = now.AddDate(0, 0, 90)
	assert.Equal(t, "On Track", g.StatusText(now))

	g.TargetDate = now.AddDate(0, 0, -1)
	assert.Equal(t, "Overdue", g.StatusText(now))
	assert.True(t, g.IsOverdue(now))
}
