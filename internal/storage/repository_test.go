package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/internal/core"
	"fintrack/internal/log"
	"fintrack/internal/services"
)

func testLogger() *log.Logger {
	return log.New(log.DefaultConfig())
}

func TestSQLiteRepositoryRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "fintrack.db")
	repo, err := NewSQLiteRepository(dbPath, testLogger())
	require.NoError(t, err)
	defer repo.Close()

	ctx := context.Background()

	expenses := []core.Expense{
		core.NewExpense("coffee", decimal.NewFromFloat(3.20), core.CategoryFood, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)),
	}
	goals := []core.SavingsGoal{
		core.NewSavingsGoal("Emergency", decimal.NewFromInt(9000), time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC), core.SavingsEmergency, core.PriorityHigh, time.Now().UTC()),
	}

	require.NoError(t, repo.Save(ctx, services.CollectionExpenses, expenses))
	require.NoError(t, repo.Save(ctx, services.CollectionGoals, goals))

	snapshot, err := repo.Load(ctx)
	require.NoError(t, err)

	require.Len(t, snapshot.Expenses, 1)
	assert.Equal(t, expenses[0].ID, snapshot.Expenses[0].ID)
	assert.Equal(t, "coffee", snapshot.Expenses[0].Title)
	assert.True(t, snapshot.Expenses[0].Amount.Equal(decimal.NewFromFloat(3.20)))

	require.Len(t, snapshot.Goals, 1)
	assert.Equal(t, goals[0].ID, snapshot.Goals[0].ID)
	assert.Equal(t, core.SavingsEmergency, snapshot.Goals[0].Category)

	// Collections never saved come back empty, not nil errors.
	assert.Empty(t, snapshot.Investments)
	assert.Empty(t, snapshot.Budgets)
	assert.Empty(t, snapshot.Bills)
}

func TestSQLiteRepositorySaveOverwrites(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "fintrack.db")
	repo, err := NewSQLiteRepository(dbPath, testLogger())
	require.NoError(t, err)
	defer repo.Close()

	ctx := context.Background()

	first := []core.Expense{core.NewExpense("a", decimal.NewFromInt(1), core.CategoryFood, time.Now().UTC())}
	require.NoError(t, repo.Save(ctx, services.CollectionExpenses, first))

	second := append(first, core.NewExpense("b", decimal.NewFromInt(2), core.CategoryOther, time.Now().UTC()))
	require.NoError(t, repo.Save(ctx, services.CollectionExpenses, second))

	snapshot, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, snapshot.Expenses, 2)
}

func TestSQLiteRepositorySurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "fintrack.db")
	ctx := context.Background()

	repo, err := NewSQLiteRepository(dbPath, testLogger())
	require.NoError(t, err)
	bills := []core.BillReminder{
		core.NewBillReminder("Rent", decimal.NewFromInt(900), time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC), core.BillMonthly, core.CategoryBills, 3),
	}
	require.NoError(t, repo.Save(ctx, services.CollectionBills, bills))
	require.NoError(t, repo.Close())

	reopened, err := NewSQLiteRepository(dbPath, testLogger())
	require.NoError(t, err)
	defer reopened.Close()

	snapshot, err := reopened.Load(ctx)
	require.NoError(t, err)
	require.Len(t, snapshot.Bills, 1)
	assert.Equal(t, "Rent", snapshot.Bills[0].Title)
}

func TestMemoryStorageRoundTrip(t *testing.T) {
	store := NewMemoryStorage()
	ctx := context.Background()

	investments := []core.Investment{
		core.NewInvestment("AAPL", "Apple", decimal.NewFromInt(10), decimal.NewFromInt(100), decimal.NewFromInt(150), time.Now().UTC(), core.InvestmentStocks),
	}
	require.NoError(t, store.Save(ctx, services.CollectionInvestments, investments))

	snapshot, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, snapshot.Investments, 1)
	assert.Equal(t, "AAPL", snapshot.Investments[0].Symbol)
	assert.Empty(t, snapshot.Expenses)
}
