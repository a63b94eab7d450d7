package services

import (
	"context"
	"errors"

	"fintrack/internal/core"
)

// ErrNotFound reports a mutation addressed to an id with no matching record.
var ErrNotFound = errors.New("record not found")

// Collection names used as storage keys.
const (
	CollectionExpenses    = "expenses"
	CollectionInvestments = "investments"
	CollectionBudgets     = "budgets"
	CollectionGoals       = "savings_goals"
	CollectionBills       = "bill_reminders"
)

// Snapshot is the full persisted state of the tracker.
type Snapshot struct {
	Expenses    []core.Expense      `json:"expenses"`
	Investments []core.Investment   `json:"investments"`
	Budgets     []core.Budget       `json:"budgets"`
	Goals       []core.SavingsGoal  `json:"savings_goals"`
	Bills       []core.BillReminder `json:"bill_reminders"`
}

// Storage persists record collections. Implementations are best effort:
// the tracker keeps its in-memory state authoritative and logs save
// failures instead of propagating them.
type Storage interface {
	// Load reads every collection. A missing collection comes back empty.
	Load(ctx context.Context) (Snapshot, error)
	// Save upserts one collection by name. The value is the full slice.
	Save(ctx context.Context, name string, collection any) error
	Close() error
}
