package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"fintrack/internal/core"
	"fintrack/internal/log"
)

// Tracker owns the five record collections and keeps the derived state
// (budget spend, health score) consistent after every mutation. All calls
// are serialized through one mutex; none of the recomputations are safe
// under concurrent read-modify-write.
type Tracker struct {
	mu sync.Mutex

	expenses    []core.Expense
	investments []core.Investment
	budgets     []core.Budget
	goals       []core.SavingsGoal
	bills       []core.BillReminder

	health core.FinancialHealthScore

	storage Storage
	scorer  HealthScorer
	logger  *log.Logger
	now     func() time.Time
}

// NewTracker loads the persisted collections and computes the initial
// derived state. A load failure leaves every collection empty; in-memory
// state stays authoritative either way.
func NewTracker(ctx context.Context, storage Storage, scorer HealthScorer, logger *log.Logger) (*Tracker, error) {
	t := &Tracker{
		storage: storage,
		scorer:  scorer,
		logger:  logger.WithComponent(log.ComponentTracker),
		now:     time.Now,
	}

	snapshot, err := storage.Load(ctx)
	if err != nil {
		t.logger.WarnContext(ctx, "Failed to load persisted state, starting empty", log.FieldError, err)
	}
	t.expenses = snapshot.Expenses
	t.investments = snapshot.Investments
	t.budgets = snapshot.Budgets
	t.goals = snapshot.Goals
	t.bills = snapshot.Bills

	t.budgets = RecomputeSpending(t.budgets, t.expenses)
	t.health = t.scorer.Compute(t.expenses, t.investments, t.goals, t.now())

	t.logger.InfoContext(ctx, "Tracker initialized",
		"expenses", len(t.expenses),
		"investments", len(t.investments),
		"budgets", len(t.budgets),
		"goals", len(t.goals),
		"bills", len(t.bills))
	return t, nil
}

// persist saves one collection, logging failures instead of returning them.
// The in-memory state is authoritative; a failed save only risks losing
// changes on process exit.
func (t *Tracker) persist(ctx context.Context, name string, collection any) {
	if err := t.storage.Save(ctx, name, collection); err != nil {
		t.logger.WarnContext(ctx, "Failed to persist collection", log.FieldCollection, name, log.FieldError, err)
	}
}

// refreshSpending rebuilds budget spend and persists budgets when the
// totals moved.
func (t *Tracker) refreshSpending(ctx context.Context) {
	t.budgets = RecomputeSpending(t.budgets, t.expenses)
	t.persist(ctx, CollectionBudgets, t.budgets)
}

func (t *Tracker) refreshHealth() {
	t.health = t.scorer.Compute(t.expenses, t.investments, t.goals, t.now())
}

// --- Expenses ---

func (t *Tracker) AddExpense(ctx context.Context, e core.Expense) error {
	if err := e.Validate(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	t.expenses = append(t.expenses, e)
	t.persist(ctx, CollectionExpenses, t.expenses)
	t.refreshSpending(ctx)
	t.refreshHealth()
	return nil
}

// UpdateExpense replaces the record with the matching id.
func (t *Tracker) UpdateExpense(ctx context.Context, e core.Expense) error {
	if err := e.Validate(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	i := indexByID(t.expenses, e.ID, func(x core.Expense) uuid.UUID { return x.ID })
	if i < 0 {
		return ErrNotFound
	}
	t.expenses[i] = e
	t.persist(ctx, CollectionExpenses, t.expenses)
	t.refreshSpending(ctx)
	t.refreshHealth()
	return nil
}

func (t *Tracker) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := indexByID(t.expenses, id, func(x core.Expense) uuid.UUID { return x.ID })
	if i < 0 {
		return ErrNotFound
	}
	t.expenses = append(t.expenses[:i], t.expenses[i+1:]...)
	t.persist(ctx, CollectionExpenses, t.expenses)
	t.refreshSpending(ctx)
	t.refreshHealth()
	return nil
}

// --- Investments ---

func (t *Tracker) AddInvestment(ctx context.Context, inv core.Investment) error {
	if err := inv.Validate(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	t.investments = append(t.investments, inv)
	t.persist(ctx, CollectionInvestments, t.investments)
	t.refreshHealth()
	return nil
}

func (t *Tracker) UpdateInvestment(ctx context.Context, inv core.Investment) error {
	if err := inv.Validate(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	i := indexByID(t.investments, inv.ID, func(x core.Investment) uuid.UUID { return x.ID })
	if i < 0 {
		return ErrNotFound
	}
	t.investments[i] = inv
	t.persist(ctx, CollectionInvestments, t.investments)
	t.refreshHealth()
	return nil
}

func (t *Tracker) DeleteInvestment(ctx context.Context, id uuid.UUID) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := indexByID(t.investments, id, func(x core.Investment) uuid.UUID { return x.ID })
	if i < 0 {
		return ErrNotFound
	}
	t.investments = append(t.investments[:i], t.investments[i+1:]...)
	t.persist(ctx, CollectionInvestments, t.investments)
	t.refreshHealth()
	return nil
}

// UpdateInvestmentPrice sets the current price of one holding.
func (t *Tracker) UpdateInvestmentPrice(ctx context.Context, id uuid.UUID, price decimal.Decimal) error {
	if price.IsNegative() {
		return core.ErrInvalidAmount
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	i := indexByID(t.investments, id, func(x core.Investment) uuid.UUID { return x.ID })
	if i < 0 {
		return ErrNotFound
	}
	t.investments[i].CurrentPrice = price
	t.persist(ctx, CollectionInvestments, t.investments)
	t.refreshHealth()
	return nil
}

// --- Budgets ---

func (t *Tracker) AddBudget(ctx context.Context, b core.Budget) error {
	if err := b.Validate(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	t.budgets = append(t.budgets, b)
	t.refreshSpending(ctx)
	return nil
}

func (t *Tracker) UpdateBudget(ctx context.Context, b core.Budget) error {
	if err := b.Validate(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	i := indexByID(t.budgets, b.ID, func(x core.Budget) uuid.UUID { return x.ID })
	if i < 0 {
		return ErrNotFound
	}
	t.budgets[i] = b
	t.refreshSpending(ctx)
	return nil
}

func (t *Tracker) DeleteBudget(ctx context.Context, id uuid.UUID) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := indexByID(t.budgets, id, func(x core.Budget) uuid.UUID { return x.ID })
	if i < 0 {
		return ErrNotFound
	}
	t.budgets = append(t.budgets[:i], t.budgets[i+1:]...)
	t.persist(ctx, CollectionBudgets, t.budgets)
	return nil
}

// ToggleBudgetActive flips the active flag. Re-activating a budget
// immediately rebuilds its spend totals.
func (t *Tracker) ToggleBudgetActive(ctx context.Context, id uuid.UUID) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := indexByID(t.budgets, id, func(x core.Budget) uuid.UUID { return x.ID })
	if i < 0 {
		return ErrNotFound
	}
	t.budgets[i].IsActive = !t.budgets[i].IsActive
	t.refreshSpending(ctx)
	return nil
}

// --- Savings goals ---

func (t *Tracker) AddGoal(ctx context.Context, g core.SavingsGoal) error {
	if err := g.Validate(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	t.goals = append(t.goals, g)
	t.persist(ctx, CollectionGoals, t.goals)
	t.refreshHealth()
	return nil
}

func (t *Tracker) UpdateGoal(ctx context.Context, g core.SavingsGoal) error {
	if err := g.Validate(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	i := indexByID(t.goals, g.ID, func(x core.SavingsGoal) uuid.UUID { return x.ID })
	if i < 0 {
		return ErrNotFound
	}
	t.goals[i] = g
	t.persist(ctx, CollectionGoals, t.goals)
	t.refreshHealth()
	return nil
}

func (t *Tracker) DeleteGoal(ctx context.Context, id uuid.UUID) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := indexByID(t.goals, id, func(x core.SavingsGoal) uuid.UUID { return x.ID })
	if i < 0 {
		return ErrNotFound
	}
	t.goals = append(t.goals[:i], t.goals[i+1:]...)
	t.persist(ctx, CollectionGoals, t.goals)
	t.refreshHealth()
	return nil
}

func (t *Tracker) ArchiveGoal(ctx context.Context, id uuid.UUID) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := indexByID(t.goals, id, func(x core.SavingsGoal) uuid.UUID { return x.ID })
	if i < 0 {
		return ErrNotFound
	}
	t.goals[i].IsArchived = true
	t.persist(ctx, CollectionGoals, t.goals)
	return nil
}

// AddContribution applies a contribution to the goal and returns the
// created record.
func (t *Tracker) AddContribution(ctx context.Context, goalID uuid.UUID, amount decimal.Decimal, note string, method core.ContributionMethod) (core.SavingsContribution, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := indexByID(t.goals, goalID, func(x core.SavingsGoal) uuid.UUID { return x.ID })
	if i < 0 {
		return core.SavingsContribution{}, ErrNotFound
	}
	contribution, err := t.goals[i].AddContribution(amount, note, method, t.now())
	if err != nil {
		return core.SavingsContribution{}, err
	}
	t.persist(ctx, CollectionGoals, t.goals)
	t.refreshHealth()
	return contribution, nil
}

func (t *Tracker) AddMilestone(ctx context.Context, goalID uuid.UUID, milestone core.SavingsMilestone) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := indexByID(t.goals, goalID, func(x core.SavingsGoal) uuid.UUID { return x.ID })
	if i < 0 {
		return ErrNotFound
	}
	t.goals[i].AddMilestone(milestone, t.now())
	t.persist(ctx, CollectionGoals, t.goals)
	return nil
}

// --- Bill reminders ---

func (t *Tracker) AddBill(ctx context.Context, b core.BillReminder) error {
	if err := b.Validate(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	t.bills = append(t.bills, b)
	t.persist(ctx, CollectionBills, t.bills)
	return nil
}

func (t *Tracker) UpdateBill(ctx context.Context, b core.BillReminder) error {
	if err := b.Validate(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	i := indexByID(t.bills, b.ID, func(x core.BillReminder) uuid.UUID { return x.ID })
	if i < 0 {
		return ErrNotFound
	}
	t.bills[i] = b
	t.persist(ctx, CollectionBills, t.bills)
	return nil
}

func (t *Tracker) DeleteBill(ctx context.Context, id uuid.UUID) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := indexByID(t.bills, id, func(x core.BillReminder) uuid.UUID { return x.ID })
	if i < 0 {
		return ErrNotFound
	}
	t.bills = append(t.bills[:i], t.bills[i+1:]...)
	t.persist(ctx, CollectionBills, t.bills)
	return nil
}

// MarkBillPaid records a payment dated now. One-time bills stay paid;
// recurring bills advance their due date through NextDueDate.
func (t *Tracker) MarkBillPaid(ctx context.Context, id uuid.UUID) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := indexByID(t.bills, id, func(x core.BillReminder) uuid.UUID { return x.ID })
	if i < 0 {
		return ErrNotFound
	}
	paidAt := t.now()
	t.bills[i].IsPaid = true
	t.bills[i].LastPaidDate = &paidAt
	t.persist(ctx, CollectionBills, t.bills)
	return nil
}

func (t *Tracker) ToggleBillEnabled(ctx context.Context, id uuid.UUID) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := indexByID(t.bills, id, func(x core.BillReminder) uuid.UUID { return x.ID })
	if i < 0 {
		return ErrNotFound
	}
	t.bills[i].IsEnabled = !t.bills[i].IsEnabled
	t.persist(ctx, CollectionBills, t.bills)
	return nil
}

// --- Read API ---

// Expenses returns a copy of the expense collection.
func (t *Tracker) Expenses() []core.Expense {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]core.Expense(nil), t.expenses...)
}

func (t *Tracker) Investments() []core.Investment {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]core.Investment(nil), t.investments...)
}

// Budgets returns a snapshot with its own category slices, so callers
// cannot write through to tracker state.
func (t *Tracker) Budgets() []core.Budget {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]core.Budget, len(t.budgets))
	for i, b := range t.budgets {
		out[i] = b
		out[i].Categories = append([]core.BudgetCategory(nil), b.Categories...)
	}
	return out
}

// Goals returns a snapshot with its own milestone and contribution
// slices, so callers cannot write through to tracker state.
func (t *Tracker) Goals() []core.SavingsGoal {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]core.SavingsGoal, len(t.goals))
	for i, g := range t.goals {
		out[i] = g
		out[i].Milestones = append([]core.SavingsMilestone(nil), g.Milestones...)
		out[i].Contributions = append([]core.SavingsContribution(nil), g.Contributions...)
	}
	return out
}

func (t *Tracker) Bills() []core.BillReminder {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]core.BillReminder(nil), t.bills...)
}

// Portfolio is derived on demand so it never goes stale.
func (t *Tracker) Portfolio() core.Portfolio {
	return core.Portfolio{Investments: t.Investments()}
}

func (t *Tracker) HealthScore() core.FinancialHealthScore {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.health
}

func (t *Tracker) ExpenseSummary() core.ExpenseSummary {
	t.mu.Lock()
	defer t.mu.Unlock()
	return core.NewExpenseSummary(t.expenses, t.now())
}

func (t *Tracker) BudgetSummary() core.BudgetSummary {
	t.mu.Lock()
	defer t.mu.Unlock()
	return core.NewBudgetSummary(t.budgets, t.now())
}

func (t *Tracker) SavingsSummary() core.SavingsSummary {
	t.mu.Lock()
	defer t.mu.Unlock()
	return core.NewSavingsSummary(t.goals, t.now())
}

// ExpensesByPeriod returns the expenses inside the named window, in
// insertion order.
func (t *Tracker) ExpensesByPeriod(period core.TimePeriod) []core.Expense {
	t.mu.Lock()
	defer t.mu.Unlock()
	return core.FilterByPeriod(append([]core.Expense(nil), t.expenses...), period, t.now())
}

func (t *Tracker) SpendingInsight() core.SpendingInsight {
	t.mu.Lock()
	defer t.mu.Unlock()
	return core.NewSpendingInsight(t.expenses, t.now())
}

func indexByID[T any](items []T, id uuid.UUID, idOf func(T) uuid.UUID) int {
	for i, item := range items {
		if idOf(item) == id {
			return i
		}
	}
	return -1
}
