package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"fintrack/internal/config"
	"fintrack/internal/log"
	"fintrack/internal/services"
	"fintrack/internal/storage"
)

func main() {
	// Load .env file for local development (ignore errors in production)
	_ = godotenv.Load()

	cfg := config.Load()

	logger := log.New(log.Config{
		Level:     log.ParseLevel(cfg.LogLevel),
		Component: log.ComponentApp,
	})
	logger.SetDefault()

	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}

	ctx := context.Background()

	var store services.Storage
	switch cfg.DataBackend {
	case "sqlite":
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath, logger)
		if err != nil {
			logger.Error("Failed to initialize SQLite repository",
				log.FieldError, err, log.FieldDBPath, cfg.SQLiteDBPath)
			os.Exit(1)
		}
		store = repo
		logger.Info("Initialized sqlite backend", log.FieldDBPath, cfg.SQLiteDBPath)
	default:
		store = storage.NewMemoryStorage()
		logger.Info("Initialized memory backend")
	}
	defer store.Close()

	scorer := services.HealthScorer{
		MonthlyIncome: decimal.NewFromFloat(cfg.MonthlyIncome),
		TotalDebt:     decimal.NewFromFloat(cfg.TotalDebt),
	}

	tracker, err := services.NewTracker(ctx, store, scorer, logger)
	if err != nil {
		logger.Error("Failed to initialize tracker", log.FieldError, err)
		os.Exit(1)
	}

	printDashboard(tracker)
}

func printDashboard(tracker *services.Tracker) {
	expenses := tracker.ExpenseSummary()
	fmt.Println("Spending")
	fmt.Printf("  total:   %s\n", expenses.TotalExpenses.StringFixed(2))
	fmt.Printf("  month:   %s\n", expenses.MonthlyExpenses.StringFixed(2))
	fmt.Printf("  week:    %s\n", expenses.WeeklyExpenses.StringFixed(2))
	fmt.Printf("  today:   %s\n", expenses.DailyExpenses.StringFixed(2))

	insight := tracker.SpendingInsight()
	if insight.PreviousMonth.IsPositive() {
		fmt.Printf("  vs last month: %+.1f%%\n", insight.ChangePercent)
	}

	budgets := tracker.BudgetSummary()
	if budgets.TotalBudgets > 0 {
		fmt.Println("Budgets")
		fmt.Printf("  active:  %d of %d\n", budgets.ActiveBudgets, budgets.TotalBudgets)
		fmt.Printf("  spent:   %s of %s (%.0f%%)\n",
			budgets.TotalSpent.StringFixed(2),
			budgets.TotalBudgetAmount.StringFixed(2),
			budgets.OverallProgress()*100)
		if budgets.CategoriesOverBudget > 0 {
			fmt.Printf("  over budget categories: %d\n", budgets.CategoriesOverBudget)
		}
	}

	savings := tracker.SavingsSummary()
	if savings.TotalGoals > 0 {
		fmt.Println("Savings goals")
		fmt.Printf("  saved:   %s of %s (%.0f%%)\n",
			savings.TotalSavedAmount.StringFixed(2),
			savings.TotalTargetAmount.StringFixed(2),
			savings.OverallProgress()*100)
		fmt.Printf("  completed: %d, overdue: %d, active: %d\n",
			savings.CompletedGoals, savings.OverdueGoals, savings.ActiveGoals)
	}

	portfolio := tracker.Portfolio()
	if len(portfolio.Investments) > 0 {
		fmt.Println("Portfolio")
		fmt.Printf("  value:   %s (%+.2f%%)\n",
			portfolio.TotalValue().StringFixed(2), portfolio.TotalGainLossPercent())
	}

	now := time.Now()
	dueSoon := 0
	for _, bill := range tracker.Bills() {
		if bill.IsEnabled && (bill.IsDueSoon(now) || bill.IsDueToday(now) || bill.IsOverdue(now)) {
			dueSoon++
		}
	}
	if dueSoon > 0 {
		fmt.Printf("Bills needing attention: %d\n", dueSoon)
	}

	health := tracker.HealthScore()
	fmt.Printf("Financial health: %d/100 (%s)\n", health.OverallScore, health.ScoreCategory())
	for _, rec := range health.Recommendations() {
		fmt.Printf("  - %s\n", rec)
	}
}
