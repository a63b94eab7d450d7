package core

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrEmptyTitle    = errors.New("empty title")
)

// ExpenseCategory classifies a single expense.
type ExpenseCategory string

const (
	CategoryFood           ExpenseCategory = "Food & Dining"
	CategoryTransportation ExpenseCategory = "Transportation"
	CategoryShopping       ExpenseCategory = "Shopping"
	CategoryEntertainment  ExpenseCategory = "Entertainment"
	CategoryBills          ExpenseCategory = "Bills & Utilities"
	CategoryHealthcare     ExpenseCategory = "Healthcare"
	CategoryEducation      ExpenseCategory = "Education"
	CategoryTravel         ExpenseCategory = "Travel"
	CategoryLifestyle      ExpenseCategory = "Lifestyle"
	CategoryInvestment     ExpenseCategory = "Investment"
	CategoryOther          ExpenseCategory = "Other"
)

// ExpenseCategories returns every category in display order.
func ExpenseCategories() []ExpenseCategory {
	return []ExpenseCategory{
		CategoryFood, CategoryTransportation, CategoryShopping,
		CategoryEntertainment, CategoryBills, CategoryHealthcare,
		CategoryEducation, CategoryTravel, CategoryLifestyle,
		CategoryInvestment, CategoryOther,
	}
}

// Expense is a single spending record. It is immutable once created; edits
// replace the whole record by id.
type Expense struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Amount      decimal.Decimal `json:"amount"`
	Category    ExpenseCategory `json:"category"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Tags        []string        `json:"tags,omitempty"`
	IsRecurring bool            `json:"is_recurring"`
}

// NewExpense builds an expense with a fresh id.
func NewExpense(title string, amount decimal.Decimal, category ExpenseCategory, date time.Time) Expense {
	return Expense{
		ID:       uuid.New(),
		Title:    title,
		Amount:   amount,
		Category: category,
		Date:     date,
	}
}

func (e Expense) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return ErrEmptyTitle
	}
	if e.Amount.IsNegative() {
		return ErrInvalidAmount
	}
	return nil
}
