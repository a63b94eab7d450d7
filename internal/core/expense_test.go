package core

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpenseValidate(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		expense Expense
		wantErr error
	}{
		{
			name:    "valid",
			expense: NewExpense("groceries", decimal.NewFromFloat(42.50), CategoryFood, now),
		},
		{
			name:    "zero amount is valid",
			expense: NewExpense("freebie", decimal.Zero, CategoryOther, now),
		},
		{
			name:    "empty title",
			expense: NewExpense("   ", decimal.NewFromInt(10), CategoryFood, now),
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "negative amount",
			expense: NewExpense("refund", decimal.NewFromInt(-5), CategoryFood, now),
			wantErr: ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.expense.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewExpenseAssignsID(t *testing.T) {
	a := NewExpense("a", decimal.NewFromInt(1), CategoryFood, time.Now())
	b := NewExpense("b", decimal.NewFromInt(1), CategoryFood, time.Now())

	require.NotEqual(t, a.ID, b.ID)
}

func TestExpenseCategoriesComplete(t *testing.T) {
	assert.Len(t, ExpenseCategories(), 11)
}
