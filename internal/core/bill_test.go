package core

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBillFrequencyNextDate(t *testing.T) {
	from := date(2025, time.January, 15)

	tests := []struct {
		frequency BillFrequency
		want      time.Time
	}{
		{BillWeekly, date(2025, time.January, 22)},
		{BillBiweekly, date(2025, time.January, 29)},
		{BillMonthly, date(2025, time.February, 15)},
		{BillQuarterly, date(2025, time.April, 15)},
		{BillSemiannual, date(2025, time.July, 15)},
		{BillAnnual, date(2026, time.January, 15)},
		{BillOneTime, from},
	}

	for _, tt := range tests {
		t.Run(string(tt.frequency), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.frequency.NextDate(from))
		})
	}
}

func TestBillReminderDueDates(t *testing.T) {
	now := date(2025, time.June, 10)
	bill := NewBillReminder("Rent", decimal.NewFromInt(900), date(2025, time.June, 15), BillMonthly, CategoryBills, 3)

	assert.Equal(t, date(2025, time.June, 15), bill.NextDueDate())
	assert.Equal(t, 5, bill.DaysUntilDue(now))
	assert.False(t, bill.IsDueSoon(now))
	assert.Equal(t, "On Track", bill.StatusText(now))

	// Inside the reminder window.
	assert.True(t, bill.IsDueSoon(date(2025, time.June, 13)))
	assert.Equal(t, "Due Soon", bill.StatusText(date(2025, time.June, 13)))

	assert.True(t, bill.IsDueToday(date(2025, time.June, 15)))
	assert.Equal(t, "Due Today", bill.StatusText(date(2025, time.June, 15)))

	assert.True(t, bill.IsOverdue(date(2025, time.June, 16)))
	assert.Equal(t, "Overdue", bill.StatusText(date(2025, time.June, 16)))
}

func TestBillReminderPaidAdvancesDueDate(t *testing.T) {
	bill := NewBillReminder("Internet", decimal.NewFromInt(40), date(2025, time.June, 1), BillMonthly, CategoryBills, 3)

	paidOn := date(2025, time.June, 1)
	bill.IsPaid = true
	bill.LastPaidDate = &paidOn

	assert.Equal(t, date(2025, time.July, 1), bill.NextDueDate())
	assert.Equal(t, "On Track", bill.StatusText(date(2025, time.June, 2)))
}

func TestBillReminderValidate(t *testing.T) {
	bill := NewBillReminder("", decimal.NewFromInt(40), time.Now(), BillMonthly, CategoryBills, 3)
	assert.ErrorIs(t, bill.Validate(), ErrEmptyTitle)

	bill = NewBillReminder("Water", decimal.NewFromInt(-1), time.Now(), BillMonthly, CategoryBills, 3)
	assert.ErrorIs(t, bill.Validate(), ErrInvalidAmount)
}
