package core

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BillFrequency is how often a bill recurs.
type BillFrequency string

const (
	BillWeekly     BillFrequency = "Weekly"
	BillBiweekly   BillFrequency = "Bi-weekly"
	BillMonthly    BillFrequency = "Monthly"
	BillQuarterly  BillFrequency = "Quarterly"
	BillSemiannual BillFrequency = "Semi-annual"
	BillAnnual     BillFrequency = "Annual"
	BillOneTime    BillFrequency = "One-time"
)

// BillFrequencies returns every frequency in display order.
func BillFrequencies() []BillFrequency {
	return []BillFrequency{
		BillWeekly, BillBiweekly, BillMonthly, BillQuarterly,
		BillSemiannual, BillAnnual, BillOneTime,
	}
}

// NextDate returns the occurrence after the given date. One-time bills have
// no next occurrence and return the date unchanged.
func (f BillFrequency) NextDate(from time.Time) time.Time {
	switch f {
	case BillWeekly:
		return from.AddDate(0, 0, 7)
	case BillBiweekly:
		return from.AddDate(0, 0, 14)
	case BillMonthly:
		return from.AddDate(0, 1, 0)
	case BillQuarterly:
		return from.AddDate(0, 3, 0)
	case BillSemiannual:
		return from.AddDate(0, 6, 0)
	case BillAnnual:
		return from.AddDate(1, 0, 0)
	default:
		return from
	}
}

// BillReminder tracks an upcoming bill and when to warn about it.
type BillReminder struct {
	ID           uuid.UUID       `json:"id"`
	Title        string          `json:"title"`
	Amount       decimal.Decimal `json:"amount"`
	DueDate      time.Time       `json:"due_date"`
	Frequency    BillFrequency   `json:"frequency"`
	Category     ExpenseCategory `json:"category"`
	Notes        string          `json:"notes,omitempty"`
	IsPaid       bool            `json:"is_paid"`
	ReminderDays int             `json:"reminder_days"`
	LastPaidDate *time.Time      `json:"last_paid_date,omitempty"`
	IsEnabled    bool            `json:"is_enabled"`
}

// NewBillReminder builds an unpaid, enabled reminder with a fresh id.
func NewBillReminder(title string, amount decimal.Decimal, dueDate time.Time, frequency BillFrequency, category ExpenseCategory, reminderDays int) BillReminder {
	return BillReminder{
		ID:           uuid.New(),
		Title:        title,
		Amount:       amount,
		DueDate:      dueDate,
		Frequency:    frequency,
		Category:     category,
		ReminderDays: reminderDays,
		IsEnabled:    true,
	}
}

func (b BillReminder) Validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return ErrEmptyTitle
	}
	if b.Amount.IsNegative() {
		return ErrInvalidAmount
	}
	return nil
}

// NextDueDate is the upcoming due date: the frequency advanced from the
// last payment when paid, the stated due date otherwise.
func (b BillReminder) NextDueDate() time.Time {
	if b.IsPaid && b.LastPaidDate != nil {
		return b.Frequency.NextDate(*b.LastPaidDate)
	}
	return b.DueDate
}

// DaysUntilDue counts whole days until the next due date; negative once
// overdue.
func (b BillReminder) DaysUntilDue(now time.Time) int {
	return DaysBetween(now, b.NextDueDate())
}

func (b BillReminder) IsOverdue(now time.Time) bool {
	return b.DaysUntilDue(now) < 0
}

func (b BillReminder) IsDueToday(now time.Time) bool {
	return b.DaysUntilDue(now) == 0
}

// IsDueSoon reports whether the bill falls inside its reminder window.
func (b BillReminder) IsDueSoon(now time.Time) bool {
	days := b.DaysUntilDue(now)
	return days > 0 && days <= b.ReminderDays
}

func (b BillReminder) StatusText(now time.Time) string {
	switch {
	case b.IsOverdue(now):
		return "Overdue"
	case b.IsDueToday(now):
		return "Due Today"
	case b.IsDueSoon(now):
		return "Due Soon"
	default:
		return "On Track"
	}
}
