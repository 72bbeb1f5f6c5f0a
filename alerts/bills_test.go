package alerts

import (
	"finance-tracker/api/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func billTx(category string, date time.Time) *models.Transaction {
	return &models.Transaction{
		ID:       "tx-1",
		Owner:    "user-1",
		Kind:     models.KindExpense,
		Category: category,
		Amount:   120,
		Date:     date,
	}
}

func TestBillReminderWithinWindow(t *testing.T) {
	today := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

	ev := BillReminder(billTx("Bills", today.AddDate(0, 0, 3)), today)
	require.NotNil(t, ev)
	assert.Equal(t, models.NotificationBill, ev.Kind)
	assert.Equal(t, "tx-1", ev.RelatedID)
	assert.Contains(t, ev.Message, "Mar 13, 2024")
}

func TestBillReminderOutsideWindow(t *testing.T) {
	today := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)
	assert.Nil(t, BillReminder(billTx("Bills", today.AddDate(0, 0, 4)), today))
}

func TestBillReminderPastDueStillFires(t *testing.T) {
	today := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)
	assert.NotNil(t, BillReminder(billTx("bills", today.AddDate(0, 0, -2)), today))
}

func TestBillReminderCaseInsensitiveCategory(t *testing.T) {
	today := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.NotNil(t, BillReminder(billTx("BILLS", today), today))
	assert.Nil(t, BillReminder(billTx("Groceries", today), today))
}

func TestBillReminderIgnoresTimeOfDay(t *testing.T) {
	// Calendar-day distance, not 72 hours: late on the 10th a bill on the
	// 13th is still 3 days out.
	today := time.Date(2024, 3, 10, 23, 55, 0, 0, time.UTC)
	due := time.Date(2024, 3, 13, 0, 5, 0, 0, time.UTC)
	assert.NotNil(t, BillReminder(billTx("Bills", due), today))
}
