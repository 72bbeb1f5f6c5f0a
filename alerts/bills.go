package alerts

import (
	"finance-tracker/api/models"
	"fmt"
	"strings"
	"time"
)

// billWindowDays is how far ahead a bill's date may be and still warrant a
// reminder at creation time.
const billWindowDays = 3

// BillReminder returns a reminder event when the transaction is a bill due
// within the reminder window of today. Bills already due (or past due) also
// remind. Returns nil when no reminder is warranted. Runs once, when the
// transaction is created.
func BillReminder(tx *models.Transaction, today time.Time) *models.Event {
	if !strings.EqualFold(tx.Category, "bills") {
		return nil
	}

	due := dateOnly(tx.Date)
	days := int(due.Sub(dateOnly(today)).Hours() / 24)
	if days > billWindowDays {
		return nil
	}

	return &models.Event{
		Owner:     tx.Owner,
		Kind:      models.NotificationBill,
		Message:   fmt.Sprintf("Reminder: Upcoming bill %q due on %s", tx.Category, due.Format("Jan 2, 2006")),
		RelatedID: tx.ID,
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
