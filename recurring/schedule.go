// Package recurring decides when recurring transaction templates spawn new
// instances and runs the once-daily sweep over all templates.
package recurring

import (
	"finance-tracker/api/models"
	"time"

	"github.com/google/uuid"
)

// IsDue reports whether a recurring template should materialize a new
// instance today. Rules per frequency, all on calendar dates:
//
//	daily:   today differs from the template's date
//	weekly:  same weekday as the template's date, strictly after it
//	monthly: same day-of-month, strictly after (months too short never fire)
//	yearly:  same month and day-of-month, strictly after
//	once:    never
//
// An end date in the past disables the template permanently.
func IsDue(tx *models.Transaction, today time.Time) bool {
	r := tx.Recurrence
	if r == nil || !r.Enabled {
		return false
	}
	if r.EndDate != nil && dateOnly(*r.EndDate).Before(dateOnly(today)) {
		return false
	}

	ref := tx.Date
	switch r.Frequency {
	case models.FrequencyDaily:
		return !sameDate(ref, today)
	case models.FrequencyWeekly:
		return today.Weekday() == ref.Weekday() && afterDate(today, ref)
	case models.FrequencyMonthly:
		return today.Day() == ref.Day() && afterDate(today, ref)
	case models.FrequencyYearly:
		return today.Month() == ref.Month() && today.Day() == ref.Day() && afterDate(today, ref)
	default:
		return false
	}
}

// Materialize builds the transaction instance a due template spawns today.
// The template itself is untouched.
func Materialize(tx *models.Transaction, today time.Time) *models.Transaction {
	recurrence := *tx.Recurrence
	return &models.Transaction{
		ID:         uuid.NewString(),
		Owner:      tx.Owner,
		Kind:       tx.Kind,
		Category:   tx.Category,
		Amount:     tx.Amount,
		Date:       today,
		Note:       tx.Note + " (recurring)",
		Recurrence: &recurrence,
		CreatedAt:  time.Now(),
	}
}

// firedToday reports whether the sweep already materialized this template
// on the given day. The last-run stamp is what keeps the daily frequency
// to one instance per day, and any frequency safe under a re-run.
func firedToday(tx *models.Transaction, today time.Time) bool {
	r := tx.Recurrence
	return r != nil && r.LastRunDate != nil && sameDate(*r.LastRunDate, today)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sameDate(a, b time.Time) bool {
	return dateOnly(a).Equal(dateOnly(b))
}

func afterDate(a, b time.Time) bool {
	return dateOnly(a).After(dateOnly(b))
}
