// Package alerts holds the threshold-crossing and bill-due decision logic.
// Everything here is pure: functions take already-loaded values and return
// events for the dispatcher to act on.
package alerts

import (
	"finance-tracker/api/models"
	"fmt"
)

// DefaultThresholds are the fractions of a target watched for both budget
// spend and goal progress, in ascending order.
var DefaultThresholds = []float64{0.8, 1.0}

// CheckCrossing reports which thresholds the change from prior to
// prior+delta crossed, in ascending order. A threshold f fires iff the new
// total reaches target*f and the prior total was still below it, so a total
// already past a threshold never re-fires it. A non-positive target or
// delta crosses nothing.
func CheckCrossing(prior, delta, target float64, thresholds []float64) []float64 {
	if target <= 0 || delta <= 0 {
		return nil
	}

	var crossed []float64
	for _, f := range thresholds {
		mark := target * f
		if prior+delta >= mark && prior < mark {
			crossed = append(crossed, f)
		}
	}
	return crossed
}

// BudgetEvents evaluates an expense against the category's monthly limit.
// prior is the month-to-date spend before this expense.
func BudgetEvents(owner, category string, prior, amount, limit float64) []models.Event {
	events := []models.Event{}
	for _, f := range CheckCrossing(prior, amount, limit, DefaultThresholds) {
		var message string
		switch f {
		case 1.0:
			message = fmt.Sprintf("You have exceeded your budget for %s", category)
		default:
			message = fmt.Sprintf("You are approaching your budget limit for %s", category)
		}
		events = append(events, models.Event{
			Owner:   owner,
			Kind:    models.NotificationBudget,
			Message: message,
		})
	}
	return events
}

// GoalEvents evaluates a change in a goal's saved amount. prior is the
// saved amount before the change, floored at zero.
func GoalEvents(goal *models.Goal, prior, delta float64) []models.Event {
	if prior < 0 {
		prior = 0
	}

	events := []models.Event{}
	for _, f := range CheckCrossing(prior, delta, goal.TargetAmount, DefaultThresholds) {
		var message string
		switch f {
		case 1.0:
			message = fmt.Sprintf("Congratulations! You have completed your goal: %q", goal.Name)
		default:
			message = fmt.Sprintf("Almost there! You're 80%% towards your goal: %q", goal.Name)
		}
		events = append(events, models.Event{
			Owner:     goal.Owner,
			Kind:      models.NotificationGoal,
			Message:   message,
			RelatedID: goal.ID,
		})
	}
	return events
}
