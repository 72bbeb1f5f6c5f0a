package alerts

import (
	"finance-tracker/api/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCrossingApproachingOnly(t *testing.T) {
	// Food budget of 1000, 750 already spent, new expense of 100: the new
	// total 850 crosses 800 but stays under 1000.
	crossed := CheckCrossing(750, 100, 1000, DefaultThresholds)
	assert.Equal(t, []float64{0.8}, crossed)
}

func TestCheckCrossingExceededOnly(t *testing.T) {
	// 950 already spent: 800 was crossed earlier, so only 1000 fires now.
	crossed := CheckCrossing(950, 100, 1000, DefaultThresholds)
	assert.Equal(t, []float64{1.0}, crossed)
}

func TestCheckCrossingBothInOneStep(t *testing.T) {
	// A single delta past both thresholds fires both, ascending.
	crossed := CheckCrossing(0, 1000, 1000, DefaultThresholds)
	assert.Equal(t, []float64{0.8, 1.0}, crossed)
}

func TestCheckCrossingNeverRefires(t *testing.T) {
	// A total already past a threshold must not re-fire it.
	assert.Empty(t, CheckCrossing(800, 50, 1000, DefaultThresholds))
	assert.Empty(t, CheckCrossing(1200, 500, 1000, DefaultThresholds))
}

func TestCheckCrossingBelowThreshold(t *testing.T) {
	assert.Empty(t, CheckCrossing(100, 100, 1000, DefaultThresholds))
}

func TestCheckCrossingInvalidInput(t *testing.T) {
	// Zero or negative targets and non-positive deltas cross nothing.
	assert.Empty(t, CheckCrossing(500, 600, 0, DefaultThresholds))
	assert.Empty(t, CheckCrossing(500, 600, -10, DefaultThresholds))
	assert.Empty(t, CheckCrossing(750, 0, 1000, DefaultThresholds))
	assert.Empty(t, CheckCrossing(750, -100, 1000, DefaultThresholds))
}

func TestCheckCrossingExactBoundary(t *testing.T) {
	// Landing exactly on the mark counts as a crossing.
	assert.Equal(t, []float64{0.8}, CheckCrossing(700, 100, 1000, DefaultThresholds))
}

func TestBudgetEventsMessages(t *testing.T) {
	events := BudgetEvents("user-1", "Food", 750, 100, 1000)
	require.Len(t, events, 1)
	assert.Equal(t, models.NotificationBudget, events[0].Kind)
	assert.Equal(t, "user-1", events[0].Owner)
	assert.Contains(t, events[0].Message, "approaching your budget limit for Food")

	events = BudgetEvents("user-1", "Food", 950, 100, 1000)
	require.Len(t, events, 1)
	assert.Contains(t, events[0].Message, "exceeded your budget for Food")
}

func TestGoalEventsBothFireInOrder(t *testing.T) {
	goal := &models.Goal{
		ID:           "goal-1",
		Owner:        "user-1",
		Name:         "Emergency fund",
		TargetAmount: 1000,
	}

	events := GoalEvents(goal, 0, 1000)
	require.Len(t, events, 2)
	assert.Contains(t, events[0].Message, "80% towards your goal")
	assert.Contains(t, events[1].Message, "completed your goal")
	for _, ev := range events {
		assert.Equal(t, models.NotificationGoal, ev.Kind)
		assert.Equal(t, "goal-1", ev.RelatedID)
	}
}

func TestGoalEventsFloorsNegativePrior(t *testing.T) {
	goal := &models.Goal{Owner: "user-1", Name: "Trip", TargetAmount: 500}

	events := GoalEvents(goal, -50, 500)
	require.Len(t, events, 2)
}

func TestGoalEventsNoDuplicateCompletion(t *testing.T) {
	goal := &models.Goal{Owner: "user-1", Name: "Trip", TargetAmount: 500}

	// Already complete; further contributions stay quiet.
	assert.Empty(t, GoalEvents(goal, 500, 100))
}
