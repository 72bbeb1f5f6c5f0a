package mongodb

import (
	"context"
	"finance-tracker/api/models"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Integration test against a live MongoDB; skipped unless MONGO_URI is set.
func TestUpsertBudgetKeepsOneDocumentPerKey(t *testing.T) {
	if os.Getenv("MONGO_URI") == "" {
		t.Skip("MONGO_URI not set, skipping integration test")
	}
	require.NoError(t, InitMongoDB())
	defer CloseMongoDB()

	ctx := context.Background()
	owner := "test-" + uuid.NewString()

	first, err := UpsertBudget(ctx, owner, "Food", 500, models.PeriodMonthly)
	require.NoError(t, err)
	defer DeleteBudget(ctx, owner, first.ID)

	// Writing the same (owner, category, period) again must update the
	// existing document, not insert a second one.
	second, err := UpsertBudget(ctx, owner, "Food", 800, models.PeriodMonthly)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 800.0, second.Amount)

	budgets, err := GetBudgetsByOwner(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, budgets, 1)

	// A different period is a different key and gets its own document.
	yearly, err := UpsertBudget(ctx, owner, "Food", 800, models.PeriodYearly)
	require.NoError(t, err)
	defer DeleteBudget(ctx, owner, yearly.ID)
	assert.NotEqual(t, first.ID, yearly.ID)

	budgets, err = GetBudgetsByOwner(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, budgets, 2)
}
