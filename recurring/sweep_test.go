package recurring

import (
	"context"
	"errors"
	"finance-tracker/api/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	templates []models.Transaction
	created   []models.Transaction
	stamped   map[string]time.Time

	failCreateFor string
}

func newFakeStore(templates ...models.Transaction) *fakeStore {
	return &fakeStore{templates: templates, stamped: map[string]time.Time{}}
}

func (s *fakeStore) GetRecurringTemplates(ctx context.Context) ([]models.Transaction, error) {
	return s.templates, nil
}

func (s *fakeStore) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	if tx.Owner == s.failCreateFor {
		return errors.New("insert failed")
	}
	s.created = append(s.created, *tx)
	return nil
}

func (s *fakeStore) StampRecurrence(ctx context.Context, id string, ranOn time.Time) error {
	s.stamped[id] = ranOn
	return nil
}

func monthlyTemplate(id, owner string, date time.Time) models.Transaction {
	return models.Transaction{
		ID:       id,
		Owner:    owner,
		Kind:     models.KindExpense,
		Category: "Rent",
		Amount:   900,
		Date:     date,
		Note:     "apartment",
		Recurrence: &models.Recurrence{
			Enabled:   true,
			Frequency: models.FrequencyMonthly,
		},
	}
}

func TestSweepMaterializesDueTemplates(t *testing.T) {
	today := day(2024, 2, 15)
	store := newFakeStore(
		monthlyTemplate("tmpl-1", "user-1", day(2024, 1, 15)),
		monthlyTemplate("tmpl-2", "user-2", day(2024, 1, 10)), // not due today
	)

	created, err := NewSweeper(store).Run(context.Background(), today)
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	require.Len(t, store.created, 1)
	assert.Equal(t, "user-1", store.created[0].Owner)
	assert.Equal(t, today, store.created[0].Date)
	assert.Equal(t, "apartment (recurring)", store.created[0].Note)

	assert.Contains(t, store.stamped, "tmpl-1")
	assert.NotContains(t, store.stamped, "tmpl-2")
}

func TestSweepIsolatesTemplateFailures(t *testing.T) {
	today := day(2024, 2, 15)
	store := newFakeStore(
		monthlyTemplate("tmpl-1", "broken-user", day(2024, 1, 15)),
		monthlyTemplate("tmpl-2", "user-2", day(2024, 1, 15)),
	)
	store.failCreateFor = "broken-user"

	created, err := NewSweeper(store).Run(context.Background(), today)
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	// The failing template is not stamped, so the next sweep retries it.
	assert.NotContains(t, store.stamped, "tmpl-1")
	assert.Contains(t, store.stamped, "tmpl-2")
}

func TestSweepSkipsAlreadyFiredToday(t *testing.T) {
	today := day(2024, 2, 15)
	tmpl := monthlyTemplate("tmpl-1", "user-1", day(2024, 1, 15))
	stamp := day(2024, 2, 15)
	tmpl.Recurrence.LastRunDate = &stamp
	store := newFakeStore(tmpl)

	created, err := NewSweeper(store).Run(context.Background(), today)
	require.NoError(t, err)
	assert.Zero(t, created)
	assert.Empty(t, store.created)
}

func TestSweepDailyOncePerDay(t *testing.T) {
	// A daily template fires on day 2, gets stamped, and a same-day re-run
	// creates nothing more.
	tmpl := monthlyTemplate("tmpl-1", "user-1", day(2024, 3, 1))
	tmpl.Recurrence.Frequency = models.FrequencyDaily
	store := newFakeStore(tmpl)
	sweeper := NewSweeper(store)

	today := day(2024, 3, 2)
	created, err := NewSweeper(store).Run(context.Background(), today)
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	// Re-run with the stamp applied, as the store would return it.
	stamp := store.stamped["tmpl-1"]
	store.templates[0].Recurrence.LastRunDate = &stamp
	created, err = sweeper.Run(context.Background(), today)
	require.NoError(t, err)
	assert.Zero(t, created)
	assert.Len(t, store.created, 1)
}
