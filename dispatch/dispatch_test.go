package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"finance-tracker/api/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	saved   []models.Notification
	failing bool
}

func (s *fakeStore) CreateNotification(ctx context.Context, n *models.Notification) error {
	if s.failing {
		return errors.New("store unavailable")
	}
	s.saved = append(s.saved, *n)
	return nil
}

func TestDispatchPersistsInline(t *testing.T) {
	store := &fakeStore{}
	d := New(store)

	d.Dispatch(context.Background(),
		models.Event{Owner: "user-1", Kind: models.NotificationBudget, Message: "over"},
		models.Event{Owner: "user-1", Kind: models.NotificationGoal, Message: "done", RelatedID: "goal-1"},
	)

	require.Len(t, store.saved, 2)
	assert.NotEmpty(t, store.saved[0].ID)
	assert.False(t, store.saved[0].Read)
	assert.False(t, store.saved[0].CreatedAt.IsZero())
	assert.Equal(t, "goal-1", store.saved[1].RelatedID)

	dispatched, failed := d.Counts()
	assert.EqualValues(t, 2, dispatched)
	assert.Zero(t, failed)
}

func TestDispatchRoutesThroughProducer(t *testing.T) {
	store := &fakeStore{}
	d := New(store)

	var produced [][]byte
	d.UseProducer(func(topic string, message []byte) error {
		assert.Equal(t, "notification_events", topic)
		produced = append(produced, message)
		return nil
	}, "notification_events")

	d.Dispatch(context.Background(),
		models.Event{Owner: "user-1", Kind: models.NotificationBill, Message: "due soon"})

	require.Len(t, produced, 1)
	assert.Empty(t, store.saved, "producer path must not write inline")

	// The consumer side lands it in the store.
	d.HandleMessage(produced[0])
	require.Len(t, store.saved, 1)
	assert.Equal(t, models.NotificationBill, store.saved[0].Kind)

	var n models.Notification
	require.NoError(t, json.Unmarshal(produced[0], &n))
	assert.Equal(t, store.saved[0].ID, n.ID)
}

func TestDispatchIsolatesFailures(t *testing.T) {
	store := &fakeStore{failing: true}
	d := New(store)

	d.Dispatch(context.Background(),
		models.Event{Owner: "user-1", Kind: models.NotificationBudget, Message: "x"})

	dispatched, failed := d.Counts()
	assert.Zero(t, dispatched)
	assert.EqualValues(t, 1, failed)
}
