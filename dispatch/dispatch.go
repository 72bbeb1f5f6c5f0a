// Package dispatch turns domain events into persisted notifications and
// live pushes. Callers treat it as fire-and-forget: failures are logged and
// counted, never surfaced into the request that produced the event.
package dispatch

import (
	"context"
	"encoding/json"
	"finance-tracker/api/logger"
	"finance-tracker/api/models"
	"finance-tracker/api/sse"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NotificationStore is the persistence surface the dispatcher writes to.
type NotificationStore interface {
	CreateNotification(ctx context.Context, n *models.Notification) error
}

// Producer publishes a serialized notification to a topic. Nil means run
// broker-less and persist inline.
type Producer func(topic string, message []byte) error

type Dispatcher struct {
	store    NotificationStore
	produce  Producer
	topic    string

	dispatched uint64
	failed     uint64
}

func New(store NotificationStore) *Dispatcher {
	return &Dispatcher{store: store}
}

// UseProducer routes dispatched notifications through a broker topic
// instead of writing them inline. HandleMessage must then be wired as the
// topic's consumer.
func (d *Dispatcher) UseProducer(produce Producer, topic string) {
	d.produce = produce
	d.topic = topic
}

// Dispatch creates one notification per event. Errors are logged per event;
// remaining events still dispatch.
func (d *Dispatcher) Dispatch(ctx context.Context, events ...models.Event) {
	for _, ev := range events {
		n := &models.Notification{
			ID:        uuid.NewString(),
			Owner:     ev.Owner,
			Kind:      ev.Kind,
			Message:   ev.Message,
			Read:      false,
			CreatedAt: time.Now(),
			RelatedID: ev.RelatedID,
		}

		if err := d.deliver(ctx, n); err != nil {
			atomic.AddUint64(&d.failed, 1)
			logger.Get().Error("failed to dispatch notification",
				zap.String("owner", n.Owner),
				zap.String("kind", string(n.Kind)),
				zap.Error(err))
			continue
		}
		atomic.AddUint64(&d.dispatched, 1)
	}
}

func (d *Dispatcher) deliver(ctx context.Context, n *models.Notification) error {
	if d.produce != nil {
		payload, err := json.Marshal(n)
		if err != nil {
			return err
		}
		return d.produce(d.topic, payload)
	}
	return d.persist(ctx, n)
}

func (d *Dispatcher) persist(ctx context.Context, n *models.Notification) error {
	if err := d.store.CreateNotification(ctx, n); err != nil {
		return err
	}
	sse.Push(n.Owner, *n)
	return nil
}

// HandleMessage consumes a serialized notification off the broker and
// persists it. Wired as the consumer callback when a producer is in use.
func (d *Dispatcher) HandleMessage(value []byte) {
	var n models.Notification
	if err := json.Unmarshal(value, &n); err != nil {
		logger.Get().Error("failed to unmarshal notification message",
			zap.Error(err))
		return
	}

	if err := d.persist(context.Background(), &n); err != nil {
		atomic.AddUint64(&d.failed, 1)
		logger.Get().Error("failed to persist consumed notification",
			zap.String("owner", n.Owner),
			zap.Error(err))
	}
}

// Counts reports how many notifications were dispatched and how many
// failed since startup.
func (d *Dispatcher) Counts() (dispatched, failed uint64) {
	return atomic.LoadUint64(&d.dispatched), atomic.LoadUint64(&d.failed)
}
