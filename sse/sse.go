// Package sse keeps the in-memory registry of live notification streams,
// one per connected owner. Pushes are best-effort: a slow or absent client
// never blocks the dispatcher.
package sse

import (
	"finance-tracker/api/logger"
	"finance-tracker/api/models"
	"sync"

	"go.uber.org/zap"
)

type ClientStream struct {
	Notifications chan models.Notification
	Done          chan struct{}
}

var (
	connections = make(map[string]*ClientStream)
	mu          sync.RWMutex
)

// Register creates (or replaces) the stream for an owner and returns it.
func Register(owner string) *ClientStream {
	stream := &ClientStream{
		Notifications: make(chan models.Notification, 16),
		Done:          make(chan struct{}),
	}

	mu.Lock()
	if old, ok := connections[owner]; ok {
		close(old.Done)
	}
	connections[owner] = stream
	mu.Unlock()

	return stream
}

// Unregister drops the owner's stream if it is still the given one.
func Unregister(owner string, stream *ClientStream) {
	mu.Lock()
	if connections[owner] == stream {
		delete(connections, owner)
	}
	mu.Unlock()
}

// Push delivers a notification to the owner's live stream, dropping it when
// no client is connected or the buffer is full.
func Push(owner string, n models.Notification) {
	mu.RLock()
	stream, ok := connections[owner]
	mu.RUnlock()
	if !ok {
		return
	}

	select {
	case stream.Notifications <- n:
	default:
		logger.Get().Warn("dropping live notification, stream buffer full",
			zap.String("owner", owner),
			zap.String("notification_id", n.ID))
	}
}
