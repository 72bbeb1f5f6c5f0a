package models

import "time"

type NotificationKind string

const (
	NotificationBudget NotificationKind = "budget"
	NotificationGoal   NotificationKind = "goal"
	NotificationBill   NotificationKind = "bill"
)

// Notification is created only by dispatching an Event; after creation the
// read flag is the only field that mutates.
type Notification struct {
	ID        string           `bson:"_id" json:"id"`
	Owner     string           `bson:"owner" json:"owner"`
	Kind      NotificationKind `bson:"kind" json:"kind"`
	Message   string           `bson:"message" json:"message"`
	Read      bool             `bson:"read" json:"read"`
	CreatedAt time.Time        `bson:"created_at" json:"created_at"`
	RelatedID string           `bson:"related_id,omitempty" json:"related_id,omitempty"`
}

// Event is the value the decision components return instead of writing
// notifications themselves. The dispatcher turns events into persisted
// notifications and live pushes.
type Event struct {
	Owner     string           `json:"owner"`
	Kind      NotificationKind `json:"kind"`
	Message   string           `json:"message"`
	RelatedID string           `json:"related_id,omitempty"`
}
