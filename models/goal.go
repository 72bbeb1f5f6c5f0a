package models

import "time"

// Goal is a savings target. SavedAmount is the only regularly mutated field,
// incremented by contributions.
type Goal struct {
	ID           string     `bson:"_id" json:"id"`
	Owner        string     `bson:"owner" json:"owner"`
	Name         string     `bson:"name" json:"name"`
	TargetAmount float64    `bson:"target_amount" json:"target_amount"`
	SavedAmount  float64    `bson:"saved_amount" json:"saved_amount"`
	Deadline     *time.Time `bson:"deadline,omitempty" json:"deadline,omitempty"`
	CreatedAt    time.Time  `bson:"created_at" json:"created_at"`
}
