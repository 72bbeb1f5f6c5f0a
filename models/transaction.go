package models

import "time"

type TransactionKind string

const (
	KindIncome  TransactionKind = "income"
	KindExpense TransactionKind = "expense"
)

type Frequency string

const (
	FrequencyOnce    Frequency = "once"
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// Recurrence describes how a transaction replays. LastRunDate is stamped by
// the daily sweep so a template fires at most once per calendar day.
type Recurrence struct {
	Enabled     bool       `bson:"enabled" json:"enabled"`
	Frequency   Frequency  `bson:"frequency" json:"frequency"`
	EndDate     *time.Time `bson:"end_date,omitempty" json:"end_date,omitempty"`
	LastRunDate *time.Time `bson:"last_run_date,omitempty" json:"last_run_date,omitempty"`
}

// Transaction is immutable once created, except for deletion.
type Transaction struct {
	ID         string          `bson:"_id" json:"id"`
	Owner      string          `bson:"owner" json:"owner"`
	Kind       TransactionKind `bson:"kind" json:"kind"`
	Category   string          `bson:"category" json:"category"`
	Amount     float64         `bson:"amount" json:"amount"`
	Date       time.Time       `bson:"date" json:"date"`
	Note       string          `bson:"note,omitempty" json:"note,omitempty"`
	Recurrence *Recurrence     `bson:"recurrence,omitempty" json:"recurrence,omitempty"`
	CreatedAt  time.Time       `bson:"created_at" json:"created_at"`
}
