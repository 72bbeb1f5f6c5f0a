package models

import "time"

type BudgetPeriod string

const (
	PeriodMonthly BudgetPeriod = "monthly"
	PeriodYearly  BudgetPeriod = "yearly"
)

// Budget is a per-category spending limit. At most one budget exists per
// (owner, category, period); writes go through an upsert keyed on that tuple.
type Budget struct {
	ID        string       `bson:"_id" json:"id"`
	Owner     string       `bson:"owner" json:"owner"`
	Category  string       `bson:"category" json:"category"`
	Amount    float64      `bson:"amount" json:"amount"`
	Period    BudgetPeriod `bson:"period" json:"period"`
	CreatedAt time.Time    `bson:"created_at" json:"created_at"`
}
