package recurring

import (
	"context"
	"finance-tracker/api/logger"
	"finance-tracker/api/models"
	"time"

	"go.uber.org/zap"
)

// TemplateStore is the persistence surface the sweep needs.
type TemplateStore interface {
	GetRecurringTemplates(ctx context.Context) ([]models.Transaction, error)
	CreateTransaction(ctx context.Context, tx *models.Transaction) error
	StampRecurrence(ctx context.Context, id string, ranOn time.Time) error
}

// Sweeper runs the daily pass over every enabled recurring template.
type Sweeper struct {
	store TemplateStore
}

func NewSweeper(store TemplateStore) *Sweeper {
	return &Sweeper{store: store}
}

// Run evaluates every template against today and materializes the due ones.
// Templates are independent: a failure on one is logged and the sweep moves
// on. Templates already stamped for today are skipped, so re-running the
// same day's sweep creates nothing new. Returns the number of instances
// created.
func (s *Sweeper) Run(ctx context.Context, today time.Time) (int, error) {
	templates, err := s.store.GetRecurringTemplates(ctx)
	if err != nil {
		logger.Get().Error("failed to list recurring templates",
			zap.Error(err))
		return 0, err
	}

	created := 0
	for i := range templates {
		tmpl := &templates[i]

		if firedToday(tmpl, today) {
			continue
		}
		if !IsDue(tmpl, today) {
			continue
		}

		instance := Materialize(tmpl, today)
		if err := s.store.CreateTransaction(ctx, instance); err != nil {
			logger.Get().Error("failed to materialize recurring transaction",
				zap.String("template_id", tmpl.ID),
				zap.String("owner", tmpl.Owner),
				zap.Error(err))
			continue
		}

		if err := s.store.StampRecurrence(ctx, tmpl.ID, dateOnly(today)); err != nil {
			logger.Get().Error("failed to stamp recurring template",
				zap.String("template_id", tmpl.ID),
				zap.Error(err))
			continue
		}

		created++
		logger.Get().Info("recurring transaction added",
			zap.String("template_id", tmpl.ID),
			zap.String("transaction_id", instance.ID),
			zap.String("owner", tmpl.Owner),
			zap.String("frequency", string(tmpl.Recurrence.Frequency)))
	}

	logger.Get().Info("recurring sweep finished",
		zap.Int("templates", len(templates)),
		zap.Int("created", created))
	return created, nil
}
