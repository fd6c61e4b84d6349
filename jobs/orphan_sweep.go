package jobs

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/modamall/backoffice/internal/platform/objstore"
)

// NewOrphanSweepHandler returns the handler for TaskOrphanSweep. A key that
// still fails to delete keeps the task retryable.
func NewOrphanSweepHandler(logger *slog.Logger, storage objstore.Storage) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload OrphanSweepPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return asynq.SkipRetry
		}

		var failed error
		for _, key := range payload.Keys {
			if err := storage.Delete(ctx, key); err != nil {
				logger.Warn("orphan sweep delete", slog.String("key", key), slog.Any("error", err))
				failed = err
				continue
			}
			logger.Info("orphan blob removed", slog.String("key", key))
		}
		return failed
	}
}
