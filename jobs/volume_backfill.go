package jobs

import (
	"context"
	"log/slog"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewVolumeBackfillHandler returns the handler for TaskVolumeBackfill. It
// seeds zero counter rows for products that are missing them, which can
// happen when rows predate the counters or a migration was partial.
func NewVolumeBackfillHandler(logger *slog.Logger, pool *pgxpool.Pool) asynq.HandlerFunc {
	return func(ctx context.Context, _ *asynq.Task) error {
		salesQuery := `
			INSERT INTO product_sales_volumes (product_id, sales_count)
			SELECT p.id, 0
			FROM products p
			WHERE p.is_deleted = false
			  AND NOT EXISTS (SELECT 1 FROM product_sales_volumes v WHERE v.product_id = p.id)
		`
		salesTag, err := pool.Exec(ctx, salesQuery)
		if err != nil {
			return err
		}

		bookmarkQuery := `
			INSERT INTO bookmark_volumes (product_id, bookmark_count)
			SELECT p.id, 0
			FROM products p
			WHERE p.is_deleted = false
			  AND NOT EXISTS (SELECT 1 FROM bookmark_volumes v WHERE v.product_id = p.id)
		`
		bookmarkTag, err := pool.Exec(ctx, bookmarkQuery)
		if err != nil {
			return err
		}

		logger.Info("volume backfill done",
			slog.Int64("sales_rows", salesTag.RowsAffected()),
			slog.Int64("bookmark_rows", bookmarkTag.RowsAffected()))
		return nil
	}
}
