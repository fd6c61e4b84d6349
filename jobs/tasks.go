// Package jobs carries the background work of the back-office: sweeping
// orphaned image blobs and backfilling missing product counter rows.
package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskOrphanSweep removes blob-store objects whose rows never committed.
	TaskOrphanSweep = "catalog:orphan_sweep"
	// TaskVolumeBackfill seeds counter rows for products missing them.
	TaskVolumeBackfill = "catalog:volume_backfill"
)

// OrphanSweepPayload lists the object keys to remove.
type OrphanSweepPayload struct {
	Keys []string `json:"keys"`
}

// NewOrphanSweepTask constructs an Asynq task.
func NewOrphanSweepTask(payload OrphanSweepPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrphanSweep, data), nil
}

// NewVolumeBackfillTask constructs an Asynq task. The payload is empty; the
// handler finds the gaps itself.
func NewVolumeBackfillTask() *asynq.Task {
	return asynq.NewTask(TaskVolumeBackfill, nil)
}
