package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/mrlokans/gardens/internal/exporters"
	"go.uber.org/zap"
)

// ExportSnapshotQueue is the queue name for snapshot exports.
const ExportSnapshotQueue = "export_garden_snapshot"

// SnapshotWriter writes every garden to a snapshot file.
type SnapshotWriter interface {
	Export(path string) (exporters.ExportResult, error)
}

// ExportSnapshotTask writes the gardens table to Path.
type ExportSnapshotTask struct {
	Path string `json:"path"`
}

// Config returns the queue configuration for snapshot exports.
func (t ExportSnapshotTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        ExportSnapshotQueue,
		MaxAttempts: 3,
		Backoff:     30 * time.Second,
		Timeout:     2 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// ExportSnapshotProcessor creates a processor function for ExportSnapshotTask.
func ExportSnapshotProcessor(writer SnapshotWriter) backlite.QueueProcessor[ExportSnapshotTask] {
	return func(ctx context.Context, task ExportSnapshotTask) error {
		if writer == nil {
			return fmt.Errorf("snapshot exporter not configured")
		}
		if task.Path == "" {
			return fmt.Errorf("snapshot path is required")
		}

		result, err := writer.Export(task.Path)
		if err != nil {
			return fmt.Errorf("export snapshot to %s: %w", task.Path, err)
		}

		zap.S().Infof("[TASK] Exported %d gardens to %s (%s)", result.Gardens, result.Path, result.Format)
		return nil
	}
}

// NewExportSnapshotQueue creates a backlite queue for snapshot exports.
func NewExportSnapshotQueue(writer SnapshotWriter) backlite.Queue {
	return backlite.NewQueue(ExportSnapshotProcessor(writer))
}

// EnqueueSnapshot adds a snapshot export task and returns its id.
func (c *Client) EnqueueSnapshot(path string) (string, error) {
	ids, err := c.Add(ExportSnapshotTask{Path: path}).Save()
	if err != nil {
		return "", fmt.Errorf("enqueue snapshot export: %w", err)
	}
	return ids[0], nil
}
