package http

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mikestefanello/backlite"
	"github.com/mrlokans/gardens/internal/exporters"
	"github.com/mrlokans/gardens/internal/tasks"
)

// SnapshotExporter writes every garden to a snapshot file.
type SnapshotExporter interface {
	Export(path string) (exporters.ExportResult, error)
}

// SnapshotQueue enqueues snapshot exports and reports task status.
type SnapshotQueue interface {
	EnqueueSnapshot(path string) (string, error)
	Status(ctx context.Context, taskID string) (backlite.TaskStatus, error)
}

// SnapshotController triggers snapshot exports.
type SnapshotController struct {
	exporter SnapshotExporter
	queue    SnapshotQueue
	path     string
}

func NewSnapshotController(exporter SnapshotExporter, queue SnapshotQueue, path string) *SnapshotController {
	return &SnapshotController{exporter: exporter, queue: queue, path: path}
}

// snapshotPath swaps the extension of base for the requested format.
func snapshotPath(base, format string) (string, bool) {
	switch format {
	case "":
		return base, true
	case exporters.FormatJSON, exporters.FormatXLSX:
		return strings.TrimSuffix(base, filepath.Ext(base)) + "." + format, true
	default:
		return "", false
	}
}

// Export handles POST /api/v1/gardens/snapshot?format=json|xlsx
// With a task queue the export is enqueued and 202 returned; otherwise it
// runs inline.
func (sc *SnapshotController) Export(c *gin.Context) {
	path, ok := snapshotPath(sc.path, c.Query("format"))
	if !ok {
		respondBadRequest(c, "format must be json or xlsx")
		return
	}

	if sc.queue != nil {
		taskID, err := sc.queue.EnqueueSnapshot(path)
		if err != nil {
			respondInternalError(c, err, "enqueue snapshot")
			return
		}
		respondAccepted(c, "snapshot export enqueued", gin.H{
			"task_id": taskID,
			"path":    path,
		})
		return
	}

	result, err := sc.exporter.Export(path)
	if err != nil {
		respondInternalError(c, err, "export snapshot")
		return
	}
	respondSuccess(c, "snapshot exported", result)
}

// TaskStatus handles GET /api/v1/tasks/:id
func (sc *SnapshotController) TaskStatus(c *gin.Context) {
	taskID := c.Param("id")
	if taskID == "" {
		respondBadRequest(c, "task ID is required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status, err := sc.queue.Status(ctx, taskID)
	if err != nil {
		respondInternalError(c, err, "task status")
		return
	}

	statusStr := tasks.StatusString(status)
	if status == backlite.TaskStatusNotFound {
		c.JSON(http.StatusNotFound, gin.H{"id": taskID, "status": statusStr})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":     taskID,
		"status": statusStr,
	})
}
