package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/mikestefanello/backlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/gardens/internal/entities"
	"github.com/mrlokans/gardens/internal/exporters"
)

type fakeQueue struct {
	paths  []string
	status backlite.TaskStatus
	err    error
}

func (q *fakeQueue) EnqueueSnapshot(path string) (string, error) {
	if q.err != nil {
		return "", q.err
	}
	q.paths = append(q.paths, path)
	return "task-42", nil
}

func (q *fakeQueue) Status(ctx context.Context, taskID string) (backlite.TaskStatus, error) {
	return q.status, q.err
}

func TestSnapshotPath(t *testing.T) {
	tests := []struct {
		format string
		want   string
		ok     bool
	}{
		{"", "data/snap.json", true},
		{"json", "data/snap.json", true},
		{"xlsx", "data/snap.xlsx", true},
		{"csv", "", false},
	}
	for _, tt := range tests {
		got, ok := snapshotPath("data/snap.json", tt.format)
		assert.Equal(t, tt.ok, ok, tt.format)
		assert.Equal(t, tt.want, got, tt.format)
	}
}

func TestSnapshotAPI_ExportsInlineWithoutQueue(t *testing.T) {
	_, repo, _ := setupGardensTest(t)

	name := "Cottonwood"
	_, err := repo.Create(entities.GardenInput{Name: &name})
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "snap.json")
	router := NewRouter(RouterConfig{
		Gardens:      repo,
		Snapshots:    exporters.NewSnapshotExporter(repo),
		SnapshotPath: out,
	})

	w := doRequest(router, http.MethodPost, "/api/v1/gardens/snapshot", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message string                 `json:"message"`
		Data    exporters.ExportResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "snapshot exported", resp.Message)
	assert.Equal(t, exporters.ExportResult{Path: out, Format: exporters.FormatJSON, Gardens: 1}, resp.Data)

	_, err = os.Stat(out)
	assert.NoError(t, err)

	w = doRequest(router, http.MethodPost, "/api/v1/gardens/snapshot?format=xlsx", "")
	require.Equal(t, http.StatusOK, w.Code)
	_, err = os.Stat(filepath.Join(filepath.Dir(out), "snap.xlsx"))
	assert.NoError(t, err)
}

func TestSnapshotAPI_EnqueuesWithQueue(t *testing.T) {
	queue := &fakeQueue{}
	router := NewRouter(RouterConfig{TaskQueue: queue, SnapshotPath: "data/snap.json"})

	w := doRequest(router, http.MethodPost, "/api/v1/gardens/snapshot?format=xlsx", "")
	require.Equal(t, http.StatusAccepted, w.Code)
	assert.JSONEq(t, `{"message":"snapshot export enqueued","data":{"task_id":"task-42","path":"data/snap.xlsx"}}`, w.Body.String())
	assert.Equal(t, []string{"data/snap.xlsx"}, queue.paths)
}

func TestSnapshotAPI_Errors(t *testing.T) {
	t.Run("unknown format", func(t *testing.T) {
		router := NewRouter(RouterConfig{TaskQueue: &fakeQueue{}, SnapshotPath: "snap.json"})
		w := doRequest(router, http.MethodPost, "/api/v1/gardens/snapshot?format=pdf", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("enqueue failure", func(t *testing.T) {
		router := NewRouter(RouterConfig{TaskQueue: &fakeQueue{err: errors.New("busy")}, SnapshotPath: "snap.json"})
		w := doRequest(router, http.MethodPost, "/api/v1/gardens/snapshot", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("export failure", func(t *testing.T) {
		router := NewRouter(RouterConfig{Snapshots: exporters.NewSnapshotExporter(brokenStore{}), SnapshotPath: "snap.json"})
		w := doRequest(router, http.MethodPost, "/api/v1/gardens/snapshot", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("disabled", func(t *testing.T) {
		router := NewRouter(RouterConfig{})
		w := doRequest(router, http.MethodPost, "/api/v1/gardens/snapshot", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSnapshotAPI_TaskStatus(t *testing.T) {
	queue := &fakeQueue{status: backlite.TaskStatusSuccess}
	router := NewRouter(RouterConfig{TaskQueue: queue, SnapshotPath: "snap.json"})

	w := doRequest(router, http.MethodGet, "/api/v1/tasks/task-42", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"task-42","status":"success"}`, w.Body.String())

	queue.status = backlite.TaskStatusNotFound
	w = doRequest(router, http.MethodGet, "/api/v1/tasks/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"id":"missing","status":"not_found"}`, w.Body.String())
}
