package http

import (
	"github.com/mrlokans/gardens/internal/database"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Gardens  GardenStore
	Database *database.Database

	// Snapshot export; Snapshots nil disables the endpoint
	Snapshots    SnapshotExporter
	SnapshotPath string

	// Task queue client (optional). Without it snapshots export inline.
	TaskQueue SnapshotQueue

	// Origins allowed by CORS; "*" allows any
	AllowedOrigins []string

	// Built frontend served for non-API paths, disabled when empty
	FrontendDir string

	// Application info
	Version string
}
