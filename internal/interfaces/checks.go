package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/gardens/internal/database"
	"github.com/mrlokans/gardens/internal/database/gardens"
	"github.com/mrlokans/gardens/internal/exporters"
	"github.com/mrlokans/gardens/internal/http"
	"github.com/mrlokans/gardens/internal/importers"
	"github.com/mrlokans/gardens/internal/scheduler"
	"github.com/mrlokans/gardens/internal/tasks"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// GardenStore implementations
var _ http.GardenStore = (*gardens.Repository)(nil)

// Seeding and import stores
var _ importers.Store = (*gardens.Repository)(nil)
var _ importers.SeedStore = (*gardens.Repository)(nil)

// Snapshot sources
var _ exporters.GardenReader = (*gardens.Repository)(nil)

// =============================================================================
// Snapshots
// =============================================================================

// SnapshotExporter implementations
var _ http.SnapshotExporter = (*exporters.SnapshotExporter)(nil)
var _ tasks.SnapshotWriter = (*exporters.SnapshotExporter)(nil)

// Task queue
var _ http.SnapshotQueue = (*tasks.Client)(nil)
var _ scheduler.SnapshotEnqueuer = (*tasks.Client)(nil)

// =============================================================================
// Import Pipeline
// =============================================================================

// Converter implementations
var _ importers.Converter = (*importers.GardensJSONConverter)(nil)

// =============================================================================
// Health Checks
// =============================================================================

// Pinger implementations
var _ http.Pinger = (*database.Database)(nil)
var _ http.Pinger = (*tasks.Client)(nil)
