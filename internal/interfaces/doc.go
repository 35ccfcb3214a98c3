// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - GardenStore: CRUD over the gardens table (internal/http/gardens.go)
//   - Store, SeedStore: batch inserts for imports and seeding (internal/importers)
//   - GardenReader: read-only source for snapshots (internal/exporters/snapshot.go)
//
// ## Snapshot Interfaces
//
//   - SnapshotExporter / SnapshotWriter: write a snapshot file (internal/http, internal/tasks)
//   - SnapshotQueue / SnapshotEnqueuer: hand exports to the task queue (internal/http, internal/scheduler)
//
// All of these are satisfied by gardens.Repository, exporters.SnapshotExporter
// or tasks.Client; see checks.go.
//
// # Adding a New Import Source
//
// To seed from another feed (e.g. a CSV open-data export):
//
//  1. Create converter in internal/importers/
//
//     type GardensCSVConverter struct {
//         Rows [][]string
//     }
//
//     func (c *GardensCSVConverter) Convert() ([]entities.Garden, importers.Source) {
//         // Map each row through NormalizeGarden
//     }
//
//     var _ importers.Converter = (*GardensCSVConverter)(nil)
//
//  2. Run it through importers.NewPipeline(repo).Import(converter)
//
// # Adding a New Snapshot Format
//
//  1. Add a Format constant and extension case in internal/exporters/snapshot.go
//
//  2. Add a writer next to writeJSON and writeXLSX
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for examples.
package interfaces
