// Package importers loads garden records from external JSON into the database.
//
// # Architecture
//
//	Seed file → Converter → []entities.Garden → Pipeline → Store.InsertBatch
//
// A Converter normalises source-specific records into gardens. The Pipeline
// hands the result to a Store and reports counts. The Seeder wraps both for
// the startup path: it only runs when the gardens table is empty.
//
// # Source records
//
// Records come from the city open-data export and are inconsistent: some are
// flat, some wrap their values in a "fields" object, and geo_point_2d is
// either a [lat, lon] pair or a {"lon": .., "lat": ..} object. Every garden
// field is resolved through a fallback chain so no column is left empty.
//
// # Example Usage
//
//	seeder := importers.NewSeeder(repo, "./data/gardens.json")
//	seeder.SeedIfEmpty() // logs, never fails
//
//	converter, err := importers.LoadGardensJSON("./data/export.json")
//	result := importers.NewPipeline(repo).Import(converter)
package importers
