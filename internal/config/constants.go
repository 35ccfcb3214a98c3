package config

// Default paths, relative to the working directory
const (
	// DefaultDatabasePath is the SQLite file holding the gardens table
	DefaultDatabasePath = "./db/database.db"

	// DefaultSeedFile is read once when the gardens table is empty
	DefaultSeedFile = "./data/gardens.json"

	// DefaultSnapshotPath is where scheduled snapshots are written
	DefaultSnapshotPath = "./data/snapshots/gardens-snapshot.json"
)
