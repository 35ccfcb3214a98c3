package database

// gardensSchema defines the single table. Column names match entities.Garden
// under GORM's default naming strategy.
const gardensSchema = `
CREATE TABLE IF NOT EXISTS gardens (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT,
	type TEXT,
	neighborhood TEXT,
	address TEXT,
	longitude REAL,
	latitude REAL,
	contact TEXT,
	plots_available INTEGER,
	year_created TEXT,
	food_tree_varieties TEXT,
	jurisdiction TEXT,
	steward TEXT,
	public_email TEXT,
	website TEXT,
	geo_local_area TEXT
)`
