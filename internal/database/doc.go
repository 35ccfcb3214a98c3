// Package database owns the SQLite connection and the gardens schema.
//
// # Layout
//
//	database/
//	├── database.go  # Connection setup, schema initialisation
//	├── schema.go    # CREATE TABLE statement
//	└── gardens/     # Garden repository (CRUD + batch insert)
//
// # Usage
//
//	db, err := database.NewDatabase("./db/database.db")
//	repo := gardens.NewRepository(db.DB)
//
//	all, err := repo.GetAll()
//	garden, err := repo.GetByID(42) // nil, nil when absent
//
// The schema is created with CREATE TABLE IF NOT EXISTS and never altered,
// so opening an existing database leaves its rows untouched.
package database
