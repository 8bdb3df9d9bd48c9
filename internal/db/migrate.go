package db

import (
	"database/sql"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS catalog_tasks (
		code              TEXT PRIMARY KEY,
		name              TEXT NOT NULL,
		default_fee_cents INTEGER NOT NULL DEFAULT 0
		                  CHECK(default_fee_cents >= 0),
		fee_basis         TEXT NOT NULL DEFAULT '',
		position          INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS catalog_paragraphs (
		task_code TEXT NOT NULL REFERENCES catalog_tasks(code) ON DELETE CASCADE,
		position  INTEGER NOT NULL,
		body      TEXT NOT NULL,
		PRIMARY KEY (task_code, position)
	)`,

	`CREATE TABLE IF NOT EXISTS orders (
		id          TEXT PRIMARY KEY,
		ipo_number  TEXT NOT NULL,
		title       TEXT NOT NULL,
		client_name TEXT NOT NULL,
		total_cents INTEGER NOT NULL,
		filename    TEXT NOT NULL,
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at)`,
}

// Migrate runs all schema migrations and seeds the task catalog when
// it is empty.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := seedCatalog(db); err != nil {
		return fmt.Errorf("seeding task catalog: %w", err)
	}
	return nil
}
