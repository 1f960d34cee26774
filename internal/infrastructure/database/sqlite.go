package database

import (
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// SQLiteSchema creates the pricing and projects tables. Artifact columns hold
// JSON text.
const SQLiteSchema = `
CREATE TABLE IF NOT EXISTS pricing (
    item_type TEXT NOT NULL,
    material  TEXT NOT NULL,
    unit_cost REAL NOT NULL,
    unit      TEXT NOT NULL,
    PRIMARY KEY (item_type, material)
);

CREATE TABLE IF NOT EXISTS projects (
    project_id        TEXT PRIMARY KEY,
    customer_request  TEXT NOT NULL,
    extracted_details TEXT,
    quote_draft       TEXT,
    final_quote       TEXT,
    email_draft       TEXT,
    availability_info TEXT,
    status            TEXT NOT NULL,
    error_details     TEXT,
    created_at        TEXT NOT NULL,
    updated_at        TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_projects_status ON projects(status);
`

// OpenSQLite opens (creating if needed) the database at path and applies the schema.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(SQLiteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply sqlite schema: %w", err)
	}
	return db, nil
}
