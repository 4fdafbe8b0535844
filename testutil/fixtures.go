package testutil

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// SampleTree is a small tree document with node records at three
// different structural positions: the root, inside a children array,
// and inside an unrelated sibling field.
const SampleTree = `{
  "id": "root",
  "timestamp": "2025-01-01T00:00:00",
  "label": "top",
  "children": [
    {"id": "child-a", "timestamp": "2025-01-01T00:00:01", "children": []}
  ],
  "related": {
    "note": "not a node",
    "ref": {"id": "ref-1", "timestamp": "2025-01-01T00:00:02"}
  }
}`

// CreateSQLiteFixture creates a SQLite document store at dbPath with a
// treeDiskKV table holding the given key/value rows.
func CreateSQLiteFixture(t *testing.T, dbPath string, rows map[string]string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		t.Fatalf("Failed to create fixture directory: %v", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS treeDiskKV (
		key TEXT PRIMARY KEY,
		value TEXT
	)`
	if _, err := db.Exec(createTableSQL); err != nil {
		t.Fatalf("Failed to create treeDiskKV table: %v", err)
	}

	insertSQL := "INSERT INTO treeDiskKV (key, value) VALUES (?, ?)"
	for key, value := range rows {
		if _, err := db.Exec(insertSQL, key, value); err != nil {
			t.Fatalf("Failed to insert row %s: %v", key, err)
		}
	}
}
