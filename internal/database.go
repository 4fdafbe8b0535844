package internal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// OpenDatabase opens a SQLite document store in read-only mode
func OpenDatabase(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return db, nil
}

// DocumentRow is one key/value row from the treeDiskKV table.
type DocumentRow struct {
	Key   string
	Value string
}

// QueryDocumentRows loads every non-null document row from treeDiskKV,
// ordered by key so runs are reproducible.
func QueryDocumentRows(db *sql.DB) ([]DocumentRow, error) {
	query := "SELECT key, value FROM treeDiskKV WHERE value IS NOT NULL ORDER BY key"
	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var pairs []DocumentRow
	for rows.Next() {
		var pair DocumentRow
		var value sql.NullString
		if err := rows.Scan(&pair.Key, &value); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		if value.Valid {
			pair.Value = value.String
			pairs = append(pairs, pair)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return pairs, nil
}

// LoadDocumentsFromDB opens the store at path and parses every row
// into a document. Rows that fail to parse are logged and skipped:
// unlike the single-document file source, one bad row should not sink
// the rest of the store.
func LoadDocumentsFromDB(path string) ([]*Document, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &InputNotFoundError{Path: path}
	}

	db, err := OpenDatabase(path)
	if err != nil {
		return nil, &StorageError{Path: path, Op: "open", Err: err}
	}
	defer db.Close()

	rows, err := QueryDocumentRows(db)
	if err != nil {
		return nil, &StorageError{Path: path, Op: "query", Err: err}
	}

	docs := make([]*Document, 0, len(rows))
	for _, row := range rows {
		root, err := ParseValueBytes([]byte(row.Value))
		if err != nil {
			LogWarn("Skipping unparseable document %s: %v", row.Key, err)
			continue
		}
		docs = append(docs, &Document{Key: row.Key, Root: root})
	}

	return docs, nil
}

// IsDatabasePath reports whether path looks like a SQLite store rather
// than a JSON file.
func IsDatabasePath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}
