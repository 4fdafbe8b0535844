package internal

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/iksnae/tree-extract/testutil"
)

func TestLoadDocumentsFromDB(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	dbPath := filepath.Join(dir, "store.db")

	testutil.CreateSQLiteFixture(t, dbPath, map[string]string{
		"tree:alpha": `{"id": "a", "timestamp": "t1"}`,
		"tree:beta":  `{"nodes": [{"id": "b", "timestamp": "t2"}]}`,
		"tree:bad":   `{not valid json`,
	})

	docs, err := LoadDocumentsFromDB(dbPath)
	if err != nil {
		t.Fatalf("LoadDocumentsFromDB() error = %v", err)
	}

	// The bad row is skipped, the rest come back ordered by key
	if len(docs) != 2 {
		t.Fatalf("loaded %d document(s), want 2", len(docs))
	}
	if docs[0].Key != "tree:alpha" || docs[1].Key != "tree:beta" {
		t.Errorf("keys = %q, %q, want tree:alpha, tree:beta", docs[0].Key, docs[1].Key)
	}
	if docs[0].Root.Kind != KindObject {
		t.Errorf("first document root kind = %v, want object", docs[0].Root.Kind)
	}
}

func TestLoadDocumentsFromDB_Missing(t *testing.T) {
	dir := testutil.CreateTempDir(t)

	_, err := LoadDocumentsFromDB(filepath.Join(dir, "missing.db"))
	if err == nil {
		t.Fatal("LoadDocumentsFromDB() expected error")
	}

	var notFound *InputNotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("error = %T, want *InputNotFoundError", err)
	}
}

func TestLoadDocumentsFromDB_NotADatabase(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	path := testutil.WriteFile(t, dir, "fake.db", "this is not sqlite at all")

	_, err := LoadDocumentsFromDB(path)
	if err == nil {
		t.Fatal("LoadDocumentsFromDB() expected error")
	}

	var storageErr *StorageError
	if !errors.As(err, &storageErr) {
		t.Errorf("error = %T, want *StorageError", err)
	}
}

func TestIsDatabasePath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"store.db", true},
		{"store.sqlite", true},
		{"store.sqlite3", true},
		{"STORE.DB", true},
		{"tree.json", false},
		{"store.db.json", false},
		{"store", false},
	}

	for _, tt := range tests {
		if got := IsDatabasePath(tt.path); got != tt.want {
			t.Errorf("IsDatabasePath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
