package cmd

import (
	"path/filepath"
	"testing"

	"github.com/iksnae/tree-extract/testutil"
)

func TestInspectCommand(t *testing.T) {
	resetFlags(t)
	dir := testutil.CreateTempDir(t)
	input := testutil.WriteFile(t, dir, "tree.json", testutil.SampleTree)

	if err := execute(t, "inspect", input); err != nil {
		t.Errorf("Execute(inspect) error = %v", err)
	}
}

func TestInspectCommand_JSONFormat(t *testing.T) {
	resetFlags(t)
	dir := testutil.CreateTempDir(t)
	input := testutil.WriteFile(t, dir, "tree.json", testutil.SampleTree)

	if err := execute(t, "inspect", "--format", "json", input); err != nil {
		t.Errorf("Execute(inspect --format json) error = %v", err)
	}
}

func TestInspectCommand_InvalidFormat(t *testing.T) {
	resetFlags(t)
	dir := testutil.CreateTempDir(t)
	input := testutil.WriteFile(t, dir, "tree.json", testutil.SampleTree)

	if err := execute(t, "inspect", "--format", "xml", input); err == nil {
		t.Error("Execute(inspect --format xml) expected error")
	}
}

func TestInspectCommand_MissingInput(t *testing.T) {
	resetFlags(t)
	dir := testutil.CreateTempDir(t)

	if err := execute(t, "inspect", filepath.Join(dir, "missing.json")); err == nil {
		t.Error("Execute(inspect) expected error for missing input")
	}
}

func TestInspectCommand_Database(t *testing.T) {
	resetFlags(t)
	dir := testutil.CreateTempDir(t)
	dbPath := filepath.Join(dir, "store.db")
	testutil.CreateSQLiteFixture(t, dbPath, map[string]string{
		"tree:one": `{"id": "n1", "timestamp": "t1"}`,
	})

	if err := execute(t, "inspect", dbPath); err != nil {
		t.Errorf("Execute(inspect store.db) error = %v", err)
	}
}
