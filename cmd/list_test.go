package cmd

import (
	"path/filepath"
	"testing"

	"github.com/iksnae/tree-extract/testutil"
)

func TestListCommand(t *testing.T) {
	resetFlags(t)
	dir := testutil.CreateTempDir(t)
	input := testutil.WriteFile(t, dir, "tree.json", testutil.SampleTree)

	if err := execute(t, "list", input); err != nil {
		t.Errorf("Execute(list) error = %v", err)
	}
}

func TestListCommand_Limit(t *testing.T) {
	resetFlags(t)
	dir := testutil.CreateTempDir(t)
	input := testutil.WriteFile(t, dir, "tree.json", testutil.SampleTree)

	if err := execute(t, "list", "--limit", "1", input); err != nil {
		t.Errorf("Execute(list --limit) error = %v", err)
	}
}

func TestListCommand_MissingInput(t *testing.T) {
	resetFlags(t)
	dir := testutil.CreateTempDir(t)

	if err := execute(t, "list", filepath.Join(dir, "missing.json")); err == nil {
		t.Error("Execute(list) expected error for missing input")
	}
}

func TestListCommand_WritesNothing(t *testing.T) {
	resetFlags(t)
	dir := testutil.CreateTempDir(t)
	input := testutil.WriteFile(t, dir, "tree.json", testutil.SampleTree)

	if err := execute(t, "list", input); err != nil {
		t.Fatalf("Execute(list) error = %v", err)
	}

	// Only the input file exists afterwards
	if files := testutil.ListFiles(t, dir); len(files) != 1 {
		t.Errorf("list wrote files: %v", files)
	}
}

func TestTruncateText(t *testing.T) {
	tests := []struct {
		input string
		max   int
		want  string
	}{
		{"", 10, "—"},
		{"short", 10, "short"},
		{"exactly-10", 10, "exactly-10"},
		{"longer-than-allowed", 10, "longer-..."},
	}

	for _, tt := range tests {
		if got := truncateText(tt.input, tt.max); got != tt.want {
			t.Errorf("truncateText(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
		}
	}
}
