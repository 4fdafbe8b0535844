package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Persister writes node records into an output directory with
// collision-safe filenames.
type Persister struct {
	outputDir string
}

// NewPersister creates a Persister for the given output directory. The
// directory is created lazily, on the first save.
func NewPersister(outputDir string) *Persister {
	return &Persister{outputDir: outputDir}
}

// OutputDir returns the directory node files are written into.
func (p *Persister) OutputDir() string {
	return p.outputDir
}

// EnsureUnique returns path if nothing exists there, otherwise the
// first base_N.ext variant (base_1.ext, base_2.ext, ...) that is free.
// It only checks for existence; creating the file is the caller's job,
// and the check-then-create race is accepted for a single-process tool.
func EnsureUnique(path string) (string, error) {
	free, err := pathFree(path)
	if err != nil {
		return "", err
	}
	if free {
		return path, nil
	}

	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d%s", base, i, ext)
		free, err := pathFree(candidate)
		if err != nil {
			return "", err
		}
		if free {
			return candidate, nil
		}
	}
}

func pathFree(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if os.IsNotExist(err) {
		return true, nil
	}
	return false, err
}

// SaveNode writes n into the output directory as pretty-printed UTF-8
// JSON and returns the path written. Write failures are fatal for the
// node and surface to the caller; nothing is retried.
func (p *Persister) SaveNode(n *NodeRecord) (string, error) {
	if err := os.MkdirAll(p.outputDir, 0755); err != nil {
		return "", &WriteError{Path: p.outputDir, Err: err}
	}

	path, err := EnsureUnique(filepath.Join(p.outputDir, n.Filename()))
	if err != nil {
		return "", &WriteError{Path: p.outputDir, Err: err}
	}

	data, err := n.Record.MarshalIndent()
	if err != nil {
		return "", &WriteError{Path: path, Err: err}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", &WriteError{Path: path, Err: err}
	}

	LogDebug("Saved node record to %s", path)
	return path, nil
}

// SaveValue persists v if it qualifies as a node record. An empty path
// with a nil error means v was not a node; that is a skip, not a
// failure. Real write failures come back as errors.
func (p *Persister) SaveValue(v *Value) (string, error) {
	node, ok := AsNode(v)
	if !ok {
		return "", nil
	}
	return p.SaveNode(node)
}
