package internal

import (
	"fmt"
	"os"
)

// Document is a parsed JSON document together with its source key: the
// file path for file inputs, the row key for store inputs.
type Document struct {
	Key  string
	Root *Value
}

// LoadDocument reads and parses a single JSON document from disk.
// A missing file is an InputNotFoundError, unparseable content a
// ParseError; both are reported before anything is written.
func LoadDocument(path string) (*Value, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &InputNotFoundError{Path: path}
		}
		return nil, &StorageError{Path: path, Op: "stat", Err: err}
	}
	if info.IsDir() {
		return nil, &StorageError{Path: path, Op: "open", Err: fmt.Errorf("is a directory")}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &StorageError{Path: path, Op: "read", Err: err}
	}

	root, err := ParseValueBytes(data)
	if err != nil {
		return nil, &ParseError{Source: "file", Key: path, Err: err}
	}
	return root, nil
}
