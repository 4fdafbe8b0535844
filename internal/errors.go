package internal

import "fmt"

// InputNotFoundError reports a missing input document
type InputNotFoundError struct {
	Path string
}

func (e *InputNotFoundError) Error() string {
	return fmt.Sprintf("input file not found: %s", e.Path)
}

// ParseError represents errors parsing a document
type ParseError struct {
	Source string // "file", "store"
	Key    string // file path or store key
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error [%s] %s: %v", e.Source, e.Key, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// WriteError represents errors persisting a node record
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write error %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// StorageError represents errors accessing input files or stores
type StorageError struct {
	Path string
	Op   string // "stat", "read", "open", "query"
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
