package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// IndexFilename is the name of the YAML manifest written into the
// output directory when indexing is enabled.
const IndexFilename = "nodes.yaml"

// IndexEntry describes one extracted node in the index
type IndexEntry struct {
	ID        string `yaml:"id"`
	Timestamp string `yaml:"timestamp"`
	File      string `yaml:"file"`
	Keys      int    `yaml:"keys"`
	Children  int    `yaml:"children,omitempty"`
	Depth     int    `yaml:"depth"`
}

// IndexMetadata records where and when the index was produced
type IndexMetadata struct {
	Source       string    `yaml:"source"`
	NodeCount    int       `yaml:"node_count"`
	WrittenAt    time.Time `yaml:"written_at"`
	IndexVersion string    `yaml:"index_version"`
}

// ExtractionIndex is the manifest of every node file written by a run
type ExtractionIndex struct {
	Nodes    []IndexEntry  `yaml:"nodes"`
	Metadata IndexMetadata `yaml:"metadata"`
}

// NewExtractionIndex creates an empty index for the given source path.
func NewExtractionIndex(source string) *ExtractionIndex {
	return &ExtractionIndex{
		Nodes: make([]IndexEntry, 0),
		Metadata: IndexMetadata{
			Source:       source,
			IndexVersion: "1.0",
		},
	}
}

// Add records a saved node and the path it was written to.
func (ix *ExtractionIndex) Add(n *NodeRecord, path string) {
	ix.Nodes = append(ix.Nodes, IndexEntry{
		ID:        n.ID.Text(),
		Timestamp: n.Timestamp.Text(),
		File:      filepath.Base(path),
		Keys:      len(n.Record.Members),
		Children:  n.ChildCount,
		Depth:     n.Depth,
	})
}

// Write marshals the index into nodes.yaml under outputDir.
func (ix *ExtractionIndex) Write(outputDir string) error {
	ix.Metadata.NodeCount = len(ix.Nodes)
	ix.Metadata.WrittenAt = time.Now()

	data, err := yaml.Marshal(ix)
	if err != nil {
		return fmt.Errorf("failed to marshal index: %w", err)
	}

	return os.WriteFile(filepath.Join(outputDir, IndexFilename), data, 0644)
}

// LoadExtractionIndex reads nodes.yaml back from outputDir.
func LoadExtractionIndex(outputDir string) (*ExtractionIndex, error) {
	data, err := os.ReadFile(filepath.Join(outputDir, IndexFilename))
	if err != nil {
		return nil, err
	}

	var ix ExtractionIndex
	if err := yaml.Unmarshal(data, &ix); err != nil {
		return nil, fmt.Errorf("failed to unmarshal index: %w", err)
	}

	return &ix, nil
}
