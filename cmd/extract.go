package cmd

import (
	"context"
	"fmt"

	"github.com/iksnae/tree-extract/internal"
	"github.com/spf13/cobra"
)

var (
	extractIndex  bool
	extractDedupe bool
	extractFromDB bool
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract [input.json] [output-dir]",
	Short: "Extract node records to individual JSON files",
	Long: `Walk the input document and write every node record to its own JSON file.

A node record is any object carrying both an "id" and a "timestamp"
field. Each record is written minus its "children" field, which is
still traversed so nested nodes get their own files. Filenames follow
{sanitized-id}_{sanitized-timestamp}.json with numeric suffixes on
collision, so re-runs never overwrite existing files.

With no arguments, reads tree_data.json next to the binary and writes
into a nodes/ directory beside it.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	inputPath := defaultInputPath()
	outputDir := defaultOutputDir()
	if len(args) > 0 {
		inputPath = args[0]
	}
	if len(args) > 1 {
		outputDir = args[1]
	}

	// Validate and parse the input before touching the output directory
	documents, err := loadDocuments(inputPath)
	if err != nil {
		return err
	}

	persister := internal.NewPersister(outputDir)

	var index *internal.ExtractionIndex
	if extractIndex {
		index = internal.NewExtractionIndex(inputPath)
	}

	var dedupe *internal.Deduplicator
	if extractDedupe {
		dedupe = internal.NewDeduplicator()
	}

	saved := 0
	ctx := context.Background()
	err = internal.ShowProgress(ctx, fmt.Sprintf("Extracting nodes from %s", inputPath), func() error {
		for _, doc := range documents {
			stats, err := internal.Walk(doc.Root, func(n *internal.NodeRecord) error {
				if dedupe != nil && dedupe.Seen(n) {
					internal.LogDebug("Skipping duplicate node %s", n.Filename())
					return nil
				}
				path, err := persister.SaveNode(n)
				if err != nil {
					return err
				}
				saved++
				if index != nil {
					index.Add(n, path)
				}
				return nil
			})
			if err != nil {
				return err
			}
			internal.LogDebug("Walked %s: %d object(s), %d node record(s), max depth %d",
				doc.Key, stats.Objects, stats.Nodes, stats.MaxDepth)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if index != nil && saved > 0 {
		if err := index.Write(outputDir); err != nil {
			internal.LogWarn("Failed to write index: %v", err)
		}
	}

	internal.PrintSuccess(fmt.Sprintf("Extraction complete: %d node(s) saved to %s", saved, outputDir))
	return nil
}

// loadDocuments resolves the input path into one or more parsed
// documents: a single document for JSON files, one per row for SQLite
// stores.
func loadDocuments(path string) ([]*internal.Document, error) {
	if extractFromDB || internal.IsDatabasePath(path) {
		return internal.LoadDocumentsFromDB(path)
	}

	root, err := internal.LoadDocument(path)
	if err != nil {
		return nil, err
	}
	return []*internal.Document{{Key: path, Root: root}}, nil
}

// addExtractFlags registers the extraction flags; they live on both
// the root command and the extract subcommand.
func addExtractFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&extractIndex, "index", false, "Write a nodes.yaml index into the output directory")
	cmd.Flags().BoolVar(&extractDedupe, "dedupe", false, "Skip node records whose content was already written")
	cmd.Flags().BoolVar(&extractFromDB, "db", false, "Treat the input as a SQLite document store")
}

func init() {
	rootCmd.AddCommand(extractCmd)
	addExtractFlags(extractCmd)
}
