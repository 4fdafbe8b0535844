package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iksnae/tree-extract/internal"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	version string = "dev"
	commit  string = "unknown"
	date    string = "unknown"
)

// rootCmd represents the base command. Invoked with positional
// arguments and no subcommand it behaves like `tree-extract extract`.
var rootCmd = &cobra.Command{
	Use:   "tree-extract [input.json] [output-dir]",
	Short: "Extract node records from JSON tree documents",
	Long: `A CLI tool to extract node records from arbitrary JSON tree documents.

tree-extract walks a nested JSON document depth-first and writes every
object carrying both an "id" and a "timestamp" field to its own
pretty-printed JSON file, named after those two fields. Nested
"children" values are excluded from each record but still traversed,
so whole trees unfold into flat directories of node files.

Features:
  • Full-document traversal (nodes are found anywhere, not just under children)
  • Filesystem-safe filenames with automatic collision suffixes
  • Optional YAML index of every extracted node
  • Optional content-hash deduplication
  • SQLite document stores as an alternative input source

Quick Start:
  tree-extract tree_data.json nodes/     # Extract into nodes/
  tree-extract list tree_data.json       # Preview without writing
  tree-extract inspect tree_data.json    # Structural summary`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	Args:    cobra.MaximumNArgs(2),
	// Runtime failures get one error line from Execute, not a usage dump
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
	RunE: runExtract,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	addExtractFlags(rootCmd)

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// defaultInputPath is tree_data.json next to the binary, matching the
// tool's original drop-in-a-directory usage.
func defaultInputPath() string {
	return filepath.Join(toolDir(), "tree_data.json")
}

// defaultOutputDir is the nodes directory next to the binary.
func defaultOutputDir() string {
	return filepath.Join(toolDir(), "nodes")
}

func toolDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}
