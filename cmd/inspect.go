package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/tree-extract/internal"
	"github.com/spf13/cobra"
)

var (
	inspectFormat  string
	inspectTopKeys int
)

var (
	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			Underline(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect [input.json]",
	Short: "Summarize the structure of a document",
	Long: `Inspect the shape of a JSON tree document:
  • Value counts by kind (objects, arrays, scalars)
  • How many objects qualify as node records
  • Maximum nesting depth
  • The most frequent object keys

Examples:
  tree-extract inspect tree_data.json
  tree-extract inspect --format json tree_data.json
  tree-extract inspect --db store.db`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputPath := defaultInputPath()
		if len(args) > 0 {
			inputPath = args[0]
		}

		documents, err := loadDocuments(inputPath)
		if err != nil {
			return err
		}

		summary := internal.NewTreeSummary()
		for _, doc := range documents {
			summary.Add(doc.Root)
		}

		switch inspectFormat {
		case "json":
			data, err := json.MarshalIndent(summary, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal summary: %w", err)
			}
			fmt.Println(string(data))
			return nil
		case "text", "":
			displaySummary(inputPath, summary)
			return nil
		default:
			return fmt.Errorf("unsupported format: %s (supported: text, json)", inspectFormat)
		}
	},
}

func displaySummary(inputPath string, s *internal.TreeSummary) {
	fmt.Println(sectionStyle.Render("Document structure"))
	fmt.Println(labelStyle.Render(inputPath))
	fmt.Println()

	w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', 0)
	rows := []struct {
		label string
		value int
	}{
		{"Objects", s.Objects},
		{"Arrays", s.Arrays},
		{"Strings", s.Strings},
		{"Numbers", s.Numbers},
		{"Booleans", s.Booleans},
		{"Nulls", s.Nulls},
		{"Node records", s.Nodes},
		{"Max depth", s.MaxDepth},
	}
	for _, row := range rows {
		_, _ = fmt.Fprintf(w, "%s\t%s\t\n", labelStyle.Render(row.label), valueStyle.Render(strconv.Itoa(row.value)))
	}
	_ = w.Flush()

	top := s.TopKeys(inspectTopKeys)
	if len(top) == 0 {
		return
	}

	fmt.Println()
	fmt.Println(sectionStyle.Render("Top keys"))
	kw := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', 0)
	for _, kc := range top {
		_, _ = fmt.Fprintf(kw, "%s\t%s\t\n", kc.Key, valueStyle.Render(strconv.Itoa(kc.Count)))
	}
	_ = kw.Flush()
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVarP(&inspectFormat, "format", "f", "text", "Output format (text, json)")
	inspectCmd.Flags().IntVar(&inspectTopKeys, "top", 10, "Number of most frequent keys to show")
	inspectCmd.Flags().BoolVar(&extractFromDB, "db", false, "Treat the input as a SQLite document store")
}
