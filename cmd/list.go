package cmd

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/tree-extract/internal"
	"github.com/spf13/cobra"
)

var (
	listLimit int
)

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list [input.json]",
	Short: "List node records without writing files",
	Long: `Walk the input document and list every node record that extract would
save, together with the filename it would get, without writing anything.`,
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

		var nodes []*internal.NodeRecord
		for _, doc := range documents {
			if _, err := internal.Walk(doc.Root, func(n *internal.NodeRecord) error {
				nodes = append(nodes, n)
				return nil
			}); err != nil {
				return err
			}
		}

		displayNodes(nodes)
		return nil
	},
}

func displayNodes(nodes []*internal.NodeRecord) {
	if len(nodes) == 0 {
		fmt.Println(headerStyle.Render("No node records found"))
		return
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("Found %d node record(s)", len(nodes))))
	fmt.Println()

	w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', 0)
	_, _ = fmt.Fprintln(w, titleStyle.Render("ID")+"\t"+titleStyle.Render("Timestamp")+"\t"+
		titleStyle.Render("Depth")+"\t"+titleStyle.Render("Children")+"\t"+titleStyle.Render("File")+"\t")

	shown := 0
	for _, n := range nodes {
		if listLimit > 0 && shown >= listLimit {
			break
		}
		shown++

		id := truncateText(n.ID.Text(), 24)
		ts := truncateText(n.Timestamp.Text(), 28)

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t\n",
			idStyle.Render(id),
			dateStyle.Render(ts),
			countStyle.Render(strconv.Itoa(n.Depth)),
			countStyle.Render(strconv.Itoa(n.ChildCount)),
			n.Filename())
	}
	_ = w.Flush()

	if shown < len(nodes) {
		fmt.Println(dateStyle.Render(fmt.Sprintf("… and %d more", len(nodes)-shown)))
	}
}

func truncateText(s string, max int) string {
	if s == "" {
		return "—"
	}
	if len(s) > max {
		return s[:max-3] + "..."
	}
	return s
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "Limit the number of rows shown (0 = all)")
	listCmd.Flags().BoolVar(&extractFromDB, "db", false, "Treat the input as a SQLite document store")
}
