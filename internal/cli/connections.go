package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/bmcanvas/pkg/connect"
	"github.com/matzehuels/bmcanvas/pkg/model"
	"github.com/matzehuels/bmcanvas/pkg/pipeline"
	"github.com/matzehuels/bmcanvas/pkg/render/canvas"
)

// connectionsOpts holds the command-line flags for the connections command.
type connectionsOpts struct {
	format string
	output string
	config string
}

// connectionsCommand creates the connections command.
func (c *CLI) connectionsCommand() *cobra.Command {
	opts := connectionsOpts{format: pipeline.FormatTable}

	cmd := &cobra.Command{
		Use:   "connections <file>",
		Short: "Show which customer segments every entity serves",
		Long: `Connections prints the connection map of a document: for every entity, the
customer segments it ultimately contributes to.

Formats:
  table  colored terminal table (default)
  json   machine-readable map including dangling references
  dot    Graphviz DOT node-link graph
  svg    the DOT graph rendered by Graphviz`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pipeline.ValidateFormat(opts.format); err != nil {
				return err
			}
			ctx := withLogger(cmd.Context(), c.Logger)
			return c.runConnections(ctx, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: table, json, dot, svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&opts.config, "config", "", "TOML render configuration used for segment colors")

	return cmd
}

func (c *CLI) runConnections(ctx context.Context, input string, opts connectionsOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(opts.config)
	if err != nil {
		return err
	}

	doc, err := c.newRunner(1).Load(ctx, input)
	if err != nil {
		return err
	}
	g := connect.Build(doc)
	logger.Debug("built connection graph", "entities", g.Len(), "orphans", len(g.Orphans()), "dangling", len(g.Dangling()))

	var data []byte
	if opts.format == pipeline.FormatTable {
		data = []byte(connectionTable(doc, g, cfg) + "\n")
	} else {
		data, err = pipeline.RenderConnections(doc, g, cfg, opts.format)
		if err != nil {
			return err
		}
	}

	if opts.output == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := writeOutput(opts.output, data); err != nil {
		return err
	}
	printSuccess("Wrote connection map")
	printFile(opts.output)
	return nil
}

// connectionTable renders the connection map as a terminal table, one row
// per entity in declaration order, each segment prefixed by its canvas color.
func connectionTable(doc *model.Document, g *connect.Graph, cfg canvas.Config) string {
	colors := canvas.SegmentColors(doc, cfg)
	labels := make(map[model.Ref]string, doc.Len())
	for _, e := range doc.All() {
		if _, ok := labels[e.Ref()]; !ok {
			labels[e.Ref()] = e.Label()
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableBorder).
		Headers("KIND", "ID", "NAME", "SEGMENTS").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleTableHeader
			}
			return styleTableCell
		})

	for _, ref := range g.Refs() {
		t.Row(ref.Kind.String(), ref.ID, labels[ref], segmentCell(g.Segments(ref), colors, cfg.OrphanColor))
	}

	title := StyleTitle.Render(doc.Title())
	summary := StyleDim.Render(fmt.Sprintf("%d entities · %d orphans · %d dangling",
		g.Len(), len(g.Orphans()), len(g.Dangling())))
	return lipgloss.JoinVertical(lipgloss.Left, title, t.String(), summary)
}

// segmentCell lists set with color swatches, or the orphan swatch when empty.
func segmentCell(set connect.SegmentSet, colors map[model.SegmentID]string, orphan string) string {
	if set.Empty() {
		return swatch(orphan) + " " + styleOrphan.Render("none")
	}
	parts := make([]string, len(set))
	for i, id := range set {
		parts[i] = swatch(colors[id]) + " " + string(id)
	}
	return strings.Join(parts, ", ")
}
