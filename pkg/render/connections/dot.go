package connections

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/bmcanvas/pkg/connect"
	"github.com/matzehuels/bmcanvas/pkg/model"
	"github.com/matzehuels/bmcanvas/pkg/render/canvas"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the identifier and connected segments to node labels.
	Detailed bool
	// Dangling draws unresolved references to placeholder nodes.
	Dangling bool
}

// ToDOT converts the connection graph of doc to Graphviz DOT. Nodes and
// edges appear in declaration order so the output is stable.
func ToDOT(doc *model.Document, g *connect.Graph, cfg canvas.Config, opts Options) string {
	colors := canvas.SegmentColors(doc, cfg)

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	fmt.Fprintf(&buf, "  node [shape=box, style=\"rounded,filled\", fontname=%q, fontsize=12, margin=\"0.2,0.1\"];\n", cfg.FontFamily)
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.25;\n")
	buf.WriteString("\n")

	entities := doc.All()
	seen := make(map[model.Ref]bool, len(entities))
	for _, e := range entities {
		ref := e.Ref()
		if seen[ref] {
			continue
		}
		seen[ref] = true
		segs := g.Segments(ref)
		fmt.Fprintf(&buf, "  %q [%s];\n", ref.ID, strings.Join(fmtAttrs(e, segs, colors, cfg, opts.Detailed), ", "))
	}

	buf.WriteString("\n")
	missing := make(map[model.Ref]bool)
	for _, e := range entities {
		for _, l := range e.Links() {
			if _, ok := g.Lookup(l.To); ok {
				fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", e.Ref().ID, l.To.ID, l.Relation.Field)
				continue
			}
			if !opts.Dangling {
				continue
			}
			if !missing[l.To] {
				missing[l.To] = true
				fmt.Fprintf(&buf, "  %q [label=%q, style=\"rounded,dashed\", color=red, fontcolor=red];\n",
					"missing:"+l.To.ID, l.To.ID+"\n(missing "+l.To.Kind.String()+")")
			}
			fmt.Fprintf(&buf, "  %q -> %q [style=dashed, color=red];\n", e.Ref().ID, "missing:"+l.To.ID)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(e model.Entity, segs connect.SegmentSet, detailed bool) string {
	if !detailed {
		return e.Label()
	}
	ids := make([]string, len(segs))
	for i, s := range segs {
		ids[i] = string(s)
	}
	return fmt.Sprintf("%s\n%s\nsegments: [%s]", e.Label(), e.Ref().ID, strings.Join(ids, " "))
}

func fmtAttrs(e model.Entity, segs connect.SegmentSet, colors map[model.SegmentID]string, cfg canvas.Config, detailed bool) []string {
	fill := cfg.OrphanColor
	if !segs.Empty() {
		if c, ok := colors[segs[0]]; ok {
			fill = c
		}
	}
	attrs := []string{
		fmt.Sprintf("label=%q", fmtLabel(e, segs, detailed)),
		fmt.Sprintf("fillcolor=%q", fill),
	}
	if e.Ref().Kind == model.KindFit {
		attrs = append(attrs, "shape=ellipse", "style=filled")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based root element with a
// plain viewBox so the diagram scales like the canvas output.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
