package pipeline

import (
	"bytes"

	"github.com/matzehuels/bmcanvas/pkg/connect"
	bmerrors "github.com/matzehuels/bmcanvas/pkg/errors"
	pkgio "github.com/matzehuels/bmcanvas/pkg/io"
	"github.com/matzehuels/bmcanvas/pkg/model"
	"github.com/matzehuels/bmcanvas/pkg/render/canvas"
	"github.com/matzehuels/bmcanvas/pkg/render/canvas/sink"
	"github.com/matzehuels/bmcanvas/pkg/render/connections"
)

// Render lays out doc and serializes it as a self-contained SVG document.
// A nil graph is computed from doc. Render fails only for a nil document or
// an invalid config; dangling references and overflow degrade the output
// without an error.
func Render(doc *model.Document, g *connect.Graph, cfg canvas.Config, opts ...sink.SVGOption) ([]byte, error) {
	m, err := canvas.Build(doc, g, cfg)
	if err != nil {
		return nil, err
	}
	return sink.RenderSVG(m, opts...), nil
}

// RenderConnections serializes the connection map of doc in a
// machine-readable format: JSON, Graphviz DOT or a Graphviz SVG diagram.
// The table format is a terminal view and is handled by the CLI.
func RenderConnections(doc *model.Document, g *connect.Graph, cfg canvas.Config, format string) ([]byte, error) {
	if doc == nil {
		return nil, bmerrors.New(bmerrors.ErrCodeInvalidDocument, "document is nil")
	}
	if g == nil {
		g = connect.Build(doc)
	}

	switch format {
	case FormatJSON:
		var buf bytes.Buffer
		if err := pkgio.WriteConnections(&buf, doc, g); err != nil {
			return nil, bmerrors.Wrap(bmerrors.ErrCodeInternal, err, "write connections")
		}
		return buf.Bytes(), nil
	case FormatDOT:
		return []byte(connections.ToDOT(doc, g, cfg, connections.Options{Detailed: true, Dangling: true})), nil
	case FormatSVG:
		svg, err := connections.RenderSVG(connections.ToDOT(doc, g, cfg, connections.Options{Dangling: true}))
		if err != nil {
			return nil, bmerrors.Wrap(bmerrors.ErrCodeInternal, err, "render connection graph")
		}
		return svg, nil
	case FormatTable:
		return nil, bmerrors.New(bmerrors.ErrCodeUnsupported, "format %q is only available in a terminal", format)
	}
	return nil, ValidateFormat(format)
}
