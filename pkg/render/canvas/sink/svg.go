package sink

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/x/ansi"

	"github.com/matzehuels/bmcanvas/pkg/render/canvas"
	"github.com/matzehuels/bmcanvas/pkg/render/canvas/styles"
)

// Approximate glyph advance relative to the font size, used to space
// legend entries without font metrics.
const charWidthRatio = 0.6

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style     styles.Style
	showTitle bool
}

func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }
func WithTitle(show bool) SVGOption      { return func(r *svgRenderer) { r.showTitle = show } }

// ScopeID returns the id of the root <svg> element for m.
func ScopeID(m *canvas.Model) string { return "bmc-" + m.ID.String() }

// RenderSVG serializes m as a standalone SVG document.
func RenderSVG(m *canvas.Model, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	cfg := m.Config

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" id="%s" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		ScopeID(m), m.Canvas.W, m.Canvas.H, m.Canvas.W, m.Canvas.H)
	fmt.Fprintf(&buf, "  <title>%s</title>\n", styles.EscapeXML(m.Title))

	r.style.RenderDefs(&buf, styles.Theme{
		Scope:      ScopeID(m),
		FontFamily: cfg.FontFamily,
		FontSize:   cfg.FontSize,
		TitleSize:  cfg.TitleSize,
	})
	fmt.Fprintf(&buf, `  <rect class="background" x="0" y="0" width="%.1f" height="%.1f"/>`+"\n", m.Canvas.W, m.Canvas.H)

	if r.showTitle {
		renderHeader(&buf, r.style, m)
	}
	for _, b := range m.Blocks {
		renderBlock(&buf, r.style, m, b)
	}
	renderFooter(&buf, r.style, m)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: styles.Simple{}, showTitle: true}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func renderHeader(buf *bytes.Buffer, s styles.Style, m *canvas.Model) {
	cfg := m.Config
	h := m.Header
	titleSize := cfg.TitleSize * 1.5

	buf.WriteString(`  <g class="header">` + "\n")
	s.RenderText(buf, styles.Text{
		Class: "title",
		X:     h.X,
		Y:     h.Y + titleSize,
		Lines: []string{m.Title},
	})

	size := cfg.FontSize
	x, y := h.X, h.Bottom()-size-4
	for _, e := range m.Legend {
		s.RenderSwatch(buf, styles.Swatch{X: x, Y: y, Size: size, Fill: e.Color})
		s.RenderText(buf, styles.Text{
			Class: "legend",
			X:     x + size + 4,
			Y:     y + size*0.85,
			Lines: []string{e.Label},
		})
		x += size + 4 + float64(ansi.StringWidth(e.Label))*size*charWidthRatio + 16
	}
	buf.WriteString("  </g>\n")
}

func renderBlock(buf *bytes.Buffer, s styles.Style, m *canvas.Model, b canvas.Block) {
	cfg := m.Config
	reg := b.Region
	s.RenderBlock(buf, styles.Block{
		Title:  b.ID.Title(),
		X:      reg.Bounds.X,
		Y:      reg.Bounds.Y,
		W:      reg.Bounds.W,
		H:      reg.Bounds.H,
		LabelX: reg.Label.X + cfg.Padding,
		LabelY: reg.Label.CenterY() + cfg.TitleSize*0.35,
	})

	for _, st := range b.Stickies {
		renderSticky(buf, s, m, st)
	}
}

func renderSticky(buf *bytes.Buffer, s styles.Style, m *canvas.Model, st canvas.Sticky) {
	fmt.Fprintf(buf, `  <g class="entity" data-entity="%s" data-kind="%s">`+"\n",
		styles.EscapeXML(st.Ref.ID), styles.Slug(st.Ref.Kind.Section()))

	// Back to front: layer 0 is painted last and therefore on top.
	for k := len(st.Layers) - 1; k >= 0; k-- {
		l := st.Layers[k]
		s.RenderLayer(buf, styles.Layer{
			Entity:  st.Ref.ID,
			Segment: string(l.Segment),
			X:       l.Rect.X,
			Y:       l.Rect.Y,
			W:       l.Rect.W,
			H:       l.Rect.H,
			Fill:    l.Color,
			Front:   k == 0,
		})
	}

	front := st.Front().Rect
	size := m.Config.FontSize
	s.RenderText(buf, styles.Text{
		Class:      "label",
		X:          front.CenterX(),
		Y:          styles.CenteredText(front.CenterY(), len(st.Lines), size),
		Lines:      st.Lines,
		LineHeight: size * styles.LineHeightRatio,
		Anchor:     "middle",
	})
	buf.WriteString("  </g>\n")
}

func renderFooter(buf *bytes.Buffer, s styles.Style, m *canvas.Model) {
	if m.Config.Attribution == "" {
		return
	}
	f := m.Footer
	s.RenderText(buf, styles.Text{
		Class:  "footer",
		X:      f.Right(),
		Y:      styles.CenteredText(f.CenterY(), 1, m.Config.FontSize*0.9),
		Lines:  []string{m.Config.Attribution},
		Anchor: "end",
	})
}
