package styles

import (
	"bytes"
	"fmt"
)

// Simple is a flat style: thin gray block outlines, pastel stickies with a
// darker edge on the front layer and sans-serif text.
type Simple struct{}

func (Simple) RenderDefs(buf *bytes.Buffer, t Theme) {
	s := "#" + t.Scope
	fmt.Fprintf(buf, "  <style>\n")
	fmt.Fprintf(buf, "    %s text { font-family: %s; fill: #222222; }\n", s, EscapeXML(t.FontFamily))
	fmt.Fprintf(buf, "    %s .background { fill: #ffffff; }\n", s)
	fmt.Fprintf(buf, "    %s .block { fill: none; stroke: #9e9e9e; stroke-width: 1.5; }\n", s)
	fmt.Fprintf(buf, "    %s .block-title { font-size: %.1fpx; font-weight: bold; }\n", s, t.TitleSize)
	fmt.Fprintf(buf, "    %s .sticky { stroke: #ffffff; stroke-width: 1; }\n", s)
	fmt.Fprintf(buf, "    %s .sticky.front { stroke: #5f5f5f; }\n", s)
	fmt.Fprintf(buf, "    %s .label { font-size: %.1fpx; }\n", s, t.FontSize)
	fmt.Fprintf(buf, "    %s .title { font-size: %.1fpx; font-weight: bold; }\n", s, t.TitleSize*1.5)
	fmt.Fprintf(buf, "    %s .legend { font-size: %.1fpx; }\n", s, t.FontSize)
	fmt.Fprintf(buf, "    %s .swatch { stroke: #5f5f5f; stroke-width: 0.5; }\n", s)
	fmt.Fprintf(buf, "    %s .footer { font-size: %.1fpx; fill: #757575; }\n", s, t.FontSize*0.9)
	fmt.Fprintf(buf, "  </style>\n")
}

func (Simple) RenderBlock(buf *bytes.Buffer, b Block) {
	fmt.Fprintf(buf, `  <rect class="block" x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>`+"\n",
		b.X, b.Y, b.W, b.H)
	fmt.Fprintf(buf, `  <text class="block-title" x="%.1f" y="%.1f">%s</text>`+"\n",
		b.LabelX, b.LabelY, EscapeXML(b.Title))
}

func (Simple) RenderLayer(buf *bytes.Buffer, l Layer) {
	class := "sticky"
	if l.Front {
		class += " front"
	}
	fmt.Fprintf(buf, `    <rect class="%s" data-entity="%s"`, class, EscapeXML(l.Entity))
	if l.Segment != "" {
		fmt.Fprintf(buf, ` data-segment="%s"`, EscapeXML(l.Segment))
	}
	fmt.Fprintf(buf, ` x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="2" fill="%s"/>`+"\n",
		l.X, l.Y, l.W, l.H, EscapeXML(l.Fill))
}

func (Simple) RenderText(buf *bytes.Buffer, t Text) {
	if len(t.Lines) == 0 {
		return
	}
	anchor := t.Anchor
	if anchor == "" {
		anchor = "start"
	}
	fmt.Fprintf(buf, `    <text class="%s" x="%.1f" y="%.1f" text-anchor="%s">`, t.Class, t.X, t.Y, anchor)
	for i, line := range t.Lines {
		dy := 0.0
		if i > 0 {
			dy = t.LineHeight
		}
		fmt.Fprintf(buf, `<tspan x="%.1f" dy="%.1f">%s</tspan>`, t.X, dy, EscapeXML(line))
	}
	buf.WriteString("</text>\n")
}

func (Simple) RenderSwatch(buf *bytes.Buffer, s Swatch) {
	fmt.Fprintf(buf, `    <rect class="swatch" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
		s.X, s.Y, s.Size, s.Size, EscapeXML(s.Fill))
}
