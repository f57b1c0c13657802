// Package styles draws canvas primitives as SVG fragments.
//
// A [Style] receives flattened, already positioned shapes and writes SVG
// markup into a buffer. The sink decides what to draw and in which order;
// a style only decides how it looks. [Simple] is the default.
package styles

import "bytes"

// Style defines the visual appearance of a rendered canvas.
type Style interface {
	// RenderDefs writes the inline <style> and any <defs> the style needs.
	RenderDefs(buf *bytes.Buffer, t Theme)
	// RenderBlock writes a block outline and its title.
	RenderBlock(buf *bytes.Buffer, b Block)
	// RenderLayer writes one rectangle of a sticky stack.
	RenderLayer(buf *bytes.Buffer, l Layer)
	// RenderText writes a multi-line text element.
	RenderText(buf *bytes.Buffer, t Text)
	// RenderSwatch writes a legend color swatch.
	RenderSwatch(buf *bytes.Buffer, s Swatch)
}

// Theme carries document-wide settings. Scope is the id of the root <svg>
// element; all CSS rules are nested under it so several canvases can be
// inlined into one HTML page.
type Theme struct {
	Scope      string
	FontFamily string
	FontSize   float64
	TitleSize  float64
}

// Block is a canvas region outline with its title band.
type Block struct {
	Title      string
	X, Y, W, H float64
	LabelX     float64 // title baseline start
	LabelY     float64
}

// Layer is one rectangle of a sticky stack.
type Layer struct {
	Entity     string // entity id, written as data-entity
	Segment    string // segment id, empty for orphans
	X, Y, W, H float64
	Fill       string
	Front      bool
}

// Text is a block of lines. Class selects the CSS rule (label, title,
// legend, footer); Anchor is an SVG text-anchor value.
type Text struct {
	Class      string
	X, Y       float64 // baseline of the first line
	Lines      []string
	LineHeight float64
	Anchor     string
}

// Swatch is a small filled square in the legend.
type Swatch struct {
	X, Y, Size float64
	Fill       string
}
