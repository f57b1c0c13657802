// Package sink serializes a [canvas.Model] into its output format.
//
// # SVG Output
//
// [RenderSVG] produces a single self-contained SVG document: no external
// stylesheets, fonts, images or scripts. The root element carries a fixed
// viewBox of the configured width and height and an id derived from the
// document content, which scopes the inline stylesheet:
//
//	<svg xmlns="http://www.w3.org/2000/svg" id="bmc-…" viewBox="0 0 1600 1000" …>
//
// Drawing order is background, header (title and segment legend), block
// outlines, stickies and footer. Within a sticky, layers are drawn back to
// front so the first segment's rectangle ends up on top, followed by the
// label.
//
// # SVG Options
//
//   - [WithStyle]: visual style, defaults to [styles.Simple]
//   - [WithTitle]: show or hide the header title and legend
//
// Output is byte-identical for identical models.
//
// [canvas.Model]: github.com/matzehuels/bmcanvas/pkg/render/canvas.Model
// [styles.Simple]: github.com/matzehuels/bmcanvas/pkg/render/canvas/styles.Simple
package sink
