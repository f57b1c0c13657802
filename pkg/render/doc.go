// Package render groups the visual outputs of bmcanvas.
//
// # Canvas
//
// The [canvas] subpackage lays out a document as a Business Model Canvas:
// nine blocks, one sticky per entity, one stacked layer per connected
// customer segment.
//
// Key canvas subpackages:
//
//   - [canvas/layout]: Block geometry, sticky grid and label wrapping
//
//   - [canvas/sink]: SVG output
//
//   - [canvas/styles]: Visual styles
//
//     m, err := canvas.Build(doc, g, canvas.DefaultConfig())
//     svg := sink.RenderSVG(m)
//
// # Connection Diagrams
//
// The [connections] subpackage renders the connection graph as a
// traditional node-link diagram using Graphviz.
//
//	dot := connections.ToDOT(doc, g, cfg, connections.Options{})
//	svg, err := connections.RenderSVG(dot)
//
// [canvas]: github.com/matzehuels/bmcanvas/pkg/render/canvas
// [canvas/layout]: github.com/matzehuels/bmcanvas/pkg/render/canvas/layout
// [canvas/sink]: github.com/matzehuels/bmcanvas/pkg/render/canvas/sink
// [canvas/styles]: github.com/matzehuels/bmcanvas/pkg/render/canvas/styles
// [connections]: github.com/matzehuels/bmcanvas/pkg/render/connections
package render
