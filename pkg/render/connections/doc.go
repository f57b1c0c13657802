// Package connections renders the connection graph of a business model as
// a node-link diagram.
//
// # Overview
//
// The canvas shows connections only indirectly, through sticky colors.
// This package draws them explicitly: one node per entity, filled with the
// color of its first connected segment (gray for orphans), and one edge per
// resolved relation reference. It is a debugging view for document authors
// who want to see why an entity ended up gray.
//
// # Usage
//
//	dot := connections.ToDOT(doc, g, cfg, connections.Options{})
//	svg, err := connections.RenderSVG(dot)
//
// # Options
//
//   - Detailed: node labels include the identifier and segment list
//   - Dangling: unresolved references are drawn as dashed edges to
//     placeholder nodes
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; no Graphviz installation is required.
package connections
