// Package pkg provides the core libraries for bmcanvas.
//
// # Overview
//
// bmcanvas turns a structured business-model document into a Business Model
// Canvas. Every entity on the canvas is drawn as a sticky note colored by the
// customer segments it ultimately serves, so a reader can trace each partner,
// activity or cost back to the customers it exists for.
//
// # Architecture
//
// The typical data flow through bmcanvas:
//
//	YAML / JSON document
//	         ↓
//	    [io] package (decode + structural validation)
//	         ↓
//	    [connect] package (connection graph: entity → segments)
//	         ↓
//	    [render/canvas] package (geometry, stickies, stacked layers)
//	         ↓
//	    [render/canvas/sink] package (self-contained SVG)
//
// # Quick Start
//
//	doc, err := io.ImportFile("canvas.yaml")
//	if err != nil {
//	    return err
//	}
//	g := connect.Build(doc)
//	svg, err := pipeline.Render(doc, g, canvas.DefaultConfig())
//
// # Main Packages
//
// [model] - Document types: the ten entity kinds, typed identifiers and the
// relation table saying which fields may point at which kinds.
//
// [io] - YAML and JSON import with strict decoding and structural validation,
// plus JSON export of the connection map.
//
// [connect] - The connection-graph builder. Derives, for every entity, the
// ordered set of customer segments it contributes to. Dangling references are
// dropped and reported, never fatal.
//
// [render/canvas] - Render configuration and the canvas model: block
// geometry, sticky placement, label wrapping and layer colors.
//
// [render/canvas/sink] - SVG serialization of a canvas model.
//
// [render/connections] - Graphviz node-link view of the connection graph.
//
// [pipeline] - Load → connect → render orchestration shared by every entry
// point, with logging, observability hooks and parallel batches.
//
// [errors] - Structured errors with machine-readable codes.
//
// # Testing
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/connect/...   # Specific package
//	go test -run Example        # Examples only
//
// [model]: https://pkg.go.dev/github.com/matzehuels/bmcanvas/pkg/model
// [io]: https://pkg.go.dev/github.com/matzehuels/bmcanvas/pkg/io
// [connect]: https://pkg.go.dev/github.com/matzehuels/bmcanvas/pkg/connect
// [render/canvas]: https://pkg.go.dev/github.com/matzehuels/bmcanvas/pkg/render/canvas
// [render/canvas/sink]: https://pkg.go.dev/github.com/matzehuels/bmcanvas/pkg/render/canvas/sink
// [render/connections]: https://pkg.go.dev/github.com/matzehuels/bmcanvas/pkg/render/connections
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/bmcanvas/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/matzehuels/bmcanvas/pkg/errors
package pkg
