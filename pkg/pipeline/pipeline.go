// Package pipeline provides the load → connect → render pipeline for
// bmcanvas.
//
// The CLI (and anything else embedding bmcanvas) goes through this package
// so that loading, diagnostics, strictness and logging behave the same for
// every entry point.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: decode and structurally validate a document ([pkgio.ImportFile])
//  2. Connect: compute the connection graph ([connect.Build])
//  3. Render: lay out the canvas and serialize it as SVG ([Render])
//
// [Render] is the pure entry point: document and graph in, SVG bytes out.
// [Runner] wraps it with file loading, logging, observability hooks and
// batch execution.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{Path: "canvas.yaml"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Stdout.Write(result.SVG)
//
// Render many documents in parallel, keeping input order:
//
//	runner.Jobs = 4
//	results, err := runner.RenderAll(ctx, opts)
//
// [pkgio.ImportFile]: github.com/matzehuels/bmcanvas/pkg/io.ImportFile
// [connect.Build]: github.com/matzehuels/bmcanvas/pkg/connect.Build
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/bmcanvas/pkg/connect"
	bmerrors "github.com/matzehuels/bmcanvas/pkg/errors"
	"github.com/matzehuels/bmcanvas/pkg/model"
	"github.com/matzehuels/bmcanvas/pkg/render/canvas"
	"github.com/matzehuels/bmcanvas/pkg/render/canvas/layout"
)

// Format constants for connection-map output.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatDOT   = "dot"
	FormatSVG   = "svg"
)

// ValidFormats is the set of supported connection-map formats.
var ValidFormats = map[string]bool{
	FormatTable: true,
	FormatJSON:  true,
	FormatDOT:   true,
	FormatSVG:   true,
}

// ValidateFormat checks that a connection-map format is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return bmerrors.New(bmerrors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: table, json, dot, svg)", format)
	}
	return nil
}

// Options configures a single render.
type Options struct {
	// Path is the document to load; [pkgio.Stdin] reads standard input.
	// Ignored when Document is set.
	Path string
	// Document is an already loaded document.
	Document *model.Document

	// Config is the canvas configuration. Nil uses [canvas.DefaultConfig].
	Config *canvas.Config
	// HideTitle omits the header title and legend.
	HideTitle bool
	// Strict fails the render when the document has dangling references.
	Strict bool

	// Logger overrides the runner's logger for this render.
	Logger *log.Logger
}

// SetDefaults fills unset options.
func (o *Options) SetDefaults() {
	if o.Config == nil {
		cfg := canvas.DefaultConfig()
		o.Config = &cfg
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Name returns a display name for the rendered document.
func (o *Options) Name() string {
	if o.Document != nil && o.Path == "" {
		return o.Document.Title()
	}
	return o.Path
}

// Result contains the outputs of a pipeline run.
type Result struct {
	Path     string
	Document *model.Document
	Graph    *connect.Graph
	Model    *canvas.Model
	SVG      []byte
	Stats    Stats
}

// Stats contains render diagnostics and timings.
type Stats struct {
	Entities    int
	Segments    int
	Orphans     int
	Dangling    int
	Duplicates  int
	Overflowing []layout.BlockID

	LoadTime   time.Duration
	BuildTime  time.Duration
	RenderTime time.Duration
}
