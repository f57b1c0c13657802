package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/bmcanvas/pkg/connect"
	bmerrors "github.com/matzehuels/bmcanvas/pkg/errors"
	pkgio "github.com/matzehuels/bmcanvas/pkg/io"
	"github.com/matzehuels/bmcanvas/pkg/model"
	"github.com/matzehuels/bmcanvas/pkg/observability"
	"github.com/matzehuels/bmcanvas/pkg/render/canvas"
	"github.com/matzehuels/bmcanvas/pkg/render/canvas/sink"
)

// Runner executes renders with logging and observability hooks.
//
// The Runner holds no per-render state; multiple goroutines can safely use
// the same Runner with different options.
type Runner struct {
	Logger *log.Logger
	// Jobs bounds concurrent renders in [Runner.RenderAll]. Zero or
	// negative means no limit.
	Jobs int
}

// NewRunner creates a runner. A nil logger uses log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → connect → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	opts.SetDefaults()
	logger := opts.Logger.With("doc", opts.Name())

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{Path: opts.Path}

	// Stage 1: Load
	doc := opts.Document
	if doc == nil {
		loadStart := time.Now()
		var err error
		doc, err = r.Load(ctx, opts.Path)
		if err != nil {
			return nil, err
		}
		result.Stats.LoadTime = time.Since(loadStart)
		logger.Debug("loaded document", "entities", doc.Len(), "duration", result.Stats.LoadTime)
	}
	result.Document = doc

	// Stage 2: Connect
	buildStart := time.Now()
	observability.Pipeline().OnBuildStart(ctx, doc.Len())
	g := connect.Build(doc)
	result.Graph = g
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.Entities = g.Len()
	result.Stats.Segments = len(doc.Segments)
	result.Stats.Orphans = len(g.Orphans())
	result.Stats.Dangling = len(g.Dangling())
	result.Stats.Duplicates = len(g.Duplicates())
	observability.Pipeline().OnBuildComplete(ctx, result.Stats.Orphans, result.Stats.Dangling, result.Stats.BuildTime)

	if err := checkReferences(logger, opts.Name(), g, opts.Strict); err != nil {
		return nil, err
	}

	// Stage 3: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, FormatSVG)
	m, err := canvas.Build(doc, g, *opts.Config)
	if err != nil {
		observability.Pipeline().OnRenderComplete(ctx, FormatSVG, 0, time.Since(renderStart), err)
		return nil, err
	}
	result.Model = m
	result.SVG = sink.RenderSVG(m, sink.WithTitle(!opts.HideTitle))
	result.Stats.RenderTime = time.Since(renderStart)
	result.Stats.Overflowing = m.Overflowing()
	observability.Pipeline().OnRenderComplete(ctx, FormatSVG, len(result.SVG), result.Stats.RenderTime, nil)

	for _, b := range result.Stats.Overflowing {
		logger.Warn("block overflows its area", "block", b.String())
	}
	logger.Info("rendered canvas",
		"entities", result.Stats.Entities,
		"orphans", result.Stats.Orphans,
		"bytes", len(result.SVG),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads and validates the document at path.
func (r *Runner) Load(ctx context.Context, path string) (*model.Document, error) {
	observability.Pipeline().OnLoadStart(ctx, path)
	start := time.Now()
	doc, err := pkgio.ImportFile(path)
	entities := 0
	if doc != nil {
		entities = doc.Len()
	}
	observability.Pipeline().OnLoadComplete(ctx, path, entities, time.Since(start), err)
	return doc, err
}

// checkReferences logs dangling references and duplicate identifiers. In
// strict mode dangling references become a DANGLING_REFERENCE error.
func checkReferences(logger *log.Logger, name string, g *connect.Graph, strict bool) error {
	for _, ref := range g.Duplicates() {
		logger.Warn("duplicate identifier, later declaration ignored", "id", ref.ID, "kind", ref.Kind.String())
	}

	dangling := g.Dangling()
	for _, d := range dangling {
		logger.Warn("dangling reference", "from", d.From.ID, "field", string(d.Field), "to", d.To.ID)
	}
	if !strict || len(dangling) == 0 {
		return nil
	}

	details := make([]string, len(dangling))
	for i, d := range dangling {
		details[i] = d.String()
	}
	return bmerrors.New(bmerrors.ErrCodeDanglingReference,
		"%s: %d dangling reference(s)", name, len(dangling)).WithDetails(details...)
}

// RenderAll renders every option set in parallel, at most r.Jobs at a
// time. Results are returned in input order. The first failure cancels the
// renders that have not started yet and is returned.
func (r *Runner) RenderAll(ctx context.Context, opts []Options) ([]*Result, error) {
	results := make([]*Result, len(opts))

	g, ctx := errgroup.WithContext(ctx)
	if r.Jobs > 0 {
		g.SetLimit(r.Jobs)
	}
	for i, o := range opts {
		g.Go(func() error {
			res, err := r.Execute(ctx, o)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
