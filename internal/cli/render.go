package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	bmerrors "github.com/matzehuels/bmcanvas/pkg/errors"
	pkgio "github.com/matzehuels/bmcanvas/pkg/io"
	"github.com/matzehuels/bmcanvas/pkg/pipeline"
	"github.com/matzehuels/bmcanvas/pkg/render/canvas"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string // output file, "-" for stdout, or a directory for several inputs
	config  string // TOML render configuration
	noTitle bool   // omit the header title and legend
	strict  bool   // fail on dangling references
	watch   bool   // re-render on change until interrupted
	jobs    int    // concurrent renders for several inputs
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <file>...",
		Short: "Render business-model documents as canvas SVGs",
		Long: `Render lays out each document as a Business Model Canvas and writes it as SVG.

With a single input the SVG goes to --output, to stdout with "-o -", or next to
the input as <name>.svg. Several inputs are rendered in parallel, each to
<name>.svg next to the input or inside the --output directory.

Dangling references are logged as warnings; --strict turns them into errors.`,
		Example: `  bmcanvas render canvas.yaml
  bmcanvas render canvas.yaml -o - > canvas.svg
  bmcanvas render a.yaml b.json -o out/ -j 4
  bmcanvas render canvas.yaml --config compact.toml --watch`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			return c.runRender(ctx, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", `output file, "-" for stdout, or directory for several inputs`)
	cmd.Flags().StringVar(&opts.config, "config", "", "TOML render configuration (see 'bmcanvas config')")
	cmd.Flags().BoolVar(&opts.noTitle, "no-title", false, "omit the header title and legend")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail when the document has dangling references")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "re-render a single file whenever it changes")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", 0, "maximum concurrent renders (0 = unlimited)")

	return cmd
}

// runRender validates the flag combination and dispatches to the single,
// batch or watch mode.
func (c *CLI) runRender(ctx context.Context, inputs []string, opts renderOpts) error {
	cfg, err := loadConfig(opts.config)
	if err != nil {
		return err
	}

	if len(inputs) == 1 {
		if opts.watch {
			if inputs[0] == pkgio.Stdin {
				return bmerrors.New(bmerrors.ErrCodeInvalidInput, "--watch needs a file, not stdin")
			}
			return c.watch(ctx, inputs[0], func(ctx context.Context) error {
				return c.renderSingle(ctx, inputs[0], cfg, opts)
			})
		}
		return c.renderSingle(ctx, inputs[0], cfg, opts)
	}

	if opts.watch {
		return bmerrors.New(bmerrors.ErrCodeInvalidInput, "--watch takes exactly one file, got %d", len(inputs))
	}
	return c.renderBatch(ctx, inputs, cfg, opts)
}

// renderSingle renders one document to its output path.
func (c *CLI) renderSingle(ctx context.Context, input string, cfg canvas.Config, opts renderOpts) error {
	runner := c.newRunner(1)
	res, err := runner.Execute(ctx, pipelineOptions(input, cfg, opts))
	if err != nil {
		return err
	}

	dest := outputPath(opts.output, input)
	if err := writeOutput(dest, res.SVG); err != nil {
		return err
	}
	if dest != pkgio.Stdin {
		report(res, dest)
	}
	return nil
}

// renderBatch renders several documents in parallel. Nothing is written
// unless every render succeeds.
func (c *CLI) renderBatch(ctx context.Context, inputs []string, cfg canvas.Config, opts renderOpts) error {
	if opts.output == pkgio.Stdin {
		return bmerrors.New(bmerrors.ErrCodeInvalidInput, "cannot write %d canvases to stdout", len(inputs))
	}

	dests := make([]string, len(inputs))
	seen := make(map[string]string, len(inputs))
	for i, in := range inputs {
		if in == pkgio.Stdin {
			return bmerrors.New(bmerrors.ErrCodeInvalidInput, "stdin can only be rendered on its own")
		}
		dests[i] = batchOutputPath(opts.output, in)
		if prev, ok := seen[dests[i]]; ok {
			return bmerrors.New(bmerrors.ErrCodeInvalidInput,
				"%s and %s would both be written to %s", prev, in, dests[i])
		}
		seen[dests[i]] = in
	}

	if opts.output != "" {
		if err := os.MkdirAll(opts.output, 0o755); err != nil {
			return bmerrors.Wrap(bmerrors.ErrCodeInvalidInput, err, "create output directory")
		}
	}

	prog := newProgress(loggerFromContext(ctx))
	all := make([]pipeline.Options, len(inputs))
	for i, in := range inputs {
		all[i] = pipelineOptions(in, cfg, opts)
	}

	results, err := c.newRunner(opts.jobs).RenderAll(ctx, all)
	if err != nil {
		return err
	}

	for i, res := range results {
		if err := writeOutput(dests[i], res.SVG); err != nil {
			return err
		}
		report(res, dests[i])
	}
	prog.done(fmt.Sprintf("Rendered %d canvases", len(results)))
	return nil
}

func pipelineOptions(input string, cfg canvas.Config, opts renderOpts) pipeline.Options {
	return pipeline.Options{
		Path:      input,
		Config:    &cfg,
		HideTitle: opts.noTitle,
		Strict:    opts.strict,
	}
}

// outputPath resolves the destination for a single render. Stdin input
// without an explicit output goes to stdout.
func outputPath(output, input string) string {
	if output != "" {
		return output
	}
	if input == pkgio.Stdin {
		return pkgio.Stdin
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".svg"
}

// batchOutputPath resolves the destination for one input of a batch: next
// to the input, or inside dir when set.
func batchOutputPath(dir, input string) string {
	name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + ".svg"
	if dir == "" {
		return filepath.Join(filepath.Dir(input), name)
	}
	return filepath.Join(dir, name)
}

// writeOutput writes data to path, or to stdout for "-".
func writeOutput(path string, data []byte) error {
	if path == pkgio.Stdin {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return bmerrors.Wrap(bmerrors.ErrCodeInvalidInput, err, "write %s", path)
	}
	return nil
}

// report prints the summary of a finished render.
func report(res *pipeline.Result, dest string) {
	printSuccess("Rendered %s", res.Model.Title)
	printFile(dest)
	printStats(res.Stats.Entities, res.Stats.Orphans, res.Stats.Dangling)
	for _, b := range res.Stats.Overflowing {
		printWarning("%s has more stickies than fit", b.Title())
	}
}
