// Package cli implements the bmcanvas command-line interface.
//
// The commands load business-model documents, render them as Business Model
// Canvas SVGs and print the computed connection map. The CLI is built with
// cobra and logs through charmbracelet/log.
//
// # Commands
//
//   - render: Lay out one or more documents as canvas SVGs
//   - connections: Print the connection map as a table, JSON, DOT or SVG
//   - config: Print the default render configuration as TOML
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// passed through context.Context so commands and helpers share it.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/bmcanvas/pkg/buildinfo"
	"github.com/matzehuels/bmcanvas/pkg/pipeline"
	"github.com/matzehuels/bmcanvas/pkg/render/canvas"
)

// appName is the application name used for display and completion help.
const appName = "bmcanvas"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "bmcanvas renders business models as Business Model Canvas diagrams",
		Long:         `bmcanvas reads a business-model document, works out which customer segments every entity ultimately serves, and draws the canvas with one colored sticky per entity.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.connectionsCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(jobs int) *pipeline.Runner {
	r := pipeline.NewRunner(c.Logger)
	r.Jobs = jobs
	return r
}

// loadConfig returns the render configuration at path, or the defaults when
// path is empty.
func loadConfig(path string) (canvas.Config, error) {
	if path == "" {
		return canvas.DefaultConfig(), nil
	}
	return canvas.LoadConfig(path)
}
