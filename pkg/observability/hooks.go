// Package observability provides hooks for metrics, tracing and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup and receive events about each stage of a render.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces per event category
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, never by libraries, which keeps the render
// packages free of backend imports.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    // ... run application
//	}
//
// The pipeline emits events around each stage:
//
//	observability.Pipeline().OnLoadStart(ctx, path)
//	// ... decode and validate ...
//	observability.Pipeline().OnLoadComplete(ctx, path, entities, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the render pipeline.
type PipelineHooks interface {
	// Load events: reading and validating a document.
	OnLoadStart(ctx context.Context, path string)
	OnLoadComplete(ctx context.Context, path string, entities int, duration time.Duration, err error)

	// Build events: computing the connection graph.
	OnBuildStart(ctx context.Context, entities int)
	OnBuildComplete(ctx context.Context, orphans, dangling int, duration time.Duration)

	// Render events: layout and serialization.
	OnRenderStart(ctx context.Context, format string)
	OnRenderComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLoadStart(context.Context, string)                                 {}
func (NoopPipelineHooks) OnLoadComplete(context.Context, string, int, time.Duration, error)   {}
func (NoopPipelineHooks) OnBuildStart(context.Context, int)                                   {}
func (NoopPipelineHooks) OnBuildComplete(context.Context, int, int, time.Duration)            {}
func (NoopPipelineHooks) OnRenderStart(context.Context, string)                               {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any render.
// A nil argument is ignored.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
