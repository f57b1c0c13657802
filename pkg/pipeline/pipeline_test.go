package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/bmcanvas/pkg/connect"
	bmerrors "github.com/matzehuels/bmcanvas/pkg/errors"
	"github.com/matzehuels/bmcanvas/pkg/model"
	"github.com/matzehuels/bmcanvas/pkg/observability"
	"github.com/matzehuels/bmcanvas/pkg/render/canvas"
)

func scenarioDoc() *model.Document {
	return &model.Document{
		Segments:     []model.Segment{{ID: "cs-s1"}, {ID: "cs-s2"}},
		Propositions: []model.Proposition{{ID: "vp-v1"}},
		Fits: []model.Fit{{ID: "fit-1", For: model.Bundle{
			Propositions: []model.PropositionID{"vp-v1"},
			Segments:     []model.SegmentID{"cs-s1", "cs-s2"},
		}}},
	}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"table", false},
		{"json", false},
		{"dot", false},
		{"svg", false},
		{"png", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestRender(t *testing.T) {
	doc := scenarioDoc()
	svg, err := Render(doc, connect.Build(doc), canvas.DefaultConfig())
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(svg, []byte("<svg ")))
	assert.Contains(t, string(svg), `viewBox="0 0 1600.0 1000.0"`)

	again, err := Render(doc, nil, canvas.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, svg, again, "render must be deterministic")
}

func TestRenderErrors(t *testing.T) {
	_, err := Render(nil, nil, canvas.DefaultConfig())
	assert.True(t, bmerrors.Is(err, bmerrors.ErrCodeInvalidDocument))

	cfg := canvas.DefaultConfig()
	cfg.Width = -1
	_, err = Render(scenarioDoc(), nil, cfg)
	assert.True(t, bmerrors.Is(err, bmerrors.ErrCodeInvalidConfig))
}

func TestRenderToleratesDanglingReferences(t *testing.T) {
	doc := &model.Document{
		Fits: []model.Fit{{ID: "fit-1", For: model.Bundle{
			Propositions: []model.PropositionID{"vp-missing"},
			Segments:     []model.SegmentID{"cs-missing"},
		}}},
		Channels: []model.Channel{{ID: "ch-1", For: model.Bundle{Segments: []model.SegmentID{"cs-missing"}}}},
	}
	svg, err := Render(doc, nil, canvas.DefaultConfig())
	require.NoError(t, err)
	assert.Contains(t, string(svg), canvas.OrphanColor)
}

func TestRenderConnections(t *testing.T) {
	doc := scenarioDoc()
	cfg := canvas.DefaultConfig()

	data, err := RenderConnections(doc, nil, cfg, FormatJSON)
	require.NoError(t, err)
	var out struct {
		Entities []struct {
			ID       string   `json:"id"`
			Segments []string `json:"segments"`
		} `json:"entities"`
	}
	require.NoError(t, json.Unmarshal(data, &out))
	require.Len(t, out.Entities, 4)
	assert.Equal(t, "vp-v1", out.Entities[2].ID)
	assert.Equal(t, []string{"cs-s1", "cs-s2"}, out.Entities[2].Segments)

	dot, err := RenderConnections(doc, nil, cfg, FormatDOT)
	require.NoError(t, err)
	assert.Contains(t, string(dot), `"fit-1" -> "vp-v1"`)

	_, err = RenderConnections(doc, nil, cfg, FormatTable)
	assert.True(t, bmerrors.Is(err, bmerrors.ErrCodeUnsupported))

	_, err = RenderConnections(doc, nil, cfg, "png")
	assert.True(t, bmerrors.Is(err, bmerrors.ErrCodeInvalidFormat))

	_, err = RenderConnections(nil, nil, cfg, FormatJSON)
	assert.True(t, bmerrors.Is(err, bmerrors.ErrCodeInvalidDocument))
}

func TestExecuteFromFile(t *testing.T) {
	r := NewRunner(log.NewWithOptions(&bytes.Buffer{}, log.Options{}))
	res, err := r.Execute(context.Background(), Options{Path: filepath.Join("testdata", "minimal.yaml")})
	require.NoError(t, err)

	assert.Equal(t, "Tutoring", res.Model.Title)
	assert.Equal(t, 4, res.Stats.Entities)
	assert.Equal(t, 1, res.Stats.Segments)
	assert.Equal(t, 0, res.Stats.Orphans)
	assert.Equal(t, 0, res.Stats.Dangling)
	assert.Contains(t, string(res.SVG), "Evening tutoring")
}

func TestExecuteMissingFile(t *testing.T) {
	r := NewRunner(log.NewWithOptions(&bytes.Buffer{}, log.Options{}))
	_, err := r.Execute(context.Background(), Options{Path: filepath.Join("testdata", "nope.yaml")})
	assert.True(t, bmerrors.Is(err, bmerrors.ErrCodeFileNotFound))
}

func TestExecuteDangling(t *testing.T) {
	var logs bytes.Buffer
	r := NewRunner(log.NewWithOptions(&logs, log.Options{}))
	path := filepath.Join("testdata", "dangling.yaml")

	res, err := r.Execute(context.Background(), Options{Path: path})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Stats.Dangling)
	assert.Contains(t, logs.String(), "dangling reference")
	assert.Contains(t, logs.String(), "cs-parents")

	_, err = r.Execute(context.Background(), Options{Path: path, Strict: true})
	require.Error(t, err)
	assert.True(t, bmerrors.Is(err, bmerrors.ErrCodeDanglingReference))
	assert.Contains(t, err.Error(), path)
	assert.Equal(t, []string{"ch-flyers.for -> cs-parents (customer segment not found)"}, bmerrors.DetailsOf(err))
}

func TestExecuteHideTitle(t *testing.T) {
	r := NewRunner(nil)
	res, err := r.Execute(context.Background(), Options{
		Document:  scenarioDoc(),
		HideTitle: true,
		Logger:    log.NewWithOptions(&bytes.Buffer{}, log.Options{}),
	})
	require.NoError(t, err)
	assert.NotContains(t, string(res.SVG), `class="header"`)
}

func TestExecuteCustomConfig(t *testing.T) {
	cfg := canvas.DefaultConfig()
	cfg.Width, cfg.Height = 800, 600

	r := NewRunner(log.NewWithOptions(&bytes.Buffer{}, log.Options{}))
	res, err := r.Execute(context.Background(), Options{Document: scenarioDoc(), Config: &cfg})
	require.NoError(t, err)
	assert.Contains(t, string(res.SVG), `viewBox="0 0 800.0 600.0"`)
}

func TestExecuteCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(log.NewWithOptions(&bytes.Buffer{}, log.Options{}))
	_, err := r.Execute(ctx, Options{Document: scenarioDoc()})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRenderAllKeepsOrder(t *testing.T) {
	r := NewRunner(log.NewWithOptions(&bytes.Buffer{}, log.Options{}))
	r.Jobs = 2

	var opts []Options
	for _, name := range []string{"alpha", "beta", "gamma", "delta", "epsilon"} {
		opts = append(opts, Options{Document: &model.Document{Meta: model.Meta{Name: name}}})
	}

	results, err := r.RenderAll(context.Background(), opts)
	require.NoError(t, err)
	require.Len(t, results, len(opts))
	for i, res := range results {
		assert.Equal(t, opts[i].Document.Meta.Name, res.Model.Title)
	}
}

func TestRenderAllFailure(t *testing.T) {
	r := NewRunner(log.NewWithOptions(&bytes.Buffer{}, log.Options{}))
	opts := []Options{
		{Path: filepath.Join("testdata", "minimal.yaml")},
		{Path: filepath.Join("testdata", "missing.yaml")},
	}

	results, err := r.RenderAll(context.Background(), opts)
	assert.Nil(t, results)
	assert.True(t, bmerrors.Is(err, bmerrors.ErrCodeFileNotFound))
	assert.Contains(t, err.Error(), "missing.yaml")
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	mu     sync.Mutex
	events []string
}

func (h *recordingHooks) record(e string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, e)
}

func (h *recordingHooks) OnLoadStart(context.Context, string) { h.record("load") }
func (h *recordingHooks) OnBuildComplete(_ context.Context, orphans, dangling int, _ time.Duration) {
	h.record("build")
}
func (h *recordingHooks) OnRenderComplete(_ context.Context, format string, size int, _ time.Duration, err error) {
	h.record("render:" + format)
}

func TestExecuteEmitsHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	t.Cleanup(observability.Reset)

	r := NewRunner(log.NewWithOptions(&bytes.Buffer{}, log.Options{}))
	_, err := r.Execute(context.Background(), Options{Path: filepath.Join("testdata", "minimal.yaml")})
	require.NoError(t, err)

	assert.Equal(t, "load,build,render:svg", strings.Join(hooks.events, ","))
}
