package canvas

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	bmerrors "github.com/matzehuels/bmcanvas/pkg/errors"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
}

func TestDefaultConfigOwnsPalette(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Palette[0] = "#000000"
	if Palette[0] == "#000000" {
		t.Error("DefaultConfig shares its palette with the package default")
	}
}

func TestSegmentColorWraps(t *testing.T) {
	cfg := DefaultConfig()
	if len(cfg.Palette) != 8 {
		t.Fatalf("default palette has %d colors, want 8", len(cfg.Palette))
	}

	seen := make(map[string]bool)
	for i := range 8 {
		seen[cfg.SegmentColor(i)] = true
	}
	if len(seen) != 8 {
		t.Errorf("first 8 segment colors are not distinct: %v", seen)
	}
	if cfg.SegmentColor(8) != cfg.SegmentColor(0) {
		t.Errorf("SegmentColor(8) = %s, want %s", cfg.SegmentColor(8), cfg.SegmentColor(0))
	}
	if cfg.SegmentColor(17) != cfg.SegmentColor(1) {
		t.Errorf("SegmentColor(17) = %s, want %s", cfg.SegmentColor(17), cfg.SegmentColor(1))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		detail string
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, "width must be greater than 0"},
		{"negative margin", func(c *Config) { c.Margin = -1 }, "margin must be at least 0"},
		{"empty palette", func(c *Config) { c.Palette = nil }, "palette needs at least 1 entries"},
		{"bad palette color", func(c *Config) { c.Palette = []string{"red"} }, `palette[0]: "red" is not a hex color`},
		{"bad orphan color", func(c *Config) { c.OrphanColor = "#zzz" }, "orphan_color"},
		{"no lines", func(c *Config) { c.MaxLines = 0 }, "max_lines must be at least 1"},
		{"no font", func(c *Config) { c.FontFamily = "" }, "font_family is required"},
		{"strips too tall", func(c *Config) { c.HeaderHeight = 2000 }, "no room for the grid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !bmerrors.Is(err, bmerrors.ErrCodeInvalidConfig) {
				t.Fatalf("Validate() = %v, want INVALID_CONFIG", err)
			}
			details := strings.Join(bmerrors.DetailsOf(err), "\n")
			if !strings.Contains(details, tt.detail) {
				t.Errorf("details %q do not mention %q", details, tt.detail)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("testdata", "compact.toml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Width != 1200 || cfg.Height != 800 {
		t.Errorf("size = %vx%v, want 1200x800", cfg.Width, cfg.Height)
	}
	if cfg.MaxLayers != 2 {
		t.Errorf("MaxLayers = %d, want 2", cfg.MaxLayers)
	}
	if len(cfg.Palette) != 2 || cfg.SegmentColor(2) != "#112233" {
		t.Errorf("Palette = %v, want the two configured colors", cfg.Palette)
	}
	if cfg.CellWidth != DefaultConfig().CellWidth {
		t.Errorf("CellWidth = %v, want default kept", cfg.CellWidth)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		file string
		code bmerrors.Code
	}{
		{"missing.toml", bmerrors.ErrCodeFileNotFound},
		{"unknown.toml", bmerrors.ErrCodeInvalidConfig},
		{"invalid.toml", bmerrors.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			_, err := LoadConfig(filepath.Join("testdata", tt.file))
			if !bmerrors.Is(err, tt.code) {
				t.Errorf("LoadConfig() = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestWriteTOMLRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := DefaultConfig().WriteTOML(&buf); err != nil {
		t.Fatalf("WriteTOML() error = %v", err)
	}
	if !strings.Contains(buf.String(), "orphan_color = ") {
		t.Errorf("encoded config lacks orphan_color:\n%s", buf.String())
	}

	path := filepath.Join(t.TempDir(), "canvas.toml")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig(encoded defaults) error = %v", err)
	}
	if cfg.Attribution != Attribution || cfg.LineChars != 14 {
		t.Errorf("round trip changed defaults: %+v", cfg)
	}
}
