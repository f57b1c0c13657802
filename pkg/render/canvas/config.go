package canvas

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	bmerrors "github.com/matzehuels/bmcanvas/pkg/errors"
	"github.com/matzehuels/bmcanvas/pkg/render/canvas/layout"
)

// Attribution is the license notice printed in the canvas footer.
const Attribution = "The Business Model Canvas by Strategyzer AG is licensed under CC BY-SA 3.0 · strategyzer.com"

// Palette is the default segment palette. Segments take colors in
// declaration order and wrap around after the last one.
var Palette = []string{
	"#8ecae6", // sky
	"#ffb703", // amber
	"#90be6d", // sage
	"#f28482", // coral
	"#b8a1e3", // lavender
	"#f6bd60", // sand
	"#84a59d", // teal
	"#ffafcc", // pink
}

// OrphanColor fills stickies of entities that reach no segment.
const OrphanColor = "#d9d9d9"

// Config holds every dimension, limit and color used by [Build].
// All sizes are in canvas units; the SVG viewBox is Width x Height.
type Config struct {
	Width        float64 `toml:"width" validate:"gt=0"`
	Height       float64 `toml:"height" validate:"gt=0"`
	Margin       float64 `toml:"margin" validate:"gte=0"`
	HeaderHeight float64 `toml:"header_height" validate:"gte=0"`
	FooterHeight float64 `toml:"footer_height" validate:"gte=0"`
	LabelHeight  float64 `toml:"label_height" validate:"gte=0"`
	Padding      float64 `toml:"padding" validate:"gte=0"`

	CellWidth   float64 `toml:"cell_width" validate:"gt=0"`
	CellHeight  float64 `toml:"cell_height" validate:"gt=0"`
	StickyGap   float64 `toml:"sticky_gap" validate:"gte=0"`
	StackOffset float64 `toml:"stack_offset" validate:"gte=0"`
	// MaxLayers caps the rectangles drawn per sticky. Zero draws one per
	// connected segment.
	MaxLayers int `toml:"max_layers" validate:"gte=0"`

	LineChars  int     `toml:"line_chars" validate:"gte=1"`
	MaxLines   int     `toml:"max_lines" validate:"gte=1"`
	FontFamily string  `toml:"font_family" validate:"required"`
	FontSize   float64 `toml:"font_size" validate:"gt=0"`
	TitleSize  float64 `toml:"title_size" validate:"gt=0"`

	Palette     []string `toml:"palette" validate:"min=1,dive,hexcolor"`
	OrphanColor string   `toml:"orphan_color" validate:"hexcolor"`
	Attribution string   `toml:"attribution"`
}

// DefaultConfig returns the standard canvas configuration.
func DefaultConfig() Config {
	return Config{
		Width:        1600,
		Height:       1000,
		Margin:       20,
		HeaderHeight: 64,
		FooterHeight: 28,
		LabelHeight:  30,
		Padding:      8,
		CellWidth:    100,
		CellHeight:   72,
		StickyGap:    10,
		StackOffset:  4,
		LineChars:    14,
		MaxLines:     3,
		FontFamily:   "Helvetica, Arial, sans-serif",
		FontSize:     11,
		TitleSize:    14,
		Palette:      append([]string(nil), Palette...),
		OrphanColor:  OrphanColor,
		Attribution:  Attribution,
	}
}

// LoadConfig reads a TOML file and overlays it on [DefaultConfig]. Keys
// absent from the file keep their defaults; unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, os.ErrNotExist) {
		return Config{}, bmerrors.Wrap(bmerrors.ErrCodeFileNotFound, err, "open config %s", path)
	}
	if err != nil {
		return Config{}, bmerrors.Wrap(bmerrors.ErrCodeInvalidConfig, err, "decode config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = fmt.Sprintf("unknown key %q", k.String())
		}
		return Config{}, bmerrors.New(bmerrors.ErrCodeInvalidConfig, "config %s has unknown keys", path).
			WithDetails(keys...)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// WriteTOML encodes c as TOML.
func (c Config) WriteTOML(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

var configValidator = func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("toml")
	})
	return v
}()

// Validate reports impossible values as a single INVALID_CONFIG error.
func (c Config) Validate() error {
	var problems []string
	if err := configValidator.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return bmerrors.Wrap(bmerrors.ErrCodeInternal, err, "validate config")
		}
		for _, fe := range verrs {
			problems = append(problems, describe(fe))
		}
	}
	if c.Margin*2+c.HeaderHeight+c.FooterHeight >= c.Height {
		problems = append(problems, "margin, header_height and footer_height leave no room for the grid")
	}
	if len(problems) > 0 {
		return bmerrors.New(bmerrors.ErrCodeInvalidConfig, "invalid canvas config").WithDetails(problems...)
	}
	return nil
}

func describe(fe validator.FieldError) string {
	_, field, _ := strings.Cut(fe.Namespace(), ".")
	switch fe.Tag() {
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s needs at least %s entries", field, fe.Param())
	case "hexcolor":
		return fmt.Sprintf("%s: %q is not a hex color", field, fe.Value())
	case "required":
		return field + " is required"
	}
	return fmt.Sprintf("%s failed %q", field, fe.Tag())
}

// SegmentColor returns the palette color of the i-th declared segment.
// The palette wraps, so segment 8 shares the color of segment 0 with the
// default palette.
func (c Config) SegmentColor(i int) string {
	if len(c.Palette) == 0 {
		return c.OrphanColor
	}
	n := len(c.Palette)
	return c.Palette[((i%n)+n)%n]
}

// Frame returns the geometry inputs for [layout.Compute].
func (c Config) Frame() layout.Frame {
	return layout.Frame{
		Width:        c.Width,
		Height:       c.Height,
		Margin:       c.Margin,
		HeaderHeight: c.HeaderHeight,
		FooterHeight: c.FooterHeight,
		LabelHeight:  c.LabelHeight,
		Padding:      c.Padding,
	}
}

func (c Config) grid(area layout.Rect, stack float64) layout.Grid {
	return layout.Grid{Area: area, CellWidth: c.CellWidth, CellHeight: c.CellHeight, Gap: c.StickyGap, Stack: stack}
}

// stackDepth returns how far the back layer of an n-layer stack sits from
// its front layer on each axis.
func (c Config) stackDepth(n int) float64 {
	return float64(max(n-1, 0)) * c.StackOffset
}
