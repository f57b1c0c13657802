package styles

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestEscapeXML(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"R&D", "R&amp;D"},
		{"<script>", "&lt;script&gt;"},
		{`"quoted"`, "&#34;quoted&#34;"},
	}
	for _, tt := range tests {
		if got := EscapeXML(tt.in); got != tt.want {
			t.Errorf("EscapeXML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSlug(t *testing.T) {
	if got := Slug("bmc-1b4e28ba"); got != "bmc-1b4e28ba" {
		t.Errorf("Slug() = %q", got)
	}
	if got := Slug("a b.c/ü"); got != "a_b_c__" {
		t.Errorf("Slug() = %q, want %q", got, "a_b_c__")
	}
}

func TestCenteredText(t *testing.T) {
	// A single line sits 0.35em below the center.
	if got := CenteredText(100, 1, 10); math.Abs(got-103.5) > 1e-9 {
		t.Errorf("CenteredText(1 line) = %v, want 103.5", got)
	}
	// Three lines move the first baseline up by one line pitch.
	if got := CenteredText(100, 3, 10); math.Abs(got-91) > 1e-9 {
		t.Errorf("CenteredText(3 lines) = %v, want 91", got)
	}
}

func TestSimpleRenderLayer(t *testing.T) {
	var buf bytes.Buffer
	Simple{}.RenderLayer(&buf, Layer{Entity: "vp-1", Segment: "cs-1", X: 1, Y: 2, W: 100, H: 72, Fill: "#8ecae6", Front: true})
	got := buf.String()

	for _, want := range []string{`class="sticky front"`, `data-entity="vp-1"`, `data-segment="cs-1"`, `fill="#8ecae6"`, `width="100.0"`} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderLayer() = %s, missing %s", got, want)
		}
	}

	buf.Reset()
	Simple{}.RenderLayer(&buf, Layer{Entity: "kr-1", Fill: "#d9d9d9"})
	if strings.Contains(buf.String(), "data-segment") || strings.Contains(buf.String(), "front") {
		t.Errorf("orphan layer = %s", buf.String())
	}
}

func TestSimpleRenderText(t *testing.T) {
	var buf bytes.Buffer
	Simple{}.RenderText(&buf, Text{Class: "label", X: 50, Y: 20, Lines: []string{"Cheap", "rides & more"}, LineHeight: 12, Anchor: "middle"})
	got := buf.String()

	if strings.Count(got, "<tspan") != 2 {
		t.Errorf("want 2 tspans, got %s", got)
	}
	if !strings.Contains(got, `dy="12.0">rides &amp; more`) {
		t.Errorf("second line not offset or escaped: %s", got)
	}

	buf.Reset()
	Simple{}.RenderText(&buf, Text{Class: "label"})
	if buf.Len() != 0 {
		t.Errorf("empty text wrote %q", buf.String())
	}
}

func TestSimpleRenderDefsScoped(t *testing.T) {
	var buf bytes.Buffer
	Simple{}.RenderDefs(&buf, Theme{Scope: "bmc-x", FontFamily: "Helvetica", FontSize: 11, TitleSize: 14})
	got := buf.String()

	if !strings.HasPrefix(got, "  <style>") || !strings.Contains(got, "</style>") {
		t.Fatalf("RenderDefs() = %s", got)
	}
	for _, line := range strings.Split(strings.TrimSpace(got), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "<") {
			continue
		}
		if !strings.HasPrefix(line, "#bmc-x ") {
			t.Errorf("rule not scoped: %q", line)
		}
	}
}
