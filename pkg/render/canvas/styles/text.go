package styles

import (
	"bytes"
	"encoding/xml"
	"strings"
)

// LineHeightRatio is the line pitch relative to the font size.
const LineHeightRatio = 1.25

// EscapeXML escapes s for use in SVG text and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// CenteredText returns the baseline of the first of n lines so that the
// lines are vertically centered on cy.
func CenteredText(cy float64, n int, fontSize float64) float64 {
	lh := fontSize * LineHeightRatio
	// 0.35em drops the baseline from the middle of the line box.
	return cy - float64(n-1)*lh/2 + fontSize*0.35
}

// Slug turns an identifier into a CSS-safe token.
func Slug(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
