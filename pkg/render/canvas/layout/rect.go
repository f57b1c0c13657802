package layout

// Rect is an axis-aligned rectangle in canvas units. Y grows downward,
// matching SVG user space.
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal center point.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center point.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Area returns W*H.
func (r Rect) Area() float64 { return r.W * r.H }

// Inset shrinks r by d on every side. Sizes never go negative.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: max(r.W-2*d, 0), H: max(r.H-2*d, 0)}
}

// Offset returns r moved by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// SplitTop cuts a band of height h off the top of r and returns the band
// and the remainder. h is clamped to r's height.
func (r Rect) SplitTop(h float64) (top, rest Rect) {
	h = min(max(h, 0), r.H)
	return Rect{X: r.X, Y: r.Y, W: r.W, H: h}, Rect{X: r.X, Y: r.Y + h, W: r.W, H: r.H - h}
}

// SplitBottom cuts a band of height h off the bottom of r and returns the
// remainder and the band. h is clamped to r's height.
func (r Rect) SplitBottom(h float64) (rest, bottom Rect) {
	h = min(max(h, 0), r.H)
	return Rect{X: r.X, Y: r.Y, W: r.W, H: r.H - h}, Rect{X: r.X, Y: r.Bottom() - h, W: r.W, H: h}
}

// Overlaps reports whether r and o share interior area.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Contains reports whether o lies entirely inside r.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}
