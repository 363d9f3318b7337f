package imgproc

// Rectangle describes a working area within a frame: the region of the
// destination a transform may write. Bounds are integer pixel coordinates
// with the origin at the top-left.
type Rectangle struct {
	Left   int
	Top    int
	Width  int
	Height int
}

// Rect is shorthand for constructing a Rectangle.
func Rect(left, top, width, height int) Rectangle {
	return Rectangle{Left: left, Top: top, Width: width, Height: height}
}

// Right returns the exclusive right edge.
func (r Rectangle) Right() int {
	return r.Left + r.Width
}

// Bottom returns the exclusive bottom edge.
func (r Rectangle) Bottom() int {
	return r.Top + r.Height
}

// Validate reports whether the rectangle is well-formed: non-negative
// origin and positive extent. Returns ErrInvalidRectangle otherwise.
func (r Rectangle) Validate() error {
	if r.Left < 0 || r.Top < 0 || r.Width <= 0 || r.Height <= 0 {
		return ErrInvalidRectangle
	}
	return nil
}

// In reports whether the rectangle is fully contained within a frame of
// the given dimensions.
func (r Rectangle) In(width, height int) bool {
	return r.Left >= 0 && r.Top >= 0 &&
		r.Right() <= width && r.Bottom() <= height
}
