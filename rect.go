package rectunion

import "fmt"

// Point is a 2D point with integer coordinates.
type Point struct {
	X, Y int64
}

// Pt is a convenience function to create a Point.
func Pt(x, y int64) Point {
	return Point{X: x, Y: y}
}

// Rect is an axis-aligned rectangle with inclusive integer bounds:
// it covers every integer point (x, y) with MinX <= x <= MaxX and
// MinY <= y <= MaxY. The zero value is the single point (0, 0).
type Rect struct {
	MinX, MinY, MaxX, MaxY int64
}

// NewRect creates a Rect from inclusive bounds, validating min <= max
// on both axes.
func NewRect(minX, minY, maxX, maxY int64) (Rect, error) {
	r := Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
	if !r.Valid() {
		return Rect{}, fmt.Errorf("%w: min (%d, %d) exceeds max (%d, %d)",
			ErrInvalidRect, minX, minY, maxX, maxY)
	}
	return r, nil
}

// Valid reports whether min <= max on both axes.
func (r Rect) Valid() bool {
	return r.MinX <= r.MaxX && r.MinY <= r.MaxY
}

// SpanX returns the number of integer columns the rectangle covers.
func (r Rect) SpanX() int64 {
	return r.MaxX - r.MinX + 1
}

// SpanY returns the number of integer rows the rectangle covers.
func (r Rect) SpanY() int64 {
	return r.MaxY - r.MinY + 1
}

// Area returns the number of integer points the rectangle covers.
func (r Rect) Area() float64 {
	return float64(r.SpanX()) * float64(r.SpanY())
}

// Contains reports whether the point (x, y) lies in the rectangle.
func (r Rect) Contains(x, y int64) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// ContainsRect reports whether o lies entirely inside r.
func (r Rect) ContainsRect(o Rect) bool {
	return o.MinX >= r.MinX && o.MaxX <= r.MaxX && o.MinY >= r.MinY && o.MaxY <= r.MaxY
}

// Intersects reports whether r and o share at least one integer point.
func (r Rect) Intersects(o Rect) bool {
	return r.MinX <= o.MaxX && o.MinX <= r.MaxX && r.MinY <= o.MaxY && o.MinY <= r.MaxY
}

// Union returns the smallest rectangle covering both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		MinX: min(r.MinX, o.MinX),
		MinY: min(r.MinY, o.MinY),
		MaxX: max(r.MaxX, o.MaxX),
		MaxY: max(r.MaxY, o.MaxY),
	}
}

// String returns a compact "[minX,minY]..[maxX,maxY]" form.
func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d]..[%d,%d]", r.MinX, r.MinY, r.MaxX, r.MaxY)
}
