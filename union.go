package rectunion

import (
	"fmt"
	"sync"
)

// Union is a set-theoretic union of axis-parallel integer rectangles.
// It is built once from a list of rectangles and computes its derived
// results lazily on first access: connected components, the exact
// boundary polygons, the total area and the largest contained
// rectangle. A Union is immutable after Build and safe for concurrent
// use.
type Union struct {
	rects  []Rect
	frames []frame
	opts   buildOptions
	bounds Rect // circumscribed rectangle; meaningless when empty

	mu          sync.Mutex
	sides       *sideLists
	components  [][]int32
	boundary    *boundary
	largest     Rect
	largestOK   bool
	largestDone bool
}

// Build constructs a Union from the given rectangles. The input is
// copied; the rectangles may touch, overlap or coincide. An invalid
// rectangle yields an error wrapping [ErrInvalidRect]. An empty input
// is a valid empty union.
func Build(rects []Rect, opts ...Option) (*Union, error) {
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}
	u := &Union{
		rects:  make([]Rect, len(rects)),
		frames: make([]frame, len(rects)),
		opts:   o,
	}
	for i, r := range rects {
		if !r.Valid() {
			return nil, fmt.Errorf("rectunion: rectangle #%d %v: %w", i, r, ErrInvalidRect)
		}
		u.rects[i] = r
		u.frames[i] = newFrame(r)
		if i == 0 {
			u.bounds = r
		} else {
			u.bounds = u.bounds.Union(r)
		}
	}
	return u, nil
}

// MustBuild is like [Build] but panics on error, for rectangle lists
// known to be valid.
func MustBuild(rects []Rect, opts ...Option) *Union {
	u, err := Build(rects, opts...)
	if err != nil {
		panic(err)
	}
	return u
}

// Len returns the number of source rectangles.
func (u *Union) Len() int { return len(u.rects) }

// Rects returns a copy of the source rectangles, in Build order.
func (u *Union) Rects() []Rect {
	out := make([]Rect, len(u.rects))
	copy(out, u.rects)
	return out
}

// Bounds returns the circumscribed rectangle of all source rectangles.
// The second result is false for an empty union.
func (u *Union) Bounds() (Rect, bool) {
	if len(u.rects) == 0 {
		return Rect{}, false
	}
	return u.bounds, true
}

// ensureSides builds the sorted side lists once.
func (u *Union) ensureSides() *sideLists {
	if u.sides == nil {
		u.sides = buildSideLists(u.frames)
		if u.opts.verify >= VerifyBasic {
			u.sides.checkSorted()
		}
	}
	return u.sides
}

// ensureComponents runs the connectivity pass once.
func (u *Union) ensureComponents() [][]int32 {
	if u.components == nil && len(u.rects) > 0 {
		u.components = computeComponents(u.frames, u.ensureSides(), u.opts.secondSides, u.opts.verify)
		if u.opts.verify >= VerifyFull {
			checkComponentsDisjoint(u.rects, u.components)
		}
	}
	return u.components
}

// ensureBoundary runs the boundary pass once.
func (u *Union) ensureBoundary() *boundary {
	if u.boundary == nil {
		u.boundary = computeBoundary(u.frames, u.ensureSides(), u.opts.verify)
		if u.opts.verify >= VerifyFull {
			u.checkBoundaryOnEdge()
		}
	}
	return u.boundary
}

// ConnectedComponentCount returns the number of connected components of
// the union. Rectangles that touch, even only at a corner point, are
// connected.
func (u *Union) ConnectedComponentCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.ensureComponents())
}

// ConnectedComponent returns the component with the given index as a
// sub-union of the source rectangles belonging to it. The sub-union is
// created pre-solved: its own connectivity pass is skipped.
func (u *Union) ConnectedComponent(index int) (*Union, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	components := u.ensureComponents()
	if index < 0 || index >= len(components) {
		return nil, fmt.Errorf("rectunion: component %d of %d: %w", index, len(components), ErrIndexOutOfRange)
	}
	member := components[index]
	sub := &Union{
		rects:  make([]Rect, len(member)),
		frames: make([]frame, len(member)),
		opts:   u.opts,
	}
	for i, src := range member {
		r := u.rects[src]
		sub.rects[i] = r
		sub.frames[i] = newFrame(r)
		if i == 0 {
			sub.bounds = r
		} else {
			sub.bounds = sub.bounds.Union(r)
		}
	}
	all := make([]int32, len(member))
	for i := range all {
		all[i] = int32(i)
	}
	sub.components = [][]int32{all}
	return sub, nil
}

// Boundaries returns the boundary polygons of the union: closed cycles
// of alternating horizontal and vertical links on the half-open scale.
// When the union has a single outer contour it is the first polygon.
// The returned outer slice is a copy; the polygons are shared and must
// not be modified.
func (u *Union) Boundaries() [][]BoundaryLink {
	u.mu.Lock()
	defer u.mu.Unlock()
	b := u.ensureBoundary()
	out := make([][]BoundaryLink, len(b.polygons))
	copy(out, b.polygons)
	return out
}

// HorizontalLinks returns every horizontal boundary link, ordered by
// coordinate.
func (u *Union) HorizontalLinks() []BoundaryLink {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.ensureBoundary().allHorizontalLinks()
}

// VerticalLinks returns every vertical boundary link, ordered by
// coordinate.
func (u *Union) VerticalLinks() []BoundaryLink {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.ensureBoundary().allVerticalLinks()
}

// Area returns the exact area of the union, counted in integer cells.
func (u *Union) Area() float64 {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.ensureBoundary().area
}

// LargestRectangle returns the largest axis-parallel rectangle fully
// contained in the union, on the same inclusive scale as the input
// rectangles. Ties are broken by the scan order of the search. The
// second result is false for an empty union.
func (u *Union) LargestRectangle() (Rect, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if !u.largestDone {
		u.largest, u.largestOK = computeLargest(u.ensureBoundary())
		u.largestDone = true
		if u.largestOK && u.opts.verify >= VerifyFull && !u.containsRectBrute(u.largest) {
			corrupt("hypograph search", "largest rectangle %v sticks out of the union", u.largest)
		}
	}
	return u.largest, u.largestOK
}

// ContainsPoint reports whether the integer point lies in the union.
// Linear in the number of rectangles; the rindex subpackage serves
// heavy query loads.
func (u *Union) ContainsPoint(x, y int64) bool {
	for _, r := range u.rects {
		if r.Contains(x, y) {
			return true
		}
	}
	return false
}

// containsRectBrute reports whether every cell of r lies in the union.
func (u *Union) containsRectBrute(r Rect) bool {
	for y := r.MinY; y <= r.MaxY; y++ {
		for x := r.MinX; x <= r.MaxX; x++ {
			if !u.ContainsPoint(x, y) {
				return false
			}
		}
	}
	return true
}

// checkBoundaryOnEdge verifies every link's side cells lie in the union
// while the cells across the link do not. VerifyFull only.
func (u *Union) checkBoundaryOnEdge() {
	for _, l := range u.boundary.allHorizontalLinks() {
		u.checkLinkOnEdge(l)
	}
	for _, l := range u.boundary.allVerticalLinks() {
		u.checkLinkOnEdge(l)
	}
}

func (u *Union) checkLinkOnEdge(l BoundaryLink) {
	inside := l.SideRect()
	outside := inside
	var shift int64 = 1
	if l.Opening() {
		shift = -1
	}
	if l.Horizontal() {
		outside.MinY += shift
		outside.MaxY += shift
	} else {
		outside.MinX += shift
		outside.MaxX += shift
	}
	if !u.containsRectBrute(inside) {
		corrupt("boundary", "link %v runs outside the union", l)
	}
	for y := outside.MinY; y <= outside.MaxY; y++ {
		for x := outside.MinX; x <= outside.MaxX; x++ {
			if u.ContainsPoint(x, y) {
				corrupt("boundary", "link %v runs inside the union", l)
			}
		}
	}
}
