// Package rindex provides an R-tree spatial index over the source
// rectangles of a union, for query loads where the union's linear scans
// are too slow: point membership, window queries and nearest-rectangle
// lookup.
package rindex

import (
	"github.com/dhconnelly/rtreego"

	"github.com/gridplane/rectunion"
)

// Index is an immutable R-tree over the rectangles of one union.
type Index struct {
	tree  *rtreego.Rtree
	rects []rectunion.Rect
}

// item adapts one source rectangle to the rtreego.Spatial interface.
type item struct {
	rect  rectunion.Rect
	index int
}

// Bounds implements rtreego.Spatial on the half-open scale, so
// rectangles sharing only an edge produce intersecting index entries.
func (it *item) Bounds() rtreego.Rect {
	r, err := rtreego.NewRect(
		rtreego.Point{float64(it.rect.MinX), float64(it.rect.MinY)},
		[]float64{float64(it.rect.SpanX()), float64(it.rect.SpanY())},
	)
	if err != nil {
		panic("rindex: " + err.Error())
	}
	return r
}

// New indexes the source rectangles of the union.
func New(u *rectunion.Union) *Index {
	rects := u.Rects()
	items := make([]rtreego.Spatial, len(rects))
	for i, r := range rects {
		items[i] = &item{rect: r, index: i}
	}
	return &Index{
		tree:  rtreego.NewTree(2, 16, 64, items...),
		rects: rects,
	}
}

// Len returns the number of indexed rectangles.
func (ix *Index) Len() int { return ix.tree.Size() }

// ContainsPoint reports whether the integer point lies in the union.
func (ix *Index) ContainsPoint(x, y int64) bool {
	probe, err := rtreego.NewRect(
		rtreego.Point{float64(x) + 0.5, float64(y) + 0.5},
		[]float64{0.1, 0.1},
	)
	if err != nil {
		panic("rindex: " + err.Error())
	}
	for _, sp := range ix.tree.SearchIntersect(probe) {
		if sp.(*item).rect.Contains(x, y) {
			return true
		}
	}
	return false
}

// Intersecting returns the indices of all source rectangles sharing at
// least one cell with r.
func (ix *Index) Intersecting(r rectunion.Rect) []int {
	probe, err := rtreego.NewRect(
		rtreego.Point{float64(r.MinX), float64(r.MinY)},
		[]float64{float64(r.SpanX()), float64(r.SpanY())},
	)
	if err != nil {
		panic("rindex: " + err.Error())
	}
	var out []int
	for _, sp := range ix.tree.SearchIntersect(probe) {
		it := sp.(*item)
		if it.rect.Intersects(r) {
			out = append(out, it.index)
		}
	}
	return out
}

// ContainsRect reports whether every cell of r lies in the union. The
// candidate set comes from the index; coverage is then checked row by
// row against the candidates only.
func (ix *Index) ContainsRect(r rectunion.Rect) bool {
	candidates := ix.Intersecting(r)
	if len(candidates) == 0 {
		return false
	}
	for y := r.MinY; y <= r.MaxY; y++ {
		// advance across the row through covering candidates
		x := r.MinX
		for x <= r.MaxX {
			advanced := false
			for _, c := range candidates {
				src := ix.rects[c]
				if src.Contains(x, y) {
					if src.MaxX >= r.MaxX {
						x = r.MaxX + 1
					} else {
						x = src.MaxX + 1
					}
					advanced = true
					break
				}
			}
			if !advanced {
				return false
			}
		}
	}
	return true
}

// Nearest returns the index of the source rectangle whose area is
// closest to the given point, and false for an empty index.
func (ix *Index) Nearest(x, y int64) (int, bool) {
	sp := ix.tree.NearestNeighbor(rtreego.Point{float64(x) + 0.5, float64(y) + 0.5})
	if sp == nil {
		return 0, false
	}
	return sp.(*item).index, true
}
