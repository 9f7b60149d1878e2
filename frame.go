package rectunion

import "sort"

// frame is one input rectangle inside a union, with bounds converted to
// the half-open scale: the inclusive rectangle [minX..maxX]x[minY..maxY]
// becomes [fromX,toX)x[fromY,toY) with toX=maxX+1, toY=maxY+1.
type frame struct {
	fromX, toX int64
	fromY, toY int64
}

func newFrame(r Rect) frame {
	return frame{
		fromX: r.MinX, toX: r.MaxX + 1,
		fromY: r.MinY, toY: r.MaxY + 1,
	}
}

// side is one edge of a frame on the half-open scale. coord is the
// coordinate along the axis the side is perpendicular to; from/to is the
// half-open extent along the axis it is parallel to. first marks the
// lower (top-of-frame for horizontals, left for verticals) side of the
// pair; the first side lies at the frame's from bound, the second at its
// to bound.
//
// Sides are stored in per-orientation arenas in construction order: the
// two horizontal sides of frame f are hside ids 2f (first) and 2f+1, and
// likewise for vertical sides. A side id therefore encodes its frame and
// kind; transversal end sides are found by arithmetic, not pointers.
type side struct {
	frame int32
	first bool
	coord int64
	from  int64
	to    int64
}

// sideID returns the arena id of the given side of frame f.
func sideID(f int32, first bool) int32 {
	if first {
		return 2 * f
	}
	return 2*f + 1
}

// sideFrame returns the frame owning side id s.
func sideFrame(s int32) int32 { return s / 2 }

// cmpSides is the total order driving every sweep: ascending bound
// coordinate; at equal coordinate, first (opening) sides before second
// (closing) ones; then extent start and extent end. The opening-before-
// closing rule makes the sweep momentarily hold both the closing side of
// one rectangle and the opening side of an edge-touching neighbor at the
// shared coordinate, which is what makes touching rectangles connected.
func cmpSides(a, b *side) int {
	switch {
	case a.coord != b.coord:
		if a.coord < b.coord {
			return -1
		}
		return 1
	case a.first != b.first:
		if a.first {
			return -1
		}
		return 1
	case a.from != b.from:
		if a.from < b.from {
			return -1
		}
		return 1
	case a.to != b.to:
		if a.to < b.to {
			return -1
		}
		return 1
	}
	return 0
}

// sideLists holds both side arenas of a union plus sorted orderings over
// them. The arenas are never reordered; hOrder and vOrder are
// permutations of side ids.
type sideLists struct {
	hsides []side
	vsides []side
	hOrder []int32
	vOrder []int32
}

// buildSideLists allocates the four sides of every frame and sorts the
// per-orientation orderings.
func buildSideLists(frames []frame) *sideLists {
	n := len(frames)
	sl := &sideLists{
		hsides: make([]side, 0, 2*n),
		vsides: make([]side, 0, 2*n),
		hOrder: make([]int32, 2*n),
		vOrder: make([]int32, 2*n),
	}
	for i := range frames {
		f := &frames[i]
		fi := int32(i)
		sl.hsides = append(sl.hsides,
			side{frame: fi, first: true, coord: f.fromY, from: f.fromX, to: f.toX},
			side{frame: fi, first: false, coord: f.toY, from: f.fromX, to: f.toX})
		sl.vsides = append(sl.vsides,
			side{frame: fi, first: true, coord: f.fromX, from: f.fromY, to: f.toY},
			side{frame: fi, first: false, coord: f.toX, from: f.fromY, to: f.toY})
	}
	for i := range sl.hOrder {
		sl.hOrder[i] = int32(i)
		sl.vOrder[i] = int32(i)
	}
	sort.SliceStable(sl.hOrder, func(i, j int) bool {
		return cmpSides(&sl.hsides[sl.hOrder[i]], &sl.hsides[sl.hOrder[j]]) < 0
	})
	sort.SliceStable(sl.vOrder, func(i, j int) bool {
		return cmpSides(&sl.vsides[sl.vOrder[i]], &sl.vsides[sl.vOrder[j]]) < 0
	})
	return sl
}

// checkSorted verifies the sorted orderings, used at VerifyBasic.
func (sl *sideLists) checkSorted() {
	for i := 1; i < len(sl.hOrder); i++ {
		if cmpSides(&sl.hsides[sl.hOrder[i-1]], &sl.hsides[sl.hOrder[i]]) > 0 {
			corrupt("side sort", "horizontal sides out of order at %d", i)
		}
	}
	for i := 1; i < len(sl.vOrder); i++ {
		if cmpSides(&sl.vsides[sl.vOrder[i-1]], &sl.vsides[sl.vOrder[i]]) > 0 {
			corrupt("side sort", "vertical sides out of order at %d", i)
		}
	}
}
