package rectunion

import (
	"math"
	"sort"
	"time"
)

// hypographSearch finds the largest axis-parallel rectangle below a
// step function. x holds len(y)+1 slab boundaries; y[k] is the function
// value over [x[k], x[k+1]). The search keeps the best rectangle found
// across calls, so one searcher accumulates the global optimum over all
// scanline sections of a union.
type hypographSearch struct {
	x []int64
	y []int64

	fromY    int64
	bestArea float64

	bestFromX, bestToX int64
	bestFromY, bestToY int64
}

func newHypographSearch(x []int64) *hypographSearch {
	s := &hypographSearch{
		x:        x,
		y:        make([]int64, len(x)-1),
		bestArea: math.Inf(-1),
	}
	return s
}

func (s *hypographSearch) setBase(fromY int64)     { s.fromY = fromY }
func (s *hypographSearch) setY(index int, v int64) { s.y[index] = v }

// found reports whether any rectangle was recorded.
func (s *hypographSearch) found() bool { return s.bestArea > 0 }

// best returns the accumulated largest rectangle on the inclusive
// scale.
func (s *hypographSearch) best() Rect {
	return Rect{MinX: s.bestFromX, MinY: s.bestFromY, MaxX: s.bestToX - 1, MaxY: s.bestToY - 1}
}

// correct searches the slab range [fromIndex, toIndex) for a rectangle
// with base fromY larger than the best known. Divide and conquer with a
// manual stack: a range is pruned when even its bounding box cannot
// beat the best; otherwise the widest rectangle limited by the range's
// minimum is a candidate, and the range splits at that minimum. The
// larger half is pushed and the smaller processed next, bounding the
// stack logarithmically.
func (s *hypographSearch) correct(fromIndex, toIndex int) {
	if fromIndex == toIndex {
		return
	}
	stack := make([]int, 0, 128)
	for iteration := int64(0); ; iteration++ {
		if iteration > 16*int64(len(s.y))+16 {
			corrupt("hypograph search", "runaway recursion over %d slabs", len(s.y))
		}
		maxY := s.fromY
		for k := fromIndex; k < toIndex; k++ {
			if s.y[k] > maxY {
				maxY = s.y[k]
			}
		}
		if maxY == s.fromY || rectArea(s.x[fromIndex], s.fromY, s.x[toIndex], maxY) <= s.bestArea {
			if len(stack) == 0 {
				return
			}
			fromIndex = stack[len(stack)-2]
			toIndex = stack[len(stack)-1]
			stack = stack[:len(stack)-2]
			continue
		}
		minY := s.y[fromIndex]
		minIndex := fromIndex
		for k := fromIndex + 1; k < toIndex; k++ {
			if s.y[k] < minY {
				minY = s.y[k]
				minIndex = k
			}
		}
		s.record(s.x[fromIndex], s.fromY, s.x[toIndex], minY)
		if minIndex-fromIndex >= toIndex-(minIndex+1) {
			stack = append(stack, fromIndex, minIndex)
			fromIndex = minIndex + 1
		} else {
			stack = append(stack, minIndex+1, toIndex)
			toIndex = minIndex
		}
	}
}

func (s *hypographSearch) record(fromX, fromY, toX, toY int64) {
	area := rectArea(fromX, fromY, toX, toY)
	if area > s.bestArea {
		s.bestFromX, s.bestFromY = fromX, fromY
		s.bestToX, s.bestToY = toX, toY
		s.bestArea = area
	}
}

func rectArea(fromX, fromY, toX, toY int64) float64 {
	return float64(toX-fromX) * float64(toY-fromY)
}

// hSection is one scanline interval of the union interior: the row
// immediately above coord spans the x slabs [fromIndex, toIndex).
type hSection struct {
	coord     int64
	fromIndex int32
	toIndex   int32
}

// findSections sweeps the horizontal boundary links and emits, for
// every opening link, the maximal interior interval its row extends to
// on both sides. Several opening links of one interior interval produce
// the same section; consecutive duplicates are dropped.
func findSections(b *boundary) []hSection {
	var sections []hSection
	sw := newLinkSweep(b)
	for sw.next() {
		id := sw.cur()
		if !b.hseries[b.hlinks[id].series].first {
			continue
		}
		sec := hSection{
			coord:     b.hseries[b.hlinks[id].series].coord,
			fromIndex: sw.maxLeftIndex(),
			toIndex:   sw.minRightIndex(),
		}
		if n := len(sections); n > 0 && sections[n-1] == sec {
			continue
		}
		sections = append(sections, sec)
	}
	return sections
}

// slabClosings builds, per x slab, the sorted coordinates of the
// closing horizontal links covering the slab. The hypograph value of a
// slab above a section base is the first closing at or above the base.
func slabClosings(b *boundary) [][]int64 {
	closings := make([][]int64, len(b.xs))
	for i := range b.hlinks {
		hl := &b.hlinks[i]
		ss := &b.hseries[hl.series]
		if ss.first {
			continue
		}
		from := b.vseries[hl.vFrom].xRank
		to := b.vseries[hl.vTo].xRank
		for k := from; k < to; k++ {
			closings[k] = append(closings[k], ss.coord)
		}
	}
	for k := range closings {
		sort.Slice(closings[k], func(i, j int) bool { return closings[k][i] < closings[k][j] })
	}
	return closings
}

// closingAbove returns the first closing coordinate >= base over slab
// k.
func closingAbove(closings [][]int64, k int32, base int64) int64 {
	list := closings[k]
	pos := sort.Search(len(list), func(i int) bool { return list[i] >= base })
	if pos == len(list) {
		corrupt("hypograph search", "no closing link above %d over slab %d", base, k)
	}
	return list[pos]
}

// computeLargest finds the largest axis-parallel rectangle contained in
// the union: for every interior scanline section, the step function of
// first closings above the section base is searched for its largest
// inscribed rectangle, and the best over all sections wins.
func computeLargest(b *boundary) (Rect, bool) {
	if len(b.hlinks) == 0 {
		return Rect{}, false
	}
	start := time.Now()
	sections := findSections(b)
	closings := slabClosings(b)
	search := newHypographSearch(b.xs)
	for _, sec := range sections {
		search.setBase(sec.coord)
		for k := sec.fromIndex; k < sec.toIndex; k++ {
			search.setY(int(k), closingAbove(closings, k, sec.coord))
		}
		search.correct(int(sec.fromIndex), int(sec.toIndex))
	}
	if !search.found() {
		corrupt("hypograph search", "no rectangle found in a non-empty union")
	}
	result := search.best()
	logger().Debug("largest rectangle found",
		"sections", len(sections),
		"slabs", len(b.xs)-1,
		"result", result,
		"elapsed", time.Since(start))
	return result, true
}
