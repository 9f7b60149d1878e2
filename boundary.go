package rectunion

import (
	"fmt"
	"sort"
	"time"
)

// BoundaryLink is one segment of a union's traced outline. Links
// alternate horizontal/vertical along a boundary polygon and form closed
// cycles. Coordinates are on the half-open scale (see the package
// documentation).
type BoundaryLink struct {
	horizontal bool
	opening    bool
	coord      int64
	from       int64
	to         int64
}

// Horizontal reports whether the link is a horizontal segment.
func (l BoundaryLink) Horizontal() bool { return l.horizontal }

// Opening reports whether the link lies on a first-of-pair (top or left)
// frame side, i.e. the union's interior follows the link in ascending
// perpendicular direction.
func (l BoundaryLink) Opening() bool { return l.opening }

// Coord returns the coordinate along the axis the link is perpendicular
// to, on the half-open scale.
func (l BoundaryLink) Coord() int64 { return l.coord }

// From returns the starting coordinate of the link's extent.
func (l BoundaryLink) From() int64 { return l.from }

// To returns the ending coordinate of the link's extent (exclusive).
func (l BoundaryLink) To() int64 { return l.to }

// SideRect returns the one-cell-thick rectangle of integer points the
// link runs along, on the inclusive scale of the input rectangles.
func (l BoundaryLink) SideRect() Rect {
	c := l.coord
	if !l.opening {
		c--
	}
	if l.horizontal {
		return Rect{MinX: l.from, MinY: c, MaxX: l.to - 1, MaxY: c}
	}
	return Rect{MinX: c, MinY: l.from, MaxX: c, MaxY: l.to - 1}
}

// String describes the link for diagnostics.
func (l BoundaryLink) String() string {
	orient := "horizontal"
	if !l.horizontal {
		orient = "vertical"
	}
	kind := "closing"
	if l.opening {
		kind = "opening"
	}
	return fmt.Sprintf("%s %s link %d..%d at %d", kind, orient, l.from, l.to, l.coord)
}

// hLink and vLink are the arena representations of boundary segments.
// Neighbor fields hold arena ids of the perpendicular neighbors rather
// than pointers; -1 means not yet paired.
type hLink struct {
	series   int32 // horizontal series id
	from, to int64 // x extent
	vFrom    int32 // vertical series ids at the two ends
	vTo      int32
	nFrom    int32 // neighbor vertical link ids
	nTo      int32
	consumed bool
}

type vLink struct {
	series   int32 // vertical series id
	from, to int64 // y extent
	nFrom    int32 // neighbor horizontal link ids
	nTo      int32
	consumed bool
}

// boundary is the complete boundary structure of one union: side series
// of both orientations, the link arenas, x ranks for the
// largest-rectangle pass, the extracted polygons and the accumulated
// area.
type boundary struct {
	hseries []sideSeries
	vseries []sideSeries
	hlinks  []hLink
	vlinks  []vLink

	xs       []int64 // distinct x coordinates of boundary verticals
	polygons [][]BoundaryLink
	area     float64
}

// polygonWalkFactor bounds the boundary walk; a longer walk means the
// link graph is corrupted (the true limit is 2x the horizontal links).
const polygonWalkFactor = 10

// computeBoundary runs the whole boundary pass: series merging, the
// strict sweep emitting horizontal links, vertical pairing, ranking,
// polygon extraction and area accumulation.
func computeBoundary(frames []frame, sl *sideLists, verify VerifyLevel) *boundary {
	b := &boundary{}
	if len(frames) == 0 {
		return b
	}
	start := time.Now()
	var vSeriesOf []int32
	b.hseries, _ = buildSeries(sl.hsides, sl.hOrder)
	b.vseries, vSeriesOf = buildSeries(sl.vsides, sl.vOrder)
	if verify >= VerifyBasic {
		checkSeriesOrder(b.hseries)
		checkSeriesOrder(b.vseries)
	}
	b.findHorizontalLinks(sl, vSeriesOf, verify)
	b.pairVerticalLinks()
	b.assignRanks()
	b.joinPolygons()
	b.accumulateArea()
	logger().Debug("boundary found",
		"rectangles", len(frames),
		"boundaries", len(b.polygons),
		"horizontalLinks", len(b.hlinks),
		"verticalLinks", len(b.vlinks),
		"elapsed", time.Since(start))
	return b
}

// seriesEvents builds the strict sweep rows: one event per horizontal
// series, controlling the bracket pairs of every frame the series
// contains.
func (b *boundary) seriesEvents(sl *sideLists) []sweepEvent {
	events := make([]sweepEvent, 0, len(b.hseries))
	for i := range b.hseries {
		ss := &b.hseries[i]
		frames := make([]int32, 0, len(ss.sides))
		for _, sid := range ss.sides {
			frames = append(frames, sl.hsides[sid].frame)
		}
		events = append(events, sweepEvent{
			first:   ss.first,
			coord:   ss.coord,
			from:    ss.from,
			to:      ss.to,
			vFrom:   ss.sideFrom,
			vTo:     ss.sideTo,
			frames:  frames,
			payload: int32(i),
		})
	}
	return events
}

// findHorizontalLinks sweeps the horizontal series with the strict
// bracket set. Scanning the ordered brackets across each row, every
// point where the depth==0 status flips emits a horizontal link from the
// vertical where the row entered the boundary to the vertical where it
// left it; the row's own ends are checked for an unclosed flip.
func (b *boundary) findHorizontalLinks(sl *sideLists, vSeriesOf []int32, verify VerifyLevel) {
	sw := newSweep(sl.vsides, b.seriesEvents(sl), true, verify)
	for sw.next() {
		row := sw.cur()
		if verify >= VerifyBasic {
			sw.checkRowCoverage()
		}
		lastBefore := sw.lastBeforeLeft()
		lastAtBoundary := lastBefore < 0 || sw.set.items[lastBefore].depth == 0
		var lastLeft int32 = -1
		if lastAtBoundary {
			lastLeft = vSeriesOf[row.vFrom]
		}
		lo, hi := sw.currentRange()
		for i := lo; i < hi; i++ {
			atBoundary := sw.set.items[i].depth == 0
			if atBoundary == lastAtBoundary {
				continue
			}
			if atBoundary {
				lastLeft = vSeriesOf[sw.set.items[i].vside]
			} else {
				b.addHorizontalLink(row.payload, lastLeft, vSeriesOf[sw.set.items[i].vside])
			}
			lastAtBoundary = atBoundary
		}
		if lastAtBoundary {
			b.addHorizontalLink(row.payload, lastLeft, vSeriesOf[row.vTo])
		}
	}
}

// addHorizontalLink emits one horizontal link between two vertical
// series; empty links produced by degenerate flips at one coordinate
// are dropped.
func (b *boundary) addHorizontalLink(hs, vFrom, vTo int32) {
	from := b.vseries[vFrom].coord
	to := b.vseries[vTo].coord
	if from >= to {
		return
	}
	id := int32(len(b.hlinks))
	b.hlinks = append(b.hlinks, hLink{
		series: hs,
		from:   from, to: to,
		vFrom: vFrom, vTo: vTo,
		nFrom: -1, nTo: -1,
	})
	b.hseries[hs].links = append(b.hseries[hs].links, id)
}

// pairVerticalLinks registers every horizontal link at the vertical
// series of its two ends, then pairs each vertical series' links
// consecutively by ascending coordinate into vertical links,
// cross-linking neighbor ids on both sides. An odd link count or
// non-increasing coordinates is a fatal consistency error.
func (b *boundary) pairVerticalLinks() {
	for id := range b.hlinks {
		hl := &b.hlinks[id]
		b.vseries[hl.vFrom].crossing = append(b.vseries[hl.vFrom].crossing, int32(id))
		b.vseries[hl.vTo].crossing = append(b.vseries[hl.vTo].crossing, int32(id))
	}
	for vs := range b.vseries {
		series := &b.vseries[vs]
		n := len(series.crossing)
		if n%2 != 0 {
			corrupt("boundary", "vertical series at x=%d crossed by %d horizontal links", series.coord, n)
		}
		if n == 0 {
			continue
		}
		sort.Slice(series.crossing, func(i, j int) bool {
			a := &b.hlinks[series.crossing[i]]
			bb := &b.hlinks[series.crossing[j]]
			ca := b.hseries[a.series].coord
			cb := b.hseries[bb.series].coord
			if ca != cb {
				return ca < cb
			}
			return a.from < bb.from
		})
		for k := 0; k < n; k += 2 {
			loID := series.crossing[k]
			hiID := series.crossing[k+1]
			from := b.hseries[b.hlinks[loID].series].coord
			to := b.hseries[b.hlinks[hiID].series].coord
			if k > 0 && from <= b.hseries[b.hlinks[series.crossing[k-1]].series].coord {
				corrupt("boundary", "two horizontal links at y=%d incident with the vertical series at x=%d", from, series.coord)
			}
			if from >= to {
				corrupt("boundary", "empty vertical link %d..%d at x=%d", from, to, series.coord)
			}
			id := int32(len(b.vlinks))
			b.vlinks = append(b.vlinks, vLink{
				series: int32(vs),
				from:   from, to: to,
				nFrom: loID, nTo: hiID,
			})
			b.setNeighbor(loID, int32(vs), id)
			b.setNeighbor(hiID, int32(vs), id)
			series.links = append(series.links, id)
		}
	}
	if len(b.vlinks) != len(b.hlinks) {
		corrupt("boundary", "%d horizontal links but %d vertical links", len(b.hlinks), len(b.vlinks))
	}
}

// setNeighbor records the vertical link v as a neighbor of horizontal
// link h at whichever end lies on vertical series vs.
func (b *boundary) setNeighbor(h, vs, v int32) {
	hl := &b.hlinks[h]
	switch vs {
	case hl.vFrom:
		hl.nFrom = v
	case hl.vTo:
		hl.nTo = v
	default:
		corrupt("boundary", "vertical neighbor from alien series %d for link %d", vs, h)
	}
}

// assignRanks gives every vertical series carrying boundary links a
// rank among the distinct boundary x coordinates, enabling
// array-indexed lookups in the largest-rectangle pass.
func (b *boundary) assignRanks() {
	for i := range b.vseries {
		ss := &b.vseries[i]
		if len(ss.links) == 0 {
			continue
		}
		if len(b.xs) == 0 || b.xs[len(b.xs)-1] != ss.coord {
			b.xs = append(b.xs, ss.coord)
		}
		ss.xRank = int32(len(b.xs) - 1)
	}
}

// joinPolygons repeatedly picks the first unconsumed horizontal link and
// walks the neighbor graph into a closed polygon until every link is
// consumed. When the union has a single outer contour it is emitted
// first, since the walk starts from the lowest, leftmost link.
func (b *boundary) joinPolygons() {
	maxCount := int64(polygonWalkFactor) * int64(len(b.hlinks))
	for i := range b.hseries {
		for _, id := range b.hseries[i].links {
			if !b.hlinks[id].consumed {
				b.polygons = append(b.polygons, b.walkPolygon(id, maxCount))
			}
		}
	}
}

// walkPolygon traces one closed boundary starting from horizontal link
// start, alternating horizontal and vertical links via neighbor ids and
// marking every visited link consumed.
func (b *boundary) walkPolygon(start int32, maxCount int64) []BoundaryLink {
	var result []BoundaryLink
	h := start
	v := b.hlinks[start].nTo
	var count int64
	for {
		hl := &b.hlinks[h]
		vl := &b.vlinks[v]
		if hl.consumed || vl.consumed {
			corrupt("polygon walk", "revisited link before closing the boundary")
		}
		result = append(result, b.publicHLink(h), b.publicVLink(v))
		hl.consumed = true
		vl.consumed = true
		if vl.nFrom == h {
			h = vl.nTo
		} else {
			h = vl.nFrom
		}
		next := &b.hlinks[h]
		if next.nFrom < 0 || next.nTo < 0 {
			corrupt("polygon walk", "horizontal link %d has an unpaired end", h)
		}
		if next.nFrom == v {
			v = next.nTo
		} else {
			v = next.nFrom
		}
		if count++; count > maxCount {
			corrupt("polygon walk", "walk exceeded %d links", maxCount)
		}
		if h == start {
			return result
		}
	}
}

// accumulateArea sums the signed contribution of every horizontal link:
// (to-from)*coord, negated for opening links. The result equals the
// union's area, independently of the polygon walk.
func (b *boundary) accumulateArea() {
	var area float64
	for i := range b.hlinks {
		hl := &b.hlinks[i]
		contribution := float64(hl.to-hl.from) * float64(b.hseries[hl.series].coord)
		if b.hseries[hl.series].first {
			area -= contribution
		} else {
			area += contribution
		}
	}
	b.area = area
}

// publicHLink converts an arena horizontal link to its public form.
func (b *boundary) publicHLink(id int32) BoundaryLink {
	hl := &b.hlinks[id]
	ss := &b.hseries[hl.series]
	return BoundaryLink{horizontal: true, opening: ss.first, coord: ss.coord, from: hl.from, to: hl.to}
}

// publicVLink converts an arena vertical link to its public form.
func (b *boundary) publicVLink(id int32) BoundaryLink {
	vl := &b.vlinks[id]
	ss := &b.vseries[vl.series]
	return BoundaryLink{horizontal: false, opening: ss.first, coord: ss.coord, from: vl.from, to: vl.to}
}

// allHorizontalLinks returns the public form of every horizontal link,
// in series order.
func (b *boundary) allHorizontalLinks() []BoundaryLink {
	out := make([]BoundaryLink, 0, len(b.hlinks))
	for i := range b.hlinks {
		out = append(out, b.publicHLink(int32(i)))
	}
	return out
}

// allVerticalLinks returns the public form of every vertical link.
func (b *boundary) allVerticalLinks() []BoundaryLink {
	out := make([]BoundaryLink, 0, len(b.vlinks))
	for i := range b.vlinks {
		out = append(out, b.publicVLink(int32(i)))
	}
	return out
}
