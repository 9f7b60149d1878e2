package rectunion

import "sort"

// linkSweep advances over the horizontal boundary links, sorted by
// coordinate, maintaining the set of vertical links crossing the space
// between the previous and the current row. Unlike the frame sweep the
// status structure needs no depth: boundary verticals alternate
// strictly between entering and leaving the figure, so the set stores
// only the x ranks of the open verticals and all queries reduce to
// parity counting.
type linkSweep struct {
	b     *boundary
	idx   int   // current link index; -1 before the first row
	coord int64 // coordinate of the current link's row

	open []int32 // x ranks of crossing vertical links, sorted
}

func newLinkSweep(b *boundary) *linkSweep {
	return &linkSweep{b: b, idx: -1}
}

func (s *linkSweep) cur() int32 { return int32(s.idx) }

// next advances to the following horizontal link, updating the open set
// when the row coordinate changes. Reports false after the last link;
// the open set must be empty at that point.
func (s *linkSweep) next() bool {
	n := len(s.b.hlinks)
	if s.idx > n {
		corrupt("link sweep", "advanced past the end of the link list")
	}
	hasCur := s.idx >= 0 && s.idx < n
	hasNext := s.idx+1 < n
	var newCoord int64
	if hasNext {
		newCoord = s.b.hseries[s.b.hlinks[s.idx+1].series].coord
	}
	if !hasCur || !hasNext || newCoord != s.coord {
		if hasCur {
			for i := s.idx; i >= 0 && s.b.hseries[s.b.hlinks[i].series].coord == s.coord; i-- {
				s.leaveRow(int32(i))
			}
		}
		if hasNext {
			for i := s.idx + 1; i < n && s.b.hseries[s.b.hlinks[i].series].coord == newCoord; i++ {
				s.enterRow(int32(i))
			}
		}
	}
	if len(s.open)%2 != 0 {
		corrupt("link sweep", "odd open vertical count %d", len(s.open))
	}
	s.idx++
	s.coord = newCoord
	if !hasNext {
		if len(s.open) != 0 {
			corrupt("link sweep", "non-empty open set at the end of the sweep: %d entries", len(s.open))
		}
		return false
	}
	return true
}

// fromBelow reports whether the vertical link v approaches the
// horizontal link h from lower coordinates, i.e. h sits at v's upper
// end.
func (s *linkSweep) fromBelow(v, h int32) bool {
	return s.b.vlinks[v].nTo == h
}

// enterRow updates the open set for an opening horizontal link moving
// into the space above its row. Each of its two neighbor verticals
// either starts here (extends upward, so its x becomes a crossing) or
// ends here (extended from below, so its x stops crossing).
func (s *linkSweep) enterRow(id int32) {
	hl := &s.b.hlinks[id]
	if !s.b.hseries[hl.series].first {
		return
	}
	if s.fromBelow(hl.nFrom, id) {
		s.remove(s.b.xRankOfVLink(hl.nFrom))
	} else {
		s.add(s.b.xRankOfVLink(hl.nFrom))
	}
	if s.fromBelow(hl.nTo, id) {
		s.remove(s.b.xRankOfVLink(hl.nTo))
	} else {
		s.add(s.b.xRankOfVLink(hl.nTo))
	}
}

// leaveRow is the mirror of enterRow for closing horizontal links: a
// neighbor vertical that ended at the link was crossing below the row
// and is removed; one that starts at the link begins crossing above.
func (s *linkSweep) leaveRow(id int32) {
	hl := &s.b.hlinks[id]
	if s.b.hseries[hl.series].first {
		return
	}
	if s.fromBelow(hl.nFrom, id) {
		s.remove(s.b.xRankOfVLink(hl.nFrom))
	} else {
		s.add(s.b.xRankOfVLink(hl.nFrom))
	}
	if s.fromBelow(hl.nTo, id) {
		s.remove(s.b.xRankOfVLink(hl.nTo))
	} else {
		s.add(s.b.xRankOfVLink(hl.nTo))
	}
}

// maxLeftIndex returns the leftmost x-slab index from which the row of
// the current link extends through the figure: the open verticals
// strictly left of the link's start alternate leave/enter, so an odd
// count means the figure continues to the nearest of them.
func (s *linkSweep) maxLeftIndex() int32 {
	from := s.b.xRankOfVLink(s.b.hlinks[s.idx].nFrom)
	pos := s.searchOpen(from)
	if pos%2 == 0 {
		return from
	}
	return s.open[pos-1]
}

// minRightIndex is the mirror query at the link's right end.
func (s *linkSweep) minRightIndex() int32 {
	to := s.b.xRankOfVLink(s.b.hlinks[s.idx].nTo)
	pos := s.searchOpen(to + 1)
	if (len(s.open)-pos)%2 == 0 {
		return to
	}
	return s.open[pos]
}

// searchOpen returns the number of open ranks strictly below r.
func (s *linkSweep) searchOpen(r int32) int {
	return sort.Search(len(s.open), func(i int) bool { return s.open[i] >= r })
}

func (s *linkSweep) add(r int32) {
	pos := s.searchOpen(r)
	if pos < len(s.open) && s.open[pos] == r {
		corrupt("link sweep", "duplicate open vertical at x rank %d", r)
	}
	s.open = append(s.open, 0)
	copy(s.open[pos+1:], s.open[pos:])
	s.open[pos] = r
}

func (s *linkSweep) remove(r int32) {
	pos := s.searchOpen(r)
	if pos >= len(s.open) || s.open[pos] != r {
		corrupt("link sweep", "removing absent open vertical at x rank %d", r)
	}
	s.open = append(s.open[:pos], s.open[pos+1:]...)
}

// xRankOfVLink returns the rank among distinct boundary x coordinates
// of the vertical series the link lies on.
func (b *boundary) xRankOfVLink(id int32) int32 {
	r := b.vseries[b.vlinks[id].series].xRank
	if r < 0 {
		corrupt("link sweep", "vertical series of link %d has no x rank", id)
	}
	return r
}
