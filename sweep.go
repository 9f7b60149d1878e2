package rectunion

// sweepEvent is one row of a horizontal sweep: either a single
// horizontal frame side (connectivity pass) or a whole horizontal side
// series (boundary pass). frames lists the frames whose bracket pairs
// the event controls; payload carries the frame or series index for the
// pass consuming the rows.
type sweepEvent struct {
	first   bool
	coord   int64
	from    int64
	to      int64
	vFrom   int32 // transversal end side ids for row queries
	vTo     int32
	frames  []int32
	payload int32
}

// sweep drives the bracket set over a sorted event list. Advancing to a
// row whose coordinate group differs from the previous one processes two
// batches atomically: the brackets of every closing side at the
// coordinate being left are removed, and a bracket pair is added for
// every opening side at the new coordinate. In strict mode (used by the
// boundary pass) groups are split additionally by the opening/closing
// kind, and a group's own opening brackets are added only when the sweep
// leaves it, so each row observes the sweep state excluding its own
// coordinate group's openings.
type sweep struct {
	events []sweepEvent
	strict bool
	verify VerifyLevel
	set    bracketSet
	idx    int // current event index; -1 before the first row
	done   bool
}

func newSweep(vsides []side, events []sweepEvent, strict bool, verify VerifyLevel) *sweep {
	return &sweep{
		events: events,
		strict: strict,
		verify: verify,
		set:    bracketSet{vsides: vsides},
		idx:    -1,
	}
}

// cur returns the current row. Valid only after next reported true.
func (s *sweep) cur() *sweepEvent { return &s.events[s.idx] }

// next advances to the following row, applying bracket batches at group
// transitions. It reports false when the input is exhausted; at that
// point a non-empty bracket set is a fatal consistency error.
func (s *sweep) next() bool {
	if s.done {
		corrupt("sweep", "advanced past the end of the event list")
	}
	var cur, nxt *sweepEvent
	if s.idx >= 0 {
		cur = &s.events[s.idx]
	}
	if s.idx+1 < len(s.events) {
		nxt = &s.events[s.idx+1]
	}
	if s.strict {
		if cur == nil || nxt == nil || nxt.coord != cur.coord || nxt.first != cur.first {
			if cur != nil {
				for i := s.idx; i >= 0; i-- {
					e := &s.events[i]
					if e.coord != cur.coord || e.first != cur.first {
						break
					}
					if e.first {
						s.addEvent(e)
					}
				}
			}
			if nxt != nil {
				for i := s.idx + 1; i < len(s.events); i++ {
					e := &s.events[i]
					if e.coord != nxt.coord || e.first != nxt.first {
						break
					}
					if !e.first {
						s.removeEvent(e)
					}
				}
			}
		}
	} else {
		if cur == nil || nxt == nil || nxt.coord != cur.coord {
			if cur != nil {
				for i := s.idx; i >= 0; i-- {
					e := &s.events[i]
					if e.coord != cur.coord {
						break
					}
					if !e.first {
						s.removeEvent(e)
					}
				}
			}
			if nxt != nil {
				for i := s.idx + 1; i < len(s.events); i++ {
					e := &s.events[i]
					if e.coord != nxt.coord {
						break
					}
					if e.first {
						s.addEvent(e)
					}
				}
			}
		}
	}
	s.idx++
	if nxt == nil {
		s.done = true
		if s.set.len() != 0 {
			corrupt("sweep", "non-empty bracket set at the end of the sweep: %d entries", s.set.len())
		}
		return false
	}
	if s.set.len()%2 != 0 {
		corrupt("sweep", "odd bracket count %d", s.set.len())
	}
	return true
}

func (s *sweep) addEvent(e *sweepEvent) {
	for _, f := range e.frames {
		s.set.insertFrame(f)
	}
}

func (s *sweep) removeEvent(e *sweepEvent) {
	for _, f := range e.frames {
		s.set.removeFrame(f)
	}
}

// currentRange returns the bracket index range covering the current
// row's transversal extent, both end brackets included.
func (s *sweep) currentRange() (lo, hi int) {
	e := s.cur()
	return s.set.rangeInclusive(
		bracketKey{e.vFrom, true},
		bracketKey{e.vTo, false})
}

// lastBeforeLeft returns the index of the bracket just before the
// current row's left transversal bound, or -1. A positive depth there
// means the row starts strictly inside some open rectangle, which the
// connectivity pass turns into a fictive nesting edge and the boundary
// pass reads as "not at the boundary".
func (s *sweep) lastBeforeLeft() int {
	e := s.cur()
	return s.set.lower(bracketKey{e.vFrom, true})
}

// checkRowCoverage asserts every bracket in the current range crosses
// the row's coordinate, used at VerifyBasic.
func (s *sweep) checkRowCoverage() {
	e := s.cur()
	lo, hi := s.currentRange()
	for i := lo; i < hi && i < s.set.len(); i++ {
		v := &s.set.vsides[s.set.items[i].vside]
		if e.coord < v.from || e.coord > v.to {
			corrupt("sweep", "bracket %d does not cross row at %d", i, e.coord)
		}
	}
}
