package rectunion

// sideSeries is a maximal run of same-orientation, same-kind, same-
// coordinate sides whose extents overlap or touch, merged into one unit.
// The boundary pass works on series rather than raw sides so that a
// boundary link lying across several collinear frame sides is emitted
// once.
//
// Series are built per boundary computation. sideFrom and sideTo are ids
// of the transversal frame sides at the merged extent's two ends (for a
// horizontal series these are vertical side ids).
type sideSeries struct {
	first    bool
	coord    int64
	from     int64
	to       int64
	sideFrom int32
	sideTo   int32
	sides    []int32 // contained side ids, in sorted order

	// Boundary bookkeeping, filled by the boundary builder.
	links    []int32 // link ids lying on this series
	crossing []int32 // vertical series only: incident horizontal link ids
	xRank    int32   // vertical series only: rank among distinct boundary x
}

// expand tries to merge the side with arena id id into the series.
// It grows the extent to the union of the two and updates whichever
// transversal end reference moved. Reports false when the side belongs
// to a different run.
func (ss *sideSeries) expand(sides []side, id int32) bool {
	s := &sides[id]
	if s.coord != ss.coord || s.first != ss.first {
		return false
	}
	if s.from > ss.to || s.to < ss.from {
		return false
	}
	if s.from < ss.from {
		ss.from = s.from
		ss.sideFrom = sideID(s.frame, true)
	}
	if s.to > ss.to {
		ss.to = s.to
		ss.sideTo = sideID(s.frame, false)
	}
	ss.sides = append(ss.sides, id)
	return true
}

// buildSeries walks one sorted side ordering and fuses runs of
// overlapping or touching collinear sides. It returns the series in the
// same total order as the input, plus a side-id -> series-index mapping.
// No two series of the same kind and coordinate overlap.
func buildSeries(sides []side, order []int32) ([]sideSeries, []int32) {
	seriesOf := make([]int32, len(sides))
	var result []sideSeries
	for _, id := range order {
		if n := len(result); n > 0 && result[n-1].expand(sides, id) {
			seriesOf[id] = int32(n - 1)
			continue
		}
		s := &sides[id]
		result = append(result, sideSeries{
			first:    s.first,
			coord:    s.coord,
			from:     s.from,
			to:       s.to,
			sideFrom: sideID(s.frame, true),
			sideTo:   sideID(s.frame, false),
			sides:    []int32{id},
			xRank:    -1,
		})
		seriesOf[id] = int32(len(result) - 1)
	}
	return result, seriesOf
}

// checkSeriesOrder verifies the series list is sorted and disjoint per
// coordinate group, used at VerifyBasic.
func checkSeriesOrder(series []sideSeries) {
	for i := 1; i < len(series); i++ {
		a, b := &series[i-1], &series[i]
		if a.coord > b.coord {
			corrupt("series merge", "series out of order at %d", i)
		}
		if a.coord == b.coord && a.first == b.first && b.from <= a.to {
			corrupt("series merge", "overlapping series at %d", i)
		}
	}
}
