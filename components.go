package rectunion

import "time"

// connectivityEvents builds the sweep rows of the connectivity pass: one
// event per horizontal frame side, in sorted order.
func connectivityEvents(sl *sideLists) []sweepEvent {
	events := make([]sweepEvent, 0, len(sl.hOrder))
	for _, id := range sl.hOrder {
		s := &sl.hsides[id]
		events = append(events, sweepEvent{
			first:   s.first,
			coord:   s.coord,
			from:    s.from,
			to:      s.to,
			vFrom:   sideID(s.frame, true),
			vTo:     sideID(s.frame, false),
			frames:  frameList(s.frame),
			payload: s.frame,
		})
	}
	return events
}

// frameList wraps a single frame index for a sweep event.
func frameList(f int32) []int32 { return []int32{f} }

// fillConnections sweeps the horizontal sides and records an edge for
// every adjacency the sweep observes. Processing only opening sides is
// sufficient: a touching pair always produces its edge through at least
// one opening event. When secondSides is set, closing sides are
// processed as well; the extra events can only repeat edges already
// found, so the option is redundant and off by default.
func fillConnections(frames []frame, sl *sideLists, secondSides bool, verify VerifyLevel) ([][]int32, int) {
	adjacency := make([][]int32, len(frames))
	count := 0
	addEdge := func(a, b int32) {
		if a == b {
			return
		}
		adjacency[a] = append(adjacency[a], b)
		adjacency[b] = append(adjacency[b], a)
		count++
	}

	sw := newSweep(sl.vsides, connectivityEvents(sl), false, verify)
	for sw.next() {
		row := sw.cur()
		if row.first {
			// A frame lying strictly inside another rectangle crosses
			// none of its vertical sides; the predecessor bracket's
			// positive depth still proves they share a component, so a
			// fictive edge keeps nested frames reachable.
			if i := sw.lastBeforeLeft(); i >= 0 && sw.set.items[i].depth > 0 {
				addEdge(sideFrame(sw.set.items[i].vside), row.payload)
			}
		}
		if row.first || secondSides {
			if verify >= VerifyBasic {
				sw.checkRowCoverage()
			}
			lo, hi := sw.currentRange()
			for i := lo; i < hi; i++ {
				addEdge(sideFrame(sw.set.items[i].vside), row.payload)
			}
		}
	}
	return adjacency, count
}

// findComponents extracts connected components from the adjacency lists
// by breadth-first search over all frames.
func findComponents(n int, adjacency [][]int32) [][]int32 {
	var result [][]int32
	visited := make([]bool, n)
	var queue []int32
	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		var component []int32
		queue = append(queue[:0], int32(start))
		visited[start] = true
		for len(queue) > 0 {
			f := queue[0]
			queue = queue[1:]
			component = append(component, f)
			for _, nb := range adjacency[f] {
				if !visited[nb] {
					visited[nb] = true
					queue = append(queue, nb)
				}
			}
		}
		result = append(result, component)
	}
	return result
}

// computeComponents runs the whole connectivity pass.
func computeComponents(frames []frame, sl *sideLists, secondSides bool, verify VerifyLevel) [][]int32 {
	if len(frames) == 0 {
		return nil
	}
	start := time.Now()
	adjacency, edges := fillConnections(frames, sl, secondSides, verify)
	components := findComponents(len(frames), adjacency)
	logger().Debug("connected components found",
		"rectangles", len(frames),
		"connections", edges,
		"components", len(components),
		"elapsed", time.Since(start))
	return components
}

// checkComponentsDisjoint verifies that no two frames of different
// components intersect, a stronger condition than the engine needs
// (touching frames must share a component). VerifyFull only.
func checkComponentsDisjoint(rects []Rect, components [][]int32) {
	for i := 0; i < len(components); i++ {
		for _, a := range components[i] {
			for j := i + 1; j < len(components); j++ {
				for _, b := range components[j] {
					if rects[a].Intersects(rects[b]) {
						corrupt("connectivity", "frames %d and %d intersect across components %d and %d", a, b, i, j)
					}
				}
			}
		}
	}
}
