package rectunion

// BoundaryVertices returns the corner points of a boundary polygon, as
// returned by [Union.Boundaries], on the half-open scale: vertex k is
// the junction of link k-1 and link k, so the polygon visits vertex k
// before traversing link k.
func BoundaryVertices(polygon []BoundaryLink) []Point {
	vertices := make([]Point, 0, len(polygon))
	for k := range polygon {
		prev := polygon[(k+len(polygon)-1)%len(polygon)]
		vertices = append(vertices, junction(prev, polygon[k]))
	}
	return vertices
}

// BoundaryVerticesAtRects is like [BoundaryVertices] but on the
// inclusive scale of the source rectangles: each coordinate taken from
// a closing link is shifted down by one, so every vertex is an integer
// point of the union lying on its edge.
func BoundaryVerticesAtRects(polygon []BoundaryLink) []Point {
	vertices := BoundaryVertices(polygon)
	for k := range polygon {
		prev := polygon[(k+len(polygon)-1)%len(polygon)]
		cur := polygon[k]
		h, v := prev, cur
		if !h.horizontal {
			h, v = cur, prev
		}
		if !v.opening {
			vertices[k].X--
		}
		if !h.opening {
			vertices[k].Y--
		}
	}
	return vertices
}

// junction returns the point shared by two consecutive polygon links.
func junction(a, b BoundaryLink) Point {
	h, v := a, b
	if !h.horizontal {
		h, v = b, a
	}
	if h.horizontal == v.horizontal {
		corrupt("vertices", "polygon links of equal orientation: %v and %v", a, b)
	}
	return Point{X: v.coord, Y: h.coord}
}

// BoundaryArea returns the signed area of one boundary polygon:
// positive for an outer contour, negative for a hole. Summing over all
// polygons of a union gives [Union.Area].
func BoundaryArea(polygon []BoundaryLink) float64 {
	var area float64
	for _, l := range polygon {
		if !l.horizontal {
			continue
		}
		contribution := float64(l.to-l.from) * float64(l.coord)
		if l.opening {
			area -= contribution
		} else {
			area += contribution
		}
	}
	return area
}
