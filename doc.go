// Package rectunion computes exact set-theoretic properties of a union of
// axis-aligned integer rectangles in the plane.
//
// # Overview
//
// A [Union] is built once from a fixed collection of rectangles and answers
// three questions about the shape they cover:
//
//   - its connected components ([Union.ConnectedComponentCount],
//     [Union.ConnectedComponent]);
//   - its exact boundary as closed polygons of alternating horizontal and
//     vertical segments ([Union.Boundaries], [Union.Area]);
//   - the largest axis-aligned rectangle fully contained in the union
//     ([Union.LargestRectangle]).
//
// # Quick Start
//
//	u, err := rectunion.Build([]rectunion.Rect{
//		{MinX: 0, MinY: 0, MaxX: 9, MaxY: 9},
//		{MinX: 5, MinY: 5, MaxX: 14, MaxY: 14},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(u.ConnectedComponentCount()) // 1
//	fmt.Println(u.Area())                    // 175
//
// # Coordinate model
//
// All rectangles have inclusive integer bounds: the rectangle
// {0, 0, 9, 9} covers the 10x10 block of integer points from (0,0) to
// (9,9). Internally every computation runs on a half-open "bound" scale
// where that rectangle spans [0,10)x[0,10). Two rectangles that merely
// touch along an edge compare equal at the shared bound coordinate, so
// touching rectangles are connected and produce no seam in the boundary,
// with no epsilon arithmetic anywhere.
//
// Boundary links and the vertices returned by [BoundaryVertices] are
// expressed on the half-open scale; [BoundaryVerticesAtRects] converts
// them back to the inclusive scale of the input rectangles.
//
// # Concurrency
//
// A Union is immutable after construction. Derived results are computed
// lazily on first access and cached; the lazy step runs under a per-Union
// lock, so concurrent readers are safe.
//
// # Subpackages
//
// The engine itself has no output format beyond the in-memory link graph.
// The svg, visual and rindex subpackages, and the rectunion command,
// consume the public surface: SVG export, raster rendering, and R-tree
// point/region queries over a union's rectangles.
package rectunion
