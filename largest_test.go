package rectunion

import (
	"math/rand"
	"testing"
)

func largestFor(t *testing.T, rects ...Rect) (Rect, bool) {
	t.Helper()
	return computeLargest(boundaryFor(t, rects...))
}

func TestLargest_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		rects    []Rect
		wantArea float64
	}{
		{
			name:     "single rectangle is its own largest",
			rects:    []Rect{{0, 0, 9, 9}},
			wantArea: 100,
		},
		{
			name:     "two disjoint squares",
			rects:    []Rect{{0, 0, 1, 1}, {5, 5, 6, 6}},
			wantArea: 4,
		},
		{
			name:     "touching pair fuses",
			rects:    []Rect{{0, 0, 4, 4}, {0, 5, 4, 9}},
			wantArea: 50,
		},
		{
			name: "plus shape arm wins",
			rects: []Rect{
				{5, 0, 9, 14},
				{0, 5, 14, 9},
				{5, 5, 9, 9},
			},
			wantArea: 75,
		},
		{
			name:     "ring bounded by the hole",
			rects:    ringRects(),
			wantArea: 30,
		},
		{
			name:     "staircase",
			rects:    []Rect{{0, 0, 9, 2}, {0, 0, 6, 5}, {0, 0, 3, 8}},
			wantArea: 42,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := largestFor(t, tt.rects...)
			if !ok {
				t.Fatal("no largest rectangle found")
			}
			if got.Area() != tt.wantArea {
				t.Errorf("largest = %v (area %v), want area %v", got, got.Area(), tt.wantArea)
			}
			assertContained(t, got, tt.rects)
		})
	}
}

func TestLargest_Empty(t *testing.T) {
	if r, ok := largestFor(t); ok {
		t.Errorf("largest of empty union = %v, want none", r)
	}
}

func TestLargest_SingleRectangleExact(t *testing.T) {
	want := Rect{3, -2, 11, 4}
	got, ok := largestFor(t, want)
	if !ok || got != want {
		t.Errorf("largest = %v, want %v", got, want)
	}
}

// TestLargest_BruteForce cross-checks the hypograph search against an
// exhaustive search over random small unions.
func TestLargest_BruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.Intn(5)
		rects := make([]Rect, n)
		for i := range rects {
			x, y := int64(rng.Intn(10)), int64(rng.Intn(10))
			rects[i] = Rect{x, y, x + int64(rng.Intn(6)), y + int64(rng.Intn(6))}
		}
		got, ok := largestFor(t, rects...)
		if !ok {
			t.Fatalf("trial %d: no largest rectangle for %v", trial, rects)
		}
		want := bruteLargestArea(rects)
		if got.Area() != want {
			t.Fatalf("trial %d: largest = %v (area %v), want area %v for %v",
				trial, got, got.Area(), want, rects)
		}
		assertContained(t, got, rects)
	}
}

func assertContained(t *testing.T, r Rect, rects []Rect) {
	t.Helper()
	for y := r.MinY; y <= r.MaxY; y++ {
	cells:
		for x := r.MinX; x <= r.MaxX; x++ {
			for _, src := range rects {
				if src.Contains(x, y) {
					continue cells
				}
			}
			t.Fatalf("largest rectangle %v not contained: cell (%d, %d) outside the union", r, x, y)
		}
	}
}

// bruteLargestArea enumerates every axis-parallel rectangle within the
// bounding box of the input and returns the largest area fully covered.
func bruteLargestArea(rects []Rect) float64 {
	bounds := rects[0]
	for _, r := range rects[1:] {
		bounds = bounds.Union(r)
	}
	w := int(bounds.SpanX())
	h := int(bounds.SpanY())
	covered := make([][]bool, h)
	for y := range covered {
		covered[y] = make([]bool, w)
		for x := range covered[y] {
			for _, r := range rects {
				if r.Contains(bounds.MinX+int64(x), bounds.MinY+int64(y)) {
					covered[y][x] = true
					break
				}
			}
		}
	}
	var best int
	for y0 := 0; y0 < h; y0++ {
		for x0 := 0; x0 < w; x0++ {
			// widest fully-covered rectangle with top-left cell (x0, y0)
			maxW := w - x0
			for y1 := y0; y1 < h; y1++ {
				width := 0
				for x1 := x0; x1 < x0+maxW && covered[y1][x1]; x1++ {
					width++
				}
				if width == 0 {
					break
				}
				maxW = width
				if area := width * (y1 - y0 + 1); area > best {
					best = area
				}
			}
		}
	}
	return float64(best)
}
