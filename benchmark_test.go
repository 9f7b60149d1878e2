package rectunion

import (
	"math/rand"
	"testing"
)

// benchRects builds a reproducible cluttered input: n rectangles of
// mixed sizes over a field that keeps them heavily overlapping.
func benchRects(n int) []Rect {
	rng := rand.New(rand.NewSource(42))
	rects := make([]Rect, n)
	side := int64(4 * n)
	for i := range rects {
		x, y := rng.Int63n(side), rng.Int63n(side)
		rects[i] = Rect{
			MinX: x, MinY: y,
			MaxX: x + 1 + rng.Int63n(40), MaxY: y + 1 + rng.Int63n(40),
		}
	}
	return rects
}

func BenchmarkConnectedComponents(b *testing.B) {
	rects := benchRects(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		u := MustBuild(rects)
		if u.ConnectedComponentCount() == 0 {
			b.Fatal("no components")
		}
	}
}

func BenchmarkBoundary(b *testing.B) {
	rects := benchRects(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		u := MustBuild(rects)
		if u.Area() == 0 {
			b.Fatal("no area")
		}
	}
}

func BenchmarkLargestRectangle(b *testing.B) {
	rects := benchRects(500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		u := MustBuild(rects)
		if _, ok := u.LargestRectangle(); !ok {
			b.Fatal("no largest rectangle")
		}
	}
}
