package rectunion

import (
	"errors"
	"sync"
	"testing"
)

func TestBuild_InvalidRect(t *testing.T) {
	_, err := Build([]Rect{{0, 0, 4, 4}, {5, 5, 4, 9}})
	if !errors.Is(err, ErrInvalidRect) {
		t.Fatalf("Build with inverted rect: err = %v, want ErrInvalidRect", err)
	}
}

func TestUnion_Empty(t *testing.T) {
	u := MustBuild(nil)
	if u.Len() != 0 {
		t.Errorf("Len() = %d, want 0", u.Len())
	}
	if _, ok := u.Bounds(); ok {
		t.Error("Bounds() reported a rectangle for the empty union")
	}
	if got := u.ConnectedComponentCount(); got != 0 {
		t.Errorf("ConnectedComponentCount() = %d, want 0", got)
	}
	if got := u.Boundaries(); len(got) != 0 {
		t.Errorf("Boundaries() = %v, want none", got)
	}
	if got := u.Area(); got != 0 {
		t.Errorf("Area() = %v, want 0", got)
	}
	if r, ok := u.LargestRectangle(); ok {
		t.Errorf("LargestRectangle() = %v, want none", r)
	}
}

func TestUnion_Bounds(t *testing.T) {
	u := MustBuild([]Rect{{2, 3, 6, 8}, {-4, 5, 0, 6}, {1, -9, 1, -9}})
	got, ok := u.Bounds()
	want := Rect{-4, -9, 6, 8}
	if !ok || got != want {
		t.Errorf("Bounds() = %v, %v, want %v", got, ok, want)
	}
}

func TestUnion_RectsIsACopy(t *testing.T) {
	u := MustBuild([]Rect{{0, 0, 4, 4}})
	u.Rects()[0] = Rect{9, 9, 9, 9}
	if got := u.Rects()[0]; got != (Rect{0, 0, 4, 4}) {
		t.Errorf("source rectangle mutated through Rects(): %v", got)
	}
}

func TestUnion_AreaMatchesGridCount(t *testing.T) {
	tests := []struct {
		name  string
		rects []Rect
	}{
		{name: "overlap", rects: []Rect{{0, 0, 5, 5}, {3, 3, 9, 9}}},
		{name: "coincident", rects: []Rect{{1, 1, 4, 4}, {1, 1, 4, 4}}},
		{name: "ring", rects: ringRects()},
		{name: "plus", rects: []Rect{{5, 0, 9, 14}, {0, 5, 14, 9}, {5, 5, 9, 9}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := MustBuild(tt.rects, WithVerify(VerifyFull))
			if got, want := u.Area(), gridArea(u); got != want {
				t.Errorf("Area() = %v, grid count %v", got, want)
			}
		})
	}
}

func TestUnion_ConnectedComponent(t *testing.T) {
	u := MustBuild([]Rect{
		{0, 0, 4, 4}, {4, 4, 8, 8},
		{20, 0, 24, 4},
	}, WithVerify(VerifyFull))
	if got := u.ConnectedComponentCount(); got != 2 {
		t.Fatalf("ConnectedComponentCount() = %d, want 2", got)
	}

	var totalLen int
	var totalArea float64
	for i := 0; i < u.ConnectedComponentCount(); i++ {
		sub, err := u.ConnectedComponent(i)
		if err != nil {
			t.Fatalf("ConnectedComponent(%d): %v", i, err)
		}
		if got := sub.ConnectedComponentCount(); got != 1 {
			t.Errorf("component %d reports %d own components", i, got)
		}
		totalLen += sub.Len()
		totalArea += sub.Area()
	}
	if totalLen != u.Len() {
		t.Errorf("component sizes sum to %d, want %d", totalLen, u.Len())
	}
	if totalArea != u.Area() {
		t.Errorf("component areas sum to %v, union area %v", totalArea, u.Area())
	}

	if _, err := u.ConnectedComponent(2); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("out-of-range component: err = %v, want ErrIndexOutOfRange", err)
	}
	if _, err := u.ConnectedComponent(-1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("negative component: err = %v, want ErrIndexOutOfRange", err)
	}
}

func TestUnion_NestedSingleBoundary(t *testing.T) {
	// A rectangle strictly inside another adds nothing to the union:
	// one component via the nested-connection rule, and the absorbed
	// rectangle leaves no trace in the boundary.
	u := MustBuild([]Rect{{0, 0, 9, 9}, {3, 3, 5, 5}}, WithVerify(VerifyFull))
	if got := u.ConnectedComponentCount(); got != 1 {
		t.Errorf("ConnectedComponentCount() = %d, want 1", got)
	}
	if got := u.Boundaries(); len(got) != 1 {
		t.Errorf("Boundaries() returned %d polygons, want 1", len(got))
	}
	if got := u.Area(); got != 100 {
		t.Errorf("Area() = %v, want 100", got)
	}
}

func TestUnion_LinkAccessors(t *testing.T) {
	u := MustBuild(ringRects(), WithVerify(VerifyFull), WithSecondSideConnections(true))
	h, v := u.HorizontalLinks(), u.VerticalLinks()
	if len(h) != len(v) {
		t.Fatalf("%d horizontal links, %d vertical", len(h), len(v))
	}
	for _, l := range h {
		if !l.Horizontal() {
			t.Errorf("vertical link %v among horizontals", l)
		}
	}
	for _, l := range v {
		if l.Horizontal() {
			t.Errorf("horizontal link %v among verticals", l)
		}
	}
}

func TestUnion_ConcurrentAccess(t *testing.T) {
	u := MustBuild(ringRects())
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := u.Area(); got != 84 {
				t.Errorf("Area() = %v, want 84", got)
			}
			if got := u.ConnectedComponentCount(); got != 1 {
				t.Errorf("ConnectedComponentCount() = %d, want 1", got)
			}
			if r, ok := u.LargestRectangle(); !ok || r.Area() != 30 {
				t.Errorf("LargestRectangle() = %v, %v", r, ok)
			}
			if got := len(u.Boundaries()); got != 2 {
				t.Errorf("Boundaries() returned %d polygons, want 2", got)
			}
		}()
	}
	wg.Wait()
}

// gridArea counts covered integer cells inside the bounds.
func gridArea(u *Union) float64 {
	bounds, ok := u.Bounds()
	if !ok {
		return 0
	}
	var count float64
	for y := bounds.MinY; y <= bounds.MaxY; y++ {
		for x := bounds.MinX; x <= bounds.MaxX; x++ {
			if u.ContainsPoint(x, y) {
				count++
			}
		}
	}
	return count
}
