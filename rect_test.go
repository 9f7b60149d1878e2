package rectunion

import (
	"errors"
	"testing"
)

func TestNewRect(t *testing.T) {
	tests := []struct {
		name     string
		min, max [2]int64
		wantErr  bool
	}{
		{name: "unit cell", min: [2]int64{0, 0}, max: [2]int64{0, 0}},
		{name: "ordinary", min: [2]int64{-3, 2}, max: [2]int64{7, 5}},
		{name: "inverted x", min: [2]int64{5, 0}, max: [2]int64{4, 9}, wantErr: true},
		{name: "inverted y", min: [2]int64{0, 1}, max: [2]int64{9, 0}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRect(tt.min[0], tt.min[1], tt.max[0], tt.max[1])
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewRect(%v, %v) = %v, want error", tt.min, tt.max, r)
				}
				if !errors.Is(err, ErrInvalidRect) {
					t.Errorf("error %v does not wrap ErrInvalidRect", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewRect(%v, %v): %v", tt.min, tt.max, err)
			}
			if !r.Valid() {
				t.Errorf("rect %v not valid", r)
			}
		})
	}
}

func TestRect_Area(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want float64
	}{
		{name: "unit cell", r: Rect{0, 0, 0, 0}, want: 1},
		{name: "10x10", r: Rect{0, 0, 9, 9}, want: 100},
		{name: "negative coords", r: Rect{-5, -5, -1, -3}, want: 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Area(); got != tt.want {
				t.Errorf("Area() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRect_Intersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{name: "overlap", a: Rect{0, 0, 4, 4}, b: Rect{3, 3, 7, 7}, want: true},
		{name: "shared edge", a: Rect{0, 0, 4, 4}, b: Rect{4, 0, 8, 4}, want: true},
		{name: "shared corner cell", a: Rect{0, 0, 4, 4}, b: Rect{4, 4, 8, 8}, want: true},
		{name: "adjacent cells", a: Rect{0, 0, 4, 4}, b: Rect{5, 0, 8, 4}, want: false},
		{name: "far apart", a: Rect{0, 0, 1, 1}, b: Rect{5, 5, 6, 6}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("%v.Intersects(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("%v.Intersects(%v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{2, 3, 6, 8}
	if !r.Contains(2, 3) || !r.Contains(6, 8) || !r.Contains(4, 5) {
		t.Error("inner points not contained")
	}
	if r.Contains(1, 3) || r.Contains(7, 8) || r.Contains(4, 9) {
		t.Error("outer points contained")
	}
	if !r.ContainsRect(Rect{3, 4, 5, 7}) || !r.ContainsRect(r) {
		t.Error("inner rects not contained")
	}
	if r.ContainsRect(Rect{2, 3, 7, 8}) {
		t.Error("wider rect contained")
	}
}

func TestRect_Union(t *testing.T) {
	got := Rect{0, 0, 1, 1}.Union(Rect{5, -2, 6, 0})
	want := Rect{0, -2, 6, 1}
	if got != want {
		t.Errorf("Union = %v, want %v", got, want)
	}
}
