package rectunion

import "testing"

func components(t *testing.T, secondSides bool, rects ...Rect) [][]int32 {
	t.Helper()
	frames := framesOf(t, rects...)
	sl := buildSideLists(frames)
	return computeComponents(frames, sl, secondSides, VerifyBasic)
}

func TestComponents_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		rects []Rect
		want  int
	}{
		{
			name:  "single",
			rects: []Rect{{0, 0, 9, 9}},
			want:  1,
		},
		{
			name:  "two disjoint",
			rects: []Rect{{0, 0, 1, 1}, {5, 5, 6, 6}},
			want:  2,
		},
		{
			name:  "edge touching",
			rects: []Rect{{0, 0, 4, 4}, {0, 5, 4, 9}},
			want:  1,
		},
		{
			name:  "corner touching",
			rects: []Rect{{0, 0, 4, 4}, {5, 5, 9, 9}},
			want:  1,
		},
		{
			name:  "overlapping",
			rects: []Rect{{0, 0, 5, 5}, {3, 3, 9, 9}},
			want:  1,
		},
		{
			name:  "nested",
			rects: []Rect{{0, 0, 9, 9}, {3, 3, 5, 5}},
			want:  1,
		},
		{
			name:  "chain of touching",
			rects: []Rect{{0, 0, 1, 9}, {2, 0, 3, 9}, {4, 0, 5, 9}, {6, 0, 7, 9}},
			want:  1,
		},
		{
			name: "two clusters",
			rects: []Rect{
				{0, 0, 4, 4}, {4, 4, 8, 8},
				{20, 0, 24, 4}, {22, 2, 26, 6},
			},
			want: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := components(t, false, tt.rects...)
			if len(got) != tt.want {
				t.Fatalf("got %d components, want %d", len(got), tt.want)
			}
			var total int
			for _, c := range got {
				total += len(c)
			}
			if total != len(tt.rects) {
				t.Errorf("component sizes sum to %d, want %d", total, len(tt.rects))
			}
		})
	}
}

func TestComponents_SecondSidesEquivalent(t *testing.T) {
	rects := []Rect{
		{0, 0, 4, 4}, {0, 5, 4, 9}, {5, 5, 9, 9},
		{20, 0, 24, 4}, {22, 2, 26, 6},
		{40, 40, 41, 41},
		{0, 20, 9, 29}, {3, 23, 5, 25},
	}
	plain := components(t, false, rects...)
	both := components(t, true, rects...)
	if len(plain) != len(both) {
		t.Fatalf("%d components without second sides, %d with", len(plain), len(both))
	}
	for i := range plain {
		if len(plain[i]) != len(both[i]) {
			t.Errorf("component %d: size %d without second sides, %d with", i, len(plain[i]), len(both[i]))
		}
	}
}

func TestComponents_Empty(t *testing.T) {
	if got := computeComponents(nil, buildSideLists(nil), false, VerifyOff); got != nil {
		t.Errorf("components of empty input = %v, want nil", got)
	}
}
