package main

import (
	"strings"
	"testing"

	"github.com/gridplane/rectunion"
)

func TestReadRects(t *testing.T) {
	input := `
// a union of three rectangles
0 0 4 4
5 0 9 4 // touches the first
-2 -2 -1 -1
`
	rects, err := readRects(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	want := []rectunion.Rect{
		{MinX: 0, MinY: 0, MaxX: 4, MaxY: 4},
		{MinX: 5, MinY: 0, MaxX: 9, MaxY: 4},
		{MinX: -2, MinY: -2, MaxX: -1, MaxY: -1},
	}
	if len(rects) != len(want) {
		t.Fatalf("got %d rects, want %d", len(rects), len(want))
	}
	for i := range want {
		if rects[i] != want[i] {
			t.Errorf("rect %d = %v, want %v", i, rects[i], want[i])
		}
	}
}

func TestReadRects_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "too few fields", input: "0 0 4"},
		{name: "too many fields", input: "0 0 4 4 4"},
		{name: "not a number", input: "0 0 four 4"},
		{name: "inverted rect", input: "5 0 4 4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := readRects(strings.NewReader(tt.input)); err == nil {
				t.Errorf("readRects(%q) succeeded, want error", tt.input)
			}
		})
	}
}

func TestReadRects_Empty(t *testing.T) {
	rects, err := readRects(strings.NewReader("// only comments\n\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(rects) != 0 {
		t.Errorf("got %d rects, want 0", len(rects))
	}
}
