package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gridplane/rectunion"
)

// readRects parses a rectangle list: one rectangle per line as
// "minX minY maxX maxY", blank lines and // comments ignored. A
// trailing // comment on a data line is allowed.
func readRects(r io.Reader) ([]rectunion.Rect, error) {
	var rects []rectunion.Rect
	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Text()
		if i := strings.Index(line, "//"); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 4 {
			return nil, fmt.Errorf("line %d: want 4 coordinates, got %d", lineNo, len(fields))
		}
		var coords [4]int64
		for i, f := range fields {
			v, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %q is not an integer", lineNo, f)
			}
			coords[i] = v
		}
		rect, err := rectunion.NewRect(coords[0], coords[1], coords[2], coords[3])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		rects = append(rects, rect)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rects, nil
}
