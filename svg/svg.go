// Package svg renders a rectangle union to SVG: the source rectangles,
// the traced boundary polygons and optionally the largest contained
// rectangle.
package svg

import (
	"fmt"
	"io"
	"strings"

	svgo "github.com/ajstarks/svgo"

	"github.com/gridplane/rectunion"
)

// Options controls the rendered layers and their styles. Zero values
// select sensible defaults: scale 10, margin one cell, all layers on.
type Options struct {
	Scale  int // pixels per cell; 0 means 10
	Margin int // cells of padding around the bounds; 0 means 1

	HideFrames   bool // skip the source rectangles layer
	HideBoundary bool // skip the boundary polygons layer
	HideLargest  bool // skip the largest-rectangle layer

	FrameStyle    string
	BoundaryStyle string
	LargestStyle  string
}

const (
	defaultFrameStyle    = "fill:#9ecae1;fill-opacity:0.5;stroke:#3182bd"
	defaultBoundaryStyle = "fill:none;stroke:#e6550d;stroke-width:2"
	defaultLargestStyle  = "fill:none;stroke:#31a354;stroke-width:2;stroke-dasharray:4"
)

// Export writes the union as an SVG document.
func Export(w io.Writer, u *rectunion.Union, opt Options) {
	if opt.Scale <= 0 {
		opt.Scale = 10
	}
	if opt.Margin <= 0 {
		opt.Margin = 1
	}
	if opt.FrameStyle == "" {
		opt.FrameStyle = defaultFrameStyle
	}
	if opt.BoundaryStyle == "" {
		opt.BoundaryStyle = defaultBoundaryStyle
	}
	if opt.LargestStyle == "" {
		opt.LargestStyle = defaultLargestStyle
	}

	bounds, ok := u.Bounds()
	if !ok {
		canvas := svgo.New(w)
		canvas.Start(2*opt.Margin*opt.Scale, 2*opt.Margin*opt.Scale)
		canvas.End()
		return
	}
	tx := func(x int64) int { return int(x-bounds.MinX+int64(opt.Margin)) * opt.Scale }
	ty := func(y int64) int { return int(y-bounds.MinY+int64(opt.Margin)) * opt.Scale }

	canvas := svgo.New(w)
	canvas.Start(
		int(bounds.SpanX()+2*int64(opt.Margin))*opt.Scale,
		int(bounds.SpanY()+2*int64(opt.Margin))*opt.Scale,
	)
	if !opt.HideFrames {
		canvas.Group(`id="frames"`)
		for _, r := range u.Rects() {
			canvas.Rect(tx(r.MinX), ty(r.MinY),
				int(r.SpanX())*opt.Scale, int(r.SpanY())*opt.Scale,
				opt.FrameStyle)
		}
		canvas.Gend()
	}
	if !opt.HideBoundary {
		canvas.Group(`id="boundary"`)
		for _, polygon := range u.Boundaries() {
			canvas.Path(polygonPath(polygon, tx, ty), opt.BoundaryStyle)
		}
		canvas.Gend()
	}
	if !opt.HideLargest {
		if r, ok := u.LargestRectangle(); ok {
			canvas.Rect(tx(r.MinX), ty(r.MinY),
				int(r.SpanX())*opt.Scale, int(r.SpanY())*opt.Scale,
				opt.LargestStyle)
		}
	}
	canvas.End()
}

// polygonPath builds the SVG path data of one boundary polygon from its
// half-open vertices.
func polygonPath(polygon []rectunion.BoundaryLink, tx, ty func(int64) int) string {
	vertices := rectunion.BoundaryVertices(polygon)
	var b strings.Builder
	for i, p := range vertices {
		cmd := 'L'
		if i == 0 {
			cmd = 'M'
		}
		fmt.Fprintf(&b, "%c%d %d ", cmd, tx(p.X), ty(p.Y))
	}
	b.WriteString("Z")
	return b.String()
}
