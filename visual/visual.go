// Package visual rasterizes a rectangle union into an image: one pixel
// per cell, with the boundary cells and the largest contained rectangle
// highlighted, plus optional scaling and PNG output for quick visual
// inspection of a union.
package visual

import (
	"image"
	"image/color"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/gridplane/rectunion"
)

// Palette holds the cell colors of a rendering. The zero value is
// replaced by DefaultPalette.
type Palette struct {
	Background color.RGBA
	Interior   color.RGBA
	Boundary   color.RGBA
	Largest    color.RGBA
}

// DefaultPalette is used when Render is given a zero Palette.
var DefaultPalette = Palette{
	Background: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	Interior:   color.RGBA{R: 0x9e, G: 0xca, B: 0xe1, A: 0xff},
	Boundary:   color.RGBA{R: 0xe6, G: 0x55, B: 0x0d, A: 0xff},
	Largest:    color.RGBA{R: 0x31, G: 0xa3, B: 0x54, A: 0xff},
}

// Render draws the union at one pixel per cell with a one-cell margin.
// Boundary link cells overpaint the interior; the largest rectangle is
// drawn as an outline on top. An empty union renders as background
// only.
func Render(u *rectunion.Union, palette Palette) *image.RGBA {
	if palette == (Palette{}) {
		palette = DefaultPalette
	}
	bounds, ok := u.Bounds()
	if !ok {
		img := image.NewRGBA(image.Rect(0, 0, 2, 2))
		fill(img, palette.Background)
		return img
	}
	w := int(bounds.SpanX()) + 2
	h := int(bounds.SpanY()) + 2
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fill(img, palette.Background)

	px := func(x int64) int { return int(x-bounds.MinX) + 1 }
	py := func(y int64) int { return int(y-bounds.MinY) + 1 }

	for _, r := range u.Rects() {
		for y := r.MinY; y <= r.MaxY; y++ {
			for x := r.MinX; x <= r.MaxX; x++ {
				img.SetRGBA(px(x), py(y), palette.Interior)
			}
		}
	}
	for _, l := range u.HorizontalLinks() {
		paintCells(img, l.SideRect(), px, py, palette.Boundary)
	}
	for _, l := range u.VerticalLinks() {
		paintCells(img, l.SideRect(), px, py, palette.Boundary)
	}
	if r, ok := u.LargestRectangle(); ok {
		for x := r.MinX; x <= r.MaxX; x++ {
			img.SetRGBA(px(x), py(r.MinY), palette.Largest)
			img.SetRGBA(px(x), py(r.MaxY), palette.Largest)
		}
		for y := r.MinY; y <= r.MaxY; y++ {
			img.SetRGBA(px(r.MinX), py(y), palette.Largest)
			img.SetRGBA(px(r.MaxX), py(y), palette.Largest)
		}
	}
	return img
}

// Scale resizes a rendering to the given width and height with
// nearest-neighbor sampling, keeping cell edges crisp.
func Scale(img *image.RGBA, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}

// SavePNG renders the union and writes it as a PNG file, scaled by the
// given integer factor (minimum 1).
func SavePNG(path string, u *rectunion.Union, scale int) error {
	if scale < 1 {
		scale = 1
	}
	img := Render(u, Palette{})
	if scale > 1 {
		img = Scale(img, img.Bounds().Dx()*scale, img.Bounds().Dy()*scale)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, img)
}

func paintCells(img *image.RGBA, r rectunion.Rect, px, py func(int64) int, c color.RGBA) {
	for y := r.MinY; y <= r.MaxY; y++ {
		for x := r.MinX; x <= r.MaxX; x++ {
			img.SetRGBA(px(x), py(y), c)
		}
	}
}

func fill(img *image.RGBA, c color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}
