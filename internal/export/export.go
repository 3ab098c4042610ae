// Package export renders a dataset to a PNG image through the same axis
// transform the interactive viewer uses, so a saved snapshot matches what
// the terminal shows.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"sort"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"termplot/internal/axis"
	"termplot/internal/dataset"
)

// Palette mirrors the TUI styles.
var (
	background = color.RGBA{R: 0x0B, G: 0x0F, B: 0x14, A: 0xFF}
	ink        = color.RGBA{R: 0xE6, G: 0xE6, B: 0xE6, A: 0xFF}
	accent     = color.RGBA{R: 0x7C, G: 0x3A, B: 0xED, A: 0xFF}
	dim        = color.RGBA{R: 0x24, G: 0x31, B: 0x41, A: 0xFF}
	faint      = color.RGBA{R: 0x6B, G: 0x72, B: 0x80, A: 0xFF}
)

// margin leaves room for the corner bound labels.
const margin = 24

// WritePNG renders the dataset at the given pixel size and writes it to
// path.
func WritePNG(d *dataset.Data, path string, w, h int) error {
	img, err := Render(d, w, h)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Render rasterizes the dataset into an RGBA image: polygons filled and
// outlined, lines stroked, points dotted, data bounds labeled at the plot
// corners.
func Render(d *dataset.Data, w, h int) (*image.RGBA, error) {
	if w < 4*margin || h < 4*margin {
		return nil, fmt.Errorf("image size %dx%d too small", w, h)
	}
	if d.Empty() {
		return nil, errors.New("nothing to render")
	}
	if !d.BBox.Valid() {
		return nil, errors.New("degenerate data bounds")
	}

	tr, err := axis.New(axis.Config{
		Canvas: []float64{margin, margin, float64(w - 1 - margin), float64(h - 1 - margin)},
		Data:   d.BBox.Rect(),
	})
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, background)
		}
	}

	for _, poly := range d.Polygons {
		drawPolygon(img, tr, poly)
	}
	for _, ls := range d.Lines {
		drawLine(img, tr, ls)
	}
	if len(d.Points) > 0 {
		drawPoints(img, tr, d.Points)
	}
	drawBoundLabels(img, tr, w, h)
	return img, nil
}

func drawPoints(img *image.RGBA, tr *axis.Transform, pts [][2]float64) {
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p[0], p[1]
	}
	cxs, cys, err := tr.Map(axis.Series(xs), axis.Series(ys))
	if err != nil {
		return
	}
	for i := range cxs {
		dot(img, int(cxs[i]+0.5), int(cys[i]+0.5))
	}
}

// dot paints a point marker: a 3x3 block with clipped corners.
func dot(img *image.RGBA, cx, cy int) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx != 0 && dy != 0 {
				continue
			}
			setPx(img, cx+dx, cy+dy, accent)
		}
	}
}

func drawLine(img *image.RGBA, tr *axis.Transform, ls [][2]float64) {
	var px, py int
	for i, p := range ls {
		cx, cy := tr.Point(p[0], p[1])
		x, y := int(cx+0.5), int(cy+0.5)
		if i > 0 {
			segment(img, px, py, x, y, ink)
		}
		px, py = x, y
	}
}

func drawPolygon(img *image.RGBA, tr *axis.Transform, poly [][][2]float64) {
	if len(poly) == 0 {
		return
	}
	// Fill the outer ring with the even-odd rule, one scanline at a time.
	outer := make([][2]int, 0, len(poly[0]))
	minY, maxY := img.Rect.Max.Y, 0
	for _, p := range poly[0] {
		cx, cy := tr.Point(p[0], p[1])
		x, y := int(cx+0.5), int(cy+0.5)
		outer = append(outer, [2]int{x, y})
		minY = min(minY, y)
		maxY = max(maxY, y)
	}
	for y := max(minY, 0); y <= min(maxY, img.Rect.Max.Y-1); y++ {
		var xs []int
		for i := range outer {
			a := outer[i]
			b := outer[(i+1)%len(outer)]
			if a[1] == b[1] {
				continue
			}
			if (y >= a[1] && y < b[1]) || (y >= b[1] && y < a[1]) {
				t := float64(y-a[1]) / float64(b[1]-a[1])
				xs = append(xs, a[0]+int(t*float64(b[0]-a[0])))
			}
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := max(xs[i], 0); x <= min(xs[i+1], img.Rect.Max.X-1); x++ {
				setPx(img, x, y, dim)
			}
		}
	}
	// Outline every ring, holes included.
	for _, ring := range poly {
		for i := range ring {
			a := ring[i]
			b := ring[(i+1)%len(ring)]
			ax, ay := tr.Point(a[0], a[1])
			bx, by := tr.Point(b[0], b[1])
			segment(img, int(ax+0.5), int(ay+0.5), int(bx+0.5), int(by+0.5), ink)
		}
	}
}

// segment draws a Bresenham line, clipped to the image.
func segment(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		setPx(img, x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func setPx(img *image.RGBA, x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= img.Rect.Max.X || y >= img.Rect.Max.Y {
		return
	}
	img.SetRGBA(x, y, c)
}

// drawBoundLabels writes the data minimum at the bottom-left plot corner
// and the maximum at the top-right.
func drawBoundLabels(img *image.RGBA, tr *axis.Transform, w, h int) {
	// The reads cannot fail on a transform built a few lines up.
	x0, _ := tr.DX0()
	y0, _ := tr.DY0()
	x1, _ := tr.DX1()
	y1, _ := tr.DY1()

	lo := fmt.Sprintf("%.4g, %.4g", x0, y0)
	hi := fmt.Sprintf("%.4g, %.4g", x1, y1)

	label(img, margin, h-margin+basicfont.Face7x13.Height, lo)
	d := measurer()
	hiW := d.MeasureString(hi).Ceil()
	label(img, w-margin-hiW, margin-4, hi)
}

func measurer() *font.Drawer {
	return &font.Drawer{Face: basicfont.Face7x13}
}

func label(img *image.RGBA, x, y int, s string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(faint),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
