package tui

import (
	"math"
	"sort"
	"strings"

	"termplot/internal/axis"
)

// window returns the visible data rectangle for a viewport of w x h cells:
// the dataset bounds shrunk around their center by the zoom factor, then
// shifted by the pan offsets (tracked in cells, converted at the current
// scale).
func (m Model) window(w, h int) ([]float64, bool) {
	bb := m.data.BBox
	if !bb.Valid() || w <= 1 || h <= 1 {
		return nil, false
	}
	wMic, hMic := w*2, h*4
	cx := (bb.MinX + bb.MaxX) / 2
	cy := (bb.MinY + bb.MaxY) / 2
	hx := (bb.MaxX - bb.MinX) / (2 * m.zoom)
	hy := (bb.MaxY - bb.MinY) / (2 * m.zoom)
	// data units per micro step
	ux := 2 * hx / float64(wMic-1)
	uy := 2 * hy / float64(hMic-1)
	// positive panX shifts content right, so the window moves left;
	// positive panY shifts content down, so the window moves up
	cx -= float64(m.panX*2) * ux
	cy += float64(m.panY*4) * uy
	return []float64{cx - hx, cy - hy, cx + hx, cy + hy}, true
}

// projector builds the data-to-microgrid transform for the current window.
func (m Model) projector(w, h int) (*axis.Transform, bool) {
	win, ok := m.window(w, h)
	if !ok {
		return nil, false
	}
	tr, err := axis.New(axis.Config{
		Canvas: []float64{0, 0, float64(w*2 - 1), float64(h*4 - 1)},
		Data:   win,
	})
	if err != nil {
		return nil, false
	}
	return tr, true
}

// inverse builds the microgrid-to-data transform by swapping the two
// rectangles, which also undoes the y flip.
func (m Model) inverse(w, h int) (*axis.Transform, bool) {
	win, ok := m.window(w, h)
	if !ok {
		return nil, false
	}
	tr, err := axis.New(axis.Config{
		Canvas: win,
		Data:   []float64{0, 0, float64(w*2 - 1), float64(h*4 - 1)},
	})
	if err != nil {
		return nil, false
	}
	return tr, true
}

// micro projects a data point to integer microgrid coordinates.
func micro(tr *axis.Transform, x, y float64) (int, int) {
	cx, cy := tr.Point(x, y)
	return int(math.Round(cx)), int(math.Round(cy))
}

func (m Model) renderPlot(w, h int) string {
	lines := make([]string, h)
	blank := strings.Repeat(" ", w)
	for y := range lines {
		lines[y] = blank
	}

	tr, ok := m.projector(w, h)
	if !ok {
		return strings.Join(lines, "\n")
	}
	br := newBrailleGrid(w, h)

	if m.showPolys {
		for _, poly := range m.data.Polygons {
			rasterPolygon(br, tr, poly, h)
		}
	}
	if m.showLines {
		for _, ls := range m.data.Lines {
			var px, py int
			for i, p := range ls {
				mx, my := micro(tr, p[0], p[1])
				if i > 0 {
					br.line(px, py, mx, my)
				}
				px, py = mx, my
			}
		}
	}
	if m.showPoints {
		for _, p := range m.data.Points {
			mx, my := micro(tr, p[0], p[1])
			br.set(mx, my)
		}
	}

	for y, row := range br.rows() {
		if y >= h || strings.TrimSpace(row) == "" {
			continue
		}
		base := []rune(lines[y])
		for x, r := range []rune(row) {
			if r != ' ' && x < len(base) {
				base[x] = r
			}
		}
		lines[y] = string(base)
	}

	// hover marker on the nearest vertex
	if m.hovering {
		cx := m.hoverMicX / 2
		cy := m.hoverMicY / 4
		if cy >= 0 && cy < len(lines) {
			r := []rune(lines[cy])
			if cx >= 0 && cx < len(r) {
				lines[cy] = string(r[:cx]) + hoverStyle.Render("◯") + string(r[cx+1:])
			}
		}
	}
	return strings.Join(lines, "\n")
}

// rasterPolygon fills the outer ring with the even-odd rule on the
// microgrid, then strokes every ring edge, holes included.
func rasterPolygon(br *brailleGrid, tr *axis.Transform, poly [][][2]float64, h int) {
	if len(poly) == 0 {
		return
	}
	rings := make([][][2]int, 0, len(poly))
	for _, ring := range poly {
		mic := make([][2]int, 0, len(ring))
		for _, p := range ring {
			mx, my := micro(tr, p[0], p[1])
			mic = append(mic, [2]int{mx, my})
		}
		if len(mic) >= 3 {
			rings = append(rings, mic)
		}
	}
	if len(rings) == 0 {
		return
	}

	outer := rings[0]
	hMic := h * 4
	for y := 0; y < hMic; y++ {
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
			lo, hi := xs[i], xs[i+1]
			if lo > hi {
				lo, hi = hi, lo
			}
			for x := max(lo, 0); x <= hi; x++ {
				br.set(x, y)
			}
		}
	}
	for _, ring := range rings {
		for i := range ring {
			a := ring[i]
			b := ring[(i+1)%len(ring)]
			br.line(a[0], a[1], b[0], b[1])
		}
	}
}

// nearestVertex finds the dataset vertex closest to a microgrid position.
func (m Model) nearestVertex(tr *axis.Transform, mx, my int) (int, int, bool) {
	best := math.MaxInt
	bx, by := mx, my
	visit := func(p [2]float64) {
		vx, vy := micro(tr, p[0], p[1])
		dx, dy := vx-mx, vy-my
		if d := dx*dx + dy*dy; d < best {
			best = d
			bx, by = vx, vy
		}
	}
	for _, p := range m.data.Points {
		visit(p)
	}
	for _, ls := range m.data.Lines {
		for _, p := range ls {
			visit(p)
		}
	}
	for _, poly := range m.data.Polygons {
		for _, ring := range poly {
			for _, p := range ring {
				visit(p)
			}
		}
	}
	return bx, by, best != math.MaxInt
}

// nearestToCenter returns the data point closest to the viewport center.
func (m Model) nearestToCenter() (x, y float64, ok bool) {
	if len(m.data.Points) == 0 {
		return 0, 0, false
	}
	w, h := m.mapW, m.mapH
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	tr, okP := m.projector(w, h)
	if !okP {
		return 0, 0, false
	}
	cx, cy := w, h*2 // viewport center in micro coords
	best := math.MaxInt
	var found [2]float64
	for _, p := range m.data.Points {
		mx, my := micro(tr, p[0], p[1])
		dx, dy := mx-cx, my-cy
		if d := dx*dx + dy*dy; d < best {
			best = d
			found = p
		}
	}
	if best == math.MaxInt {
		return 0, 0, false
	}
	return found[0], found[1], true
}
