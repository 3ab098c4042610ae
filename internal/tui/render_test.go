package tui

import (
	"math"
	"strings"
	"testing"

	"termplot/internal/dataset"
)

func modelWith(d dataset.Data) Model {
	return Model{zoom: 1.0, data: d, showPoints: true, showLines: true, showPolys: true}
}

func TestProjectorCorners(t *testing.T) {
	m := modelWith(mustData(t, "MULTIPOINT(0 0, 10 10)"))
	w, h := 40, 20
	tr, ok := m.projector(w, h)
	if !ok {
		t.Fatal("projector failed")
	}

	// Data min corner lands bottom-left on the microgrid, max corner
	// top-right.
	mx, my := micro(tr, 0, 0)
	if mx != 0 || my != h*4-1 {
		t.Errorf("min corner: expected (0, %d), got (%d, %d)", h*4-1, mx, my)
	}
	mx, my = micro(tr, 10, 10)
	if mx != w*2-1 || my != 0 {
		t.Errorf("max corner: expected (%d, 0), got (%d, %d)", w*2-1, mx, my)
	}
}

func TestInverseRoundTrip(t *testing.T) {
	m := modelWith(mustData(t, "MULTIPOINT(-5 2, 15 8)"))
	m.zoom = 2.5
	m.panX, m.panY = 3, -2
	w, h := 60, 24

	tr, ok := m.projector(w, h)
	if !ok {
		t.Fatal("projector failed")
	}
	inv, ok := m.inverse(w, h)
	if !ok {
		t.Fatal("inverse failed")
	}
	for _, p := range [][2]float64{{-5, 2}, {0, 5}, {15, 8}} {
		cx, cy := tr.Point(p[0], p[1])
		dx, dy := inv.Point(cx, cy)
		if math.Abs(dx-p[0]) > 1e-9 || math.Abs(dy-p[1]) > 1e-9 {
			t.Errorf("round trip of (%g, %g): got (%g, %g)", p[0], p[1], dx, dy)
		}
	}
}

func TestProjectorNeedsValidBounds(t *testing.T) {
	m := modelWith(dataset.Data{})
	if _, ok := m.projector(40, 20); ok {
		t.Error("expected projector to fail without data")
	}
	flat := mustData(t, "MULTIPOINT(0 5, 10 5)")
	m = modelWith(flat)
	if _, ok := m.projector(40, 20); ok {
		t.Error("expected projector to fail on zero-height bounds")
	}
}

func TestPanShiftsWindow(t *testing.T) {
	m := modelWith(mustData(t, "MULTIPOINT(0 0, 10 10)"))
	base, ok := m.window(40, 20)
	if !ok {
		t.Fatal("window failed")
	}
	m.panX = 4
	panned, ok := m.window(40, 20)
	if !ok {
		t.Fatal("window failed")
	}
	// positive panX moves the content right, so the window slides toward
	// smaller x
	if panned[0] >= base[0] {
		t.Errorf("expected window to move left: base x0=%g, panned x0=%g", base[0], panned[0])
	}
	if math.Abs((panned[2]-panned[0])-(base[2]-base[0])) > 1e-9 {
		t.Error("pan must not change the window width")
	}
}

func TestRenderPlotMarksCorners(t *testing.T) {
	m := modelWith(mustData(t, "MULTIPOINT(0 0, 10 10)"))
	w, h := 40, 20
	out := strings.Split(m.renderPlot(w, h), "\n")
	if len(out) != h {
		t.Fatalf("expected %d rows, got %d", h, len(out))
	}
	bottom := []rune(out[h-1])
	top := []rune(out[0])
	if bottom[0] == ' ' {
		t.Error("expected a mark at the bottom-left cell")
	}
	if top[w-1] == ' ' {
		t.Error("expected a mark at the top-right cell")
	}
}

func TestBrailleGrid(t *testing.T) {
	g := newBrailleGrid(4, 2)
	g.set(0, 0)
	rows := g.rows()
	if rows[0][0] == ' ' {
		t.Error("expected mark in first cell")
	}
	if []rune(rows[0])[0] != rune(0x2801) {
		t.Errorf("expected dot-1 pattern, got %q", rows[0][0:1])
	}

	g = newBrailleGrid(4, 2)
	g.line(0, 0, 7, 7)
	rows = g.rows()
	if []rune(rows[0])[0] == ' ' || []rune(rows[1])[3] == ' ' {
		t.Error("line endpoints missing from grid")
	}

	// out of range is a no-op
	g.set(-1, 5)
	g.set(100, 100)
}

func mustData(t *testing.T, wkt string) dataset.Data {
	t.Helper()
	d, err := dataset.ParseWKT(wkt)
	if err != nil {
		t.Fatalf("fixture %q: %v", wkt, err)
	}
	return d
}
