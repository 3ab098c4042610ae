package tui

// brailleBits maps a micro-pixel position within a cell (2 across, 4 down)
// to its bit in the braille pattern block.
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// brailleGrid is a w x h cell buffer addressed in 2x4 micro-pixels, for
// crisp point and edge rendering.
type brailleGrid struct {
	w, h  int
	cells [][]uint8
}

func newBrailleGrid(w, h int) *brailleGrid {
	cells := make([][]uint8, h)
	for i := range cells {
		cells[i] = make([]uint8, w)
	}
	return &brailleGrid{w: w, h: h, cells: cells}
}

// set marks a micro-pixel; out-of-range coordinates are ignored.
func (g *brailleGrid) set(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cx >= g.w || cy >= g.h {
		return
	}
	g.cells[cy][cx] |= brailleBits[mx%2][my%4]
}

// line draws a Bresenham line on the microgrid.
func (g *brailleGrid) line(x0, y0, x1, y1 int) {
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
		g.set(x0, y0)
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

// rows renders the grid as one string per cell row; untouched cells are
// spaces.
func (g *brailleGrid) rows() []string {
	out := make([]string, g.h)
	for y := 0; y < g.h; y++ {
		row := make([]rune, g.w)
		for x := 0; x < g.w; x++ {
			if mask := g.cells[y][x]; mask != 0 {
				row[x] = rune(0x2800 + int(mask))
			} else {
				row[x] = ' '
			}
		}
		out[y] = string(row)
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
