// Package dataset loads 2-D coordinate data from common text formats into a
// single renderable container and tracks its data-space bounds.
package dataset

// BBox is the axis-aligned data-space bounding rectangle of a dataset.
type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Valid reports whether the box spans a nonzero area on both axes.
func (b BBox) Valid() bool {
	return b.MaxX > b.MinX && b.MaxY > b.MinY
}

// Rect returns the box as an x0, y0, x1, y1 rectangle, the shape the axis
// transform is configured with.
func (b BBox) Rect() []float64 {
	return []float64{b.MinX, b.MinY, b.MaxX, b.MaxY}
}

// Data holds the geometries of one loaded dataset.
type Data struct {
	Points   [][2]float64
	Lines    [][][2]float64
	Polygons [][][][2]float64 // rings per polygon, first outer, rest holes
	BBox     BBox

	seen bool
}

// grow extends the bounding box to cover a vertex.
func (d *Data) grow(x, y float64) {
	if !d.seen {
		d.BBox = BBox{MinX: x, MinY: y, MaxX: x, MaxY: y}
		d.seen = true
		return
	}
	if x < d.BBox.MinX {
		d.BBox.MinX = x
	}
	if y < d.BBox.MinY {
		d.BBox.MinY = y
	}
	if x > d.BBox.MaxX {
		d.BBox.MaxX = x
	}
	if y > d.BBox.MaxY {
		d.BBox.MaxY = y
	}
}

func (d *Data) addPoint(p [2]float64) {
	d.Points = append(d.Points, p)
	d.grow(p[0], p[1])
}

func (d *Data) addLine(ls [][2]float64) {
	d.Lines = append(d.Lines, ls)
	for _, p := range ls {
		d.grow(p[0], p[1])
	}
}

func (d *Data) addPolygon(poly [][][2]float64) {
	d.Polygons = append(d.Polygons, poly)
	for _, ring := range poly {
		for _, p := range ring {
			d.grow(p[0], p[1])
		}
	}
}

// Empty reports whether the dataset holds no geometry at all.
func (d *Data) Empty() bool {
	return len(d.Points) == 0 && len(d.Lines) == 0 && len(d.Polygons) == 0
}

// vertices flattens every vertex of every geometry into parallel x and y
// runs, in load order.
func (d *Data) vertices() (xs, ys []float64) {
	for _, p := range d.Points {
		xs = append(xs, p[0])
		ys = append(ys, p[1])
	}
	for _, ls := range d.Lines {
		for _, p := range ls {
			xs = append(xs, p[0])
			ys = append(ys, p[1])
		}
	}
	for _, poly := range d.Polygons {
		for _, ring := range poly {
			for _, p := range ring {
				xs = append(xs, p[0])
				ys = append(ys, p[1])
			}
		}
	}
	return xs, ys
}
