package dataset

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds per-axis descriptive statistics over every vertex of a
// dataset.
type Summary struct {
	Count int

	MinX, MaxX, MeanX, StdX float64
	MinY, MaxY, MeanY, StdY float64
}

// Summarize computes vertex statistics across points, line vertices and
// polygon ring vertices. An empty dataset yields a zero Summary.
func (d *Data) Summarize() Summary {
	xs, ys := d.vertices()
	if len(xs) == 0 {
		return Summary{}
	}
	s := Summary{Count: len(xs)}
	s.MinX, s.MaxX = floats.Min(xs), floats.Max(xs)
	s.MinY, s.MaxY = floats.Min(ys), floats.Max(ys)
	s.MeanX, s.StdX = stat.MeanStdDev(xs, nil)
	s.MeanY, s.StdY = stat.MeanStdDev(ys, nil)
	return s
}
