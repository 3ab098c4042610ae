// Package axis maps points between a mathematical "data" space (y increasing
// upward) and a painter "canvas" space (y increasing downward). The mapping
// is an independent linear scale per axis plus a y flip, derived once at
// construction and applied per point thereafter.
package axis

// Config holds the two axis-aligned rectangles a transform is built from.
// Each rectangle is x0, y0, x1, y1 with x0/y0 the minimum and x1/y1 the
// maximum bound.
type Config struct {
	Canvas []float64 // destination bounds, painter units
	Data   []float64 // source bounds, data units
}

// linear is one axis of the derived map: canvas = offset*s + t.
type linear struct {
	s, t float64
}

// Transform converts data-space coordinates to canvas-space coordinates.
// It is immutable after New and safe for concurrent readers.
type Transform struct {
	canvas []float64
	data   []float64
	x, y   linear
}

// New derives a transform from the two rectangles. Both must have exactly
// four elements. A zero-width or zero-height data rectangle is not
// rejected: the scale factor divides to a non-finite value that propagates
// through every mapping call.
func New(cfg Config) (*Transform, error) {
	if len(cfg.Canvas) != 4 {
		return nil, &ConfigurationError{Reason: "missing canvas data"}
	}
	if len(cfg.Data) != 4 {
		return nil, &ConfigurationError{Reason: "missing data data"}
	}
	t := &Transform{
		canvas: append([]float64(nil), cfg.Canvas[:4]...),
		data:   append([]float64(nil), cfg.Data[:4]...),
	}
	t.x = linear{
		s: (t.canvas[2] - t.canvas[0]) / (t.data[2] - t.data[0]),
		t: t.canvas[0],
	}
	t.y = linear{
		s: (t.canvas[3] - t.canvas[1]) / (t.data[3] - t.data[1]),
		t: t.canvas[1],
	}
	return t, nil
}

func (t *Transform) canvasBound(i int) (float64, error) {
	if len(t.canvas) < 4 {
		return 0, &ConfigurationError{Reason: "missing canvas data"}
	}
	return t.canvas[i], nil
}

func (t *Transform) dataBound(i int) (float64, error) {
	if len(t.data) < 4 {
		return 0, &ConfigurationError{Reason: "missing data data"}
	}
	return t.data[i], nil
}

// CX0 returns the canvas minimum x bound. The accessors re-check that the
// rectangle is present so a zero-value Transform fails loudly instead of
// reading garbage.
func (t *Transform) CX0() (float64, error) { return t.canvasBound(0) }

// CY0 returns the canvas minimum y bound.
func (t *Transform) CY0() (float64, error) { return t.canvasBound(1) }

// CX1 returns the canvas maximum x bound.
func (t *Transform) CX1() (float64, error) { return t.canvasBound(2) }

// CY1 returns the canvas maximum y bound.
func (t *Transform) CY1() (float64, error) { return t.canvasBound(3) }

// DX0 returns the data minimum x bound.
func (t *Transform) DX0() (float64, error) { return t.dataBound(0) }

// DY0 returns the data minimum y bound.
func (t *Transform) DY0() (float64, error) { return t.dataBound(1) }

// DX1 returns the data maximum x bound.
func (t *Transform) DX1() (float64, error) { return t.dataBound(2) }

// DY1 returns the data maximum y bound.
func (t *Transform) DY1() (float64, error) { return t.dataBound(3) }

// MapX converts data-space x coordinates to canvas space. The result is
// scalar-shaped when the input carried exactly one value, a series
// otherwise; order is preserved.
func (t *Transform) MapX(x Coord) (Coord, error) {
	if x.absent() {
		return Coord{}, &InputError{Reason: "missing x coordinate"}
	}
	out := make([]float64, len(x.vals))
	for i, v := range x.vals {
		out[i] = t.mapX(v)
	}
	if len(out) == 1 {
		return Scalar(out[0]), nil
	}
	return Series(out), nil
}

// MapY converts data-space y coordinates to canvas space, inverting the
// axis direction. Same shape contract as MapX.
func (t *Transform) MapY(y Coord) (Coord, error) {
	if y.absent() {
		return Coord{}, &InputError{Reason: "missing y coordinate"}
	}
	out := make([]float64, len(y.vals))
	for i, v := range y.vals {
		out[i] = t.mapY(v)
	}
	if len(out) == 1 {
		return Scalar(out[0]), nil
	}
	return Series(out), nil
}

// Map converts parallel x and y coordinate runs in one call. Unlike MapX
// and MapY it always returns slices, even for single points, and the two
// inputs must normalize to the same length.
func (t *Transform) Map(x, y Coord) ([]float64, []float64, error) {
	if x.absent() {
		return nil, nil, &InputError{Reason: "missing x coordinate"}
	}
	if y.absent() {
		return nil, nil, &InputError{Reason: "missing y coordinate"}
	}
	if len(x.vals) != len(y.vals) {
		return nil, nil, &InputError{Reason: "x and y arrays different lengths"}
	}
	xs := make([]float64, len(x.vals))
	ys := make([]float64, len(y.vals))
	for i := range x.vals {
		xs[i] = t.mapX(x.vals[i])
		ys[i] = t.mapY(y.vals[i])
	}
	return xs, ys, nil
}

// Point converts a single data-space point. Convenience for renderers that
// project one vertex at a time.
func (t *Transform) Point(x, y float64) (float64, float64) {
	return t.mapX(x), t.mapY(y)
}

// x is measured from the data minimum; y is measured as a distance down
// from the data maximum, which flips the axis between the two spaces.
func (t *Transform) mapX(v float64) float64 { return (v-t.data[0])*t.x.s + t.x.t }
func (t *Transform) mapY(v float64) float64 { return (t.data[3]-v)*t.y.s + t.y.t }
