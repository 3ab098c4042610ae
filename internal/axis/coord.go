package axis

// Coord carries either a single coordinate or an ordered run of them, so
// mapping calls can accept and return both shapes through one type. The
// zero Coord is "absent" and is rejected by every mapping call.
type Coord struct {
	vals   []float64
	scalar bool
}

// Scalar wraps a single coordinate value.
func Scalar(v float64) Coord {
	return Coord{vals: []float64{v}, scalar: true}
}

// Series wraps an ordered run of coordinate values. Series(nil) is absent;
// an empty non-nil slice is a present, empty run.
func Series(vs []float64) Coord {
	return Coord{vals: vs}
}

// IsScalar reports whether the Coord holds a single unwrapped value.
func (c Coord) IsScalar() bool { return c.scalar }

func (c Coord) Len() int { return len(c.vals) }

// Float returns the first value. Meaningful when IsScalar is true; an
// absent or empty Coord yields zero.
func (c Coord) Float() float64 {
	if len(c.vals) == 0 {
		return 0
	}
	return c.vals[0]
}

// Floats returns the underlying values in input order.
func (c Coord) Floats() []float64 { return c.vals }

func (c Coord) absent() bool { return c.vals == nil }
