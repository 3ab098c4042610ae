package dataset

import (
	"errors"
	"strconv"
	"strings"
)

// ParseWKT parses a WKT subset: POINT, MULTIPOINT, LINESTRING and POLYGON
// (with rings). Coordinate tuples that do not parse are skipped.
func ParseWKT(s string) (Data, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Data{}, errors.New("empty wkt")
	}
	up := strings.ToUpper(s)

	var d Data
	switch {
	case strings.HasPrefix(up, "MULTIPOINT"), strings.HasPrefix(up, "POINT"):
		body, err := wktBody(s, "(", ")")
		if err != nil {
			return Data{}, err
		}
		// MULTIPOINT allows parenthesized tuples; strip the inner parens.
		body = strings.NewReplacer("(", "", ")", "").Replace(body)
		for _, p := range wktTuples(body) {
			d.addPoint(p)
		}
	case strings.HasPrefix(up, "LINESTRING"):
		body, err := wktBody(s, "(", ")")
		if err != nil {
			return Data{}, err
		}
		if ls := wktTuples(body); len(ls) > 0 {
			d.addLine(ls)
		}
	case strings.HasPrefix(up, "POLYGON"):
		body, err := wktBody(s, "((", "))")
		if err != nil {
			return Data{}, err
		}
		var poly [][][2]float64
		for _, ringStr := range splitRings(body) {
			if ring := wktTuples(ringStr); len(ring) > 0 {
				poly = append(poly, ring)
			}
		}
		if len(poly) > 0 {
			d.addPolygon(poly)
		}
	default:
		return Data{}, errors.New("unsupported wkt type")
	}
	if d.Empty() {
		return Data{}, errors.New("wkt: no coordinates parsed")
	}
	return d, nil
}

// wktBody extracts the text between the first opening and last closing
// marker.
func wktBody(s, opener, closer string) (string, error) {
	i := strings.Index(s, opener)
	j := strings.LastIndex(s, closer)
	if i < 0 || j <= i {
		return "", errors.New("wkt: malformed geometry")
	}
	return s[i+len(opener) : j], nil
}

// splitRings splits a polygon body on the "),(" ring separator, tolerating
// whitespace around it.
func splitRings(body string) []string {
	norm := strings.ReplaceAll(body, ") , (", "),(")
	norm = strings.ReplaceAll(norm, "), (", "),(")
	return strings.Split(norm, "),(")
}

// wktTuples parses a comma-separated run of "x y" pairs.
func wktTuples(block string) [][2]float64 {
	var out [][2]float64
	for _, tup := range strings.Split(block, ",") {
		fields := strings.Fields(strings.TrimSpace(tup))
		if len(fields) < 2 {
			continue
		}
		x, errX := strconv.ParseFloat(fields[0], 64)
		y, errY := strconv.ParseFloat(fields[1], 64)
		if errX != nil || errY != nil {
			continue
		}
		out = append(out, [2]float64{x, y})
	}
	return out
}
