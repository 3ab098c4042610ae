package dataset

import (
	"encoding/json"
	"errors"
	"os"
)

// LoadJSON reads a GeoJSON-structured file: a bare geometry, a Feature, or
// a FeatureCollection. Point, MultiPoint, LineString, MultiLineString,
// Polygon and MultiPolygon geometries are collected; anything else is
// ignored.
func LoadJSON(path string) (Data, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Data{}, err
	}
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return Data{}, err
	}

	var d Data
	switch t, _ := raw["type"].(string); t {
	case "Feature":
		if g, ok := raw["geometry"].(map[string]any); ok {
			collectGeometry(&d, g)
		}
	case "FeatureCollection":
		fs, _ := raw["features"].([]any)
		for _, f := range fs {
			fm, ok := f.(map[string]any)
			if !ok {
				continue
			}
			if g, ok := fm["geometry"].(map[string]any); ok {
				collectGeometry(&d, g)
			}
		}
	default:
		collectGeometry(&d, raw)
	}
	if d.Empty() {
		return Data{}, errors.New("json: no geometries found")
	}
	return d, nil
}

func collectGeometry(d *Data, g map[string]any) {
	coords := g["coordinates"]
	switch t, _ := g["type"].(string); t {
	case "Point":
		if p, ok := jsonPoint(coords); ok {
			d.addPoint(p)
		}
	case "MultiPoint":
		for _, p := range jsonRing(coords) {
			d.addPoint(p)
		}
	case "LineString":
		if ls := jsonRing(coords); len(ls) > 0 {
			d.addLine(ls)
		}
	case "MultiLineString":
		for _, v := range jsonArray(coords) {
			if ls := jsonRing(v); len(ls) > 0 {
				d.addLine(ls)
			}
		}
	case "Polygon":
		if poly := jsonRings(coords); len(poly) > 0 {
			d.addPolygon(poly)
		}
	case "MultiPolygon":
		for _, v := range jsonArray(coords) {
			if poly := jsonRings(v); len(poly) > 0 {
				d.addPolygon(poly)
			}
		}
	}
}

func jsonArray(v any) []any {
	arr, _ := v.([]any)
	return arr
}

func jsonPoint(v any) ([2]float64, bool) {
	a := jsonArray(v)
	if len(a) < 2 {
		return [2]float64{}, false
	}
	x, okX := a[0].(float64)
	y, okY := a[1].(float64)
	if !okX || !okY {
		return [2]float64{}, false
	}
	return [2]float64{x, y}, true
}

func jsonRing(v any) [][2]float64 {
	var pts [][2]float64
	for _, el := range jsonArray(v) {
		if p, ok := jsonPoint(el); ok {
			pts = append(pts, p)
		}
	}
	return pts
}

func jsonRings(v any) [][][2]float64 {
	var rings [][][2]float64
	for _, el := range jsonArray(v) {
		if r := jsonRing(el); len(r) > 0 {
			rings = append(rings, r)
		}
	}
	return rings
}
