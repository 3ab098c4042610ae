package dataset

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return p
}

func TestLoadCSV(t *testing.T) {
	p := writeFixture(t, "pts.csv", "name,x,y\na,1,2\nb,3.5,-4\nbad,oops,5\n")
	d, err := LoadCSV(p)
	if err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}
	if len(d.Points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(d.Points))
	}
	if d.Points[1] != [2]float64{3.5, -4} {
		t.Errorf("unexpected second point: %v", d.Points[1])
	}
	want := BBox{MinX: 1, MinY: -4, MaxX: 3.5, MaxY: 2}
	if d.BBox != want {
		t.Errorf("bbox: expected %+v, got %+v", want, d.BBox)
	}
}

func TestLoadCSVColumnAliases(t *testing.T) {
	p := writeFixture(t, "geo.csv", "Longitude,Latitude\n-73.98,40.75\n")
	d, err := LoadCSV(p)
	if err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}
	if len(d.Points) != 1 || d.Points[0] != [2]float64{-73.98, 40.75} {
		t.Errorf("unexpected points: %v", d.Points)
	}
}

func TestLoadCSVMissingColumns(t *testing.T) {
	p := writeFixture(t, "bad.csv", "a,b\n1,2\n")
	if _, err := LoadCSV(p); err == nil {
		t.Fatal("expected error for missing x/y columns")
	}
}

func TestLoadJSONFeatureCollection(t *testing.T) {
	p := writeFixture(t, "fc.geojson", `{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature", "geometry": {"type": "Point", "coordinates": [1, 2]}},
			{"type": "Feature", "geometry": {"type": "LineString", "coordinates": [[0, 0], [4, 4]]}},
			{"type": "Feature", "geometry": {"type": "Polygon", "coordinates": [[[0, 0], [2, 0], [2, 2], [0, 2], [0, 0]]]}}
		]
	}`)
	d, err := LoadJSON(p)
	if err != nil {
		t.Fatalf("LoadJSON failed: %v", err)
	}
	if len(d.Points) != 1 || len(d.Lines) != 1 || len(d.Polygons) != 1 {
		t.Fatalf("counts: pts=%d ls=%d poly=%d", len(d.Points), len(d.Lines), len(d.Polygons))
	}
	want := BBox{MinX: 0, MinY: 0, MaxX: 4, MaxY: 4}
	if d.BBox != want {
		t.Errorf("bbox: expected %+v, got %+v", want, d.BBox)
	}
}

func TestLoadJSONBareGeometry(t *testing.T) {
	p := writeFixture(t, "mp.json", `{"type": "MultiPoint", "coordinates": [[1, 1], [2, 3]]}`)
	d, err := LoadJSON(p)
	if err != nil {
		t.Fatalf("LoadJSON failed: %v", err)
	}
	if len(d.Points) != 2 {
		t.Errorf("expected 2 points, got %d", len(d.Points))
	}
}

func TestParseWKT(t *testing.T) {
	cases := []struct {
		name string
		wkt  string
		pts  int
		ls   int
		poly int
	}{
		{"point", "POINT(3 4)", 1, 0, 0},
		{"multipoint", "MULTIPOINT(1 1, 2 2, 3 3)", 3, 0, 0},
		{"multipoint parens", "MULTIPOINT((1 1), (2 2))", 2, 0, 0},
		{"linestring", "LINESTRING(0 0, 5 5, 10 0)", 0, 1, 0},
		{"polygon", "POLYGON((0 0, 4 0, 4 4, 0 4, 0 0))", 0, 0, 1},
		{"polygon with hole", "POLYGON((0 0, 4 0, 4 4, 0 4, 0 0), (1 1, 2 1, 2 2, 1 2, 1 1))", 0, 0, 1},
		{"lowercase", "point(1 2)", 1, 0, 0},
	}
	for _, c := range cases {
		d, err := ParseWKT(c.wkt)
		if err != nil {
			t.Errorf("%s: %v", c.name, err)
			continue
		}
		if len(d.Points) != c.pts || len(d.Lines) != c.ls || len(d.Polygons) != c.poly {
			t.Errorf("%s: counts pts=%d ls=%d poly=%d", c.name, len(d.Points), len(d.Lines), len(d.Polygons))
		}
	}

	if _, err := ParseWKT("CIRCLE(0 0, 5)"); err == nil {
		t.Error("expected error for unsupported type")
	}
	if _, err := ParseWKT(""); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestParseWKTPolygonRings(t *testing.T) {
	d, err := ParseWKT("POLYGON((0 0, 4 0, 4 4, 0 4, 0 0), (1 1, 2 1, 2 2, 1 2, 1 1))")
	if err != nil {
		t.Fatalf("ParseWKT failed: %v", err)
	}
	if len(d.Polygons[0]) != 2 {
		t.Fatalf("expected 2 rings, got %d", len(d.Polygons[0]))
	}
	if len(d.Polygons[0][0]) != 5 || len(d.Polygons[0][1]) != 5 {
		t.Errorf("ring sizes: %d and %d", len(d.Polygons[0][0]), len(d.Polygons[0][1]))
	}
}

func TestLoadKML(t *testing.T) {
	p := writeFixture(t, "pts.kml", `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
  <Document>
    <Placemark><Point><coordinates>-0.12,51.5,0</coordinates></Point></Placemark>
    <Placemark><Point><coordinates>2.35,48.85</coordinates></Point></Placemark>
    <Placemark><name>no point</name></Placemark>
  </Document>
</kml>`)
	d, err := LoadKML(p)
	if err != nil {
		t.Fatalf("LoadKML failed: %v", err)
	}
	if len(d.Points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(d.Points))
	}
	if d.Points[0] != [2]float64{-0.12, 51.5} {
		t.Errorf("unexpected first point: %v", d.Points[0])
	}
}

func TestLoadDispatch(t *testing.T) {
	p := writeFixture(t, "one.wkt", "LINESTRING(0 0, 1 1)")
	d, err := Load(p)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(d.Lines) != 1 {
		t.Errorf("expected 1 line, got %d", len(d.Lines))
	}

	if _, err := Load("data.shp"); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestSupported(t *testing.T) {
	for _, ext := range []string{".csv", ".json", ".geojson", ".wkt", ".kml", ".CSV"} {
		if !Supported(ext) {
			t.Errorf("%s should be supported", ext)
		}
	}
	if Supported(".shp") {
		t.Error(".shp should not be supported")
	}
}

func TestSummarize(t *testing.T) {
	var d Data
	for _, p := range [][2]float64{{0, 10}, {2, 20}, {4, 30}} {
		d.addPoint(p)
	}
	s := d.Summarize()
	if s.Count != 3 {
		t.Fatalf("expected count 3, got %d", s.Count)
	}
	if s.MinX != 0 || s.MaxX != 4 || s.MinY != 10 || s.MaxY != 30 {
		t.Errorf("extrema: %+v", s)
	}
	if math.Abs(s.MeanX-2) > 1e-12 || math.Abs(s.MeanY-20) > 1e-12 {
		t.Errorf("means: x=%g y=%g", s.MeanX, s.MeanY)
	}
	if math.Abs(s.StdX-2) > 1e-12 {
		t.Errorf("stddev x: %g", s.StdX)
	}

	empty := Data{}
	if s := empty.Summarize(); s.Count != 0 {
		t.Errorf("empty dataset: count %d", s.Count)
	}
}

func TestBBoxRectAndValid(t *testing.T) {
	b := BBox{MinX: -1, MinY: -2, MaxX: 3, MaxY: 4}
	r := b.Rect()
	if len(r) != 4 || r[0] != -1 || r[1] != -2 || r[2] != 3 || r[3] != 4 {
		t.Errorf("rect: %v", r)
	}
	if !b.Valid() {
		t.Error("expected valid bbox")
	}
	if (BBox{MinX: 1, MaxX: 1, MinY: 0, MaxY: 2}).Valid() {
		t.Error("zero-width bbox should be invalid")
	}
}
