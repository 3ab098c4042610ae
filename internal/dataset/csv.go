package dataset

import (
	"encoding/csv"
	"errors"
	"os"
	"strconv"
	"strings"
)

// LoadCSV reads a CSV of point coordinates. Column detection is
// case-insensitive: x|lon|lng|long|longitude and y|lat|latitude. Rows with
// unparseable coordinates are skipped.
func LoadCSV(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	recs, err := r.ReadAll()
	if err != nil {
		return Data{}, err
	}
	if len(recs) == 0 {
		return Data{}, errors.New("empty csv")
	}

	ix, iy := -1, -1
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "x", "lon", "lng", "long", "longitude":
			if ix == -1 {
				ix = i
			}
		case "y", "lat", "latitude":
			if iy == -1 {
				iy = i
			}
		}
	}
	if ix == -1 || iy == -1 {
		return Data{}, errors.New("csv: x/y columns not found")
	}

	var d Data
	for _, row := range recs[1:] {
		if ix >= len(row) || iy >= len(row) {
			continue
		}
		x, errX := strconv.ParseFloat(strings.TrimSpace(row[ix]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(row[iy]), 64)
		if errX != nil || errY != nil {
			continue
		}
		d.addPoint([2]float64{x, y})
	}
	if d.Empty() {
		return Data{}, errors.New("csv: no valid points parsed")
	}
	return d, nil
}
