package dataset

import (
	"encoding/xml"
	"errors"
	"os"
	"strconv"
	"strings"
)

type kmlPlacemark struct {
	Point *struct {
		Coordinates string `xml:"coordinates"`
	} `xml:"Point"`
}

// LoadKML extracts Placemark point coordinates from a KML file, whether the
// placemarks sit under a Document, a Folder, or the root. Tuples are
// "x,y[,alt]"; altitude is ignored.
func LoadKML(path string) (Data, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Data{}, err
	}

	var doc struct {
		Root   []kmlPlacemark `xml:"Placemark"`
		InDoc  []kmlPlacemark `xml:"Document>Placemark"`
		Folder []kmlPlacemark `xml:"Document>Folder>Placemark"`
	}
	if err := xml.Unmarshal(b, &doc); err != nil {
		return Data{}, err
	}

	var d Data
	marks := append(append(doc.Root, doc.InDoc...), doc.Folder...)
	for _, pm := range marks {
		if pm.Point == nil {
			continue
		}
		for _, tuple := range strings.Fields(pm.Point.Coordinates) {
			vals := strings.Split(tuple, ",")
			if len(vals) < 2 {
				continue
			}
			x, errX := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
			y, errY := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
			if errX != nil || errY != nil {
				continue
			}
			d.addPoint([2]float64{x, y})
		}
	}
	if d.Empty() {
		return Data{}, errors.New("kml: no points found")
	}
	return d, nil
}
