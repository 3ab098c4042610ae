package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Supported reports whether files with the given extension (".csv" form,
// case-insensitive) can be loaded.
func Supported(ext string) bool {
	switch strings.ToLower(ext) {
	case ".csv", ".json", ".geojson", ".wkt", ".kml":
		return true
	}
	return false
}

// Load reads a dataset from a file, dispatching on its extension.
func Load(path string) (Data, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return LoadCSV(path)
	case ".json", ".geojson":
		return LoadJSON(path)
	case ".kml":
		return LoadKML(path)
	case ".wkt":
		b, err := os.ReadFile(path)
		if err != nil {
			return Data{}, err
		}
		return ParseWKT(string(b))
	default:
		return Data{}, errors.New("unsupported file type: " + ext)
	}
}
