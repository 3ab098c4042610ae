package tui

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshAttrs rebuilds the attribute table for the current dataset.
func (m *Model) refreshAttrs() {
	cols, rows := m.buildAttributes()
	if len(cols) == 0 || len(rows) == 0 {
		m.showAttrs = false
		m.status = "no attributes for current dataset"
		return
	}

	tcols := make([]table.Column, 0, len(cols)+1)
	tcols = append(tcols, table.Column{Title: "#", Width: 4})
	for _, c := range cols {
		tcols = append(tcols, table.Column{Title: c, Width: min(len(c)+2, 24)})
	}
	trows := make([]table.Row, 0, len(rows))
	for i, r := range rows {
		cells := append([]string{fmt.Sprintf("%d", i+1)}, r...)
		// normalize row width to the column count
		if len(cells) < len(tcols) {
			cells = append(cells, make([]string, len(tcols)-len(cells))...)
		} else if len(cells) > len(tcols) {
			cells = cells[:len(tcols)]
		}
		trows = append(trows, table.Row(cells))
	}
	// clear rows first so columns and rows never disagree mid-update
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
}

// buildAttributes returns the per-row attributes of the backing file, or a
// one-row dataset summary when the format carries none.
func (m *Model) buildAttributes() ([]string, [][]string) {
	if m.selPath == "" {
		// pasted or ephemeral data
		return nil, nil
	}
	switch strings.ToLower(filepath.Ext(m.selPath)) {
	case ".geojson", ".json":
		return attrsFromJSON(m.selPath)
	case ".csv":
		return attrsFromCSV(m.selPath)
	default:
		s := m.data.Summarize()
		cols := []string{"name", "vertices", "bbox", "points", "lines", "polygons"}
		vals := []string{
			filepath.Base(m.selPath),
			fmt.Sprintf("%d", s.Count),
			fmt.Sprintf("[%.5g,%.5g,%.5g,%.5g]", m.data.BBox.MinX, m.data.BBox.MinY, m.data.BBox.MaxX, m.data.BBox.MaxY),
			fmt.Sprintf("%d", len(m.data.Points)),
			fmt.Sprintf("%d", len(m.data.Lines)),
			fmt.Sprintf("%d", len(m.data.Polygons)),
		}
		return cols, [][]string{vals}
	}
}

// attrsFromJSON unions the property keys across all features.
func attrsFromJSON(path string) ([]string, [][]string) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, nil
	}
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, nil
	}
	var features []any
	switch t, _ := raw["type"].(string); t {
	case "FeatureCollection":
		features, _ = raw["features"].([]any)
	case "Feature":
		features = []any{raw}
	default:
		return nil, nil
	}

	var order []string
	seen := map[string]bool{}
	props := make([]map[string]any, 0, len(features))
	for _, f := range features {
		fm, ok := f.(map[string]any)
		if !ok {
			continue
		}
		pm, _ := fm["properties"].(map[string]any)
		if pm == nil {
			pm = map[string]any{}
		}
		props = append(props, pm)
		for k := range pm {
			if !seen[k] {
				seen[k] = true
				order = append(order, k)
			}
		}
	}

	rows := make([][]string, 0, len(props))
	for _, pm := range props {
		vals := make([]string, 0, len(order))
		for _, k := range order {
			vals = append(vals, attrString(pm[k]))
		}
		rows = append(rows, vals)
	}
	return order, rows
}

func attrString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return fmt.Sprintf("%g", t)
	case bool:
		return fmt.Sprintf("%v", t)
	default:
		b, _ := json.Marshal(t)
		return string(b)
	}
}

// attrsFromCSV uses the header as columns and every record as a row.
func attrsFromCSV(path string) ([]string, [][]string) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	recs, err := r.ReadAll()
	if err != nil || len(recs) == 0 {
		return nil, nil
	}
	rows := make([][]string, 0, len(recs)-1)
	for _, rec := range recs[1:] {
		vals := make([]string, len(recs[0]))
		copy(vals, rec)
		rows = append(rows, vals)
	}
	return recs[0], rows
}
