package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"termplot/internal/dataset"
	"termplot/internal/export"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.files.SetSize(sidebarWidth-2, m.height-1-2) // provisional; refined in View
		}
	case tea.KeyMsg:
		// While the file list is filtering, it owns the keyboard.
		if m.showSidebar && m.files.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.files, cmd = m.files.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		return m.updateKey(msg)
	case tea.MouseMsg:
		m.updateHover(msg)
	}
	if m.showSidebar {
		var cmd tea.Cmd
		m.files, cmd = m.files.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		return m, nil
	case "enter":
		w := strings.TrimSpace(m.ta.Value())
		if w == "" {
			m.status = "paste: empty"
			return m, nil
		}
		d, err := dataset.ParseWKT(w)
		if err != nil {
			m.status = "wkt error: " + err.Error()
			m.log.WithError(err).Warn("wkt paste rejected")
			return m, nil
		}
		m.setData(d, "")
		m.status = fmt.Sprintf("rendered WKT  counts: pts=%d ls=%d poly=%d",
			len(m.data.Points), len(m.data.Lines), len(m.data.Polygons))
		m.pasteMode = false
		m.ta.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "1":
		m.showPoints = !m.showPoints
		m.status = fmt.Sprintf("points: %v", m.showPoints)
	case "2":
		m.showLines = !m.showLines
		m.status = fmt.Sprintf("lines: %v", m.showLines)
	case "3":
		m.showPolys = !m.showPolys
		m.status = fmt.Sprintf("polys: %v", m.showPolys)
	case "+", "=":
		if m.zoom < 64 {
			m.zoom *= 1.2
			m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
		}
	case "-", "_":
		if m.zoom > 0.05 {
			m.zoom /= 1.2
			m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
		}
	case "tab":
		m.showSidebar = !m.showSidebar
		if m.showSidebar {
			m.refreshDir()
			m.files.SetSize(sidebarWidth-2, m.height-1-2)
		}
	case "p":
		m.pasteMode = !m.pasteMode
		if m.pasteMode {
			m.ta.SetValue("")
			m.status = "paste mode"
			m.ta.Focus()
		} else {
			m.status = "view mode"
			m.ta.Blur()
		}
	case "h":
		m.helpVisible = !m.helpVisible
	case "a":
		m.showAttrs = !m.showAttrs
		if m.showAttrs {
			m.refreshAttrs()
		}
	case "i":
		m.inspect()
	case "l":
		all := m.showPoints && m.showLines && m.showPolys
		m.showPoints = !all
		m.showLines = !all
		m.showPolys = !all
		m.status = fmt.Sprintf("layers: pts=%v ls=%v poly=%v", m.showPoints, m.showLines, m.showPolys)
	case "s":
		m.savePNG()
	case "enter":
		if m.showSidebar {
			if it, ok := m.files.SelectedItem().(fileItem); ok {
				m.loadPath(it.path)
			}
		}
	case "up":
		m.panY -= 1
	case "down":
		m.panY += 1
	case "left":
		m.panX -= 2
	case "right":
		m.panX += 2
	}
	if m.showSidebar {
		var cmd tea.Cmd
		m.files, cmd = m.files.Update(msg)
		return m, cmd
	}
	return m, nil
}

// inspect builds the popup: dataset identity, bounds, counts and vertex
// statistics, plus the point nearest the viewport center.
func (m *Model) inspect() {
	if m.data.Empty() {
		m.inspectPopup = "no data loaded"
		m.status = m.inspectPopup
		return
	}
	name := filepath.Base(m.selPath)
	if m.selPath == "" {
		name = "<pasted>"
	}
	s := m.data.Summarize()
	meta := []string{
		fmt.Sprintf("name: %s", name),
		fmt.Sprintf("bbox: [%.5g, %.5g, %.5g, %.5g]", m.data.BBox.MinX, m.data.BBox.MinY, m.data.BBox.MaxX, m.data.BBox.MaxY),
		fmt.Sprintf("counts: pts=%d ls=%d poly=%d", len(m.data.Points), len(m.data.Lines), len(m.data.Polygons)),
		fmt.Sprintf("vertices: %d", s.Count),
		fmt.Sprintf("x: mean=%.5g sd=%.4g", s.MeanX, s.StdX),
		fmt.Sprintf("y: mean=%.5g sd=%.4g", s.MeanY, s.StdY),
	}
	if x, y, ok := m.nearestToCenter(); ok {
		meta = append(meta, fmt.Sprintf("nearest: x=%.6g y=%.6g", x, y))
	}
	m.inspectPopup = strings.Join(meta, "\n")
	m.status = "inspect popup"
}

// savePNG writes a snapshot of the dataset next to the working directory.
func (m *Model) savePNG() {
	if m.data.Empty() {
		m.status = "nothing to export"
		return
	}
	name := fmt.Sprintf("termplot-%s.png", time.Now().Format("20060102-150405"))
	if err := export.WritePNG(&m.data, name, 1280, 960); err != nil {
		m.status = "export error: " + err.Error()
		m.log.WithError(err).Error("png export failed")
		return
	}
	m.status = "saved " + name
	m.log.WithFields(logrus.Fields{"file": name}).Info("png exported")
}

// updateHover tracks the mouse over the plot area and resolves the hovered
// cell back to data coordinates through the inverse transform.
func (m *Model) updateHover(msg tea.MouseMsg) {
	areaX, areaY, areaW, areaH := m.plotArea()
	if m.showSidebar {
		m.files.SetSize(sidebarWidth-2, areaH-2)
	}
	cx, cy := msg.X, msg.Y
	if cx < areaX || cx >= areaX+areaW || cy < areaY || cy >= areaY+areaH {
		m.hovering = false
		return
	}
	m.hovering = true
	m.hoverCellX = cx - areaX
	m.hoverCellY = cy - areaY

	if inv, ok := m.inverse(areaW, areaH); ok {
		m.hoverX, m.hoverY = inv.Point(float64(m.hoverCellX*2), float64(m.hoverCellY*4))
		m.hoverHasData = true
	} else {
		m.hoverHasData = false
	}

	if tr, ok := m.projector(areaW, areaH); ok {
		if bx, by, found := m.nearestVertex(tr, m.hoverCellX*2, m.hoverCellY*4); found {
			m.hoverMicX, m.hoverMicY = bx, by
			return
		}
	}
	m.hoverMicX, m.hoverMicY = m.hoverCellX*2, m.hoverCellY*4
}

// setData installs a new dataset, resets the viewport and picks the most
// visible layer combination.
func (m *Model) setData(d dataset.Data, path string) {
	m.data = d
	m.selPath = path
	m.zoom = 1.0
	m.panX, m.panY = 0, 0
	m.showPolys = len(d.Polygons) > 0
	m.showLines = len(d.Lines) > 0
	m.showPoints = len(d.Points) > 0 && !m.showPolys
}
