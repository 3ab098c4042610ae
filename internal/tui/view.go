package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

// plotArea returns the origin and size of the plot viewport in terminal
// cells. Update and View must agree on this layout.
func (m Model) plotArea() (x, y, w, h int) {
	sidebar := 0
	gap := 0
	if m.showSidebar {
		sidebar = sidebarWidth
		gap = 1
	}
	contentHeight := max(m.height-headerHeight-footerHeight, 4)
	contentWidth := max(10, m.width)
	w = max(contentWidth-sidebar-1, 10)
	h = contentHeight
	return sidebar + gap, headerHeight, w, h
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	_, _, mapWidth, mapHeight := m.plotArea()
	contentHeight := max(m.height-headerHeight-footerHeight, 4)
	contentWidth := max(10, m.width)

	if m.showSidebar {
		m.files.SetSize(sidebarWidth-2, contentHeight-2)
	}

	header := titleStyle.Render(" termplot ─ terminal data plotter ")
	header = lipgloss.NewStyle().Width(contentWidth).Render(header)

	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.files.View())
	}

	// track plot size for hover and inspect
	m.mapW = max(8, mapWidth)
	m.mapH = max(4, mapHeight)

	var plotView string
	switch {
	case m.showAttrs:
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		if colW == 0 {
			colW = min(60, contentWidth-6)
		}
		maxW := min(mapWidth, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(mapHeight-2, 20))
		attrsBox := boxStyle.Width(maxW).Render(m.tbl.View())
		plotView = lipgloss.Place(mapWidth, mapHeight, lipgloss.Center, lipgloss.Center, attrsBox)
	case m.pasteMode:
		m.ta.SetWidth(m.mapW)
		m.ta.SetHeight(min(m.mapH, 12))
		plotView = lipgloss.NewStyle().Width(mapWidth).Height(mapHeight).Render(m.ta.View())
	default:
		plot := m.renderPlot(m.mapW, m.mapH)
		plotView = lipgloss.NewStyle().Width(mapWidth).Height(mapHeight).Render(plot)
	}

	popup := ""
	if m.inspectPopup != "" && !m.showAttrs {
		maxPopupW := max(min(48, contentWidth/2), 20)
		box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).MaxWidth(maxPopupW).Render(m.inspectPopup)
		popup = lipgloss.Place(contentWidth, contentHeight, lipgloss.Left, lipgloss.Center, box)
	}

	var body string
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", plotView)
	} else {
		body = plotView
	}

	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	coords := ""
	if m.hovering && m.hoverHasData {
		coords = dimStyle.Render(fmt.Sprintf("  x=%.5g y=%.5g  ", m.hoverX, m.hoverY))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, help)
	spacerW := max(0, contentWidth-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, popup, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓←→ pan",
		"+/- zoom",
		"Tab files",
		"Enter open",
		"p paste",
		"a attrs",
		"i inspect",
		"l layers",
		"s save png",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
