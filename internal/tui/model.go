// Package tui is the interactive terminal viewer: it projects the loaded
// dataset onto a braille micro-raster through the axis transform and wires
// pan, zoom, file browsing and inspection around it.
package tui

import (
	"io"
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"termplot/internal/dataset"
)

// Options configures the viewer at startup.
type Options struct {
	Path string // dataset to preload, optional
	Log  *logrus.Logger
}

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom float64
	panX int // cells
	panY int

	status string
	log    *logrus.Logger

	// file browser
	cwd     string
	files   list.Model
	selPath string

	data dataset.Data

	// last rendered plot size, for hover and inspect
	mapW int
	mapH int

	// WKT paste mode
	pasteMode bool
	ta        textarea.Model

	showPoints bool
	showLines  bool
	showPolys  bool

	inspectPopup string

	hovering     bool
	hoverCellX   int
	hoverCellY   int
	hoverMicX    int
	hoverMicY    int
	hoverHasData bool
	hoverX       float64
	hoverY       float64

	showAttrs bool
	tbl       table.Model
}

func New(opts Options) Model {
	m := Model{
		helpVisible: true,
		zoom:        1.0,
		status:      "termplot ready",
		showPoints:  true,
		showLines:   true,
		showPolys:   true,
		log:         opts.Log,
	}
	if m.log == nil {
		m.log = logrus.New()
		m.log.SetOutput(io.Discard)
	}
	m.cwd, _ = os.Getwd()

	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.files = list.New(nil, d, 0, 0)
	m.files.Title = "Files"
	m.files.SetShowHelp(false)
	m.files.SetShowStatusBar(false)
	m.files.SetFilteringEnabled(true)

	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT here (POINT, MULTIPOINT, LINESTRING, POLYGON). Press Enter to render; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)

	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)

	m.refreshDir()
	if opts.Path != "" {
		m.loadPath(opts.Path)
	}
	return m
}

func (m Model) Init() tea.Cmd { return nil }
