package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"termplot/internal/dataset"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

// refreshDir fills the sidebar with the loadable files of the working
// directory.
func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if dataset.Supported(ext) {
			items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).title < items[j].(fileItem).title })
	m.files.SetItems(items)
	if len(items) == 0 {
		m.status = "no supported files in current directory"
	}
}

// loadPath loads a dataset file into the model.
func (m *Model) loadPath(p string) {
	d, err := dataset.Load(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		m.log.WithError(err).WithField("file", p).Warn("load failed")
		return
	}
	m.setData(d, p)
	m.status = "loaded: " + filepath.Base(p) +
		fmt.Sprintf("  counts: pts=%d ls=%d poly=%d", len(d.Points), len(d.Lines), len(d.Polygons))
	m.log.WithField("file", p).Info("dataset loaded")

	// the attribute table may not apply to the new dataset
	if m.showAttrs {
		m.refreshAttrs()
	}
}
