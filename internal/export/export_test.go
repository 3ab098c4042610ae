package export

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"termplot/internal/dataset"
)

func testData(t *testing.T) *dataset.Data {
	t.Helper()
	d, err := dataset.ParseWKT("MULTIPOINT(0 0, 10 10)")
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}
	return &d
}

func TestRenderPlacesPoints(t *testing.T) {
	d := testData(t)
	img, err := Render(d, 200, 200)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if img.Rect.Dx() != 200 || img.Rect.Dy() != 200 {
		t.Fatalf("unexpected image size %v", img.Rect)
	}

	// Data (0,0) is the min corner, which lands bottom-left inside the
	// margins; (10,10) lands top-right.
	if img.RGBAAt(margin, 200-1-margin) != accent {
		t.Errorf("expected accent at bottom-left plot corner, got %v", img.RGBAAt(margin, 200-1-margin))
	}
	if img.RGBAAt(200-1-margin, margin) != accent {
		t.Errorf("expected accent at top-right plot corner, got %v", img.RGBAAt(200-1-margin, margin))
	}
	if img.RGBAAt(0, 0) != background {
		t.Errorf("expected background outside the plot, got %v", img.RGBAAt(0, 0))
	}
}

func TestRenderRejectsDegenerateInput(t *testing.T) {
	d := testData(t)
	if _, err := Render(d, 10, 10); err == nil {
		t.Error("expected error for tiny image")
	}
	empty := &dataset.Data{}
	if _, err := Render(empty, 200, 200); err == nil {
		t.Error("expected error for empty dataset")
	}
	flat, err := dataset.ParseWKT("MULTIPOINT(0 5, 10 5)")
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}
	if _, err := Render(&flat, 200, 200); err == nil {
		t.Error("expected error for zero-height bounds")
	}
}

func TestWritePNG(t *testing.T) {
	d := testData(t)
	path := filepath.Join(t.TempDir(), "plot.png")
	if err := WritePNG(d, path, 160, 120); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 160 || img.Bounds().Dy() != 120 {
		t.Errorf("unexpected decoded size %v", img.Bounds())
	}
}
