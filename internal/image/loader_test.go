package image

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writePNG encodes a small solid PNG into dir and returns its path.
func writePNG(t *testing.T, dir string, w, h int) string {
	t.Helper()

	path := filepath.Join(dir, "backdrop.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create test image: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, solid(w, h, color.RGBA{R: 30, G: 60, B: 90, A: 255})); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	return path
}

func TestValidateImagePath(t *testing.T) {
	dir := t.TempDir()
	valid := writePNG(t, dir, 8, 6)

	bogus := filepath.Join(dir, "notes.png")
	if err := os.WriteFile(bogus, []byte("not an image"), 0o600); err != nil {
		t.Fatalf("Failed to write bogus file: %v", err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"ValidPNG", valid, false},
		{"Missing", filepath.Join(dir, "absent.png"), true},
		{"Directory", dir, true},
		{"NotAnImage", bogus, true},
		{"Empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImagePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateImagePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestGetImageDimensions(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, 12, 7)

	w, h, err := GetImageDimensions(path)
	if err != nil {
		t.Fatalf("GetImageDimensions failed: %v", err)
	}
	if w != 12 || h != 7 {
		t.Errorf("dimensions = %dx%d, want 12x7", w, h)
	}

	if _, _, err := GetImageDimensions(filepath.Join(dir, "absent.png")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFileLoaderLoad(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, 4, 4)

	img, err := NewFileLoader().Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 4, 4) {
		t.Errorf("bounds = %v, want (0,0)-(4,4)", got)
	}

	if _, err := NewFileLoader().Load(dir); err == nil {
		t.Error("expected error loading a directory")
	}
}
