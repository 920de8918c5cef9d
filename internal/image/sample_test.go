package image

import (
	"image"
	"image/color"
	"testing"
)

// solid returns a uniformly filled test image.
func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestAverageColourSolid(t *testing.T) {
	img := solid(16, 16, color.RGBA{R: 200, G: 100, B: 50, A: 255})
	avg := AverageColour(img)

	if avg.R != 200 || avg.G != 100 || avg.B != 50 {
		t.Errorf("average of solid image = %v, want rgb(200, 100, 50)", avg)
	}
}

func TestAverageColourLinearSpace(t *testing.T) {
	// Half black, half white. The linear mean is 0.5, which encodes to
	// sRGB ~188, not the naive byte midpoint 128.
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if x < 8 {
				img.SetRGBA(x, y, color.RGBA{A: 255})
			} else {
				img.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
			}
		}
	}

	avg := AverageColour(img)
	if avg.R < 185 || avg.R > 191 {
		t.Errorf("linear-space average channel = %d, want ~188", avg.R)
	}
}

func TestDominantColourMajority(t *testing.T) {
	// Three quarters blue, one quarter red: blue must win.
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if x < 5 {
				img.SetRGBA(x, y, color.RGBA{R: 220, G: 30, B: 30, A: 255})
			} else {
				img.SetRGBA(x, y, color.RGBA{R: 20, G: 40, B: 200, A: 255})
			}
		}
	}

	dom := DominantColour(img)
	if dom.B <= dom.R {
		t.Errorf("dominant colour = %v, want the blue majority", dom)
	}
}

func TestDominantColourDeterministic(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 30, 30))
	for y := 0; y < 30; y++ {
		for x := 0; x < 30; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(x * 8), G: uint8(y * 8), B: uint8((x + y) * 4), A: 255,
			})
		}
	}

	first := DominantColour(img)
	for i := 0; i < 3; i++ {
		if got := DominantColour(img); got != first {
			t.Fatalf("run %d produced %v, first run produced %v", i, got, first)
		}
	}
}

func TestIsImageFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"wallpaper.png", true},
		{"photo.JPG", true},
		{"anim.webp", true},
		{"notes.txt", false},
		{"archive.tar.gz", false},
	}
	for _, tt := range tests {
		if got := IsImageFile(tt.path); got != tt.want {
			t.Errorf("IsImageFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
