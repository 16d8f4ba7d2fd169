package imaging

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		hex  string
		want color.NRGBA
	}{
		{"FF0000", color.NRGBA{255, 0, 0, 255}},
		{"00ff00", color.NRGBA{0, 255, 0, 255}},
		{"090909", color.NRGBA{9, 9, 9, 255}},
		{"FfFfFf", color.NRGBA{255, 255, 255, 255}},
		{"1a2B3c", color.NRGBA{0x1a, 0x2b, 0x3c, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			got, err := ParseHexColor(tt.hex)
			if err != nil {
				t.Fatalf("ParseHexColor(%q) failed: %v", tt.hex, err)
			}
			if got != tt.want {
				t.Errorf("ParseHexColor(%q): got %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestParseHexColor_Invalid(t *testing.T) {
	for _, hex := range []string{"GGGGGG", "#FF0000", "FFF", "FF00000", "", "12345z", " FF000", "0xFF00"} {
		t.Run(hex, func(t *testing.T) {
			_, err := ParseHexColor(hex)
			if !errors.Is(err, ErrInvalidColor) {
				t.Errorf("ParseHexColor(%q): got %v, want ErrInvalidColor", hex, err)
			}
		})
	}
}

func TestAddBackgroundColor(t *testing.T) {
	img := createInMemoryImage(20, 10, color.NRGBA{0, 0, 0, 0})
	img.Set(1, 1, color.NRGBA{10, 20, 30, 255})
	img.Set(2, 2, color.NRGBA{40, 50, 60, 128})
	img.Set(3, 3, color.NRGBA{70, 80, 90, 1})

	r, err := New(img, PNG)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := r.ResizeByWidth(20); err != nil {
		t.Fatalf("ResizeByWidth failed: %v", err)
	}

	if err := r.AddBackgroundColor("FF0000"); err != nil {
		t.Fatalf("AddBackgroundColor failed: %v", err)
	}

	out := r.Image()
	if out.Bounds().Dx() != 20 || out.Bounds().Dy() != 10 {
		t.Fatalf("dimensions: got %v, want 20x10", out.Bounds().Size())
	}
	if !out.Opaque() {
		t.Error("flattened image should contain no transparent pixels")
	}

	checks := []struct {
		x, y int
		want color.NRGBA
	}{
		{0, 0, color.NRGBA{255, 0, 0, 255}},  // transparent -> background
		{1, 1, color.NRGBA{10, 20, 30, 255}}, // opaque kept
		{2, 2, color.NRGBA{40, 50, 60, 255}}, // translucent: RGB kept, alpha dropped
		{3, 3, color.NRGBA{70, 80, 90, 255}}, // nearly transparent still counts as a pixel
		{19, 9, color.NRGBA{255, 0, 0, 255}}, // far corner
	}
	for _, c := range checks {
		if got := out.NRGBAAt(c.x, c.y); got != c.want {
			t.Errorf("pixel (%d,%d): got %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestAddBackgroundColor_Invalid(t *testing.T) {
	r, err := New(createInMemoryImage(4, 4, color.NRGBA{0, 0, 0, 0}), PNG)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := r.ResizeByWidth(2); err != nil {
		t.Fatalf("ResizeByWidth failed: %v", err)
	}
	before := r.Image()

	if err := r.AddBackgroundColor("GGGGGG"); !errors.Is(err, ErrInvalidColor) {
		t.Fatalf("AddBackgroundColor: got %v, want ErrInvalidColor", err)
	}
	if r.Image() != before {
		t.Error("a rejected color must not replace the modified buffer")
	}
}

func TestAddBackgroundColor_WithoutResize(t *testing.T) {
	r, err := New(createInMemoryImage(6, 3, color.NRGBA{0, 0, 0, 0}), GIF)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := r.AddBackgroundColor("0000FF"); err != nil {
		t.Fatalf("AddBackgroundColor failed: %v", err)
	}
	w, h := r.Dimensions()
	if w != 6 || h != 3 {
		t.Errorf("dimensions: got %dx%d, want 6x3", w, h)
	}
	if got := r.Image().NRGBAAt(5, 2); got != (color.NRGBA{0, 0, 255, 255}) {
		t.Errorf("pixel: got %v, want solid blue", got)
	}
}
