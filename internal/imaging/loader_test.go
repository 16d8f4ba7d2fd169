package imaging

import (
	"errors"
	"image/color"
	"os"
	"testing"
)

func TestOpen_DetectsFormat(t *testing.T) {
	dir := t.TempDir()
	src := createInMemoryImage(40, 30, color.NRGBA{10, 200, 30, 255})

	tests := []struct {
		name   string
		file   string
		format Format
	}{
		{"png", "a.png", PNG},
		{"jpeg", "a.jpg", JPEG},
		{"gif", "a.gif", GIF},
		// Detection reads content; a misleading extension does not matter.
		{"png named jpg", "b.jpg", PNG},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeImage(t, dir, tt.file, src, tt.format)

			r, err := Open(path)
			if err != nil {
				t.Fatalf("Open failed: %v", err)
			}
			if r.SourceFormat() != tt.format {
				t.Errorf("SourceFormat: got %s, want %s", r.SourceFormat(), tt.format)
			}
			if r.SourceWidth() != 40 || r.SourceHeight() != 30 {
				t.Errorf("source size: got %dx%d, want 40x30", r.SourceWidth(), r.SourceHeight())
			}
			if r.Image() != nil {
				t.Error("a freshly opened resizer should have no modified buffer")
			}
		})
	}
}

func TestOpen_UnsupportedFormat(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		data []byte
	}{
		{"text", []byte("not an image at all")},
		{"bmp", append([]byte("BM"), make([]byte, 64)...)},
		{"pdf", []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n")},
		{"empty", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.name+".png", tt.data)
			_, err := Open(path)
			if !errors.Is(err, ErrUnsupportedFormat) {
				t.Errorf("Open: got %v, want ErrUnsupportedFormat", err)
			}
		})
	}
}

func TestOpen_CorruptData(t *testing.T) {
	dir := t.TempDir()

	// Valid signatures followed by garbage.
	tests := []struct {
		name string
		data []byte
	}{
		{"png", append([]byte("\x89PNG\r\n\x1a\n"), []byte("garbage garbage garbage")...)},
		{"gif", append([]byte("GIF89a"), []byte{0x01}...)},
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00, 0x01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, "corrupt."+tt.name, tt.data)
			_, err := Open(path)
			if !errors.Is(err, ErrDecode) {
				t.Errorf("Open: got %v, want ErrDecode", err)
			}
		})
	}
}

func TestOpen_NonExistent(t *testing.T) {
	_, err := Open("/nonexistent/path/to/image.png")
	if err == nil {
		t.Fatal("Open should fail for a missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestNew_Validation(t *testing.T) {
	img := createInMemoryImage(4, 4, color.White)

	if _, err := New(nil, PNG); !errors.Is(err, ErrDecode) {
		t.Errorf("nil image: got %v, want ErrDecode", err)
	}
	if _, err := New(img, Format(0)); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("zero format: got %v, want ErrUnsupportedFormat", err)
	}
	if _, err := New(createInMemoryImage(0, 0, color.White), PNG); !errors.Is(err, ErrDecode) {
		t.Errorf("empty image: got %v, want ErrDecode", err)
	}
}

func TestNew_CopiesSource(t *testing.T) {
	img := createInMemoryImage(4, 4, color.NRGBA{1, 2, 3, 255})
	r, err := New(img, PNG)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	img.Set(0, 0, color.NRGBA{9, 9, 9, 255})
	if err := r.ResizeByWidth(4); err != nil {
		t.Fatalf("ResizeByWidth failed: %v", err)
	}
	if got := r.Image().NRGBAAt(0, 0); got != (color.NRGBA{1, 2, 3, 255}) {
		t.Errorf("source changed through caller's image: got %v", got)
	}
}

func TestStat(t *testing.T) {
	dir := t.TempDir()
	path := writeImage(t, dir, "info.png", createInMemoryImage(120, 80, color.NRGBA{0, 0, 0, 128}), PNG)

	info, err := Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Width != 120 || info.Height != 80 {
		t.Errorf("dimensions: got %dx%d, want 120x80", info.Width, info.Height)
	}
	if info.Format != PNG {
		t.Errorf("Format: got %s, want png", info.Format)
	}
	if !info.HasAlpha {
		t.Error("translucent PNG should report HasAlpha")
	}
	if info.FileSizeBytes <= 0 {
		t.Errorf("FileSizeBytes: got %d", info.FileSizeBytes)
	}

	jpgPath := writeImage(t, dir, "info.jpg", createInMemoryImage(10, 10, color.White), JPEG)
	info, err = Stat(jpgPath)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.HasAlpha {
		t.Error("JPEG should not report HasAlpha")
	}
}

func TestStat_Unsupported(t *testing.T) {
	path := writeFile(t, t.TempDir(), "x.txt", []byte("hello"))
	if _, err := Stat(path); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Stat: got %v, want ErrUnsupportedFormat", err)
	}
}
