package imaging

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/gabriel-vasile/mimetype"
)

// sniffLen is how many leading bytes are inspected to detect the format.
// JPEG, GIF and PNG signatures all fit well inside it.
const sniffLen = 512

// decoders holds the single-image decoder for each supported format.
// gif.Decode returns the first frame of an animation.
var decoders = map[Format]func(io.Reader) (image.Image, error){
	JPEG: jpeg.Decode,
	GIF:  gif.Decode,
	PNG:  png.Decode,
}

var configDecoders = map[Format]func(io.Reader) (image.Config, error){
	JPEG: jpeg.DecodeConfig,
	GIF:  gif.DecodeConfig,
	PNG:  png.DecodeConfig,
}

// detectFormat sniffs the content of r and returns its format. The returned
// reader replays the sniffed bytes.
func detectFormat(r io.Reader) (Format, io.Reader, error) {
	br := bufio.NewReaderSize(r, sniffLen)
	head, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return 0, nil, fmt.Errorf("failed to read image header: %w", err)
	}
	if len(head) == 0 {
		return 0, nil, fmt.Errorf("%w: empty file", ErrUnsupportedFormat)
	}

	mtype := mimetype.Detect(head)
	format, ok := formatFromMIME(mtype.String())
	if !ok {
		return 0, nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, mtype.String())
	}
	return format, br, nil
}

// Open decodes the image at path and returns a Resizer owning it.
//
// The format is detected from the file content, not its extension. Files that
// are not JPEG, GIF or PNG fail with ErrUnsupportedFormat; files whose content
// claims a supported format but cannot be decoded fail with ErrDecode.
func Open(path string, opts ...Option) (*Resizer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	format, r, err := detectFormat(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	img, err := decoders[format](r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}

	rz, err := New(img, format, opts...)
	if err != nil {
		return nil, err
	}
	rz.logger.Debug("opened image", "path", path, "format", format, "width", rz.sourceWidth, "height", rz.sourceHeight)
	return rz, nil
}

// ImageInfo contains metadata about an image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is detected from the file content.
	Format Format `json:"format"`

	// HasAlpha reports whether the color model can carry transparency.
	// Paletted GIF and PNG files report true since any entry may be transparent.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// Stat reads only the image header and reports its metadata. It fails with the
// same errors as Open for unsupported or corrupt headers.
func Stat(path string) (*ImageInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format, r, err := detectFormat(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	cfg, err := configDecoders[format](r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}

	return &ImageInfo{
		Width:         cfg.Width,
		Height:        cfg.Height,
		Format:        format,
		HasAlpha:      hasAlpha(cfg),
		FileSizeBytes: stat.Size(),
	}, nil
}

func hasAlpha(cfg image.Config) bool {
	switch cfg.ColorModel {
	case color.RGBAModel, color.NRGBAModel, color.RGBA64Model, color.NRGBA64Model,
		color.AlphaModel, color.Alpha16Model:
		return true
	}
	_, paletted := cfg.ColorModel.(color.Palette)
	return paletted
}
