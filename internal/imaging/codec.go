package imaging

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/disintegration/imaging"
	"github.com/soniakeys/quant/median"
)

// Quality bounds per format. PNG "quality" is a zlib compression effort, not a
// lossy quality; GIF has no quality setting.
const (
	MinJPEGQuality = 0
	MaxJPEGQuality = 100

	MinPNGCompression = 0
	MaxPNGCompression = 9

	// DefaultJPEGQuality is used when Save is called without WithQuality.
	DefaultJPEGQuality = 80
	// DefaultPNGCompression is used when Save is called without WithQuality.
	DefaultPNGCompression = 9
)

// gifPaletteSize is the number of colors median-cut picks for GIF output.
const gifPaletteSize = 256

// EncodeFunc writes img to w. quality is already clamped for the format.
type EncodeFunc func(w io.Writer, img image.Image, quality int) error

// Codecs is the set of encoders available to a Resizer.
type Codecs struct {
	encoders map[Format]EncodeFunc
}

// DefaultCodecs returns encoders for JPEG, GIF and PNG.
func DefaultCodecs() *Codecs {
	return &Codecs{encoders: map[Format]EncodeFunc{
		JPEG: encodeJPEG,
		GIF:  encodeGIF,
		PNG:  encodePNG,
	}}
}

// Available reports whether f can be encoded.
func (c *Codecs) Available(f Format) bool {
	if c == nil {
		return false
	}
	_, ok := c.encoders[f]
	return ok
}

// Without returns a copy of c with the given formats removed.
func (c *Codecs) Without(formats ...Format) *Codecs {
	out := &Codecs{encoders: make(map[Format]EncodeFunc, len(c.encoders))}
	for f, enc := range c.encoders {
		out.encoders[f] = enc
	}
	for _, f := range formats {
		delete(out.encoders, f)
	}
	return out
}

// With returns a copy of c with enc registered for f.
func (c *Codecs) With(f Format, enc EncodeFunc) *Codecs {
	out := c.Without()
	out.encoders[f] = enc
	return out
}

// Encode writes img in format f.
func (c *Codecs) Encode(w io.Writer, img image.Image, f Format, quality int) error {
	if !c.Available(f) {
		return fmt.Errorf("%w: %s", ErrCodecUnavailable, f)
	}
	return c.encoders[f](w, img, quality)
}

// ClampQuality limits quality to the range accepted by f. GIF has no quality
// and always yields 0.
func ClampQuality(f Format, quality int) int {
	var lo, hi int
	switch f {
	case JPEG:
		lo, hi = MinJPEGQuality, MaxJPEGQuality
	case PNG:
		lo, hi = MinPNGCompression, MaxPNGCompression
	default:
		return 0
	}
	if quality < lo {
		return lo
	}
	if quality > hi {
		return hi
	}
	return quality
}

// pngCompressionLevel maps 0-9 onto the four levels image/png implements.
func pngCompressionLevel(level int) png.CompressionLevel {
	switch {
	case level <= 0:
		return png.NoCompression
	case level <= 3:
		return png.BestSpeed
	case level <= 6:
		return png.DefaultCompression
	default:
		return png.BestCompression
	}
}

func encodeJPEG(w io.Writer, img image.Image, quality int) error {
	return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(quality))
}

func encodePNG(w io.Writer, img image.Image, level int) error {
	return imaging.Encode(w, img, imaging.PNG, imaging.PNGCompressionLevel(pngCompressionLevel(level)))
}

func encodeGIF(w io.Writer, img image.Image, _ int) error {
	return imaging.Encode(w, img, imaging.GIF,
		imaging.GIFNumColors(gifPaletteSize),
		imaging.GIFQuantizer(median.Quantizer(gifPaletteSize)),
	)
}
