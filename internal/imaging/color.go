package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// ParseHexColor parses a six digit RGB hex string without a leading '#',
// such as "FF0000" or "090909". Letters may be upper or lower case.
func ParseHexColor(hex string) (color.NRGBA, error) {
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	for i := 0; i < len(hex); i++ {
		if !isHexDigit(hex[i]) {
			return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
		}
	}

	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q: %w", ErrInvalidColor, hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// AddBackgroundColor flattens the modified buffer onto an opaque solid color.
//
// Pixels are copied without alpha blending: a fully transparent pixel takes
// the background color, any other pixel keeps its RGB value and becomes fully
// opaque. The result contains no transparent pixels. If no resize happened
// yet, the source is copied first.
func (r *Resizer) AddBackgroundColor(hex string) error {
	if r.source == nil {
		return ErrClosed
	}
	bg, err := ParseHexColor(hex)
	if err != nil {
		return err
	}
	if r.modified == nil {
		r.copyWithoutResampling()
	}

	r.replace(flatten(r.modified, bg))
	r.logger.Debug("background applied", "color", hex, "width", r.newWidth, "height", r.newHeight)
	return nil
}

// flatten returns an opaque copy of src over a solid bg.
func flatten(src *image.NRGBA, bg color.NRGBA) *image.NRGBA {
	b := src.Bounds()
	dst := imaging.New(b.Dx(), b.Dy(), bg)

	for y := 0; y < b.Dy(); y++ {
		si := src.PixOffset(b.Min.X, b.Min.Y+y)
		di := dst.PixOffset(0, y)
		for x := 0; x < b.Dx(); x++ {
			if a := src.Pix[si+3]; a != 0 {
				dst.Pix[di+0] = src.Pix[si+0]
				dst.Pix[di+1] = src.Pix[si+1]
				dst.Pix[di+2] = src.Pix[si+2]
				dst.Pix[di+3] = 0xff
			}
			si += 4
			di += 4
		}
	}
	return dst
}
