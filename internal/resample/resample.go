// Package resample provides interchangeable pixel resampling backends.
//
// Every backend scales a whole image to an exact target size with an
// interpolating filter. The result is always an *image.NRGBA whose bounds
// start at (0,0), so callers can treat buffers from any backend alike.
//
// # Backends
//
//   - imaging: github.com/disintegration/imaging, Lanczos (default)
//   - nfnt: github.com/nfnt/resize, Lanczos3
//   - bild: github.com/anthonynsimon/bild/transform, Lanczos
//   - gift: github.com/disintegration/gift, Lanczos
//   - rez: github.com/bamiaux/rez, bilinear
//   - catmullrom, bilinear, approxbilinear: golang.org/x/image/draw scalers
package resample

import (
	"fmt"
	"image"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
)

// Resampler scales img to exactly size.X by size.Y pixels.
type Resampler interface {
	Resize(img image.Image, size image.Point) (*image.NRGBA, error)
}

// DefaultName is the backend used when none is configured.
const DefaultName = "imaging"

var registry = map[string]func() Resampler{
	"imaging":        func() Resampler { return Imaging{Filter: imaging.Lanczos} },
	"nfnt":           func() Resampler { return NFNT{} },
	"bild":           func() Resampler { return Bild{} },
	"gift":           func() Resampler { return Gift{} },
	"rez":            func() Resampler { return Rez{} },
	"catmullrom":     CatmullRom,
	"bilinear":       BiLinear,
	"approxbilinear": ApproxBiLinear,
}

// Default returns the default backend.
func Default() Resampler {
	return registry[DefaultName]()
}

// Lookup returns the backend registered under name. Names are case-insensitive.
func Lookup(name string) (Resampler, error) {
	ctor, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown resampler %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return ctor(), nil
}

// Names lists the registered backend names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func validSize(size image.Point) error {
	if size.X <= 0 || size.Y <= 0 {
		return fmt.Errorf("invalid target size %dx%d", size.X, size.Y)
	}
	return nil
}

// toNRGBA returns img as a zero-origin *image.NRGBA, converting only when needed.
func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	return imaging.Clone(img)
}
