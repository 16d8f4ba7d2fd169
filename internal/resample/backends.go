package resample

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/transform"
	"github.com/bamiaux/rez"
	"github.com/disintegration/gift"
	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// Imaging uses "github.com/disintegration/imaging"
type Imaging struct {
	Filter imaging.ResampleFilter
}

func (r Imaging) Resize(img image.Image, size image.Point) (*image.NRGBA, error) {
	if err := validSize(size); err != nil {
		return nil, err
	}
	filter := r.Filter
	if filter.Support == 0 && filter.Kernel == nil {
		filter = imaging.Lanczos
	}
	return imaging.Resize(img, size.X, size.Y, filter), nil
}

// NFNT uses "github.com/nfnt/resize"
type NFNT struct{}

func (NFNT) Resize(img image.Image, size image.Point) (*image.NRGBA, error) {
	if err := validSize(size); err != nil {
		return nil, err
	}
	return toNRGBA(resize.Resize(uint(size.X), uint(size.Y), img, resize.Lanczos3)), nil
}

// Bild uses "github.com/anthonynsimon/bild/transform"
type Bild struct{}

func (Bild) Resize(img image.Image, size image.Point) (*image.NRGBA, error) {
	if err := validSize(size); err != nil {
		return nil, err
	}
	return toNRGBA(transform.Resize(img, size.X, size.Y, transform.Lanczos)), nil
}

// Gift uses "github.com/disintegration/gift"
type Gift struct{}

func (Gift) Resize(img image.Image, size image.Point) (*image.NRGBA, error) {
	if err := validSize(size); err != nil {
		return nil, err
	}
	m := image.NewNRGBA(image.Rectangle{Max: size})
	gift.Resize(size.X, size.Y, gift.LanczosResampling).Draw(m, img, &gift.Options{Parallelization: true})
	return m, nil
}

// Rez uses "github.com/bamiaux/rez". Input and output are both converted to
// *image.RGBA because rez only converts between buffers of the same layout.
type Rez struct{}

func (Rez) Resize(img image.Image, size image.Point) (*image.NRGBA, error) {
	if err := validSize(size); err != nil {
		return nil, err
	}
	b := img.Bounds()
	in, ok := img.(*image.RGBA)
	if !ok || b.Min != (image.Point{}) {
		in = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(in, in.Bounds(), img, b.Min, draw.Src)
	}
	out := image.NewRGBA(image.Rectangle{Max: size})
	if err := rez.Convert(out, in, rez.NewBilinearFilter()); err != nil {
		return nil, fmt.Errorf("rez: %w", err)
	}
	return toNRGBA(out), nil
}

// XDraw uses "golang.org/x/image/draw"
type XDraw struct {
	Scaler draw.Scaler
}

// CatmullRom is the highest quality x/image scaler.
func CatmullRom() Resampler { return XDraw{Scaler: draw.CatmullRom} }

// BiLinear trades some quality for speed.
func BiLinear() Resampler { return XDraw{Scaler: draw.BiLinear} }

// ApproxBiLinear is the fastest interpolating x/image scaler.
func ApproxBiLinear() Resampler { return XDraw{Scaler: draw.ApproxBiLinear} }

func (r XDraw) Resize(img image.Image, size image.Point) (*image.NRGBA, error) {
	if err := validSize(size); err != nil {
		return nil, err
	}
	scaler := r.Scaler
	if scaler == nil {
		scaler = draw.CatmullRom
	}
	dst := image.NewNRGBA(image.Rectangle{Max: size})
	// draw.Src overwrites dst, alpha included.
	scaler.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst, nil
}
