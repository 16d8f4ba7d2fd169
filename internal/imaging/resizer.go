package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/hashicorp/go-hclog"

	"github.com/ironsheep/image-resizer/internal/resample"
)

// Resizer owns one decoded source image and at most one modified buffer.
//
// Resize operations always read the untouched source and replace the modified
// buffer; Save encodes the modified buffer and then releases it. A Resizer is
// not safe for concurrent use.
type Resizer struct {
	source       *image.NRGBA
	sourceWidth  int
	sourceHeight int
	sourceFormat Format

	modified  *image.NRGBA
	newWidth  int
	newHeight int

	jpegQuality    int
	pngCompression int
	resampler      resample.Resampler
	codecs         *Codecs
	logger         hclog.Logger
}

// Option configures a Resizer at construction time.
type Option func(*Resizer)

// WithJPEGQuality sets the JPEG quality used when Save has no explicit quality.
// The value is clamped to 0-100.
func WithJPEGQuality(q int) Option {
	return func(r *Resizer) { r.jpegQuality = ClampQuality(JPEG, q) }
}

// WithPNGCompression sets the PNG compression level used when Save has no
// explicit quality. The value is clamped to 0-9.
func WithPNGCompression(level int) Option {
	return func(r *Resizer) { r.pngCompression = ClampQuality(PNG, level) }
}

// WithResampler replaces the default Lanczos resampler.
func WithResampler(rs resample.Resampler) Option {
	return func(r *Resizer) {
		if rs != nil {
			r.resampler = rs
		}
	}
}

// WithCodecs restricts or replaces the encoders available to Save.
func WithCodecs(c *Codecs) Option {
	return func(r *Resizer) {
		if c != nil {
			r.codecs = c
		}
	}
}

// WithLogger sets the logger for debug traces. Resizers are silent by default.
func WithLogger(l hclog.Logger) Option {
	return func(r *Resizer) {
		if l != nil {
			r.logger = l
		}
	}
}

// New builds a Resizer from an already decoded image. The image is copied into
// a private buffer, so later changes to img do not affect the Resizer.
func New(img image.Image, format Format, opts ...Option) (*Resizer, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrDecode)
	}
	if !format.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: empty image %dx%d", ErrDecode, b.Dx(), b.Dy())
	}

	r := configure(opts)
	r.source = imaging.Clone(img)
	r.sourceWidth = b.Dx()
	r.sourceHeight = b.Dy()
	r.sourceFormat = format
	return r, nil
}

// configure returns a Resizer with no source, holding the defaults with opts
// applied.
func configure(opts []Option) *Resizer {
	r := &Resizer{
		jpegQuality:    DefaultJPEGQuality,
		pngCompression: DefaultPNGCompression,
		resampler:      resample.Default(),
		codecs:         DefaultCodecs(),
		logger:         hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SourceWidth returns the width of the decoded source image.
func (r *Resizer) SourceWidth() int { return r.sourceWidth }

// SourceHeight returns the height of the decoded source image.
func (r *Resizer) SourceHeight() int { return r.sourceHeight }

// SourceFormat returns the format detected when the source was opened.
func (r *Resizer) SourceFormat() Format { return r.sourceFormat }

// Dimensions returns the size of the current modified buffer, or 0,0 if there
// is none.
func (r *Resizer) Dimensions() (width, height int) {
	if r.modified == nil {
		return 0, 0
	}
	return r.newWidth, r.newHeight
}

// Image returns the current modified buffer, or nil if no resize happened since
// the last Save. The buffer is owned by the Resizer; do not modify it.
func (r *Resizer) Image() *image.NRGBA { return r.modified }

// Close releases the source and any modified buffer. Further calls fail with
// ErrClosed.
func (r *Resizer) Close() error {
	if r.source == nil {
		return ErrClosed
	}
	r.release()
	r.source = nil
	return nil
}

// ResizeWithinDimensions scales the source to fit inside maxWidth x maxHeight,
// preserving the aspect ratio. Smaller images are upscaled.
func (r *Resizer) ResizeWithinDimensions(maxWidth, maxHeight int) error {
	if err := r.check(maxWidth, maxHeight); err != nil {
		return err
	}
	if maxWidth == r.sourceWidth && maxHeight == r.sourceHeight {
		r.copyWithoutResampling()
		return nil
	}

	widthRatio := float64(r.sourceWidth) / float64(maxWidth)
	heightRatio := float64(r.sourceHeight) / float64(maxHeight)

	if widthRatio > heightRatio {
		return r.ResizeByWidth(maxWidth)
	}
	return r.ResizeByHeight(maxHeight)
}

// ResizeByWidth scales the source to exactly width pixels wide. The height
// follows the aspect ratio, truncated toward zero.
func (r *Resizer) ResizeByWidth(width int) error {
	if err := r.check(width, 1); err != nil {
		return err
	}
	if width == r.sourceWidth {
		r.copyWithoutResampling()
		return nil
	}

	ratio := float64(r.sourceHeight) / float64(r.sourceWidth)
	return r.copyResampled(width, atLeastOne(ratio*float64(width)))
}

// ResizeByHeight scales the source to exactly height pixels tall. The width
// follows the aspect ratio, truncated toward zero.
func (r *Resizer) ResizeByHeight(height int) error {
	if err := r.check(1, height); err != nil {
		return err
	}
	if height == r.sourceHeight {
		r.copyWithoutResampling()
		return nil
	}

	ratio := float64(r.sourceWidth) / float64(r.sourceHeight)
	return r.copyResampled(atLeastOne(ratio*float64(height)), height)
}

// check rejects non-positive sizes and use after Close.
func (r *Resizer) check(width, height int) error {
	if r.source == nil {
		return ErrClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return nil
}

// copyWithoutResampling makes the modified buffer a pixel-exact copy of the source.
func (r *Resizer) copyWithoutResampling() {
	r.replace(imaging.Clone(r.source))
	r.logger.Debug("identity copy", "width", r.sourceWidth, "height", r.sourceHeight)
}

// copyResampled scales the whole source into a new width x height buffer.
func (r *Resizer) copyResampled(width, height int) error {
	out, err := r.resampler.Resize(r.source, image.Pt(width, height))
	if err != nil {
		return fmt.Errorf("resample to %dx%d: %w", width, height, err)
	}
	r.replace(out)
	r.logger.Debug("resampled",
		"from", fmt.Sprintf("%dx%d", r.sourceWidth, r.sourceHeight),
		"to", fmt.Sprintf("%dx%d", width, height))
	return nil
}

// replace releases the current modified buffer and installs buf in its place.
func (r *Resizer) replace(buf *image.NRGBA) {
	r.release()
	r.modified = buf
	r.newWidth = buf.Bounds().Dx()
	r.newHeight = buf.Bounds().Dy()
}

// release drops the modified buffer. It is safe to call when there is none.
func (r *Resizer) release() {
	r.modified = nil
	r.newWidth = 0
	r.newHeight = 0
}

// atLeastOne truncates v toward zero, never returning less than one pixel.
func atLeastOne(v float64) int {
	n := int(v)
	if n < 1 {
		return 1
	}
	return n
}
