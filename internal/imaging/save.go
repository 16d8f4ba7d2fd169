package imaging

import (
	"fmt"
	"os"
)

// saveOptions collects the optional arguments of Save.
type saveOptions struct {
	format     Format
	hasFormat  bool
	quality    int
	hasQuality bool
	background string
}

// SaveOption configures a single Save call.
type SaveOption func(*saveOptions)

// WithFormat selects the output format. Without it the source format is used.
func WithFormat(f Format) SaveOption {
	return func(o *saveOptions) {
		o.format = f
		o.hasFormat = true
	}
}

// WithQuality sets the JPEG quality (0-100) or PNG compression level (0-9).
// Out-of-range values are clamped. GIF ignores it.
func WithQuality(q int) SaveOption {
	return func(o *saveOptions) {
		o.quality = q
		o.hasQuality = true
	}
}

// WithBackground flattens transparency onto a solid color before encoding.
// See AddBackgroundColor.
func WithBackground(hex string) SaveOption {
	return func(o *saveOptions) { o.background = hex }
}

// Save encodes the modified buffer to name plus the format's extension and
// returns the written file name, for example "thumb.jpg".
//
// If nothing was resized since the last Save, an unscaled copy of the source
// is written. An invalid format or color leaves the modified buffer in place;
// once encoding starts the buffer is released whether or not it succeeds.
func (r *Resizer) Save(name string, opts ...SaveOption) (string, error) {
	if r.source == nil {
		return "", ErrClosed
	}
	var o saveOptions
	for _, opt := range opts {
		opt(&o)
	}

	if r.modified == nil {
		r.copyWithoutResampling()
	}

	format := r.sourceFormat
	if o.hasFormat {
		if !o.format.Valid() {
			return "", fmt.Errorf("%w: %s", ErrInvalidFormat, o.format)
		}
		format = o.format
	}

	if o.background != "" {
		if err := r.AddBackgroundColor(o.background); err != nil {
			return "", err
		}
	}

	defer r.release()

	quality := r.defaultQuality(format)
	if o.hasQuality {
		quality = o.quality
	}
	quality = ClampQuality(format, quality)

	if !r.codecs.Available(format) {
		return "", fmt.Errorf("%w: no %s encoder", ErrCodecUnavailable, format)
	}

	file := name + "." + format.Extension()
	if err := r.writeFile(file, format, quality); err != nil {
		return "", err
	}

	r.logger.Debug("saved image", "file", file, "format", format, "quality", quality,
		"width", r.newWidth, "height", r.newHeight)
	return file, nil
}

func (r *Resizer) defaultQuality(f Format) int {
	switch f {
	case JPEG:
		return r.jpegQuality
	case PNG:
		return r.pngCompression
	}
	return 0
}

// writeFile encodes the modified buffer into file. A partially written file
// is removed on failure.
func (r *Resizer) writeFile(file string, format Format, quality int) (err error) {
	f, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %s: %w", ErrEncode, file, cerr)
		}
		if err != nil {
			os.Remove(file)
		}
	}()

	if err := r.codecs.Encode(f, r.modified, format, quality); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEncode, file, err)
	}
	return nil
}
