package imaging

import "errors"

// Every failure returned by this package wraps exactly one of these sentinels,
// so callers can branch with errors.Is. The underlying cause, when there is
// one, is wrapped as well.
var (
	// ErrUnsupportedFormat: the file's format is undetectable or not JPEG, GIF or PNG.
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrDecode: the format is supported but the pixel data could not be decoded.
	ErrDecode = errors.New("image could not be decoded")

	// ErrInvalidColor: a background color is not exactly six hex digits.
	ErrInvalidColor = errors.New("invalid color: want six hex digits, like FF0000")

	// ErrInvalidFormat: an explicitly requested output format is not JPEG, GIF or PNG.
	ErrInvalidFormat = errors.New("invalid output format")

	// ErrCodecUnavailable: the configured codec set cannot encode the requested format.
	ErrCodecUnavailable = errors.New("codec unavailable")

	// ErrEncode: the output file could not be written.
	ErrEncode = errors.New("image could not be saved")

	// ErrInvalidDimensions: a requested width or height is not positive.
	ErrInvalidDimensions = errors.New("invalid dimensions")

	// ErrInvalidMode: a resize strategy name is not recognized.
	ErrInvalidMode = errors.New("invalid resize mode")

	// ErrClosed: the resizer was used after Close.
	ErrClosed = errors.New("resizer is closed")
)
