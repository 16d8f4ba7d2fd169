// Package imaging resizes a single JPEG, GIF or PNG image and writes it back
// to disk.
//
// A Resizer is created from a file with Open (or from a decoded image with
// New). It keeps the decoded source untouched and works on a separate
// modified buffer:
//
//	r, err := imaging.Open("photo.png")
//	if err != nil {
//	    return err
//	}
//	if err := r.ResizeToFillDimensionsExactly(50, 50); err != nil {
//	    return err
//	}
//	name, err := r.Save("thumb", imaging.WithFormat(imaging.JPEG), imaging.WithQuality(90))
//
// # Resize Strategies
//
//   - ResizeWithinDimensions: fit inside a box, aspect ratio kept, upscaling allowed
//   - ResizeByWidth / ResizeByHeight: one side fixed, the other follows the ratio
//   - ResizeToFillDimensionsExactly: cover the box, then center-crop to it
//
// Apply selects a strategy by Mode, for callers that take the mode as text
// (ParseMode). ModeNone leaves the buffer empty so Save writes a copy.
//
// Requesting exactly the source size copies pixels without resampling.
// Computed sides are truncated toward zero and never drop below one pixel.
//
// # Saving
//
// Save appends the extension (jpg, gif or png), clamps the quality to the
// format's range (JPEG 0-100, PNG compression 0-9, GIF none) and releases the
// modified buffer. A Save without a preceding resize writes an unscaled copy.
//
// # Error Handling
//
// Errors wrap one of the package sentinels (ErrUnsupportedFormat, ErrDecode,
// ErrInvalidColor, ErrInvalidFormat, ErrCodecUnavailable, ErrEncode,
// ErrInvalidDimensions, ErrInvalidMode, ErrClosed); use errors.Is to classify them.
//
// # Thread Safety
//
// A Resizer mutates its modified buffer in place and must not be shared
// between goroutines without external locking.
package imaging
