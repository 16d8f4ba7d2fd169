package imaging

import (
	"fmt"
	"strings"
)

// Format is one of the raster formats the resizer reads and writes.
// The zero value is not a valid format.
type Format int

const (
	JPEG Format = iota + 1
	GIF
	PNG
)

// SupportedFormats returns every format the resizer accepts, in a stable order.
func SupportedFormats() []Format {
	return []Format{JPEG, GIF, PNG}
}

// Valid reports whether f is one of JPEG, GIF or PNG.
func (f Format) Valid() bool {
	switch f {
	case JPEG, GIF, PNG:
		return true
	}
	return false
}

func (f Format) String() string {
	switch f {
	case JPEG:
		return "jpeg"
	case GIF:
		return "gif"
	case PNG:
		return "png"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Extension returns the file extension written by Save, without the dot.
func (f Format) Extension() string {
	switch f {
	case JPEG:
		return "jpg"
	case GIF:
		return "gif"
	case PNG:
		return "png"
	}
	return ""
}

// MIMEType returns the media type for f.
func (f Format) MIMEType() string {
	switch f {
	case JPEG:
		return "image/jpeg"
	case GIF:
		return "image/gif"
	case PNG:
		return "image/png"
	}
	return ""
}

// ParseFormat maps a name or extension ("jpg", ".JPEG", "png", ...) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "jpg", "jpeg":
		return JPEG, nil
	case "gif":
		return GIF, nil
	case "png":
		return PNG, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
}

// formatFromMIME maps a sniffed media type to a Format.
func formatFromMIME(mime string) (Format, bool) {
	switch mime {
	case "image/jpeg":
		return JPEG, true
	case "image/gif":
		return GIF, true
	case "image/png":
		return PNG, true
	}
	return 0, false
}

// MarshalText encodes f by name so JSON results read "png" rather than 3.
func (f Format) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFormat, int(f))
	}
	return []byte(f.String()), nil
}

func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
