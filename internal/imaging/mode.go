package imaging

import (
	"fmt"
	"strings"
)

// Mode names one of the resize strategies.
type Mode int

const (
	// ModeNone skips resizing; Save writes an unscaled copy.
	ModeNone Mode = iota
	ModeWithin
	ModeWidth
	ModeHeight
	ModeFill
)

var modeNames = map[Mode]string{
	ModeNone:   "none",
	ModeWithin: "within",
	ModeWidth:  "width",
	ModeHeight: "height",
	ModeFill:   "fill",
}

// ModeNames lists the accepted mode names in declaration order.
func ModeNames() []string {
	return []string{"none", "within", "width", "height", "fill"}
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode converts a mode name, case-insensitively. An empty string is
// ModeNone.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ModeNone, nil
	}
	for m, name := range modeNames {
		if name == s {
			return m, nil
		}
	}
	return ModeNone, fmt.Errorf("%w: %q (want one of %s)", ErrInvalidMode, s, strings.Join(ModeNames(), ", "))
}

// Apply runs the strategy m. ModeWidth ignores height and ModeHeight ignores
// width.
func (r *Resizer) Apply(m Mode, width, height int) error {
	switch m {
	case ModeNone:
		if r.source == nil {
			return ErrClosed
		}
		return nil
	case ModeWithin:
		return r.ResizeWithinDimensions(width, height)
	case ModeWidth:
		return r.ResizeByWidth(width)
	case ModeHeight:
		return r.ResizeByHeight(height)
	case ModeFill:
		return r.ResizeToFillDimensionsExactly(width, height)
	}
	return fmt.Errorf("%w: %s", ErrInvalidMode, m)
}

// FormatInfo describes one output format under a given set of options.
type FormatInfo struct {
	Format         Format `json:"format"`
	Extension      string `json:"extension"`
	MIMEType       string `json:"mime_type"`
	Available      bool   `json:"available"`
	DefaultQuality int    `json:"default_quality"`
}

// Formats reports every supported format as a Resizer built with opts would
// save it.
func Formats(opts ...Option) []FormatInfo {
	r := configure(opts)
	var out []FormatInfo
	for _, f := range SupportedFormats() {
		out = append(out, FormatInfo{
			Format:         f,
			Extension:      f.Extension(),
			MIMEType:       f.MIMEType(),
			Available:      r.codecs.Available(f),
			DefaultQuality: r.defaultQuality(f),
		})
	}
	return out
}
