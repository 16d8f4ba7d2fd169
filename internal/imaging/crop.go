package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// ResizeToFillDimensionsExactly scales the source so it covers width x height,
// then crops the centered width x height region. The result always has exactly
// the requested size.
func (r *Resizer) ResizeToFillDimensionsExactly(width, height int) error {
	if err := r.check(width, height); err != nil {
		return err
	}
	if width == r.sourceWidth && height == r.sourceHeight {
		r.copyWithoutResampling()
		return nil
	}

	widthRatio := float64(r.sourceWidth) / float64(width)
	heightRatio := float64(r.sourceHeight) / float64(height)

	optimalRatio := widthRatio
	if heightRatio < widthRatio {
		optimalRatio = heightRatio
	}

	// Float error can leave the covering side one pixel short of the box.
	coverWidth := max(atLeastOne(float64(r.sourceWidth)/optimalRatio), width)
	coverHeight := max(atLeastOne(float64(r.sourceHeight)/optimalRatio), height)

	if err := r.copyResampled(coverWidth, coverHeight); err != nil {
		return err
	}

	x, y := cropOrigin(coverWidth, coverHeight, width, height)
	cropped := imaging.Crop(r.modified, image.Rect(x, y, x+width, y+height))
	r.replace(cropped)
	r.logger.Debug("center crop",
		"cover", fmt.Sprintf("%dx%d", coverWidth, coverHeight),
		"origin", fmt.Sprintf("%d,%d", x, y),
		"size", fmt.Sprintf("%dx%d", width, height))
	return nil
}

// cropOrigin returns the top-left corner of a w x h box centered in a
// coverW x coverH buffer, truncated toward zero.
func cropOrigin(coverW, coverH, w, h int) (x, y int) {
	x = int(float64(coverW)/2 - float64(w)/2)
	y = int(float64(coverH)/2 - float64(h)/2)
	return x, y
}
