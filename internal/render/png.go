// Package render encodes frames into viewable images.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/mirageproc/mirage/pkg/domain"
)

// EncodePNG writes a frame as an 8-bit grayscale PNG, normalizing samples
// linearly between the frame's minimum and maximum. A flat frame encodes
// as black.
func EncodePNG(w io.Writer, f *domain.Frame) error {
	if f == nil || f.IsEmpty() {
		return fmt.Errorf("encode png: frame is empty")
	}
	lo, hi := f.Pixels[0], f.Pixels[0]
	for _, v := range f.Pixels {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	span := hi - lo
	img := image.NewGray(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			var level uint8
			if span > 0 {
				level = uint8((f.At(x, y) - lo) / span * 255)
			}
			img.SetGray(x, y, color.Gray{Y: level})
		}
	}
	return png.Encode(w, img)
}
