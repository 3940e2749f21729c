// Package render converts the raw pixmaps a rendering engine produces
// into standard Go images.
//
// Engines emit samples in blue-green-red(-alpha) order with the first
// row at the top; viewers want RGB with the origin at the bottom-left,
// so [ToRGBA] swaps channels and flips rows in one pass. [Scale]
// resamples a converted page for thumbnails or fit-to-window display.
package render

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/tsawler/verso/engine"
)

// ErrBadPixmap is returned when a pixmap's sample buffer does not
// match its declared dimensions.
var ErrBadPixmap = errors.New("pixmap samples do not match dimensions")

// ToRGBA converts an engine pixmap to an RGBA image, swapping the
// blue and red channels and flipping the rows so the bottom row of
// the pixmap becomes the top row of the image.
func ToRGBA(px *engine.Pixmap) (*image.RGBA, error) {
	if px == nil {
		return nil, errors.New("nil pixmap")
	}
	if px.Channels < 3 {
		return nil, fmt.Errorf("pixmap has %d channels, need at least 3", px.Channels)
	}
	if len(px.Samples) < px.Width*px.Height*px.Channels {
		return nil, ErrBadPixmap
	}

	img := image.NewRGBA(image.Rect(0, 0, px.Width, px.Height))

	s := 0
	for y := 0; y < px.Height; y++ {
		row := (px.Height - y - 1) * img.Stride
		for x := 0; x < px.Width; x++ {
			p := row + x*4
			img.Pix[p+0] = px.Samples[s+2]
			img.Pix[p+1] = px.Samples[s+1]
			img.Pix[p+2] = px.Samples[s+0]
			img.Pix[p+3] = 0xFF
			s += px.Channels
		}
	}

	return img, nil
}

// Scale resamples src to width x height using bilinear interpolation.
func Scale(src image.Image, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid target size %dx%d", width, height)
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	return dst, nil
}

// Thumbnail scales src so its longer side is maxDim pixels,
// preserving aspect ratio.
func Thumbnail(src image.Image, maxDim int) (*image.RGBA, error) {
	if maxDim <= 0 {
		return nil, fmt.Errorf("invalid thumbnail size %d", maxDim)
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil, errors.New("empty source image")
	}

	if w >= h {
		h = h * maxDim / w
		w = maxDim
	} else {
		w = w * maxDim / h
		h = maxDim
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	return Scale(src, w, h)
}
