// Package imaging decodes stored barcode images and scales them for display.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // register PNG decoder

	"golang.org/x/image/draw"
)

// Decode decodes an encoded image.
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return img, nil
}

// Size returns the pixel dimensions of an encoded image without decoding
// the pixel data.
func Size(data []byte) (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("decoding image config: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}

// ScaledHeight returns the height that keeps the aspect ratio of a
// srcW x srcH image scaled to width. The result is truncated, never below 1.
func ScaledHeight(srcW, srcH, width int) int {
	h := int(float64(srcH) * (float64(width) / float64(srcW)))
	if h < 1 {
		h = 1
	}
	return h
}

// ResizeToWidth scales src to width pixels wide, preserving aspect ratio,
// with Catmull-Rom interpolation.
func ResizeToWidth(src image.Image, width int) (image.Image, error) {
	b := src.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("cannot resize empty image %dx%d", b.Dx(), b.Dy())
	}
	if width <= 0 {
		return nil, fmt.Errorf("target width must be positive, got %d", width)
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, ScaledHeight(b.Dx(), b.Dy(), width)))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst, nil
}
