// Package barcode rasterises codes as Code 128 linear barcodes.
package barcode

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"

	bc "github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"eanlabel/internal/config"
	"eanlabel/internal/domain"
	"eanlabel/internal/port"
)

const (
	marginPx    = 10
	textGapPx   = 4
	textAreaPx  = 13 + textGapPx
	darkCutover = 128
)

// Code128Renderer draws a code as a Code 128 barcode with a quiet zone and,
// optionally, the human-readable digits underneath.
type Code128Renderer struct {
	cfg config.BarcodeConfig
}

var _ port.BarcodeRenderer = (*Code128Renderer)(nil)

// NewCode128Renderer creates a renderer using the raster settings in cfg.
func NewCode128Renderer(cfg config.BarcodeConfig) *Code128Renderer {
	return &Code128Renderer{cfg: cfg}
}

// Render encodes code and returns the barcode as PNG bytes.
func (r *Code128Renderer) Render(ctx context.Context, code domain.Code) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, err := r.Draw(code.String())
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	return buf.Bytes(), nil
}

// Draw encodes content and returns the rasterised barcode.
func (r *Code128Renderer) Draw(content string) (*image.Gray, error) {
	symbol, err := code128.Encode(content)
	if err != nil {
		return nil, fmt.Errorf("code128 encode %q: %w", content, err)
	}

	modules := symbol.Bounds().Dx()
	mw := r.cfg.ModuleWidth
	width := (modules + 2*r.cfg.QuietZone) * mw
	height := marginPx + r.cfg.BarHeight + marginPx
	if r.cfg.ShowText {
		height += textAreaPx
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	left := r.cfg.QuietZone * mw
	for m := 0; m < modules; m++ {
		if !isDark(symbol, m) {
			continue
		}
		x0 := left + m*mw
		bar := image.Rect(x0, marginPx, x0+mw, marginPx+r.cfg.BarHeight)
		draw.Draw(img, bar, image.Black, image.Point{}, draw.Src)
	}

	if r.cfg.ShowText {
		drawCaption(img, content, marginPx+r.cfg.BarHeight+textGapPx)
	}
	return img, nil
}

func isDark(symbol bc.Barcode, x int) bool {
	b := symbol.Bounds()
	g := color.GrayModel.Convert(symbol.At(b.Min.X+x, b.Min.Y)).(color.Gray)
	return g.Y < darkCutover
}

// drawCaption centres text horizontally with its top at y.
func drawCaption(img *image.Gray, text string, y int) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: face,
	}
	textW := d.MeasureString(text).Ceil()
	x := (img.Bounds().Dx() - textW) / 2
	if x < 0 {
		x = 0
	}
	d.Dot = fixed.P(x, y+face.Ascent)
	d.DrawString(text)
}
