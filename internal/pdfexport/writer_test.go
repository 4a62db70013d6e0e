package pdfexport

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eanlabel/internal/domain"
	"eanlabel/internal/port"
)

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.SetGray(x, y, color.Gray{Y: uint8(255 * (x % 2))})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestWriter_Render(t *testing.T) {
	w := &Writer{compress: false}

	out, err := w.Render(context.Background(), port.LabelDocument{
		Image:   testPNG(t, 500, 280),
		Width:   500,
		Height:  280,
		Caption: domain.PDFCaption(true),
	})
	require.NoError(t, err)

	s := string(out)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Contains(t, s, "0 0 500.00 280.00")
	assert.Contains(t, s, "(This EAN-13 code is VALID.) Tj")
	assert.Contains(t, s, "10.00 15.00 Td")
	assert.Contains(t, s, "/Helvetica")
	assert.Contains(t, s, "/Subtype /Image")
}

func TestWriter_RenderInvalidCaption(t *testing.T) {
	w := &Writer{compress: false}

	out, err := w.Render(context.Background(), port.LabelDocument{
		Image:   testPNG(t, 120, 60),
		Width:   120,
		Height:  60,
		Caption: domain.PDFCaption(false),
	})
	require.NoError(t, err)
	assert.Contains(t, string(out), "(This EAN-13 code is INVALID.) Tj")
}

func TestWriter_RenderCompressed(t *testing.T) {
	out, err := NewWriter().Render(context.Background(), port.LabelDocument{
		Image:   testPNG(t, 50, 20),
		Width:   50,
		Height:  20,
		Caption: "x",
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestWriter_RenderWithoutImage(t *testing.T) {
	_, err := NewWriter().Render(context.Background(), port.LabelDocument{Caption: "x"})
	assert.ErrorIs(t, err, domain.ErrArtifactNotFound)
}

func TestWriter_RenderZeroSize(t *testing.T) {
	_, err := NewWriter().Render(context.Background(), port.LabelDocument{
		Image: []byte("garbage"),
	})
	assert.Error(t, err)
}

func TestWriter_RenderCorruptImage(t *testing.T) {
	_, err := NewWriter().Render(context.Background(), port.LabelDocument{
		Image:  []byte("definitely not a png"),
		Width:  100,
		Height: 50,
	})
	assert.Error(t, err)
}
