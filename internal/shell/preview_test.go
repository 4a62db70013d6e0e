package shell

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func stripes(w, h int) image.Image {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			if (x/10)%2 == 0 {
				img.SetGray(x, y, color.Gray{Y: 0})
			} else {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return img
}

func TestPreview(t *testing.T) {
	out := Preview(stripes(100, 20), 10)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Len(t, lines, 1)
	assert.Equal(t, "█ █ █ █ █ ", lines[0])
}

func TestPreview_RowCap(t *testing.T) {
	out := Preview(stripes(20, 1000), 20)
	assert.Equal(t, maxPreviewRows, strings.Count(out, "\n"))
}

func TestPreview_Empty(t *testing.T) {
	assert.Empty(t, Preview(nil, 80))
	assert.Empty(t, Preview(stripes(10, 10), 0))
}
