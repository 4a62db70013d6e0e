package shell

import (
	"image"
	"image/color"
	"strings"
)

const (
	maxPreviewRows = 8
	darkCutover    = 128
)

// Preview renders img as block characters, columns wide. Terminal cells are
// roughly twice as tall as wide, so rows are halved.
func Preview(img image.Image, columns int) string {
	if img == nil || columns <= 0 {
		return ""
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return ""
	}
	if columns > b.Dx() {
		columns = b.Dx()
	}

	rows := b.Dy() * columns / b.Dx() / 2
	if rows < 1 {
		rows = 1
	}
	if rows > maxPreviewRows {
		rows = maxPreviewRows
	}

	var sb strings.Builder
	for r := 0; r < rows; r++ {
		y := b.Min.Y + (2*r+1)*b.Dy()/(2*rows)
		for c := 0; c < columns; c++ {
			x := b.Min.X + (2*c+1)*b.Dx()/(2*columns)
			if isDark(img.At(x, y)) {
				sb.WriteString("█")
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func isDark(c color.Color) bool {
	return color.GrayModel.Convert(c).(color.Gray).Y < darkCutover
}
