// Package pdfexport renders barcode labels as single-page PDF documents.
package pdfexport

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"

	"eanlabel/internal/domain"
	"eanlabel/internal/port"
)

const (
	captionFont = "Helvetica"
	captionSize = 10
	// Caption baseline offset from the bottom-left corner, in points.
	captionX = 10
	captionY = 15

	barcodeImage = "barcode"
)

// Writer renders label documents with fpdf.
type Writer struct {
	compress bool
}

var _ port.DocumentRenderer = (*Writer)(nil)

// NewWriter creates a Writer producing compressed PDF streams.
func NewWriter() *Writer {
	return &Writer{compress: true}
}

// Render builds a page sized exactly to doc.Width x doc.Height points, draws
// the barcode image over the whole page and the caption near the bottom-left
// corner, and returns the finished document.
func (w *Writer) Render(ctx context.Context, doc port.LabelDocument) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(doc.Image) == 0 {
		return nil, fmt.Errorf("drawing barcode: %w", domain.ErrArtifactNotFound)
	}
	if doc.Width <= 0 || doc.Height <= 0 {
		return nil, fmt.Errorf("degenerate page size %.0fx%.0f", doc.Width, doc.Height)
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: doc.Width, Ht: doc.Height},
	})
	pdf.SetCompression(w.compress)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(barcodeImage, opts, bytes.NewReader(doc.Image))
	pdf.ImageOptions(barcodeImage, 0, 0, doc.Width, doc.Height, false, opts, 0, "")

	pdf.SetFont(captionFont, "", captionSize)
	// fpdf measures y from the top edge.
	pdf.Text(captionX, doc.Height-captionY, doc.Caption)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering pdf: %w", err)
	}
	return buf.Bytes(), nil
}
