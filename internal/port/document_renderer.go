package port

import "context"

// LabelDocument is the content of a single exported barcode label.
type LabelDocument struct {
	// Image is the encoded barcode image. It may be empty when no artifact
	// was found, in which case rendering fails.
	Image []byte
	// Width and Height are the page size in points, equal to the image's
	// native pixel size.
	Width   float64
	Height  float64
	Caption string
}

// DocumentRenderer renders a label to PDF bytes.
type DocumentRenderer interface {
	Render(ctx context.Context, doc LabelDocument) ([]byte, error)
}
