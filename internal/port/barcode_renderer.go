package port

import (
	"context"

	"eanlabel/internal/domain"
)

// BarcodeRenderer turns a code into an encoded (PNG) linear barcode image.
type BarcodeRenderer interface {
	Render(ctx context.Context, code domain.Code) ([]byte, error)
}
