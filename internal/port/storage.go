package port

import (
	"context"

	"eanlabel/internal/domain"
)

// ArtifactStore abstracts the directory holding generated barcode images.
type ArtifactStore interface {
	// Ensure creates the artifact directory if it does not exist.
	Ensure(ctx context.Context) error
	// Path returns the deterministic location of the artifact for code.
	Path(code domain.Code) string
	// Write stores data as the artifact for code, replacing any previous one.
	Write(ctx context.Context, code domain.Code, data []byte) (string, error)
	// Read returns the stored artifact. A missing artifact yields an error
	// wrapping domain.ErrArtifactNotFound.
	Read(ctx context.Context, code domain.Code) ([]byte, error)
	// RemoveAll deletes the whole artifact directory. A missing directory is
	// not an error.
	RemoveAll(ctx context.Context) error
}

// ExportSink persists exported documents.
type ExportSink interface {
	// Save writes data under name and returns the resulting path. Nothing is
	// left behind when the write fails.
	Save(ctx context.Context, name string, data []byte) (string, error)
}
