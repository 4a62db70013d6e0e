package domain

import "image"

// BarcodeArtifact is a generated barcode image stored in the artifact
// directory. It is overwritten by the next generation for the same code and
// removed when the application shuts down.
type BarcodeArtifact struct {
	Code   Code
	Path   string
	Width  int
	Height int
}

// GenerateResult is what the generate-and-validate workflow hands back to
// the presentation shell.
type GenerateResult struct {
	Status    ValidationStatus
	Code      Code
	Rejection *Rejection

	// Artifact and Display are nil when rendering failed.
	Artifact *BarcodeArtifact
	Display  image.Image

	// RenderErr is the soft rendering failure, if any.
	RenderErr error
}

// ExportResult describes a PDF export attempt.
type ExportResult struct {
	Status    ValidationStatus
	Code      Code
	Rejection *Rejection

	// Path is set only when the document was written.
	Path    string
	Caption string
	Width   int
	Height  int

	// Err is the soft export failure, if any.
	Err error
}

// Written reports whether a PDF file was produced.
func (r *ExportResult) Written() bool {
	return r != nil && r.Path != "" && r.Err == nil
}
