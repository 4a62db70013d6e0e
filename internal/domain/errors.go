package domain

import "errors"

var (
	ErrEmptyCode        = errors.New("code is empty")
	ErrCodeLength       = errors.New("code must be exactly 13 characters")
	ErrNonDigitCode     = errors.New("code must contain only digits 0-9")
	ErrRenderFailed     = errors.New("barcode rendering failed")
	ErrArtifactNotFound = errors.New("barcode artifact not found")
	ErrExportFailed     = errors.New("pdf export failed")
)
