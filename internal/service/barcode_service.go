package service

import (
	"context"
	"fmt"
	"image"

	"github.com/rs/zerolog"

	"eanlabel/internal/config"
	"eanlabel/internal/domain"
	"eanlabel/internal/imaging"
	"eanlabel/internal/logging"
	"eanlabel/internal/port"
	"eanlabel/internal/validator"
)

// Session is the state left behind by the most recent generation. Only one
// display image is retained at a time.
type Session struct {
	LastCode  domain.Code
	LastImage image.Image
}

// BarcodeService defines the generate, validate and export workflow.
type BarcodeService interface {
	// GenerateAndValidate renders the barcode for raw and checks its
	// checksum. Rendering failures are reported in the result, not as error.
	GenerateAndValidate(ctx context.Context, raw string) (*domain.GenerateResult, error)
	// Validate checks raw without rendering anything.
	Validate(raw string) (domain.ValidationStatus, *domain.Rejection)
	// ExportPDF writes <code>_barcode.pdf from the stored artifact. Export
	// failures are reported in the result, not as error.
	ExportPDF(ctx context.Context, raw string) (*domain.ExportResult, error)
	// Session returns the state of the most recent generation.
	Session() Session
	// Shutdown removes the artifact directory and drops the session.
	Shutdown(ctx context.Context) error
}

type barcodeService struct {
	renderer     port.BarcodeRenderer
	store        port.ArtifactStore
	pdf          port.DocumentRenderer
	sink         port.ExportSink
	displayWidth int
	log          zerolog.Logger

	session Session
}

// NewBarcodeService creates a new BarcodeService implementation.
func NewBarcodeService(
	renderer port.BarcodeRenderer,
	store port.ArtifactStore,
	pdf port.DocumentRenderer,
	sink port.ExportSink,
	cfg *config.DisplayConfig,
	logger zerolog.Logger,
) BarcodeService {
	return &barcodeService{
		renderer:     renderer,
		store:        store,
		pdf:          pdf,
		sink:         sink,
		displayWidth: cfg.Width,
		log:          logging.Component(logger, "barcodeService"),
	}
}

func (s *barcodeService) GenerateAndValidate(ctx context.Context, raw string) (*domain.GenerateResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	code, rej := domain.ParseCode(raw)
	if rej != nil {
		s.log.Debug().Str("input", raw).Err(rej.Reason).Msg("barcodeService.GenerateAndValidate: input rejected")
		return &domain.GenerateResult{Status: domain.ValidationStatusRejected, Rejection: rej}, nil
	}

	result := &domain.GenerateResult{Code: code}

	// Rendering does not depend on the checksum outcome.
	artifact, display, err := s.generate(ctx, code)
	if err != nil {
		result.RenderErr = err
	} else {
		result.Artifact = artifact
		result.Display = display
	}
	s.session = Session{LastCode: code, LastImage: display}

	result.Status = domain.StatusFromChecksum(validator.ValidateEAN13(code.String()))
	s.log.Info().
		Str("code", code.String()).
		Str("status", string(result.Status)).
		Bool("rendered", err == nil).
		Msg("barcodeService.GenerateAndValidate: done")
	return result, nil
}

// generate renders code into the artifact directory and returns the stored
// artifact together with its display-sized copy.
func (s *barcodeService) generate(ctx context.Context, code domain.Code) (*domain.BarcodeArtifact, image.Image, error) {
	if err := s.store.Ensure(ctx); err != nil {
		s.log.Error().Err(err).Msg("barcodeService.generate: artifact dir unavailable")
		return nil, nil, fmt.Errorf("%w: %w", domain.ErrRenderFailed, err)
	}

	encoded, err := s.renderer.Render(ctx, code)
	if err != nil {
		s.log.Error().Err(err).Str("code", code.String()).Msg("barcodeService.generate: error generating barcode")
		return nil, nil, fmt.Errorf("%w: %w", domain.ErrRenderFailed, err)
	}

	path, err := s.store.Write(ctx, code, encoded)
	if err != nil {
		s.log.Error().Err(err).Str("code", code.String()).Msg("barcodeService.generate: error saving barcode")
		return nil, nil, fmt.Errorf("%w: %w", domain.ErrRenderFailed, err)
	}

	// Reload from disk so the display reflects exactly what export will use.
	stored, err := s.store.Read(ctx, code)
	if err != nil {
		s.log.Error().Err(err).Str("path", path).Msg("barcodeService.generate: error displaying barcode image")
		return nil, nil, fmt.Errorf("%w: %w", domain.ErrRenderFailed, err)
	}
	img, err := imaging.Decode(stored)
	if err != nil {
		s.log.Error().Err(err).Str("path", path).Msg("barcodeService.generate: error displaying barcode image")
		return nil, nil, fmt.Errorf("%w: %w", domain.ErrRenderFailed, err)
	}
	display, err := imaging.ResizeToWidth(img, s.displayWidth)
	if err != nil {
		s.log.Error().Err(err).Str("path", path).Msg("barcodeService.generate: error resizing barcode image")
		return nil, nil, fmt.Errorf("%w: %w", domain.ErrRenderFailed, err)
	}

	b := img.Bounds()
	artifact := &domain.BarcodeArtifact{
		Code:   code,
		Path:   path,
		Width:  b.Dx(),
		Height: b.Dy(),
	}
	s.log.Debug().
		Str("path", path).
		Int("width", artifact.Width).
		Int("height", artifact.Height).
		Msg("barcodeService.generate: artifact written")
	return artifact, display, nil
}

func (s *barcodeService) Validate(raw string) (domain.ValidationStatus, *domain.Rejection) {
	code, rej := domain.ParseCode(raw)
	if rej != nil {
		return domain.ValidationStatusRejected, rej
	}
	return domain.StatusFromChecksum(validator.ValidateEAN13(code.String())), nil
}

func (s *barcodeService) ExportPDF(ctx context.Context, raw string) (*domain.ExportResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	code, rej := domain.ParseCode(raw)
	if rej != nil {
		s.log.Debug().Str("input", raw).Err(rej.Reason).Msg("barcodeService.ExportPDF: input rejected")
		return &domain.ExportResult{Status: domain.ValidationStatusRejected, Rejection: rej}, nil
	}

	encoded, width, height := s.storedImage(ctx, code)

	valid := validator.ValidateEAN13(code.String())
	result := &domain.ExportResult{
		Status:  domain.StatusFromChecksum(valid),
		Code:    code,
		Caption: domain.PDFCaption(valid),
		Width:   width,
		Height:  height,
	}

	doc, err := s.pdf.Render(ctx, port.LabelDocument{
		Image:   encoded,
		Width:   float64(width),
		Height:  float64(height),
		Caption: result.Caption,
	})
	if err != nil {
		s.log.Error().Err(err).Str("code", code.String()).Msg("barcodeService.ExportPDF: error saving barcode as PDF")
		result.Err = fmt.Errorf("%w: %w", domain.ErrExportFailed, err)
		return result, nil
	}

	path, err := s.sink.Save(ctx, code.ExportFilename(), doc)
	if err != nil {
		s.log.Error().Err(err).Str("code", code.String()).Msg("barcodeService.ExportPDF: error saving barcode as PDF")
		result.Err = fmt.Errorf("%w: %w", domain.ErrExportFailed, err)
		return result, nil
	}

	result.Path = path
	s.log.Info().Str("code", code.String()).Str("path", path).Msg("barcodeService.ExportPDF: exported")
	return result, nil
}

// storedImage returns the stored artifact for code and its pixel size. A
// missing or unreadable artifact yields nil data and (0, 0).
func (s *barcodeService) storedImage(ctx context.Context, code domain.Code) ([]byte, int, int) {
	encoded, err := s.store.Read(ctx, code)
	if err != nil {
		s.log.Warn().Err(err).Str("path", s.store.Path(code)).Msg("barcodeService.ExportPDF: barcode image not found")
		return nil, 0, 0
	}
	width, height, err := imaging.Size(encoded)
	if err != nil {
		s.log.Warn().Err(err).Str("path", s.store.Path(code)).Msg("barcodeService.ExportPDF: error getting barcode image size")
		return encoded, 0, 0
	}
	return encoded, width, height
}

func (s *barcodeService) Session() Session {
	return s.session
}

func (s *barcodeService) Shutdown(ctx context.Context) error {
	s.session = Session{}
	if err := s.store.RemoveAll(ctx); err != nil {
		s.log.Error().Err(err).Msg("barcodeService.Shutdown: error removing artifacts")
		return err
	}
	s.log.Debug().Msg("barcodeService.Shutdown: artifacts removed")
	return nil
}
