// Package shell is the terminal front end: it reads codes, drives the
// barcode workflow and prints what comes back.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"eanlabel/internal/domain"
	"eanlabel/internal/logging"
	"eanlabel/internal/service"
	"eanlabel/internal/validator"
)

const prompt = "EAN-13 > "

const helpText = `Commands:
  <code>             generate the barcode for a 13-digit code and validate it
  generate <code>    same as above
  validate <code>    check the code without rendering
  pdf [code]         save <code>_barcode.pdf (defaults to the last code entered)
  help               show this help
  exit | quit        remove generated images and leave`

// Shell runs the interactive session.
type Shell struct {
	svc            service.BarcodeService
	ui             *UI
	log            zerolog.Logger
	previewColumns int

	// lastInput plays the role of the input field: pdf without an argument
	// exports whatever was entered last.
	lastInput string
}

// New creates a Shell.
func New(svc service.BarcodeService, ui *UI, previewColumns int, logger zerolog.Logger) *Shell {
	return &Shell{
		svc:            svc,
		ui:             ui,
		log:            logging.Component(logger, "shell"),
		previewColumns: previewColumns,
	}
}

// Run reads commands from in until exit, EOF or ctx cancellation, then
// removes the artifact directory.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	readCtx, stopReading := context.WithCancel(ctx)
	defer stopReading()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-readCtx.Done():
				return
			}
		}
		readErr <- scanner.Err()
		close(lines)
	}()

	s.ui.Info("EAN-13 Validator & Label Generator. Type 'help' for commands.")

	var runErr error
loop:
	for {
		s.ui.Prompt(prompt)
		select {
		case <-ctx.Done():
			s.ui.Plain("")
			break loop
		case line, ok := <-lines:
			if !ok {
				runErr = <-readErr
				s.ui.Plain("")
				break loop
			}
			if !s.dispatch(ctx, line) {
				break loop
			}
		}
	}

	// Scan may still be blocked on in; closing it releases the reader goroutine.
	if c, ok := in.(io.Closer); ok {
		_ = c.Close()
	}

	if err := s.svc.Shutdown(context.WithoutCancel(ctx)); err != nil {
		s.log.Error().Err(err).Msg("shell.Run: cleanup failed")
	}
	if runErr != nil {
		return fmt.Errorf("reading input: %w", runErr)
	}
	return nil
}

// dispatch handles one input line and reports whether the session continues.
func (s *Shell) dispatch(ctx context.Context, line string) bool {
	trimmed := strings.TrimSpace(line)
	cmd, arg, _ := strings.Cut(trimmed, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(cmd) {
	case "exit", "quit":
		return false
	case "help", "?":
		s.ui.Plain(helpText)
	case "generate":
		s.Generate(ctx, arg)
	case "validate":
		s.Validate(arg)
	case "pdf":
		if arg == "" {
			arg = s.lastInput
		}
		s.ExportPDF(ctx, arg)
	default:
		s.Generate(ctx, trimmed)
	}
	return true
}

// Generate renders and validates raw, printing the status line and preview.
func (s *Shell) Generate(ctx context.Context, raw string) {
	s.lastInput = raw

	result, err := s.svc.GenerateAndValidate(ctx, raw)
	if err != nil {
		s.log.Debug().Err(err).Msg("shell.Generate: aborted")
		return
	}
	s.printStatus(result.Status, result.Code)
	if result.Display != nil {
		s.ui.Plain(Preview(result.Display, s.previewColumns))
	}
}

// Validate prints the checksum status of raw without rendering.
func (s *Shell) Validate(raw string) {
	s.lastInput = raw
	status, rej := s.svc.Validate(raw)
	var code domain.Code
	if rej == nil {
		code = domain.Code(raw)
	}
	s.printStatus(status, code)
}

// ExportPDF writes the label PDF for raw. Only a rejection or a success is
// reported; failures are logged by the service.
func (s *Shell) ExportPDF(ctx context.Context, raw string) {
	result, err := s.svc.ExportPDF(ctx, raw)
	if err != nil {
		s.log.Debug().Err(err).Msg("shell.ExportPDF: aborted")
		return
	}
	if result.Rejection != nil {
		s.ui.Warning("%s", result.Rejection.Advisory())
		return
	}
	if result.Written() {
		s.ui.Success("Saved %s", result.Path)
	}
}

func (s *Shell) printStatus(status domain.ValidationStatus, code domain.Code) {
	switch status {
	case domain.ValidationStatusValid:
		s.ui.Success("%s", status.Message())
	case domain.ValidationStatusInvalid:
		s.ui.Error("%s", status.Message())
		if d, err := validator.CheckDigit(code.String()[:domain.CodeLength-1]); err == nil {
			s.ui.Info("A check digit of %d would make %s valid", d, code.String()[:domain.CodeLength-1])
		}
	default:
		s.ui.Warning("%s", status.Message())
	}
}
