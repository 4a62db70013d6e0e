package shell_test

import (
	"bytes"
	"context"
	"image"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eanlabel/internal/domain"
	"eanlabel/internal/shell"
	"eanlabel/mocks"
)

func setupShell() (*shell.Shell, *mocks.MockBarcodeService, *bytes.Buffer) {
	svc := new(mocks.MockBarcodeService)
	out := new(bytes.Buffer)
	sh := shell.New(svc, shell.NewUI(out, true), 40, zerolog.Nop())
	return sh, svc, out
}

func rejection(raw string, reason error) *domain.Rejection {
	return &domain.Rejection{Input: raw, Reason: reason}
}

func TestShell_Run_GenerateValidAndExit(t *testing.T) {
	sh, svc, out := setupShell()

	svc.On("GenerateAndValidate", mock.Anything, "4006381333931").Return(&domain.GenerateResult{
		Status:  domain.ValidationStatusValid,
		Code:    "4006381333931",
		Display: image.NewGray(image.Rect(0, 0, 250, 140)),
	}, nil)
	svc.On("Shutdown", mock.Anything).Return(nil)

	err := sh.Run(context.Background(), strings.NewReader("4006381333931\nexit\nnever-read\n"))

	require.NoError(t, err)
	assert.Contains(t, out.String(), "✓ Valid EAN-13 Code")
	svc.AssertExpectations(t)
	svc.AssertNumberOfCalls(t, "GenerateAndValidate", 1)
}

func TestShell_Run_InvalidShowsCheckDigitHint(t *testing.T) {
	sh, svc, out := setupShell()

	svc.On("GenerateAndValidate", mock.Anything, "4006381333932").Return(&domain.GenerateResult{
		Status: domain.ValidationStatusInvalid,
		Code:   "4006381333932",
	}, nil)
	svc.On("Shutdown", mock.Anything).Return(nil)

	require.NoError(t, sh.Run(context.Background(), strings.NewReader("4006381333932\n")))

	assert.Contains(t, out.String(), "✗ Invalid EAN-13 Code")
	assert.Contains(t, out.String(), "A check digit of 1 would make 400638133393 valid")
}

func TestShell_Run_RejectedInputsShareAdvisory(t *testing.T) {
	sh, svc, out := setupShell()

	for _, raw := range []string{"", "123456789012", "12345678901234"} {
		svc.On("GenerateAndValidate", mock.Anything, raw).Return(&domain.GenerateResult{
			Status:    domain.ValidationStatusRejected,
			Rejection: rejection(raw, domain.ErrCodeLength),
		}, nil)
	}
	svc.On("Shutdown", mock.Anything).Return(nil)

	require.NoError(t, sh.Run(context.Background(), strings.NewReader("\n123456789012\n12345678901234\n")))

	assert.Equal(t, 3, strings.Count(out.String(), "⚠ Please enter an EAN-13 code"))
}

func TestShell_Run_PDFUsesLastInput(t *testing.T) {
	sh, svc, out := setupShell()

	svc.On("GenerateAndValidate", mock.Anything, "0000000000000").Return(&domain.GenerateResult{
		Status: domain.ValidationStatusValid,
		Code:   "0000000000000",
	}, nil)
	svc.On("ExportPDF", mock.Anything, "0000000000000").Return(&domain.ExportResult{
		Status: domain.ValidationStatusValid,
		Code:   "0000000000000",
		Path:   "0000000000000_barcode.pdf",
	}, nil)
	svc.On("Shutdown", mock.Anything).Return(nil)

	require.NoError(t, sh.Run(context.Background(), strings.NewReader("generate 0000000000000\npdf\nquit\n")))

	assert.Contains(t, out.String(), "✓ Saved 0000000000000_barcode.pdf")
	svc.AssertExpectations(t)
}

func TestShell_Run_PDFFailureIsQuiet(t *testing.T) {
	sh, svc, out := setupShell()

	svc.On("ExportPDF", mock.Anything, "0000000000000").Return(&domain.ExportResult{
		Status: domain.ValidationStatusValid,
		Code:   "0000000000000",
		Err:    domain.ErrExportFailed,
	}, nil)
	svc.On("Shutdown", mock.Anything).Return(nil)

	require.NoError(t, sh.Run(context.Background(), strings.NewReader("pdf 0000000000000\n")))

	assert.NotContains(t, out.String(), "Saved")
	assert.NotContains(t, out.String(), "✗")
}

func TestShell_Run_Validate(t *testing.T) {
	sh, svc, out := setupShell()

	svc.On("Validate", "4006381333931").Return(domain.ValidationStatusValid, nil)
	svc.On("Shutdown", mock.Anything).Return(nil)

	require.NoError(t, sh.Run(context.Background(), strings.NewReader("validate 4006381333931\n")))

	assert.Contains(t, out.String(), "✓ Valid EAN-13 Code")
	svc.AssertNotCalled(t, "GenerateAndValidate", mock.Anything, mock.Anything)
}

func TestShell_Run_CleansUpOnCancel(t *testing.T) {
	sh, svc, _ := setupShell()
	svc.On("Shutdown", mock.Anything).Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A reader that never delivers a line.
	blocked, feed := io.Pipe()
	require.NoError(t, sh.Run(ctx, blocked))
	svc.AssertCalled(t, "Shutdown", mock.Anything)

	// The input is closed on the way out, so the pending read has returned.
	_, err := feed.Write([]byte("4006381333931\n"))
	assert.ErrorIs(t, err, io.ErrClosedPipe)
}

func TestShell_Run_Help(t *testing.T) {
	sh, svc, out := setupShell()
	svc.On("Shutdown", mock.Anything).Return(nil)

	require.NoError(t, sh.Run(context.Background(), strings.NewReader("help\n")))
	assert.Contains(t, out.String(), "pdf [code]")
}
