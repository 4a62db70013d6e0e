package shell

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// UI writes user-facing lines, coloured unless disabled.
type UI struct {
	out     io.Writer
	noColor bool
}

// NewUI creates a UI writing to out.
func NewUI(out io.Writer, noColor bool) *UI {
	return &UI{out: out, noColor: noColor}
}

func (ui *UI) printf(attrs []color.Attribute, format string, args ...interface{}) {
	c := color.New(attrs...)
	if ui.noColor {
		c.DisableColor()
	}
	_, _ = c.Fprintf(ui.out, format, args...)
}

// Success prints a success message.
func (ui *UI) Success(format string, args ...interface{}) {
	ui.printf([]color.Attribute{color.FgGreen}, "✓ %s\n", fmt.Sprintf(format, args...))
}

// Error prints an error message.
func (ui *UI) Error(format string, args ...interface{}) {
	ui.printf([]color.Attribute{color.FgRed}, "✗ %s\n", fmt.Sprintf(format, args...))
}

// Warning prints a warning message.
func (ui *UI) Warning(format string, args ...interface{}) {
	ui.printf([]color.Attribute{color.FgYellow}, "⚠ %s\n", fmt.Sprintf(format, args...))
}

// Info prints an informational message.
func (ui *UI) Info(format string, args ...interface{}) {
	ui.printf([]color.Attribute{color.FgCyan}, "ℹ %s\n", fmt.Sprintf(format, args...))
}

// Prompt prints the input prompt without a trailing newline.
func (ui *UI) Prompt(text string) {
	ui.printf([]color.Attribute{color.FgBlue, color.Bold}, "%s", text)
}

// Plain prints text as-is followed by a newline.
func (ui *UI) Plain(text string) {
	_, _ = fmt.Fprintln(ui.out, text)
}
