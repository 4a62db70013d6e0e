package domain

import "fmt"

// CodeLength is the number of characters in an EAN-13 code.
const CodeLength = 13

// AdvisoryMessage is shown for every rejected input, whatever the reason.
const AdvisoryMessage = "Please enter an EAN-13 code"

// Code is a 13-character string of ASCII digits. Leading zeros are
// significant, so it is never converted to a number.
type Code string

// String returns the code as a plain string.
func (c Code) String() string { return string(c) }

// Rejection describes input that never reaches rendering or validation.
type Rejection struct {
	Input  string
	Reason error
}

// Advisory returns the fixed message surfaced to the user.
func (r *Rejection) Advisory() string { return AdvisoryMessage }

func (r *Rejection) Error() string {
	return fmt.Sprintf("rejected input %q: %v", r.Input, r.Reason)
}

func (r *Rejection) Unwrap() error { return r.Reason }

// ParseCode checks raw input and returns it as a Code. Empty input, a length
// other than 13, and non-digit characters are rejected.
func ParseCode(raw string) (Code, *Rejection) {
	if raw == "" {
		return "", &Rejection{Input: raw, Reason: ErrEmptyCode}
	}
	if len(raw) != CodeLength {
		return "", &Rejection{Input: raw, Reason: ErrCodeLength}
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return "", &Rejection{Input: raw, Reason: ErrNonDigitCode}
		}
	}
	return Code(raw), nil
}

// ExportFilename returns the name of the PDF exported for c.
func (c Code) ExportFilename() string {
	return string(c) + "_barcode.pdf"
}
