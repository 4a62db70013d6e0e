package domain

// ValidationStatus is the outcome of checking a candidate EAN-13 code.
type ValidationStatus string

const (
	ValidationStatusValid    ValidationStatus = "valid"
	ValidationStatusInvalid  ValidationStatus = "invalid"
	ValidationStatusRejected ValidationStatus = "rejected"
)

// StatusFromChecksum maps a checksum result to a ValidationStatus.
func StatusFromChecksum(ok bool) ValidationStatus {
	if ok {
		return ValidationStatusValid
	}
	return ValidationStatusInvalid
}

// Message returns the short status line shown next to the input field.
func (s ValidationStatus) Message() string {
	switch s {
	case ValidationStatusValid:
		return "Valid EAN-13 Code"
	case ValidationStatusInvalid:
		return "Invalid EAN-13 Code"
	default:
		return AdvisoryMessage
	}
}

// PDFCaption returns the one-line validity caption printed on exported labels.
func PDFCaption(valid bool) string {
	if valid {
		return "This EAN-13 code is VALID."
	}
	return "This EAN-13 code is INVALID."
}
