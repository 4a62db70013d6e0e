package validator

import (
	"fmt"

	"eanlabel/internal/domain"
)

// ValidateEAN13 reports whether code passes the EAN-13 checksum.
//
// Over the first 12 digits, digits at even 0-based index sum into even and
// digits at odd index into odd. The code is valid iff
// (3*odd + even + check) % 10 == 0, where check is the 13th digit.
// Wrong length or any non-digit character yields false.
func ValidateEAN13(code string) bool {
	if len(code) != domain.CodeLength {
		return false
	}
	even, odd, ok := paritySums(code[:domain.CodeLength-1])
	if !ok {
		return false
	}
	check, ok := digit(code[domain.CodeLength-1])
	if !ok {
		return false
	}
	return (3*odd+even+check)%10 == 0
}

// CheckDigit returns the trailing digit that makes payload+digit pass
// ValidateEAN13. payload must be 12 digits.
func CheckDigit(payload string) (int, error) {
	if len(payload) != domain.CodeLength-1 {
		return 0, fmt.Errorf("payload must be %d digits, got %d: %w", domain.CodeLength-1, len(payload), domain.ErrCodeLength)
	}
	even, odd, ok := paritySums(payload)
	if !ok {
		return 0, domain.ErrNonDigitCode
	}
	return (10 - (3*odd+even)%10) % 10, nil
}

func paritySums(digits string) (even, odd int, ok bool) {
	for i := 0; i < len(digits); i++ {
		d, ok := digit(digits[i])
		if !ok {
			return 0, 0, false
		}
		if i%2 == 0 {
			even += d
		} else {
			odd += d
		}
	}
	return even, odd, true
}

func digit(b byte) (int, bool) {
	if b < '0' || b > '9' {
		return 0, false
	}
	return int(b - '0'), true
}
