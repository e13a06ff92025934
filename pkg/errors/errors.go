// Package errors holds the sentinel errors shared by the xorcrack packages.
package errors

import "errors"

var (
	// Encoding errors 🔤
	ErrInvalidEncoding = errors.New("❌ invalid encoding")

	// XOR errors ⊕
	ErrLengthMismatch = errors.New("❌ buffer length mismatch")
	ErrEmptyKey       = errors.New("❌ empty key")

	// Cryptanalysis errors 🔓
	ErrBreakFailed = errors.New("❌ no plausible plaintext found")
)
