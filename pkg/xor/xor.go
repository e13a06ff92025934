// Package xor combines byte buffers with XOR. Every function returns a new
// buffer and leaves its inputs untouched.
package xor

import (
	"fmt"

	cerrors "github.com/provide-io/xorcrack/pkg/errors"
)

// Fixed returns a[i] ^ b[i] for two buffers of the same length.
func Fixed(a, b []byte) ([]byte, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d != %d", cerrors.ErrLengthMismatch, len(a), len(b))
	}
	result := make([]byte, len(a))
	for i := range a {
		result[i] = a[i] ^ b[i]
	}
	return result, nil
}

// Repeating XORs data against key, cycling the key as needed.
func Repeating(data, key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, cerrors.ErrEmptyKey
	}
	result := make([]byte, len(data))
	for i := range data {
		result[i] = data[i] ^ key[i%len(key)]
	}
	return result, nil
}

// SingleByte XORs every byte of data with k.
func SingleByte(data []byte, k byte) []byte {
	result := make([]byte, len(data))
	for i := range data {
		result[i] = data[i] ^ k
	}
	return result
}

// Encode encrypts data with a repeating key.
func Encode(data, key []byte) ([]byte, error) {
	return Repeating(data, key)
}

// Decode decrypts data with a repeating key (XOR is symmetric)
func Decode(data, key []byte) ([]byte, error) {
	return Repeating(data, key)
}
