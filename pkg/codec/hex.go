// Package codec converts between raw bytes and their hex and base64 text forms.
package codec

import (
	"encoding/hex"
	"fmt"

	cerrors "github.com/provide-io/xorcrack/pkg/errors"
)

// DecodeHex decodes an even-length string of hex digits. Both cases are accepted.
func DecodeHex(text string) ([]byte, error) {
	if len(text)%2 != 0 {
		return nil, fmt.Errorf("%w: odd hex length %d", cerrors.ErrInvalidEncoding, len(text))
	}
	out, err := hex.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cerrors.ErrInvalidEncoding, err)
	}
	return out, nil
}

// EncodeHex returns the lowercase hex form of data.
func EncodeHex(data []byte) string {
	return hex.EncodeToString(data)
}

// HexToBase64 re-encodes a hex string as base64.
func HexToBase64(text string) (string, error) {
	data, err := DecodeHex(text)
	if err != nil {
		return "", err
	}
	return EncodeBase64(data), nil
}
