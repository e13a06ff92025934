// Package pkg exposes the xorcrack entry points: decoding ciphertext text
// and breaking single-byte and repeating-key XOR.
package pkg

import (
	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/xorcrack/pkg/breaker"
	"github.com/provide-io/xorcrack/pkg/codec"
)

func DecodeHex(text string) ([]byte, error) {
	return codec.DecodeHex(text)
}

func DecodeBase64(text string) ([]byte, error) {
	return codec.DecodeBase64(text)
}

// BreakSingleByteXOR returns the recovered key byte and plaintext.
func BreakSingleByteXOR(ciphertext []byte) (byte, []byte, error) {
	c, err := breaker.BreakSingleByte(ciphertext)
	if err != nil {
		return 0, nil, err
	}
	return c.Key, c.Plaintext, nil
}

// BreakRepeatingKeyXOR returns the recovered repeating key.
func BreakRepeatingKeyXOR(ciphertext []byte) ([]byte, error) {
	return breaker.BreakRepeatingKey(ciphertext)
}

// BreakRepeatingKeyXORWithOptions breaks with custom options and a logger for diagnostics.
func BreakRepeatingKeyXORWithOptions(ciphertext []byte, opts breaker.Options, logger hclog.Logger) ([]byte, error) {
	return breaker.NewWithLogger(opts, logger).RepeatingKey(ciphertext)
}
