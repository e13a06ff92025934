// Package encoding registers the hex and base64 text operations.
package encoding

import (
	"strings"

	"github.com/provide-io/xorcrack/pkg/codec"
	"github.com/provide-io/xorcrack/pkg/operations"
)

func init() {
	operations.Register(NewHexOperation())
	operations.Register(NewBase64Operation())
}

// HexOperation converts between bytes and lowercase hex text
type HexOperation struct {
	operations.BaseOperation
}

// NewHexOperation creates a new HEX operation
func NewHexOperation() *HexOperation {
	return &HexOperation{
		BaseOperation: operations.BaseOperation{
			OpID:   operations.OP_HEX,
			OpName: "HEX",
		},
	}
}

// Apply encodes input as hex
func (o *HexOperation) Apply(input []byte) ([]byte, error) {
	return []byte(codec.EncodeHex(input)), nil
}

// Reverse decodes hex text, ignoring surrounding whitespace
func (o *HexOperation) Reverse(input []byte) ([]byte, error) {
	return codec.DecodeHex(strings.TrimSpace(string(input)))
}

// Base64Operation converts between bytes and standard base64 text
type Base64Operation struct {
	operations.BaseOperation
}

// NewBase64Operation creates a new BASE64 operation
func NewBase64Operation() *Base64Operation {
	return &Base64Operation{
		BaseOperation: operations.BaseOperation{
			OpID:   operations.OP_BASE64,
			OpName: "BASE64",
		},
	}
}

// Apply encodes input as base64
func (o *Base64Operation) Apply(input []byte) ([]byte, error) {
	return []byte(codec.EncodeBase64(input)), nil
}

// Reverse decodes base64 text; line breaks are allowed
func (o *Base64Operation) Reverse(input []byte) ([]byte, error) {
	return codec.DecodeBase64(string(input))
}
