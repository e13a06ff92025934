// Package operations implements reversible byte transformations that can be
// chained to unwrap ciphertext before it is analysed (for example a
// base64-encoded, bzip2-compressed file) or to wrap results on output.
package operations

import (
	"fmt"
	"sync"
)

// Operation identifiers
const (
	// No operation - raw data
	OP_NONE = 0x00

	// Text encodings (0x01-0x0F)
	OP_HEX    = 0x01 // Lowercase hexadecimal
	OP_BASE64 = 0x02 // Standard base64 with padding

	// Compression operations (0x10-0x2F)
	OP_GZIP  = 0x10 // GZIP compression
	OP_BZIP2 = 0x13 // BZIP2 compression
)

// Operation represents a single reversible transformation
type Operation interface {
	// ID returns the operation identifier (e.g., OP_GZIP)
	ID() uint8

	// Name returns the human-readable name
	Name() string

	// Apply applies the operation to input data (encode, compress)
	Apply(input []byte) ([]byte, error)

	// Reverse undoes the operation (decode, decompress)
	Reverse(input []byte) ([]byte, error)

	// CanReverse returns true if the operation is reversible
	CanReverse() bool
}

// BaseOperation provides common functionality for operations
type BaseOperation struct {
	OpID   uint8
	OpName string
}

func (o *BaseOperation) ID() uint8 {
	return o.OpID
}

func (o *BaseOperation) Name() string {
	return o.OpName
}

func (o *BaseOperation) CanReverse() bool {
	return true
}

var (
	registry   = make(map[uint8]Operation)
	registryMu sync.RWMutex
)

// Register registers an operation implementation, replacing any previous
// implementation with the same ID.
func Register(op Operation) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[op.ID()] = op
}

// Get retrieves an operation by ID
func Get(id uint8) (Operation, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	op, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("unknown operation: 0x%02x", id)
	}
	return op, nil
}

// GetName returns the name of an operation by ID
func GetName(id uint8) string {
	switch id {
	case OP_NONE:
		return "NONE"
	case OP_HEX:
		return "HEX"
	case OP_BASE64:
		return "BASE64"
	case OP_GZIP:
		return "GZIP"
	case OP_BZIP2:
		return "BZIP2"
	default:
		return fmt.Sprintf("UNKNOWN_%02x", id)
	}
}
