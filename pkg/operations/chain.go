package operations

import (
	"fmt"
	"strings"
)

// MaxChainLength is the number of operations that fit in a packed chain.
const MaxChainLength = 8

// PackOperations packs a list of operations into a 64-bit integer.
// Each operation takes 8 bits, first operation in the LSB.
func PackOperations(operations []uint8) (uint64, error) {
	if len(operations) > MaxChainLength {
		return 0, fmt.Errorf("maximum %d operations allowed, got %d", MaxChainLength, len(operations))
	}

	var packed uint64
	for i, op := range operations {
		packed |= uint64(op) << (i * 8)
	}

	return packed, nil
}

// UnpackOperations unpacks a 64-bit integer into a list of operations.
func UnpackOperations(packed uint64) []uint8 {
	var operations []uint8

	for i := 0; i < MaxChainLength; i++ {
		op := uint8((packed >> (i * 8)) & 0xFF)
		if op == OP_NONE {
			break
		}
		operations = append(operations, op)
	}

	return operations
}

// OperationsToString converts packed operations to a human-readable string.
func OperationsToString(packed uint64) string {
	if packed == 0 {
		return "raw"
	}

	operations := UnpackOperations(packed)

	if name, ok := commonChains[operationsToChain(operations)]; ok {
		return name
	}

	var names []string
	for _, op := range operations {
		names = append(names, strings.ToLower(GetName(op)))
	}

	return strings.Join(names, "|")
}

// StringToOperations parses an operation string such as "base64" or
// "bzip2|base64" into packed operations. Operations are listed in the order
// they were applied to the data.
func StringToOperations(opString string) (uint64, error) {
	opString = strings.ToLower(strings.TrimSpace(opString))
	if opString == "" || opString == "raw" {
		return 0, nil
	}

	if ops, ok := namedChains[opString]; ok {
		return PackOperations(ops)
	}

	if !strings.Contains(opString, "|") {
		return 0, fmt.Errorf("unknown operation string: %s", opString)
	}

	var operations []uint8
	for _, part := range strings.Split(opString, "|") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		ops, ok := namedChains[part]
		if !ok {
			return 0, fmt.Errorf("unsupported operation: %s", part)
		}
		operations = append(operations, ops...)
	}
	return PackOperations(operations)
}

// ParseChain parses an operation string into an ordered list of operation IDs.
func ParseChain(opString string) ([]uint8, error) {
	packed, err := StringToOperations(opString)
	if err != nil {
		return nil, err
	}
	return UnpackOperations(packed), nil
}

// operationsToChain converts operations slice to string for map lookup
func operationsToChain(ops []uint8) string {
	parts := make([]string, len(ops))
	for i, op := range ops {
		parts[i] = fmt.Sprintf("%02x", op)
	}
	return strings.Join(parts, "-")
}

// Common operation chains
var commonChains = map[string]string{
	"01":    "hex",
	"02":    "base64",
	"10":    "gzip",
	"13":    "bzip2",
	"10-02": "gz.b64",
	"13-02": "bz2.b64",
}

// Named chains for parsing
var namedChains = map[string][]uint8{
	"raw": {},

	// Single operations
	"hex":    {OP_HEX},
	"base64": {OP_BASE64},
	"gzip":   {OP_GZIP},
	"bzip2":  {OP_BZIP2},

	// Alternative names
	"b64": {OP_BASE64},
	"gz":  {OP_GZIP},
	"bz2": {OP_BZIP2},

	// Compressed then base64 wrapped
	"gz.b64":  {OP_GZIP, OP_BASE64},
	"bz2.b64": {OP_BZIP2, OP_BASE64},
}

// ApplyChain applies a chain of operations to data in order
func ApplyChain(data []byte, operations []uint8) ([]byte, error) {
	current := data

	for _, opID := range operations {
		op, err := Get(opID)
		if err != nil {
			return nil, fmt.Errorf("operation 0x%02x: %w", opID, err)
		}

		result, err := op.Apply(current)
		if err != nil {
			return nil, fmt.Errorf("applying %s: %w", op.Name(), err)
		}

		current = result
	}

	return current, nil
}

// ReverseChain undoes a chain of operations on data, last operation first
func ReverseChain(data []byte, operations []uint8) ([]byte, error) {
	current := data

	for i := len(operations) - 1; i >= 0; i-- {
		opID := operations[i]
		op, err := Get(opID)
		if err != nil {
			return nil, fmt.Errorf("operation 0x%02x: %w", opID, err)
		}

		if !op.CanReverse() {
			return nil, fmt.Errorf("operation %s is not reversible", op.Name())
		}

		result, err := op.Reverse(current)
		if err != nil {
			return nil, fmt.Errorf("reversing %s: %w", op.Name(), err)
		}

		current = result
	}

	return current, nil
}
