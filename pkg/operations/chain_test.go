package operations_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"

	cerrors "github.com/provide-io/xorcrack/pkg/errors"
	"github.com/provide-io/xorcrack/pkg/operations"
	_ "github.com/provide-io/xorcrack/pkg/operations/compress"
	_ "github.com/provide-io/xorcrack/pkg/operations/encoding"
)

// TestOperationPacking tests packing operations into 64-bit integers
func TestOperationPacking(t *testing.T) {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "operations_test",
		Level: hclog.Trace,
	})

	testCases := []struct {
		name       string
		operations []uint8
		expected   uint64
	}{
		{name: "empty/raw", operations: []uint8{}, expected: 0x0},
		{name: "single HEX", operations: []uint8{operations.OP_HEX}, expected: 0x01},
		{name: "GZIP + BASE64", operations: []uint8{operations.OP_GZIP, operations.OP_BASE64}, expected: 0x0210},
		{name: "BZIP2 + HEX", operations: []uint8{operations.OP_BZIP2, operations.OP_HEX}, expected: 0x0113},
		{name: "max 8 operations", operations: []uint8{1, 2, 3, 4, 5, 6, 7, 8}, expected: 0x0807060504030201},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			packed, err := operations.PackOperations(tc.operations)
			require.NoError(t, err)

			logger.Debug("📦 Packed operations",
				"input", tc.operations,
				"output", fmt.Sprintf("0x%016x", packed),
			)

			require.Equal(t, tc.expected, packed)
			if len(tc.operations) > 0 {
				require.Equal(t, tc.operations, operations.UnpackOperations(packed))
			}
		})
	}

	_, err := operations.PackOperations(make([]uint8, 9))
	require.Error(t, err)
}

func TestStringToOperations(t *testing.T) {
	testCases := []struct {
		in   string
		want []uint8
		name string
	}{
		{in: "", want: nil, name: "raw"},
		{in: "raw", want: nil, name: "raw"},
		{in: "hex", want: []uint8{operations.OP_HEX}, name: "hex"},
		{in: "B64", want: []uint8{operations.OP_BASE64}, name: "base64"},
		{in: "bzip2|base64", want: []uint8{operations.OP_BZIP2, operations.OP_BASE64}, name: "bz2.b64"},
		{in: " gz | b64 ", want: []uint8{operations.OP_GZIP, operations.OP_BASE64}, name: "gz.b64"},
		{in: "gzip|hex", want: []uint8{operations.OP_GZIP, operations.OP_HEX}, name: "gzip|hex"},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			packed, err := operations.StringToOperations(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, operations.UnpackOperations(packed))
			require.Equal(t, tc.name, operations.OperationsToString(packed))
		})
	}

	for _, bad := range []string{"rot13", "base64|rot13", "tar"} {
		_, err := operations.StringToOperations(bad)
		require.Error(t, err, bad)
	}
}

func TestChainRoundTrip(t *testing.T) {
	plaintext := []byte(strings.Repeat("burning 'em, if you ain't quick and nimble\n", 20))

	for _, chain := range []string{"hex", "base64", "gzip", "bzip2", "gz.b64", "bzip2|base64", "gzip|hex"} {
		t.Run(chain, func(t *testing.T) {
			ops, err := operations.ParseChain(chain)
			require.NoError(t, err)

			wrapped, err := operations.ApplyChain(plaintext, ops)
			require.NoError(t, err)
			require.NotEqual(t, plaintext, wrapped)

			unwrapped, err := operations.ReverseChain(wrapped, ops)
			require.NoError(t, err)
			require.Equal(t, plaintext, unwrapped)
		})
	}
}

func TestReverseChainDecodesText(t *testing.T) {
	got, err := operations.ReverseChain([]byte("SSdtIGtp\nbGxpbmcg\n"), []uint8{operations.OP_BASE64})
	require.NoError(t, err)
	require.Equal(t, "I'm killing ", string(got))

	got, err = operations.ReverseChain([]byte("4d61\n"), []uint8{operations.OP_HEX})
	require.NoError(t, err)
	require.Equal(t, "Ma", string(got))
}

func TestReverseChainErrors(t *testing.T) {
	_, err := operations.ReverseChain([]byte("T"), []uint8{operations.OP_BASE64})
	require.ErrorIs(t, err, cerrors.ErrInvalidEncoding)

	_, err = operations.ReverseChain([]byte("not gzip"), []uint8{operations.OP_GZIP})
	require.Error(t, err)

	_, err = operations.ReverseChain([]byte("not bzip2"), []uint8{operations.OP_BZIP2})
	require.Error(t, err)

	_, err = operations.ApplyChain([]byte("x"), []uint8{0x7f})
	require.ErrorContains(t, err, "unknown operation")
}

func TestGetName(t *testing.T) {
	require.Equal(t, "BZIP2", operations.GetName(operations.OP_BZIP2))
	require.Equal(t, "UNKNOWN_7f", operations.GetName(0x7f))

	op, err := operations.Get(operations.OP_GZIP)
	require.NoError(t, err)
	require.Equal(t, "GZIP", op.Name())
	require.True(t, op.CanReverse())
}
