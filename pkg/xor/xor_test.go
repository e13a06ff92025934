package xor

import (
	"encoding/hex"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	cerrors "github.com/provide-io/xorcrack/pkg/errors"
)

const (
	icePlaintext = "Burning 'em, if you ain't quick and nimble\nI go crazy when I hear a cymbal"
	iceHex       = "0b3637272a2b2e63622c2e69692a23693a2a3c6324202d623d63343c2a26226324272765272a282b2f20430a652e2c652a3124333a653e2b2027630c692b20283165286326302e27282f"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestFixed(t *testing.T) {
	got, err := Fixed(
		mustHex(t, "1c0111001f010100061a024b53535009181c"),
		mustHex(t, "686974207468652062756c6c277320657965"),
	)
	require.NoError(t, err)
	require.Equal(t, "746865206b696420646f6e277420706c6179", hex.EncodeToString(got))
}

func TestFixedLengthMismatch(t *testing.T) {
	got, err := Fixed([]byte{1, 2, 3}, []byte{1, 2})
	require.ErrorIs(t, err, cerrors.ErrLengthMismatch)
	require.Nil(t, got)
}

func TestRepeatingKnownVector(t *testing.T) {
	key := []byte("ICE")

	cipherText, err := Encode([]byte(icePlaintext), key)
	require.NoError(t, err)
	require.Equal(t, iceHex, hex.EncodeToString(cipherText))

	plainText, err := Decode(mustHex(t, iceHex), key)
	require.NoError(t, err)
	require.Equal(t, icePlaintext, string(plainText))
}

func TestRepeatingSelfInverse(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		data := make([]byte, r.Intn(128))
		key := make([]byte, 1+r.Intn(16))
		r.Read(data)
		r.Read(key)

		once, err := Repeating(data, key)
		require.NoError(t, err)
		twice, err := Repeating(once, key)
		require.NoError(t, err)
		require.Equal(t, data, twice)
	}
}

func TestRepeatingEmptyKey(t *testing.T) {
	_, err := Repeating([]byte("data"), nil)
	require.ErrorIs(t, err, cerrors.ErrEmptyKey)
}

func TestRepeatingDoesNotMutate(t *testing.T) {
	data := []byte("hello")
	_, err := Repeating(data, []byte{0xff})
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), data)
}

func TestSingleByte(t *testing.T) {
	require.Equal(t, []byte{12 ^ 90, 34 ^ 90, 56 ^ 90}, SingleByte([]byte{12, 34, 56}, 90))
	require.Equal(t, []byte("hello world"), SingleByte([]byte("hello world"), 0))
	require.Empty(t, SingleByte(nil, 1))
}
