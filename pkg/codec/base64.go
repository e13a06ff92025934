package codec

import (
	"fmt"
	"strings"
	"unicode"

	cerrors "github.com/provide-io/xorcrack/pkg/errors"
)

const (
	base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	base64Pad      = '='
)

// base64Value maps a character of the standard alphabet to its 6-bit value.
func base64Value(c byte) (byte, bool) {
	switch {
	case c >= 'A' && c <= 'Z':
		return c - 'A', true
	case c >= 'a' && c <= 'z':
		return c - 'a' + 26, true
	case c >= '0' && c <= '9':
		return c - '0' + 52, true
	case c == '+':
		return 62, true
	case c == '/':
		return 63, true
	default:
		return 0, false
	}
}

// EncodeBase64 encodes data with the standard alphabet and '=' padding.
func EncodeBase64(data []byte) string {
	var sb strings.Builder
	sb.Grow((len(data) + 2) / 3 * 4)

	i := 0
	for ; i+3 <= len(data); i += 3 {
		b0, b1, b2 := data[i], data[i+1], data[i+2]
		sb.WriteByte(base64Alphabet[b0>>2])
		sb.WriteByte(base64Alphabet[(b0&0x03)<<4|b1>>4])
		sb.WriteByte(base64Alphabet[(b1&0x0f)<<2|b2>>6])
		sb.WriteByte(base64Alphabet[b2&0x3f])
	}

	switch len(data) - i {
	case 2:
		b0, b1 := data[i], data[i+1]
		sb.WriteByte(base64Alphabet[b0>>2])
		sb.WriteByte(base64Alphabet[(b0&0x03)<<4|b1>>4])
		sb.WriteByte(base64Alphabet[(b1&0x0f)<<2])
		sb.WriteByte(base64Pad)
	case 1:
		b0 := data[i]
		sb.WriteByte(base64Alphabet[b0>>2])
		sb.WriteByte(base64Alphabet[(b0&0x03)<<4])
		sb.WriteByte(base64Pad)
		sb.WriteByte(base64Pad)
	}

	return sb.String()
}

// DecodeBase64 decodes standard base64 text. Whitespace anywhere in the input
// is ignored. Padding may only close the final group, and a trailing group
// without padding is accepted as long as it carries 2 or 3 characters.
func DecodeBase64(text string) ([]byte, error) {
	clean := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)

	out := make([]byte, 0, len(clean)/4*3+2)
	for start := 0; start < len(clean); start += 4 {
		end := start + 4
		if end > len(clean) {
			end = len(clean)
		}
		group := clean[start:end]

		var vals [4]byte
		n := 0
		padded := false
		for j := 0; j < len(group); j++ {
			c := group[j]
			if c == base64Pad {
				padded = true
				continue
			}
			if padded {
				return nil, fmt.Errorf("%w: data after padding at offset %d", cerrors.ErrInvalidEncoding, start+j)
			}
			v, ok := base64Value(c)
			if !ok {
				return nil, fmt.Errorf("%w: illegal base64 character %q at offset %d", cerrors.ErrInvalidEncoding, c, start+j)
			}
			vals[n] = v
			n++
		}

		if n < 2 {
			return nil, fmt.Errorf("%w: base64 group at offset %d has %d data characters", cerrors.ErrInvalidEncoding, start, n)
		}
		if (padded || n < 4) && end != len(clean) {
			return nil, fmt.Errorf("%w: short base64 group at offset %d is not the last", cerrors.ErrInvalidEncoding, start)
		}

		out = append(out, vals[0]<<2|vals[1]>>4)
		if n >= 3 {
			out = append(out, vals[1]<<4|vals[2]>>2)
		}
		if n == 4 {
			out = append(out, vals[2]<<6|vals[3])
		}
	}

	return out, nil
}
