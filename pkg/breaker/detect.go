package breaker

import (
	"fmt"

	cerrors "github.com/provide-io/xorcrack/pkg/errors"
)

// Detect breaks each ciphertext as single-byte XOR and returns the index and
// candidate with the lowest score. Ciphertexts that fail to break are
// skipped; on equal scores the earlier index wins.
func (b *Breaker) Detect(ciphertexts [][]byte) (int, Candidate, error) {
	bestIndex := -1
	var best Candidate

	for i, ct := range ciphertexts {
		c, err := b.SingleByte(ct)
		if err != nil {
			continue
		}
		if bestIndex < 0 || c.Score < best.Score {
			bestIndex = i
			best = c
		}
	}

	if bestIndex < 0 {
		return -1, Candidate{}, fmt.Errorf("%w: none of %d ciphertexts is single-byte XOR",
			cerrors.ErrBreakFailed, len(ciphertexts))
	}

	b.logger.Debug("detected single-byte XOR line",
		"index", bestIndex,
		"key", fmt.Sprintf("0x%02x", best.Key),
		"score", best.Score,
	)
	return bestIndex, best, nil
}
