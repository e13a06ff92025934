package breaker

import (
	"fmt"
	"math/bits"
	"sort"

	cerrors "github.com/provide-io/xorcrack/pkg/errors"
)

// HammingDistance counts the differing bits between two equal-length buffers.
func HammingDistance(a, b []byte) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d != %d", cerrors.ErrLengthMismatch, len(a), len(b))
	}
	var n int
	for i := range a {
		n += bits.OnesCount8(a[i] ^ b[i])
	}
	return n, nil
}

// normalizedDistance averages the per-byte bit distance between consecutive
// blocks of size k, using at most blocks blocks. Callers guarantee that at
// least two full blocks exist.
func normalizedDistance(ciphertext []byte, k, blocks int) float64 {
	n := len(ciphertext) / k
	if blocks < n {
		n = blocks
	}

	var total float64
	for i := 0; i < n-1; i++ {
		first := ciphertext[i*k : (i+1)*k]
		second := ciphertext[(i+1)*k : (i+2)*k]
		d, _ := HammingDistance(first, second)
		total += float64(d) / float64(k)
	}
	return total / float64(n-1)
}

// KeySizes scores every feasible key length and returns them ordered by
// ascending normalized distance, shorter lengths first on ties. A length is
// feasible when it fits twice into the ciphertext.
func (b *Breaker) KeySizes(ciphertext []byte) []KeySizeCandidate {
	maxSize := b.opts.MaxKeySize
	if half := len(ciphertext) / 2; half < maxSize {
		maxSize = half
	}
	if maxSize < 1 {
		return nil
	}

	candidates := make([]KeySizeCandidate, 0, maxSize)
	for k := 1; k <= maxSize; k++ {
		candidates = append(candidates, KeySizeCandidate{
			Size:     k,
			Distance: normalizedDistance(ciphertext, k, b.opts.SampleBlocks),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Distance < candidates[j].Distance
	})
	return candidates
}

// EstimateKeySize returns the single most likely repeating key length.
func (b *Breaker) EstimateKeySize(ciphertext []byte) (int, error) {
	candidates := b.KeySizes(ciphertext)
	if len(candidates) == 0 {
		return 0, fmt.Errorf("%w: ciphertext of %d bytes is too short to estimate a key size",
			cerrors.ErrBreakFailed, len(ciphertext))
	}

	best := candidates[0]
	b.logger.Debug("estimated key size",
		"size", best.Size,
		"distance", best.Distance,
		"considered", len(candidates),
		"sample_blocks", b.opts.SampleBlocks,
	)
	return best.Size, nil
}
