package breaker

import (
	"fmt"
	"sort"

	"github.com/provide-io/xorcrack/pkg/english"
	cerrors "github.com/provide-io/xorcrack/pkg/errors"
	"github.com/provide-io/xorcrack/pkg/xor"
)

// Rank decrypts ciphertext with every byte key and returns the candidates
// ordered by ascending fitting quotient. Equal scores keep key order.
func (b *Breaker) Rank(ciphertext []byte) []Candidate {
	candidates := make([]Candidate, KeySpace)
	for k := 0; k < KeySpace; k++ {
		plain := xor.SingleByte(ciphertext, byte(k))
		candidates[k] = Candidate{
			Key:       byte(k),
			Plaintext: plain,
			Score:     english.FittingQuotient(plain),
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score < candidates[j].Score
	})
	return candidates
}

// SingleByte returns the best-scoring key among the top candidates whose
// plaintext is almost entirely letters and spaces.
func (b *Breaker) SingleByte(ciphertext []byte) (Candidate, error) {
	ranked := b.Rank(ciphertext)
	shortlist := ranked[:TopCandidates]

	for i, c := range shortlist {
		if english.IsPlausible(c.Plaintext, PlausibilityThreshold) {
			b.logger.Trace("single-byte key found",
				"key", fmt.Sprintf("0x%02x", c.Key),
				"score", c.Score,
				"rank", i,
			)
			return c, nil
		}
	}

	b.logger.Trace("no plausible single-byte key",
		"length", len(ciphertext),
		"best_key", fmt.Sprintf("0x%02x", shortlist[0].Key),
		"best_score", shortlist[0].Score,
	)
	return Candidate{}, fmt.Errorf("%w: none of the top %d single-byte keys gave English text",
		cerrors.ErrBreakFailed, TopCandidates)
}
