// Package english scores how closely a buffer resembles English prose.
//
// The score is a fitting quotient: the mean absolute difference between the
// observed and expected relative frequency of each of the 26 letters. Lower
// scores are better and 0 is a perfect match.
package english

const alphabetSize = 26

// letterFrequencies holds the expected relative frequency of 'a' through 'z'.
var letterFrequencies = [alphabetSize]float64{
	0.082,   // a
	0.015,   // b
	0.028,   // c
	0.043,   // d
	0.127,   // e
	0.022,   // f
	0.02,    // g
	0.061,   // h
	0.07,    // i
	0.0016,  // j
	0.0077,  // k
	0.04,    // l
	0.024,   // m
	0.067,   // n
	0.075,   // o
	0.019,   // p
	0.0012,  // q
	0.06,    // r
	0.063,   // s
	0.091,   // t
	0.028,   // u
	0.0098,  // v
	0.024,   // w
	0.0015,  // x
	0.02,    // y
	0.00074, // z
}

// letterIndex returns the alphabet position of an ASCII letter, ignoring case.
func letterIndex(c byte) (int, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c - 'a'), true
	case c >= 'A' && c <= 'Z':
		return int(c - 'A'), true
	default:
		return 0, false
	}
}

// LetterFrequency returns the expected frequency of c in English text.
// The second result is false when c is not an ASCII letter.
func LetterFrequency(c byte) (float64, bool) {
	idx, ok := letterIndex(c)
	if !ok {
		return 0, false
	}
	return letterFrequencies[idx], true
}

// FittingQuotient scores data against the English letter distribution.
// Non-letter bytes count towards the length but never match a letter, so
// binary or control-heavy buffers score badly. An empty buffer is treated
// as having no letters at all.
func FittingQuotient(data []byte) float64 {
	var counts [alphabetSize]int
	for _, c := range data {
		if idx, ok := letterIndex(c); ok {
			counts[idx]++
		}
	}

	var sum float64
	for i, expected := range letterFrequencies {
		var observed float64
		if len(data) > 0 {
			observed = float64(counts[i]) / float64(len(data))
		}
		diff := expected - observed
		if diff < 0 {
			diff = -diff
		}
		sum += diff
	}
	return sum / alphabetSize
}

// PlausibleRatio returns the share of data made of ASCII letters or spaces.
func PlausibleRatio(data []byte) float64 {
	if len(data) == 0 {
		return 0
	}
	var n int
	for _, c := range data {
		if _, ok := letterIndex(c); ok || c == ' ' {
			n++
		}
	}
	return float64(n) / float64(len(data))
}

// IsPlausible reports whether at least threshold of data is letters or spaces.
func IsPlausible(data []byte, threshold float64) bool {
	return len(data) > 0 && PlausibleRatio(data) >= threshold
}
