// Package breaker recovers keys from single-byte and repeating-key XOR
// ciphertexts without knowing the key, assuming English plaintext.
package breaker

import (
	"github.com/hashicorp/go-hclog"
)

// Candidate is a scored single-byte key guess.
type Candidate struct {
	Key       byte
	Plaintext []byte
	Score     float64 // fitting quotient, lower is better
}

// KeySizeCandidate is a repeating key length with its normalized bit distance.
type KeySizeCandidate struct {
	Size     int
	Distance float64
}

// Options tunes the search. Zero values select the defaults.
type Options struct {
	// MaxKeySize bounds the repeating key lengths tried.
	MaxKeySize int
	// SampleBlocks is how many consecutive key-sized blocks are compared
	// when scoring a key length. 2 compares just the first pair.
	SampleBlocks int
	// Workers is the number of columns broken concurrently.
	Workers int
}

// DefaultOptions returns the options used by the package-level functions.
func DefaultOptions() Options {
	return Options{
		MaxKeySize:   DefaultMaxKeySize,
		SampleBlocks: DefaultSampleBlocks,
		Workers:      DefaultWorkers,
	}
}

func (o Options) withDefaults() Options {
	if o.MaxKeySize <= 0 {
		o.MaxKeySize = DefaultMaxKeySize
	}
	if o.SampleBlocks < 2 {
		o.SampleBlocks = DefaultSampleBlocks
	}
	if o.Workers <= 0 {
		o.Workers = DefaultWorkers
	}
	return o
}

// Breaker runs the statistical attacks. It holds no mutable state and is
// safe for concurrent use.
type Breaker struct {
	opts   Options
	logger hclog.Logger
}

// New creates a Breaker that discards its diagnostics.
func New(opts Options) *Breaker {
	return NewWithLogger(opts, hclog.NewNullLogger())
}

// NewWithLogger creates a Breaker that reports progress to logger.
func NewWithLogger(opts Options, logger hclog.Logger) *Breaker {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Breaker{
		opts:   opts.withDefaults(),
		logger: logger,
	}
}

// Options returns the effective options.
func (b *Breaker) Options() Options {
	return b.opts
}

var defaultBreaker = New(DefaultOptions())

// Rank scores every single-byte key against ciphertext using the defaults.
func Rank(ciphertext []byte) []Candidate {
	return defaultBreaker.Rank(ciphertext)
}

// BreakSingleByte recovers a single-byte XOR key using the defaults.
func BreakSingleByte(ciphertext []byte) (Candidate, error) {
	return defaultBreaker.SingleByte(ciphertext)
}

// EstimateKeySize guesses the repeating key length using the defaults.
func EstimateKeySize(ciphertext []byte) (int, error) {
	return defaultBreaker.EstimateKeySize(ciphertext)
}

// BreakRepeatingKey recovers a repeating XOR key using the defaults.
func BreakRepeatingKey(ciphertext []byte) ([]byte, error) {
	return defaultBreaker.RepeatingKey(ciphertext)
}

// Detect finds the line most likely to be single-byte XOR using the defaults.
func Detect(ciphertexts [][]byte) (int, Candidate, error) {
	return defaultBreaker.Detect(ciphertexts)
}
