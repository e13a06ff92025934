package breaker

// =================================
// Single-byte search defaults
// =================================
const (
	KeySpace              = 256  // Every possible single-byte key
	TopCandidates         = 10   // Shortlist size before the plausibility gate
	PlausibilityThreshold = 0.95 // Minimum share of letters and spaces
)

// =================================
// Key-size search defaults
// =================================
const (
	DefaultMaxKeySize   = 40 // Largest repeating key length considered
	DefaultSampleBlocks = 2  // Blocks compared per key length (one pair)
	DefaultWorkers      = 1  // Columns broken one at a time
)
