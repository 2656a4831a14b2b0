// Package numerator provides domain contracts for invoice auto-numbering.
package numerator

// Config holds numbering configuration.
type Config struct {
	// Prefix added to all numbers (e.g., "INV")
	Prefix string

	// PadWidth is the minimum counter width (default 4).
	// Counters above the padded range widen rather than wrap.
	PadWidth int

	// ResetPeriod: "day", "month", "never"
	ResetPeriod string
}

// DefaultConfig returns the invoice numbering defaults.
// Pattern: PREFIX-YYYYMMDD-NNNN, counter restarting at 1 each calendar day.
func DefaultConfig(prefix string) Config {
	return Config{
		Prefix:      prefix,
		PadWidth:    4,
		ResetPeriod: "day",
	}
}
