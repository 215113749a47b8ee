package webcat

import "time"

// Default configuration values. These mirror the conservative defaults of a
// polite, small-scale scraper: short randomized pauses between requests and
// a bounded number of retries.
const (
	DefaultDelayMin   = 1 * time.Second
	DefaultDelayMax   = 3 * time.Second
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 3
	DefaultUserAgent  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	// DefaultModel is the Gemini model used by the LLM-backed categorizer.
	DefaultModel       = "gemini-2.5-flash"
	DefaultMaxTokens   = 1000
	DefaultTemperature = 0.7
)

// Config holds the settings recognized across the pipeline. It is a plain
// value passed to constructors; there is no ambient or process-global state.
type Config struct {
	// DelayMin and DelayMax bound the randomized pacing delay inserted
	// between sequential requests in a batch.
	DelayMin time.Duration
	DelayMax time.Duration

	// Timeout applies to each HTTP fetch.
	Timeout time.Duration

	// MaxRetries bounds the total number of fetch attempts per URL.
	MaxRetries int

	// UserAgent is sent with every fetch.
	UserAgent string

	// Model, MaxTokens and Temperature configure the LLM-backed categorizer.
	Model       string
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns a Config populated with the package defaults.
func DefaultConfig() Config {
	return Config{
		DelayMin:    DefaultDelayMin,
		DelayMax:    DefaultDelayMax,
		Timeout:     DefaultTimeout,
		MaxRetries:  DefaultMaxRetries,
		UserAgent:   DefaultUserAgent,
		Model:       DefaultModel,
		MaxTokens:   DefaultMaxTokens,
		Temperature: DefaultTemperature,
	}
}
