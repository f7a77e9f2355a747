package stream

// StreamOption configures Encoder behavior.
type StreamOption func(*streamOpts)

type streamOpts struct {
	canonical bool // Require strictly increasing keys
	multi     bool // Allow several top-level values
}

// WithCanonicalKeys makes the encoder reject keys that are not strictly
// greater than the previous key of the same dictionary.
func WithCanonicalKeys() StreamOption {
	return func(opts *streamOpts) {
		opts.canonical = true
	}
}

// WithMultiple allows more than one top-level value to be written.
func WithMultiple() StreamOption {
	return func(opts *streamOpts) {
		opts.multi = true
	}
}
