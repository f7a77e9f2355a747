package encode

// Config governs encoding.
type Config struct {
	// SortDictionaryKeys writes dictionary keys in canonical order whatever
	// the stored order, collapsing duplicate keys to their last value. With
	// it off, entries are written in stored order.
	SortDictionaryKeys bool
	// RejectNonCanonical validates the tree before anything is written and
	// fails with ErrNonCanonicalData if any dictionary is out of order or
	// holds duplicate keys.
	RejectNonCanonical bool
}

func DefaultConfig() Config {
	return Config{SortDictionaryKeys: true}
}

type EncodeOption func(*EncState)

// SortKeys toggles encode-time key sorting.
func SortKeys(v bool) EncodeOption {
	return func(es *EncState) { es.cfg.SortDictionaryKeys = v }
}

// Strict toggles validation before emit.
func Strict(v bool) EncodeOption {
	return func(es *EncState) { es.cfg.RejectNonCanonical = v }
}

func WithConfig(cfg Config) EncodeOption {
	return func(es *EncState) { es.cfg = cfg }
}

// Indent sets the per-level indentation of View.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
