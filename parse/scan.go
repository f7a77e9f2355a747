package parse

import (
	"bytes"
	"math"

	"github.com/clockworkengineer/bencode/ir"
)

// scanner holds the grammar shared by every parse strategy. It reads from
// d starting at pos and never copies.
type scanner struct {
	d   []byte
	pos int
}

func (s *scanner) peek() (byte, error) {
	if s.pos >= len(s.d) {
		return 0, ir.ErrUnexpectedEOF
	}
	return s.d[s.pos], nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// scanInt reads i<digits>e with the cursor on 'i'. Leading zeros, negative
// zero, empty digits and non-digits are ErrInvalidDigit.
func (s *scanner) scanInt() (int64, error) {
	s.pos++
	neg := false
	if s.pos < len(s.d) && s.d[s.pos] == '-' {
		neg = true
		s.pos++
	}
	start := s.pos
	var mag uint64
	limit := uint64(math.MaxInt64)
	if neg {
		limit++
	}
	for {
		if s.pos >= len(s.d) {
			return 0, ir.ErrUnexpectedEOF
		}
		c := s.d[s.pos]
		if c == 'e' {
			break
		}
		if !isDigit(c) {
			return 0, ir.ErrInvalidDigit
		}
		if s.pos > start && s.d[start] == '0' {
			return 0, ir.ErrInvalidDigit
		}
		dv := uint64(c - '0')
		if mag > (limit-dv)/10 {
			return 0, ir.ErrIntegerOverflow
		}
		mag = mag*10 + dv
		s.pos++
	}
	n := s.pos - start
	if n == 0 || (neg && mag == 0) {
		return 0, ir.ErrInvalidDigit
	}
	s.pos++
	if neg {
		return int64(-mag), nil
	}
	return int64(mag), nil
}

// scanBytes reads <length>:<bytes> with the cursor on the first digit and
// returns a slice of the input.
func (s *scanner) scanBytes() ([]byte, error) {
	start := s.pos
	var n int
	for {
		if s.pos >= len(s.d) {
			return nil, ir.ErrUnexpectedEOF
		}
		c := s.d[s.pos]
		if c == ':' {
			break
		}
		if !isDigit(c) {
			return nil, ir.ErrInvalidDigit
		}
		if s.pos > start && s.d[start] == '0' {
			return nil, ir.ErrInvalidDigit
		}
		if n > (math.MaxInt-int(c-'0'))/10 {
			return nil, ir.ErrTruncatedString
		}
		n = n*10 + int(c-'0')
		s.pos++
	}
	if s.pos == start {
		return nil, ir.ErrInvalidDigit
	}
	s.pos++
	if n > len(s.d)-s.pos {
		return nil, ir.ErrTruncatedString
	}
	res := s.d[s.pos : s.pos+n : s.pos+n]
	s.pos += n
	return res, nil
}

// scanKey reads a dictionary key and, when canonical is set, checks that
// it sorts strictly after prev.
func (s *scanner) scanKey(prev []byte, hasPrev, canonical bool) ([]byte, error) {
	c, err := s.peek()
	if err != nil {
		return nil, err
	}
	if !isDigit(c) {
		return nil, ir.ErrInvalidFormat
	}
	k, err := s.scanBytes()
	if err != nil {
		return nil, err
	}
	if canonical && hasPrev && bytes.Compare(prev, k) >= 0 {
		return nil, ir.ErrNonCanonicalData
	}
	return k, nil
}

// atEnd consumes a container terminator if one is next.
func (s *scanner) atEnd() (bool, error) {
	c, err := s.peek()
	if err != nil {
		return false, err
	}
	if c == 'e' {
		s.pos++
		return true, nil
	}
	return false, nil
}

// checkInput applies the length cap before any parsing.
func checkInput(d []byte, cfg *Config) error {
	if cfg.MaxInputLength > 0 && len(d) > cfg.MaxInputLength {
		return ir.ErrInputTooLong
	}
	if len(d) == 0 {
		return ir.ErrUnexpectedEOF
	}
	return nil
}

// checkTrailing applies the trailing-data policy after the root value.
func (s *scanner) checkTrailing(cfg *Config) error {
	if s.pos < len(s.d) && !cfg.AllowTrailingData {
		return ir.ErrTrailingData
	}
	return nil
}

// valueStart classifies the byte at the cursor.
func valueStart(c byte) (ir.Type, error) {
	switch {
	case c == 'i':
		return ir.IntegerType, nil
	case c == 'l':
		return ir.ListType, nil
	case c == 'd':
		return ir.DictType, nil
	case isDigit(c):
		return ir.BytesType, nil
	}
	return 0, ir.ErrInvalidFormat
}
