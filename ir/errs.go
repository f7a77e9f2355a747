package ir

// Error is the error kind reported by the codec core. It is a plain
// comparable value: returning one never allocates and errors.Is matches by
// equality.
type Error uint8

const (
	ErrInvalidFormat Error = iota + 1
	ErrUnexpectedEOF
	ErrTruncatedString
	ErrInvalidDigit
	ErrIntegerOverflow
	ErrTrailingData
	ErrDepthExceeded
	ErrNonCanonicalData
	ErrMemoryBoundsExceeded
	ErrOutOfMemory
	ErrInputTooLong
	ErrBufferFull
	ErrBufferEmpty
	ErrMissingField
	ErrTypeMismatch
)

// Class groups error kinds by the kind of failure.
type Class uint8

const (
	ClassUnknown Class = iota
	// ClassSyntax is malformed input.
	ClassSyntax
	// ClassResource is an exhausted depth, memory or capacity budget.
	ClassResource
	// ClassPolicy is well-formed input refused by configuration.
	ClassPolicy
	// ClassField is a failed accessor on an otherwise valid tree.
	ClassField
)

var errMessages = [...]string{
	ErrInvalidFormat:        "invalid bencode format",
	ErrUnexpectedEOF:        "unexpected end of input",
	ErrTruncatedString:      "byte string exceeds remaining input",
	ErrInvalidDigit:         "invalid digit in integer or length",
	ErrIntegerOverflow:      "integer overflows 64 bits",
	ErrTrailingData:         "trailing data after value",
	ErrDepthExceeded:        "nesting depth exceeded",
	ErrNonCanonicalData:     "non-canonical data",
	ErrMemoryBoundsExceeded: "memory bound exceeded",
	ErrOutOfMemory:          "arena out of memory",
	ErrInputTooLong:         "input exceeds maximum length",
	ErrBufferFull:           "buffer full",
	ErrBufferEmpty:          "buffer empty",
	ErrMissingField:         "missing field",
	ErrTypeMismatch:         "type mismatch",
}

func (e Error) Error() string {
	if int(e) < len(errMessages) && errMessages[e] != "" {
		return errMessages[e]
	}
	return "unknown bencode error"
}

// Code returns a stable numeric code for the kind.
func (e Error) Code() int { return int(e) }

func (e Error) Class() Class {
	switch e {
	case ErrInvalidFormat, ErrUnexpectedEOF, ErrTruncatedString,
		ErrInvalidDigit, ErrIntegerOverflow:
		return ClassSyntax
	case ErrDepthExceeded, ErrMemoryBoundsExceeded, ErrOutOfMemory,
		ErrBufferFull, ErrBufferEmpty:
		return ClassResource
	case ErrTrailingData, ErrNonCanonicalData, ErrInputTooLong:
		return ClassPolicy
	case ErrMissingField, ErrTypeMismatch:
		return ClassField
	}
	return ClassUnknown
}

func (c Class) String() string {
	switch c {
	case ClassSyntax:
		return "syntax"
	case ClassResource:
		return "resource"
	case ClassPolicy:
		return "policy"
	case ClassField:
		return "field"
	}
	return "unknown"
}

// FieldError reports a failed required-field lookup on a dictionary.
type FieldError struct {
	Key  string
	Want Type
	Got  Type
	Err  Error
}

func (e *FieldError) Error() string {
	if e.Err == ErrMissingField {
		return "missing field " + quoteKey(e.Key)
	}
	return "field " + quoteKey(e.Key) + ": want " + e.Want.String() + ", got " + e.Got.String()
}

func (e *FieldError) Unwrap() error { return e.Err }

func quoteKey(k string) string {
	return "\"" + k + "\""
}
