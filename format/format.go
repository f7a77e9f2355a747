package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Format int

const (
	BencodeFormat Format = iota
	JSONFormat
	YAMLFormat
	TOMLFormat
	XMLFormat
	CBORFormat
	TextFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"b":       BencodeFormat,
		"bencode": BencodeFormat,
		"torrent": BencodeFormat,
		"j":       JSONFormat,
		"json":    JSONFormat,
		"y":       YAMLFormat,
		"yaml":    YAMLFormat,
		"yml":     YAMLFormat,
		"toml":    TOMLFormat,
		"x":       XMLFormat,
		"xml":     XMLFormat,
		"c":       CBORFormat,
		"cbor":    CBORFormat,
		"t":       TextFormat,
		"text":    TextFormat,
	}[strings.ToLower(v)]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case BencodeFormat:
		return []byte("bencode"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case TOMLFormat:
		return []byte("toml"), nil
	case XMLFormat:
		return []byte("xml"), nil
	case CBORFormat:
		return []byte("cbor"), nil
	case TextFormat:
		return []byte("text"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// IsBinary reports whether output in this format is not meant for a
// terminal.
func (f Format) IsBinary() bool { return f == BencodeFormat || f == CBORFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case BencodeFormat:
		return ".bencode"
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	case TOMLFormat:
		return ".toml"
	case XMLFormat:
		return ".xml"
	case CBORFormat:
		return ".cbor"
	case TextFormat:
		return ".txt"
	default:
		return ""
	}
}

// FromPath guesses the format from a file name's extension. Torrent files
// are bencode.
func FromPath(p string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(p), ".")
	if ext == "" {
		return 0, fmt.Errorf("%w: no extension on %q", ErrBadFormat, p)
	}
	return ParseFormat(ext)
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{BencodeFormat, JSONFormat, YAMLFormat, TOMLFormat, XMLFormat, CBORFormat, TextFormat}
}
