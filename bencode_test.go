package bencode

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/clockworkengineer/bencode/encode"
	"github.com/clockworkengineer/bencode/ir"
	"github.com/clockworkengineer/bencode/parse"
)

func TestWriteReadFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "x.bencode")
	n := ir.FromMap(map[string]*ir.Node{
		"spam": ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2), ir.FromInt(3)}),
		"foo":  ir.FromString("bar"),
	})
	if err := WriteFile(p, n, 0o644); err != nil {
		t.Fatal(err)
	}
	d, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != `d3:foo3:bar4:spamli1ei2ei3eee` {
		t.Errorf("wrote %q", d)
	}
	back, err := ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(n, back) {
		t.Errorf("read back %v", back)
	}
}

func TestWriteFileStrict(t *testing.T) {
	p := filepath.Join(t.TempDir(), "x.bencode")
	if err := os.WriteFile(p, []byte("i1e"), 0o644); err != nil {
		t.Fatal(err)
	}
	n, err := parse.ParseString(`d1:bi1e1:ai2ee`, parse.Lenient())
	if err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(p, n, 0o644, encode.Strict(true)); err != ir.ErrNonCanonicalData {
		t.Errorf("strict: %v", err)
	}
	d, _ := os.ReadFile(p)
	if string(d) != "i1e" {
		t.Errorf("failed write replaced file: %q", d)
	}
}

func TestReadErrors(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad")
	if err := os.WriteFile(p, []byte("5:spam"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadFile(p); !errors.Is(err, ir.ErrTruncatedString) {
		t.Errorf("truncated: %v", err)
	}
	if _, err := ReadFile(filepath.Join(t.TempDir(), "none")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing: %v", err)
	}
	if _, err := Read(strings.NewReader("i1e"), parse.MaxInputLength(2)); err != ir.ErrInputTooLong {
		t.Errorf("input cap: %v", err)
	}
}
