package convert

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/clockworkengineer/bencode/encode"
	"github.com/clockworkengineer/bencode/format"
	"github.com/clockworkengineer/bencode/ir"
	"github.com/clockworkengineer/bencode/parse"

	"github.com/google/go-cmp/cmp"
	"github.com/pelletier/go-toml"
)

const example = `d3:foo3:bar4:spamli1ei2ei3eee`

func mustParse(t *testing.T, in string) *ir.Node {
	t.Helper()
	n, err := parse.ParseString(in, parse.Lenient())
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func convertString(t *testing.T, n *ir.Node, f format.Format) string {
	t.Helper()
	buf := bytes.NewBuffer(nil)
	if err := Convert(n, buf, f); err != nil {
		t.Fatalf("%s: %v", f, err)
	}
	return buf.String()
}

func TestJSON(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		{example, `{"foo":"bar","spam":[1,2,3]}`},
		{`i-7e`, `-7`},
		{`le`, `[]`},
		{`de`, `{}`},
		{"6:a\"b\n\xff\\", `"a\"b\u000a\u00ff\\"`},
		{`d1:bi1e1:ai2e1:bi3ee`, `{"a":2,"b":3}`},
	}
	for _, tt := range tests {
		if got := convertString(t, mustParse(t, tt.in), format.JSONFormat); got != tt.out {
			t.Errorf("%q: got %s want %s", tt.in, got, tt.out)
		}
	}
}

func TestXML(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		{example, `<dictionary><item><key>foo</key><value><string>bar</string></value></item>` +
			`<item><key>spam</key><value><list><integer>1</integer><integer>2</integer><integer>3</integer></list></value></item></dictionary>`},
		{`le`, `<list></list>`},
		{`de`, `<dictionary></dictionary>`},
		{`5:a<b&c`, `<string>a&lt;b&amp;c</string>`},
	}
	for _, tt := range tests {
		if got := convertString(t, mustParse(t, tt.in), format.XMLFormat); got != tt.out {
			t.Errorf("%q: got %s want %s", tt.in, got, tt.out)
		}
	}
}

func TestYAML(t *testing.T) {
	got := convertString(t, mustParse(t, `d3:foo3:bar4:spamli1ei2ee3:bin2:`+"\x00\x01"+`e`), format.YAMLFormat)
	for _, want := range []string{"foo: bar", "spam:", "- 1", "- 2", "0x0001"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in\n%s", want, got)
		}
	}
	if strings.Index(got, "bin") > strings.Index(got, "foo") {
		t.Errorf("keys not sorted:\n%s", got)
	}
}

func TestTOML(t *testing.T) {
	n := mustParse(t, `d4:infod6:lengthi5e4:name1:xe4:tagsl1:a1:be5:filesld1:pi1eed1:pi2eee`)
	out := convertString(t, n, format.TOMLFormat)
	tree, err := toml.Load(out)
	if err != nil {
		t.Fatalf("%v\n%s", err, out)
	}
	if got := tree.Get("info.length"); got != int64(5) {
		t.Errorf("info.length = %#v", got)
	}
	if got := tree.Get("info.name"); got != "x" {
		t.Errorf("info.name = %#v", got)
	}
	if diff := cmp.Diff([]any{"a", "b"}, tree.Get("tags")); diff != "" {
		t.Errorf("tags (-want +got):\n%s", diff)
	}

	for _, in := range []string{`li1ee`, `d1:ali1e1:xee`, `d1:alli1eeee`} {
		if err := ToTOML(mustParse(t, in), bytes.NewBuffer(nil)); !errors.Is(err, ErrUnrepresentable) {
			t.Errorf("%q: %v", in, err)
		}
	}
}

func TestCBOR(t *testing.T) {
	got, err := CBORBytes(mustParse(t, `d1:bl0:e1:ai-1ee`))
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0xa2, 0x41, 'a', 0x20, 0x41, 'b', 0x81, 0x40}
	if !bytes.Equal(got, want) {
		t.Errorf("got % x want % x", got, want)
	}
	buf := bytes.NewBuffer(nil)
	if err := ToCBOR(mustParse(t, `d1:bl0:e1:ai-1ee`), buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("stream got % x", buf.Bytes())
	}
}

func TestConvertPassThrough(t *testing.T) {
	n := mustParse(t, `d1:bi1e1:ai2ee`)
	if got := convertString(t, n, format.BencodeFormat); got != `d1:ai2e1:bi1ee` {
		t.Errorf("bencode: %q", got)
	}
	if got := convertString(t, n, format.TextFormat); got != encode.ViewString(n) {
		t.Errorf("text: %q", got)
	}
	if err := Convert(n, bytes.NewBuffer(nil), format.Format(99)); !errors.Is(err, format.ErrBadFormat) {
		t.Errorf("bad format: %v", err)
	}
}
