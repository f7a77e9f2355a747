package metainfo

import (
	"crypto/sha1"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/clockworkengineer/bencode/encode"
	"github.com/clockworkengineer/bencode/ir"
	"github.com/clockworkengineer/bencode/parse"

	"github.com/google/go-cmp/cmp"
	"github.com/zeebo/blake3"
)

var pieces = strings.Repeat("\xab", 20)

const singleInfo = `d6:lengthi12345e4:name8:file.txt12:piece lengthi16384e6:pieces20:`

func single() (torrent, info string) {
	info = singleInfo + pieces + "e"
	torrent = `d8:announce15:http://test.com13:creation datei1700000000e4:info` + info + "e"
	return torrent, info
}

func TestParseSingle(t *testing.T) {
	torrent, info := single()
	m, err := Parse([]byte(torrent))
	if err != nil {
		t.Fatal(err)
	}
	if m.Announce != "http://test.com" || m.Info.Name != "file.txt" || m.Info.PieceLength != 16384 {
		t.Errorf("fields: %+v", m)
	}
	if !m.CreationDate.Equal(time.Unix(1700000000, 0)) {
		t.Errorf("creation date %v", m.CreationDate)
	}
	if m.Info.TotalLength() != 12345 || m.Info.NumPieces() != 1 || string(m.Info.Piece(0)) != pieces {
		t.Errorf("info: %+v", m.Info)
	}
	if m.InfoHash() != sha1.Sum([]byte(info)) {
		t.Errorf("info hash %s", m.InfoHashHex())
	}
	if m.Fingerprint() != blake3.Sum256([]byte(info)) {
		t.Errorf("fingerprint mismatch")
	}
	if got := encode.MustString(m.ToNode()); got != torrent {
		t.Errorf("ToNode:\n%q\n%q", got, torrent)
	}
}

func TestParseMultiFile(t *testing.T) {
	torrent := `d8:announce3:url13:announce-listll1:ael1:bee7:comment2:hi4:infod5:filesl` +
		`d6:lengthi10e4:pathl1:d1:feed6:lengthi5e4:pathl1:geee` +
		`4:name3:dir12:piece lengthi4e6:pieces0:7:privatei1eee`
	m, err := Parse([]byte(torrent))
	if err != nil {
		t.Fatal(err)
	}
	want := []File{{Length: 10, Path: []string{"d", "f"}}, {Length: 5, Path: []string{"g"}}}
	if diff := cmp.Diff(want, m.Info.Files); diff != "" {
		t.Errorf("files (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([][]string{{"a"}, {"b"}}, m.AnnounceList); diff != "" {
		t.Errorf("announce-list (-want +got):\n%s", diff)
	}
	if m.Info.TotalLength() != 15 || !m.Info.Private || m.Comment != "hi" {
		t.Errorf("info: %+v", m)
	}
	if got := encode.MustString(m.ToNode()); got != torrent {
		t.Errorf("ToNode:\n%q\n%q", got, torrent)
	}
}

func TestInfoHashKeepsStoredOrder(t *testing.T) {
	info := `d4:name1:x6:lengthi1e12:piece lengthi1e6:pieces0:e`
	torrent := `d8:announce1:u4:info` + info + `e`
	if _, err := Parse([]byte(torrent)); err != ir.ErrNonCanonicalData {
		t.Errorf("canonical parse: %v", err)
	}
	m, err := Parse([]byte(torrent), parse.Lenient())
	if err != nil {
		t.Fatal(err)
	}
	if m.InfoHash() != sha1.Sum([]byte(info)) {
		t.Errorf("info hash over re-sorted bytes")
	}
	built := &Metainfo{Announce: "u", Info: m.Info}
	if built.InfoHash() == m.InfoHash() {
		t.Errorf("canonical rebuild should hash differently")
	}
}

func TestParseErrors(t *testing.T) {
	_, info := single()
	tests := []struct {
		in string
		e  error
	}{
		{`d4:info` + info + `e`, ir.ErrMissingField},
		{`d8:announcei1e4:info` + info + `e`, ir.ErrTypeMismatch},
		{`d8:announce1:ue`, ir.ErrMissingField},
		{`d8:announce1:u4:infoli1eee`, ir.ErrTypeMismatch},
		{`d8:announce1:u4:infod4:name1:x12:piece lengthi1e6:pieces0:ee`, ir.ErrMissingField},
		{`d8:announce1:u4:infod6:lengthi1e4:name1:x12:piece lengthi1e6:pieces3:abcee`, ErrInvalid},
		{`d8:announce1:u4:infod5:filesle6:lengthi1e4:name1:x12:piece lengthi1e6:pieces0:ee`, ErrInvalid},
		{`d8:announce1:u4:infod6:lengthi1e4:name1:x12:piece lengthi0e6:pieces0:ee`, ErrInvalid},
		{`d8:announce1:u4:infod5:filesld6:lengthi1e4:pathleee4:name1:x12:piece lengthi1e6:pieces0:ee`, ErrInvalid},
		{`d13:announce-listl1:ae8:announce1:u4:info` + info + `e`, ErrInvalid},
		{`li1ee`, ir.ErrTypeMismatch},
	}
	for _, tt := range tests {
		_, err := Parse([]byte(tt.in), parse.Lenient())
		if !errors.Is(err, tt.e) {
			t.Errorf("%q: got %v want %v", tt.in, err, tt.e)
		}
	}
}

func TestLoad(t *testing.T) {
	torrent, _ := single()
	p := filepath.Join(t.TempDir(), "x.torrent")
	if err := os.WriteFile(p, []byte(torrent), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}
	if m.Info.Name != "file.txt" {
		t.Errorf("name %q", m.Info.Name)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: %v", err)
	}
}
