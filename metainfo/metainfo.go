package metainfo

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"github.com/clockworkengineer/bencode/encode"
	"github.com/clockworkengineer/bencode/ir"
	"github.com/clockworkengineer/bencode/parse"

	"github.com/zeebo/blake3"
)

// PieceHashLen is the length of one SHA-1 piece hash in Info.Pieces.
const PieceHashLen = sha1.Size

// Metainfo is the content of a .torrent file.
type Metainfo struct {
	Announce     string
	AnnounceList [][]string
	Comment      string
	CreatedBy    string
	CreationDate time.Time
	Encoding     string
	Info         Info

	// infoBytes holds the info dictionary exactly as it was read.
	infoBytes []byte
}

// Info is the info dictionary. Exactly one of Length and Files is set.
type Info struct {
	Name        string
	PieceLength int64
	Pieces      []byte
	Private     bool
	Length      int64
	Files       []File
}

type File struct {
	Length int64
	Path   []string
}

// Parse decodes a .torrent file.
func Parse(d []byte, opts ...parse.ParseOption) (*Metainfo, error) {
	n, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	return FromNode(n)
}

// Load reads and decodes the .torrent file at path.
func Load(path string, opts ...parse.ParseOption) (*Metainfo, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// FromNode extracts the metainfo fields from a parsed tree. Missing or
// mistyped required fields are reported as *ir.FieldError.
func FromNode(n *ir.Node) (*Metainfo, error) {
	if !n.IsDict() {
		return nil, &ir.FieldError{Want: ir.DictType, Got: n.Type, Err: ir.ErrTypeMismatch}
	}
	m := &Metainfo{}
	var err error
	if m.Announce, err = n.RequiredString("announce"); err != nil {
		return nil, err
	}
	if l, ok, err := n.OptionalList("announce-list"); err != nil {
		return nil, err
	} else if ok {
		if m.AnnounceList, err = tiers(l); err != nil {
			return nil, err
		}
	}
	if m.Comment, _, err = n.OptionalString("comment"); err != nil {
		return nil, err
	}
	if m.CreatedBy, _, err = n.OptionalString("created by"); err != nil {
		return nil, err
	}
	if m.Encoding, _, err = n.OptionalString("encoding"); err != nil {
		return nil, err
	}
	if ts, ok, err := n.OptionalInt("creation date"); err != nil {
		return nil, err
	} else if ok {
		m.CreationDate = time.Unix(ts, 0).UTC()
	}
	info, err := n.RequiredDict("info")
	if err != nil {
		return nil, err
	}
	if err := m.Info.fromNode(info); err != nil {
		return nil, err
	}
	// stored order and duplicates are kept, so this reproduces the input
	m.infoBytes, err = encode.EncodeBytes(info, encode.SortKeys(false))
	if err != nil {
		return nil, err
	}
	return m, nil
}

func tiers(l []*ir.Node) ([][]string, error) {
	res := make([][]string, 0, len(l))
	for i, tier := range l {
		urls, ok := tier.AsList()
		if !ok {
			return nil, fmt.Errorf("%w: announce-list[%d] is %s, not a list", ErrInvalid, i, tier.TypeName())
		}
		t := make([]string, 0, len(urls))
		for j, u := range urls {
			s, ok := u.AsString()
			if !ok {
				return nil, fmt.Errorf("%w: announce-list[%d][%d] is %s, not a string", ErrInvalid, i, j, u.TypeName())
			}
			t = append(t, s)
		}
		res = append(res, t)
	}
	return res, nil
}

func (info *Info) fromNode(n *ir.Node) error {
	var err error
	if info.Name, err = n.RequiredString("name"); err != nil {
		return err
	}
	if info.PieceLength, err = n.RequiredInt("piece length"); err != nil {
		return err
	}
	if info.PieceLength <= 0 {
		return fmt.Errorf("%w: piece length %d", ErrInvalid, info.PieceLength)
	}
	if info.Pieces, err = n.RequiredBytes("pieces"); err != nil {
		return err
	}
	if len(info.Pieces)%PieceHashLen != 0 {
		return fmt.Errorf("%w: pieces length %d is not a multiple of %d", ErrInvalid, len(info.Pieces), PieceHashLen)
	}
	private, _, err := n.OptionalInt("private")
	if err != nil {
		return err
	}
	info.Private = private == 1

	length, hasLength, err := n.OptionalInt("length")
	if err != nil {
		return err
	}
	files, hasFiles, err := n.OptionalList("files")
	if err != nil {
		return err
	}
	switch {
	case hasLength && hasFiles:
		return fmt.Errorf("%w: info has both length and files", ErrInvalid)
	case hasLength:
		if length < 0 {
			return fmt.Errorf("%w: negative length %d", ErrInvalid, length)
		}
		info.Length = length
		return nil
	case !hasFiles:
		return &ir.FieldError{Key: "length", Want: ir.IntegerType, Err: ir.ErrMissingField}
	}
	info.Files = make([]File, 0, len(files))
	for i, f := range files {
		file, err := fileFromNode(f)
		if err != nil {
			return fmt.Errorf("files[%d]: %w", i, err)
		}
		info.Files = append(info.Files, file)
	}
	return nil
}

func fileFromNode(n *ir.Node) (File, error) {
	var f File
	if !n.IsDict() {
		return f, &ir.FieldError{Want: ir.DictType, Got: n.Type, Err: ir.ErrTypeMismatch}
	}
	var err error
	if f.Length, err = n.RequiredInt("length"); err != nil {
		return f, err
	}
	path, err := n.RequiredList("path")
	if err != nil {
		return f, err
	}
	if len(path) == 0 {
		return f, fmt.Errorf("%w: empty path", ErrInvalid)
	}
	for _, p := range path {
		s, ok := p.AsString()
		if !ok {
			return f, fmt.Errorf("%w: path element is %s, not a string", ErrInvalid, p.TypeName())
		}
		f.Path = append(f.Path, s)
	}
	return f, nil
}

// TotalLength returns the size of the content in bytes.
func (info *Info) TotalLength() int64 {
	if info.Files == nil {
		return info.Length
	}
	var n int64
	for i := range info.Files {
		n += info.Files[i].Length
	}
	return n
}

// NumPieces returns the number of piece hashes.
func (info *Info) NumPieces() int {
	return len(info.Pieces) / PieceHashLen
}

// Piece returns the SHA-1 hash of piece i.
func (info *Info) Piece(i int) []byte {
	return info.Pieces[i*PieceHashLen : (i+1)*PieceHashLen]
}

// ToNode builds the info dictionary.
func (info *Info) ToNode() *ir.Node {
	m := map[string]*ir.Node{
		"name":         ir.FromString(info.Name),
		"piece length": ir.FromInt(info.PieceLength),
		"pieces":       ir.FromBytes(info.Pieces),
	}
	if info.Private {
		m["private"] = ir.FromInt(1)
	}
	if info.Files == nil {
		m["length"] = ir.FromInt(info.Length)
		return ir.FromMap(m)
	}
	files := make([]*ir.Node, len(info.Files))
	for i, f := range info.Files {
		path := make([]*ir.Node, len(f.Path))
		for j, p := range f.Path {
			path[j] = ir.FromString(p)
		}
		files[i] = ir.FromMap(map[string]*ir.Node{
			"length": ir.FromInt(f.Length),
			"path":   ir.FromSlice(path),
		})
	}
	m["files"] = ir.FromSlice(files)
	return ir.FromMap(m)
}

// ToNode builds the whole metainfo dictionary. Empty optional fields are
// left out.
func (m *Metainfo) ToNode() *ir.Node {
	res := map[string]*ir.Node{
		"announce": ir.FromString(m.Announce),
		"info":     m.Info.ToNode(),
	}
	if len(m.AnnounceList) > 0 {
		tiers := make([]*ir.Node, len(m.AnnounceList))
		for i, tier := range m.AnnounceList {
			urls := make([]*ir.Node, len(tier))
			for j, u := range tier {
				urls[j] = ir.FromString(u)
			}
			tiers[i] = ir.FromSlice(urls)
		}
		res["announce-list"] = ir.FromSlice(tiers)
	}
	for k, v := range map[string]string{
		"comment":    m.Comment,
		"created by": m.CreatedBy,
		"encoding":   m.Encoding,
	} {
		if v != "" {
			res[k] = ir.FromString(v)
		}
	}
	if !m.CreationDate.IsZero() {
		res["creation date"] = ir.FromInt(m.CreationDate.Unix())
	}
	return ir.FromMap(res)
}

// InfoBytes returns the encoded info dictionary: the bytes read for a
// parsed torrent, the canonical encoding otherwise.
func (m *Metainfo) InfoBytes() []byte {
	if m.infoBytes != nil {
		return m.infoBytes
	}
	d, err := encode.EncodeBytes(m.Info.ToNode())
	if err != nil {
		panic(err)
	}
	return d
}

// InfoHash returns the BitTorrent v1 info hash, the SHA-1 of the info
// dictionary's encoding.
func (m *Metainfo) InfoHash() [sha1.Size]byte {
	return sha1.Sum(m.InfoBytes())
}

// InfoHashHex returns the info hash as lower case hex.
func (m *Metainfo) InfoHashHex() string {
	h := m.InfoHash()
	return hex.EncodeToString(h[:])
}

// Fingerprint returns the BLAKE3-256 digest of the info dictionary's
// encoding.
func (m *Metainfo) Fingerprint() [32]byte {
	return blake3.Sum256(m.InfoBytes())
}
