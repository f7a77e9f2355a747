package bencode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/clockworkengineer/bencode/ir"
)

var (
	ErrBadPath  = errors.New("bad path")
	ErrNotFound = errors.New("not found")
)

// Get returns the node at path in n.
//
// A path is an optional "$" followed by dictionary keys, written .key, and
// list indexes, written [i]. Keys containing '.', '[', ']' or quotes are
// written in Go double-quoted form, e.g. $.info."piece length" or
// info.files[0].path[1].
func Get(n *ir.Node, path string) (*ir.Node, error) {
	p := strings.TrimPrefix(path, "$")
	cur := n
	for p != "" {
		var err error
		switch p[0] {
		case '.':
			var key string
			key, p, err = pathKey(p[1:])
			if err != nil {
				return nil, fmt.Errorf("%w %q: %w", ErrBadPath, path, err)
			}
			if !cur.IsDict() {
				return nil, fmt.Errorf("%w: %s is %s, not a dictionary", ErrNotFound, key, cur.TypeName())
			}
			next := cur.Get(key)
			if next == nil {
				return nil, fmt.Errorf("%w: key %q", ErrNotFound, key)
			}
			cur = next
		case '[':
			end := strings.IndexByte(p, ']')
			if end == -1 {
				return nil, fmt.Errorf("%w %q: unterminated index", ErrBadPath, path)
			}
			i, err := strconv.Atoi(p[1:end])
			if err != nil || i < 0 {
				return nil, fmt.Errorf("%w %q: index %q", ErrBadPath, path, p[1:end])
			}
			if !cur.IsList() {
				return nil, fmt.Errorf("%w: [%d] on %s", ErrNotFound, i, cur.TypeName())
			}
			next := cur.Index(i)
			if next == nil {
				return nil, fmt.Errorf("%w: index %d of %d", ErrNotFound, i, cur.Len())
			}
			cur = next
			p = p[end+1:]
		default:
			if cur != n {
				return nil, fmt.Errorf("%w %q: expected '.' or '['", ErrBadPath, path)
			}
			// a leading key may omit its dot
			p = "." + p
		}
	}
	return cur, nil
}

func pathKey(p string) (string, string, error) {
	if strings.HasPrefix(p, `"`) {
		q, err := strconv.QuotedPrefix(p)
		if err != nil {
			return "", "", err
		}
		key, err := strconv.Unquote(q)
		return key, p[len(q):], err
	}
	end := strings.IndexAny(p, ".[")
	if end == -1 {
		end = len(p)
	}
	if end == 0 {
		return "", "", errors.New("empty key")
	}
	return p[:end], p[end:], nil
}
