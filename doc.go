// Package bencode reads and writes bencoded files.
//
// The work is done by the subpackages: ir holds the tree, parse and encode
// convert it to and from bytes, stream works on events without a tree and
// memory bounds what parsing may allocate. This package adds file helpers,
// path lookup and structural matching on top.
//
//	n, err := bencode.ReadFile("ubuntu.torrent", parse.Lenient())
//	name, err := bencode.Get(n, "info.name")
//	err = bencode.WriteFile("out.torrent", n, 0o644)
package bencode
