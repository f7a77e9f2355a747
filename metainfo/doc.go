// Package metainfo reads and writes BitTorrent metainfo (.torrent) files
// on top of the ir accessors.
//
// The info hash is computed over the info dictionary as it appeared in the
// file, so torrents written with unsorted or duplicate keys keep the hash
// their peers know them by; parse them with parse.Lenient().
package metainfo
