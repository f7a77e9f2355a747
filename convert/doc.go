// Package convert renders bencode trees in other formats.
//
// JSON and XML are written directly; YAML, TOML and CBOR go through their
// usual Go libraries. Dictionaries are always written with sorted keys,
// duplicate keys collapsing to their last value as they do in encode.
//
// Byte strings have no exact equivalent in the text formats. JSON and XML
// escape every byte outside printable ASCII as \u00XX; YAML and TOML,
// whose libraries need UTF-8 strings, write non-text byte strings as 0x
// hex. CBOR keeps them as byte strings.
package convert
