// Package encode encodes ir trees as bencode.
//
// # Usage
//
//	node := ir.FromMap(map[string]*ir.Node{
//	    "name": ir.FromString("alice"),
//	    "age":  ir.FromInt(30),
//	})
//	err := encode.Encode(node, w)
//
//	// keep stored dictionary order, e.g. to reproduce lenient input
//	err = encode.Encode(node, w, encode.SortKeys(false))
//
//	// refuse trees that are not already canonical
//	err = encode.Encode(node, w, encode.Strict(true))
//
//	// indented, coloured view for terminals
//	err = encode.View(node, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// By default dictionary keys are sorted at encode time, so the output is
// canonical however the tree was built.
//
// # Related Packages
//
//   - github.com/clockworkengineer/bencode/ir - tree representation
//   - github.com/clockworkengineer/bencode/parse - bencode to ir
package encode
