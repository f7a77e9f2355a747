// Package stream provides streaming encode/decode for bencode documents.
//
// The stream package provides structural event-based encoding and decoding
// for inputs that should not be held in memory whole, such as large
// metainfo files read from disk or a socket. Each container start, key,
// scalar and container end is one Event.
//
// For whole-document parsing and encoding, use the parse and encode
// packages instead.
//
// # Example: Encoding
//
//	enc := stream.NewEncoder(writer, stream.WithCanonicalKeys())
//	enc.BeginDict()
//	enc.WriteKeyString("name")
//	enc.WriteString("value")
//	enc.End()
//
// # Example: Decoding
//
//	dec := stream.NewDecoder(reader, parse.MaxDepth(32))
//	for {
//	    ev, err := dec.ReadEvent()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    ...
//	}
package stream
