package main

import (
	"bytes"
	"encoding/gob"
)

// gobEncode serializes v into the opaque byte payload gossip.Node ships
// between replicas. The library itself has no wire format of its own
// (spec.md never specifies one; see SPEC_FULL.md §B), so the demo picks
// the simplest thing that round-trips arbitrary exported struct fields.
func gobEncode(v interface{}) []byte {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// gobDecode deserializes payload into v, the dual of gobEncode.
func gobDecode(payload []byte, v interface{}) {
	if err := gob.NewDecoder(bytes.NewReader(payload)).Decode(v); err != nil {
		panic(err)
	}
}
