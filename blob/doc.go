// Package blob implements the arico container format: a self-describing binary
// envelope around an arithmetically coded message.
//
// The core binary code is bare bits with no framing, length or model attached; a
// consumer needs all three to decode. A blob carries them: a fixed 32-byte header
// (magic, model and compression types, message length, exact code bit length,
// alphabet fingerprint, checksum), the symbol table the decoder rebuilds the
// model from, and the packed code payload.
//
// Encoding:
//
//	m, _ := model.NewDirichlet(map[string]uint64{"a": 1, "b": 1, "c": 1})
//	enc, _ := blob.NewEncoder(m)
//	data, _ := enc.Encode([]string{"a", "a", "b", "b", "a", "a", "c", "c"})
//
// Decoding is self-contained; the blob alone reproduces the stream:
//
//	dec, _ := blob.NewDecoder(data)
//	stream, _ := dec.Decode()
//
// Optional compression (Zstd, S2, LZ4) covers the symbol table and payload as a
// single unit. The code bits are already near entropy, so compression pays off
// only when the symbol table dominates; the default is none.
package blob
