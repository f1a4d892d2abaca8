// Package codec implements the arithmetic coder: an encoder that compresses a
// symbol stream into a binary code whose length approaches the entropy of the
// stream under a probability model, and the matching decoder.
//
// # Encoding
//
// The encoder keeps a message interval [u, v), initially [0, 1). For each symbol
// it looks up the symbol's cumulative sub-interval in the model's current
// distribution, narrows the message interval to that sub-interval, and extends
// the binary code to the longest prefix whose dyadic interval still surrounds the
// message interval. When the stream ends, the code is extended until its dyadic
// interval sits inside the upper half of the final message interval. The
// upper-half bias is an arbitrary but fixed convention; the decoder assumes it.
//
//	m, _ := model.NewDirichlet(map[string]uint64{"a": 1, "b": 1, "c": 1})
//	code, _ := codec.Encode(m, []string{"a", "a", "b", "b", "a", "a", "c", "c"})
//	fmt.Println(code) // 00011110011110010
//
// The streaming form mirrors the one-shot form:
//
//	enc, _ := codec.NewEncoder(m)
//	_ = enc.Write("a", "a", "b")
//	code, _ := enc.Finish()
//
// An Encoder is not safe for concurrent use and not reusable after Finish.
//
// # Decoding
//
// The decode target is the exact rational value of the binary fraction 0.code.
// It lies inside every message interval the encoder passed through, so each step
// selects the unique symbol whose cumulative sub-interval contains it. The code
// carries no framing or terminator, so the caller must supply the message length.
//
//	syms, _ := codec.Decode(m, code, 8)
package codec
