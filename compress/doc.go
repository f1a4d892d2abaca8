// Package compress provides optional compression codecs for arico container
// payloads.
//
// Arithmetic-coded bits are already near the entropy of the message, so the code
// payload itself rarely benefits from further compression; CompressionNone is the
// default. The codecs earn their keep on large-alphabet blobs, where the symbol
// table (many length-prefixed symbol strings with repetitive structure) dominates
// the blob size.
//
// Available codecs:
//
//   - NoOp: passthrough, the default
//   - Zstd: best ratio; cgo-backed gozstd when available, pure-Go fallback otherwise
//   - S2: fastest, moderate ratio
//   - LZ4: fast with wide ecosystem support
//
// All codecs are stateless values safe for concurrent use; the Zstd and LZ4
// implementations pool their underlying coders internally.
package compress
