// Package section defines the wire sections of the arico container format: the
// fixed-size header with its packed flag word, and the symbol table that lets a
// decoder rebuild the encoder's model.
//
// Blob layout:
//
//	+--------------------+  offset 0
//	| Header (32 bytes)  |  flag word, model/compression types, counts,
//	|                    |  alphabet fingerprint, payload checksum
//	+--------------------+  offset 32
//	| Symbol table       |  per symbol (alphabet order): varstring + uvarint prior
//	+--------------------+
//	| Code payload       |  packed code bits, optionally compressed
//	+--------------------+
//
// The symbol table and code payload are compressed together as one unit when
// compression is enabled; the header is never compressed.
package section
