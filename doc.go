// Package jsonrepair repairs truncated JSON.
//
// Feed it an arbitrary prefix of a JSON document — possibly cut off
// mid-token, mid-string, or mid-container — and it produces a syntactically
// valid JSON document that preserves the longest prefix that was actually
// parseable, dropping whatever trailing partial structure it could not
// safely complete.
//
// The package is split into three pieces, following the grain of the
// problem: [Verifier] is a byte-at-a-time pushdown automaton that tracks
// whether the bytes fed to it so far form a valid JSON prefix; its
// Complete method derives how to turn that prefix into valid JSON by
// truncating back to the last well-formed point and appending closing
// tokens. [Builder] wraps a Verifier with an append-only byte buffer and
// exposes the result as bytes or a string. [Repair] is the one-line
// convenience wrapper around both.
//
// The package does not build a parsed value tree and does not attempt
// semantic repair (mismatched quotes, unescaped control characters,
// duplicate keys, and the like) — only the JSON grammar's structural
// skeleton is repaired.
package jsonrepair
