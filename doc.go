// Package jsondelta calculates & applies minimal, deterministic edit scripts
// between structured documents.
//
// Documents are trees of Values: two compound types, arrays & objects, and
// four scalar types: null, bool, number and string. Decoded JSON or YAML
// converts to a Value tree with FromInterface, ParseJSON or ParseYAML, so
// documents encoded in different formats can be compared.
//
// Diff walks two trees together. Objects are compared key by key in sorted
// order. Arrays are aligned on their longest common subsequence (LCS), and
// the unmatched runs between aligned elements become bursts of adds and
// removes. Anything else that changed is replaced whole. The result is a
// list of Operations addressed by Pointers, wire compatible with JSON Patch
// (RFC 6902) plus an optional "oldValue" member that records what a remove
// or replace overwrote:
//
//	[{"op": "add", "path": "/b", "value": 2}]
//
// Patch applies Operations to a copy of a document, supporting add, remove,
// replace, move, copy & test. Patching the left document of a diff with its
// result always reproduces the right document.
//
// Every function in this package is synchronous and keeps no state between
// calls, so it's safe to use from multiple goroutines. LCS runs in
// O(len(left)*len(right)) time & keeps only two rows of its table, bounding
// memory by the shorter input.
package jsondelta
