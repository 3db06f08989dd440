// Package store implements the directory-backed fragment store for
// wpa-netman.
//
// Each network fragment lives in its own file, <ssid>.conf, inside a
// configurable networks directory. The store supports create with an
// overwrite guard, read, delete, enumeration, and a raw merge of all
// fragment contents for document assembly.
//
// # Semantics
//
//   - Write refuses to replace an existing fragment unless overwrite is
//     requested (ALREADY_EXISTS)
//   - Delete checks existence explicitly before removing (NOT_FOUND)
//   - List and MergeAll follow directory listing order; no extra sort
//     is imposed on top of it
//   - MergeAll passes file contents through verbatim, so manual edits
//     survive assembly unmodified
//
// The existence-check-then-act pattern is not transactional. Concurrent
// invocations of the tool can interleave between the check and the
// write/remove; this race is documented and accepted rather than hidden
// behind locks.
package store
