// Package store resolves symbolic entry names against the password store
// and renders the store as a tree.
//
// A password store is a directory tree of gpg-encrypted files. Entries are
// addressed by symbolic names: store-relative, slash-separated paths with
// no extension, e.g. "email/work" for <root>/email/work.gpg.
//
// # Containment
//
// Every resolved path is canonicalized (symlinks and ".." resolved) and
// then required to lie under the canonical store root. A name containing
// ".." that resolves back inside the root is permitted; one that escapes,
// lexically or through a symlink pointing outside, is rejected with
// ErrPathEscape. The comparison is component-wise, never a raw string
// prefix.
//
// # Tree rendering
//
// Walks return entries sorted ascending by absolute path, and rendering
// depends on that adjacency: consecutive entries share ancestry exactly
// when their sorted names do, so the renderer walks a previous-entry cursor
// through the list and prints only the novel suffix of each name. Four
// spaces per level, a "*   " bullet per line.
package store
