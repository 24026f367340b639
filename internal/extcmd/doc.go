// Package extcmd wraps the external tools pasture orchestrates: gpg for
// decryption and encryption, the user's editor, qrencode for QR delivery,
// and the system clipboard.
//
// These functions don't share a real logical connection, but they share a
// common implementation in that they act outside the main body of pasture
// through external binaries. A nonzero exit code or a terminating signal
// from any of them surfaces as the same ErrSubprocess kind; callers treat
// external failures uniformly regardless of which tool produced them.
//
// Cryptography itself never happens in-process: gpg owns the keys and the
// ciphertext format.
package extcmd
