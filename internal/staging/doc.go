// Package staging manages the permission-hardened directory that holds
// decrypted secret material while an entry is edited or decrypted.
//
// The staging directory defaults to $XDG_RUNTIME_DIR (a tmpfs private to
// the user on most systems) and must carry permission mode exactly 0700;
// any other mode is a hard construction error, never silently corrected.
//
// Staging entries are uniquely named files with the pasture-cleartext-
// prefix and no extension. Each Entry owns its file and deletes it in
// Remove; callers defer Remove immediately after acquisition so that every
// exit path, normal or failing, reclaims the cleartext. Removal failures
// are surfaced, not swallowed.
//
// The external encrypt step writes ciphertext alongside a staging file
// under the store's extension marker; EncryptedSibling and
// RemoveEncryptedSibling consume that output.
package staging
