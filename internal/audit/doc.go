// Package audit provides audit trail logging for pasture operations.
//
// Every user-facing operation (show, edit, find) is recorded in a per-user
// audit log. Entries record which names were touched and when; decrypted
// material never reaches the log.
//
// # Log Format
//
// The audit log is stored as JSON Lines (one JSON object per line) at:
//
//	~/.config/pasture/audit.jsonl
//
// Each entry contains a UTC timestamp, the install UUID, the operation
// name, and operation-specific details (target name, search term,
// delivery destination).
//
// # Failure Handling
//
// Audit logging is best-effort. If logging fails (permissions, disk full,
// etc.), the operation continues without error.
//
// # Reading Logs
//
// Use ReadEntries() to parse the audit log for display or analysis.
// Malformed entries are silently skipped to handle partial writes.
package audit
