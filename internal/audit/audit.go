package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/pasture-cli/pasture/internal/configs"
)

// Entry represents a single audit log entry. Cleartext never appears here;
// only operation names and entry names are recorded.
type Entry struct {
	Timestamp   string `json:"ts"`   // RFC3339 with microseconds.
	InstallUUID string `json:"uuid"` // UUID of the installation performing the action.
	Operation   string `json:"op"`   // Operation name: show, edit, find.

	// Optional fields depending on operation.
	Target      string `json:"target,omitempty"`      // For show/edit.
	SearchTerm  string `json:"search_term,omitempty"` // For find.
	Destination string `json:"dest,omitempty"`        // For show: stdout, clip, qr.
}

// Log appends an entry to the audit log.
// Logging is best-effort: operations must not fail just because the audit
// log could not be written.
func Log(entry Entry) {
	// Set timestamp if not already set.
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	logPath := LogPath()
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return
	}

	// Open file for appending (create if doesn't exist). The log names
	// entries a user touched, so it is private to the user.
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// LogWithInstall is a convenience function that populates the install UUID
// from the user config.
func LogWithInstall(op string) Entry {
	entry := Entry{Operation: op}

	userConfig, err := configs.EnsureUserConfig()
	if err != nil {
		return entry
	}

	entry.InstallUUID = userConfig.InstallUUID
	return entry
}

// LogPath returns the path to the audit log file.
func LogPath() string {
	return filepath.Join(configs.UserPastureSettings.UserConfigsPath, "audit.jsonl")
}

// ReadEntries reads all entries from the audit log.
// Returns an empty slice if the log doesn't exist.
func ReadEntries() ([]Entry, error) {
	data, err := os.ReadFile(LogPath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into audit entries.
// Malformed lines are silently skipped to handle partial writes.
func ParseEntries(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	start := 0

	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1

			if len(line) == 0 {
				continue
			}

			var entry Entry
			if err := json.Unmarshal(line, &entry); err != nil {
				// Skip malformed entries.
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}
