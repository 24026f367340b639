package audit

import (
	"os"
	"testing"

	"github.com/pasture-cli/pasture/internal/configs"
)

// withTempConfigDir points the audit log at a temp directory.
func withTempConfigDir(t *testing.T) string {
	t.Helper()
	tempDir, err := os.MkdirTemp("", "pasture-audit-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	original := configs.UserPastureSettings
	configs.UserPastureSettings = &configs.UserSettings{UserConfigsPath: tempDir}
	t.Cleanup(func() {
		configs.UserPastureSettings = original
		os.RemoveAll(tempDir)
	})
	return tempDir
}

func TestLogCreatesFile(t *testing.T) {
	withTempConfigDir(t)

	Log(Entry{
		InstallUUID: "test-uuid",
		Operation:   "edit",
		Target:      "email/work",
	})

	if _, err := os.Stat(LogPath()); os.IsNotExist(err) {
		t.Fatal("Audit log file was not created")
	}
}

func TestLogAppendsEntries(t *testing.T) {
	withTempConfigDir(t)

	Log(Entry{Operation: "show", Target: "email/work", Destination: "stdout"})
	Log(Entry{Operation: "find", SearchTerm: "email"})

	entries, err := ReadEntries()
	if err != nil {
		t.Fatalf("Failed to read entries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got: %d", len(entries))
	}
	if entries[0].Operation != "show" || entries[0].Target != "email/work" {
		t.Errorf("Unexpected first entry: %+v", entries[0])
	}
	if entries[1].Operation != "find" || entries[1].SearchTerm != "email" {
		t.Errorf("Unexpected second entry: %+v", entries[1])
	}
	if entries[0].Timestamp == "" {
		t.Error("Expected Log to stamp entries with a timestamp")
	}
}

func TestReadEntriesMissingLog(t *testing.T) {
	withTempConfigDir(t)

	entries, err := ReadEntries()
	if err != nil {
		t.Fatalf("Expected no error for missing log, got: %v", err)
	}
	if entries != nil {
		t.Errorf("Expected nil entries, got: %v", entries)
	}
}

func TestParseEntriesSkipsMalformedLines(t *testing.T) {
	data := []byte(`{"op":"show","target":"a"}
not json
{"op":"edit","target":"b"}
`)
	entries, err := ParseEntries(data)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got: %d", len(entries))
	}
	if entries[1].Target != "b" {
		t.Errorf("Expected second target %q, got: %q", "b", entries[1].Target)
	}
}
