// Package cmd contains testing utilities shared between integration tests.
// This file provides common functions for setting up fixture stores,
// capturing output, and resetting command state between runs.
package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/pasture-cli/pasture/internal/configs"
)

// overrideUserSettings points the config layer at a fresh temp directory so
// tests never touch the real user config or audit log.
func overrideUserSettings(t *testing.T) {
	t.Helper()

	configDir, err := os.MkdirTemp("", "pasture-cmd-config-*")
	if err != nil {
		t.Fatalf("Failed to create temp config dir: %v", err)
	}

	original := configs.UserPastureSettings
	configs.UserPastureSettings = &configs.UserSettings{UserConfigsPath: configDir}
	t.Cleanup(func() {
		configs.UserPastureSettings = original
		os.RemoveAll(configDir)
	})
}

// makeTestStore creates a temporary password store root.
func makeTestStore(t *testing.T) string {
	t.Helper()

	root, err := os.MkdirTemp("", "pasture-cmd-store-*")
	if err != nil {
		t.Fatalf("Failed to create temp store: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(root) })
	return root
}

// addStoreEntry drops an encrypted entry with the given symbolic name into
// the store, creating intermediate folders as needed.
func addStoreEntry(t *testing.T, root, name string) {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(name)+".gpg")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create entry dir: %v", err)
	}
	if err := os.WriteFile(path, []byte("ciphertext"), 0o644); err != nil {
		t.Fatalf("Failed to create entry: %v", err)
	}
}

// resetCommandState restores the shared globals and clears the sticky
// Changed bit on every flag, so one test's flags never leak into the next.
func resetCommandState(cmds ...*cobra.Command) {
	ResetGlobalState()
	for _, c := range cmds {
		c.Flags().VisitAll(func(f *pflag.Flag) {
			f.Changed = false
		})
	}
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	outputChan := make(chan string, 2)

	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, stdoutReader) //nolint:errcheck
		outputChan <- buf.String()
	}()
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, stderrReader) //nolint:errcheck
		outputChan <- buf.String()
	}()

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	output := <-outputChan
	output += <-outputChan

	return output, err
}
