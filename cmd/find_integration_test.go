package cmd

import (
	"strings"
	"testing"
)

func TestFindCommandRendersMatchingTree(t *testing.T) {
	overrideUserSettings(t)
	root := makeTestStore(t)
	addStoreEntry(t, root, "a")
	addStoreEntry(t, root, "b")
	addStoreEntry(t, root, "b/a")
	addStoreEntry(t, root, "d/a")
	t.Cleanup(func() { resetCommandState(FindCmd) })

	output, err := captureOutput(func() error {
		FindCmd.SetArgs([]string{"a", "--store", root})
		return FindCmd.Execute()
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	want := "*   a\n" +
		"*   b\n" +
		"    *   a\n" +
		"*   d\n" +
		"    *   a\n"
	if !strings.Contains(output, want) {
		t.Errorf("Expected output to contain the match tree.\nGot:\n%s", output)
	}
	if strings.Contains(output, "*   e") {
		t.Errorf("Expected non-matching entries to be excluded.\nGot:\n%s", output)
	}
}

func TestFindCommandReportsNoMatches(t *testing.T) {
	overrideUserSettings(t)
	root := makeTestStore(t)
	addStoreEntry(t, root, "alpha")
	t.Cleanup(func() { resetCommandState(FindCmd) })

	output, err := captureOutput(func() error {
		FindCmd.SetArgs([]string{"zzz", "--store", root})
		return FindCmd.Execute()
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !strings.Contains(output, "No entries match") {
		t.Errorf("Expected a no-match message.\nGot:\n%s", output)
	}
}

func TestFindCommandFailsWithoutStore(t *testing.T) {
	overrideUserSettings(t)
	t.Cleanup(func() { resetCommandState(FindCmd) })

	output, err := captureOutput(func() error {
		FindCmd.SetArgs([]string{"a", "--store", "/nonexistent/pasture-store"})
		return FindCmd.Execute()
	})
	if err == nil {
		t.Fatal("Expected an error for a missing store")
	}
	if !strings.Contains(output, "The password store does not exist") {
		t.Errorf("Expected a missing-store message.\nGot:\n%s", output)
	}
}
