package store

import (
	"fmt"
	"strings"

	"github.com/pasture-cli/pasture/internal/ui"
)

const (
	treeBullet = "*   "
	treeIndent = "    "
)

// Tree returns the human-readable representation of the password store,
// drawn as an indented tree.
//
// Arguments:
//   - subdirectory: if nonempty, restricts the tree to branches under this
//     relative path.
//   - searchTerm: if nonempty, restricts the tree to entries whose symbolic
//     name contains it.
//
// subdirectory serves the "show" command while searchTerm serves the "find"
// command, so the two are mutually exclusive.
func (s *Store) Tree(subdirectory, searchTerm string) (string, error) {
	if subdirectory != "" && searchTerm != "" {
		return "", fmt.Errorf("subdirectory and search term are mutually exclusive")
	}

	var entries []string
	var err error
	switch {
	case subdirectory != "":
		entries, err = s.WalkSubdirectory(subdirectory)
	case searchTerm != "":
		entries, err = s.WalkSearch(searchTerm)
	default:
		entries, err = s.Walk()
	}
	if err != nil {
		return "", err
	}

	return s.renderTree(entries), nil
}

// renderTree lays out the sorted entries as a tree. Shared ancestry between
// consecutive entries is printed exactly once; no tree data structure is
// ever materialized.
func (s *Store) renderTree(entries []string) string {
	if len(entries) == 0 {
		return ""
	}

	var lines []string
	previous := s.root
	for _, entry := range entries {
		lines = append(lines, s.renderBranch(previous, entry)...)
		previous = entry
	}

	return strings.Join(lines, "\n")
}

// renderBranch lays out one branch of the tree: the components of current
// that are not shared with previous, each one indent level deeper than the
// last. A component's indent level always equals its depth in the name.
func (s *Store) renderBranch(previous, current string) []string {
	previousComponents := splitName(s.SymbolicNameFor(previous))
	currentComponents := splitName(s.SymbolicNameFor(current))

	// Seek forward past common ancestry with previous; only novel parts of
	// the branch are drawn.
	shared := 0
	for shared < len(previousComponents) && shared < len(currentComponents) &&
		previousComponents[shared] == currentComponents[shared] {
		shared++
	}

	var lines []string
	for i := shared; i < len(currentComponents); i++ {
		leaf := i == len(currentComponents)-1
		lines = append(lines, s.branchLine(currentComponents[i], i, leaf))
	}
	return lines
}

// branchLine formats one tree line. When colorization is on, ancestor lines
// are styled and leaf lines stay monochrome; the text content is identical
// either way.
func (s *Store) branchLine(component string, indent int, leaf bool) string {
	line := strings.Repeat(treeIndent, indent) + treeBullet + component
	if s.colorize && !leaf {
		return ui.Branch.Sprint(line)
	}
	return line
}

func splitName(name string) []string {
	if name == "" {
		return nil
	}
	return strings.Split(name, "/")
}
