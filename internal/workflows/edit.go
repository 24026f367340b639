package workflows

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pasture-cli/pasture/internal/audit"
	"github.com/pasture-cli/pasture/internal/configs"
	perrors "github.com/pasture-cli/pasture/internal/errors"
	"github.com/pasture-cli/pasture/internal/extcmd"
	"github.com/pasture-cli/pasture/internal/staging"
	"github.com/pasture-cli/pasture/internal/store"
)

// EditOptions configures the edit workflow.
type EditOptions struct {
	// Target is the symbolic name of the entry to edit. The entry may not
	// exist yet; its parent directory must.
	Target string

	// StoreRoot overrides the configured store root when nonempty.
	StoreRoot string

	// StagingDir overrides the configured staging directory when nonempty.
	StagingDir string

	// Editor overrides the configured editor when nonempty.
	Editor string
}

// EditResult contains the outcome of an edit operation.
type EditResult struct {
	// Path is the entry path that was written.
	Path string

	// Created reports that the entry did not exist before this edit.
	Created bool
}

// Edit runs the full edit flow: decrypt an existing entry into a staging
// file, open the editor on it, re-encrypt, and atomically write the new
// ciphertext back to the store. The staging entry is destroyed on every
// exit path, and a destruction failure is surfaced when no earlier error
// claimed the return.
func Edit(ctx context.Context, opts EditOptions) (result *EditResult, err error) {
	cfg, err := configs.LoadUserConfig()
	if err != nil {
		return nil, err
	}

	st, err := store.New(storeRoot(opts.StoreRoot, cfg), false)
	if err != nil {
		return nil, err
	}
	stage, err := staging.New(stagingDir(opts.StagingDir, cfg))
	if err != nil {
		return nil, err
	}

	// An existing entry must pass full leaf canonicalization, so a
	// symlinked entry can never pull cleartext from outside the root or
	// push ciphertext back out. Only a brand-new entry falls back to
	// parent-level resolution.
	existed := true
	targetPath, err := st.PathFor(opts.Target)
	if errors.Is(err, perrors.ErrEntryNotFound) {
		existed = false
		targetPath, err = st.PathForWrite(opts.Target)
	}
	if err != nil {
		return nil, err
	}

	entry, err := stage.NewEntry()
	if err != nil {
		return nil, err
	}
	defer func() {
		if rerr := entry.Remove(); rerr != nil && err == nil {
			result = nil
			err = rerr
		}
	}()

	if existed {
		cleartext, decErr := extcmd.DecryptToString(ctx, targetPath)
		if decErr != nil {
			return nil, fmt.Errorf("decrypting %s: %w", opts.Target, decErr)
		}
		if _, err = entry.Write([]byte(cleartext)); err != nil {
			return nil, err
		}
		if err = entry.Sync(); err != nil {
			return nil, err
		}
	}

	if err = extcmd.InvokeEditor(ctx, editorCommand(opts.Editor, cfg), entry.Path()); err != nil {
		return nil, err
	}
	if err = extcmd.Encrypt(ctx, entry.Path()); err != nil {
		return nil, err
	}

	ciphertext, err := staging.EncryptedSibling(entry.Path())
	if err != nil {
		return nil, err
	}
	if err = staging.RemoveEncryptedSibling(entry.Path()); err != nil {
		return nil, err
	}

	if err = atomicWrite(targetPath, ciphertext); err != nil {
		return nil, fmt.Errorf("writing %s: %w", opts.Target, err)
	}

	auditEntry := audit.LogWithInstall("edit")
	auditEntry.Target = opts.Target
	audit.Log(auditEntry)

	return &EditResult{Path: targetPath, Created: !existed}, nil
}

// atomicWrite lands data at path via a temp file and rename in the same
// directory, so a crash mid-write never leaves a truncated entry.
func atomicWrite(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".pasture-write-*")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}
