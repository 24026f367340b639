package workflows

import (
	"context"
	"fmt"

	"github.com/pasture-cli/pasture/internal/audit"
	"github.com/pasture-cli/pasture/internal/configs"
	"github.com/pasture-cli/pasture/internal/extcmd"
	"github.com/pasture-cli/pasture/internal/store"
)

// ShowOptions configures the show workflow.
type ShowOptions struct {
	// Target is a symbolic entry name or a store subdirectory. Empty means
	// the whole store.
	Target string

	// Dest selects where decrypted cleartext goes.
	Dest extcmd.Destination

	// StoreRoot overrides the configured store root when nonempty.
	StoreRoot string

	// Colorize styles ancestor lines of rendered trees.
	Colorize bool
}

// ShowResult contains the outcome of a show operation.
type ShowResult struct {
	// Tree holds the rendered tree when the target named a subdirectory
	// (or was empty). Empty stores render as the empty string.
	Tree string

	// Delivered reports that cleartext was decrypted and delivered.
	Delivered bool

	// ClipTimerSeconds is nonzero when the caller owes the user a
	// clipboard countdown before clearing.
	ClipTimerSeconds int
}

// Show renders a subdirectory tree, or decrypts one entry and delivers its
// cleartext.
//
// A target can name both an entry and a subdirectory; the ambiguity is
// resolved by preferring tree-render success. Only when no tree can be
// drawn does Show resolve the target as an entry.
func Show(ctx context.Context, opts ShowOptions) (*ShowResult, error) {
	cfg, err := configs.LoadUserConfig()
	if err != nil {
		return nil, err
	}

	st, err := store.New(storeRoot(opts.StoreRoot, cfg), opts.Colorize)
	if err != nil {
		return nil, err
	}

	if render, err := st.Tree(opts.Target, ""); err == nil {
		entry := audit.LogWithInstall("show")
		entry.Target = opts.Target
		audit.Log(entry)
		return &ShowResult{Tree: render}, nil
	}

	path, err := st.PathFor(opts.Target)
	if err != nil {
		return nil, err
	}

	cleartext, err := extcmd.DecryptToString(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("decrypting %s: %w", opts.Target, err)
	}
	if err := extcmd.Deliver(ctx, cleartext, opts.Dest); err != nil {
		return nil, err
	}

	entry := audit.LogWithInstall("show")
	entry.Target = opts.Target
	entry.Destination = string(opts.Dest)
	audit.Log(entry)

	result := &ShowResult{Delivered: true}
	if opts.Dest == extcmd.DestClip {
		result.ClipTimerSeconds = cfg.Clipboard.ClearAfterSeconds
	}
	return result, nil
}
