package workflows

import (
	"context"

	"github.com/pasture-cli/pasture/internal/audit"
	"github.com/pasture-cli/pasture/internal/configs"
	"github.com/pasture-cli/pasture/internal/store"
)

// FindOptions configures the find workflow.
type FindOptions struct {
	// Term filters entries to those whose symbolic name contains it.
	Term string

	// StoreRoot overrides the configured store root when nonempty.
	StoreRoot string

	// Colorize styles ancestor lines of the rendered tree.
	Colorize bool
}

// FindResult contains the outcome of a find operation.
type FindResult struct {
	// Tree is the rendered tree of matching entries; empty when nothing
	// matched.
	Tree string
}

// Find renders the tree of entries whose symbolic name contains the search
// term.
func Find(ctx context.Context, opts FindOptions) (*FindResult, error) {
	cfg, err := configs.LoadUserConfig()
	if err != nil {
		return nil, err
	}

	st, err := store.New(storeRoot(opts.StoreRoot, cfg), opts.Colorize)
	if err != nil {
		return nil, err
	}

	render, err := st.Tree("", opts.Term)
	if err != nil {
		return nil, err
	}

	entry := audit.LogWithInstall("find")
	entry.SearchTerm = opts.Term
	audit.Log(entry)

	return &FindResult{Tree: render}, nil
}
