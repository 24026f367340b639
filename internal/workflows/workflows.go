package workflows

import (
	"os"

	"github.com/pasture-cli/pasture/internal/configs"
)

// storeRoot picks the store root: flag override first, then config, then
// the built-in default (empty string, which store.New expands to
// ~/.password-store).
func storeRoot(override string, cfg *configs.UserConfig) string {
	if override != "" {
		return override
	}
	return cfg.Store.Root
}

// stagingDir picks the staging directory: flag override, then config, then
// the built-in default (empty string, which staging.New expands to
// $XDG_RUNTIME_DIR).
func stagingDir(override string, cfg *configs.UserConfig) string {
	if override != "" {
		return override
	}
	return cfg.Staging.Dir
}

// editorCommand picks the editor: flag override, then config, then $EDITOR.
// An empty result is only an error once an edit is actually requested.
func editorCommand(override string, cfg *configs.UserConfig) string {
	if override != "" {
		return override
	}
	if cfg.Editor.Command != "" {
		return cfg.Editor.Command
	}
	return os.Getenv("EDITOR")
}
