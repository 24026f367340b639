// Package configs manages pasture's user configuration.
//
// Configuration lives in a single TOML file at ~/.config/pasture/config.toml
// (following os.UserConfigDir). Everything in it is optional:
//
//	install_uuid = "generated on first use"
//
//	[store]
//	root = "/home/me/.password-store"
//
//	[staging]
//	dir = "/run/user/1000"
//
//	[editor]
//	command = "nvim"
//
//	[clipboard]
//	clear_after_seconds = 13
//
// Command-line flags override config values, which override built-in
// defaults. The install UUID identifies this installation in audit entries
// and is generated and persisted by EnsureUserConfig.
package configs
