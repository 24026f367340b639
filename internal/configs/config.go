package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// DefaultClipboardClearSeconds is how long clipped cleartext survives when
// the config file does not say otherwise.
const DefaultClipboardClearSeconds = 13

type UserConfig struct {
	InstallUUID string    `toml:"install_uuid"`
	Store       Store     `toml:"store"`
	Staging     Staging   `toml:"staging"`
	Editor      Editor    `toml:"editor"`
	Clipboard   Clipboard `toml:"clipboard"`
}

type Store struct {
	// Root overrides the default store root (~/.password-store) when nonempty.
	Root string `toml:"root"`
}

type Staging struct {
	// Dir overrides the default staging directory ($XDG_RUNTIME_DIR) when nonempty.
	Dir string `toml:"dir"`
}

type Editor struct {
	// Command overrides $EDITOR when nonempty.
	Command string `toml:"command"`
}

type Clipboard struct {
	ClearAfterSeconds int `toml:"clear_after_seconds"`
}

// ConfigFilePath returns the path of the user config file.
func ConfigFilePath() string {
	return filepath.Join(UserPastureSettings.UserConfigsPath, "config.toml")
}

// LoadUserConfig loads the user configuration from the config file.
// A missing config file is not an error; defaults are returned.
func LoadUserConfig() (*UserConfig, error) {
	configPath := ConfigFilePath()

	config := &UserConfig{
		Clipboard: Clipboard{ClearAfterSeconds: DefaultClipboardClearSeconds},
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}

	if config.Clipboard.ClearAfterSeconds <= 0 {
		config.Clipboard.ClearAfterSeconds = DefaultClipboardClearSeconds
	}

	return config, nil
}

// SaveUserConfig saves the user configuration to the config file.
func SaveUserConfig(config *UserConfig) error {
	if err := SaveTOML(ConfigFilePath(), config); err != nil {
		return fmt.Errorf("failed to save user config: %w", err)
	}

	return nil
}

// EnsureUserConfig ensures the user configuration exists and carries an
// install UUID, generating and persisting one on first use. The UUID ties
// audit entries to one installation.
func EnsureUserConfig() (*UserConfig, error) {
	config, err := LoadUserConfig()
	if err != nil {
		return nil, err
	}

	if config.InstallUUID == "" {
		config.InstallUUID = uuid.New().String()
		if err := SaveUserConfig(config); err != nil {
			return nil, err
		}
	}

	return config, nil
}
