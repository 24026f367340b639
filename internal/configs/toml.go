package configs

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// SaveTOML encodes data into a TOML file at path. The parent directory is
// created when missing, private to the user like the rest of the config
// tree.
func SaveTOML(path string, data interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(data)
}

// LoadTOML decodes the TOML file at path into data.
func LoadTOML(path string, data interface{}) error {
	_, err := toml.DecodeFile(path, data)
	return err
}
