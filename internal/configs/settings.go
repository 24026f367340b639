package configs

import (
	"log"
	"os"
	"path/filepath"
)

type UserSettings struct {
	UserConfigsPath string
}

var UserPastureSettings *UserSettings

func init() {
	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	// This is independent of which store is in use, so it is ok to init here.
	UserPastureSettings = &UserSettings{
		UserConfigsPath: filepath.Join(configDir, "pasture"),
	}
}
