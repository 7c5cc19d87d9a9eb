package config

import (
	"os"
	"path/filepath"
)

// GetHome returns TERMDOCK_HOME or ~/.termdock default
func GetHome() string {
	home := os.Getenv("TERMDOCK_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".termdock"
		}
		return filepath.Join(homeDir, ".termdock")
	}
	return ExpandPath(home)
}

// GetDBPath returns $TERMDOCK_HOME/state.db
func GetDBPath() string {
	return filepath.Join(GetHome(), "state.db")
}

// GetOrderDBPath returns $TERMDOCK_HOME/orders.db, used by the bolt order backend
func GetOrderDBPath() string {
	return filepath.Join(GetHome(), "orders.db")
}

// GetSettingsPath returns $TERMDOCK_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
