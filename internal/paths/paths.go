package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvDataDir overrides the data directory.
const EnvDataDir = "QUOTESYNC_DIR"

// DataDir returns $QUOTESYNC_DIR, or ~/.quotesync when unset. It fails when
// neither the variable nor a home directory is available.
func DataDir() (string, error) {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving data directory (set %s or --dir): %w", EnvDataDir, err)
	}
	return filepath.Join(home, ".quotesync"), nil
}

// ConfigFile returns <dataDir>/config.yaml.
func ConfigFile(dataDir string) string {
	return filepath.Join(dataDir, "config.yaml")
}

// StoreDir returns <dataDir>/store, where the persistent store lives.
func StoreDir(dataDir string) string {
	return filepath.Join(dataDir, "store")
}

// LogFile returns <dataDir>/quotesync.log.
func LogFile(dataDir string) string {
	return filepath.Join(dataDir, "quotesync.log")
}
