package commands

import (
	"fmt"
	"os"

	"github.com/ruminaider/quotesync/internal/config"
	"github.com/ruminaider/quotesync/internal/paths"
)

// InitConfig writes the default config to <dataDir>/config.yaml. An existing
// file is only replaced when force is set.
func InitConfig(dataDir string, force bool) (string, error) {
	path := paths.ConfigFile(dataDir)
	if _, err := os.Stat(path); err == nil && !force {
		return "", fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", fmt.Errorf("creating data directory: %w", err)
	}
	if err := config.Write(path, config.Default()); err != nil {
		return "", err
	}
	return path, nil
}
