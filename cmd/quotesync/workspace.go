package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ruminaider/quotesync/internal/commands"
	"github.com/ruminaider/quotesync/internal/config"
	"github.com/ruminaider/quotesync/internal/logging"
	"github.com/ruminaider/quotesync/internal/paths"
)

func dataDir() (string, error) {
	if dataDirFlag != "" {
		return dataDirFlag, nil
	}
	return paths.DataDir()
}

// openWorkspace loads the config, builds the logger it describes and opens
// the workspace. The returned func closes both.
func openWorkspace() (*commands.Workspace, func(), error) {
	dir, err := dataDir()
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(paths.ConfigFile(dir))
	if err != nil {
		return nil, nil, err
	}

	logCfg := cfg.Log
	if logCfg.File == "" {
		logCfg.File = paths.LogFile(dir)
	}
	var console io.Writer
	if verbose {
		console = os.Stderr
	}
	logger, closeLog, err := logging.New(logCfg, console)
	if err != nil {
		return nil, nil, fmt.Errorf("setting up logging: %w", err)
	}

	ws, err := commands.OpenWithConfig(dir, cfg, logger)
	if err != nil {
		closeLog()
		return nil, nil, err
	}
	return ws, func() {
		ws.Close()
		closeLog()
	}, nil
}
