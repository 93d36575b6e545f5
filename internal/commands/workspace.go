package commands

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ruminaider/quotesync/internal/config"
	"github.com/ruminaider/quotesync/internal/paths"
	"github.com/ruminaider/quotesync/internal/remote"
	"github.com/ruminaider/quotesync/internal/repository"
	"github.com/ruminaider/quotesync/internal/store"
	qsync "github.com/ruminaider/quotesync/internal/sync"
)

// Workspace is everything one invocation needs: the loaded config, the opened
// store and the initialized repository.
type Workspace struct {
	DataDir string
	Config  config.Config
	Store   store.Store
	Repo    *repository.Repository
	Logger  *zap.Logger
}

// Open loads <dataDir>/config.yaml and opens the workspace it describes.
func Open(dataDir string, logger *zap.Logger) (*Workspace, error) {
	cfg, err := config.Load(paths.ConfigFile(dataDir))
	if err != nil {
		return nil, err
	}
	return OpenWithConfig(dataDir, cfg, logger)
}

// OpenWithConfig opens the store named by cfg under dataDir and loads the
// repository from it, seeding defaults on first run.
func OpenWithConfig(dataDir string, cfg config.Config, logger *zap.Logger) (*Workspace, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	st, err := store.Open(cfg.Store, paths.StoreDir(dataDir), logger.Named("store"))
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	repo := repository.New(st, repository.WithLogger(logger.Named("repository")))
	if err := repo.Init(); err != nil {
		st.Close()
		return nil, err
	}
	return &Workspace{
		DataDir: dataDir,
		Config:  cfg,
		Store:   st,
		Repo:    repo,
		Logger:  logger,
	}, nil
}

// Close releases the store.
func (w *Workspace) Close() error {
	return w.Store.Close()
}

// Transport builds the HTTP transport described by the config.
func (w *Workspace) Transport() remote.Transport {
	return remote.NewHTTPTransport(
		w.Config.Remote.ReadURL,
		w.Config.Remote.WriteURL,
		remote.WithTimeout(w.Config.Remote.Timeout),
	)
}

// Engine builds a sync engine over the workspace repository.
func (w *Workspace) Engine(notifier qsync.Notifier) *qsync.Engine {
	return qsync.NewEngine(w.Repo, w.Transport(), qsync.Options{
		PullInterval:   w.Config.Sync.PullInterval,
		PushInterval:   w.Config.Sync.PushInterval,
		PageLimit:      w.Config.Remote.PageLimit,
		ServerCategory: w.Config.Remote.ServerCategory,
	}, qsync.WithNotifier(notifier), qsync.WithLogger(w.Logger.Named("sync")))
}
