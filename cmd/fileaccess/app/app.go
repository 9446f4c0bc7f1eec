// Package app wires configuration into the objects the commands use.
package app

import (
	"io"
	"log/slog"

	"github.com/jmgilman/fileaccess/access"
	"github.com/jmgilman/fileaccess/cmd/fileaccess/app/demo"
	"github.com/jmgilman/fileaccess/config"
	ferrors "github.com/jmgilman/fileaccess/errors"
	"github.com/jmgilman/fileaccess/fs/core"
	"github.com/jmgilman/fileaccess/internal/logging"
)

// App holds everything a command needs.
type App struct {
	Config   *config.Config
	FS       core.FS
	Accessor *access.Accessor
	Logger   *slog.Logger
}

// New builds an App from cfg. Status lines go to out unless cfg.Quiet is
// set; logs go to logOut.
func New(cfg *config.Config, out, logOut io.Writer) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.New(logOut, level).With("backend", cfg.Backend)

	fsys, err := config.NewFS(cfg)
	if err != nil {
		return nil, err
	}

	var reporter access.Reporter = access.NopReporter{}
	if !cfg.Quiet {
		reporter = access.NewConsoleReporter(out)
	}

	opts := []access.Option{
		access.WithReporter(reporter),
		access.WithLogger(logger),
	}
	if cfg.Backend == config.BackendMinIO {
		opts = append(opts, access.WithBaseDir(cfg.MinIO.Prefix))
	}

	return &App{
		Config:   cfg,
		FS:       fsys,
		Accessor: access.New(fsys, opts...),
		Logger:   logger,
	}, nil
}

// Seed copies the embedded demo files into the filesystem and returns their
// paths.
func (a *App) Seed() ([]string, error) {
	if err := core.CopyFromFS(demo.FS(), a.FS, "."); err != nil {
		return nil, ferrors.Wrap(err, ferrors.Classify(err), "failed to seed demo files")
	}
	names, err := demo.Names()
	if err != nil {
		return nil, err
	}
	a.Logger.Debug("seeded demo files", "count", len(names))
	return names, nil
}
