// Package bootstrap wires the pieces every cardsort binary starts from:
// configuration, logging, the collection store and the board file.
package bootstrap

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"cardsort/internal/adapters/filesystem"
	"cardsort/internal/application"
	"cardsort/internal/config"
	"cardsort/internal/domain"
	"cardsort/internal/logging"
	"cardsort/internal/ports"
)

// Env is a ready-to-use store plus the settings it was built from
type Env struct {
	Config *config.Config
	Logger *zap.Logger
	Store  *application.Store

	// Repo is nil when no board file is configured
	Repo ports.BoardRepository
}

// Open loads configuration from cfgFile, lets boardPath override the
// configured board file, and fills the store from that file. A missing
// board file starts from the demo board when seed_demo is set.
func Open(cfgFile, boardPath string) (*Env, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if boardPath != "" {
		cfg.BoardPath = config.ExpandHome(boardPath)
	}

	logger, err := logging.New(cfg)
	if err != nil {
		return nil, err
	}

	opts := []application.StoreOption{application.WithLogger(logger)}
	if cfg.InvariantChecks {
		opts = append(opts, application.WithInvariantChecks())
	}
	env := &Env{
		Config: cfg,
		Logger: logger,
		Store:  application.NewStore(opts...),
	}

	board, err := env.initialBoard()
	if err != nil {
		return nil, err
	}
	if err := env.Store.Load(board); err != nil {
		return nil, fmt.Errorf("failed to load board: %w", err)
	}
	return env, nil
}

func (e *Env) initialBoard() (domain.Board, error) {
	empty := domain.Board{Unfiled: []domain.Item{}, Categories: []domain.Category{}}

	if e.Config.BoardPath != "" {
		repo := filesystem.NewRepository(e.Config.BoardPath)
		e.Repo = repo

		board, err := repo.Load()
		if err == nil {
			e.Logger.Info("board opened", zap.String("path", repo.Path()))
			return board, nil
		}
		if !errors.Is(err, filesystem.ErrNoBoard) {
			return domain.Board{}, err
		}
		e.Logger.Info("starting a new board", zap.String("path", repo.Path()))
	}

	if e.Config.SeedDemo {
		return domain.DemoBoard(), nil
	}
	return empty, nil
}

// Save writes board to the board file, if one is configured
func (e *Env) Save(board domain.Board) error {
	if e.Repo == nil {
		return nil
	}
	if err := e.Repo.Save(board); err != nil {
		return err
	}
	e.Logger.Debug("board saved", zap.Int("cards", board.ItemCount()))
	return nil
}

// Close flushes the logger
func (e *Env) Close() {
	_ = e.Logger.Sync()
}
