package main

import (
	"os"
	"time"

	"github.com/minaorangina/splendor/catalog"
	"github.com/minaorangina/splendor/config"
	"github.com/minaorangina/splendor/deck"
	"github.com/minaorangina/splendor/engine"
	"github.com/minaorangina/splendor/game"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		config.Exitf("Could not read configuration: %v", err)
	}

	logger, err := cfg.Logger()
	if err != nil {
		config.Exitf("Could not build logger: %v", err)
	}
	defer logger.Sync()

	cards, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		logger.Fatal("Could not load catalog", zap.String("path", cfg.CatalogPath), zap.Error(err))
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Info("starting", zap.Int("players", cfg.Players), zap.Uint64("seed", seed))

	g, err := game.New(cfg.Players,
		game.WithLogger(logger),
		game.WithRand(rand.New(rand.NewSource(seed))),
	)
	if err != nil {
		logger.Fatal("Could not initialise a new game", zap.Error(err))
	}
	if err := g.Setup(cards); err != nil {
		logger.Fatal("Could not set up the game", zap.Error(err))
	}

	if err := engine.NewConsole(g, os.Stdin, os.Stdout, logger).Run(); err != nil {
		logger.Fatal("Console stopped", zap.Error(err))
	}
}

func loadCatalog(path string) ([]*deck.Card, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}
