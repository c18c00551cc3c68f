package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/tomz197/shooter/internal/config"
	"github.com/tomz197/shooter/internal/game"
	"github.com/tomz197/shooter/internal/loop"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "shooter: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.GetEnv("SHOOTER_CONFIG", config.DefaultPath))
	if err != nil {
		return err
	}
	logger, closeLog, err := config.OpenLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = uint32(time.Now().UnixNano())
	}
	opts := game.Options{
		Seed:      seed,
		Boundary:  cfg.Game.BoundaryMode(),
		ItemDrift: cfg.Game.ItemDrift,
		DebugKeys: cfg.Game.DebugKeys,
	}
	if cfg.Game.SpawnTable != "" {
		opts.Spawns, err = game.LoadSpawnTable(cfg.Game.SpawnTable)
		if err != nil {
			return err
		}
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	logger.Info("starting", "seed", opts.Seed, "boundary", opts.Boundary, "fps", cfg.Display.FPS)
	reader := bufio.NewReader(os.Stdin)
	if err := loop.Run(reader, os.Stdout, loop.Options{
		Game:   opts,
		FPS:    cfg.Display.FPS,
		Logger: logger,
	}); err != nil {
		logger.Error("game error", "err", err)
		return fmt.Errorf("game error: %w", err)
	}
	return nil
}
