// cmd/tty/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"go-missile-defense/internal/app"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/logging"
	"go-missile-defense/internal/tty"
	"go-missile-defense/internal/utils"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "Path to settings YAML (empty = use defaults)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	logFile := flag.String("log-file", "", "Write log to this file (empty = no log)")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load settings: %v\n", err)
		os.Exit(1)
	}
	if *seed != 0 {
		settings.Seed = *seed
	}

	logger := zap.NewNop()
	if *logFile != "" {
		logger, err = logging.NewFile(settings.Log.Level, settings.Log.Development, *logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
			os.Exit(1)
		}
	}
	defer func() { _ = logger.Sync() }()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.HideCursor()

	prng := utils.NewPRNGService(settings.Seed)
	game := app.NewGame(prng)
	game.EventDispatcher.SubscribeAll(logging.NewEventLogger(logger))
	logger.Info("terminal game started", zap.Int64("seed", prng.Seed()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = tty.NewHost(screen, game, logger).Run(ctx)
	stop()
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("terminal host stopped", zap.Error(err))
		os.Exit(1)
	}
}
