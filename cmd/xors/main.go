package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/kiryu-dev/xors/internal/adapters/console"
	"github.com/kiryu-dev/xors/internal/adapters/report"
	"github.com/kiryu-dev/xors/internal/config"
	"github.com/kiryu-dev/xors/internal/domain"
	"github.com/kiryu-dev/xors/internal/usecase/game"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	exitOK          = 0
	exitGameError   = 1
	exitConfigError = 2
	exitInterrupted = 130
)

func main() {
	os.Exit(run())
}

func run() int {
	cfgPath := flag.String("config", "", "path to config")
	reportPath := flag.String("report", "", "write the game report as json to this path ('-' for stdout)")
	flag.Parse()
	cfg, err := config.New(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config: "+err.Error())
		return exitConfigError
	}
	if *reportPath != "" {
		cfg.ReportPath = *reportPath
	}
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "build logger: "+err.Error())
		return exitConfigError
	}
	defer func() {
		_ = logger.Sync()
	}()

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	logger.Info("random seed", zap.Uint64("seed", seed))
	var (
		rnd        = rand.New(rand.NewPCG(seed, seed))
		reader     = console.NewReader(os.Stdin, os.Stdout)
		renderer   = console.NewRenderer(os.Stdout)
		controller = game.New(logger, game.WithInputRetries(cfg.InputRetries), game.WithRenderer(renderer))
	)
	for _, playerCfg := range []config.PlayerConfig{cfg.Player1, cfg.Player2} {
		player, err := newMoveSource(playerCfg, reader, rnd)
		if err != nil {
			logger.Error(err.Error())
			return exitConfigError
		}
		if err := controller.RegisterPlayer(player); err != nil {
			logger.Error(err.Error())
			return exitConfigError
		}
	}
	if err := renderer.Render(domain.Board{}); err != nil {
		logger.Warn(err.Error())
	}

	sigChan := make(chan os.Signal, 2)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})
	var (
		result  domain.GameResult
		playErr error
	)
	go func() {
		defer close(done)
		result, playErr = controller.Play(context.Background())
	}()
	errGroup := new(errgroup.Group)
	errGroup.Go(func() error {
		select {
		case s := <-sigChan:
			return errors.Errorf("captured signal: %v", s)
		case <-done:
			return nil
		}
	})
	if err := errGroup.Wait(); err != nil {
		logger.Info("game interrupted: "+err.Error(), zap.Uint32("rounds", controller.Rounds()))
		return exitInterrupted
	}
	return finish(logger, renderer, cfg.ReportPath, result, playErr)
}

func finish(logger *zap.Logger, renderer announcer, reportPath string, result domain.GameResult, playErr error) int {
	code := exitOK
	if playErr != nil {
		logger.Error("game failed", zap.Error(playErr))
		code = exitGameError
	}
	if err := renderer.Announce(result); err != nil {
		logger.Warn(err.Error())
	}
	if reportPath != "" {
		if err := report.New(reportPath).Write(result); err != nil {
			logger.Error(err.Error())
			return exitGameError
		}
	}
	return code
}

type announcer interface {
	Announce(result domain.GameResult) error
}

func newLogger(level string) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	zapCfg.Level = lvl
	return zapCfg.Build()
}
