package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tabletennis/internal/config"
	"github.com/vovakirdan/tabletennis/internal/logging"
	"github.com/vovakirdan/tabletennis/internal/platform/term"
	"github.com/vovakirdan/tabletennis/internal/platform/tui"
	"github.com/vovakirdan/tabletennis/internal/tabletennis"
)

const (
	frontendTerm = "term"
	frontendTea  = "tea"
)

func runPlay(cmd *cobra.Command, _ []string) error {
	if flagFrontend != frontendTerm && flagFrontend != frontendTea {
		return fmt.Errorf("unknown frontend %q (expected %q or %q)", flagFrontend, frontendTerm, frontendTea)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger, closer := logging.New(logging.Options{
		File:       flagLogFile,
		Debug:      flagDebug,
		MaxSizeMB:  flagLogMaxSize,
		MaxBackups: flagLogMaxBackups,
	})
	defer closer.Close()

	// Ctrl+C arrives as a key in raw mode; SIGTERM and SIGHUP end the session here.
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	if flagFrontend == frontendTea {
		err = playTea(ctx, cfg, logger)
	} else {
		err = playTerm(ctx, cfg, logger)
	}

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func playTerm(ctx context.Context, cfg config.Config, logger *log.Logger) error {
	t, err := term.Open()
	if err != nil {
		return err
	}
	defer t.Close()

	game, err := tabletennis.New(t, cfg, logger)
	if err != nil {
		return err
	}
	return game.Play(ctx, t)
}

func playTea(ctx context.Context, cfg config.Config, logger *log.Logger) error {
	screen := tui.NewScreen()
	game, err := tabletennis.New(screen, cfg, logger)
	if err != nil {
		return err
	}

	err = tui.Run(ctx, game, screen, cfg.Tick.Timeout(), logger)
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
