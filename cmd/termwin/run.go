package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/dshills/termwin/internal/config"
	"github.com/dshills/termwin/internal/logging"
	"github.com/dshills/termwin/internal/renderer/backend"
	"github.com/dshills/termwin/internal/ui"
)

var errNotTerminal = errors.New("standard input is not a terminal")

// builder lays out a demo's windows on s. The returned cleanup, if any,
// runs after the loop ends and before the screen is torn down.
type builder func(s *ui.Screen) (cleanup func(), err error)

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.DefaultPath()
}

func loadConfig() (string, config.Config, error) {
	path, err := resolveConfigPath()
	if err != nil {
		return "", config.Config{}, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return path, config.Config{}, err
	}
	if debugMode {
		cfg.Log.Level = "debug"
	}
	return path, cfg, nil
}

func checkConfig() (string, error) {
	path, _, err := loadConfig()
	return path, err
}

func writeDefaultConfig(force bool) (string, error) {
	path, err := resolveConfigPath()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err == nil && !force {
		return "", fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	return path, config.Default().Save(path)
}

// runDemo sets up logging, the terminal and the screen, lays out the demo
// and runs the loop until a handler calls Exit or a signal arrives.
func runDemo(ctx context.Context, build builder) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errNotTerminal
	}

	path, cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := logging.Open(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	be, err := backend.NewTerminal()
	if err != nil {
		return fmt.Errorf("creating terminal: %w", err)
	}

	opts := ui.OptionsFromConfig(cfg.Screen)
	opts.Logger = logger
	s, err := ui.NewScreen(be, opts)
	if err != nil {
		return err
	}
	defer s.End()

	if reloads, err := config.Watch(ctx, path, logger); err != nil {
		logger.Warn("config reload disabled", "err", err)
	} else {
		s.WatchConfig(reloads)
	}

	cleanup, err := build(s)
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	go func() {
		<-ctx.Done()
		s.Exit()
	}()

	logger.Info("running", "config", path, "windows", len(s.Windows()))
	s.Mainloop()
	return nil
}
