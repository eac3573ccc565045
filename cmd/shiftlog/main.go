package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/shiftlog/internal/cli"
	"github.com/alexanderramin/shiftlog/internal/config"
	"github.com/alexanderramin/shiftlog/internal/domain"
	"github.com/alexanderramin/shiftlog/internal/repository"
	"github.com/alexanderramin/shiftlog/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	lang, err := cfg.Language()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	clock := domain.SystemClock{}

	// Pick the record store once; a failed database stays on the fallback
	// for the rest of the process.
	backend, err := repository.OpenRecordStore(context.Background(), repository.OpenOptions{
		DBPath:        cfg.DBPath,
		FallbackDir:   cfg.FallbackDir,
		ForceFallback: cfg.ForceFallback,
		Clock:         clock,
	}, logger)
	if err != nil {
		return fmt.Errorf("opening record store: %w", err)
	}
	defer backend.Close()

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(logger)
	}

	app := &cli.App{
		Records:     service.NewRecordService(backend.Store, clock, observer),
		Reports:     service.NewReportService(backend.Store, clock, lang, observer),
		Backend:     backend,
		DBPath:      cfg.DBPath,
		FallbackDir: cfg.FallbackDir,
		Clock:       clock,
		Lang:        lang,
		Logger:      logger,
	}

	// Prompts and forms are only shown on a terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
