package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/sundayezeilo/positions/internal/commands"
	"github.com/sundayezeilo/positions/internal/config"
	"github.com/sundayezeilo/positions/internal/errx"
)

// IO holds the streams the application reads from and writes to.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// App holds the application dependencies and configuration.
type App struct {
	Config *config.Config
	Logger *slog.Logger

	flags *commands.Flags
	root  *cli.Command
}

// New initializes and returns a new App instance with all commands wired up.
func New(version string, streams IO) (*App, error) {
	const op = "app.New"

	if err := loadEnv(); err != nil {
		return nil, errx.E(op, errx.Unavailable, fmt.Errorf("failed to load environment: %w", err))
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, errx.E(op, errx.Invalid, fmt.Errorf("failed to load config: %w", err))
	}

	if streams.Stderr == nil {
		streams.Stderr = os.Stderr
	}
	logger := setupLogger(cfg.App.Environment, cfg.App.LogLevel, streams.Stderr)

	flags := &commands.Flags{Config: cfg, Logger: logger}

	root := &cli.Command{
		Name:      "positions",
		Usage:     "Generate sort keys for manually ordered lists",
		UsageText: "positions [global options] command [command options]",
		Description: `Positions are short strings of the letters a-z that sort in list order.
A new item gets a position between its neighbours, so moving or inserting
an item never touches the rest of the list.`,
		Version:   version,
		Reader:    streams.Stdin,
		Writer:    streams.Stdout,
		ErrWriter: streams.Stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error)",
				Value:       cfg.App.LogLevel,
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json, yaml)",
				Value:       cfg.Output.Format,
				Destination: &flags.Format,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if flags.LogLevel != cfg.App.LogLevel {
				check := config.AppConfig{Environment: cfg.App.Environment, LogLevel: flags.LogLevel}
				if err := check.Validate(); err != nil {
					return ctx, errx.E(op, errx.Invalid, err)
				}
				flags.Logger = setupLogger(cfg.App.Environment, flags.LogLevel, streams.Stderr)
			}
			return ctx, nil
		},
	}

	commands.Register(root, flags)

	logger.Debug("application initialized",
		"env", cfg.App.Environment,
		"format", cfg.Output.Format,
		"factor", cfg.Generator.Factor,
		"random", cfg.Generator.Random,
	)

	return &App{
		Config: cfg,
		Logger: logger,
		flags:  flags,
		root:   root,
	}, nil
}

// Run executes the command line in args, args[0] being the program name.
func (a *App) Run(ctx context.Context, args []string) error {
	if err := a.root.Run(ctx, args); err != nil {
		a.flags.Logger.Debug("command failed",
			"op", errx.OpOf(err),
			"kind", errx.KindOf(err).String(),
			"error", err,
		)
		return err
	}
	return nil
}

// loadEnv loads a .env file in development and test environments.
func loadEnv() error {
	env := os.Getenv("APP_ENV")
	if env != "development" && env != "test" {
		return nil
	}
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// setupLogger creates a structured logger based on the log level. Development
// gets human readable output.
func setupLogger(env, level string, w io.Writer) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	var handler slog.Handler
	if env == "development" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler)
}
