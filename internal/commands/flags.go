package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"regexp"

	"github.com/urfave/cli/v3"

	"github.com/sundayezeilo/positions/internal/blocklist"
	"github.com/sundayezeilo/positions/internal/config"
	"github.com/sundayezeilo/positions/internal/errx"
	"github.com/sundayezeilo/positions/position"
)

type Flags struct {
	LogLevel string
	Format   string

	// Config is loaded before the commands are registered and seeds their
	// flag defaults.
	Config *config.Config

	Logger *slog.Logger
}

// Register adds every positions subcommand to app.
func Register(app *cli.Command, flags *Flags) *cli.Command {
	app = NewBetweenCmd(flags).Register(app)
	app = NewNCmd(flags).Register(app)
	app = NewSeedCmd(flags).Register(app)
	app = NewCheckCmd(flags).Register(app)
	return app
}

func (f *Flags) generatorConfig() config.GeneratorConfig {
	if f.Config == nil {
		return config.GeneratorConfig{Factor: 0.5}
	}
	return f.Config.Generator
}

func (f *Flags) logger() *slog.Logger {
	if f.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return f.Logger
}

// rangeFlags are the bounds shared by the generating commands.
type rangeFlags struct {
	start string
	end   string
}

func (r *rangeFlags) flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "start",
			Aliases:     []string{"s"},
			Usage:       "lower bound, exclusive (empty for none)",
			Destination: &r.start,
		},
		&cli.StringFlag{
			Name:        "end",
			Aliases:     []string{"e"},
			Usage:       "upper bound, exclusive (empty for none)",
			Destination: &r.end,
		},
	}
}

// blockFlags select the blocklist a command applies.
type blockFlags struct {
	file      string
	pattern   string
	glob      string
	noDefault bool
}

func (b *blockFlags) flags(cfg config.GeneratorConfig) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "blocklist-file",
			Usage:       "YAML file with extra blocked words, patterns and globs",
			Value:       cfg.BlocklistFile,
			Destination: &b.file,
		},
		&cli.StringFlag{
			Name:        "blocked-pattern",
			Usage:       "block positions matching this regular expression",
			Value:       cfg.BlockedPattern,
			Destination: &b.pattern,
		},
		&cli.StringFlag{
			Name:        "blocked-glob",
			Usage:       "block positions matching this glob, e.g. 'poo*'",
			Value:       cfg.BlockedGlob,
			Destination: &b.glob,
		},
		&cli.BoolFlag{
			Name:        "no-default-blocklist",
			Usage:       "do not block the built-in list of profanities",
			Value:       cfg.NoDefaultBlocklist,
			Destination: &b.noDefault,
		},
	}
}

// blocklist combines the built-in list with the ones named by the flags.
func (b *blockFlags) blocklist(op string) (position.Blocklist, error) {
	var lists []position.Blocklist
	if !b.noDefault {
		lists = append(lists, position.DefaultBlocklist())
	}

	if b.file != "" {
		fromFile, err := blocklist.Load(b.file)
		if err != nil {
			return nil, errx.E(op, errx.KindOf(err), err)
		}
		lists = append(lists, fromFile)
	}

	if b.pattern != "" {
		re, err := regexp.Compile(b.pattern)
		if err != nil {
			return nil, errx.E(op, errx.Invalid, fmt.Errorf("blocked pattern: %w", err))
		}
		lists = append(lists, position.Pattern(re))
	}

	if b.glob != "" {
		g, err := position.Glob(b.glob)
		if err != nil {
			return nil, errx.E(op, errx.Invalid, fmt.Errorf("blocked glob: %w", err))
		}
		lists = append(lists, g)
	}

	return position.AnyOf(lists...), nil
}

// factorFlags control where Between lands among its candidates.
type factorFlags struct {
	factor    float64
	random    bool
	seed      uint64
	inclusive bool
}

func (f *factorFlags) flags(cfg config.GeneratorConfig) []cli.Flag {
	return []cli.Flag{
		&cli.FloatFlag{
			Name:        "factor",
			Aliases:     []string{"f"},
			Usage:       "interpolation factor in [0, 1]: 0 picks the lowest candidate, 1 the highest",
			Value:       cfg.Factor,
			Destination: &f.factor,
		},
		&cli.BoolFlag{
			Name:        "random",
			Aliases:     []string{"r"},
			Usage:       "draw a random factor for every choice",
			Value:       cfg.Random,
			Destination: &f.random,
		},
		&cli.Uint64Flag{
			Name:        "seed",
			Usage:       "seed for --random (0 for an unseeded source)",
			Value:       cfg.Seed,
			Destination: &f.seed,
		},
		&cli.BoolFlag{
			Name:        "inclusive-of-one",
			Usage:       "let a factor of exactly 1 select the highest candidate",
			Destination: &f.inclusive,
		},
	}
}

func (f *factorFlags) options(op string, c *cli.Command) ([]position.Option, error) {
	if f.factor < 0 || f.factor > 1 {
		return nil, errx.E(op, errx.Invalid, fmt.Errorf("factor must be between 0 and 1, got %g", f.factor))
	}

	var opts []position.Option
	switch {
	case f.random && f.seed != 0:
		rng := rand.New(rand.NewPCG(f.seed, f.seed))
		opts = append(opts, position.WithFactorFunc(rng.Float64))
	case f.random:
		opts = append(opts, position.WithFactorFunc(rand.Float64))
	default:
		opts = append(opts, position.WithFactor(f.factor))
	}

	if c.IsSet("inclusive-of-one") {
		opts = append(opts, position.WithInclusiveOfOne(f.inclusive))
	}
	return opts, nil
}

// positionErr tags errors from the position package with the kind the exit
// code is derived from.
func positionErr(op string, err error) error {
	if errors.Is(err, position.ErrInvalidArguments) {
		return errx.E(op, errx.Invalid, err)
	}
	return errx.E(op, errx.Internal, err)
}
