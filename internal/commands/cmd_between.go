package commands

import (
	"context"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/sundayezeilo/positions/position"
)

// BetweenOutput is the structured output of the between command.
type BetweenOutput struct {
	Start    string `json:"start" yaml:"start"`
	End      string `json:"end" yaml:"end"`
	Position string `json:"position" yaml:"position"`
}

type BetweenCmd struct {
	flags *Flags

	bounds  rangeFlags
	factor  factorFlags
	blocked blockFlags
}

// NewBetweenCmd creates a new between command
func NewBetweenCmd(flags *Flags) *BetweenCmd {
	return &BetweenCmd{flags: flags}
}

// Register adds the between command to the application
func (cmd *BetweenCmd) Register(app *cli.Command) *cli.Command {
	cfg := cmd.flags.generatorConfig()

	flags := cmd.bounds.flags()
	flags = append(flags, cmd.factor.flags(cfg)...)
	flags = append(flags, cmd.blocked.flags(cfg)...)

	app.Commands = append(app.Commands, &cli.Command{
		Name:  "between",
		Usage: "Print a position that sorts between two others",
		UsageText: `positions between [options]

Insert between two items:
  positions between --start b --end d

Append after the last item:
  positions between --start zzzz`,
		Description: `Prints the shortest position that sorts strictly after --start and strictly
before --end. Leaving a bound out makes that side of the range open.

When several shortest positions fit, --factor chooses among them: 0 picks the
lowest and 1 the highest. --random draws a fresh factor for every choice.`,
		Flags:  flags,
		Action: cmd.run,
	})

	return app
}

func (cmd *BetweenCmd) run(ctx context.Context, c *cli.Command) error {
	const op = "commands.between"
	logger := cmd.flags.logger()

	opts, err := cmd.factor.options(op, c)
	if err != nil {
		return err
	}
	blocked, err := cmd.blocked.blocklist(op)
	if err != nil {
		return err
	}
	opts = append(opts, position.WithBlocked(blocked))

	logger.DebugContext(ctx, "generating position",
		"start", cmd.bounds.start,
		"end", cmd.bounds.end,
		"factor", cmd.factor.factor,
		"random", cmd.factor.random,
	)

	p, err := position.Between(cmd.bounds.start, cmd.bounds.end, opts...)
	if err != nil {
		return positionErr(op, err)
	}

	out := BetweenOutput{Start: cmd.bounds.start, End: cmd.bounds.end, Position: p}
	return write(c.Root().Writer, cmd.flags.format(), out, func(w io.Writer) error {
		return writeLines(w, []string{p})
	})
}
