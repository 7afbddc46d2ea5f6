package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/sundayezeilo/positions/internal/errx"
	"github.com/sundayezeilo/positions/position"
)

// NOutput is the structured output of the n command.
type NOutput struct {
	Start     string   `json:"start" yaml:"start"`
	End       string   `json:"end" yaml:"end"`
	Positions []string `json:"positions" yaml:"positions"`
}

type NCmd struct {
	flags *Flags

	bounds  rangeFlags
	blocked blockFlags
}

// NewNCmd creates a new n command
func NewNCmd(flags *Flags) *NCmd {
	return &NCmd{flags: flags}
}

// Register adds the n command to the application
func (cmd *NCmd) Register(app *cli.Command) *cli.Command {
	flags := cmd.bounds.flags()
	flags = append(flags, cmd.blocked.flags(cmd.flags.generatorConfig())...)

	app.Commands = append(app.Commands, &cli.Command{
		Name:      "n",
		Usage:     "Print COUNT evenly spread positions",
		UsageText: "positions n [options] COUNT",
		Description: `Prints COUNT positions in increasing order, spread as evenly as possible
between --start and --end. The output only depends on the count, the bounds
and the blocklist.`,
		Flags:  flags,
		Action: cmd.run,
	})

	return app
}

func (cmd *NCmd) run(ctx context.Context, c *cli.Command) error {
	const op = "commands.n"

	count, err := parseCount(op, c)
	if err != nil {
		return err
	}

	blocked, err := cmd.blocked.blocklist(op)
	if err != nil {
		return err
	}

	cmd.flags.logger().DebugContext(ctx, "generating positions",
		"count", count,
		"start", cmd.bounds.start,
		"end", cmd.bounds.end,
	)

	list, err := position.N(count, cmd.bounds.start, cmd.bounds.end, position.WithBlocked(blocked))
	if err != nil {
		return positionErr(op, err)
	}

	out := NOutput{Start: cmd.bounds.start, End: cmd.bounds.end, Positions: list}
	return write(c.Root().Writer, cmd.flags.format(), out, func(w io.Writer) error {
		return writeLines(w, list)
	})
}

func parseCount(op string, c *cli.Command) (int, error) {
	if c.Args().Len() != 1 {
		return 0, errx.E(op, errx.Invalid, fmt.Errorf("expected exactly one COUNT argument, got %d", c.Args().Len()))
	}

	count, err := strconv.Atoi(c.Args().First())
	if err != nil {
		return 0, errx.E(op, errx.Invalid, fmt.Errorf("invalid COUNT %q: %w", c.Args().First(), err))
	}
	if count < 0 {
		return 0, errx.E(op, errx.Invalid, fmt.Errorf("COUNT must not be negative, got %d", count))
	}
	return count, nil
}
