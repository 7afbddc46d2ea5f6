package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/sundayezeilo/positions/internal/errx"
	"github.com/sundayezeilo/positions/position"
)

// CheckProblem describes one key that fails the check.
type CheckProblem struct {
	Index    int    `json:"index" yaml:"index"`
	Position string `json:"position" yaml:"position"`
	Reason   string `json:"reason" yaml:"reason"`
}

// CheckOutput is the structured output of the check command.
type CheckOutput struct {
	Checked  int            `json:"checked" yaml:"checked"`
	Problems []CheckProblem `json:"problems" yaml:"problems"`
}

type CheckCmd struct {
	flags *Flags

	blocked blockFlags
	input   string
}

// NewCheckCmd creates a new check command
func NewCheckCmd(flags *Flags) *CheckCmd {
	return &CheckCmd{flags: flags}
}

// Register adds the check command to the application
func (cmd *CheckCmd) Register(app *cli.Command) *cli.Command {
	flags := cmd.blocked.flags(cmd.flags.generatorConfig())
	flags = append(flags, &cli.StringFlag{
		Name:        "input",
		Aliases:     []string{"i"},
		Usage:       "file with one position per line (used when no arguments are given)",
		Destination: &cmd.input,
	})

	app.Commands = append(app.Commands, &cli.Command{
		Name:      "check",
		Usage:     "Verify that a list of positions is valid and ordered",
		UsageText: "positions check [options] [POSITION...]",
		Description: `Checks every position, given as arguments or one per line on stdin, and
reports keys that are empty, contain characters outside a-z, are blocked, or
do not sort strictly after the key before them.

Exits with status 2 when any problem is found.`,
		Flags:  flags,
		Action: cmd.run,
	})

	return app
}

func (cmd *CheckCmd) run(ctx context.Context, c *cli.Command) error {
	const op = "commands.check"

	blocked, err := cmd.blocked.blocklist(op)
	if err != nil {
		return err
	}

	keys := c.Args().Slice()
	if len(keys) == 0 {
		if keys, err = readLines(op, c, cmd.input); err != nil {
			return err
		}
	}

	out := CheckOutput{Checked: len(keys), Problems: Check(keys, blocked)}

	cmd.flags.logger().DebugContext(ctx, "checked positions",
		"checked", out.Checked,
		"problems", len(out.Problems),
	)

	err = write(c.Root().Writer, cmd.flags.format(), out, func(w io.Writer) error {
		lines := make([]string, 0, len(out.Problems))
		for _, p := range out.Problems {
			lines = append(lines, fmt.Sprintf("%d\t%s\t%s", p.Index+1, p.Position, p.Reason))
		}
		return writeLines(w, lines)
	})
	if err != nil {
		return err
	}

	if len(out.Problems) > 0 {
		return errx.E(op, errx.Invalid, fmt.Errorf("%d of %d positions failed the check", len(out.Problems), out.Checked))
	}
	return nil
}

// Check reports every key that is not a valid position, is blocked, or does
// not sort strictly after the last valid key before it.
func Check(keys []string, blocked position.Blocklist) []CheckProblem {
	problems := []CheckProblem{}
	prev := ""

	for i, key := range keys {
		if err := position.Validate(key); err != nil {
			problems = append(problems, CheckProblem{Index: i, Position: key, Reason: err.Error()})
			continue
		}
		if blocked != nil && blocked.Contains(key) {
			problems = append(problems, CheckProblem{Index: i, Position: key, Reason: "blocked"})
		}
		if prev != "" && position.Compare(prev, key) >= 0 {
			problems = append(problems, CheckProblem{
				Index:    i,
				Position: key,
				Reason:   fmt.Sprintf("does not sort after %q", prev),
			})
		}
		prev = key
	}

	return problems
}
