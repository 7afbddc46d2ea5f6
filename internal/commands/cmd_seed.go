package commands

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/sundayezeilo/positions/internal/errx"
	"github.com/sundayezeilo/positions/internal/idgen"
	"github.com/sundayezeilo/positions/position"
)

// SeedRecord is one item of a list that has been given a position.
type SeedRecord struct {
	ID       string `json:"id" yaml:"id"`
	Label    string `json:"label" yaml:"label"`
	Position string `json:"position" yaml:"position"`
}

// SeedOutput is the structured output of the seed command.
type SeedOutput struct {
	Items []SeedRecord `json:"items" yaml:"items"`
}

type SeedCmd struct {
	flags *Flags

	bounds    rangeFlags
	blocked   blockFlags
	input     string
	idVersion int
	idRetries int
}

// NewSeedCmd creates a new seed command
func NewSeedCmd(flags *Flags) *SeedCmd {
	return &SeedCmd{flags: flags}
}

// Register adds the seed command to the application
func (cmd *SeedCmd) Register(app *cli.Command) *cli.Command {
	idVersion, idRetries := int(idgen.V7), 1
	if cmd.flags.Config != nil {
		idVersion = cmd.flags.Config.Output.IDVersion
		idRetries = cmd.flags.Config.Output.IDRetries
	}

	flags := cmd.bounds.flags()
	flags = append(flags, cmd.blocked.flags(cmd.flags.generatorConfig())...)
	flags = append(flags,
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "file with one label per line (reads from stdin if not provided)",
			Destination: &cmd.input,
		},
		&cli.IntFlag{
			Name:        "id-version",
			Usage:       "UUID version for item IDs (4 or 7)",
			Value:       idVersion,
			Destination: &cmd.idVersion,
		},
		&cli.IntFlag{
			Name:        "id-retries",
			Usage:       "extra attempts when generating a v7 ID fails",
			Value:       idRetries,
			Destination: &cmd.idRetries,
		},
	)

	app.Commands = append(app.Commands, &cli.Command{
		Name:  "seed",
		Usage: "Give an existing list IDs and positions",
		UsageText: `positions seed [options]

Read from stdin:
  printf 'milk\neggs\nbread\n' | positions seed

Read from file:
  positions seed -i groceries.txt --format json`,
		Description: `Reads item labels, one per line, and assigns every item a UUID and a
position. Positions are spread evenly between --start and --end in input
order, so later inserts with 'positions between' have room on every side.
Blank lines are skipped.`,
		Flags:  flags,
		Action: cmd.run,
	})

	return app
}

func (cmd *SeedCmd) run(ctx context.Context, c *cli.Command) error {
	const op = "commands.seed"
	logger := cmd.flags.logger()

	version, err := idgen.ParseVersion(cmd.idVersion)
	if err != nil {
		return errx.E(op, errx.Invalid, err)
	}
	if cmd.idRetries < 0 {
		return errx.E(op, errx.Invalid, fmt.Errorf("id retries must not be negative, got %d", cmd.idRetries))
	}
	ids := idgen.New(version, idgen.WithRetries(cmd.idRetries))

	blocked, err := cmd.blocked.blocklist(op)
	if err != nil {
		return err
	}

	labels, err := readLines(op, c, cmd.input)
	if err != nil {
		return err
	}

	logger.DebugContext(ctx, "seeding positions",
		"items", len(labels),
		"start", cmd.bounds.start,
		"end", cmd.bounds.end,
		"id_version", cmd.idVersion,
		"id_retries", cmd.idRetries,
	)

	list, err := position.N(len(labels), cmd.bounds.start, cmd.bounds.end, position.WithBlocked(blocked))
	if err != nil {
		return positionErr(op, err)
	}

	out := SeedOutput{Items: make([]SeedRecord, 0, len(labels))}
	for i, label := range labels {
		id, err := ids.Generate()
		if err != nil {
			return errx.E(op, errx.Internal, err)
		}
		out.Items = append(out.Items, SeedRecord{
			ID:       id.String(),
			Label:    label,
			Position: list[i],
		})
	}

	return write(c.Root().Writer, cmd.flags.format(), out, func(w io.Writer) error {
		if len(out.Items) == 0 {
			return nil
		}

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(tw, "POSITION\tID\tLABEL")
		for _, item := range out.Items {
			_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", item.Position, item.ID, item.Label)
		}
		if err := tw.Flush(); err != nil {
			return errx.E(op, errx.Unavailable, err)
		}
		return nil
	})
}
