package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/sundayezeilo/positions/internal/errx"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// format returns the --format flag, falling back to the configured format.
func (f *Flags) format() string {
	if f.Format != "" {
		return f.Format
	}
	if f.Config != nil && f.Config.Output.Format != "" {
		return f.Config.Output.Format
	}
	return FormatText
}

// write renders v as JSON or YAML, or calls text for the plain format.
func write(w io.Writer, format string, v any, text func(io.Writer) error) error {
	const op = "commands.write"

	switch format {
	case FormatText:
		return text(w)

	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return errx.E(op, errx.Unavailable, err)
		}
		return nil

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errx.E(op, errx.Unavailable, err)
		}
		if err := enc.Close(); err != nil {
			return errx.E(op, errx.Unavailable, err)
		}
		return nil

	default:
		return errx.E(op, errx.Invalid, fmt.Errorf("unknown format %q (must be one of: text, json, yaml)", format))
	}
}

// writeLines prints one value per line.
func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return errx.E("commands.writeLines", errx.Unavailable, err)
		}
	}
	return nil
}
