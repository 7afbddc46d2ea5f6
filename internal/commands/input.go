package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/sundayezeilo/positions/internal/errx"
)

// readLines returns the non-blank lines of path, or of the command's input
// when path is empty or "-". Surrounding whitespace is trimmed.
func readLines(op string, c *cli.Command, path string) ([]string, error) {
	var r io.Reader = c.Root().Reader
	if r == nil {
		r = os.Stdin
	}

	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			kind := errx.Unavailable
			if errors.Is(err, fs.ErrNotExist) {
				kind = errx.NotFound
			}
			return nil, errx.E(op, kind, err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errx.E(op, errx.Unavailable, fmt.Errorf("read input: %w", err))
	}
	return lines, nil
}
