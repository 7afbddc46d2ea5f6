// Package blocklist loads extra blocked positions from YAML files.
//
// A file lists exact words, regular expressions and doublestar globs:
//
//	words: [potty, poo]
//	patterns: ["^z{3,}"]
//	globs: ["pee*"]
//
// The result is a single position.Blocklist that blocks a value when any entry
// matches it.
package blocklist

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/sundayezeilo/positions/internal/errx"
	"github.com/sundayezeilo/positions/position"
)

// File is the YAML layout of a blocklist file.
type File struct {
	Words    []string `yaml:"words"`
	Patterns []string `yaml:"patterns"`
	Globs    []string `yaml:"globs"`
}

// Validate checks that every entry can be matched against a position.
func (f *File) Validate() error {
	var errs []error
	for i, w := range f.Words {
		if err := position.Validate(w); err != nil {
			errs = append(errs, fmt.Errorf("words[%d]: %w", i, err))
		}
	}
	for i, p := range f.Patterns {
		if _, err := regexp.Compile(p); err != nil {
			errs = append(errs, fmt.Errorf("patterns[%d]: %w", i, err))
		}
	}
	for i, g := range f.Globs {
		if _, err := position.Glob(g); err != nil {
			errs = append(errs, fmt.Errorf("globs[%d]: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// Blocklist combines every entry of f.
func (f *File) Blocklist() (position.Blocklist, error) {
	lists := []position.Blocklist{position.Words(f.Words...)}
	for _, p := range f.Patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, err
		}
		lists = append(lists, position.Pattern(re))
	}
	for _, g := range f.Globs {
		b, err := position.Glob(g)
		if err != nil {
			return nil, err
		}
		lists = append(lists, b)
	}
	return position.AnyOf(lists...), nil
}

// Parse decodes and validates a YAML blocklist. An empty document blocks
// nothing.
func Parse(data []byte) (position.Blocklist, error) {
	const op = "blocklist.Parse"

	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, errx.E(op, errx.Invalid, err)
	}
	if err := f.Validate(); err != nil {
		return nil, errx.E(op, errx.Invalid, err)
	}

	b, err := f.Blocklist()
	if err != nil {
		return nil, errx.E(op, errx.Invalid, err)
	}
	return b, nil
}

// Load reads and parses the blocklist file at path.
func Load(path string) (position.Blocklist, error) {
	const op = "blocklist.Load"

	data, err := os.ReadFile(path)
	if err != nil {
		kind := errx.Unavailable
		if errors.Is(err, fs.ErrNotExist) {
			kind = errx.NotFound
		}
		return nil, errx.E(op, kind, err)
	}

	b, err := Parse(data)
	if err != nil {
		return nil, errx.E(op, errx.KindOf(err), fmt.Errorf("%s: %w", path, err))
	}
	return b, nil
}
