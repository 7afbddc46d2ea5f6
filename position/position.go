// Package position generates string sort keys for manually ordered lists.
//
// A position is a non-empty string of the lowercase letters a-z, read as the
// digits of a base-26 fraction. Two positions compare lexicographically after
// the shorter one is right-padded with 'a', so a trailing 'a' never changes
// the order and generated positions never end in one.
//
// Between returns a position strictly between two neighbours, so an item can
// be moved or inserted by writing a single key and leaving its siblings alone.
// N spreads any number of positions evenly across a range, which is how an
// existing list gets keys in the first place.
//
// Generated positions are kept as short as possible and never equal an entry
// of the active Blocklist (by default a list of profanities).
//
// All functions are pure. They are safe for concurrent use as long as a
// factor function passed with WithFactorFunc is.
package position

import (
	"cmp"
	"fmt"
	"math"
	"strings"
)

const (
	minDigit = 'a'
	maxDigit = 'z'

	// afterZ sorts after every digit and stands in for a missing upper bound.
	// It never appears in a returned position.
	afterZ = maxDigit + 1

	// digits is the branching factor of a single position character.
	digits = maxDigit - minDigit + 1
)

var unbounded = string(rune(afterZ))

// Between returns a position that sorts strictly after start and strictly
// before end. An empty start means "no lower bound" and an empty end means
// "no upper bound", so Between("", "") returns a position in the middle of
// the whole range.
//
// Between prefers the shortest position that fits. When several shortest
// candidates exist the interpolation factor picks one of them (see WithFactor
// and WithFactorFunc). Candidates matched by the blocklist are skipped, and
// when no single extra digit fits the range is extended by one more digit.
//
// The returned error wraps ErrInvalidArguments when either bound contains a
// character outside a-z or start does not sort before end.
//
// A blocklist that rejects every extension of some prefix makes Between
// recurse without bound.
func Between(start, end string, opts ...Option) (string, error) {
	return newConfig(opts).between(start, end, "")
}

// Compare returns -1, 0 or +1 depending on whether a sorts before, the same
// as, or after b. The shorter operand is padded with 'a' first, so "b" and
// "baa" compare equal.
func Compare(a, b string) int {
	n := max(len(a), len(b))
	for i := range n {
		if x, y := digitAt(a, i), digitAt(b, i); x != y {
			return cmp.Compare(x, y)
		}
	}
	return 0
}

// Validate reports whether p is usable as a position: non-empty and made of
// a-z only.
func Validate(p string) error {
	if p == "" {
		return fmt.Errorf("%w: position is empty", ErrInvalidArguments)
	}
	if !isDigits(p) {
		return fmt.Errorf("%w: position %q must contain only a-z", ErrInvalidArguments, p)
	}
	return nil
}

// candidates are positions that all fit between the same bounds, ordered
// from lowest to highest.
type candidates []string

// shortest keeps the shortest usable candidate. Ties go to the earlier one.
func (c candidates) shortest() candidates {
	var best string
	found := false
	for _, v := range c {
		if strings.ContainsRune(v, afterZ) {
			continue
		}
		if !found || len(v) < len(best) {
			best, found = v, true
		}
	}
	if !found {
		return nil
	}
	return candidates{best}
}

func (c *config) between(start, end, prefix string) (string, error) {
	if err := checkBounds(start, end); err != nil {
		return "", err
	}

	if end == "" {
		end = unbounded
	}
	if len(start) < len(end) {
		start += strings.Repeat(string(rune(minDigit)), len(end)-len(start))
	}

	idx := indexOfDiff(start, end)
	endContinues := hasSignificantDigits(end[idx+1:])

	values := c.direct(prefix+start[:idx], start[idx], end[idx], endContinues)
	if len(values) == 0 {
		var err error
		values, err = c.extend(start, end, prefix, idx, endContinues)
		if err != nil {
			return "", err
		}
	}
	if len(values) == 0 {
		return "", fmt.Errorf("%w: no position fits between %q and %q", ErrInvalidArguments, start, end)
	}

	return c.pick(values), nil
}

// direct lists the single-digit extensions of base that fit between the
// digits s and e. The digit e itself fits only when end has a digit other
// than 'a' after it; otherwise base+e equals end.
func (c *config) direct(base string, s, e byte, endContinues bool) candidates {
	last := e - 1
	if endContinues {
		last = e
	}
	last = min(last, maxDigit)

	var out candidates
	for d := s + 1; d <= last; d++ {
		v := base + string(rune(d))
		if !c.blocked.Contains(v) {
			out = append(out, v)
		}
	}
	return out
}

// extend looks one digit deeper, either just above start or just below end,
// and keeps whichever is shorter.
func (c *config) extend(start, end, prefix string, idx int, endContinues bool) (candidates, error) {
	above, err := c.between(start[idx+1:], "", prefix+start[:idx+1])
	if err != nil {
		return nil, err
	}
	found := candidates{above}

	// Below a remainder of only 'a' digits no valid position exists, so the
	// search continues above start alone.
	if endContinues {
		below, err := c.between("", end[idx+1:], prefix+end[:idx+1])
		if err != nil {
			return nil, err
		}
		found = append(found, below)
	}

	return found.shortest(), nil
}

// pick maps the interpolation factor linearly onto values.
func (c *config) pick(values candidates) string {
	n := len(values)
	if n == 1 {
		return values[0]
	}

	span := float64(n)
	if c.inclusiveOfOne() {
		span--
	}

	i := math.Floor(span * c.factorValue())
	switch {
	case math.IsNaN(i) || i < 0:
		i = 0
	case i > float64(n-1):
		i = float64(n - 1)
	}
	return values[int(i)]
}

func checkBounds(start, end string) error {
	if !isDigits(start) {
		return fmt.Errorf("%w: start %q must contain only a-z", ErrInvalidArguments, start)
	}
	if !isDigits(end) {
		return fmt.Errorf("%w: end %q must contain only a-z", ErrInvalidArguments, end)
	}
	if end != "" && Compare(start, end) >= 0 {
		return fmt.Errorf("%w: start %q must sort before end %q", ErrInvalidArguments, start, end)
	}
	return nil
}

// indexOfDiff returns the first index at which start and end differ. start is
// already padded and sorts before end, so such an index always exists.
func indexOfDiff(start, end string) int {
	for i := range len(start) {
		if i >= len(end) || start[i] != end[i] {
			return i
		}
	}
	return len(start)
}

// hasSignificantDigits reports whether s contains a digit other than 'a',
// i.e. whether s sorts after the empty position.
func hasSignificantDigits(s string) bool {
	return strings.TrimRight(s, string(rune(minDigit))) != ""
}

func isDigits(s string) bool {
	for i := range len(s) {
		if s[i] < minDigit || s[i] > maxDigit {
			return false
		}
	}
	return true
}

func digitAt(s string, i int) byte {
	if i < len(s) {
		return s[i]
	}
	return minDigit
}
