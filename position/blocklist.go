package position

import (
	"fmt"
	"regexp"

	"github.com/bmatcuk/doublestar/v4"
)

// Blocklist reports whether a candidate position must never be returned.
type Blocklist interface {
	Contains(value string) bool
}

// BlockFunc adapts an ordinary function to a Blocklist.
type BlockFunc func(value string) bool

// Contains calls f(value).
func (f BlockFunc) Contains(value string) bool { return f(value) }

// None blocks nothing.
var None Blocklist = BlockFunc(func(string) bool { return false })

var defaultBlocklist = Words(disallowedWords...)

// DefaultBlocklist returns the built-in list of disallowed words used when no
// WithBlocked option is given.
func DefaultBlocklist() Blocklist {
	return defaultBlocklist
}

type wordSet map[string]struct{}

// Words blocks exactly the given values.
func Words(words ...string) Blocklist {
	set := make(wordSet, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func (s wordSet) Contains(value string) bool {
	_, ok := s[value]
	return ok
}

type keySet[V any] map[string]V

// Keys blocks every key present in m, whatever its value.
func Keys[V any](m map[string]V) Blocklist {
	return keySet[V](m)
}

func (k keySet[V]) Contains(value string) bool {
	_, ok := k[value]
	return ok
}

type patternList struct {
	re *regexp.Regexp
}

// Pattern blocks values matched anywhere by re. A nil re blocks nothing.
func Pattern(re *regexp.Regexp) Blocklist {
	if re == nil {
		return None
	}
	return patternList{re: re}
}

func (p patternList) Contains(value string) bool {
	return p.re.MatchString(value)
}

type globList struct {
	pattern string
}

// Glob blocks values matching a doublestar glob such as "ass*" or "{poo,pee}*".
func Glob(pattern string) (Blocklist, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern %q", pattern)
	}
	return globList{pattern: pattern}, nil
}

func (g globList) Contains(value string) bool {
	// pattern was validated in Glob, so Match cannot fail here
	ok, _ := doublestar.Match(g.pattern, value)
	return ok
}

type unionList []Blocklist

// AnyOf blocks a value when any of lists does. Nil entries are skipped.
func AnyOf(lists ...Blocklist) Blocklist {
	out := make(unionList, 0, len(lists))
	for _, l := range lists {
		if l != nil {
			out = append(out, l)
		}
	}
	return out
}

func (u unionList) Contains(value string) bool {
	for _, l := range u {
		if l.Contains(value) {
			return true
		}
	}
	return false
}
