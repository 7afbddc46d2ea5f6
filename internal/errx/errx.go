// Package errx classifies failures of the positions tool. An *Error records
// the operation that failed and a Kind; the outermost Kind in a chain decides
// the exit status of the process.
package errx

import (
	"errors"
	"fmt"
)

type Kind uint8

const (
	Unknown     Kind = iota
	Invalid          // bad arguments, flags, configuration or input
	NotFound         // a named file does not exist
	Unavailable      // input could not be read or output written
	Internal
)

var kindNames = [...]string{
	Unknown:     "Unknown",
	Invalid:     "Invalid",
	NotFound:    "NotFound",
	Unavailable: "Unavailable",
	Internal:    "Internal",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Error is a failure of the operation Op, e.g. "blocklist.Load".
type Error struct {
	Op   string
	Kind Kind
	Err  error
}

// E wraps err with op and kind. A nil err stays nil so call sites can wrap
// unconditionally.
func E(op string, kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Kind: kind, Err: err}
}

func (e *Error) Error() string {
	switch {
	case e.Err == nil:
		return e.Op
	case e.Op == "":
		return e.Err.Error()
	default:
		return e.Op + ": " + e.Err.Error()
	}
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the kind of the outermost *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// OpOf returns the operation of the outermost *Error in err's chain.
func OpOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Op
	}
	return ""
}

// ExitCode maps a kind to the exit status of the positions command.
func ExitCode(kind Kind) int {
	switch kind {
	case Invalid:
		return 2
	case NotFound:
		return 3
	case Unavailable:
		return 4
	default:
		return 1
	}
}

// Code is the exit status for err: 0 when err is nil, otherwise the ExitCode
// of its kind.
func Code(err error) int {
	if err == nil {
		return 0
	}
	return ExitCode(KindOf(err))
}
