package theory

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. The typed errors below match them via errors.Is.
var (
	ErrUnknownKey    = errors.New("unknown key")
	ErrInvalidDegree = errors.New("invalid degree")
	ErrUnknownMode   = errors.New("unknown mode")
)

// UnknownKeyError reports a key name missing from the key signature table
// for the requested quality.
type UnknownKeyError struct {
	Key     string
	Quality Quality
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown %s key %q", e.Quality, e.Key)
}

func (e *UnknownKeyError) Is(target error) bool { return target == ErrUnknownKey }

// InvalidDegreeError reports a scale degree outside 1..7.
type InvalidDegreeError struct {
	Degree int
}

func (e *InvalidDegreeError) Error() string {
	return fmt.Sprintf("invalid scale degree %d: must be 1-7", e.Degree)
}

func (e *InvalidDegreeError) Is(target error) bool { return target == ErrInvalidDegree }
