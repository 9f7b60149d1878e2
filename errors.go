package rectunion

import (
	"errors"
	"fmt"
)

// ErrInvalidRect reports a rectangle whose minimum exceeds its maximum
// on some axis.
var ErrInvalidRect = errors.New("rectunion: invalid rectangle")

// ErrIndexOutOfRange reports a connected-component index outside
// [0, ConnectedComponentCount).
var ErrIndexOutOfRange = errors.New("rectunion: component index out of range")

// CorruptionError is the panic value raised when an internal consistency
// check of the sweep or boundary machinery fails: odd bracket parity, a
// non-empty bracket set at the end of a sweep, mismatched horizontal and
// vertical link counts, or a polygon walk exceeding its loop bound.
// These conditions indicate a bug in the engine, not bad input, so they
// are not returned as ordinary errors.
type CorruptionError struct {
	Stage  string // which pass detected the inconsistency
	Detail string
}

// Error implements the error interface.
func (e *CorruptionError) Error() string {
	return fmt.Sprintf("rectunion: internal corruption in %s: %s", e.Stage, e.Detail)
}

// corrupt panics with a CorruptionError describing a failed invariant.
func corrupt(stage, format string, args ...any) {
	panic(&CorruptionError{Stage: stage, Detail: fmt.Sprintf(format, args...)})
}
