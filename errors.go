package glyph

import (
	"errors"
	"fmt"
)

// Sentinel errors for the glyph package.
var (
	// ErrUnknownArchetype is returned when no generator is registered for a tag.
	ErrUnknownArchetype = errors.New("glyph: unknown stroke archetype")

	// ErrEmptySkeleton is returned when a skeleton has no bones to outline.
	ErrEmptySkeleton = errors.New("glyph: skeleton has no bones")

	// ErrDuplicateJoint is returned when two joints of a skeleton share a name.
	ErrDuplicateJoint = errors.New("glyph: duplicate joint name")

	// ErrUnknownJoint is returned when a bone or reference line names a
	// joint the skeleton does not have.
	ErrUnknownJoint = errors.New("glyph: unknown joint")

	// ErrBrokenChain is returned when bone k does not end where bone k+1 starts.
	ErrBrokenChain = errors.New("glyph: bones are not chained")

	// ErrDiscontinuous is returned when a segment does not start where the
	// previous one ended.
	ErrDiscontinuous = errors.New("glyph: contour segments are not continuous")

	// ErrNotClosed is returned when a contour does not end at its start.
	ErrNotClosed = errors.New("glyph: contour is not closed")

	// ErrOffsetMismatch is returned when the outer and inner boundaries of an
	// offset pair have different sample counts.
	ErrOffsetMismatch = errors.New("glyph: offset boundaries do not correspond")
)

// ConsistencyError reports an internal-consistency violation detected by a
// pipeline stage. These indicate a defect upstream of the stage rather than
// bad input geometry, and the offending glyph must not be exported.
type ConsistencyError struct {
	Stage string
	Err   error
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("glyph: %s: %v", e.Stage, e.Err)
}

func (e *ConsistencyError) Unwrap() error {
	return e.Err
}

// IsConsistencyError reports whether err carries a *ConsistencyError.
func IsConsistencyError(err error) bool {
	var ce *ConsistencyError
	return errors.As(err, &ce)
}

func consistencyErr(stage string, err error) error {
	return &ConsistencyError{Stage: stage, Err: err}
}
