package blockindex

import (
	"errors"
	"fmt"
)

// The three error kinds an Index can raise. All are fatal
// to the current operation: the caller either aborts or reconfigures (e.g.
// switches from Hybrid8 to Verbatim); there is no retry and no partial
// cleanup. An index that returns one of these is considered poisoned until
// Resize is called again.
var (
	// ErrSequentialBuild is returned when SetBlockSizeAt is called with a
	// block index other than the next one in sequence.
	ErrSequentialBuild = errors.New("blockindex: sequential build required")

	// ErrOverflow is returned when an append would write past the declared
	// block count (Hybrid8's zero-padding inside Flush is exempt).
	ErrOverflow = errors.New("blockindex: index overflow")

	// ErrRepresentation is returned by Hybrid8 when a block size or a
	// chunk's base offset cannot be represented in the packed encoding.
	ErrRepresentation = errors.New("blockindex: value exceeds hybrid8 encoding capacity")
)

func sequentialBuildErr(got, want uint64) error {
	return fmt.Errorf("%w: got block %d, want %d", ErrSequentialBuild, got, want)
}

func overflowErr(block, blocks uint64) error {
	return fmt.Errorf("%w: block %d >= capacity %d", ErrOverflow, block, blocks)
}

func blockTooLargeErr(size, limit uint64) error {
	return fmt.Errorf("%w: block size %d exceeds limit %d", ErrRepresentation, size, limit)
}

func offsetTooLargeErr(offset uint64) error {
	return fmt.Errorf("%w: base offset %d does not fit in hybrid8 high word", ErrRepresentation, offset)
}
