// Package blockindex provides the block-index subsystem of a floating-point
// block-compression codec: a mapping from a block's logical ordinal to its
// bit offset and bit length within an externally-owned bitstream.
//
// Three variants trade off space for generality. Implicit assumes every
// block has the same bit length and stores nothing. Verbatim stores a full
// uint64 offset per block boundary. Hybrid8 amortizes roughly 16 bits per
// block by packing eight blocks' worth of sizes into two 64-bit words.
//
// An index is built by calling Resize once, then SetBlockSizeAt for each
// block in strictly ascending order (Hybrid8 additionally requires a
// trailing Flush). After construction it is a read-only, concurrency-safe
// random-access table. It does not compress or decompress block payloads,
// perform bitstream I/O, cache anything, or persist itself to disk.
package blockindex

// Index is the contract shared by Implicit, Verbatim, and Hybrid8. The
// surrounding codec dispatches to a concrete variant via NewForMode and
// thereafter only calls through this interface.
type Index interface {
	// Resize sets the index's capacity to blocks and resets construction
	// state. Any previously stored sizes are discarded.
	Resize(blocks uint64)

	// Clear resets the construction cursor and running totals without
	// changing capacity.
	Clear()

	// SetBlockSize fills every block with the same size, as a single
	// fixed-rate operation: reset, fill, flush, reset.
	SetBlockSize(size uint64)

	// SetBlockSizeAt records the bit size of block blockIndex, which must
	// equal the number of blocks already set (strictly sequential build).
	SetBlockSizeAt(blockIndex, size uint64) error

	// Flush finalizes any buffered partial state. No-op for Implicit and
	// Verbatim; mandatory after the last SetBlockSizeAt for Hybrid8.
	Flush()

	// BlockOffset returns the bit offset of blockIndex. blockIndex may
	// equal Blocks() as an end-of-stream sentinel, or equal the number of
	// blocks filled so far to observe the in-progress write cursor.
	BlockOffset(blockIndex uint64) uint64

	// BlockSize returns the bit length of block blockIndex.
	BlockSize(blockIndex uint64) uint64

	// DataSize returns the total number of bits occupied by all completed
	// blocks: BlockOffset(Blocks()).
	DataSize() uint64

	// SizeBytes returns the byte cost of the components selected by mask.
	SizeBytes(mask SizeMask) uint64

	// VariableRate reports whether this index can represent non-uniform
	// block sizes.
	VariableRate() bool

	// Blocks returns the declared capacity in blocks.
	Blocks() uint64
}

// SizeMask selects which components of an Index's storage cost SizeBytes
// should report.
type SizeMask uint8

const (
	// DataIndex selects the backing offset/size storage.
	DataIndex SizeMask = 1 << iota
	// DataMeta selects the index object's own metadata (its struct size).
	DataMeta

	// DataAll selects every component.
	DataAll = DataIndex | DataMeta
)

// Mode selects which Index variant a codec should instantiate for a given
// compression configuration. The index itself never inspects Mode; only
// NewForMode does.
type Mode uint8

const (
	// ModeFixed selects Implicit: constant bits/block, zero storage.
	ModeFixed Mode = iota
	// ModeVariableVerbatim selects Verbatim: arbitrary per-block offsets.
	ModeVariableVerbatim
	// ModeVariableHybrid8 selects Hybrid8: packed, amortized ~16 bits/block.
	ModeVariableHybrid8
)

// NewForMode constructs the Index variant appropriate for mode. dim is the
// array dimensionality (1-4) and is only meaningful for ModeVariableHybrid8;
// it is ignored by the other two modes.
func NewForMode(mode Mode, dim int, blocks uint64) Index {
	switch mode {
	case ModeFixed:
		return NewImplicit(blocks)
	case ModeVariableVerbatim:
		return NewVerbatim(blocks)
	case ModeVariableHybrid8:
		return NewHybrid8(dim, blocks)
	default:
		panic("blockindex: unknown mode")
	}
}
