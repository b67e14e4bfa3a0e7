package blockindex

// Implicit is a constant-rate block index: every block has the same bit
// length, so nothing needs to be stored beyond that one value. It is the
// cheapest variant (zero backing storage) but cannot represent variable
// rate compression.
type Implicit struct {
	blocks       uint64
	bitsPerBlock uint64
	meta         *Meta
}

var _ Index = (*Implicit)(nil)

// NewImplicit constructs an Implicit index for the given block count.
func NewImplicit(blocks uint64) *Implicit {
	idx := &Implicit{}
	idx.Resize(blocks)
	indexesCreatedTotal.WithLabelValues("implicit").Inc()
	return idx
}

func (idx *Implicit) Resize(blocks uint64) {
	idx.blocks = blocks
	idx.bitsPerBlock = 0
	idx.Clear()
}

// Clear is a no-op. Implicit has no build cursor or running total to reset;
// the original C++ source's clear() assigns a `block` field that only
// VerbatimIndex declares; this looks like a transcription artifact in the
// original, so this port does not reproduce it as spurious state.
func (idx *Implicit) Clear() {}

func (idx *Implicit) SetBlockSize(size uint64) {
	idx.bitsPerBlock = size
	appendsTotal.WithLabelValues("implicit").Add(float64(idx.blocks))
}

// SetBlockSizeAt is ignored for every block index: correctness is already
// guaranteed by the constant-rate contract, so there is nothing to
// validate or store, and rejecting per-block calls here would only punish
// callers that treat all variants uniformly.
func (idx *Implicit) SetBlockSizeAt(blockIndex, size uint64) error {
	return nil
}

func (idx *Implicit) Flush() {}

func (idx *Implicit) BlockOffset(blockIndex uint64) uint64 {
	return idx.bitsPerBlock * blockIndex
}

func (idx *Implicit) BlockSize(blockIndex uint64) uint64 {
	return idx.bitsPerBlock
}

func (idx *Implicit) DataSize() uint64 {
	return idx.bitsPerBlock * idx.blocks
}

func (idx *Implicit) SizeBytes(mask SizeMask) uint64 {
	var size uint64
	if mask&DataMeta != 0 {
		size += sizeOfImplicit
	}
	return size
}

func (idx *Implicit) VariableRate() bool { return false }

func (idx *Implicit) Blocks() uint64 { return idx.blocks }

// MetaRef returns the index's metadata annotation list, allocating it on
// first use. It satisfies the metaHolder interface used by Stats/Checksum.
func (idx *Implicit) MetaRef() *Meta {
	if idx.meta == nil {
		idx.meta = &Meta{}
	}
	return idx.meta
}

// sizeOfImplicit approximates sizeof(ImplicitIndex) from the source: two
// size_t fields (blocks, bitsPerBlock). The Meta pointer is a diagnostic
// addition outside the original struct's accounting.
const sizeOfImplicit = 16
