package blockindex

// Verbatim stores the full offset array: one uint64 per block boundary, so
// data[0] == 0 and data[blocks] == DataSize(). It supports arbitrary
// per-block bit lengths at a flat cost of 64 bits/block.
type Verbatim struct {
	data   []uint64 // offsets, length blocks+1
	blocks uint64   // declared capacity in blocks
	block  uint64   // next block ordinal to be filled
	meta   *Meta
}

var _ Index = (*Verbatim)(nil)

// NewVerbatim constructs a Verbatim index for the given block count.
func NewVerbatim(blocks uint64) *Verbatim {
	idx := &Verbatim{}
	idx.Resize(blocks)
	indexesCreatedTotal.WithLabelValues("verbatim").Inc()
	return idx
}

func (idx *Verbatim) capacity() uint64 { return idx.blocks + 1 }

func (idx *Verbatim) Resize(blocks uint64) {
	idx.blocks = blocks
	idx.data = make([]uint64, idx.capacity())
	idx.Clear()
}

// Clear resets the build cursor. Offsets already written remain in the
// backing array but are semantically moot until the index is refilled from
// block 0.
func (idx *Verbatim) Clear() {
	idx.block = 0
}

func (idx *Verbatim) SetBlockSize(size uint64) {
	idx.Clear()
	for idx.block < idx.blocks {
		if err := idx.SetBlockSizeAt(idx.block, size); err != nil {
			// Cannot happen: block is always == idx.block and < idx.blocks here.
			panic(err)
		}
	}
	idx.Flush()
	idx.Clear()
}

func (idx *Verbatim) SetBlockSizeAt(blockIndex, size uint64) error {
	if blockIndex != idx.block {
		err := sequentialBuildErr(blockIndex, idx.block)
		buildErrorsTotal.WithLabelValues("verbatim", "sequential_build").Inc()
		warnBuildError("SetBlockSizeAt", err, "block", blockIndex, "want", idx.block)
		return err
	}
	if idx.block >= idx.blocks {
		err := overflowErr(idx.block, idx.blocks)
		buildErrorsTotal.WithLabelValues("verbatim", "overflow").Inc()
		warnBuildError("SetBlockSizeAt", err, "block", blockIndex)
		return err
	}
	idx.data[idx.block+1] = idx.data[idx.block] + size
	idx.block++
	appendsTotal.WithLabelValues("verbatim").Inc()
	return nil
}

func (idx *Verbatim) Flush() {}

func (idx *Verbatim) BlockOffset(blockIndex uint64) uint64 {
	return idx.data[blockIndex]
}

func (idx *Verbatim) BlockSize(blockIndex uint64) uint64 {
	return idx.data[blockIndex+1] - idx.data[blockIndex]
}

func (idx *Verbatim) DataSize() uint64 {
	return idx.data[idx.blocks]
}

func (idx *Verbatim) SizeBytes(mask SizeMask) uint64 {
	var size uint64
	if mask&DataIndex != 0 {
		size += idx.capacity() * 8
	}
	if mask&DataMeta != 0 {
		size += sizeOfVerbatim
	}
	return size
}

func (idx *Verbatim) VariableRate() bool { return true }

func (idx *Verbatim) Blocks() uint64 { return idx.blocks }

// Clone returns a deep copy: the backing offset array is cloned so that
// subsequent mutation of either index does not affect the other.
func (idx *Verbatim) Clone() *Verbatim {
	out := &Verbatim{
		blocks: idx.blocks,
		block:  idx.block,
		data:   make([]uint64, len(idx.data)),
	}
	copy(out.data, idx.data)
	if idx.meta != nil {
		m := *idx.meta
		m.KeyVals = append([]KV(nil), idx.meta.KeyVals...)
		out.meta = &m
	}
	return out
}

func (idx *Verbatim) MetaRef() *Meta {
	if idx.meta == nil {
		idx.meta = &Meta{}
	}
	return idx.meta
}

// sizeOfVerbatim approximates sizeof(VerbatimIndex): a data pointer plus two
// size_t fields (blocks, block). The slice header/Meta pointer in the Go
// port are diagnostic-only and outside the original struct's accounting.
const sizeOfVerbatim = 24
