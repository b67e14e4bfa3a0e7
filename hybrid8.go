package blockindex

// Hybrid8 packs eight blocks' worth of sizes ("a chunk") into two 64-bit
// words: a high word carrying the chunk's base offset plus the high bits of
// seven of the eight sizes, and a low word carrying the low 8 bits of each.
// The eighth size in a chunk is never stored directly; it is recovered as
// the difference between the next chunk's base (or the end offset) and the
// eighth block's own offset. This amortizes to 16 bits/block while keeping
// random access O(1) via the packed parallel-prefix sum in pack.go.
type Hybrid8 struct {
	data   []uint64 // 2 words per chunk: data[2c]=high, data[2c+1]=low
	blocks uint64   // declared capacity in blocks
	block  uint64   // next block ordinal to be filled
	ptr    uint64   // bit offset of the start of the chunk being filled
	end    uint64   // bit offset just past the last recorded block
	buffer [8]uint64 // staged sizes for the in-progress chunk
	hbits  uint      // high-field width; 2*(dim-1) for dim in {1,2,3,4}
	meta   *Meta
}

const lbits = 8

var _ Index = (*Hybrid8)(nil)

// NewHybrid8 constructs a Hybrid8 index for the given array dimension
// (1-4) and block count. hbits = 2*(dim-1) is computed once here and never
// recomputed per call, so the bit shifts it feeds stay cheap.
func NewHybrid8(dim int, blocks uint64) *Hybrid8 {
	if dim < 1 || dim > 4 {
		panic("blockindex: hybrid8 dimension must be in 1..4")
	}
	idx := &Hybrid8{hbits: uint(2 * (dim - 1))}
	idx.Resize(blocks)
	indexesCreatedTotal.WithLabelValues("hybrid8").Inc()
	return idx
}

func (idx *Hybrid8) capacity() uint64 {
	return 2 * ((idx.blocks + 7) / 8)
}

// sizeLimit is the exclusive upper bound on a single block's bit length:
// 2^(hbits+lbits).
func (idx *Hybrid8) sizeLimit() uint64 {
	return uint64(1) << (idx.hbits + lbits)
}

func (idx *Hybrid8) Resize(blocks uint64) {
	idx.blocks = blocks
	idx.data = make([]uint64, idx.capacity())
	idx.Clear()
}

func (idx *Hybrid8) Clear() {
	idx.block = 0
	idx.ptr = 0
	idx.end = 0
}

func (idx *Hybrid8) SetBlockSize(size uint64) {
	idx.Clear()
	for idx.block < idx.blocks {
		if err := idx.SetBlockSizeAt(idx.block, size); err != nil {
			panic(err)
		}
	}
	idx.Flush()
	idx.Clear()
}

// Flush pads the in-progress chunk with zero-sized blocks until block is a
// multiple of 8, finalizing its two words. It is mandatory after the final
// SetBlockSizeAt call. Calling it when already aligned is a no-op, and
// calling it repeatedly has the same effect as calling it once, since the
// loop condition is simply false on every subsequent call.
func (idx *Hybrid8) Flush() {
	for idx.block&0x7 != 0 {
		if err := idx.SetBlockSizeAt(idx.block, 0); err != nil {
			// Padding with size 0 never overflows or violates the
			// sequential-build rule; the only error it can hit is the
			// base-offset representation check when it completes a chunk.
			panic(err)
		}
	}
}

// SetBlockSizeAt records the bit size of block blockIndex. Padding blocks
// (size 0) are permitted past blocks, solely so Flush can complete a
// partial trailing chunk; any non-zero size past blocks is still an
// overflow. This asymmetry is load-bearing for chunk alignment and is
// reproduced exactly as the original's `block >= blocks && size` guard.
func (idx *Hybrid8) SetBlockSizeAt(blockIndex, size uint64) error {
	if blockIndex != idx.block {
		err := sequentialBuildErr(blockIndex, idx.block)
		buildErrorsTotal.WithLabelValues("hybrid8", "sequential_build").Inc()
		warnBuildError("SetBlockSizeAt", err, "block", blockIndex, "want", idx.block)
		return err
	}
	if idx.block >= idx.blocks && size != 0 {
		err := overflowErr(idx.block, idx.blocks)
		buildErrorsTotal.WithLabelValues("hybrid8", "overflow").Inc()
		warnBuildError("SetBlockSizeAt", err, "block", blockIndex)
		return err
	}
	if size>>(idx.hbits+lbits) != 0 {
		err := blockTooLargeErr(size, idx.sizeLimit())
		buildErrorsTotal.WithLabelValues("hybrid8", "representation").Inc()
		warnBuildError("SetBlockSizeAt", err, "block", blockIndex, "size", size)
		return err
	}

	idx.end += size
	chunk := idx.block / 8
	which := idx.block % 8
	idx.buffer[which] = size
	idx.block++
	appendsTotal.WithLabelValues("hybrid8").Inc()

	if which == 7 {
		h := idx.ptr >> lbits
		l := idx.ptr - (h << lbits)
		hi := h << (7 * idx.hbits)
		lo := l << (7 * lbits)
		if (hi >> (7 * idx.hbits)) != h {
			err := offsetTooLargeErr(idx.ptr)
			buildErrorsTotal.WithLabelValues("hybrid8", "representation").Inc()
			warnBuildError("SetBlockSizeAt", err, "block", blockIndex)
			return err
		}
		for k := uint64(0); k < 7; k++ {
			s := idx.buffer[k]
			idx.ptr += s
			h := s >> lbits
			l := s - (h << lbits)
			hi += h << ((6 - k) * idx.hbits)
			lo += l << ((6 - k) * lbits)
		}
		idx.ptr += idx.buffer[7]
		idx.data[2*chunk+0] = hi
		idx.data[2*chunk+1] = lo
	}
	return nil
}

func (idx *Hybrid8) BlockOffset(blockIndex uint64) uint64 {
	if blockIndex == idx.block {
		// Index is still under construction; point the offset at the
		// current write cursor. This is the correctness-critical branch
		// that lets a streaming writer observe its own progress mid-build.
		return idx.end
	}
	chunk := blockIndex / 8
	which := blockIndex % 8
	return hybrid8Offset(idx.data[2*chunk], idx.data[2*chunk+1], which, idx.hbits)
}

func (idx *Hybrid8) BlockSize(blockIndex uint64) uint64 {
	chunk := blockIndex / 8
	which := blockIndex % 8
	if which == 7 {
		return idx.BlockOffset(blockIndex+1) - idx.BlockOffset(blockIndex)
	}
	return hybrid8Size(idx.data[2*chunk], idx.data[2*chunk+1], which, idx.hbits)
}

func (idx *Hybrid8) DataSize() uint64 {
	return idx.end
}

func (idx *Hybrid8) SizeBytes(mask SizeMask) uint64 {
	var size uint64
	if mask&DataIndex != 0 {
		size += idx.capacity() * 8
	}
	if mask&DataMeta != 0 {
		size += sizeOfHybrid8
	}
	return size
}

func (idx *Hybrid8) VariableRate() bool { return true }

func (idx *Hybrid8) Blocks() uint64 { return idx.blocks }

// Clone returns a deep copy: the backing chunk array, staged buffer, and
// cursor state are all cloned so that subsequent mutation of either index
// does not affect the other.
func (idx *Hybrid8) Clone() *Hybrid8 {
	out := &Hybrid8{
		blocks: idx.blocks,
		block:  idx.block,
		ptr:    idx.ptr,
		end:    idx.end,
		hbits:  idx.hbits,
		buffer: idx.buffer,
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

func (idx *Hybrid8) MetaRef() *Meta {
	if idx.meta == nil {
		idx.meta = &Meta{}
	}
	return idx.meta
}

// hybrid8Size extracts the size of the kth block (0 <= k <= 6) packed into
// the chunk words h (high) and l (low).
func hybrid8Size(h, l uint64, k uint64, hbits uint) uint64 {
	hp := (h >> ((6 - k) * hbits)) & ((uint64(1) << hbits) - 1)
	lp := (l >> ((6 - k) * lbits)) & 0xff
	return (hp << lbits) + lp
}

// hybrid8Offset reconstructs the bit offset of the kth block (0 <= k <= 7)
// in a finalized chunk from its two packed words, using the packed
// parallel-prefix sums in pack.go rather than unpacking each lane.
func hybrid8Offset(h, l uint64, k uint64, hbits uint) uint64 {
	base := h >> (8 * hbits)
	hp := h - (base << (8 * hbits))
	hSum := hsum(hp>>((7-k)*hbits), hbits)
	lSum := lsum(l >> ((7 - k) * lbits))
	return (((base << hbits) + hSum) << lbits) + lSum
}

// sizeOfHybrid8 approximates sizeof(Hybrid8Index<dims>): a data pointer plus
// four size_t/uint64 fields (blocks, block, ptr, end) plus an 8-entry
// size_t buffer. hbits is a template constant in the source and carries no
// runtime storage there; it does here, accounted for in the estimate.
const sizeOfHybrid8 = 8 + 8*4 + 8*8 + 8
