package blockindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerbatimArbitraryOffsets(t *testing.T) {
	// sizes [7, 13, 0, 5, 100], including a zero-size block.
	sizes := []uint64{7, 13, 0, 5, 100}
	idx := NewVerbatim(uint64(len(sizes)))
	for i, s := range sizes {
		require.NoError(t, idx.SetBlockSizeAt(uint64(i), s))
	}

	wantOffsets := []uint64{0, 7, 20, 20, 25, 125}
	for i, want := range wantOffsets {
		assert.Equal(t, want, idx.BlockOffset(uint64(i)), "offset %d", i)
	}
	assert.Equal(t, uint64(125), idx.DataSize())

	for i, s := range sizes {
		assert.Equal(t, s, idx.BlockSize(uint64(i)), "size %d", i)
	}
}

func TestVerbatimSetBlockSizeUniform(t *testing.T) {
	idx := NewVerbatim(5)
	idx.SetBlockSize(8)
	for i := uint64(0); i < 5; i++ {
		assert.Equal(t, uint64(8), idx.BlockSize(i))
	}
	assert.Equal(t, uint64(40), idx.DataSize())
}

func TestVerbatimSequentialBuildViolation(t *testing.T) {
	idx := NewVerbatim(4)
	require.NoError(t, idx.SetBlockSizeAt(0, 10))
	err := idx.SetBlockSizeAt(2, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSequentialBuild)
}

func TestVerbatimOverflow(t *testing.T) {
	idx := NewVerbatim(2)
	require.NoError(t, idx.SetBlockSizeAt(0, 1))
	require.NoError(t, idx.SetBlockSizeAt(1, 1))
	err := idx.SetBlockSizeAt(2, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestVerbatimClone(t *testing.T) {
	idx := NewVerbatim(3)
	require.NoError(t, idx.SetBlockSizeAt(0, 4))
	require.NoError(t, idx.SetBlockSizeAt(1, 6))
	require.NoError(t, idx.SetBlockSizeAt(2, 2))

	clone := idx.Clone()

	// Mutating the original's cursor/Clear doesn't touch the clone's data.
	idx.Clear()
	require.NoError(t, idx.SetBlockSizeAt(0, 0))
	idx.data[1] = 999

	assert.Equal(t, uint64(4), clone.BlockSize(0))
	assert.Equal(t, uint64(6), clone.BlockSize(1))
	assert.Equal(t, uint64(2), clone.BlockSize(2))
}

func TestVerbatimSizeBytesAdditivity(t *testing.T) {
	idx := NewVerbatim(100)
	all := idx.SizeBytes(DataAll)
	assert.Equal(t, idx.SizeBytes(DataIndex)+idx.SizeBytes(DataMeta), all)
	assert.Equal(t, uint64(101*8), idx.SizeBytes(DataIndex))
}

func TestVerbatimVariableRateTrue(t *testing.T) {
	idx := NewVerbatim(4)
	assert.True(t, idx.VariableRate())
}
