package blockindex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatsSnapshot(t *testing.T) {
	idx := NewVerbatim(4)
	for i := uint64(0); i < 4; i++ {
		require.NoError(t, idx.SetBlockSizeAt(i, 10))
	}
	s := NewStats("verbatim", idx, 4)

	assert.Equal(t, "verbatim", s.Variant)
	assert.Equal(t, uint64(4), s.Blocks)
	assert.Equal(t, uint64(4), s.Filled)
	assert.Equal(t, uint64(40), s.DataSizeBits)
}

func TestStatsString(t *testing.T) {
	idx := NewImplicit(10)
	idx.SetBlockSize(23)
	s := NewStats("implicit", idx, 10)

	out := s.String()
	assert.True(t, strings.Contains(out, "implicit"))
	assert.True(t, strings.Contains(out, "10"))
}

func TestChecksumStableAcrossEquivalentBuilds(t *testing.T) {
	build := func() *Verbatim {
		idx := NewVerbatim(3)
		for i, s := range []uint64{4, 6, 2} {
			require.NoError(t, idx.SetBlockSizeAt(uint64(i), s))
		}
		return idx
	}

	a, b := build(), build()
	assert.Equal(t, Checksum(a), Checksum(b))
}

func TestChecksumDiffersOnDivergentBuilds(t *testing.T) {
	idxA := NewVerbatim(3)
	idxB := NewVerbatim(3)
	for i, s := range []uint64{4, 6, 2} {
		require.NoError(t, idxA.SetBlockSizeAt(uint64(i), s))
	}
	for i, s := range []uint64{4, 6, 3} {
		require.NoError(t, idxB.SetBlockSizeAt(uint64(i), s))
	}
	assert.NotEqual(t, Checksum(idxA), Checksum(idxB))
}

func TestChecksumIncludesMeta(t *testing.T) {
	idx := NewVerbatim(2)
	require.NoError(t, idx.SetBlockSizeAt(0, 1))
	require.NoError(t, idx.SetBlockSizeAt(1, 1))
	before := Checksum(idx)

	require.NoError(t, idx.MetaRef().Add([]byte("k"), []byte("v")))
	after := Checksum(idx)

	assert.NotEqual(t, before, after)
}
