package blockindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewForModeDispatch(t *testing.T) {
	cases := []struct {
		mode Mode
		want Index
	}{
		{ModeFixed, &Implicit{}},
		{ModeVariableVerbatim, &Verbatim{}},
		{ModeVariableHybrid8, &Hybrid8{}},
	}
	for _, c := range cases {
		idx := NewForMode(c.mode, 2, 8)
		assert.IsType(t, c.want, idx)
		assert.Equal(t, uint64(8), idx.Blocks())
	}
}

func TestNewForModeUnknownPanics(t *testing.T) {
	assert.Panics(t, func() { NewForMode(Mode(99), 1, 1) })
}

func TestSequentialViolationAcrossVariants(t *testing.T) {
	// The first append after resize must name block 0; any other index
	// must be rejected across every variant that enforces sequential build.
	variants := map[string]Index{
		"verbatim": NewVerbatim(4),
		"hybrid8":  NewHybrid8(2, 4),
	}
	for name, idx := range variants {
		t.Run(name, func(t *testing.T) {
			err := idx.SetBlockSizeAt(1, 10)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSequentialBuild)
		})
	}
}
