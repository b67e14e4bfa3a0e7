package blockindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetaAddAndGet(t *testing.T) {
	var m Meta
	require.NoError(t, m.Add([]byte("codec"), []byte("zfp")))
	require.NoError(t, m.Add([]byte("dim"), []byte("2")))

	v, ok := m.Get([]byte("codec"))
	require.True(t, ok)
	assert.Equal(t, []byte("zfp"), v)

	_, ok = m.Get([]byte("missing"))
	assert.False(t, ok)
}

func TestMetaAddRejectsOversizeKeyOrValue(t *testing.T) {
	var m Meta
	err := m.Add(make([]byte, MaxKeySize+1), []byte("v"))
	require.Error(t, err)

	err = m.Add([]byte("k"), make([]byte, MaxValueSize+1))
	require.Error(t, err)
}

func TestMetaRoundTrip(t *testing.T) {
	var m Meta
	require.NoError(t, m.Add([]byte("a"), []byte("1")))
	require.NoError(t, m.Add([]byte("bb"), []byte("22")))
	require.NoError(t, m.Add([]byte("ccc"), nil))

	b := m.Bytes()

	var out Meta
	require.NoError(t, out.UnmarshalBinary(b))
	require.Equal(t, m.KeyVals, out.KeyVals)
}

func TestMetaUnmarshalEmpty(t *testing.T) {
	var out Meta
	require.NoError(t, out.UnmarshalBinary(nil))
	assert.Empty(t, out.KeyVals)
}
