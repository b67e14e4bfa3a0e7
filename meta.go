package blockindex

import (
	"bytes"
	"fmt"
	"io"
)

// Meta is an ordered list of short key/value annotations a caller can
// attach to an Index instance (e.g. which codec produced it). It describes
// the index object, not the data it indexes, and is never consulted by
// BlockOffset/BlockSize. Adapted from compactindexsized.Header.Metadata's
// self-contained Meta type, stripped of the CID-specific metadata keys
// indexmeta.Meta layers on top (this spec has no CID-keyed values).
type Meta struct {
	KeyVals []KV
}

// KV is a single metadata entry.
type KV struct {
	Key   []byte
	Value []byte
}

const (
	MaxNumKVs    = 255
	MaxKeySize   = 255
	MaxValueSize = 255
)

// Add appends a key/value pair, failing if either size limit is exceeded.
func (m *Meta) Add(key, value []byte) error {
	if len(m.KeyVals) >= MaxNumKVs {
		return fmt.Errorf("blockindex: number of metadata pairs %d exceeds max %d", len(m.KeyVals), MaxNumKVs)
	}
	if len(key) > MaxKeySize {
		return fmt.Errorf("blockindex: metadata key size %d exceeds max %d", len(key), MaxKeySize)
	}
	if len(value) > MaxValueSize {
		return fmt.Errorf("blockindex: metadata value size %d exceeds max %d", len(value), MaxValueSize)
	}
	m.KeyVals = append(m.KeyVals, KV{Key: key, Value: value})
	return nil
}

// Get returns the first value stored under key, if any.
func (m *Meta) Get(key []byte) ([]byte, bool) {
	for _, kv := range m.KeyVals {
		if bytes.Equal(kv.Key, key) {
			return kv.Value, true
		}
	}
	return nil, false
}

// Bytes returns the serialized metadata, panicking on a size-limit
// violation that Add should have already rejected.
func (m *Meta) Bytes() []byte {
	b, err := m.MarshalBinary()
	if err != nil {
		panic(err)
	}
	return b
}

func (m *Meta) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if len(m.KeyVals) > MaxNumKVs {
		return nil, fmt.Errorf("blockindex: number of metadata pairs %d exceeds max %d", len(m.KeyVals), MaxNumKVs)
	}
	buf.WriteByte(byte(len(m.KeyVals)))
	for i, kv := range m.KeyVals {
		if len(kv.Key) > MaxKeySize {
			return nil, fmt.Errorf("blockindex: metadata key %d size %d exceeds max %d", i, len(kv.Key), MaxKeySize)
		}
		buf.WriteByte(byte(len(kv.Key)))
		buf.Write(kv.Key)

		if len(kv.Value) > MaxValueSize {
			return nil, fmt.Errorf("blockindex: metadata value %d size %d exceeds max %d", i, len(kv.Value), MaxValueSize)
		}
		buf.WriteByte(byte(len(kv.Value)))
		buf.Write(kv.Value)
	}
	return buf.Bytes(), nil
}

func (m *Meta) UnmarshalBinary(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	numKVs := int(b[0])
	b = b[1:]
	reader := bytes.NewReader(b)
	for i := 0; i < numKVs; i++ {
		var kv KV
		keyLen, err := reader.ReadByte()
		if err != nil {
			return fmt.Errorf("blockindex: failed to read metadata key %d length: %w", i, err)
		}
		kv.Key = make([]byte, keyLen)
		if _, err := io.ReadFull(reader, kv.Key); err != nil {
			return fmt.Errorf("blockindex: failed to read metadata key %d: %w", i, err)
		}

		valueLen, err := reader.ReadByte()
		if err != nil {
			return fmt.Errorf("blockindex: failed to read metadata value %d length: %w", i, err)
		}
		if valueLen > 0 {
			kv.Value = make([]byte, valueLen)
			if _, err := io.ReadFull(reader, kv.Value); err != nil {
				return fmt.Errorf("blockindex: failed to read metadata value %d: %w", i, err)
			}
		}
		m.KeyVals = append(m.KeyVals, kv)
	}
	return nil
}
