package blockindex

import (
	"github.com/cespare/xxhash/v2"
	"github.com/dustin/go-humanize"
)

// metaHolder is satisfied by every variant; it lets Stats/Checksum reach an
// index's metadata annotations without adding Meta accessors to the core
// Index interface, since metadata is diagnostic rather than part of the
// core read/write contract every variant shares.
type metaHolder interface {
	MetaRef() *Meta
}

// Stats is a read-only diagnostic snapshot of an Index, intended for
// logging, not for the core read/write contract.
type Stats struct {
	Variant      string
	Blocks       uint64
	Filled       uint64
	DataSizeBits uint64
	IndexBytes   uint64
	MetaBytes    uint64
}

// NewStats snapshots idx. filled is the caller's own bookkeeping of how
// many blocks have been set so far (Index does not expose a "filled"
// accessor), passed in explicitly so Stats stays a pure function of an
// Index's public surface.
func NewStats(variant string, idx Index, filled uint64) Stats {
	return Stats{
		Variant:      variant,
		Blocks:       idx.Blocks(),
		Filled:       filled,
		DataSizeBits: idx.DataSize(),
		IndexBytes:   idx.SizeBytes(DataIndex),
		MetaBytes:    idx.SizeBytes(DataMeta),
	}
}

// String renders the snapshot for logs, using humanize the way the corpus
// already formats counts and byte sizes in its own diagnostic output.
func (s Stats) String() string {
	return "blockindex[" + s.Variant + "]: " +
		humanize.Comma(int64(s.Filled)) + "/" + humanize.Comma(int64(s.Blocks)) + " blocks, " +
		humanize.Bytes(s.DataSizeBits/8) + " data, " +
		humanize.Bytes(s.IndexBytes+s.MetaBytes) + " overhead"
}

// Checksum fingerprints idx's finalized backing storage plus any metadata
// annotations, using xxhash the way the corpus hashes its own index
// structures (compactindexsized.EntryHash64, bucketteer.Hash). It is a
// diagnostic aid for correlating a built index with a log line or a bug
// report; it is never consulted by BlockOffset/BlockSize and is not a
// persisted file format.
func Checksum(idx Index) uint64 {
	d := xxhash.New()

	switch v := idx.(type) {
	case *Implicit:
		writeUint64(d, v.bitsPerBlock)
		writeUint64(d, v.blocks)
	case *Verbatim:
		for _, off := range v.data {
			writeUint64(d, off)
		}
	case *Hybrid8:
		for _, word := range v.data {
			writeUint64(d, word)
		}
	}

	if mh, ok := idx.(metaHolder); ok {
		if m := mh.MetaRef(); m != nil && len(m.KeyVals) > 0 {
			d.Write(m.Bytes())
		}
	}
	return d.Sum64()
}

func writeUint64(d *xxhash.Digest, v uint64) {
	var buf [8]byte
	buf[0] = byte(v)
	buf[1] = byte(v >> 8)
	buf[2] = byte(v >> 16)
	buf[3] = byte(v >> 24)
	buf[4] = byte(v >> 32)
	buf[5] = byte(v >> 40)
	buf[6] = byte(v >> 48)
	buf[7] = byte(v >> 56)
	d.Write(buf[:])
}
