package blockindex

// Packed parallel-prefix summation over eight n-bit lanes of a 64-bit word,
// used by Hybrid8 to reconstruct block offsets without unpacking lanes one
// at a time. Ported from the zfp Hybrid8Index sum8/lsum/hsum family.

// sum8 computes the sum of the eight n-bit lanes packed into x, 1 <= n <= 8.
// Lanes above bit 8*n are ignored by the caller (masked out before the call
// where needed); the three pairwise-reduction steps never let a partial sum
// overflow into a neighboring lane because each stage only combines lanes
// that are still independently bounded.
func sum8(x uint64, n uint) uint64 {
	m3 := ^uint64(0) << (4 * n)
	m2 := m3 ^ (m3 << (4 * n))
	m1 := m2 ^ (m2 >> (2 * n))
	m0 := m1 ^ (m1 >> (1 * n))

	var y uint64
	y = x & m0
	x -= y
	x += y >> n
	n *= 2

	y = x & m1
	x -= y
	x += y >> n
	n *= 2

	y = x & m2
	x -= y
	x += y >> n

	return x
}

// lsum is the n=8 specialization of sum8: the sum of (up to) eight packed
// 8-bit lanes. No carries cross lane boundaries since each lane is <= 255
// and there are only eight of them, so a 16-bit running sum never overflows.
func lsum(x uint64) uint64 {
	y := x & 0xff00ff00ff00ff00
	x -= y
	x += y >> 8
	x += x >> 16
	x += x >> 32
	return x & 0xffff
}

// hsum sums eight packed hbits-bit lanes. When hbits is 0 (dimension 1) all
// high parts vanish and hsum is always 0.
func hsum(x uint64, hbits uint) uint64 {
	if hbits == 0 {
		return 0
	}
	return sum8(x, hbits)
}
