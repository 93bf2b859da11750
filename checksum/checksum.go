// Package checksum holds the value objects shared by NST's rolling-checksum
// block-index specialization: a 32-bit rolling checksum split into two
// 16-bit halves, and the metadata record a block index keys by that
// checksum.
package checksum

import "github.com/cespare/xxhash/v2"

// Rolling is a 32-bit rolling checksum paired with the two 16-bit halves
// whose concatenation reproduces it. The invariant Value == (B<<16)|A must
// hold for every value constructed via New; callers that build a Rolling by
// hand (e.g. in tests) are responsible for preserving it.
type Rolling struct {
	Value uint32
	A     uint16
	B     uint16
}

// New builds a Rolling from its two halves, computing the composite value.
func New(a, b uint16) Rolling {
	return Rolling{Value: (uint32(b) << 16) | uint32(a), A: a, B: b}
}

// Less orders Rolling values by composite value, giving the block index a
// total order to splay against.
func Less(a, b Rolling) bool { return a.Value < b.Value }

// BlockMetadata describes one content-defined block discovered by a
// rolling-checksum scan. Identity within the index is Checksum; a weak
// match is checksum equality, a strong match additionally requires
// StrongHash equality.
type BlockMetadata struct {
	Checksum   Rolling
	StrongHash uint32
	BlockIndex int
	BlockSize  int
	Payload    []byte
}

// StrongHash computes the 32-bit strong hash used to confirm a weak
// (checksum-only) block match, folding a 64-bit xxhash digest to 32 bits
// (high half XOR low half). This is
// not the rolling checksum itself — it exists to make a confirmed match
// cheap to verify without re-hashing with a cryptographic primitive.
func StrongHash(data []byte) uint32 {
	sum := xxhash.Sum64(data)
	return uint32(sum ^ (sum >> 32))
}

// WeakMatch reports whether bm is a candidate match for cs — same
// checksum, strong hash unconfirmed.
func (bm BlockMetadata) WeakMatch(cs Rolling) bool {
	return bm.Checksum == cs
}

// StrongMatch reports whether bm matches cs and additionally confirms
// identity via the strong hash.
func (bm BlockMetadata) StrongMatch(cs Rolling, strongHash uint32) bool {
	return bm.WeakMatch(cs) && bm.StrongHash == strongHash
}
