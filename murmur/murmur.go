// Package murmur implements the 32-bit MurmurHash2 function used to index
// paths and object ids.
//
// The hash is deterministic and seeded but not cryptographic. Its output is
// bit-compatible with the reference MurmurHash2 on little-endian machines, so
// values persisted by other implementations remain valid.
package murmur

import (
	"encoding/binary"
	"hash"
)

const (
	m = 0x5bd1e995
	r = 24
)

// Sum32 returns the MurmurHash2 of data with the given seed.
func Sum32(data []byte, seed uint32) uint32 {
	return sum32(data, seed)
}

// Sum32String is Sum32 over the bytes of s, without copying them.
func Sum32String(s string, seed uint32) uint32 {
	return sum32(s, seed)
}

func sum32[S ~string | ~[]byte](data S, seed uint32) uint32 {
	n := len(data)
	h := seed ^ uint32(n)

	i := 0
	for ; n-i >= 4; i += 4 {
		// blocks are read little-endian
		k := uint32(data[i]) | uint32(data[i+1])<<8 | uint32(data[i+2])<<16 | uint32(data[i+3])<<24
		k *= m
		k ^= k >> r
		k *= m

		h *= m
		h ^= k
	}

	switch n - i {
	case 3:
		h ^= uint32(data[i+2]) << 16
		fallthrough
	case 2:
		h ^= uint32(data[i+1]) << 8
		fallthrough
	case 1:
		h ^= uint32(data[i])
		h *= m
	}

	h ^= h >> 13
	h *= m
	h ^= h >> 15
	return h
}

type digest struct {
	seed uint32
	buf  []byte
}

// New returns a hash.Hash32 computing Sum32 with the given seed.
// MurmurHash2 mixes the total length into its initial state, so writes are
// buffered and hashed when the sum is requested.
func New(seed uint32) hash.Hash32 {
	return &digest{seed: seed}
}

func (d *digest) Write(p []byte) (int, error) {
	d.buf = append(d.buf, p...)
	return len(p), nil
}

func (d *digest) Sum32() uint32 {
	return Sum32(d.buf, d.seed)
}

// Sum appends the big-endian sum, matching hash/fnv.
func (d *digest) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint32(b, d.Sum32())
}

func (d *digest) Reset() {
	d.buf = d.buf[:0]
}

func (d *digest) Size() int {
	return 4
}

func (d *digest) BlockSize() int {
	return 4
}
