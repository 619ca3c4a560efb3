package deckcode

import "math"

// Integers are written as an initial chunk of n bits that shares a byte with
// other fields, followed by 7-bit groups. Bit n of the initial chunk, and bit
// 7 of every group, is set when more bits follow.

// encodeInitial returns the low bits of v with the carry flag at bit n set
// when v does not fit in n bits.
func encodeInitial(v uint32, n uint) byte {
	limit := uint32(1) << n
	b := byte(v & (limit - 1))
	if v >= limit {
		b |= byte(limit)
	}
	return b
}

// decodeInitial splits b into its low n bits and the carry flag at bit n.
func decodeInitial(b byte, n uint) (v uint32, more bool) {
	limit := byte(1) << n
	return uint32(b & (limit - 1)), b&limit != 0
}

// appendContinuation appends the 7-bit groups for the bits of v above the
// initial chunk of n bits. Nothing is appended when those bits are all zero.
func appendContinuation(dst []byte, v uint32, n uint) []byte {
	for v >>= n; v > 0; v >>= 7 {
		dst = append(dst, encodeInitial(v, 7))
	}
	return dst
}

// readVarint finishes an integer whose initial n bits live in first, reading
// continuation groups from data[at:end]. With n == 0 the value is made of
// continuation groups only and at least one group is always read. Groups that
// would carry bits past the 32nd are rejected.
func readVarint(first byte, n uint, data []byte, at, end int) (v uint32, next int, err error) {
	v, more := decodeInitial(first, n)
	if n != 0 && !more {
		return v, at, nil
	}
	for shift := n; ; shift += 7 {
		if at >= end {
			return 0, at, errMalformedVarintAt(at)
		}
		group, more := decodeInitial(data[at], 7)
		if shift >= 32 || uint64(group)<<shift > math.MaxUint32 {
			return 0, at, errOverflowAt(at, "varint")
		}
		at++
		v |= group << shift
		if !more {
			return v, at, nil
		}
	}
}
