package deckcode

import "math"

const (
	countBits     = 2
	countShift    = 8 - countBits
	maxCountField = 1<<countBits - 1
	deltaBits     = 5
)

// appendEntry appends one card entry: the count (or hero turn) in the top two
// bits of the first byte, the id delta in the low five bits plus carry, the
// remaining delta groups, and for counts of four or more the full count as a
// continuation-only integer.
func appendEntry(dst []byte, count, delta uint32) []byte {
	field := count - 1
	extended := field >= maxCountField
	if extended {
		field = maxCountField
	}
	dst = append(dst, byte(field)<<countShift|encodeInitial(delta, deltaBits))
	dst = appendContinuation(dst, delta, deltaBits)
	if extended {
		dst = appendContinuation(dst, count, 0)
	}
	return dst
}

// readEntry reads the entry at data[at:end], returning the card id relative
// to baseline, the count (or hero turn) and the offset that follows it.
func readEntry(data []byte, at, end int, baseline uint32) (cardID, count uint32, next int, err error) {
	if at >= end {
		return 0, 0, at, errTruncatedAt(at)
	}
	header := data[at]
	start := at
	delta, at, err := readVarint(header, deltaBits, data, at+1, end)
	if err != nil {
		return 0, 0, at, err
	}
	if delta > math.MaxUint32-baseline {
		return 0, 0, start, errOverflowAt(start, "card id")
	}
	field := uint32(header >> countShift)
	if field != maxCountField {
		return baseline + delta, field + 1, at, nil
	}
	if count, at, err = readVarint(0, 0, data, at, end); err != nil {
		return 0, 0, at, err
	}
	return baseline + delta, count, at, nil
}
