package deckcode

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"
)

func TestEncodeInitial(t *testing.T) {
	tests := []struct {
		v    uint32
		n    uint
		want byte
	}{
		{0, 5, 0x00},
		{31, 5, 0x1f},
		{32, 5, 0x20},
		{33, 5, 0x21},
		{5, 3, 0x05},
		{8, 3, 0x08},
		{127, 7, 0x7f},
		{128, 7, 0x80},
		{290, 5, 0x22},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, encodeInitial(tt.v, tt.n), "encodeInitial(%d, %d)", tt.v, tt.n)
	}
}

func TestDecodeInitial(t *testing.T) {
	v, more := decodeInitial(0x22, 5)
	assert.Equal(t, uint32(2), v)
	assert.True(t, more)

	v, more = decodeInitial(0xdf, 5)
	assert.Equal(t, uint32(31), v)
	assert.False(t, more, "bits above the carry belong to other fields")
}

func TestAppendContinuation(t *testing.T) {
	assert.Empty(t, appendContinuation(nil, 31, 5))
	assert.Empty(t, appendContinuation(nil, 0, 0), "no groups follow a zero remainder")
	assert.Equal(t, []byte{0x01}, appendContinuation(nil, 32, 5))
	assert.Equal(t, []byte{0x09}, appendContinuation(nil, 290, 5))
	assert.Equal(t, []byte{0xc8, 0x01}, appendContinuation(nil, 200, 0))
	assert.Equal(t, []byte{0x04}, appendContinuation(nil, 4, 0))
}

func TestReadVarintRoundTrip(t *testing.T) {
	for _, n := range []uint{0, 3, 5} {
		for range 10000 {
			v := uint32(frand.Uint64n(math.MaxUint32 + 1))
			if n == 0 && v == 0 {
				continue
			}
			buf := appendContinuation(nil, v, n)
			got, next, err := readVarint(encodeInitial(v, n), n, buf, 0, len(buf))
			require.NoError(t, err)
			require.Equal(t, v, got, "n=%d", n)
			require.Equal(t, len(buf), next)
		}
	}
}

func TestReadVarintExhausted(t *testing.T) {
	// 0x80 promises another group that never arrives.
	_, _, err := readVarint(0x20, 5, []byte{0x80}, 0, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedVarint))

	var trunc *truncatedError
	require.True(t, errors.As(err, &trunc))
	assert.Equal(t, 1, trunc.offset)

	_, _, err = readVarint(0, 0, nil, 0, 0)
	assert.True(t, errors.Is(err, ErrMalformedVarint), "a continuation-only integer needs at least one group")
}

func TestReadVarintStopsAtBound(t *testing.T) {
	// The byte at end is outside the section and must not be consumed.
	_, _, err := readVarint(0x20, 5, []byte{0x01}, 0, 0)
	assert.True(t, errors.Is(err, ErrMalformedVarint))
}

func TestReadVarintOverlong(t *testing.T) {
	// Five full groups after a five bit chunk carry 40 bits.
	data := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0x01}
	_, next, err := readVarint(0x3f, 5, data, 0, len(data))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedVarint))
	assert.Equal(t, 3, next, "the fourth group would shift bits past 32")

	var overflow *overflowError
	assert.True(t, errors.As(err, &overflow))

	// Zero valued groups past the 32nd bit are still one group too many.
	data = []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x00}
	_, _, err = readVarint(0, 0, data, 0, len(data))
	assert.True(t, errors.Is(err, ErrMalformedVarint))

	data = appendContinuation(nil, math.MaxUint32, 5)
	v, _, err := readVarint(encodeInitial(math.MaxUint32, 5), 5, data, 0, len(data))
	require.NoError(t, err)
	assert.Equal(t, uint32(math.MaxUint32), v)
}
