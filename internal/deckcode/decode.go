package deckcode

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Decode parses a deck code produced by Encode, or by a version 1 encoder.
// Any failure is a *DecodeError whose Kind is ErrPrefixMismatch,
// ErrVersionMismatch, ErrChecksumMismatch, ErrMalformedEncoding or
// ErrTruncatedData.
//
// The checksum covers the card section only. The header byte holding the
// version and hero count, and the name, are not protected.
func Decode(code string) (Deck, error) {
	fail := func(kind error, offset int, cause error, format string, a ...any) (Deck, error) {
		return Deck{}, &DecodeError{Code: code, Kind: kind, Offset: offset, Msg: fmt.Sprintf(format, a...), Err: cause}
	}
	truncated := func(err error) (Deck, error) {
		var t *truncatedError
		var o *overflowError
		if errors.As(err, &o) {
			return fail(ErrMalformedEncoding, o.offset, ErrMalformedVarint, "%s overflows 32 bits at byte %d", o.what, o.offset)
		}
		if errors.As(err, &t) {
			return fail(ErrTruncatedData, t.offset, t.cause, "read past end of card section at byte %d", t.offset)
		}
		return fail(ErrTruncatedData, -1, err, "read past end of card section")
	}

	if !strings.HasPrefix(code, Prefix) {
		got := code
		if len(got) > len(Prefix) {
			got = got[:len(Prefix)]
		}
		return fail(ErrPrefixMismatch, 0, nil, "got %q, want %q", got, Prefix)
	}
	data, err := decodeText(code[len(Prefix):])
	if err != nil {
		return fail(ErrMalformedEncoding, -1, err, "cannot decode body")
	}

	at := 0
	if len(data) < 2 {
		return fail(ErrTruncatedData, len(data), nil, "%d bytes is shorter than the header", len(data))
	}
	header := data[at]
	at++
	version := header >> 4
	if version != Version && version != LegacyVersion {
		return fail(ErrVersionMismatch, 0, nil, "got version %d, decoder supports %d and %d", version, LegacyVersion, Version)
	}
	stored := data[at]
	at++

	nameLength := 0
	if version >= 2 {
		if at >= len(data) {
			return fail(ErrTruncatedData, at, nil, "missing name length")
		}
		nameLength = int(data[at])
		at++
	}
	end := len(data) - nameLength
	if end < at {
		return fail(ErrTruncatedData, at, nil, "name length %d exceeds the %d bytes after the header", nameLength, len(data)-at)
	}

	if computed := checksum(data[at:end]); computed != stored {
		return fail(ErrChecksumMismatch, 1, nil, "stored %d, computed %d", stored, computed)
	}

	heroCount, at, err := readVarint(header, 3, data, at, end)
	if err != nil {
		return truncated(err)
	}

	d := Deck{Heroes: make([]Hero, 0, HeroCount), Cards: []Card{}}
	var cardID, count, last uint32
	for i := uint32(0); i < heroCount; i++ {
		if cardID, count, at, err = readEntry(data, at, end, last); err != nil {
			return truncated(err)
		}
		d.Heroes = append(d.Heroes, Hero{CardID: cardID, Turn: count})
		last = cardID
	}
	last = 0
	for at < end {
		if cardID, count, at, err = readEntry(data, at, end, last); err != nil {
			return truncated(err)
		}
		d.Cards = append(d.Cards, Card{CardID: cardID, Count: count})
		last = cardID
	}
	d.Name = string(data[len(data)-nameLength:])
	return d, nil
}
