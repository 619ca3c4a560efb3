package deckcode

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidDeck is returned by Encode for a structurally invalid deck.
	ErrInvalidDeck = errors.New("invalid deck")

	// ErrPrefixMismatch is returned when a code does not start with Prefix.
	ErrPrefixMismatch = errors.New("deck code prefix mismatch")
	// ErrVersionMismatch is returned for a version other than 1 or 2.
	ErrVersionMismatch = errors.New("deck code version mismatch")
	// ErrChecksumMismatch is returned when the card section does not sum to
	// the stored checksum.
	ErrChecksumMismatch = errors.New("deck code checksum mismatch")
	// ErrMalformedEncoding is returned for text that is not base64, and for
	// integers or card ids that overflow 32 bits.
	ErrMalformedEncoding = errors.New("malformed deck code")
	// ErrTruncatedData is returned when parsing runs past the card section.
	ErrTruncatedData = errors.New("deck code data truncated")

	// ErrMalformedVarint is the cause of an ErrTruncatedData failure that
	// ran out of bytes while an integer still had its continuation bit set,
	// and of an ErrMalformedEncoding failure for an overlong integer.
	ErrMalformedVarint = errors.New("malformed varint")
)

// InvalidDeckError carries the deck that failed validation.
type InvalidDeckError struct {
	Deck   Deck
	Reason string
}

func (e *InvalidDeckError) Error() string {
	return fmt.Sprintf("deckcode: %s: %s", ErrInvalidDeck, e.Reason)
}

func (e *InvalidDeckError) Unwrap() error { return ErrInvalidDeck }

// DecodeError describes why a deck code was rejected. Kind is one of the
// decode sentinels and is matched by errors.Is.
type DecodeError struct {
	Code   string
	Kind   error
	Offset int
	Msg    string
	Err    error
}

func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("deckcode: %s: %s", e.Kind, e.Msg)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DecodeError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// truncatedError is raised by the low level readers and converted into a
// DecodeError once the deck code is known.
type truncatedError struct {
	offset int
	cause  error
}

func (e *truncatedError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s at byte %d", e.cause, e.offset)
	}
	return fmt.Sprintf("read past end at byte %d", e.offset)
}

func (e *truncatedError) Unwrap() error { return e.cause }

// overflowError reports a value that does not fit in 32 bits.
type overflowError struct {
	offset int
	what   string
}

func (e *overflowError) Error() string {
	return fmt.Sprintf("%s: %s overflows 32 bits at byte %d", ErrMalformedVarint, e.what, e.offset)
}

func (e *overflowError) Unwrap() error { return ErrMalformedVarint }

func errOverflowAt(at int, what string) error {
	return &overflowError{offset: at, what: what}
}

func errMalformedVarintAt(at int) error {
	return &truncatedError{offset: at, cause: ErrMalformedVarint}
}

func errTruncatedAt(at int) error {
	return &truncatedError{offset: at}
}
