// Package deckcode encodes and decodes decks as compact, checksummed,
// URL-safe "ADC" deck codes.
//
// A deck is five heroes (each with the turn it is deployed on), any number of
// other card entries and an optional name. Card ids are delta-encoded in
// ascending order using a small variable-length integer scheme, a one byte
// checksum covers the card section, and the buffer is framed as base64 with
// '/' and '=' replaced by '-' and '_'.
//
// Encode and Decode are pure functions and safe for concurrent use.
package deckcode

const (
	// Version is the wire version produced by Encode.
	Version = 2
	// LegacyVersion is the oldest version Decode accepts. It has no name.
	LegacyVersion = 1
	// Prefix starts every deck code.
	Prefix = "ADC"
	// HeaderSize is the version, checksum and name length bytes.
	HeaderSize = 3
	// MaxNameLength is the longest name, in bytes, that survives encoding.
	MaxNameLength = 63
	// HeroCount is the number of heroes in a valid deck.
	HeroCount = 5
)

// Hero is a hero card and the turn it is deployed on.
type Hero struct {
	CardID uint32 `json:"card_id" yaml:"card_id"`
	Turn   uint32 `json:"turn" yaml:"turn"`
}

// Card is a non-hero card and how many copies the deck holds.
type Card struct {
	CardID uint32 `json:"card_id" yaml:"card_id"`
	Count  uint32 `json:"count" yaml:"count"`
}

// Deck is the plain record exchanged with the codec.
type Deck struct {
	Heroes []Hero `json:"heroes" yaml:"heroes"`
	Cards  []Card `json:"cards" yaml:"cards"`
	Name   string `json:"name" yaml:"name"`
}
