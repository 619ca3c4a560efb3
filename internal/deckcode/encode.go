package deckcode

import (
	"fmt"
	"sort"
)

// Encode returns the deck code for d. The input is not modified. A deck
// that does not have exactly five heroes deployed on turns 1, 1, 1, 2 and 3,
// or that has a card entry with a zero count, fails with an
// *InvalidDeckError.
func Encode(d Deck) (string, error) {
	if reason := validate(d); reason != "" {
		return "", &InvalidDeckError{Deck: d, Reason: reason}
	}
	heroes := make([]Hero, len(d.Heroes))
	copy(heroes, d.Heroes)
	sort.Slice(heroes, func(i, j int) bool { return heroes[i].CardID < heroes[j].CardID })
	cards := make([]Card, len(d.Cards))
	copy(cards, d.Cards)
	sort.Slice(cards, func(i, j int) bool { return cards[i].CardID < cards[j].CardID })

	name := d.Name
	if len(name) > MaxNameLength {
		name = name[:MaxNameLength]
	}

	heroCount := uint32(len(heroes))
	buf := make([]byte, 0, HeaderSize+2*len(heroes)+2*len(cards)+len(name))
	buf = append(buf, Version<<4|encodeInitial(heroCount, 3), 0, byte(len(name)))
	buf = appendContinuation(buf, heroCount, 3)

	var last uint32
	for _, h := range heroes {
		buf = appendEntry(buf, h.Turn, h.CardID-last)
		last = h.CardID
	}
	last = 0
	for _, c := range cards {
		buf = appendEntry(buf, c.Count, c.CardID-last)
		last = c.CardID
	}
	buf[1] = checksum(buf[HeaderSize:])
	buf = append(buf, name...)

	return Prefix + encodeText(buf), nil
}

// validate returns why d cannot be encoded, or "" if it can.
func validate(d Deck) string {
	if len(d.Heroes) != HeroCount {
		return fmt.Sprintf("deck has %d heroes, want %d", len(d.Heroes), HeroCount)
	}
	var turns [3]int
	seen := make(map[uint32]bool, len(d.Heroes))
	for _, h := range d.Heroes {
		if h.Turn < 1 || h.Turn > 3 {
			return fmt.Sprintf("hero %d has turn %d, want 1, 2 or 3", h.CardID, h.Turn)
		}
		if seen[h.CardID] {
			return fmt.Sprintf("hero %d appears more than once", h.CardID)
		}
		seen[h.CardID] = true
		turns[h.Turn-1]++
	}
	if turns != [3]int{3, 1, 1} {
		return fmt.Sprintf("heroes deploy on turns 1/2/3 as %d/%d/%d, want 3/1/1", turns[0], turns[1], turns[2])
	}
	seen = make(map[uint32]bool, len(d.Cards))
	for _, c := range d.Cards {
		if c.Count == 0 {
			return fmt.Sprintf("card %d has count 0", c.CardID)
		}
		if seen[c.CardID] {
			return fmt.Sprintf("card %d appears more than once", c.CardID)
		}
		seen[c.CardID] = true
	}
	return ""
}
