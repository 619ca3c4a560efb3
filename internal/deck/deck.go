package deck

import (
	"github.com/pkg/errors"

	"github.com/youruser/deckcode/internal/cards"
	"github.com/youruser/deckcode/internal/deckcode"
)

const (
	MinMainDeck = 40
	MinItems    = 9
)

// Deck is a deck of full card records. Heroes are in deployment order: the
// first three go out on turn 1, the fourth on turn 2 and the fifth on turn 3.
// MainDeck includes the heroes' signature cards.
type Deck struct {
	Name     string       `json:"name"`
	Heroes   []cards.Card `json:"heroes"`
	MainDeck []cards.Card `json:"main_deck"`
	Items    []cards.Card `json:"items"`
}

// IsValid reports whether d is legal for play.
func (d Deck) IsValid() bool {
	return len(d.Heroes) == deckcode.HeroCount && len(d.MainDeck) >= MinMainDeck && len(d.Items) >= MinItems
}

// turnFor is the deployment turn of the hero at position i.
func turnFor(i int) uint32 {
	if i > 2 {
		return uint32(i - 1)
	}
	return 1
}

// ToCode converts d to the record deck codes are made from. Signature cards
// are left out since they follow from the heroes.
func (d Deck) ToCode() deckcode.Deck {
	out := deckcode.Deck{Name: d.Name}
	signatures := map[uint32]bool{}
	for i, hero := range d.Heroes {
		out.Heroes = append(out.Heroes, deckcode.Hero{CardID: hero.CardID, Turn: turnFor(i)})
		for _, ref := range hero.References {
			if ref.RefType == cards.RefIncludes {
				signatures[ref.CardID] = true
			}
		}
	}
	index := map[uint32]int{}
	for _, group := range [][]cards.Card{d.MainDeck, d.Items} {
		for _, c := range group {
			if signatures[c.CardID] {
				continue
			}
			if i, ok := index[c.CardID]; ok {
				out.Cards[i].Count++
				continue
			}
			index[c.CardID] = len(out.Cards)
			out.Cards = append(out.Cards, deckcode.Card{CardID: c.CardID, Count: 1})
		}
	}
	return out
}

// FromCode resolves every entry of code through lookup. Heroes bring their
// signature cards into the main deck; items are kept apart from the rest.
// Heroes are ordered by turn, keeping their order within a turn.
func FromCode(code deckcode.Deck, lookup cards.Lookup) (Deck, error) {
	d := Deck{Name: code.Name}
	get := func(id uint32) (cards.Card, error) {
		c, ok := lookup.Card(id)
		if !ok {
			return cards.Card{}, errors.Wrapf(cards.ErrUnknownCard, "card %d", id)
		}
		return c, nil
	}

	for turn := uint32(1); turn <= 3; turn++ {
		for _, h := range code.Heroes {
			if h.Turn != turn {
				continue
			}
			hero, err := get(h.CardID)
			if err != nil {
				return Deck{}, errors.Wrap(err, "hero")
			}
			d.Heroes = append(d.Heroes, hero)
			ref, ok := hero.Signature()
			if !ok {
				continue
			}
			sig, err := get(ref.CardID)
			if err != nil {
				return Deck{}, errors.Wrapf(err, "signature card of %s", hero.Name)
			}
			d.MainDeck = appendCopies(d.MainDeck, sig, uint32(ref.Count))
		}
	}

	for _, entry := range code.Cards {
		c, err := get(entry.CardID)
		if err != nil {
			return Deck{}, err
		}
		if c.Type == cards.TypeItem {
			d.Items = appendCopies(d.Items, c, entry.Count)
		} else {
			d.MainDeck = appendCopies(d.MainDeck, c, entry.Count)
		}
	}
	return d, nil
}

func appendCopies(dst []cards.Card, c cards.Card, n uint32) []cards.Card {
	for ; n > 0; n-- {
		dst = append(dst, c)
	}
	return dst
}

// Encode is ToCode followed by deckcode.Encode.
func (d Deck) Encode() (string, error) {
	return deckcode.Encode(d.ToCode())
}

// Decode is deckcode.Decode followed by FromCode.
func Decode(code string, lookup cards.Lookup) (Deck, error) {
	raw, err := deckcode.Decode(code)
	if err != nil {
		return Deck{}, err
	}
	return FromCode(raw, lookup)
}
