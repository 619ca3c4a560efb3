package cards

import (
	"context"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// ErrUnknownCard is returned when a card id is not in the catalog.
var ErrUnknownCard = errors.New("unknown card")

// Lookup resolves a card id to its record.
type Lookup interface {
	Card(id uint32) (Card, bool)
}

// Catalog indexes the cards of one or more sets by id. It is read-only once
// built and safe for concurrent use.
type Catalog struct {
	sets []*CardSet
	byID map[uint32]Card
}

// NewCatalog indexes sets. When an id appears in more than one set the
// earliest set wins.
func NewCatalog(sets ...*CardSet) *Catalog {
	c := &Catalog{sets: sets, byID: make(map[uint32]Card)}
	for _, set := range sets {
		for _, card := range set.Cards {
			if _, ok := c.byID[card.CardID]; !ok {
				c.byID[card.CardID] = card
			}
		}
	}
	return c
}

// LoadCatalog loads the given set codes concurrently and indexes them in
// the order given.
func LoadCatalog(ctx context.Context, client *Client, codes ...string) (*Catalog, error) {
	sets := make([]*CardSet, len(codes))
	g, ctx := errgroup.WithContext(ctx)
	for i, code := range codes {
		g.Go(func() (err error) {
			sets[i], err = client.LoadCardSet(ctx, code)
			return
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return NewCatalog(sets...), nil
}

func (c *Catalog) Card(id uint32) (Card, bool) {
	card, ok := c.byID[id]
	return card, ok
}

// Find is Card with ErrUnknownCard for a missing id.
func (c *Catalog) Find(id uint32) (Card, error) {
	card, ok := c.byID[id]
	if !ok {
		return Card{}, errors.Wrapf(ErrUnknownCard, "card %d", id)
	}
	return card, nil
}

// Cards returns every card in id order.
func (c *Catalog) Cards() []Card {
	out := make([]Card, 0, len(c.byID))
	for _, card := range c.byID {
		out = append(out, card)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CardID < out[j].CardID })
	return out
}

func (c *Catalog) Sets() []*CardSet { return c.sets }

func (c *Catalog) Len() int { return len(c.byID) }
