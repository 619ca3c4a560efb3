package cards

import "strings"

type FilterOptions struct {
	Colours   []string `json:"colours"`
	Types     []string `json:"types"`
	SubTypes  []string `json:"sub_types"`
	ManaCosts []int    `json:"mana_costs"`
	GoldCosts []int    `json:"gold_costs"`
	FreeWords string   `json:"free_words"`

	// Playable drops heroes and signature cards, which never appear as
	// deck code card entries.
	Playable bool `json:"playable"`
}

func containsFold(hay []string, needle string) bool {
	for _, h := range hay {
		if strings.EqualFold(h, needle) {
			return true
		}
	}
	return false
}

func containsInt(hay []int, needle int) bool {
	for _, h := range hay {
		if h == needle {
			return true
		}
	}
	return false
}

// signatureIDs collects the cards included by heroes in cards.
func signatureIDs(cards []Card) map[uint32]bool {
	ids := map[uint32]bool{}
	for _, c := range cards {
		if c.Type != TypeHero {
			continue
		}
		if ref, ok := c.Signature(); ok {
			ids[ref.CardID] = true
		}
	}
	return ids
}

func Filter(cards []Card, opt FilterOptions) []Card {
	var signatures map[uint32]bool
	if opt.Playable {
		signatures = signatureIDs(cards)
	}
	var out []Card
	for _, c := range cards {
		if opt.Playable && (c.Type == TypeHero || signatures[c.CardID]) {
			continue
		}
		if len(opt.Colours) > 0 && !containsFold(opt.Colours, c.Colour) {
			continue
		}
		if len(opt.Types) > 0 && !containsFold(opt.Types, c.Type) {
			continue
		}
		if len(opt.SubTypes) > 0 && !containsFold(opt.SubTypes, c.SubType) {
			continue
		}
		if len(opt.ManaCosts) > 0 && !containsInt(opt.ManaCosts, c.ManaCost) {
			continue
		}
		if len(opt.GoldCosts) > 0 && !containsInt(opt.GoldCosts, c.GoldCost) {
			continue
		}
		if opt.FreeWords != "" {
			name := strings.ToLower(c.Name)
			text := strings.ToLower(stripTags(c.Text))
			ok := true
			for _, k := range strings.Fields(strings.ToLower(opt.FreeWords)) {
				if !strings.Contains(name, k) && !strings.Contains(text, k) {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}
