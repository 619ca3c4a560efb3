package cards

// Card types used by deck translation.
const (
	TypeHero = "Hero"
	TypeItem = "Item"
)

// RefIncludes marks a hero's signature card.
const RefIncludes = "includes"

// Reference links a card to another card, e.g. a hero to the signature
// card it brings into the main deck.
type Reference struct {
	CardID  uint32 `json:"card_id"`
	RefType string `json:"ref_type"`
	Count   int    `json:"count,omitempty"`
}

type Card struct {
	CardID      uint32      `json:"card_id"`
	BaseCardID  uint32      `json:"base_card_id,omitempty"`
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	SubType     string      `json:"sub_type,omitempty"`
	Text        string      `json:"text,omitempty"`
	Colour      string      `json:"colour,omitempty"`
	ManaCost    int         `json:"mana_cost,omitempty"`
	GoldCost    int         `json:"gold_cost,omitempty"`
	Attack      *int        `json:"attack,omitempty"`
	Armor       int         `json:"armor,omitempty"`
	HitPoints   int         `json:"hit_points,omitempty"`
	Retaliate   int         `json:"retaliate,omitempty"`
	Regen       int         `json:"regen,omitempty"`
	References  []Reference `json:"references,omitempty"`
	MiniImage   string      `json:"mini_image,omitempty"`
	LargeImage  string      `json:"large_image,omitempty"`
	IngameImage string      `json:"ingame_image,omitempty"`
	Illustrator string      `json:"illustrator,omitempty"`
}

// Signature returns the card a hero includes in the main deck and how many
// copies, or ok false if it has none.
func (c Card) Signature() (ref Reference, ok bool) {
	for _, r := range c.References {
		if r.RefType == RefIncludes {
			return r, true
		}
	}
	return Reference{}, false
}

// CardSet is one published set of cards.
type CardSet struct {
	Code    string `json:"code"`
	SetID   int    `json:"set_id"`
	Name    string `json:"name"`
	Version int    `json:"version"`
	Cards   []Card `json:"cards"`
}

// The remote catalog's JSON shapes.
type (
	localized struct {
		English string `json:"english"`
	}

	imageSet struct {
		Default string `json:"default"`
	}

	rawCard struct {
		CardID      uint32      `json:"card_id"`
		BaseCardID  uint32      `json:"base_card_id"`
		CardType    string      `json:"card_type"`
		SubType     string      `json:"sub_type"`
		CardName    localized   `json:"card_name"`
		CardText    localized   `json:"card_text"`
		MiniImage   imageSet    `json:"mini_image"`
		LargeImage  imageSet    `json:"large_image"`
		IngameImage imageSet    `json:"ingame_image"`
		Illustrator string      `json:"illustrator"`
		ManaCost    int         `json:"mana_cost"`
		GoldCost    int         `json:"gold_cost"`
		Attack      *int        `json:"attack"`
		Armor       int         `json:"armor"`
		HitPoints   int         `json:"hit_points"`
		Retaliate   int         `json:"retaliate"`
		Regen       int         `json:"regen"`
		References  []Reference `json:"references"`
		IsBlack     bool        `json:"is_black"`
		IsBlue      bool        `json:"is_blue"`
		IsGreen     bool        `json:"is_green"`
		IsRed       bool        `json:"is_red"`
	}

	rawCardSet struct {
		CardSet struct {
			Version int `json:"version"`
			SetInfo struct {
				SetID int       `json:"set_id"`
				Name  localized `json:"name"`
			} `json:"set_info"`
			CardList []rawCard `json:"card_list"`
		} `json:"card_set"`
	}

	// setLocation is the first catalog response, pointing at the CDN copy
	// of a set.
	setLocation struct {
		CDNRoot string `json:"cdn_root"`
		URL     string `json:"url"`
	}
)

func (r rawCard) card() Card {
	c := Card{
		CardID:      r.CardID,
		BaseCardID:  r.BaseCardID,
		Name:        r.CardName.English,
		Type:        r.CardType,
		SubType:     r.SubType,
		Text:        r.CardText.English,
		ManaCost:    r.ManaCost,
		GoldCost:    r.GoldCost,
		Attack:      r.Attack,
		Armor:       r.Armor,
		HitPoints:   r.HitPoints,
		Retaliate:   r.Retaliate,
		Regen:       r.Regen,
		References:  r.References,
		MiniImage:   r.MiniImage.Default,
		LargeImage:  r.LargeImage.Default,
		IngameImage: r.IngameImage.Default,
		Illustrator: r.Illustrator,
	}
	switch {
	case r.IsBlack:
		c.Colour = "black"
	case r.IsBlue:
		c.Colour = "blue"
	case r.IsGreen:
		c.Colour = "green"
	case r.IsRed:
		c.Colour = "red"
	}
	return c
}
