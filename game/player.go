package game

import (
	"github.com/minaorangina/splendor/deck"
	"github.com/minaorangina/splendor/protocol"
)

// ReserveCapacity is the number of cards a player may hold in reserve
const ReserveCapacity = 3

// Player owns tokens, bought cards, invited aristocrats and up to three reserved cards
type Player struct {
	ID       int
	tokens   deck.Tokens
	cards    []*deck.Card
	reserved [ReserveCapacity]*deck.Card
}

// Affordability is the outcome of CanAfford. WildcardsNeeded is reported
// even when the player doesn't hold that many gold tokens.
type Affordability struct {
	Affordable      bool
	WildcardsNeeded int
}

func NewPlayer(id int) *Player {
	return &Player{ID: id, cards: []*deck.Card{}}
}

func (p *Player) Tokens() deck.Tokens {
	return p.tokens
}

// Cards returns the owned cards in acquisition order
func (p *Player) Cards() []*deck.Card {
	cards := make([]*deck.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

func (p *Player) Reserved() [ReserveCapacity]*deck.Card {
	return p.reserved
}

func (p *Player) ReservedCount() int {
	n := 0
	for _, c := range p.reserved {
		if c != nil {
			n++
		}
	}
	return n
}

// CardPower counts owned cards per gem colour. Aristocrats count for nothing.
func (p *Player) CardPower() deck.Cost {
	var power deck.Cost
	for _, c := range p.cards {
		if color, ok := c.BonusColor(); ok {
			power[color]++
		}
	}
	return power
}

// BuyingPower is tokens plus card power; the gold entry is raw gold tokens
func (p *Player) BuyingPower() deck.Tokens {
	power := p.tokens
	for i, n := range p.CardPower() {
		power[i] += n
	}
	return power
}

// CanAfford computes the total shortfall across the five gems and compares it with held gold
func (p *Player) CanAfford(card *deck.Card) (Affordability, error) {
	if err := requireGemCard(card); err != nil {
		return Affordability{}, err
	}

	power := p.BuyingPower()
	cost := card.Cost()
	lacking := 0
	for i := range cost {
		if d := power[i] - cost[i]; d < 0 {
			lacking -= d
		}
	}

	return Affordability{
		Affordable:      lacking <= p.tokens[deck.Gold],
		WildcardsNeeded: lacking,
	}, nil
}

// Pay removes the tokens owed for card. For each gem it pays what the card
// power leaves uncovered, up to what the player holds; gold covers the deficit.
func (p *Player) Pay(a Affordability, card *deck.Card) (deck.Tokens, error) {
	if err := requireGemCard(card); err != nil {
		return deck.Tokens{}, err
	}

	var toPay deck.Tokens
	cardPower := p.CardPower()
	cost := card.Cost()
	for i := range cost {
		toPay[i] = min(p.tokens[i], max(cost[i]-cardPower[i], 0))
	}
	toPay[deck.Gold] = a.WildcardsNeeded

	if toPay[deck.Gold] < 0 || toPay[deck.Gold] > p.tokens[deck.Gold] {
		return deck.Tokens{}, protocol.Errorf(protocol.InsufficientFunds,
			"%d gold needed, %d held", toPay[deck.Gold], p.tokens[deck.Gold])
	}

	p.tokens = p.tokens.Sub(toPay)
	return toPay, nil
}

// Acquire buys card if affordable. An unaffordable card leaves the player untouched.
func (p *Player) Acquire(card *deck.Card) (bool, deck.Tokens, error) {
	a, err := p.CanAfford(card)
	if err != nil {
		return false, deck.Tokens{}, err
	}
	if !a.Affordable {
		return false, deck.Tokens{}, nil
	}

	paid, err := p.Pay(a, card)
	if err != nil {
		return false, deck.Tokens{}, err
	}
	p.cards = append(p.cards, card)

	return true, paid, nil
}

// AcquireFromReserve buys the reserved card in slot, closing the gap it leaves
func (p *Player) AcquireFromReserve(slot int) (bool, deck.Tokens, error) {
	if slot < 0 || slot >= ReserveCapacity || p.reserved[slot] == nil {
		return false, deck.Tokens{}, protocol.Errorf(protocol.NotFound, "no card in reserve slot %d", slot)
	}

	bought, paid, err := p.Acquire(p.reserved[slot])
	if err != nil || !bought {
		return bought, paid, err
	}

	copy(p.reserved[slot:], p.reserved[slot+1:])
	p.reserved[ReserveCapacity-1] = nil

	return true, paid, nil
}

// Reserve puts card at the front of the reserve
func (p *Player) Reserve(card *deck.Card) error {
	if err := requireGemCard(card); err != nil {
		return err
	}
	if p.ReservedCount() == ReserveCapacity {
		return protocol.Errorf(protocol.CapacityExceeded,
			"can't reserve more than %d cards, buy a reserved card out to free space", ReserveCapacity)
	}

	copy(p.reserved[1:], p.reserved[:ReserveCapacity-1])
	p.reserved[0] = card

	return nil
}

// CanInvite reports whether the player's cards meet an aristocrat's requirement
func (p *Player) CanInvite(card *deck.Card) (bool, error) {
	if err := requireAristocrat(card); err != nil {
		return false, err
	}

	power := p.CardPower()
	for i, n := range card.Cost() {
		if power[i] < n {
			return false, nil
		}
	}
	return true, nil
}

// Invite takes the aristocrat for free when the player qualifies
func (p *Player) Invite(card *deck.Card) (bool, error) {
	ok, err := p.CanInvite(card)
	if err != nil || !ok {
		return false, err
	}
	p.cards = append(p.cards, card)
	return true, nil
}

func (p *Player) GetToken(color deck.Color) error {
	if !color.Valid() {
		return protocol.Errorf(protocol.InvalidArgument, "colour %d does not exist", color)
	}
	p.tokens[color]++
	return nil
}

func (p *Player) PayToken(color deck.Color) error {
	if !color.Valid() {
		return protocol.Errorf(protocol.InvalidArgument, "colour %d does not exist", color)
	}
	if p.tokens[color] == 0 {
		return protocol.Errorf(protocol.InsufficientFunds, "player %d has no %s tokens", p.ID, color)
	}
	p.tokens[color]--
	return nil
}

// ValidateSelection checks that sel points at something this player may pick
func (p *Player) ValidateSelection(openCards [][]*deck.Card, deckSizes [NumTiers]int, sel protocol.Selection) error {
	if sel.Row < 0 || sel.Row >= NumTiers || sel.Slot < 0 || sel.Slot > protocol.SlotReserved {
		return protocol.Errorf(protocol.InvalidSelection, "selection %s doesn't match any of the available positions", sel)
	}

	switch sel.Slot {
	case protocol.SlotDeckTop:
		if deckSizes[sel.Row] == 0 {
			return protocol.Errorf(protocol.InvalidSelection, "no card in the tier %d deck", sel.Row+1)
		}
	case protocol.SlotReserved:
		if sel.Row >= ReserveCapacity || p.reserved[sel.Row] == nil {
			return protocol.Errorf(protocol.InvalidSelection, "no reserved card in slot %d", sel.Row)
		}
	default:
		if sel.Row >= len(openCards) || sel.Slot >= len(openCards[sel.Row]) || openCards[sel.Row][sel.Slot] == nil {
			return protocol.Errorf(protocol.InvalidSelection, "there is no card at %s", sel)
		}
	}

	return nil
}

func requireGemCard(card *deck.Card) error {
	if card == nil {
		return protocol.Errorf(protocol.InvalidArgument, "no card given")
	}
	if card.IsAristocrat() {
		return protocol.Errorf(protocol.DomainError, "aristocrats can only be invited")
	}
	return nil
}

func requireAristocrat(card *deck.Card) error {
	if card == nil {
		return protocol.Errorf(protocol.InvalidArgument, "no card given")
	}
	if !card.IsAristocrat() {
		return protocol.Errorf(protocol.DomainError, "only aristocrats can be invited, got a %s card", card.Category())
	}
	return nil
}
