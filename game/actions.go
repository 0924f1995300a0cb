package game

import (
	"github.com/minaorangina/splendor/deck"
	"github.com/minaorangina/splendor/protocol"
	"go.uber.org/zap"
)

// SelectionSource supplies a player's (row, slot) choice. It may block.
type SelectionSource interface {
	Select(playerID int) (protocol.Selection, error)
}

// GrantToken moves one token from the bank to a player
func (g *Game) GrantToken(color deck.Color, playerID int) error {
	if !color.Valid() {
		return protocol.Errorf(protocol.InvalidArgument, "colour %d does not exist", color)
	}
	p, err := g.Player(playerID)
	if err != nil {
		return err
	}
	if g.tokens[color] == 0 {
		return protocol.Errorf(protocol.InsufficientSupply, "no %s tokens left in the bank", color)
	}

	g.tokens[color]--
	if err := p.GetToken(color); err != nil {
		g.tokens[color]++
		return err
	}
	g.logAction(protocol.GrantToken, playerID, zap.Stringer("color", color))
	return nil
}

// ReturnToken moves one token from a player back to the bank
func (g *Game) ReturnToken(color deck.Color, playerID int) error {
	if !color.Valid() {
		return protocol.Errorf(protocol.InvalidArgument, "colour %d does not exist", color)
	}
	p, err := g.Player(playerID)
	if err != nil {
		return err
	}
	if err := p.PayToken(color); err != nil {
		return err
	}

	g.tokens[color]++
	g.logAction(protocol.ReturnToken, playerID, zap.Stringer("color", color))
	return nil
}

// RefillDisplay fills empty tier slots from their decks. An exhausted deck leaves the slot empty.
func (g *Game) RefillDisplay() {
	for row := 0; row < NumTiers; row++ {
		for slot, c := range g.openCards[row] {
			if c != nil {
				continue
			}
			next, ok := g.tiers[row].Pop()
			if !ok {
				g.log.Debug("deck exhausted, slot stays empty", zap.Int("tier", row+1), zap.Int("slot", slot))
				continue
			}
			g.openCards[row][slot] = next
		}
	}
	g.log.Debug("action applied", zap.Stringer("action", protocol.Refill))
}

// DrawThreeDistinct grants one token of each of up to three gem colours
func (g *Game) DrawThreeDistinct(colors []deck.Color, playerID int) error {
	if len(colors) == 0 || len(colors) > 3 {
		return protocol.Errorf(protocol.InvalidArgument, "choose between 1 and 3 colours, got %d", len(colors))
	}
	if _, err := g.Player(playerID); err != nil {
		return err
	}

	wanted := map[deck.Color]int{}
	for _, c := range colors {
		if !c.IsGem() {
			return protocol.Errorf(protocol.InvalidArgument, "colour %d can't be drawn", c)
		}
		wanted[c]++
	}
	for c, n := range wanted {
		if g.tokens[c] < n {
			return protocol.Errorf(protocol.InsufficientSupply, "not enough %s tokens left in the bank", c)
		}
	}

	for _, c := range colors {
		if err := g.GrantToken(c, playerID); err != nil {
			return err
		}
	}
	g.logAction(protocol.TakeThree, playerID, zap.Int("colors", len(colors)))
	return nil
}

// DrawTwoSame grants two tokens of one colour. The bank must hold more than two.
func (g *Game) DrawTwoSame(color deck.Color, playerID int) error {
	if !color.IsGem() {
		return protocol.Errorf(protocol.InvalidArgument, "colour %d can't be drawn", color)
	}
	if _, err := g.Player(playerID); err != nil {
		return err
	}
	if g.tokens[color] <= 2 {
		return protocol.Errorf(protocol.InsufficientSupply,
			"%s isn't available for a double draw with %d left", color, g.tokens[color])
	}

	for i := 0; i < 2; i++ {
		if err := g.GrantToken(color, playerID); err != nil {
			return err
		}
	}
	g.logAction(protocol.TakeTwo, playerID, zap.Stringer("color", color))
	return nil
}

// Resolve validates sel for a player and returns the card it points at.
// A deck top is looked at, not drawn.
func (g *Game) Resolve(playerID int, sel protocol.Selection) (*deck.Card, error) {
	p, err := g.Player(playerID)
	if err != nil {
		return nil, err
	}
	if err := p.ValidateSelection(g.OpenCards(), g.DeckSizes(), sel); err != nil {
		return nil, err
	}
	return g.cardAt(p, sel), nil
}

// ResolveSelection asks src for a player's choice and resolves it
func (g *Game) ResolveSelection(playerID int, src SelectionSource) (*deck.Card, protocol.Selection, error) {
	sel, err := src.Select(playerID)
	if err != nil {
		return nil, sel, err
	}
	card, err := g.Resolve(playerID, sel)
	if err != nil {
		return nil, sel, err
	}
	return card, sel, nil
}

// ExecutePurchase buys the selected card for a player and returns the payment to the bank.
// It reports false without error when the player can't afford the card.
func (g *Game) ExecutePurchase(card *deck.Card, sel protocol.Selection, playerID int) (bool, error) {
	if sel.Slot == protocol.SlotDeckTop {
		return false, protocol.Errorf(protocol.IllegalAction, "can't buy a card from the top of the deck directly, reserve it first")
	}
	p, err := g.Player(playerID)
	if err != nil {
		return false, err
	}
	if err := g.checkSelected(p, card, sel); err != nil {
		return false, err
	}

	var (
		bought bool
		paid   deck.Tokens
	)
	switch sel.Slot {
	case protocol.SlotReserved:
		bought, paid, err = p.AcquireFromReserve(sel.Row)
	default:
		bought, paid, err = p.Acquire(card)
		if err == nil && bought {
			g.openCards[sel.Row][sel.Slot] = nil
		}
	}
	if err != nil {
		return false, err
	}

	g.tokens = g.tokens.Add(paid)
	if bought {
		g.logAction(protocol.Buy, playerID, zap.Stringer("card", card), zap.Ints("paid", paid[:]))
	}
	return bought, nil
}

// ExecuteReservation moves the selected card into a player's reserve and
// grants a gold token if the bank has one left. It returns the reserved card.
func (g *Game) ExecuteReservation(card *deck.Card, sel protocol.Selection, playerID int) (*deck.Card, error) {
	if sel.Slot == protocol.SlotReserved {
		return nil, protocol.Errorf(protocol.IllegalAction, "card in slot %d is already reserved", sel.Row)
	}
	p, err := g.Player(playerID)
	if err != nil {
		return nil, err
	}
	if err := g.checkSelected(p, card, sel); err != nil {
		return nil, err
	}
	if err := p.Reserve(card); err != nil {
		return nil, err
	}

	reserved := card
	if sel.IsGrid() {
		g.openCards[sel.Row][sel.Slot] = nil
	} else {
		reserved, _ = g.tiers[sel.Row].Pop()
	}

	if g.tokens[deck.Gold] > 0 {
		if err := g.GrantToken(deck.Gold, playerID); err != nil {
			return reserved, err
		}
	} else {
		g.log.Info("no gold left, reservation bonus skipped", zap.Int("player", playerID))
	}

	g.logAction(protocol.Reserve, playerID, zap.Stringer("card", reserved), zap.Stringer("selection", sel))
	return reserved, nil
}

// InviteEligibleNoble invites the first aristocrat the player qualifies for.
// Its slot is left empty for the rest of the game. Returns nil when nobody qualifies.
func (g *Game) InviteEligibleNoble(playerID int) (*deck.Card, error) {
	p, err := g.Player(playerID)
	if err != nil {
		return nil, err
	}

	for i, c := range g.openCards[NobleRow] {
		if c == nil {
			continue
		}
		invited, err := p.Invite(c)
		if err != nil {
			return nil, err
		}
		if invited {
			g.openCards[NobleRow][i] = nil
			g.logAction(protocol.Invite, playerID, zap.Stringer("card", c))
			return c, nil
		}
	}
	return nil, nil
}

// checkSelected validates sel and makes sure card is the card it points at
func (g *Game) checkSelected(p *Player, card *deck.Card, sel protocol.Selection) error {
	if card == nil {
		return protocol.Errorf(protocol.InvalidArgument, "no card given")
	}
	if err := p.ValidateSelection(g.OpenCards(), g.DeckSizes(), sel); err != nil {
		return err
	}

	if g.cardAt(p, sel) != card {
		return protocol.Errorf(protocol.InvalidSelection, "card %s isn't at %s", card, sel)
	}
	return nil
}

// cardAt expects a validated selection
func (g *Game) cardAt(p *Player, sel protocol.Selection) *deck.Card {
	switch sel.Slot {
	case protocol.SlotDeckTop:
		top, _ := g.tiers[sel.Row].Top()
		return top
	case protocol.SlotReserved:
		return p.reserved[sel.Row]
	default:
		return g.openCards[sel.Row][sel.Slot]
	}
}

func (g *Game) logAction(action protocol.Action, playerID int, fields ...zap.Field) {
	fields = append([]zap.Field{zap.Stringer("action", action), zap.Int("player", playerID)}, fields...)
	g.log.Debug("action applied", fields...)
}
